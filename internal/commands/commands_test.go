package commands

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/timevate/internal/db"
	"github.com/balkashynov/timevate/internal/logging"
	"github.com/balkashynov/timevate/internal/models"
	"github.com/balkashynov/timevate/internal/tracking"
)

// resetFlags puts every flag back to its default so runs do not leak into each other
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, dir string, args ...string) {
	t.Helper()
	runWithInput(t, dir, "", args...)
}

func runWithInput(t *testing.T, dir, input string, args ...string) {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetIn(strings.NewReader(input))
	full := append([]string{"--config", filepath.Join(dir, "missing.yaml"), "--data-dir", dir}, args...)
	rootCmd.SetArgs(full)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
}

func reload(t *testing.T, dir string) tracking.Snapshot {
	t.Helper()
	store, err := db.Open(filepath.Join(dir, "timevate.db"))
	require.NoError(t, err)
	defer store.Close()

	svc, err := tracking.New(context.Background(), store, tracking.WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer svc.Close(context.Background())
	return svc.Snapshot()
}

func TestWinCommandPersists(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "win", "Stretch", "#Health", "2m", "--no-ui")

	snap := reload(t, dir)
	require.Len(t, snap.MicroWins, 1)
	assert.Equal(t, "Stretch", snap.MicroWins[0].Title)
	assert.Equal(t, "Health", snap.MicroWins[0].Category)
	assert.Equal(t, 120, snap.MicroWins[0].Duration)
}

func TestStartThenStopCountsOneSession(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "start", "--no-ui")

	snap := reload(t, dir)
	require.NotNil(t, snap.CurrentSession)
	assert.Equal(t, 0, snap.TimeData.Sessions)

	run(t, dir, "stop")

	snap = reload(t, dir)
	assert.Nil(t, snap.CurrentSession)
	assert.Equal(t, 1, snap.TimeData.Sessions)
	assert.NotNil(t, snap.TimeData.LastActive)
}

func TestClearCommandWithYes(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "win", "Read", "--duration", "5m", "--no-ui")
	run(t, dir, "clear", "--yes")

	snap := reload(t, dir)
	assert.Empty(t, snap.MicroWins)
	assert.Equal(t, 0, snap.TimeData.Sessions)
}

func TestClearWithoutYesAsksFirst(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "clear", "--yes")
	run(t, dir, "win", "Read", "--duration", "5m", "--no-ui")

	runWithInput(t, dir, "n\n", "clear")
	assert.Len(t, reload(t, dir).MicroWins, 1, "declined prompt keeps data")

	run(t, dir, "clear")
	assert.Len(t, reload(t, dir).MicroWins, 1, "no answer keeps data")

	runWithInput(t, dir, "y\n", "clear")
	assert.Empty(t, reload(t, dir).MicroWins)
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "win", "Read", "--duration", "5m", "--category", "Learning", "--no-ui")
	run(t, dir, "win", "Stretch", "2m", "--no-ui")

	snap := reload(t, dir)
	require.Len(t, snap.MicroWins, 2)
	assert.Equal(t, "Stretch", snap.MicroWins[0].Title)
	assert.Empty(t, snap.MicroWins[0].Category)
	assert.Equal(t, 120, snap.MicroWins[0].Duration)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, confirm(strings.NewReader(tt.input), ""), "input %q", tt.input)
	}
}

func TestTodayLineCountsMicroWins(t *testing.T) {
	assert.Equal(t, "📅 Today: 1h 6m across 3 micro-wins",
		todayLine(models.TimeData{TotalActiveTime: 3960, Sessions: 3}))
	assert.Equal(t, "📅 Today: 1m across 1 micro-win",
		todayLine(models.TimeData{TotalActiveTime: 60, Sessions: 1}))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "", plural(1))
	assert.Equal(t, "s", plural(0))
	assert.Equal(t, "s", plural(3))
}
