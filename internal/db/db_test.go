package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "timevate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreMissingKeyIsNotAnError(t *testing.T) {
	s := openTestStore(t)

	v, ok, err := s.Get(context.Background(), KeyTimeData)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLiteStoreSetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, KeyMicroWins, `[]`))
	require.NoError(t, s.Set(ctx, KeyMicroWins, `[{"id":"1"}]`))

	v, ok, err := s.Get(ctx, KeyMicroWins)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyMicroWins}, keys)
}

func TestSQLiteStoreClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, k := range []string{KeyTimeData, KeyMicroWins, KeyCurrentSession} {
		require.NoError(t, s.Set(ctx, k, "x"))
	}
	require.NoError(t, s.Clear(ctx))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "timevate.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyCurrentSession, "null"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, KeyCurrentSession)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "null", v)
}

func TestSQLiteStoreClosed(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "timevate.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, _, err = s.Get(context.Background(), KeyTimeData)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), KeyTimeData, "{}"), ErrClosed)
	assert.NoError(t, s.Close())
}

func TestSQLiteStoreCloseWhileWriting(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "timevate.db"))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		for {
			if err := s.Set(context.Background(), KeyMicroWins, "[]"); err != nil {
				done <- err
				return
			}
		}
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("writer kept succeeding after Close")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, ok, err := m.Get(ctx, KeyTimeData)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, KeyTimeData, "{}"))
	v, ok, _ := m.Get(ctx, KeyTimeData)
	assert.True(t, ok)
	assert.Equal(t, "{}", v)

	require.NoError(t, m.Clear(ctx))
	assert.Equal(t, 0, m.Len())
}
