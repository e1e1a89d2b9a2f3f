package challenges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogTiers(t *testing.T) {
	assert.Len(t, All(), 15)
	assert.Len(t, ByDuration(OneMinute), 5)
	assert.Len(t, ByDuration(FiveMinutes), 5)
	assert.Len(t, ByDuration(OneHour), 5)
	assert.Empty(t, ByDuration(42))
}

func TestFind(t *testing.T) {
	c, ok := Find(" 1 ")
	require.True(t, ok)
	assert.Equal(t, "Deep Breathing Reset", c.Title)
	assert.Equal(t, 60, c.Duration)
	assert.Equal(t, "Mindfulness", c.Category)

	_, ok = Find("99")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "changed"
	c, _ := Find("1")
	assert.Equal(t, "Deep Breathing Reset", c.Title)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Creativity", "Health", "Learning", "Mindfulness", "Productivity", "Social"}, Categories())
}
