package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStoredWeekday(t *testing.T) {
	assert.Equal(t, 0, ToStoredWeekday(time.Sunday))
	assert.Equal(t, 1, ToStoredWeekday(time.Monday))
	assert.Equal(t, 6, ToStoredWeekday(time.Saturday))
}

func TestDayName(t *testing.T) {
	name, ok := DayName(0)
	require.True(t, ok)
	assert.Equal(t, "sunday", name)

	name, ok = DayName(3)
	require.True(t, ok)
	assert.Equal(t, "wednesday", name)

	_, ok = DayName(7)
	assert.False(t, ok)
}

func TestDayNumber_RoundTrip(t *testing.T) {
	for stored := 0; stored <= 6; stored++ {
		name, ok := DayName(stored)
		require.True(t, ok)

		back, ok := DayNumber(name)
		require.True(t, ok)
		assert.Equal(t, stored, back)
	}
}

func TestIsValidDayName(t *testing.T) {
	assert.True(t, IsValidDayName("monday"))
	assert.True(t, IsValidDayName("sunday"))
	assert.False(t, IsValidDayName("Monday"))
	assert.False(t, IsValidDayName(""))
	assert.False(t, IsValidDayName("someday"))
}

func TestWeekDayNames_CoversAllDays(t *testing.T) {
	require.Len(t, WeekDayNames, 7)
	for _, name := range WeekDayNames {
		assert.True(t, IsValidDayName(name))
	}
}
