package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

func TestSubtractTimes(t *testing.T) {
	times := []types.TimeString{"09:00", "09:30", "10:00"}

	assert.Equal(t,
		[]types.TimeString{"09:00", "10:00"},
		SubtractTimes(times, []types.TimeString{"09:30"}))

	assert.Equal(t, times, SubtractTimes(times, nil))

	assert.Empty(t, SubtractTimes(times, times))

	// Занятые времена вне набора игнорируются
	assert.Equal(t, times, SubtractTimes(times, []types.TimeString{"11:00"}))
}

func TestTimesStrictlyAfter(t *testing.T) {
	times := []types.TimeString{"09:00", "09:30", "10:00"}

	assert.Equal(t,
		[]types.TimeString{"10:00"},
		TimesStrictlyAfter(times, "09:30"))

	// Текущее время на границе не включается
	assert.Equal(t,
		[]types.TimeString{"09:30", "10:00"},
		TimesStrictlyAfter(times, "09:00"))

	assert.Empty(t, TimesStrictlyAfter(times, "10:00"))
	assert.Equal(t, times, TimesStrictlyAfter(times, "05:00"))
}
