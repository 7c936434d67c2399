package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

func TestSlotTime(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  types.TimeString
	}{
		{name: "first slot", index: 0, want: "05:00"},
		{name: "second slot", index: 1, want: "05:30"},
		{name: "morning", index: 8, want: "09:00"},
		{name: "half hour", index: 9, want: "09:30"},
		{name: "noon", index: 14, want: "12:00"},
		{name: "last slot", index: 47, want: "28:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlotTime(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotTime_OutOfRange(t *testing.T) {
	_, err := SlotTime(-1)
	require.Error(t, err)

	_, err = SlotTime(48)
	require.Error(t, err)
}

func TestSlotIndex_RoundTrip(t *testing.T) {
	// До индекса 37 включительно время остается в пределах суток (23:30)
	for index := 0; index <= 37; index++ {
		ts, err := SlotTime(index)
		require.NoError(t, err)

		back, err := SlotIndex(ts)
		require.NoError(t, err)
		assert.Equal(t, index, back)
	}
}

func TestSlotIndex_OffGrid(t *testing.T) {
	_, err := SlotIndex("09:15")
	require.Error(t, err)

	_, err = SlotIndex("04:30")
	require.Error(t, err)
}

func TestSlotTimes_SortsAndSkipsInvalid(t *testing.T) {
	times := SlotTimes([]int{10, 8, 99, 9, -1})

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, times)
}

func TestSlotTimes_Empty(t *testing.T) {
	assert.Empty(t, SlotTimes(nil))
	assert.Empty(t, SlotTimes([]int{}))
}
