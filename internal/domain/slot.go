package domain

import (
	"fmt"
	"sort"

	"github.com/bookhive/BHS-AvailabilityService/pkg/types"
)

// SlotTime переводит индекс слота во время начала слота
// hour = 5 + index/2, minute = (index%2)*30
func SlotTime(index int) (types.TimeString, error) {
	if index < MinSlotIndex || index > MaxSlotIndex {
		return "", fmt.Errorf("slot index %d is out of range [%d, %d]", index, MinSlotIndex, MaxSlotIndex)
	}

	hour := SlotStartHour + index/SlotsPerHour
	minute := (index % SlotsPerHour) * SlotDurationMinutes

	return types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// SlotIndex переводит время начала слота обратно в индекс слота
// Обратная операция к SlotTime: валидна только для времени, лежащем на слотовой сетке
func SlotIndex(t types.TimeString) (int, error) {
	minutes := t.Minutes()
	if minutes < 0 {
		return 0, fmt.Errorf("invalid time value %q", t.String())
	}

	offset := minutes - SlotStartHour*60
	if offset < 0 || offset%SlotDurationMinutes != 0 {
		return 0, fmt.Errorf("time %q is not on the slot grid", t.String())
	}

	index := offset / SlotDurationMinutes
	if index > MaxSlotIndex {
		return 0, fmt.Errorf("time %q is past the last slot", t.String())
	}

	return index, nil
}

// SlotTimes переводит набор индексов слотов в упорядоченный по возрастанию
// список времен начала. Индексы вне диапазона [0, 47] пропускаются
func SlotTimes(indexes []int) []types.TimeString {
	sorted := make([]int, len(indexes))
	copy(sorted, indexes)
	sort.Ints(sorted)

	times := make([]types.TimeString, 0, len(sorted))
	for _, index := range sorted {
		t, err := SlotTime(index)
		if err != nil {
			continue
		}
		times = append(times, t)
	}

	return times
}
