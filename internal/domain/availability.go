package domain

import "github.com/bookhive/BHS-AvailabilityService/pkg/types"

// SubtractTimes убирает из times все времена, присутствующие в booked,
// сохраняя относительный порядок остальных
func SubtractTimes(times, booked []types.TimeString) []types.TimeString {
	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		bookedSet[b] = struct{}{}
	}

	result := make([]types.TimeString, 0, len(times))
	for _, t := range times {
		if _, ok := bookedSet[t]; ok {
			continue
		}
		result = append(result, t)
	}

	return result
}

// TimesStrictlyAfter оставляет только времена строго позже current
func TimesStrictlyAfter(times []types.TimeString, current types.TimeString) []types.TimeString {
	result := make([]types.TimeString, 0, len(times))
	for _, t := range times {
		if t.IsAfter(current) {
			result = append(result, t)
		}
	}
	return result
}
