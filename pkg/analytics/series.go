// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import "time"

// BuildActivitySeries produces one point per calendar day between rangeStart
// and rangeEnd (inclusive), ascending by date. Days without activity are
// present with value 0.
//
// Counting rules per kind:
//   - MetricActiveUsers: +1 per user per day with any entry last active that day.
//   - MetricNewUsers: +1 on the day of the user's first-seen time.
//   - MetricCompletions: +1 per entry completed on the same day it was last active.
func BuildActivitySeries(records []UserAnalyticsRecord, kind MetricKind, rangeStart, rangeEnd time.Time) []TimeSeriesDataPoint {
	days := DaysInRange(rangeStart, rangeEnd)
	if len(days) == 0 {
		return []TimeSeriesDataPoint{}
	}

	loc := rangeStart.Location()
	window := DateRange{Start: days[0], End: EndOfDay(days[len(days)-1])}

	buckets := make(map[string]int, len(days))
	for _, d := range days {
		buckets[DayKey(d)] = 0
	}

	for i := range records {
		rec := &records[i]
		switch kind {
		case MetricActiveUsers:
			seen := make(map[string]struct{})
			for _, e := range rec.ProgressEntries {
				t := NanosToTime(e.LastActiveTime, loc)
				if !window.Contains(t) {
					continue
				}
				seen[DayKey(t)] = struct{}{}
			}
			for key := range seen {
				buckets[key]++
			}
		case MetricNewUsers:
			t := NanosToTime(rec.FirstSeenTimeApprox, loc)
			if window.Contains(t) {
				buckets[DayKey(t)]++
			}
		case MetricCompletions:
			for _, e := range rec.ProgressEntries {
				if e.CompletionTime == nil {
					continue
				}
				active := NanosToTime(e.LastActiveTime, loc)
				completed := NanosToTime(*e.CompletionTime, loc)
				if DayKey(active) != DayKey(completed) || !window.Contains(active) {
					continue
				}
				buckets[DayKey(active)]++
			}
		}
	}

	series := make([]TimeSeriesDataPoint, 0, len(days))
	for _, d := range days {
		key := DayKey(d)
		series = append(series, TimeSeriesDataPoint{Date: key, Value: buckets[key]})
	}
	return series
}
