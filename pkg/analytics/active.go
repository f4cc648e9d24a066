// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import "time"

const (
	wauWindowDays = 7
	mauWindowDays = 30
)

// ActiveUsersInWindow returns the UUIDs of users with at least one progress
// entry last active within [start, end].
func ActiveUsersInWindow(records []UserAnalyticsRecord, start, end time.Time) map[string]struct{} {
	window := DateRange{Start: start, End: end.In(start.Location())}
	active := make(map[string]struct{})
	for i := range records {
		if activeWithin(&records[i], window) {
			active[records[i].UserUUID] = struct{}{}
		}
	}
	return active
}

// DAU counts unique users active on the reference day.
func DAU(records []UserAnalyticsRecord, ref time.Time) int {
	return countTrailing(records, ref, 1)
}

// WAU counts unique users active during the seven days ending on ref.
func WAU(records []UserAnalyticsRecord, ref time.Time) int {
	return countTrailing(records, ref, wauWindowDays)
}

// MAU counts unique users active during the thirty days ending on ref.
func MAU(records []UserAnalyticsRecord, ref time.Time) int {
	return countTrailing(records, ref, mauWindowDays)
}

// Stickiness is DAU as a percentage of MAU, 0 when MAU is 0.
func Stickiness(records []UserAnalyticsRecord, ref time.Time) float64 {
	return stickiness(DAU(records, ref), MAU(records, ref))
}

// SummarizeActiveUsers computes DAU, WAU, MAU and stickiness for ref.
func SummarizeActiveUsers(records []UserAnalyticsRecord, ref time.Time) ActiveUserSummary {
	s := ActiveUserSummary{
		DAU: DAU(records, ref),
		WAU: WAU(records, ref),
		MAU: MAU(records, ref),
	}
	s.Stickiness = stickiness(s.DAU, s.MAU)
	return s
}

func countTrailing(records []UserAnalyticsRecord, ref time.Time, days int) int {
	w := trailingWindow(ref, days)
	return len(ActiveUsersInWindow(records, w.Start, w.End))
}

func stickiness(dau, mau int) float64 {
	if mau == 0 {
		return 0
	}
	return float64(dau) / float64(mau) * 100
}
