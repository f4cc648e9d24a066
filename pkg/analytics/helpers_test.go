// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import "time"

// at returns a UTC instant on the given day and hour.
func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func ns(t time.Time) int64 {
	return t.UnixNano()
}

func active(missionID int64, t time.Time) ProgressEntry {
	return ProgressEntry{MissionID: missionID, LastActiveTime: ns(t)}
}

func completed(missionID int64, lastActive, completedAt time.Time) ProgressEntry {
	c := ns(completedAt)
	return ProgressEntry{MissionID: missionID, LastActiveTime: ns(lastActive), CompletionTime: &c}
}

func user(id string, firstSeen time.Time, entries ...ProgressEntry) UserAnalyticsRecord {
	return UserAnalyticsRecord{
		UserUUID:            id,
		FirstSeenTimeApprox: ns(firstSeen),
		ProgressEntries:     entries,
	}
}

func seriesValue(series []TimeSeriesDataPoint, date string) (int, bool) {
	for _, p := range series {
		if p.Date == date {
			return p.Value, true
		}
	}
	return 0, false
}
