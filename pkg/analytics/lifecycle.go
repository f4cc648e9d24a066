// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import (
	"math"
	"time"
)

// ClassifyLifecycle compares the periodLengthDays ending on ref with the
// equally long period immediately before it.
//
// Users active in the current period are new (first seen in the current
// period), retained (also active previously) or resurrected. Users active only
// in the previous period are churned. New takes priority over retained.
// It returns nil when there are no records or the period length is not positive.
func ClassifyLifecycle(records []UserAnalyticsRecord, periodLengthDays int, ref time.Time) *LifecycleData {
	if len(records) == 0 || periodLengthDays < 1 {
		return nil
	}

	current := trailingWindow(ref, periodLengthDays)
	previous := trailingWindow(current.Start.AddDate(0, 0, -1), periodLengthDays)
	loc := current.Start.Location()

	data := &LifecycleData{
		CurrentPeriod:  current,
		PreviousPeriod: previous,
	}

	for i := range records {
		rec := &records[i]
		inCurrent := activeWithin(rec, current)
		inPrevious := activeWithin(rec, previous)
		isNew := current.Contains(NanosToTime(rec.FirstSeenTimeApprox, loc))

		if inPrevious {
			data.PreviousPeriodActiveUsers++
		}

		switch {
		case inCurrent && isNew:
			data.NewUsers++
		case inCurrent && inPrevious:
			data.RetainedUsers++
		case inCurrent:
			data.ResurrectedUsers++
		case inPrevious:
			data.ChurnedUsers++
		}
		if inCurrent {
			data.CurrentPeriodActiveUsers++
		}
	}

	data.QuickRatio = quickRatio(data.NewUsers, data.ResurrectedUsers, data.ChurnedUsers)
	return data
}

func quickRatio(newUsers, resurrected, churned int) QuickRatio {
	if churned == 0 {
		return QuickRatio{NoChurn: true}
	}
	ratio := float64(newUsers+resurrected) / float64(churned)
	return QuickRatio{Value: math.Round(ratio*100) / 100}
}
