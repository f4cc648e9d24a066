// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import (
	"sort"
	"time"
)

const cohortLabelPrefix = "Week of "

type cohort struct {
	start   time.Time
	members []string
}

// BuildRetentionCohorts groups users by the Monday of their first-seen week
// and reports, for each of numWeeksToTrack weeks after joining, which members
// were active. Cohorts that start after the week of ref are skipped. Weeks that
// start after ref have a nil percentage. Cohorts are ordered newest first.
func BuildRetentionCohorts(records []UserAnalyticsRecord, numWeeksToTrack int, ref time.Time) []RetentionCohortWeek {
	if len(records) == 0 || numWeeksToTrack < 1 {
		return []RetentionCohortWeek{}
	}

	loc := ref.Location()
	mostRecentMonday := StartOfWeek(ref)

	byUser := make(map[string]*UserAnalyticsRecord, len(records))
	cohorts := make(map[string]*cohort)
	for i := range records {
		rec := &records[i]
		byUser[rec.UserUUID] = rec

		weekStart := StartOfWeek(NanosToTime(rec.FirstSeenTimeApprox, loc))
		if weekStart.After(mostRecentMonday) {
			continue
		}

		key := DayKey(weekStart)
		c, ok := cohorts[key]
		if !ok {
			c = &cohort{start: weekStart}
			cohorts[key] = c
		}
		c.members = append(c.members, rec.UserUUID)
	}

	result := make([]RetentionCohortWeek, 0, len(cohorts))
	for _, c := range cohorts {
		result = append(result, buildCohortRow(c, byUser, numWeeksToTrack, ref))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CohortStartDate.After(result[j].CohortStartDate)
	})
	return result
}

func buildCohortRow(c *cohort, byUser map[string]*UserAnalyticsRecord, weeks int, ref time.Time) RetentionCohortWeek {
	size := len(c.members)
	row := RetentionCohortWeek{
		CohortDateLabel: cohortLabelPrefix + DayKey(c.start),
		CohortStartDate: c.start,
		CohortSize:      size,
		RetentionValues: make([]RetentionCellValue, weeks),
	}

	for w := 0; w < weeks; w++ {
		weekStart := c.start.AddDate(0, 0, 7*w)
		if weekStart.After(ref) {
			row.RetentionValues[w] = RetentionCellValue{Users: []string{}}
			continue
		}

		week := DateRange{Start: weekStart, End: EndOfDay(weekStart.AddDate(0, 0, 6))}
		retained := []string{}
		for _, id := range c.members {
			if rec := byUser[id]; rec != nil && activeWithin(rec, week) {
				retained = append(retained, id)
			}
		}

		pct := 0.0
		if size > 0 {
			pct = float64(len(retained)) / float64(size) * 100
		}
		row.RetentionValues[w] = RetentionCellValue{Percentage: &pct, Users: retained}
	}
	return row
}
