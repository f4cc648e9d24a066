// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import (
	"fmt"
	"time"
)

// UserAnalyticsRecord is the per-user snapshot handed over by the backend.
// All timestamps are nanoseconds since the Unix epoch.
type UserAnalyticsRecord struct {
	UserUUID            string
	FirstSeenTimeApprox int64
	ProgressEntries     []ProgressEntry
}

// ProgressEntry tracks a user's engagement with a single mission.
type ProgressEntry struct {
	MissionID      int64
	LastActiveTime int64
	// CompletionTime is nil until the mission is completed.
	CompletionTime *int64
}

// MetricKind selects what BuildActivitySeries counts.
type MetricKind string

const (
	MetricActiveUsers MetricKind = "active-users"
	MetricNewUsers    MetricKind = "new-users"
	MetricCompletions MetricKind = "completions"
)

// ParseMetricKind converts a wire value into a MetricKind.
func ParseMetricKind(s string) (MetricKind, error) {
	switch k := MetricKind(s); k {
	case MetricActiveUsers, MetricNewUsers, MetricCompletions:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetricKind, s)
	}
}

// TimeSeriesDataPoint is one calendar day of a series.
type TimeSeriesDataPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// DateRange is an inclusive pair of instants.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// LifecycleData summarises user movement between two adjacent periods.
type LifecycleData struct {
	NewUsers                  int        `json:"newUsers"`
	RetainedUsers             int        `json:"retainedUsers"`
	ResurrectedUsers          int        `json:"resurrectedUsers"`
	ChurnedUsers              int        `json:"churnedUsers"`
	CurrentPeriodActiveUsers  int        `json:"currentPeriodActiveUsers"`
	PreviousPeriodActiveUsers int        `json:"previousPeriodActiveUsers"`
	QuickRatio                QuickRatio `json:"quickRatio"`
	CurrentPeriod             DateRange  `json:"currentPeriod"`
	PreviousPeriod            DateRange  `json:"previousPeriod"`
}

// QuickRatio is (new + resurrected) / churned. When nobody churned the ratio
// is undefined and NoChurn is set instead.
type QuickRatio struct {
	Value   float64 `json:"value"`
	NoChurn bool    `json:"noChurn"`
}

func (q QuickRatio) String() string {
	if q.NoChurn {
		return "no churn"
	}
	return fmt.Sprintf("%.2f", q.Value)
}

// RetentionCohortWeek is one row of the weekly retention table.
type RetentionCohortWeek struct {
	CohortDateLabel string               `json:"cohortDateLabel"`
	CohortStartDate time.Time            `json:"cohortStartDate"`
	CohortSize      int                  `json:"cohortSize"`
	RetentionValues []RetentionCellValue `json:"retentionValues"`
}

// RetentionCellValue is one (cohort, week) cell. Percentage is nil for weeks
// that have not started yet relative to the reference date.
type RetentionCellValue struct {
	Percentage *float64 `json:"percentage"`
	Users      []string `json:"users"`
}

// FunnelStep is one mission of a mission funnel.
type FunnelStep struct {
	MissionID              int64   `json:"missionId"`
	Engaged                int     `json:"engaged"`
	Completed              int     `json:"completed"`
	CompletionRate         float64 `json:"completionRate"`
	ConversionFromPrevious float64 `json:"conversionFromPrevious"`
}

// ActiveUserSummary groups the trailing-window active user counters.
type ActiveUserSummary struct {
	DAU        int     `json:"dau"`
	WAU        int     `json:"wau"`
	MAU        int     `json:"mau"`
	Stickiness float64 `json:"stickiness"`
}
