// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"
	"testing"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
)

var refDate = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func daysBefore(n int) int64 {
	return refDate.AddDate(0, 0, -n).UnixNano()
}

func testRecords() []analytics.UserAnalyticsRecord {
	done := daysBefore(0)
	return []analytics.UserAnalyticsRecord{
		{
			UserUUID:            "alice",
			FirstSeenTimeApprox: daysBefore(20),
			ProgressEntries: []analytics.ProgressEntry{
				{MissionID: 1, LastActiveTime: daysBefore(0), CompletionTime: &done},
				{MissionID: 2, LastActiveTime: daysBefore(10)},
			},
		},
		{
			UserUUID:            "bob",
			FirstSeenTimeApprox: daysBefore(2),
			ProgressEntries: []analytics.ProgressEntry{
				{MissionID: 1, LastActiveTime: daysBefore(2)},
			},
		},
		{
			UserUUID:            "carol",
			FirstSeenTimeApprox: daysBefore(40),
			ProgressEntries: []analytics.ProgressEntry{
				{MissionID: 2, LastActiveTime: daysBefore(9)},
			},
		},
	}
}

func runReport(t *testing.T, r report.Report, req report.Request) *report.Result {
	t.Helper()
	res, err := r.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res == nil {
		t.Fatal("Expected non-nil result")
	}
	return res
}

func TestActivitySeriesReport_DefaultRange(t *testing.T) {
	r, err := NewActivitySeriesReport(report.ReportConfig{ID: "series", Type: ActivitySeriesReportType})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	res := runReport(t, r, report.Request{Records: testRecords(), ReferenceDate: refDate})
	data, ok := res.Data.(ActivitySeriesData)
	if !ok {
		t.Fatalf("Expected ActivitySeriesData, got %T", res.Data)
	}

	if len(data.Points) != DefaultRangeDays {
		t.Errorf("Expected %d points, got %d", DefaultRangeDays, len(data.Points))
	}
	if data.RangeEnd != "2024-03-10" {
		t.Errorf("Expected range end 2024-03-10, got %s", data.RangeEnd)
	}
	if data.RangeStart != "2024-02-10" {
		t.Errorf("Expected range start 2024-02-10, got %s", data.RangeStart)
	}
	if data.Metric != analytics.MetricActiveUsers {
		t.Errorf("Expected default metric active-users, got %s", data.Metric)
	}
}

func TestActivitySeriesReport_RangeOverride(t *testing.T) {
	r, err := NewActivitySeriesReport(report.ReportConfig{
		ID:         "completions",
		Type:       ActivitySeriesReportType,
		Parameters: map[string]interface{}{"metric": "completions", "range_days": 7},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	start := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	res := runReport(t, r, report.Request{
		Records:       testRecords(),
		ReferenceDate: refDate,
		RangeStart:    &start,
		RangeEnd:      &end,
	})

	data := res.Data.(ActivitySeriesData)
	if len(data.Points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(data.Points))
	}
	if data.Points[1].Date != "2024-03-10" || data.Points[1].Value != 1 {
		t.Errorf("Expected one completion on 2024-03-10, got %+v", data.Points[1])
	}
	if data.Points[0].Value != 0 {
		t.Errorf("Expected zero completions on 2024-03-09, got %d", data.Points[0].Value)
	}
}

func TestActivitySeriesReport_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]interface{}
	}{
		{"unknown metric", map[string]interface{}{"metric": "revenue"}},
		{"zero range", map[string]interface{}{"range_days": 0}},
		{"range too long", map[string]interface{}{"range_days": 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewActivitySeriesReport(report.ReportConfig{ID: "bad", Parameters: tt.params})
			if err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestActiveUsersReport(t *testing.T) {
	r := NewActiveUsersReport(report.ReportConfig{ID: "active", Type: ActiveUsersReportType})
	res := runReport(t, r, report.Request{Records: testRecords(), ReferenceDate: refDate})

	summary, ok := res.Data.(analytics.ActiveUserSummary)
	if !ok {
		t.Fatalf("Expected ActiveUserSummary, got %T", res.Data)
	}

	if summary.DAU != 1 || summary.WAU != 2 || summary.MAU != 3 {
		t.Errorf("Expected DAU=1 WAU=2 MAU=3, got %+v", summary)
	}
	if res.Type != ActiveUsersReportType {
		t.Errorf("Expected type %s, got %s", ActiveUsersReportType, res.Type)
	}
}

func TestLifecycleReport(t *testing.T) {
	r, err := NewLifecycleReport(report.ReportConfig{
		ID:         "lifecycle",
		Type:       LifecycleReportType,
		Parameters: map[string]interface{}{"period_days": 7},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	res := runReport(t, r, report.Request{Records: testRecords(), ReferenceDate: refDate})
	data, ok := res.Data.(*analytics.LifecycleData)
	if !ok {
		t.Fatalf("Expected *LifecycleData, got %T", res.Data)
	}

	// alice: active today, previously active day -10 -> retained
	// bob: first seen and active within the current week -> new
	// carol: active only day -9 -> churned
	if data.NewUsers != 1 || data.RetainedUsers != 1 || data.ChurnedUsers != 1 {
		t.Errorf("Unexpected classification: %+v", data)
	}
}

func TestLifecycleReport_EmptySnapshot(t *testing.T) {
	r, _ := NewLifecycleReport(report.ReportConfig{ID: "lifecycle", Type: LifecycleReportType})

	res := runReport(t, r, report.Request{ReferenceDate: refDate})
	if res.Data != nil {
		t.Errorf("Expected nil data for empty snapshot, got %v", res.Data)
	}
}

func TestLifecycleReport_InvalidPeriod(t *testing.T) {
	_, err := NewLifecycleReport(report.ReportConfig{
		ID:         "lifecycle",
		Parameters: map[string]interface{}{"period_days": -3},
	})
	if err == nil {
		t.Error("Expected validation error for negative period")
	}
}

func TestRetentionReport(t *testing.T) {
	r, err := NewRetentionReport(report.ReportConfig{
		ID:         "retention",
		Type:       RetentionReportType,
		Parameters: map[string]interface{}{"weeks": 4},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	res := runReport(t, r, report.Request{Records: testRecords(), ReferenceDate: refDate})
	cohorts, ok := res.Data.([]analytics.RetentionCohortWeek)
	if !ok {
		t.Fatalf("Expected []RetentionCohortWeek, got %T", res.Data)
	}

	if len(cohorts) == 0 {
		t.Fatal("Expected at least one cohort")
	}
	for _, c := range cohorts {
		if len(c.RetentionValues) != 4 {
			t.Errorf("Cohort %s: expected 4 weeks, got %d", c.CohortDateLabel, len(c.RetentionValues))
		}
	}
	for i := 1; i < len(cohorts); i++ {
		if !cohorts[i-1].CohortStartDate.After(cohorts[i].CohortStartDate) {
			t.Errorf("Expected cohorts newest first at index %d", i)
		}
	}
}

func TestRetentionReport_InvalidWeeks(t *testing.T) {
	if _, err := NewRetentionReport(report.ReportConfig{
		ID:         "retention",
		Parameters: map[string]interface{}{"weeks": 0},
	}); err == nil {
		t.Error("Expected validation error for zero weeks")
	}
}

func TestMissionFunnelReport(t *testing.T) {
	r, err := NewMissionFunnelReport(report.ReportConfig{
		ID:         "funnel",
		Type:       MissionFunnelReportType,
		Parameters: map[string]interface{}{"missions": []interface{}{1, 2}},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	res := runReport(t, r, report.Request{Records: testRecords(), ReferenceDate: refDate})
	steps, ok := res.Data.([]analytics.FunnelStep)
	if !ok {
		t.Fatalf("Expected []FunnelStep, got %T", res.Data)
	}

	if len(steps) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(steps))
	}
	if steps[0].Engaged != 2 || steps[0].Completed != 1 {
		t.Errorf("Unexpected first step: %+v", steps[0])
	}
	// alice completed mission 1 and engaged with mission 2
	if steps[1].ConversionFromPrevious != 100 {
		t.Errorf("Expected 100%% conversion, got %v", steps[1].ConversionFromPrevious)
	}
}

func TestMissionFunnelReport_InvalidMissions(t *testing.T) {
	tests := []struct {
		name     string
		missions interface{}
	}{
		{"duplicates", []interface{}{1, 1}},
		{"not a list", "1,2"},
		{"non-integer", []interface{}{1, "two"}},
		{"negative", []interface{}{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMissionFunnelReport(report.ReportConfig{
				ID:         "funnel",
				Parameters: map[string]interface{}{"missions": tt.missions},
			})
			if err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
