// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import (
	"testing"
	"time"
)

// lifecycleFixture is evaluated with ref 2024-01-14 and a 7 day period:
// current is Jan 8-14, previous is Jan 1-7.
func lifecycleFixture() []UserAnalyticsRecord {
	old := at(2023, time.December, 1, 0)
	return []UserAnalyticsRecord{
		user("new", at(2024, time.January, 10, 0), active(1, at(2024, time.January, 10, 5))),
		user("new-at-boundary", at(2024, time.January, 8, 0),
			active(1, at(2024, time.January, 7, 12)),
			active(2, at(2024, time.January, 9, 12)),
		),
		user("retained", old, active(1, at(2024, time.January, 3, 0)), active(2, at(2024, time.January, 12, 0))),
		user("resurrected", old, active(1, at(2023, time.December, 20, 0)), active(2, at(2024, time.January, 13, 0))),
		user("churned", old, active(1, at(2024, time.January, 2, 0))),
		user("churned-late", old, active(1, at(2024, time.January, 7, 23))),
		user("gone", old, active(1, at(2023, time.December, 15, 0))),
	}
}

func TestClassifyLifecycle(t *testing.T) {
	data := ClassifyLifecycle(lifecycleFixture(), 7, at(2024, time.January, 14, 10))
	if data == nil {
		t.Fatal("ClassifyLifecycle() returned nil")
	}

	checks := []struct {
		name     string
		got      int
		expected int
	}{
		{"NewUsers", data.NewUsers, 2},
		{"RetainedUsers", data.RetainedUsers, 1},
		{"ResurrectedUsers", data.ResurrectedUsers, 1},
		{"ChurnedUsers", data.ChurnedUsers, 2},
		{"CurrentPeriodActiveUsers", data.CurrentPeriodActiveUsers, 4},
		{"PreviousPeriodActiveUsers", data.PreviousPeriodActiveUsers, 4},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s = %d, expected %d", c.name, c.got, c.expected)
		}
	}

	if data.QuickRatio.NoChurn {
		t.Error("QuickRatio.NoChurn = true, expected false")
	}
	if data.QuickRatio.Value != 1.5 {
		t.Errorf("QuickRatio.Value = %v, expected 1.5", data.QuickRatio.Value)
	}
	if data.QuickRatio.String() != "1.50" {
		t.Errorf("QuickRatio.String() = %s, expected 1.50", data.QuickRatio.String())
	}
}

func TestClassifyLifecycle_Periods(t *testing.T) {
	data := ClassifyLifecycle(lifecycleFixture(), 7, at(2024, time.January, 14, 10))

	if !data.CurrentPeriod.Start.Equal(at(2024, time.January, 8, 0)) {
		t.Errorf("CurrentPeriod.Start = %v, expected 2024-01-08", data.CurrentPeriod.Start)
	}
	if !data.CurrentPeriod.End.Equal(EndOfDay(at(2024, time.January, 14, 0))) {
		t.Errorf("CurrentPeriod.End = %v, expected end of 2024-01-14", data.CurrentPeriod.End)
	}
	if !data.PreviousPeriod.Start.Equal(at(2024, time.January, 1, 0)) {
		t.Errorf("PreviousPeriod.Start = %v, expected 2024-01-01", data.PreviousPeriod.Start)
	}
	if !data.PreviousPeriod.End.Equal(EndOfDay(at(2024, time.January, 7, 0))) {
		t.Errorf("PreviousPeriod.End = %v, expected end of 2024-01-07", data.PreviousPeriod.End)
	}
}

func TestClassifyLifecycle_NewTakesPriorityOverRetained(t *testing.T) {
	records := []UserAnalyticsRecord{
		user("u1", at(2024, time.January, 8, 0),
			active(1, at(2024, time.January, 5, 0)),
			active(2, at(2024, time.January, 9, 0)),
		),
	}

	data := ClassifyLifecycle(records, 7, at(2024, time.January, 14, 0))
	if data.NewUsers != 1 || data.RetainedUsers != 0 {
		t.Errorf("NewUsers = %d, RetainedUsers = %d, expected 1 and 0", data.NewUsers, data.RetainedUsers)
	}
}

func TestClassifyLifecycle_Completeness(t *testing.T) {
	refs := []time.Time{
		at(2024, time.January, 7, 0),
		at(2024, time.January, 10, 0),
		at(2024, time.January, 14, 0),
		at(2024, time.January, 20, 0),
	}
	for _, period := range []int{1, 3, 7, 30} {
		for _, ref := range refs {
			data := ClassifyLifecycle(lifecycleFixture(), period, ref)
			sum := data.NewUsers + data.RetainedUsers + data.ResurrectedUsers
			if sum != data.CurrentPeriodActiveUsers {
				t.Errorf("period=%d ref=%s: new+retained+resurrected = %d, expected %d",
					period, DayKey(ref), sum, data.CurrentPeriodActiveUsers)
			}
		}
	}
}

func TestClassifyLifecycle_NoChurn(t *testing.T) {
	records := []UserAnalyticsRecord{
		user("u1", at(2024, time.January, 10, 0), active(1, at(2024, time.January, 10, 0))),
	}

	data := ClassifyLifecycle(records, 7, at(2024, time.January, 14, 0))
	if !data.QuickRatio.NoChurn {
		t.Error("QuickRatio.NoChurn = false, expected true")
	}
	if data.QuickRatio.String() != "no churn" {
		t.Errorf("QuickRatio.String() = %s, expected \"no churn\"", data.QuickRatio.String())
	}
}

func TestClassifyLifecycle_RoundsQuickRatio(t *testing.T) {
	old := at(2023, time.December, 1, 0)
	records := []UserAnalyticsRecord{
		user("new", at(2024, time.January, 10, 0), active(1, at(2024, time.January, 10, 0))),
		user("c1", old, active(1, at(2024, time.January, 2, 0))),
		user("c2", old, active(1, at(2024, time.January, 3, 0))),
		user("c3", old, active(1, at(2024, time.January, 4, 0))),
	}

	data := ClassifyLifecycle(records, 7, at(2024, time.January, 14, 0))
	if data.QuickRatio.Value != 0.33 {
		t.Errorf("QuickRatio.Value = %v, expected 0.33", data.QuickRatio.Value)
	}
}

func TestClassifyLifecycle_EmptyInput(t *testing.T) {
	if data := ClassifyLifecycle(nil, 7, at(2024, time.January, 14, 0)); data != nil {
		t.Errorf("ClassifyLifecycle(nil) = %+v, expected nil", data)
	}
	if data := ClassifyLifecycle(lifecycleFixture(), 0, at(2024, time.January, 14, 0)); data != nil {
		t.Errorf("ClassifyLifecycle(period 0) = %+v, expected nil", data)
	}
}
