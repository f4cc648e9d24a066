// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import (
	"errors"
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"midnight", at(2024, time.January, 5, 0), "2024-01-05"},
		{"last nanosecond", EndOfDay(at(2024, time.January, 5, 0)), "2024-01-05"},
		{"leap day", at(2024, time.February, 29, 13), "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.t); got != tt.expected {
				t.Errorf("DayKey() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestDayKey_UsesLocation(t *testing.T) {
	plus7 := time.FixedZone("UTC+7", 7*3600)
	instant := at(2024, time.January, 5, 20)

	if got := DayKey(instant); got != "2024-01-05" {
		t.Errorf("DayKey(UTC) = %s, expected 2024-01-05", got)
	}
	if got := DayKey(instant.In(plus7)); got != "2024-01-06" {
		t.Errorf("DayKey(UTC+7) = %s, expected 2024-01-06", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected time.Time
	}{
		{"monday stays", at(2024, time.January, 8, 15), at(2024, time.January, 8, 0)},
		{"wednesday steps back", at(2024, time.January, 10, 9), at(2024, time.January, 8, 0)},
		{"sunday steps back six days", at(2024, time.January, 14, 23), at(2024, time.January, 8, 0)},
		{"crosses year boundary", at(2024, time.January, 3, 0), at(2024, time.January, 1, 0)},
		{"crosses month boundary", at(2024, time.March, 2, 12), at(2024, time.February, 26, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.t)
			if !got.Equal(tt.expected) {
				t.Errorf("StartOfWeek() = %v, expected %v", got, tt.expected)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("StartOfWeek() weekday = %v, expected Monday", got.Weekday())
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	end := EndOfDay(at(2024, time.January, 5, 10))
	next := end.Add(time.Nanosecond)

	if DayKey(end) != "2024-01-05" {
		t.Errorf("EndOfDay() day = %s, expected 2024-01-05", DayKey(end))
	}
	if !next.Equal(at(2024, time.January, 6, 0)) {
		t.Errorf("EndOfDay() + 1ns = %v, expected next midnight", next)
	}
}

func TestNanosToTime_TruncatesToMillis(t *testing.T) {
	base := at(2024, time.January, 5, 0)
	got := NanosToTime(ns(base)+1_999_999, time.UTC)

	expected := base.Add(time.Millisecond)
	if !got.Equal(expected) {
		t.Errorf("NanosToTime() = %v, expected %v", got, expected)
	}
}

func TestNanosToTime_NilLocationFallsBackToLocal(t *testing.T) {
	got := NanosToTime(0, nil)
	if got.Location() != time.Local {
		t.Errorf("NanosToTime() location = %v, expected Local", got.Location())
	}
}

func TestDaysInRange(t *testing.T) {
	days := DaysInRange(at(2024, time.January, 30, 18), at(2024, time.February, 2, 1))

	expected := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	if len(days) != len(expected) {
		t.Fatalf("DaysInRange() returned %d days, expected %d", len(days), len(expected))
	}
	for i, d := range days {
		if DayKey(d) != expected[i] {
			t.Errorf("day[%d] = %s, expected %s", i, DayKey(d), expected[i])
		}
		if !d.Equal(StartOfDay(d)) {
			t.Errorf("day[%d] = %v, expected midnight", i, d)
		}
	}
}

func TestDaysInRange_EndBeforeStart(t *testing.T) {
	if days := DaysInRange(at(2024, time.January, 5, 0), at(2024, time.January, 4, 0)); days != nil {
		t.Errorf("DaysInRange() = %v, expected nil", days)
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-01-10", time.UTC)
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	if !got.Equal(at(2024, time.January, 10, 0)) {
		t.Errorf("ParseDay() = %v, expected 2024-01-10 midnight", got)
	}

	if _, err := ParseDay("10/01/2024", time.UTC); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("ParseDay() error = %v, expected ErrInvalidDay", err)
	}
}
