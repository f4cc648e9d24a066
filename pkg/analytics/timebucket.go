// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import (
	"fmt"
	"time"
)

// DayKeyLayout is the sortable calendar-day format used for series keys.
const DayKeyLayout = "2006-01-02"

const nanosPerMilli = int64(time.Millisecond)

// DayKey returns the YYYY-MM-DD key of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the day containing t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns Monday midnight of the ISO week containing t.
// Sunday belongs to the week that started six days earlier.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// NanosToTime converts an epoch nanosecond timestamp to a time in loc.
// Precision below one millisecond is truncated.
func NanosToTime(ns int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ns / nanosPerMilli).In(loc)
}

// DaysInRange lists the midnight of every calendar day from start to end,
// both inclusive. It returns nil when end is before start.
func DaysInRange(start, end time.Time) []time.Time {
	first := StartOfDay(start)
	last := StartOfDay(end.In(start.Location()))
	if last.Before(first) {
		return nil
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ParseDay parses a YYYY-MM-DD key as local midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DayKeyLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDay, s, err)
	}
	return t, nil
}

// trailingWindow is the inclusive window of n calendar days ending on ref.
func trailingWindow(ref time.Time, n int) DateRange {
	return DateRange{
		Start: StartOfDay(ref).AddDate(0, 0, -(n - 1)),
		End:   EndOfDay(ref),
	}
}

// activeWithin reports whether any progress entry was last active inside r.
func activeWithin(rec *UserAnalyticsRecord, r DateRange) bool {
	loc := r.Start.Location()
	for _, e := range rec.ProgressEntries {
		if r.Contains(NanosToTime(e.LastActiveTime, loc)) {
			return true
		}
	}
	return false
}
