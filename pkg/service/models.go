// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
)

// Nanos is an epoch nanosecond timestamp. It is encoded as a decimal JSON
// string so the value survives transports that carry numbers as float64.
// JSON numbers are rejected on decode since epoch nanoseconds exceed 2^53
// and a number may already have been rounded upstream.
type Nanos int64

func (n Nanos) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(n), 10))), nil
}

func (n *Nanos) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid nanosecond timestamp %s: expected a decimal string", data)
	}
	v, err := strconv.ParseInt(string(data[1:len(data)-1]), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid nanosecond timestamp %s: %w", data, err)
	}
	*n = Nanos(v)
	return nil
}

// UserAnalyticsRecord is the stored and transported form of analytics.UserAnalyticsRecord.
type UserAnalyticsRecord struct {
	UserUUID            string          `json:"userUuid"`
	FirstSeenTimeApprox Nanos           `json:"firstSeenTimeApprox"`
	ProgressEntries     []ProgressEntry `json:"progressEntries"`
}

// ProgressEntry is the stored and transported form of analytics.ProgressEntry.
type ProgressEntry struct {
	MissionID      int64  `json:"missionId"`
	LastActiveTime Nanos  `json:"lastActiveTime"`
	CompletionTime *Nanos `json:"completionTime,omitempty"`
}

// SnapshotInfo describes the snapshot currently held for a project.
type SnapshotInfo struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Users     int       `json:"users"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidateRecord checks the invariants a record must hold before it is stored.
func ValidateRecord(rec analytics.UserAnalyticsRecord) error {
	if rec.UserUUID == "" {
		return fmt.Errorf("%w: empty user uuid", ErrInvalidRecord)
	}
	if rec.FirstSeenTimeApprox < 0 {
		return fmt.Errorf("%w: user %s has negative first seen time", ErrInvalidRecord, rec.UserUUID)
	}
	for _, e := range rec.ProgressEntries {
		if err := ValidateEntry(e); err != nil {
			return fmt.Errorf("user %s: %w", rec.UserUUID, err)
		}
	}
	return nil
}

// ValidateEntry rejects progress entries with negative timestamps.
func ValidateEntry(e analytics.ProgressEntry) error {
	if e.LastActiveTime < 0 {
		return fmt.Errorf("%w: mission %d has negative last active time", ErrInvalidRecord, e.MissionID)
	}
	if e.CompletionTime != nil && *e.CompletionTime < 0 {
		return fmt.Errorf("%w: mission %d has negative completion time", ErrInvalidRecord, e.MissionID)
	}
	return nil
}

// ToAnalytics converts the wire form into the engine's record type.
func (r UserAnalyticsRecord) ToAnalytics() analytics.UserAnalyticsRecord {
	entries := make([]analytics.ProgressEntry, len(r.ProgressEntries))
	for i, e := range r.ProgressEntries {
		entries[i] = e.ToAnalytics()
	}
	return analytics.UserAnalyticsRecord{
		UserUUID:            r.UserUUID,
		FirstSeenTimeApprox: int64(r.FirstSeenTimeApprox),
		ProgressEntries:     entries,
	}
}

// ToAnalytics converts the wire form into the engine's entry type.
func (e ProgressEntry) ToAnalytics() analytics.ProgressEntry {
	entry := analytics.ProgressEntry{
		MissionID:      e.MissionID,
		LastActiveTime: int64(e.LastActiveTime),
	}
	if e.CompletionTime != nil {
		c := int64(*e.CompletionTime)
		entry.CompletionTime = &c
	}
	return entry
}

// FromAnalytics converts an engine record into its wire form.
func FromAnalytics(r analytics.UserAnalyticsRecord) UserAnalyticsRecord {
	entries := make([]ProgressEntry, len(r.ProgressEntries))
	for i, e := range r.ProgressEntries {
		entries[i] = FromAnalyticsEntry(e)
	}
	return UserAnalyticsRecord{
		UserUUID:            r.UserUUID,
		FirstSeenTimeApprox: Nanos(r.FirstSeenTimeApprox),
		ProgressEntries:     entries,
	}
}

// FromAnalyticsEntry converts an engine entry into its wire form.
func FromAnalyticsEntry(e analytics.ProgressEntry) ProgressEntry {
	entry := ProgressEntry{
		MissionID:      e.MissionID,
		LastActiveTime: Nanos(e.LastActiveTime),
	}
	if e.CompletionTime != nil {
		c := Nanos(*e.CompletionTime)
		entry.CompletionTime = &c
	}
	return entry
}

// MergeProgress applies an incoming progress entry to a user's record.
// First-seen time is only taken when the record is new, last-active time never
// moves backwards and a completion time, once set, is kept.
func MergeProgress(rec *analytics.UserAnalyticsRecord, userUUID string, firstSeen int64, in analytics.ProgressEntry) analytics.UserAnalyticsRecord {
	if rec == nil {
		return analytics.UserAnalyticsRecord{
			UserUUID:            userUUID,
			FirstSeenTimeApprox: firstSeen,
			ProgressEntries:     []analytics.ProgressEntry{in},
		}
	}

	merged := *rec
	merged.ProgressEntries = append([]analytics.ProgressEntry(nil), rec.ProgressEntries...)
	for i := range merged.ProgressEntries {
		e := &merged.ProgressEntries[i]
		if e.MissionID != in.MissionID {
			continue
		}
		if in.LastActiveTime > e.LastActiveTime {
			e.LastActiveTime = in.LastActiveTime
		}
		if e.CompletionTime == nil && in.CompletionTime != nil {
			c := *in.CompletionTime
			e.CompletionTime = &c
		}
		return merged
	}

	merged.ProgressEntries = append(merged.ProgressEntries, in)
	return merged
}
