// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
)

// RecordStore is an in-memory mock implementation of service.RecordStore for testing
type RecordStore struct {
	// GetSnapshotFunc, when set, replaces the default GetSnapshot behavior
	GetSnapshotFunc func(ctx context.Context, projectID string) ([]analytics.UserAnalyticsRecord, error)

	// DefaultError is returned by every method when set
	DefaultError error

	// Call tracking
	GetSnapshotCalls    []string
	PutSnapshotCalls    []PutSnapshotCall
	UpsertProgressCalls []UpsertProgressCall

	mu       sync.Mutex
	projects map[string][]analytics.UserAnalyticsRecord
}

// PutSnapshotCall tracks parameters for PutSnapshot calls
type PutSnapshotCall struct {
	ProjectID string
	Records   []analytics.UserAnalyticsRecord
}

// UpsertProgressCall tracks parameters for UpsertProgress calls
type UpsertProgressCall struct {
	ProjectID string
	UserUUID  string
	FirstSeen int64
	Entry     analytics.ProgressEntry
}

// NewRecordStore creates a mock store pre-loaded with the given projects
func NewRecordStore(projects map[string][]analytics.UserAnalyticsRecord) *RecordStore {
	if projects == nil {
		projects = make(map[string][]analytics.UserAnalyticsRecord)
	}
	return &RecordStore{projects: projects}
}

func (m *RecordStore) PutSnapshot(ctx context.Context, projectID string, records []analytics.UserAnalyticsRecord) (*service.SnapshotInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutSnapshotCalls = append(m.PutSnapshotCalls, PutSnapshotCall{ProjectID: projectID, Records: records})
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.projects[projectID] = records
	return &service.SnapshotInfo{
		ID:        fmt.Sprintf("mock-%d", len(m.PutSnapshotCalls)),
		ProjectID: projectID,
		Users:     len(records),
	}, nil
}

func (m *RecordStore) GetSnapshot(ctx context.Context, projectID string) ([]analytics.UserAnalyticsRecord, error) {
	m.mu.Lock()
	m.GetSnapshotCalls = append(m.GetSnapshotCalls, projectID)
	fn := m.GetSnapshotFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, projectID)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrProjectNotFound, projectID)
	}
	return records, nil
}

func (m *RecordStore) GetSnapshotInfo(ctx context.Context, projectID string) (*service.SnapshotInfo, error) {
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrProjectNotFound, projectID)
	}
	return &service.SnapshotInfo{ID: "mock", ProjectID: projectID, Users: len(records)}, nil
}

func (m *RecordStore) UpsertProgress(ctx context.Context, projectID, userUUID string, firstSeen int64, entry analytics.ProgressEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpsertProgressCalls = append(m.UpsertProgressCalls, UpsertProgressCall{
		ProjectID: projectID,
		UserUUID:  userUUID,
		FirstSeen: firstSeen,
		Entry:     entry,
	})
	if m.DefaultError != nil {
		return m.DefaultError
	}

	records := m.projects[projectID]
	for i := range records {
		if records[i].UserUUID == userUUID {
			records[i] = service.MergeProgress(&records[i], userUUID, firstSeen, entry)
			return nil
		}
	}
	m.projects[projectID] = append(records, service.MergeProgress(nil, userUUID, firstSeen, entry))
	return nil
}

func (m *RecordStore) DeleteSnapshot(ctx context.Context, projectID string) error {
	if m.DefaultError != nil {
		return m.DefaultError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.projects, projectID)
	return nil
}
