// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
)

// RecordStore holds the latest analytics snapshot of each project.
//
// You may not need an interface and could use the Redis store directly,
// but having one allows easier mocking for unit tests.
type RecordStore interface {
	// PutSnapshot replaces the whole snapshot of a project.
	PutSnapshot(ctx context.Context, projectID string, records []analytics.UserAnalyticsRecord) (*SnapshotInfo, error)
	// GetSnapshot returns every record of a project ordered by user UUID.
	GetSnapshot(ctx context.Context, projectID string) ([]analytics.UserAnalyticsRecord, error)
	// GetSnapshotInfo returns metadata about the snapshot of a project.
	GetSnapshotInfo(ctx context.Context, projectID string) (*SnapshotInfo, error)
	// UpsertProgress merges one progress entry into a user's record, creating
	// the record (and the project) when needed.
	UpsertProgress(ctx context.Context, projectID, userUUID string, firstSeen int64, entry analytics.ProgressEntry) error
	// DeleteSnapshot drops everything stored for a project.
	DeleteSnapshot(ctx context.Context, projectID string) error
}
