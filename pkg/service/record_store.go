// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// recordStoreDefaultTTL is the default TTL for a project snapshot in Redis (30 days)
	recordStoreDefaultTTL = 30 * 24 * time.Hour
	// recordStoreKeyPrefix prefixes the per-project hash of user records
	recordStoreKeyPrefix = "mission_analytics:records:"
	// snapshotInfoKeyPrefix prefixes the per-project snapshot metadata
	snapshotInfoKeyPrefix = "mission_analytics:snapshot:"
	// upsertMaxAttempts bounds optimistic-lock retries in UpsertProgress
	upsertMaxAttempts = 5
)

// RedisRecordStore implements RecordStore using one Redis hash per project,
// keyed by user UUID.
type RedisRecordStore struct {
	client *redis.Client
	cfg    RedisRecordStoreConfig
}

type RedisRecordStoreConfig struct {
	// TTL applied to project keys on every write. Zero means the default.
	TTL time.Duration
	// Now is the clock used for SnapshotInfo.UpdatedAt. Nil means time.Now.
	Now func() time.Time
}

// NewRedisRecordStore creates a new Redis-backed record store.
func NewRedisRecordStore(
	client *redis.Client,
	cfg RedisRecordStoreConfig,
) *RedisRecordStore {
	if cfg.TTL <= 0 {
		cfg.TTL = recordStoreDefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &RedisRecordStore{
		client: client,
		cfg:    cfg,
	}
}

func makeRecordStoreKey(projectID string) string {
	return fmt.Sprintf("%s%s", recordStoreKeyPrefix, projectID)
}

func makeSnapshotInfoKey(projectID string) string {
	return fmt.Sprintf("%s%s", snapshotInfoKeyPrefix, projectID)
}

// PutSnapshot replaces the snapshot of a project atomically.
func (r *RedisRecordStore) PutSnapshot(ctx context.Context, projectID string, records []analytics.UserAnalyticsRecord) (*SnapshotInfo, error) {
	fields := make([]interface{}, 0, len(records)*2)
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if err := ValidateRecord(rec); err != nil {
			return nil, err
		}
		if _, dup := seen[rec.UserUUID]; dup {
			return nil, fmt.Errorf("%w: duplicate user uuid %s", ErrInvalidRecord, rec.UserUUID)
		}
		seen[rec.UserUUID] = struct{}{}

		data, err := json.Marshal(FromAnalytics(rec))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal record %s: %w", rec.UserUUID, err)
		}
		fields = append(fields, rec.UserUUID, data)
	}

	info := &SnapshotInfo{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Users:     len(records),
		UpdatedAt: r.cfg.Now().UTC(),
	}
	infoData, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot info: %w", err)
	}

	key := makeRecordStoreKey(projectID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(fields) > 0 {
			pipe.HSet(ctx, key, fields...)
			pipe.Expire(ctx, key, r.cfg.TTL)
		}
		pipe.Set(ctx, makeSnapshotInfoKey(projectID), infoData, r.cfg.TTL)
		return nil
	})
	if err != nil {
		logrus.Errorf("failed to store snapshot for project %s: %v", projectID, err)
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	logrus.Infof("stored snapshot %s for project %s with %d users", info.ID, projectID, info.Users)
	return info, nil
}

// GetSnapshotInfo returns the metadata of a project's snapshot.
func (r *RedisRecordStore) GetSnapshotInfo(ctx context.Context, projectID string) (*SnapshotInfo, error) {
	data, err := r.client.Get(ctx, makeSnapshotInfoKey(projectID)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}
	if err != nil {
		logrus.Errorf("failed to get snapshot info for project %s: %v", projectID, err)
		return nil, fmt.Errorf("failed to get snapshot info: %w", err)
	}

	var info SnapshotInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot info: %w", err)
	}
	return &info, nil
}

// GetSnapshot returns every record of a project ordered by user UUID.
func (r *RedisRecordStore) GetSnapshot(ctx context.Context, projectID string) ([]analytics.UserAnalyticsRecord, error) {
	if _, err := r.GetSnapshotInfo(ctx, projectID); err != nil {
		return nil, err
	}

	data, err := r.client.HGetAll(ctx, makeRecordStoreKey(projectID)).Result()
	if err != nil {
		logrus.Errorf("failed to get records for project %s: %v", projectID, err)
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	records := make([]analytics.UserAnalyticsRecord, 0, len(data))
	for userUUID, raw := range data {
		var rec UserAnalyticsRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			logrus.Errorf("failed to unmarshal record %s of project %s: %v", userUUID, projectID, err)
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", userUUID, err)
		}
		records = append(records, rec.ToAnalytics())
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UserUUID < records[j].UserUUID
	})

	logrus.Debugf("retrieved %d records for project %s", len(records), projectID)
	return records, nil
}

// UpsertProgress merges one entry into a user's record using an optimistic
// WATCH/MULTI transaction so concurrent updates for the same project do not
// overwrite each other.
func (r *RedisRecordStore) UpsertProgress(ctx context.Context, projectID, userUUID string, firstSeen int64, entry analytics.ProgressEntry) error {
	if userUUID == "" {
		return fmt.Errorf("%w: empty user uuid", ErrInvalidRecord)
	}
	if firstSeen < 0 {
		return fmt.Errorf("%w: user %s has negative first seen time", ErrInvalidRecord, userUUID)
	}
	if err := ValidateEntry(entry); err != nil {
		return err
	}

	key := makeRecordStoreKey(projectID)
	infoKey := makeSnapshotInfoKey(projectID)

	txf := func(tx *redis.Tx) error {
		var existing *analytics.UserAnalyticsRecord
		raw, err := tx.HGet(ctx, key, userUUID).Bytes()
		switch {
		case err == redis.Nil:
		case err != nil:
			return err
		default:
			var rec UserAnalyticsRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal record %s: %w", userUUID, err)
			}
			a := rec.ToAnalytics()
			existing = &a
		}

		merged := MergeProgress(existing, userUUID, firstSeen, entry)
		data, err := json.Marshal(FromAnalytics(merged))
		if err != nil {
			return fmt.Errorf("failed to marshal record %s: %w", userUUID, err)
		}

		users, err := tx.HLen(ctx, key).Result()
		if err != nil {
			return err
		}
		if existing == nil {
			users++
		}

		info := SnapshotInfo{ID: uuid.NewString(), ProjectID: projectID, Users: int(users), UpdatedAt: r.cfg.Now().UTC()}
		infoData, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot info: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, userUUID, data)
			pipe.Expire(ctx, key, r.cfg.TTL)
			pipe.Set(ctx, infoKey, infoData, r.cfg.TTL)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= upsertMaxAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			logrus.Debugf("upserted progress for user %s mission %d in project %s", userUUID, entry.MissionID, projectID)
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			logrus.Errorf("failed to upsert progress for user %s in project %s: %v", userUUID, projectID, err)
			return fmt.Errorf("failed to upsert progress: %w", err)
		}
		logrus.Warnf("concurrent update on project %s (attempt %d/%d), retrying", projectID, attempt, upsertMaxAttempts)
	}

	return fmt.Errorf("failed to upsert progress: %w", redis.TxFailedErr)
}

// DeleteSnapshot deletes the records and metadata of a project.
func (r *RedisRecordStore) DeleteSnapshot(ctx context.Context, projectID string) error {
	if err := r.client.Del(ctx, makeRecordStoreKey(projectID), makeSnapshotInfoKey(projectID)).Err(); err != nil {
		logrus.Errorf("failed to delete snapshot for project %s: %v", projectID, err)
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	logrus.Infof("deleted snapshot for project %s", projectID)
	return nil
}
