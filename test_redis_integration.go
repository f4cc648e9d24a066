// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

//go:build integration
// +build integration

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/common"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// This is a manual integration test for the Redis record store
// Run this with: go run test_redis_integration.go
// Requires: Redis running on REDIS_HOST:REDIS_PORT (default localhost:6379)

func main() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.Infof("Starting Redis integration test...")

	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:     common.GetEnv("REDIS_HOST", "localhost") + ":" + common.GetEnv("REDIS_PORT", "6379"),
		Password: common.GetEnv("REDIS_PASSWORD", ""),
		DB:       common.GetEnvInt("REDIS_DB", 0),
	})
	defer client.Close()

	if err := service.NewHealthChecker(client).Check(ctx); err != nil {
		logrus.Fatalf("Redis is not reachable: %v", err)
	}

	store := service.NewRedisRecordStore(client, service.RedisRecordStoreConfig{TTL: time.Hour})
	projectID := fmt.Sprintf("integration-%d", time.Now().Unix())
	logrus.Infof("Testing with project ID: %s", projectID)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1).UnixNano()
	done := now.UnixNano()

	// Test 1: Put snapshot
	logrus.Infof("\n=== Test 1: Put snapshot ===")
	info, err := store.PutSnapshot(ctx, projectID, []analytics.UserAnalyticsRecord{
		{
			UserUUID:            "player-1",
			FirstSeenTimeApprox: yesterday,
			ProgressEntries: []analytics.ProgressEntry{
				{MissionID: 1, LastActiveTime: done, CompletionTime: &done},
			},
		},
		{
			UserUUID:            "player-2",
			FirstSeenTimeApprox: yesterday,
			ProgressEntries: []analytics.ProgressEntry{
				{MissionID: 1, LastActiveTime: yesterday},
			},
		},
	})
	if err != nil {
		logrus.Fatalf("PutSnapshot failed: %v", err)
	}
	logrus.Infof("✓ Stored snapshot %s with %d users", info.ID, info.Users)

	// Test 2: Upsert progress for an existing and a new user
	logrus.Infof("\n=== Test 2: Upsert progress ===")
	if err := store.UpsertProgress(ctx, projectID, "player-2", yesterday,
		analytics.ProgressEntry{MissionID: 2, LastActiveTime: done}); err != nil {
		logrus.Fatalf("UpsertProgress failed: %v", err)
	}
	if err := store.UpsertProgress(ctx, projectID, "player-3", done,
		analytics.ProgressEntry{MissionID: 1, LastActiveTime: done}); err != nil {
		logrus.Fatalf("UpsertProgress failed: %v", err)
	}
	logrus.Infof("✓ Upserted progress")

	// Test 3: Read back and compute active users
	logrus.Infof("\n=== Test 3: Read snapshot ===")
	records, err := store.GetSnapshot(ctx, projectID)
	if err != nil {
		logrus.Fatalf("GetSnapshot failed: %v", err)
	}
	if len(records) != 3 {
		logrus.Fatalf("❌ Expected 3 records, got %d", len(records))
	}

	summary := analytics.SummarizeActiveUsers(records, now)
	if summary.DAU != 3 {
		logrus.Fatalf("❌ Expected DAU 3, got %d", summary.DAU)
	}
	logrus.Infof("✓ DAU=%d WAU=%d MAU=%d stickiness=%.1f%%",
		summary.DAU, summary.WAU, summary.MAU, summary.Stickiness)

	// Test 4: Clean up
	logrus.Infof("\n=== Test 4: Clean up ===")
	if err := store.DeleteSnapshot(ctx, projectID); err != nil {
		logrus.Fatalf("DeleteSnapshot failed: %v", err)
	}
	if _, err := store.GetSnapshot(ctx, projectID); err == nil {
		logrus.Fatalf("❌ Snapshot should be gone after deletion")
	}
	logrus.Infof("✓ Verified snapshot was deleted")

	logrus.Infof("\n==================================================")
	logrus.Infof("✅ All Redis integration tests passed!")
	logrus.Infof("==================================================")
}
