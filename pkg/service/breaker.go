// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
)

// CircuitBreakerConfig configures BreakerRecordStore.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultCircuitBreakerConfig returns the settings used when none are configured.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             "record-store",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerRecordStore guards a RecordStore with a circuit breaker. Lookups of
// unknown projects and rejected input do not count as failures.
type BreakerRecordStore struct {
	next RecordStore
	cb   *gobreaker.CircuitBreaker[interface{}]
}

// NewBreakerRecordStore wraps next with a circuit breaker.
func NewBreakerRecordStore(next RecordStore, cfg CircuitBreakerConfig) *BreakerRecordStore {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrInvalidRecord)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.Warnf("circuit breaker %s changed state: %s -> %s", name, from, to)
		},
	}

	return &BreakerRecordStore{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[interface{}](settings),
	}
}

// State returns the current breaker state (closed, half-open or open).
func (b *BreakerRecordStore) State() string {
	return b.cb.State().String()
}

func (b *BreakerRecordStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return result, err
}

func (b *BreakerRecordStore) PutSnapshot(ctx context.Context, projectID string, records []analytics.UserAnalyticsRecord) (*SnapshotInfo, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.next.PutSnapshot(ctx, projectID, records)
	})
	if err != nil {
		return nil, err
	}
	return result.(*SnapshotInfo), nil
}

func (b *BreakerRecordStore) GetSnapshot(ctx context.Context, projectID string) ([]analytics.UserAnalyticsRecord, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.next.GetSnapshot(ctx, projectID)
	})
	if err != nil {
		return nil, err
	}
	return result.([]analytics.UserAnalyticsRecord), nil
}

func (b *BreakerRecordStore) GetSnapshotInfo(ctx context.Context, projectID string) (*SnapshotInfo, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.next.GetSnapshotInfo(ctx, projectID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*SnapshotInfo), nil
}

func (b *BreakerRecordStore) UpsertProgress(ctx context.Context, projectID, userUUID string, firstSeen int64, entry analytics.ProgressEntry) error {
	_, err := b.execute(func() (interface{}, error) {
		return nil, b.next.UpsertProgress(ctx, projectID, userUUID, firstSeen, entry)
	})
	return err
}

func (b *BreakerRecordStore) DeleteSnapshot(ctx context.Context, projectID string) error {
	_, err := b.execute(func() (interface{}, error) {
		return nil, b.next.DeleteSnapshot(ctx, projectID)
	})
	return err
}
