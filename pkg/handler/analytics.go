// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/common"
	"github.com/AccelByte/extend-mission-analytics/pkg/dashboard"
	"github.com/AccelByte/extend-mission-analytics/pkg/report/builtin"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/structpb"
)

var validate = validator.New()

// Analytics serves the analytics gRPC API
type Analytics struct {
	store    service.RecordStore
	manager  *dashboard.Manager
	location *time.Location
	now      func() time.Time
}

// NewAnalytics creates a new analytics handler.
// Calendar days are resolved in location; nil means UTC.
func NewAnalytics(store service.RecordStore, manager *dashboard.Manager, location *time.Location) *Analytics {
	if location == nil {
		location = time.UTC
	}
	return &Analytics{
		store:    store,
		manager:  manager,
		location: location,
		now:      time.Now,
	}
}

// PutSnapshot replaces the records of a project
func (h *Analytics) PutSnapshot(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.PutSnapshot")
	defer scope.Finish()

	var req PutSnapshotRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}

	records := make([]analytics.UserAnalyticsRecord, len(req.Records))
	for i, r := range req.Records {
		records[i] = r.ToAnalytics()
	}

	info, err := h.store.PutSnapshot(scope.Ctx, req.ProjectID, records)
	if err != nil {
		scope.TraceError(err)
		logrus.Errorf("failed to store snapshot for project %s: %v", req.ProjectID, err)
		return nil, toStatus(err)
	}

	return encode(info)
}

// UpsertProgress merges a single progress entry into a user's record
func (h *Analytics) UpsertProgress(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.UpsertProgress")
	defer scope.Finish()

	var req UpsertProgressRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}

	err := h.store.UpsertProgress(scope.Ctx, req.ProjectID, req.UserUUID,
		int64(req.FirstSeenTimeApprox), req.Entry.ToAnalytics())
	if err != nil {
		scope.TraceError(err)
		logrus.Errorf("failed to upsert progress for user %s in project %s: %v", req.UserUUID, req.ProjectID, err)
		return nil, toStatus(err)
	}

	logrus.Debugf("upserted mission %d progress for user %s in project %s",
		req.Entry.MissionID, req.UserUUID, req.ProjectID)
	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

// GetActivitySeries returns a dense daily series for one metric
func (h *Analytics) GetActivitySeries(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.GetActivitySeries")
	defer scope.Finish()

	var req GetActivitySeriesRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}

	kind, err := analytics.ParseMetricKind(req.Metric)
	if err != nil {
		return nil, toStatus(err)
	}
	start, end, err := h.parseRange(req.RangeStart, req.RangeEnd)
	if err != nil {
		return nil, toStatus(err)
	}

	records, err := h.manager.LoadSnapshot(scope.Ctx, req.ProjectID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(GetActivitySeriesResponse{
		Metric: kind,
		Points: analytics.BuildActivitySeries(records, kind, start, end),
	})
}

// GetActiveUsers returns DAU, WAU, MAU and stickiness
func (h *Analytics) GetActiveUsers(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.GetActiveUsers")
	defer scope.Finish()

	var req GetActiveUsersRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}
	ref, err := h.referenceDate(req.ReferenceDate)
	if err != nil {
		return nil, toStatus(err)
	}

	records, err := h.manager.LoadSnapshot(scope.Ctx, req.ProjectID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(analytics.SummarizeActiveUsers(records, ref))
}

// GetLifecycle classifies users into lifecycle buckets
func (h *Analytics) GetLifecycle(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.GetLifecycle")
	defer scope.Finish()

	var req GetLifecycleRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}
	if req.PeriodLengthDays == 0 {
		req.PeriodLengthDays = builtin.DefaultPeriodDays
	}
	ref, err := h.referenceDate(req.ReferenceDate)
	if err != nil {
		return nil, toStatus(err)
	}

	records, err := h.manager.LoadSnapshot(scope.Ctx, req.ProjectID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(GetLifecycleResponse{
		Lifecycle: analytics.ClassifyLifecycle(records, req.PeriodLengthDays, ref),
	})
}

// GetRetentionCohorts returns the weekly retention table, newest cohort first
func (h *Analytics) GetRetentionCohorts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.GetRetentionCohorts")
	defer scope.Finish()

	var req GetRetentionCohortsRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}
	if req.NumWeeksToTrack == 0 {
		req.NumWeeksToTrack = builtin.DefaultRetentionWeeks
	}
	ref, err := h.referenceDate(req.ReferenceDate)
	if err != nil {
		return nil, toStatus(err)
	}

	records, err := h.manager.LoadSnapshot(scope.Ctx, req.ProjectID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(GetRetentionCohortsResponse{
		Cohorts: analytics.BuildRetentionCohorts(records, req.NumWeeksToTrack, ref),
	})
}

// GetMissionFunnel returns engagement and completion per mission
func (h *Analytics) GetMissionFunnel(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.GetMissionFunnel")
	defer scope.Finish()

	var req GetMissionFunnelRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}

	records, err := h.manager.LoadSnapshot(scope.Ctx, req.ProjectID)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(GetMissionFunnelResponse{
		Steps: analytics.BuildMissionFunnel(records, req.MissionIDs),
	})
}

// RunReport runs one configured report
func (h *Analytics) RunReport(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.RunReport")
	defer scope.Finish()

	var req RunReportRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}
	ref, err := h.referenceDate(req.ReferenceDate)
	if err != nil {
		return nil, toStatus(err)
	}

	var override *dashboard.RangeOverride
	if req.RangeStart != "" {
		start, end, err := h.parseRange(req.RangeStart, req.RangeEnd)
		if err != nil {
			return nil, toStatus(err)
		}
		override = &dashboard.RangeOverride{Start: start, End: end}
	}

	result, err := h.manager.RunReport(scope.Ctx, req.ProjectID, req.ReportID, ref, override)
	if err != nil {
		logrus.Warnf("report %s failed for project %s: %v", req.ReportID, req.ProjectID, err)
		return nil, toStatus(err)
	}

	return encode(result)
}

// RunDashboard runs every report of a configured dashboard
func (h *Analytics) RunDashboard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	scope := common.GetScopeFromContext(ctx, "Analytics.RunDashboard")
	defer scope.Finish()

	var req RunDashboardRequest
	if err := h.parse(in, &req); err != nil {
		return nil, toStatus(err)
	}
	ref, err := h.referenceDate(req.ReferenceDate)
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := h.manager.RunDashboard(scope.Ctx, req.ProjectID, req.DashboardID, ref)
	if err != nil {
		logrus.Warnf("dashboard %s failed for project %s: %v", req.DashboardID, req.ProjectID, err)
		return nil, toStatus(err)
	}

	return encode(result)
}

func (h *Analytics) parse(in *structpb.Struct, req interface{}) error {
	if err := decode(in, req); err != nil {
		return err
	}
	return validate.Struct(req)
}

// referenceDate resolves a wire day, or the current time in the service timezone.
func (h *Analytics) referenceDate(day string) (time.Time, error) {
	if day == "" {
		return h.now().In(h.location), nil
	}
	return analytics.ParseDay(day, h.location)
}

func (h *Analytics) parseRange(startDay, endDay string) (time.Time, time.Time, error) {
	start, err := analytics.ParseDay(startDay, h.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := analytics.ParseDay(endDay, h.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rangeEnd %s is before rangeStart %s", errInvalidRequest, endDay, startDay)
	}
	if end.After(start.AddDate(0, 0, builtin.MaxRangeDays-1)) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: range %s to %s is longer than %d days",
			errInvalidRequest, startDay, endDay, builtin.MaxRangeDays)
	}
	return start, end, nil
}
