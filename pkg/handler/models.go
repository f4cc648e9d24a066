// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
)

// Dates on the wire are local calendar days formatted as YYYY-MM-DD.
// An empty referenceDate means today in the service timezone. Zero period and
// week counts take the built-in report defaults.

type PutSnapshotRequest struct {
	ProjectID string                        `json:"projectId" validate:"required"`
	Records   []service.UserAnalyticsRecord `json:"records"`
}

type UpsertProgressRequest struct {
	ProjectID           string                 `json:"projectId" validate:"required"`
	UserUUID            string                 `json:"userUuid" validate:"required"`
	FirstSeenTimeApprox service.Nanos          `json:"firstSeenTimeApprox"`
	Entry               *service.ProgressEntry `json:"entry" validate:"required"`
}

type GetActivitySeriesRequest struct {
	ProjectID  string `json:"projectId" validate:"required"`
	Metric     string `json:"metric" validate:"required"`
	RangeStart string `json:"rangeStart" validate:"required"`
	RangeEnd   string `json:"rangeEnd" validate:"required"`
}

type GetActivitySeriesResponse struct {
	Metric analytics.MetricKind            `json:"metric"`
	Points []analytics.TimeSeriesDataPoint `json:"points"`
}

type GetActiveUsersRequest struct {
	ProjectID     string `json:"projectId" validate:"required"`
	ReferenceDate string `json:"referenceDate"`
}

type GetLifecycleRequest struct {
	ProjectID        string `json:"projectId" validate:"required"`
	PeriodLengthDays int    `json:"periodLengthDays" validate:"gte=0,lte=365"`
	ReferenceDate    string `json:"referenceDate"`
}

// GetLifecycleResponse carries a null lifecycle for projects without records.
type GetLifecycleResponse struct {
	Lifecycle *analytics.LifecycleData `json:"lifecycle"`
}

type GetRetentionCohortsRequest struct {
	ProjectID       string `json:"projectId" validate:"required"`
	NumWeeksToTrack int    `json:"numWeeksToTrack" validate:"gte=0,lte=52"`
	ReferenceDate   string `json:"referenceDate"`
}

type GetRetentionCohortsResponse struct {
	Cohorts []analytics.RetentionCohortWeek `json:"cohorts"`
}

type GetMissionFunnelRequest struct {
	ProjectID  string  `json:"projectId" validate:"required"`
	MissionIDs []int64 `json:"missionIds" validate:"omitempty,unique"`
}

type GetMissionFunnelResponse struct {
	Steps []analytics.FunnelStep `json:"steps"`
}

type RunReportRequest struct {
	ProjectID     string `json:"projectId" validate:"required"`
	ReportID      string `json:"reportId" validate:"required"`
	ReferenceDate string `json:"referenceDate"`
	RangeStart    string `json:"rangeStart" validate:"required_with=RangeEnd"`
	RangeEnd      string `json:"rangeEnd" validate:"required_with=RangeStart"`
}

type RunDashboardRequest struct {
	ProjectID     string `json:"projectId" validate:"required"`
	DashboardID   string `json:"dashboardId" validate:"required"`
	ReferenceDate string `json:"referenceDate"`
}
