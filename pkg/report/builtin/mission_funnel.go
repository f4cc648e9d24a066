// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
)

// MissionFunnelReportType is the identifier for mission funnel reports
const MissionFunnelReportType = "mission_funnel"

type missionFunnelParams struct {
	Missions []int64 `validate:"omitempty,unique,dive,min=0"`
}

// MissionFunnelReport reports engagement and completion along a mission sequence.
type MissionFunnelReport struct {
	config   report.ReportConfig
	missions []int64
}

// NewMissionFunnelReport creates a new mission funnel report.
// An empty missions list reports every mission in ascending ID order.
func NewMissionFunnelReport(config report.ReportConfig) (*MissionFunnelReport, error) {
	params := missionFunnelParams{Missions: config.GetInt64Slice("missions")}
	if _, set := config.Parameters["missions"]; set && params.Missions == nil {
		return nil, fmt.Errorf("invalid parameters for report %s: missions must be a list of integers", config.ID)
	}
	if err := validateParams(config.ID, params); err != nil {
		return nil, err
	}

	return &MissionFunnelReport{config: config, missions: params.Missions}, nil
}

// ID returns the report identifier.
func (r *MissionFunnelReport) ID() string {
	return r.config.ID
}

// Name returns the report name.
func (r *MissionFunnelReport) Name() string {
	return "Mission Funnel"
}

// Config returns the report configuration.
func (r *MissionFunnelReport) Config() report.ReportConfig {
	return r.config
}

// Run computes the funnel over the whole snapshot.
func (r *MissionFunnelReport) Run(ctx context.Context, req report.Request) (*report.Result, error) {
	steps := analytics.BuildMissionFunnel(req.Records, r.missions)
	return report.NewResult(r, req.ReferenceDate, steps), nil
}
