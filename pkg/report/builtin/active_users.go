// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
)

// ActiveUsersReportType is the identifier for DAU/WAU/MAU reports
const ActiveUsersReportType = "active_users"

// ActiveUsersReport reports trailing-window active user counts.
type ActiveUsersReport struct {
	config report.ReportConfig
}

// NewActiveUsersReport creates a new active users report.
func NewActiveUsersReport(config report.ReportConfig) *ActiveUsersReport {
	return &ActiveUsersReport{config: config}
}

// ID returns the report identifier.
func (r *ActiveUsersReport) ID() string {
	return r.config.ID
}

// Name returns the report name.
func (r *ActiveUsersReport) Name() string {
	return "Active Users"
}

// Config returns the report configuration.
func (r *ActiveUsersReport) Config() report.ReportConfig {
	return r.config
}

// Run computes DAU, WAU, MAU and stickiness for the reference date.
func (r *ActiveUsersReport) Run(ctx context.Context, req report.Request) (*report.Result, error) {
	summary := analytics.SummarizeActiveUsers(req.Records, req.ReferenceDate)
	return report.NewResult(r, req.ReferenceDate, summary), nil
}
