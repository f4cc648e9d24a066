// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
	"github.com/sirupsen/logrus"
)

const (
	// RetentionReportType is the identifier for weekly retention cohort reports
	RetentionReportType = "retention"

	// DefaultRetentionWeeks is the default number of weeks tracked per cohort
	DefaultRetentionWeeks = 8
)

type retentionParams struct {
	Weeks int `validate:"min=1,max=52"`
}

// RetentionReport builds the weekly retention cohort table.
type RetentionReport struct {
	config report.ReportConfig
	weeks  int
}

// NewRetentionReport creates a new retention report.
func NewRetentionReport(config report.ReportConfig) (*RetentionReport, error) {
	params := retentionParams{Weeks: config.GetInt("weeks", DefaultRetentionWeeks)}
	if err := validateParams(config.ID, params); err != nil {
		return nil, err
	}

	logrus.Infof("creating retention report %s with weeks=%d", config.ID, params.Weeks)

	return &RetentionReport{config: config, weeks: params.Weeks}, nil
}

// ID returns the report identifier.
func (r *RetentionReport) ID() string {
	return r.config.ID
}

// Name returns the report name.
func (r *RetentionReport) Name() string {
	return "Weekly Retention Cohorts"
}

// Config returns the report configuration.
func (r *RetentionReport) Config() report.ReportConfig {
	return r.config
}

// Run builds cohorts relative to the reference date, newest first.
func (r *RetentionReport) Run(ctx context.Context, req report.Request) (*report.Result, error) {
	cohorts := analytics.BuildRetentionCohorts(req.Records, r.weeks, req.ReferenceDate)
	logrus.Debugf("report %s built %d cohorts for project %s", r.ID(), len(cohorts), req.ProjectID)
	return report.NewResult(r, req.ReferenceDate, cohorts), nil
}
