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
	// LifecycleReportType is the identifier for lifecycle classification reports
	LifecycleReportType = "lifecycle"

	// DefaultPeriodDays is the default lifecycle period length
	DefaultPeriodDays = 7
)

type lifecycleParams struct {
	PeriodDays int `validate:"min=1,max=365"`
}

// LifecycleReport classifies users into new, retained, resurrected and churned.
type LifecycleReport struct {
	config     report.ReportConfig
	periodDays int
}

// NewLifecycleReport creates a new lifecycle report.
func NewLifecycleReport(config report.ReportConfig) (*LifecycleReport, error) {
	params := lifecycleParams{PeriodDays: config.GetInt("period_days", DefaultPeriodDays)}
	if err := validateParams(config.ID, params); err != nil {
		return nil, err
	}

	logrus.Infof("creating lifecycle report %s with period_days=%d", config.ID, params.PeriodDays)

	return &LifecycleReport{config: config, periodDays: params.PeriodDays}, nil
}

// ID returns the report identifier.
func (r *LifecycleReport) ID() string {
	return r.config.ID
}

// Name returns the report name.
func (r *LifecycleReport) Name() string {
	return "User Lifecycle"
}

// Config returns the report configuration.
func (r *LifecycleReport) Config() report.ReportConfig {
	return r.config
}

// Run classifies the snapshot. Data is nil for an empty snapshot.
func (r *LifecycleReport) Run(ctx context.Context, req report.Request) (*report.Result, error) {
	data := analytics.ClassifyLifecycle(req.Records, r.periodDays, req.ReferenceDate)
	if data == nil {
		return report.NewResult(r, req.ReferenceDate, nil), nil
	}
	return report.NewResult(r, req.ReferenceDate, data), nil
}
