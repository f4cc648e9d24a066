// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package report

import (
	"context"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
)

// Report computes one analytics view over a project snapshot.
// Reports are registered in a Registry and run by the dashboard Manager.
type Report interface {
	// ID returns unique report identifier.
	ID() string

	// Name returns human-readable report name.
	Name() string

	// Run computes the report. It must not retain req.Records.
	Run(ctx context.Context, req Request) (*Result, error)

	// Config returns the report's configuration.
	Config() ReportConfig
}

// Request carries the snapshot and the time frame a report runs against.
type Request struct {
	ProjectID     string
	Records       []analytics.UserAnalyticsRecord
	ReferenceDate time.Time

	// RangeStart and RangeEnd override the configured range of series
	// reports when both are set.
	RangeStart *time.Time
	RangeEnd   *time.Time
}

// Result is the output of a single report run.
type Result struct {
	ReportID      string      `json:"reportId"`
	Type          string      `json:"type"`
	ReferenceDate string      `json:"referenceDate"`
	Data          interface{} `json:"data"`
}

// NewResult creates a result stamped with the report identity and reference day.
func NewResult(r Report, ref time.Time, data interface{}) *Result {
	return &Result{
		ReportID:      r.ID(),
		Type:          r.Config().Type,
		ReferenceDate: analytics.DayKey(ref),
		Data:          data,
	}
}
