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
	// ActivitySeriesReportType is the identifier for daily activity series reports
	ActivitySeriesReportType = "activity_series"

	// DefaultRangeDays is the default length of a series ending on the reference day
	DefaultRangeDays = 30
	// MaxRangeDays bounds the length of any activity series, in days
	MaxRangeDays = 366
)

type activitySeriesParams struct {
	Metric    string `validate:"required,oneof=active-users new-users completions"`
	RangeDays int    `validate:"min=1,max=366"`
}

// ActivitySeriesReport produces a dense daily series for one metric kind.
type ActivitySeriesReport struct {
	config    report.ReportConfig
	metric    analytics.MetricKind
	rangeDays int
}

// ActivitySeriesData is the payload of an activity series result.
type ActivitySeriesData struct {
	Metric     analytics.MetricKind            `json:"metric"`
	RangeStart string                          `json:"rangeStart"`
	RangeEnd   string                          `json:"rangeEnd"`
	Points     []analytics.TimeSeriesDataPoint `json:"points"`
}

// NewActivitySeriesReport creates a new activity series report.
func NewActivitySeriesReport(config report.ReportConfig) (*ActivitySeriesReport, error) {
	params := activitySeriesParams{
		Metric:    config.GetString("metric", string(analytics.MetricActiveUsers)),
		RangeDays: config.GetInt("range_days", DefaultRangeDays),
	}
	if err := validateParams(config.ID, params); err != nil {
		return nil, err
	}

	logrus.Infof("creating activity series report %s with metric=%s range_days=%d",
		config.ID, params.Metric, params.RangeDays)

	return &ActivitySeriesReport{
		config:    config,
		metric:    analytics.MetricKind(params.Metric),
		rangeDays: params.RangeDays,
	}, nil
}

// ID returns the report identifier.
func (r *ActivitySeriesReport) ID() string {
	return r.config.ID
}

// Name returns the report name.
func (r *ActivitySeriesReport) Name() string {
	return "Daily Activity Series"
}

// Config returns the report configuration.
func (r *ActivitySeriesReport) Config() report.ReportConfig {
	return r.config
}

// Run builds the series over the configured trailing range, or over the
// request's explicit range when one is given.
func (r *ActivitySeriesReport) Run(ctx context.Context, req report.Request) (*report.Result, error) {
	start := analytics.StartOfDay(req.ReferenceDate).AddDate(0, 0, -(r.rangeDays - 1))
	end := req.ReferenceDate
	if req.RangeStart != nil && req.RangeEnd != nil {
		start, end = *req.RangeStart, *req.RangeEnd
	}

	data := ActivitySeriesData{
		Metric:     r.metric,
		RangeStart: analytics.DayKey(start),
		RangeEnd:   analytics.DayKey(end),
		Points:     analytics.BuildActivitySeries(req.Records, r.metric, start, end),
	}

	logrus.Debugf("report %s built %d points for project %s", r.ID(), len(data.Points), req.ProjectID)
	return report.NewResult(r, req.ReferenceDate, data), nil
}
