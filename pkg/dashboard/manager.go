// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/common"
	"github.com/AccelByte/extend-mission-analytics/pkg/metrics"
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
)

var (
	// ErrReportNotFound is returned for report IDs that are not registered.
	ErrReportNotFound = errors.New("report not found")
	// ErrDashboardNotFound is returned for unknown dashboard IDs.
	ErrDashboardNotFound = errors.New("dashboard not found")
)

// Manager runs reports and dashboards against project snapshots:
// Snapshot → Reports → Results
type Manager struct {
	store      service.RecordStore
	registry   *report.Registry
	dashboards map[string]DashboardConfig
}

// NewManager creates a new dashboard manager.
// config may be nil when only ad-hoc reports are served.
func NewManager(store service.RecordStore, registry *report.Registry, config *Config) *Manager {
	dashboards := make(map[string]DashboardConfig)
	if config != nil {
		for _, d := range config.Dashboards {
			dashboards[d.ID] = d
		}
	}

	return &Manager{
		store:      store,
		registry:   registry,
		dashboards: dashboards,
	}
}

// RangeOverride replaces the configured range of series reports.
type RangeOverride struct {
	Start time.Time
	End   time.Time
}

// ReportOutcome is one report's entry in a dashboard result.
type ReportOutcome struct {
	ReportID string         `json:"reportId"`
	Result   *report.Result `json:"result,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// DashboardResult is the output of a dashboard run.
type DashboardResult struct {
	DashboardID   string          `json:"dashboardId"`
	ProjectID     string          `json:"projectId"`
	ReferenceDate string          `json:"referenceDate"`
	Reports       []ReportOutcome `json:"reports"`
}

// LoadSnapshot reads the records of a project and records the snapshot size.
func (m *Manager) LoadSnapshot(ctx context.Context, projectID string) ([]analytics.UserAnalyticsRecord, error) {
	records, err := m.store.GetSnapshot(ctx, projectID)
	if err != nil {
		if !errors.Is(err, service.ErrProjectNotFound) {
			metrics.StoreErrorsTotal.WithLabelValues("get_snapshot").Inc()
		}
		return nil, err
	}

	metrics.SnapshotUsers.WithLabelValues(projectID).Set(float64(len(records)))
	return records, nil
}

// RunReport runs a single registered report for a project.
func (m *Manager) RunReport(ctx context.Context, projectID, reportID string, ref time.Time, override *RangeOverride) (*report.Result, error) {
	scope := common.ChildScopeFromRemoteScope(ctx, "dashboard.RunReport")
	defer scope.Finish()
	scope.TraceTag("project_id", projectID)
	scope.TraceTag("report_id", reportID)

	r := m.registry.Get(reportID)
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}

	records, err := m.LoadSnapshot(scope.Ctx, projectID)
	if err != nil {
		scope.TraceError(err)
		return nil, err
	}

	req := report.Request{
		ProjectID:     projectID,
		Records:       records,
		ReferenceDate: ref,
	}
	if override != nil {
		req.RangeStart = &override.Start
		req.RangeEnd = &override.End
	}

	return m.run(scope, r, req)
}

// RunDashboard runs every report of a dashboard over one snapshot read.
// A failing report is reported in its outcome and does not stop the others.
func (m *Manager) RunDashboard(ctx context.Context, projectID, dashboardID string, ref time.Time) (*DashboardResult, error) {
	scope := common.ChildScopeFromRemoteScope(ctx, "dashboard.RunDashboard")
	defer scope.Finish()
	scope.TraceTag("project_id", projectID)
	scope.TraceTag("dashboard_id", dashboardID)

	d, ok := m.dashboards[dashboardID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDashboardNotFound, dashboardID)
	}

	records, err := m.LoadSnapshot(scope.Ctx, projectID)
	if err != nil {
		scope.TraceError(err)
		return nil, err
	}

	scope.Log.Infof("running dashboard %s with %d reports for project %s (%d users)",
		dashboardID, len(d.Reports), projectID, len(records))

	result := &DashboardResult{
		DashboardID:   dashboardID,
		ProjectID:     projectID,
		ReferenceDate: analytics.DayKey(ref),
		Reports:       make([]ReportOutcome, 0, len(d.Reports)),
	}

	failures := 0
	for _, reportID := range d.Reports {
		outcome := ReportOutcome{ReportID: reportID}

		r := m.registry.Get(reportID)
		if r == nil {
			outcome.Error = fmt.Sprintf("%v: %s", ErrReportNotFound, reportID)
			failures++
			result.Reports = append(result.Reports, outcome)
			continue
		}

		res, err := m.run(scope, r, report.Request{
			ProjectID:     projectID,
			Records:       records,
			ReferenceDate: ref,
		})
		if err != nil {
			outcome.Error = err.Error()
			failures++
		} else {
			outcome.Result = res
		}
		result.Reports = append(result.Reports, outcome)
	}

	if failures > 0 {
		scope.Log.Warnf("dashboard %s completed with %d failed reports", dashboardID, failures)
	}

	return result, nil
}

// DashboardIDs returns the configured dashboard IDs in ascending order.
func (m *Manager) DashboardIDs() []string {
	ids := make([]string, 0, len(m.dashboards))
	for id := range m.dashboards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *Manager) run(scope *common.Scope, r report.Report, req report.Request) (*report.Result, error) {
	child := scope.NewChildScope("report." + r.ID())
	defer child.Finish()

	reportType := r.Config().Type
	start := time.Now()
	result, err := r.Run(child.Ctx, req)
	metrics.ReportDuration.WithLabelValues(reportType).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ReportRunsTotal.WithLabelValues(reportType, metrics.StatusError).Inc()
		child.TraceError(err)
		child.Log.Errorf("report %s failed: %v", r.ID(), err)
		return nil, fmt.Errorf("report %s failed: %w", r.ID(), err)
	}

	metrics.ReportRunsTotal.WithLabelValues(reportType, metrics.StatusSuccess).Inc()
	child.Log.Debugf("report %s completed in %s", r.ID(), time.Since(start))
	return result, nil
}
