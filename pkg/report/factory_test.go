// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package report_test

import (
	"testing"

	"github.com/AccelByte/extend-mission-analytics/pkg/report"
	"github.com/AccelByte/extend-mission-analytics/pkg/report/builtin"
)

func init() {
	builtin.RegisterReports()
}

func TestCreateReport_Retention(t *testing.T) {
	config := report.ReportConfig{
		ID:         "weekly_retention",
		Type:       builtin.RetentionReportType,
		Enabled:    true,
		Parameters: map[string]interface{}{"weeks": 6},
	}

	r, err := report.CreateReport(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r == nil {
		t.Fatal("Expected non-nil report")
	}

	if r.ID() != config.ID {
		t.Errorf("Expected report ID '%s', got '%s'", config.ID, r.ID())
	}
	if r.Name() != "Weekly Retention Cohorts" {
		t.Errorf("Expected report name 'Weekly Retention Cohorts', got '%s'", r.Name())
	}
}

func TestCreateReport_Disabled(t *testing.T) {
	config := report.ReportConfig{ID: "off", Type: builtin.LifecycleReportType, Enabled: false}

	r, err := report.CreateReport(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r != nil {
		t.Error("Expected nil report for disabled config")
	}
}

func TestCreateReport_UnknownType(t *testing.T) {
	config := report.ReportConfig{ID: "x", Type: "heatmap", Enabled: true}

	if _, err := report.CreateReport(config); err == nil {
		t.Error("Expected error for unknown report type")
	}
}

func TestCreateReport_InvalidParameters(t *testing.T) {
	config := report.ReportConfig{
		ID:         "bad_lifecycle",
		Type:       builtin.LifecycleReportType,
		Enabled:    true,
		Parameters: map[string]interface{}{"period_days": 0},
	}

	if _, err := report.CreateReport(config); err == nil {
		t.Error("Expected error for period_days=0")
	}
}

func TestIsRegisteredType(t *testing.T) {
	for _, typ := range []string{
		builtin.ActivitySeriesReportType,
		builtin.ActiveUsersReportType,
		builtin.LifecycleReportType,
		builtin.RetentionReportType,
		builtin.MissionFunnelReportType,
	} {
		if !report.IsRegisteredType(typ) {
			t.Errorf("Expected %s to be registered", typ)
		}
	}

	if report.IsRegisteredType("heatmap") {
		t.Error("Expected heatmap to be unregistered")
	}
}

func TestRegisterReports(t *testing.T) {
	registry := report.NewRegistry()
	configs := []report.ReportConfig{
		{ID: "active", Type: builtin.ActiveUsersReportType, Enabled: true},
		{ID: "lifecycle", Type: builtin.LifecycleReportType, Enabled: true},
		{ID: "disabled", Type: builtin.RetentionReportType, Enabled: false},
	}

	if err := report.RegisterReports(registry, configs); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 registered reports, got %d", registry.Count())
	}
}

func TestRegisterReports_FailsOnBadConfig(t *testing.T) {
	registry := report.NewRegistry()
	configs := []report.ReportConfig{
		{ID: "active", Type: builtin.ActiveUsersReportType, Enabled: true},
		{ID: "bad", Type: builtin.ActivitySeriesReportType, Enabled: true,
			Parameters: map[string]interface{}{"metric": "revenue"}},
	}

	if err := report.RegisterReports(registry, configs); err == nil {
		t.Error("Expected error for invalid metric")
	}
	if registry.Count() != 0 {
		t.Errorf("Expected nothing registered on failure, got %d", registry.Count())
	}
}
