// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/service/mock"
)

func writeDashboards(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboards.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestInitDashboardManager(t *testing.T) {
	path := writeDashboards(t, `
reports:
  - {id: active, type: active_users, enabled: true}
  - {id: cohorts, type: retention, enabled: true, parameters: {weeks: 4}}
dashboards:
  - {id: overview, reports: [active, cohorts]}
`)
	store := mock.NewRecordStore(map[string][]analytics.UserAnalyticsRecord{"p1": {}})

	manager, err := InitDashboardManager(path, store)
	if err != nil {
		t.Fatalf("InitDashboardManager() error = %v", err)
	}

	res, err := manager.RunDashboard(context.Background(), "p1", "overview", time.Now())
	if err != nil {
		t.Fatalf("RunDashboard() error = %v", err)
	}
	if len(res.Reports) != 2 {
		t.Errorf("Expected 2 reports, got %d", len(res.Reports))
	}
}

func TestInitDashboardManager_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown type", "reports:\n  - {id: a, type: heatmap, enabled: true}\n"},
		{"disabled report on dashboard", "reports:\n  - {id: a, type: retention, enabled: false}\ndashboards:\n  - {id: d, reports: [a]}\n"},
		{"invalid parameters", "reports:\n  - {id: a, type: retention, enabled: true, parameters: {weeks: 0}}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := InitDashboardManager(writeDashboards(t, tt.yaml), mock.NewRecordStore(nil)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := InitDashboardManager(filepath.Join(t.TempDir(), "missing.yaml"), mock.NewRecordStore(nil)); err == nil {
		t.Error("Expected error for missing config file")
	}
}
