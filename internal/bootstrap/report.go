// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/AccelByte/extend-mission-analytics/pkg/dashboard"
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
	reportBuiltin "github.com/AccelByte/extend-mission-analytics/pkg/report/builtin"
	"github.com/sirupsen/logrus"
)

// InitReportRegistry creates report instances from the dashboards config.
//
// ============================================================
// DEVELOPER: Register custom report types here.
// ============================================================
// Steps to add a new report:
// 1. Create your report in pkg/report/builtin/
// 2. Implement the report.Report interface
// 3. Register the report type in pkg/report/builtin/init.go
// 4. Add the report to config/dashboards.yaml
// ============================================================
func InitReportRegistry(dashboardConfig *dashboard.Config) (*report.Registry, error) {
	reportBuiltin.RegisterReports()

	registry := report.NewRegistry()
	if err := report.RegisterReports(registry, dashboardConfig.Reports); err != nil {
		return nil, fmt.Errorf("failed to register reports: %w", err)
	}

	logrus.Infof("registered %d reports", registry.Count())
	return registry, nil
}
