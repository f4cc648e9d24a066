// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/AccelByte/extend-mission-analytics/pkg/dashboard"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
	"github.com/sirupsen/logrus"
)

// InitDashboardManager loads the dashboards config, builds the reports and
// returns a manager reading snapshots from store.
func InitDashboardManager(configPath string, store service.RecordStore) (*dashboard.Manager, error) {
	dashboardConfig, err := dashboard.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboards config from %s: %w", configPath, err)
	}
	logrus.Infof("loaded dashboards configuration from %s", configPath)

	registry, err := InitReportRegistry(dashboardConfig)
	if err != nil {
		return nil, err
	}

	if err := dashboard.ValidateWiring(registry, dashboardConfig); err != nil {
		return nil, err
	}
	logrus.Info("dashboard wiring validation passed")

	manager := dashboard.NewManager(store, registry, dashboardConfig)
	logrus.Infof("initialized dashboard manager with %d dashboards", len(dashboardConfig.Dashboards))

	return manager, nil
}
