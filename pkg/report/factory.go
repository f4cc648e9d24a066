// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package report

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ReportFactory is a function that creates a report from a configuration.
type ReportFactory func(config ReportConfig) (Report, error)

var (
	factoriesMu sync.RWMutex
	// factories stores registered report factories by type
	factories = make(map[string]ReportFactory)
)

// RegisterReportType registers a factory function for a report type.
// This allows external packages to register their report types without creating import cycles.
func RegisterReportType(reportType string, factory ReportFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	factories[reportType] = factory
	logrus.Debugf("registered report type: %s", reportType)
}

// IsRegisteredType reports whether a factory exists for reportType.
func IsRegisteredType(reportType string) bool {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	_, ok := factories[reportType]
	return ok
}

// CreateReport creates a report instance based on the configuration.
// Returns nil without error for disabled reports and an error if the report type is unknown.
func CreateReport(config ReportConfig) (Report, error) {
	if !config.Enabled {
		logrus.Infof("skipping disabled report: %s", config.ID)
		return nil, nil
	}

	logrus.Infof("creating report: id=%s, type=%s", config.ID, config.Type)

	factoriesMu.RLock()
	factory, exists := factories[config.Type]
	factoriesMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("unknown report type: %s", config.Type)
	}

	return factory(config)
}

// CreateReports creates multiple report instances from a list of configurations.
// Returns all successfully created reports and any errors encountered.
func CreateReports(configs []ReportConfig) ([]Report, []error) {
	var reports []Report
	var errors []error

	for _, config := range configs {
		r, err := CreateReport(config)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to create report %s: %w", config.ID, err))
			continue
		}

		if r != nil {
			reports = append(reports, r)
		}
	}

	return reports, errors
}

// RegisterReports creates reports from configs and registers them with the registry.
// Returns an error if any enabled report cannot be created.
func RegisterReports(registry *Registry, configs []ReportConfig) error {
	reports, errors := CreateReports(configs)

	if len(errors) > 0 {
		for _, err := range errors {
			logrus.Errorf("report creation error: %v", err)
		}
		return fmt.Errorf("failed to create %d reports: %w", len(errors), errors[0])
	}

	for _, r := range reports {
		if err := registry.Register(r); err != nil {
			return fmt.Errorf("failed to register report %s: %w", r.ID(), err)
		}
	}

	logrus.Infof("registered %d reports", len(reports))
	return nil
}
