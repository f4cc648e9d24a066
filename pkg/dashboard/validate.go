// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package dashboard

import (
	"fmt"
	"strings"

	"github.com/AccelByte/extend-mission-analytics/pkg/report"
)

// ValidateWiring validates that the configured reports are correctly wired.
// It checks that:
// - All enabled reports in config have registered instances
// - Dashboards only reference enabled reports
//
// This catches common mistakes like forgetting to register a report type
// factory or listing a disabled report on a dashboard.
func ValidateWiring(registry *report.Registry, config *Config) error {
	var errors []string

	enabled := make(map[string]bool)
	for _, rc := range config.Reports {
		if !rc.Enabled {
			continue
		}
		enabled[rc.ID] = true

		if registry.Get(rc.ID) == nil {
			errors = append(errors, fmt.Sprintf("report '%s' (type=%s) is enabled in config but not registered", rc.ID, rc.Type))
		}
	}

	for _, d := range config.Dashboards {
		for _, reportID := range d.Reports {
			if !enabled[reportID] {
				errors = append(errors, fmt.Sprintf("dashboard '%s' references disabled report '%s'", d.ID, reportID))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("dashboard wiring validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
