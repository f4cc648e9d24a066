// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package dashboard

import (
	"fmt"
	"os"
	"strings"

	"github.com/AccelByte/extend-mission-analytics/pkg/report"
	"gopkg.in/yaml.v3"
)

// Config represents the complete dashboards configuration.
type Config struct {
	Reports    []report.ReportConfig `yaml:"reports"`
	Dashboards []DashboardConfig     `yaml:"dashboards"`
}

// DashboardConfig groups reports that are computed together over one snapshot.
type DashboardConfig struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Reports []string `yaml:"reports"` // Report IDs, in display order
}

// LoadConfig loads dashboards configuration from a YAML file.
// Supports environment variable expansion in the form ${VAR_NAME} or ${VAR_NAME:default}.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates dashboards configuration from YAML bytes.
func ParseConfig(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration for common errors.
func (c *Config) Validate() error {
	reportIDs := make(map[string]bool)
	for _, r := range c.Reports {
		if r.ID == "" {
			return fmt.Errorf("report with empty ID found")
		}
		if reportIDs[r.ID] {
			return fmt.Errorf("duplicate report ID: %s", r.ID)
		}
		reportIDs[r.ID] = true

		if r.Type == "" {
			return fmt.Errorf("report %s has empty type", r.ID)
		}
	}

	dashboardIDs := make(map[string]bool)
	for _, d := range c.Dashboards {
		if d.ID == "" {
			return fmt.Errorf("dashboard with empty ID found")
		}
		if dashboardIDs[d.ID] {
			return fmt.Errorf("duplicate dashboard ID: %s", d.ID)
		}
		dashboardIDs[d.ID] = true

		if len(d.Reports) == 0 {
			return fmt.Errorf("dashboard %s has no reports", d.ID)
		}
		for _, reportID := range d.Reports {
			if !reportIDs[reportID] {
				return fmt.Errorf("dashboard %s references unknown report: %s", d.ID, reportID)
			}
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
