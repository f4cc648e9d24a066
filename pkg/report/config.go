// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package report

// ReportConfig is the base configuration for all reports.
// This is typically loaded from the dashboards YAML file.
type ReportConfig struct {
	ID         string                 `yaml:"id" json:"id"`
	Name       string                 `yaml:"name" json:"name"`
	Type       string                 `yaml:"type" json:"type"` // e.g., "retention"
	Enabled    bool                   `yaml:"enabled" json:"enabled"`
	Parameters map[string]interface{} `yaml:"parameters" json:"parameters"` // Report-specific parameters
}

// GetInt retrieves an integer value from parameters with a default.
// YAML yields int, JSON yields float64; both are accepted.
func (c *ReportConfig) GetInt(key string, defaultValue int) int {
	if val, ok := c.Parameters[key]; ok {
		if n, ok := toInt64(val); ok {
			return int(n)
		}
	}
	return defaultValue
}

// GetString retrieves a string value from parameters with a default.
func (c *ReportConfig) GetString(key string, defaultValue string) string {
	if val, ok := c.Parameters[key]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return defaultValue
}

// GetInt64Slice retrieves a list of integers from parameters.
// Returns nil when the key is missing or any element is not an integer.
func (c *ReportConfig) GetInt64Slice(key string) []int64 {
	val, ok := c.Parameters[key]
	if !ok {
		return nil
	}

	var items []interface{}
	switch v := val.(type) {
	case []interface{}:
		items = v
	case []int:
		for _, n := range v {
			items = append(items, n)
		}
	case []int64:
		return v
	default:
		return nil
	}

	out := make([]int64, 0, len(items))
	for _, item := range items {
		n, ok := toInt64(item)
		if !ok {
			return nil
		}
		out = append(out, n)
	}
	return out
}

func toInt64(val interface{}) (int64, bool) {
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}
