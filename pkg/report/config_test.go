// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package report

import (
	"reflect"
	"testing"
)

func TestReportConfig_GetInt(t *testing.T) {
	cfg := ReportConfig{Parameters: map[string]interface{}{
		"yaml_int":   12,
		"json_float": float64(30),
		"fraction":   2.5,
		"text":       "7",
	}}

	tests := []struct {
		key  string
		want int
	}{
		{"yaml_int", 12},
		{"json_float", 30},
		{"fraction", 99},
		{"text", 99},
		{"missing", 99},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := cfg.GetInt(tt.key, 99); got != tt.want {
				t.Errorf("GetInt(%s) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestReportConfig_GetString(t *testing.T) {
	cfg := ReportConfig{Parameters: map[string]interface{}{"metric": "completions", "n": 3}}

	if got := cfg.GetString("metric", "active-users"); got != "completions" {
		t.Errorf("Expected completions, got %s", got)
	}
	if got := cfg.GetString("n", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback for non-string value, got %s", got)
	}
}

func TestReportConfig_GetInt64Slice(t *testing.T) {
	cfg := ReportConfig{Parameters: map[string]interface{}{
		"yaml":  []interface{}{1, 2, 3},
		"json":  []interface{}{float64(4), float64(5)},
		"mixed": []interface{}{1, "two"},
		"typed": []int{7, 8},
	}}

	tests := []struct {
		key  string
		want []int64
	}{
		{"yaml", []int64{1, 2, 3}},
		{"json", []int64{4, 5}},
		{"mixed", nil},
		{"typed", []int64{7, 8}},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := cfg.GetInt64Slice(tt.key); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetInt64Slice(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
