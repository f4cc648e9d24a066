// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegister(t *testing.T) {
	registry := prometheus.NewRegistry()
	Register(registry)

	ReportRunsTotal.WithLabelValues("retention", StatusSuccess).Inc()
	SnapshotUsers.WithLabelValues("p1").Set(42)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() != "mission_analytics_snapshot_users" {
			continue
		}
		found = true
		if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 42 {
			t.Errorf("Expected snapshot users 42, got %v", got)
		}
	}
	if !found {
		t.Error("Expected mission_analytics_snapshot_users to be gathered")
	}
}

func TestRegister_Twice(t *testing.T) {
	registry := prometheus.NewRegistry()
	Register(registry)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register(registry)
}
