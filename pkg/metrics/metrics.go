// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package metrics defines the Prometheus collectors of the analytics service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mission_analytics"

var (
	// ReportRunsTotal counts report runs by report type and outcome.
	ReportRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_runs_total",
			Help:      "Total number of report runs",
		},
		[]string{"report_type", "status"},
	)

	// ReportDuration observes how long each report takes to compute.
	ReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Time spent computing a report",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"report_type"},
	)

	// SnapshotUsers tracks the number of user records in the last loaded snapshot per project.
	SnapshotUsers = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_users",
			Help:      "Number of user records in the most recently read snapshot",
		},
		[]string{"project_id"},
	)

	// StoreErrorsTotal counts record store failures by operation.
	StoreErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Total number of record store errors",
		},
		[]string{"operation"},
	)
)

// Status label values for ReportRunsTotal.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Register adds every collector of this package to registry.
func Register(registry prometheus.Registerer) {
	registry.MustRegister(
		ReportRunsTotal,
		ReportDuration,
		SnapshotUsers,
		StoreErrorsTotal,
	)
}
