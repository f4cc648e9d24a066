// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"github.com/AccelByte/extend-mission-analytics/pkg/report"
)

// RegisterReports registers all built-in report types with the factory.
func RegisterReports() {
	report.RegisterReportType(ActivitySeriesReportType, func(config report.ReportConfig) (report.Report, error) {
		return NewActivitySeriesReport(config)
	})

	report.RegisterReportType(ActiveUsersReportType, func(config report.ReportConfig) (report.Report, error) {
		return NewActiveUsersReport(config), nil
	})

	report.RegisterReportType(LifecycleReportType, func(config report.ReportConfig) (report.Report, error) {
		return NewLifecycleReport(config)
	})

	report.RegisterReportType(RetentionReportType, func(config report.ReportConfig) (report.Report, error) {
		return NewRetentionReport(config)
	})

	report.RegisterReportType(MissionFunnelReportType, func(config report.ReportConfig) (report.Report, error) {
		return NewMissionFunnelReport(config)
	})
}
