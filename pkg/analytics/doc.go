// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package analytics turns per-user mission progress snapshots into daily
// series, trailing active-user counts, lifecycle summaries, weekly retention
// cohorts and mission funnels.
//
// Every function is pure: it reads the records it is given, never retains
// them, and takes the reference date explicitly. Calendar days are those of
// the location carried by the reference or range arguments.
package analytics
