// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package analytics

import "errors"

var (
	ErrUnknownMetricKind = errors.New("unknown metric kind")
	ErrInvalidDay        = errors.New("invalid day")
)
