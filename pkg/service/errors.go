// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import "errors"

var (
	// ErrProjectNotFound is returned when no snapshot exists for a project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrStoreUnavailable is returned while the record store circuit is open.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrInvalidRecord is returned for records that cannot be stored.
	ErrInvalidRecord = errors.New("invalid analytics record")
)
