// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"errors"

	"github.com/AccelByte/extend-mission-analytics/pkg/analytics"
	"github.com/AccelByte/extend-mission-analytics/pkg/dashboard"
	"github.com/AccelByte/extend-mission-analytics/pkg/service"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errInvalidRequest = errors.New("invalid request")

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, service.ErrInvalidRecord),
		errors.Is(err, analytics.ErrUnknownMetricKind),
		errors.Is(err, analytics.ErrInvalidDay),
		errors.As(err, &validationErrs):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, dashboard.ErrReportNotFound),
		errors.Is(err, dashboard.ErrDashboardNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
