// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateParams checks a report's typed parameters against their struct tags.
func validateParams(reportID string, params interface{}) error {
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("invalid parameters for report %s: %w", reportID, err)
	}
	return nil
}
