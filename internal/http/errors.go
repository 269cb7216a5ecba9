package http

import (
	"fmt"

	"appliance-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidRequestBody       = "API_1000"
	codeInvalidDate              = "API_1001"
	codeInvalidDateRange         = "API_1002"
	codeMissingDeviceID          = "API_1003"
	codeInternalRollupListFailed = "API_9000"
)

func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, "request body must be empty or a JSON object", cause)
}

func errInvalidDate(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDate, fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", raw), cause)
}

func errInvalidDateRange(from, to string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateRange, fmt.Sprintf("invalid range: from %s is after to %s", from, to), nil)
}

func errMissingDeviceID() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingDeviceID, "device id must not be empty", nil)
}

func errInternalRollupListFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRollupListFailed, fmt.Errorf("rollupListFailed: %w", cause))
}
