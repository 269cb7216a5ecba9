package rollups

import (
	"fmt"

	"appliance-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidDeviceID           = "ROLL_1000"
	codeInternalRollupStoreFailed = "ROLL_9000"
)

// errInvalidDeviceID returns an error when an empty device identifier is passed.
func errInvalidDeviceID() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDeviceID, "device id must not be empty", nil)
}

// errInternalRollupStoreFailed returns an error when the rollup upsert fails.
func errInternalRollupStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRollupStoreFailed, fmt.Errorf("rollupStoreFailed: %w", cause))
}
