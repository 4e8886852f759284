package domain

import "errors"

// Configuration errors abort a run before any file is touched.
var (
	ErrInvalidBrand    = errors.New("brand metadata is incomplete")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidMetadata = errors.New("invalid metadata file")
	ErrInvalidConfig   = errors.New("invalid project config")
)

var (
	ErrWorkspaceNotFound = errors.New("workspace does not exist")
	ErrFileFailures      = errors.New("one or more files could not be processed")
	ErrResidualLegacy    = errors.New("legacy brand tokens remain")
	ErrRegressionFailed  = errors.New("regression check failed")
	ErrInvalidCatalogue  = errors.New("redirect catalogue is inconsistent")
	ErrPurgeFailed       = errors.New("cdn purge failed")
)
