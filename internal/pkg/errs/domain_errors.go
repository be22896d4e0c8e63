package errs

import "errors"

// Sentinel errors shared by the domain and usecase layers
var (
	// Time range errors
	ErrInvalidTimeRange = errors.New("invalid time range")

	// Reservation conflicts
	ErrResourceTimeConflict      = errors.New("resource time conflict")
	ErrOfferNoTimeAvailabilities = errors.New("offer has no availability for the requested time")
	ErrInvalidStatus             = errors.New("invalid status for operation")
	ErrSameOwner                 = errors.New("owner change must move the resource to another project")
	ErrInvalidProperties         = errors.New("invalid properties")
	ErrAmbiguousName             = errors.New("more than one entity matches the name")

	// Lookup errors
	ErrOfferNotFound       = errors.New("offer not found")
	ErrLeaseNotFound       = errors.New("lease not found")
	ErrOwnerChangeNotFound = errors.New("owner change not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrProjectNotFound     = errors.New("project not found")

	// Authorization errors
	ErrNotResourceAdmin  = errors.New("project is not the resource administrator for the requested time")
	ErrOfferNotClaimable = errors.New("offer cannot be claimed by the project")
	ErrForbidden         = errors.New("operation not permitted for the project")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
