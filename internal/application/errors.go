package application

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrStoreNotFound        = errors.New("vendor store not found")
	ErrWorkOrderNotFound    = errors.New("work order not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrApplicationNotFound  = errors.New("application not found")

	// ErrNotEntitled means the caller is not the party a mutation
	// belongs to (wrong vendor, wrong property manager, wrong
	// recipient).
	ErrNotEntitled = errors.New("not authorized")

	// ErrConflict means a concurrent transition changed the row after
	// it was read; the caller should re-fetch and retry.
	ErrConflict = errors.New("work order was modified concurrently")

	ErrDuplicateApplication = errors.New("vendor already applied to this project")
	ErrApplicationDecided   = errors.New("application has already been decided")
	ErrProjectClosed        = errors.New("project is not open for applications")
	ErrLogNotAllowed        = errors.New("work order logs require an in-progress work order")

	ErrInvalidDispatch = errors.New("invalid notification dispatch request")

	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrStoreExists         = errors.New("vendor store already exists for this account")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
)
