package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrUnauthorized       = errors.New("unauthorized to access this employee")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrHRAccessRequired   = errors.New("hr admin access required")
	ErrSuperAdminRequired = errors.New("super admin access required")
)
