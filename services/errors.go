package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrNotFound         = errors.New("record not found")
	ErrForbidden        = errors.New("you do not have permission to perform this action")
	ErrNotAssigned      = errors.New("patient is not assigned to you")
	ErrNoStaffAvailable = errors.New("no staff available for assignment")
)
