package errors

import "errors"

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
)

// Event errors
var (
	ErrEventNotFound          = errors.New("event not found")
	ErrAutoAssignmentDisabled = errors.New("automatic assignment is disabled for this event")
)

// Assignment errors
var (
	ErrGenerationInProgress = errors.New("assignment generation already in progress for this event")
	ErrStatisticsNotFound   = errors.New("no assignment statistics stored for this event")
	ErrInvalidRoundFilter   = errors.New("round filter is out of range")
	ErrNoAssignments        = errors.New("no assignments generated for this event")
)

// Lock errors
var (
	ErrLockNotAcquired = errors.New("lock is held by another owner")
	ErrLockNotHeld     = errors.New("lock is not held by this owner")
	ErrLockBackend     = errors.New("lock backend unavailable")
)
