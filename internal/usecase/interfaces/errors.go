package interfaces

import "errors"

var (
	// ErrAlreadyExists is returned by conditional creates when the key is taken.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrConditionFailed is returned when a guarded write lost to a concurrent writer.
	ErrConditionFailed = errors.New("write condition failed")
	// ErrLockNotAcquired is returned when another holder owns the lock.
	ErrLockNotAcquired = errors.New("lock not acquired")
)
