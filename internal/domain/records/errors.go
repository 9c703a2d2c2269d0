package records

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repositories, services and the payload store.
// Callers classify them with errors.Is.
var (
	// ErrNotFound indicates the requested record id does not resolve to a row.
	ErrNotFound = errors.New("record not found")

	// ErrPatientNotFound indicates a create operation referenced a patient id
	// that does not exist. No partial writes are left behind.
	ErrPatientNotFound = errors.New("no matching patient")

	// ErrTypeNotFound indicates a biometric create referenced a biometric type
	// id that does not exist. No partial writes are left behind.
	ErrTypeNotFound = errors.New("no matching biometric type")

	// ErrPayloadUnavailable indicates the ECG row exists but its sample payload
	// is missing or cannot be decoded.
	ErrPayloadUnavailable = errors.New("ecg payload unavailable")

	// ErrValidation indicates a malformed or out-of-range field, surfaced
	// before any write is attempted.
	ErrValidation = errors.New("validation failed")
)

// StorageError wraps an unexpected backing-store failure (connectivity loss,
// constraint violation). It always triggers rollback of the active unit of
// work and is never retried inside the core.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for operation op.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}
