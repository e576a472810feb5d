package ledger

import "errors"

var (
	// ErrStorageUnavailable means the backing store could not be read or
	// written. The in-memory snapshot is left as it was.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedRecord tags stored values that failed to decode. It is
	// logged, never returned: the affected value loads as its default.
	ErrMalformedRecord = errors.New("malformed record")

	ErrInvalidInput   = errors.New("invalid input")
	ErrAlreadyFasting = errors.New("a fasting session is already in progress")
	ErrNotFasting     = errors.New("no fasting session in progress")
)
