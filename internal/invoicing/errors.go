package invoicing

import "errors"

var (
	// ErrNotFound means the referenced invoice does not exist.
	ErrNotFound = errors.New("invoice not found")
	// ErrStorageUnavailable means the persisted store could not be reached.
	// Callers surface it instead of fabricating results.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrRenderFailure means the PDF document could not be emitted.
	ErrRenderFailure = errors.New("pdf render failed")
)
