package document

import (
	"fmt"

	"go.lsp.dev/uri"
)

// URIError occurs when a buffer's protocol URI cannot be resolved.
type URIError struct {
	Buffer int
	Err    error
}

func (e *URIError) Error() string {
	return fmt.Sprintf("failed to resolve URI for buffer %d: %v", e.Buffer, e.Err)
}

func (e *URIError) Unwrap() error {
	return e.Err
}

// SyncError occurs when the best-effort didOpen for an unsaved document
// cannot be delivered. The send is never retried; the caller simply has
// no descriptor for this event.
type SyncError struct {
	URI uri.URI
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("failed to sync document '%s': %v", e.URI, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// PositionError occurs when the cursor position cannot be derived.
type PositionError struct {
	Buffer int
	Err    error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("failed to compute position for buffer %d: %v", e.Buffer, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
