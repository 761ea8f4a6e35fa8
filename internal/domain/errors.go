package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ErrNoProfile is returned when storage holds no profile at all.
var ErrNoProfile = NotFoundError{Resource: "profile"}

// RenderError means the base document could not be produced. It is terminal
// for a composition request.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("render: %v", e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// AttachmentError describes one certificate that could not be merged. The
// merger absorbs these; they never reach callers as failures.
type AttachmentError struct {
	Section  Section
	RecordID int64
	Ref      string
	Err      error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attachment %s#%d (%s): %v", e.Section, e.RecordID, e.Ref, e.Err)
}

func (e *AttachmentError) Unwrap() error { return e.Err }
