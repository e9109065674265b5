package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewSearchNotFoundError is returned when a catalog search yields no result.
func NewSearchNotFoundError(kind string, query string) *ErrNotFound {
	return &ErrNotFound{
		Resource: fmt.Sprintf("%s search result", kind),
		ID:       query,
	}
}

// ErrRemoteRequest is returned when the catalog answers with a non-2xx status.
type ErrRemoteRequest struct {
	StatusCode int
	Path       string
}

// Error implements the error interface.
func (e *ErrRemoteRequest) Error() string {
	return fmt.Sprintf("catalog request %s failed with status %d", e.Path, e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrRemoteRequest) Is(target error) bool {
	_, ok := target.(*ErrRemoteRequest)
	return ok
}

// ErrMalformedResponse is returned when a catalog payload cannot be decoded,
// lacks a required field or carries a value that does not parse.
type ErrMalformedResponse struct {
	Resource string
	Field    string
	Err      error
}

// Error implements the error interface.
func (e *ErrMalformedResponse) Error() string {
	msg := fmt.Sprintf("malformed %s response", e.Resource)
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	} else if e.Field != "" {
		msg += " is missing"
	}
	return msg
}

// Unwrap exposes the underlying decode or parse error.
func (e *ErrMalformedResponse) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedResponse) Is(target error) bool {
	_, ok := target.(*ErrMalformedResponse)
	return ok
}

// NewMissingFieldError reports a required field absent from a response.
func NewMissingFieldError(resource, field string) *ErrMalformedResponse {
	return &ErrMalformedResponse{
		Resource: resource,
		Field:    field,
	}
}
