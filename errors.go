package resloc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound indicates content that is absent when presence was
// required, e.g. opening a file that does not exist.
var ErrNotFound = errors.New("resource does not exist")

// ErrUnresolvable indicates an operation that the resource kind cannot
// support, e.g. asking a stream-only resource for a filesystem path.
var ErrUnresolvable = errors.New("operation not supported by this resource")

// ErrMalformedLocation indicates a location or URL string that is not
// syntactically valid.
var ErrMalformedLocation = errors.New("malformed location")

// AdapterError wraps a failure reported by an external virtual
// filesystem provider, keeping the original cause.
type AdapterError struct {
	Desc string
	Err  error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("vfs provider error for %s: %v", e.Desc, e.Err)
}

// Unwrap returns the provider's original error.
func (e *AdapterError) Unwrap() error { return e.Err }

// Cause returns the provider's original error, for use with
// errors.Cause from github.com/pkg/errors.
func (e *AdapterError) Cause() error { return e.Err }
