package resloc

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// VirtualFile is the narrow surface the core requires from an external
// virtual filesystem provider.  Implementations adapt a provider's
// native handle; the core never depends on the provider's own types.
// Handles are expected to be comparable values so that adapter
// resources over the same handle compare equal.
type VirtualFile interface {
	Open() (io.ReadCloser, error)
	Exists() bool
	Readable() bool
	URL() (string, error)
	File() (string, error)
	Size() (int64, error)
	LastModified() (time.Time, error)
	Child(path string) (VirtualFile, error)
	Name() string
}

// VFSResource adapts a VirtualFile handle to the Resource contract.
// All operations delegate to the provider; failures are surfaced as
// AdapterError with the provider's error as the cause.
//
// Unlike other resource kinds, equality follows the wrapped handle,
// not the description.
type VFSResource struct {
	handle VirtualFile
}

// NewVFSResource wraps the given native handle.
func NewVFSResource(handle VirtualFile) *VFSResource {
	return &VFSResource{handle: handle}
}

// Handle returns the wrapped native handle.
func (r *VFSResource) Handle() VirtualFile {
	return r.handle
}

// Open the content through the provider.
func (r *VFSResource) Open() (io.ReadCloser, error) {
	rc, err := r.handle.Open()
	if err != nil {
		return nil, &AdapterError{Desc: r.Description(), Err: err}
	}
	return rc, nil
}

// Exists delegates to the provider.
func (r *VFSResource) Exists() bool {
	return r.handle.Exists()
}

// Readable delegates to the provider.
func (r *VFSResource) Readable() bool {
	return r.handle.Readable()
}

// IsOpen always returns false: the provider opens a fresh stream per
// call.
func (r *VFSResource) IsOpen() bool { return false }

// IsFile reports whether the provider can map this handle to a
// physical path.
func (r *VFSResource) IsFile() bool {
	_, err := r.handle.File()
	return err == nil
}

// URL delegates to the provider.
func (r *VFSResource) URL() (string, error) {
	raw, err := r.handle.URL()
	if err != nil {
		return "", &AdapterError{Desc: r.Description(), Err: err}
	}
	return raw, nil
}

// URI derives from the provider's URL.
func (r *VFSResource) URI() (*url.URL, error) {
	return parseURI(r)
}

// File delegates to the provider.
func (r *VFSResource) File() (string, error) {
	path, err := r.handle.File()
	if err != nil {
		return "", &AdapterError{Desc: r.Description(), Err: err}
	}
	return path, nil
}

// ContentLength delegates to the provider's size query.
func (r *VFSResource) ContentLength() (int64, error) {
	n, err := r.handle.Size()
	if err != nil {
		return 0, &AdapterError{Desc: r.Description(), Err: err}
	}
	return n, nil
}

// LastModified delegates to the provider.
func (r *VFSResource) LastModified() (time.Time, error) {
	t, err := r.handle.LastModified()
	if err != nil {
		return time.Time{}, &AdapterError{Desc: r.Description(), Err: err}
	}
	return t, nil
}

// Relative first attempts a direct child lookup through the provider
// when the path contains a separator and does not start with a
// current-directory marker.  A failed lookup falls back to URL-based
// relative resolution.
func (r *VFSResource) Relative(p string) (Resource, error) {
	if strings.Contains(p, "/") && !strings.HasPrefix(p, ".") {
		if child, err := r.handle.Child(p); err == nil {
			return NewVFSResource(child), nil
		}
		// Child lookup is best effort; fall through to URL resolution.
	}

	raw, err := r.URL()
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedLocation, "invalid URL %q for %s: %v", raw, r.Description(), err)
	}
	rel, err := url.Parse(p)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedLocation, "invalid relative path %q: %v", p, err)
	}
	return &URLResource{u: base.ResolveReference(rel)}, nil
}

// Filename delegates to the provider.
func (r *VFSResource) Filename() string {
	return r.handle.Name()
}

// Description identifies the resource by its handle.
func (r *VFSResource) Description() string {
	if s, ok := r.handle.(fmt.Stringer); ok {
		return "VFS resource [" + s.String() + "]"
	}
	return "VFS resource [" + r.handle.Name() + "]"
}

func (r *VFSResource) String() string {
	return r.Description()
}

// Equal compares the wrapped native handles directly, overriding the
// description-based default.
func (r *VFSResource) Equal(other Resource) bool {
	o, ok := other.(*VFSResource)
	if !ok {
		return false
	}
	return r.handle == o.handle
}
