package resloc

import (
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ReaderResource adapts an already-open io.Reader to the Resource
// contract.  It is a single-use handle: IsOpen reports true, the first
// Open call hands out the wrapped reader, and any further call fails.
// It must not be shared across concurrent consumers.
type ReaderResource struct {
	desc string

	mu       sync.Mutex
	r        io.Reader
	consumed bool
}

// NewReaderResource wraps the given reader.  The description may be ""
// for an anonymous stream.
func NewReaderResource(r io.Reader, desc string) *ReaderResource {
	return &ReaderResource{r: r, desc: desc}
}

// Open hands out the wrapped stream.  It succeeds exactly once.
func (r *ReaderResource) Open() (io.ReadCloser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.consumed {
		return nil, errors.Wrapf(ErrUnresolvable, "%s has already been consumed", r.Description())
	}
	r.consumed = true

	if rc, ok := r.r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r.r), nil
}

// Exists always returns true: the stream is already in hand.
func (r *ReaderResource) Exists() bool { return true }

// Readable always returns true.
func (r *ReaderResource) Readable() bool { return true }

// IsOpen always returns true: this handle wraps an open stream.
func (r *ReaderResource) IsOpen() bool { return true }

// IsFile always returns false.
func (r *ReaderResource) IsFile() bool { return false }

// URL is unresolvable for a raw stream.
func (r *ReaderResource) URL() (string, error) {
	return errNoURL(r)
}

// URI derives from URL and is equally unresolvable.
func (r *ReaderResource) URI() (*url.URL, error) {
	return parseURI(r)
}

// File is unresolvable for a raw stream.
func (r *ReaderResource) File() (string, error) {
	return errNoFile(r)
}

// ContentLength counts the stream's bytes, consuming the handle in the
// process.
func (r *ReaderResource) ContentLength() (int64, error) {
	return contentLengthFallback(r)
}

// LastModified is unresolvable for a raw stream.
func (r *ReaderResource) LastModified() (time.Time, error) {
	return lastModifiedFallback(r)
}

// Relative is unresolvable for a raw stream.
func (r *ReaderResource) Relative(path string) (Resource, error) {
	return errNoRelative(r, path)
}

// Filename returns "": a raw stream has no path.
func (r *ReaderResource) Filename() string { return "" }

// Description identifies the stream by the name it was created with.
func (r *ReaderResource) Description() string {
	if r.desc == "" {
		return "stream"
	}
	return "stream [" + r.desc + "]"
}

func (r *ReaderResource) String() string {
	return r.Description()
}

// Equal compares by description.
func (r *ReaderResource) Equal(other Resource) bool {
	return equalByDescription(r, other)
}
