package resloc

import (
	"bytes"
	"io"
	"net/url"
	"time"
)

// BytesResource is a Resource holding its content in memory.  It always
// exists and every Open call yields a fresh stream over the same bytes.
type BytesResource struct {
	data []byte
	desc string
}

// NewBytesResource creates a resource over the given bytes.  The
// description may be "" for an anonymous blob; named blobs with equal
// descriptions compare equal.
func NewBytesResource(data []byte, desc string) *BytesResource {
	return &BytesResource{data: data, desc: desc}
}

// Open returns a fresh reader over the content.
func (r *BytesResource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(r.data)), nil
}

// Exists always returns true.
func (r *BytesResource) Exists() bool { return true }

// Readable always returns true.
func (r *BytesResource) Readable() bool { return true }

// IsOpen always returns false.
func (r *BytesResource) IsOpen() bool { return false }

// IsFile always returns false.
func (r *BytesResource) IsFile() bool { return false }

// URL is unresolvable for in-memory content.
func (r *BytesResource) URL() (string, error) {
	return errNoURL(r)
}

// URI derives from URL and is equally unresolvable.
func (r *BytesResource) URI() (*url.URL, error) {
	return parseURI(r)
}

// File is unresolvable for in-memory content.
func (r *BytesResource) File() (string, error) {
	return errNoFile(r)
}

// ContentLength returns the byte count directly.
func (r *BytesResource) ContentLength() (int64, error) {
	return int64(len(r.data)), nil
}

// LastModified is unresolvable for in-memory content.
func (r *BytesResource) LastModified() (time.Time, error) {
	return lastModifiedFallback(r)
}

// Relative is unresolvable for in-memory content.
func (r *BytesResource) Relative(path string) (Resource, error) {
	return errNoRelative(r, path)
}

// Filename returns "": in-memory content has no path.
func (r *BytesResource) Filename() string { return "" }

// Description identifies the blob by the name it was created with.
func (r *BytesResource) Description() string {
	if r.desc == "" {
		return "bytes"
	}
	return "bytes [" + r.desc + "]"
}

func (r *BytesResource) String() string {
	return r.Description()
}

// Equal compares by description.
func (r *BytesResource) Equal(other Resource) bool {
	return equalByDescription(r, other)
}
