package resloc

import (
	"hash/fnv"
	"io"
	"net/url"
	"time"
)

// Resource is an immutable descriptor of addressable content, decoupled
// from the store that backs it.  A Resource is constructed cheaply and
// without I/O; whether the content is actually present is only known
// once Exists or Open is called.
type Resource interface {
	// Open returns a stream of the resource content.  Each call returns
	// a fresh stream, except for single-use handles (IsOpen() == true)
	// which may be consumed at most once.  The caller must close the
	// returned stream.
	Open() (io.ReadCloser, error)

	// Exists reports whether the underlying content is currently present.
	Exists() bool

	// Readable reports whether a content stream can likely be opened.
	// Readable content always exists.
	Readable() bool

	// IsOpen reports whether this handle wraps an already-open,
	// single-use stream.  Such handles are not re-readable.
	IsOpen() bool

	// IsFile reports whether the content maps to a path in a real
	// filesystem, in which case File returns that path.
	IsFile() bool

	// URL returns the raw URL form of this resource, or ErrUnresolvable
	// if the backing store is not URL-addressable.
	URL() (string, error)

	// URI returns the parsed form of URL.  It returns
	// ErrMalformedLocation if the URL string does not parse.
	URI() (*url.URL, error)

	// File returns the absolute filesystem path of the content, or
	// ErrUnresolvable for resources that are not file backed.
	File() (string, error)

	// ContentLength returns the size of the content in bytes.
	ContentLength() (int64, error)

	// LastModified returns the modification timestamp of the content.
	// It returns ErrNotFound when the content is absent.
	LastModified() (time.Time, error)

	// Relative returns a resource for the given path resolved against
	// this resource's own location, or ErrUnresolvable if the backing
	// store has no notion of relative paths.
	Relative(path string) (Resource, error)

	// Filename returns the last path segment of the resource, or ""
	// if the backing store has no path concept.
	Filename() string

	// Description is a human readable identity string, used for
	// equality and diagnostics.
	Description() string

	// Equal reports whether the other resource identifies the same
	// content.  Identity is structural: resources with equal
	// descriptions are equal, regardless of how they were obtained.
	// Adapter-backed variants may instead compare their wrapped native
	// handles.
	Equal(other Resource) bool
}

// ContextResource is a Resource whose path is meaningful relative to an
// application context root, e.g. the working directory of a
// filesystem-rooted loader.
type ContextResource interface {
	Resource

	// PathWithinContext returns the path relative to the context root.
	PathWithinContext() string
}

// Loader resolves location strings into Resources.  Loaders are safe
// for concurrent use.
type Loader interface {
	Resolve(location string) (Resource, error)
}

// ProtocolResolver maps locations it recognizes (typically by a prefix
// convention of its own) to Resources.  A nil result means the location
// is not recognized and the next resolver, or the loader's default
// strategy, should be consulted.
type ProtocolResolver interface {
	Resolve(location string, loader Loader) Resource
}

// ProtocolResolverFunc is a function that can be used to satisfy the
// ProtocolResolver interface.
type ProtocolResolverFunc func(location string, loader Loader) Resource

// Resolve a location using the given loader for any delegation.
func (f ProtocolResolverFunc) Resolve(location string, loader Loader) Resource {
	return f(location, loader)
}

// Hash returns a hash of the resource identity, consistent with Equal
// for description-compared resources.
func Hash(r Resource) uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, r.Description())
	return h.Sum64()
}
