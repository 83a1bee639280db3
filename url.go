package resloc

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// URLResource is a Resource addressed by an absolute URL.  The file,
// http and https schemes can be opened for content; other schemes still
// carry identity and relative resolution but refuse to open.
type URLResource struct {
	u *url.URL
}

// NewURLResource parses the given string as an absolute URL.
func NewURLResource(rawurl string) (*URLResource, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedLocation, "cannot parse URL %q: %v", rawurl, err)
	}
	if !u.IsAbs() {
		return nil, errors.Wrapf(ErrMalformedLocation, "URL %q has no scheme", rawurl)
	}
	return &URLResource{u: u}, nil
}

// Open the content behind the URL.  http and https URLs are fetched
// with a GET request; file URLs are opened from the local filesystem.
func (r *URLResource) Open() (io.ReadCloser, error) {
	switch r.u.Scheme {
	case "file":
		f, err := os.Open(r.filePath())
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", r.Description())
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %s", r.Description())
		}
		return f, nil
	case "http", "https":
		resp, err := http.Get(r.u.String())
		if err != nil {
			return nil, errors.Wrapf(err, "could not fetch %s", r.Description())
		}
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			_ = resp.Body.Close()
			return nil, errors.Wrapf(ErrNotFound, "%s", r.Description())
		}
		if resp.StatusCode >= 400 {
			_ = resp.Body.Close()
			return nil, errors.Errorf("could not fetch %s: %s", r.Description(), resp.Status)
		}
		return resp.Body, nil
	default:
		return nil, errors.Wrapf(ErrUnresolvable, "no content handler for %s URLs", r.u.Scheme)
	}
}

// Exists falls back to opening the content, since most URL schemes have
// no cheaper presence check.
func (r *URLResource) Exists() bool {
	return existsFallback(r)
}

// Readable defaults to Exists.
func (r *URLResource) Readable() bool {
	return r.Exists()
}

// IsOpen always returns false: every Open call yields a fresh stream.
func (r *URLResource) IsOpen() bool { return false }

// IsFile reports whether this is a file URL.
func (r *URLResource) IsFile() bool {
	return r.u.Scheme == "file"
}

// URL returns the URL in string form.
func (r *URLResource) URL() (string, error) {
	return r.u.String(), nil
}

// URI returns a copy of the parsed URL.
func (r *URLResource) URI() (*url.URL, error) {
	u := *r.u
	return &u, nil
}

// File returns the local path of a file URL.
func (r *URLResource) File() (string, error) {
	if r.u.Scheme != "file" {
		return errNoFile(r)
	}
	return r.filePath(), nil
}

func (r *URLResource) filePath() string {
	return filepath.FromSlash(r.u.Path)
}

// ContentLength counts the bytes of a full content read.
func (r *URLResource) ContentLength() (int64, error) {
	return contentLengthFallback(r)
}

// LastModified reads the modification timestamp of a file URL's path.
// Other schemes report ErrUnresolvable.
func (r *URLResource) LastModified() (time.Time, error) {
	return lastModifiedFallback(r)
}

// Relative resolves the given path as a URL reference against this URL.
func (r *URLResource) Relative(p string) (Resource, error) {
	rel, err := url.Parse(p)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedLocation, "invalid relative path %q: %v", p, err)
	}
	return &URLResource{u: r.u.ResolveReference(rel)}, nil
}

// Filename returns the last segment of the URL path, or "" when the
// URL has no path.
func (r *URLResource) Filename() string {
	name := path.Base(r.u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// Description identifies the resource by its URL.
func (r *URLResource) Description() string {
	return "URL [" + r.u.String() + "]"
}

func (r *URLResource) String() string {
	return r.Description()
}

// Equal compares by description.
func (r *URLResource) Equal(other Resource) bool {
	return equalByDescription(r, other)
}
