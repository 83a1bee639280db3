package resloc

import (
	"io"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Chunk size for the byte-counting content length fallback.
const lengthChunkSize = 256

// existsFallback checks for existence the expensive way: first by
// statting the resource's file path, then by opening and immediately
// closing the content stream.  Variants that know their backing store
// should answer directly instead.
func existsFallback(r Resource) bool {
	if path, err := r.File(); err == nil {
		_, err := os.Stat(path)
		return err == nil
	}

	rc, err := r.Open()
	if err != nil {
		return false
	}
	// Best effort: a failed close does not make the content absent.
	_ = rc.Close()
	return true
}

// contentLengthFallback counts the content bytes by reading the stream
// in fixed-size chunks.  The stream is closed whether or not the read
// succeeds; a close failure never masks the count or a read error.
func contentLengthFallback(r Resource) (int64, error) {
	rc, err := r.Open()
	if err != nil {
		return 0, errors.Wrapf(err, "could not open %s to determine its length", r.Description())
	}
	defer func() {
		_ = rc.Close()
	}()

	var n int64
	buf := make([]byte, lengthChunkSize)
	for {
		read, err := rc.Read(buf)
		n += int64(read)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrapf(err, "error reading %s", r.Description())
		}
	}
}

// lastModifiedFallback stats the resource's file path for its
// modification timestamp.  An absent file yields ErrNotFound, which is
// distinct from the resource kind having no timestamp at all (the error
// propagated from File).
func lastModifiedFallback(r Resource) (time.Time, error) {
	path, err := r.File()
	if err != nil {
		return time.Time{}, err
	}

	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return time.Time{}, errors.Wrapf(ErrNotFound, "%s cannot be checked for its modification time", r.Description())
	}
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "could not stat %s", r.Description())
	}
	return fi.ModTime(), nil
}

// parseURI derives the parsed URI form of a resource from its raw URL.
func parseURI(r Resource) (*url.URL, error) {
	raw, err := r.URL()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedLocation, "invalid URI %q: %v", raw, err)
	}
	return u, nil
}

// equalByDescription implements the general identity contract:
// structural comparison of description strings.
func equalByDescription(r, other Resource) bool {
	if other == nil {
		return false
	}
	return r == other || r.Description() == other.Description()
}

// errNoURL, errNoFile and errNoRelative produce the shared
// ErrUnresolvable defaults for resource kinds without the respective
// capability.
func errNoURL(r Resource) (string, error) {
	return "", errors.Wrapf(ErrUnresolvable, "%s cannot be resolved to a URL", r.Description())
}

func errNoFile(r Resource) (string, error) {
	return "", errors.Wrapf(ErrUnresolvable, "%s cannot be resolved to an absolute file path", r.Description())
}

func errNoRelative(r Resource, path string) (Resource, error) {
	return nil, errors.Wrapf(ErrUnresolvable, "cannot create relative resource %s for %s", path, r.Description())
}
