package resloc

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// FileResource is a Resource backed by a path in the local filesystem.
// Existence, length and modification time are answered with a direct
// stat rather than the stream-based fallbacks.
type FileResource struct {
	path string
}

// NewFileResource creates a resource for the given filesystem path.
// The path may be relative; it is interpreted against the process
// working directory when accessed.
func NewFileResource(path string) *FileResource {
	return &FileResource{path: filepath.Clean(path)}
}

// Path returns the (possibly relative) path this resource was created with.
func (r *FileResource) Path() string {
	return r.path
}

// Open the file for reading.
func (r *FileResource) Open() (io.ReadCloser, error) {
	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "%s", r.Description())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", r.Description())
	}
	return f, nil
}

// Exists reports whether the file is present.
func (r *FileResource) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Readable reports whether the path points at readable content, which
// excludes directories.
func (r *FileResource) Readable() bool {
	fi, err := os.Stat(r.path)
	return err == nil && !fi.IsDir()
}

// IsOpen always returns false: every Open call yields a fresh stream.
func (r *FileResource) IsOpen() bool { return false }

// IsFile always returns true.
func (r *FileResource) IsFile() bool { return true }

// URL returns the file URL of the absolute path.
func (r *FileResource) URL() (string, error) {
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return "", errors.Wrapf(err, "could not determine absolute path of %s", r.path)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// URI returns the parsed file URL.
func (r *FileResource) URI() (*url.URL, error) {
	return parseURI(r)
}

// File returns the absolute path of the file.
func (r *FileResource) File() (string, error) {
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return "", errors.Wrapf(err, "could not determine absolute path of %s", r.path)
	}
	return abs, nil
}

// ContentLength returns the recorded file size.
func (r *FileResource) ContentLength() (int64, error) {
	fi, err := r.stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// LastModified returns the file's modification timestamp.
func (r *FileResource) LastModified() (time.Time, error) {
	fi, err := r.stat()
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

func (r *FileResource) stat() (os.FileInfo, error) {
	fi, err := os.Stat(r.path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "%s", r.Description())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat %s", r.Description())
	}
	return fi, nil
}

// Relative resolves the given path against this file's parent directory.
func (r *FileResource) Relative(path string) (Resource, error) {
	return NewFileResource(filepath.Join(filepath.Dir(r.path), path)), nil
}

// Filename returns the last path segment.
func (r *FileResource) Filename() string {
	return filepath.Base(r.path)
}

// Description identifies the resource by its path.
func (r *FileResource) Description() string {
	return "file [" + filepath.ToSlash(r.path) + "]"
}

func (r *FileResource) String() string {
	return r.Description()
}

// Equal compares by description.
func (r *FileResource) Equal(other Resource) bool {
	return equalByDescription(r, other)
}
