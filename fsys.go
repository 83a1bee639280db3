package resloc

import (
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// FSResource is a Resource addressing an entry inside an fs.FS tree,
// typically an embedded asset bundle.  It backs the classpath-style
// locations of DefaultLoader.
type FSResource struct {
	fsys fs.FS
	name string
}

// NewFSResource creates a resource for the named entry of the given
// filesystem.  A leading slash is ignored, matching fs.FS name rules.
func NewFSResource(fsys fs.FS, name string) *FSResource {
	return &FSResource{
		fsys: fsys,
		name: path.Clean(strings.TrimPrefix(name, "/")),
	}
}

// Name returns the slash-separated name within the filesystem.
func (r *FSResource) Name() string {
	return r.name
}

// Open the entry for reading.
func (r *FSResource) Open() (io.ReadCloser, error) {
	f, err := r.fsys.Open(r.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%s", r.Description())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", r.Description())
	}
	return f, nil
}

// Exists reports whether the entry is present in the filesystem.
func (r *FSResource) Exists() bool {
	_, err := fs.Stat(r.fsys, r.name)
	return err == nil
}

// Readable reports whether the entry holds readable content, which
// excludes directories.
func (r *FSResource) Readable() bool {
	fi, err := fs.Stat(r.fsys, r.name)
	return err == nil && !fi.IsDir()
}

// IsOpen always returns false: every Open call yields a fresh stream.
func (r *FSResource) IsOpen() bool { return false }

// IsFile always returns false: fs.FS entries have no guaranteed
// physical path.
func (r *FSResource) IsFile() bool { return false }

// URL is unresolvable: asset trees are not URL addressable.
func (r *FSResource) URL() (string, error) {
	return errNoURL(r)
}

// URI derives from URL and is equally unresolvable.
func (r *FSResource) URI() (*url.URL, error) {
	return parseURI(r)
}

// File is unresolvable: asset trees have no physical paths.
func (r *FSResource) File() (string, error) {
	return errNoFile(r)
}

// ContentLength returns the recorded entry size.
func (r *FSResource) ContentLength() (int64, error) {
	fi, err := r.stat()
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// LastModified returns the entry's modification timestamp when the
// filesystem records one.  Embedded filesystems do not, which yields an
// error distinct from the entry being absent.
func (r *FSResource) LastModified() (time.Time, error) {
	fi, err := r.stat()
	if err != nil {
		return time.Time{}, err
	}
	if fi.ModTime().IsZero() {
		return time.Time{}, errors.Errorf("no modification time recorded for %s", r.Description())
	}
	return fi.ModTime(), nil
}

func (r *FSResource) stat() (fs.FileInfo, error) {
	fi, err := fs.Stat(r.fsys, r.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%s", r.Description())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat %s", r.Description())
	}
	return fi, nil
}

// Relative resolves the given path against this entry's parent
// directory, within the same filesystem.
func (r *FSResource) Relative(p string) (Resource, error) {
	return NewFSResource(r.fsys, path.Join(path.Dir(r.name), p)), nil
}

// Filename returns the last segment of the entry name.
func (r *FSResource) Filename() string {
	return path.Base(r.name)
}

// Description identifies the resource by its name within the asset
// space.
func (r *FSResource) Description() string {
	return "classpath [" + r.name + "]"
}

func (r *FSResource) String() string {
	return r.Description()
}

// Equal compares by description.
func (r *FSResource) Equal(other Resource) bool {
	return equalByDescription(r, other)
}
