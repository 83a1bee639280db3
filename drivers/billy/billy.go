// Package billyfs adapts go-billy filesystems to the resloc virtual
// filesystem surface.  Any billy.Filesystem (osfs, memfs, chroots over
// either) can back VFS resources this way without the core depending on
// billy itself.
package billyfs

import (
	"io"
	"path"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
	"github.com/resloc/resloc"
)

// Prefix is the location prefix claimed by Resolver.
const Prefix = "vfs:"

// Provider exposes a billy filesystem as a source of resloc resources.
type Provider struct {
	fs billy.Filesystem
}

// New creates a provider over the given filesystem.
func New(fs billy.Filesystem) *Provider {
	return &Provider{fs: fs}
}

// Resolve returns the resource for the given path within the
// filesystem.  Resolution is cheap; the path is not required to exist.
func (p *Provider) Resolve(pth string) *resloc.VFSResource {
	return resloc.NewVFSResource(newNode(p.fs, pth))
}

// Resolver adapts the provider to the protocol resolver contract,
// claiming locations with the vfs: prefix and passing on everything
// else.
func (p *Provider) Resolver() resloc.ProtocolResolver {
	return resloc.ProtocolResolverFunc(func(location string, _ resloc.Loader) resloc.Resource {
		if !strings.HasPrefix(location, Prefix) {
			return nil
		}
		return p.Resolve(strings.TrimPrefix(location, Prefix))
	})
}

// node is a single entry of a billy filesystem.  It is a comparable
// value, so adapter resources over the same entry compare equal.
type node struct {
	fs   billy.Filesystem
	path string
}

func newNode(fs billy.Filesystem, pth string) node {
	return node{fs: fs, path: path.Clean("/" + filepathToSlash(pth))}
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// Open the entry for reading.
func (n node) Open() (io.ReadCloser, error) {
	f, err := n.fs.Open(n.path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", n.path)
	}
	return f, nil
}

// Exists reports whether the entry is present.
func (n node) Exists() bool {
	_, err := n.fs.Stat(n.path)
	return err == nil
}

// Readable reports whether the entry holds readable content, which
// excludes directories.
func (n node) Readable() bool {
	fi, err := n.fs.Stat(n.path)
	return err == nil && !fi.IsDir()
}

// URL returns a vfs URL for the entry.  The URL carries identity and
// supports relative resolution; it is not independently fetchable.
func (n node) URL() (string, error) {
	return "vfs://" + n.path, nil
}

// File is unresolvable: billy entries have no guaranteed physical path.
func (n node) File() (string, error) {
	return "", errors.Errorf("%s is not backed by a physical file", n.path)
}

// Size returns the recorded entry size.
func (n node) Size() (int64, error) {
	fi, err := n.fs.Stat(n.path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not stat %s", n.path)
	}
	return fi.Size(), nil
}

// LastModified returns the entry's modification timestamp.
func (n node) LastModified() (time.Time, error) {
	fi, err := n.fs.Stat(n.path)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "could not stat %s", n.path)
	}
	return fi.ModTime(), nil
}

// Child looks up an existing entry underneath this one.  Lookup of an
// absent entry fails, letting callers fall back to other resolution
// strategies.
func (n node) Child(pth string) (resloc.VirtualFile, error) {
	child := newNode(n.fs, path.Join(n.path, filepathToSlash(pth)))
	if _, err := n.fs.Stat(child.path); err != nil {
		return nil, errors.Wrapf(err, "no child %s under %s", pth, n.path)
	}
	return child, nil
}

// Name returns the last segment of the entry path.
func (n node) Name() string {
	return path.Base(n.path)
}

func (n node) String() string {
	return n.path
}
