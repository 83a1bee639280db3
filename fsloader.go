package resloc

import (
	"path/filepath"
	"strings"
)

// NewFileSystemLoader creates a loader that treats unqualified and
// root-relative locations as filesystem paths relative to the process
// working directory.  One leading slash is stripped, so "/conf/app.yml"
// and "conf/app.yml" name the same resource; use a file: URL to address
// an absolute path.
func NewFileSystemLoader() *DefaultLoader {
	return New(Config{Path: FileSystemPath})
}

// FileSystemPath is the path strategy of NewFileSystemLoader: locations
// become context-relative file resources rooted at the working
// directory.  It can be combined with a custom Config, e.g. to keep a
// separate asset filesystem for classpath: locations.
func FileSystemPath(p string) Resource {
	return &fileContextResource{
		FileResource{path: filepath.Clean(strings.TrimPrefix(p, "/"))},
	}
}

// fileContextResource is a FileResource that reports its path relative
// to the loader's context root.
type fileContextResource struct {
	FileResource
}

// PathWithinContext returns the path relative to the working directory.
func (r *fileContextResource) PathWithinContext() string {
	return filepath.ToSlash(r.path)
}
