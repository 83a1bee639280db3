package resloc

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// patternMeta are the metacharacters of path.Match.
const patternMeta = "*?["

// ResolvePattern expands a glob-style location into the filesystem
// resources it matches.  A location without metacharacters resolves
// through the loader unchanged and yields zero or one resource
// depending on existence.  Patterns are matched per segment, so "*"
// never crosses a path separator.  A pattern whose static prefix names
// a directory that does not exist yields an empty result, not an
// error.
func ResolvePattern(l Loader, pattern string) ([]Resource, error) {
	if !strings.ContainsAny(pattern, patternMeta) {
		r, err := l.Resolve(pattern)
		if err != nil {
			return nil, err
		}
		if !r.Exists() {
			return nil, nil
		}
		return []Resource{r}, nil
	}

	pattern = path.Clean(filepath.ToSlash(pattern))
	root := staticPrefix(pattern)
	if _, err := os.Stat(root); err != nil {
		return nil, nil
	}

	var matches []string
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(ospath string, dirent *godirwalk.Dirent) error {
			if dirent.IsDir() {
				return nil
			}
			ok, err := path.Match(pattern, filepath.ToSlash(ospath))
			if err != nil {
				return errors.Wrapf(ErrMalformedLocation, "bad pattern %q: %v", pattern, err)
			}
			if ok {
				matches = append(matches, ospath)
			}
			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error scanning for pattern %s", pattern)
	}

	sort.Strings(matches)
	resources := make([]Resource, len(matches))
	for i, m := range matches {
		resources[i] = NewFileResource(m)
	}
	return resources, nil
}

// staticPrefix returns the directory portion of a pattern before its
// first metacharacter, which bounds the walk.
func staticPrefix(pattern string) string {
	i := strings.IndexAny(pattern, patternMeta)
	slash := strings.LastIndex(pattern[:i], "/")
	if slash < 0 {
		return "."
	}
	if slash == 0 {
		return "/"
	}
	return pattern[:slash]
}
