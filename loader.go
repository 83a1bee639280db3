package resloc

import (
	"io/fs"
	"os"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ClasspathPrefix marks locations resolved against the loader's asset
// filesystem regardless of the loader's default path strategy.
const ClasspathPrefix = "classpath:"

// Schemes are at least two characters, which keeps Windows drive paths
// out of URL resolution.
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]+:`)

// PathStrategy produces a resource for a location that no resolver and
// no URL scheme claimed.
type PathStrategy func(path string) Resource

// Config encapsulates a loader configuration.
type Config struct {
	// FS backs classpath: locations and, for the default strategy,
	// unqualified ones.  Defaults to the process working directory
	// tree.
	FS fs.FS

	// Path overrides the strategy for unqualified and root-relative
	// locations.  The default resolves them within FS.
	Path PathStrategy
}

// DefaultLoader resolves locations by consulting its resolver chain,
// then recognized URL schemes, then its default path strategy.  A
// loader is created once and may be used concurrently; resolvers may be
// appended at any time and are never removed.
type DefaultLoader struct {
	fsys     fs.FS
	pathFunc PathStrategy

	mu        sync.Mutex   // guards appends to the chain
	resolvers atomic.Value // holds []ProtocolResolver, copied on write
}

// New creates a loader with the given configuration.
func New(cfg Config) *DefaultLoader {
	l := &DefaultLoader{
		fsys:     cfg.FS,
		pathFunc: cfg.Path,
	}
	if l.fsys == nil {
		l.fsys = os.DirFS(".")
	}
	if l.pathFunc == nil {
		l.pathFunc = l.assetPath
	}
	return l
}

// AddResolver appends a resolver to the chain.  Registration order is
// resolution priority order.  The append is visible to subsequent
// Resolve calls, including concurrent ones.
func (l *DefaultLoader) AddResolver(pr ProtocolResolver) {
	l.mu.Lock()
	defer l.mu.Unlock()

	chain := l.chain()
	next := make([]ProtocolResolver, len(chain), len(chain)+1)
	copy(next, chain)
	l.resolvers.Store(append(next, pr))
}

func (l *DefaultLoader) chain() []ProtocolResolver {
	chain, _ := l.resolvers.Load().([]ProtocolResolver)
	return chain
}

// Resolve turns a location string into a Resource.
//
// Registered resolvers are tried in order and the first match wins.
// Otherwise root-relative locations go to the path strategy, classpath:
// locations to the asset filesystem, and URL-shaped locations become
// URL resources, falling back to the path strategy when the URL does
// not actually parse.  Anything else goes to the path strategy.
func (l *DefaultLoader) Resolve(location string) (Resource, error) {
	if location == "" {
		return nil, errors.Wrap(ErrMalformedLocation, "location must not be empty")
	}

	for _, pr := range l.chain() {
		if r := pr.Resolve(location, l); r != nil {
			return r, nil
		}
	}

	switch {
	case strings.HasPrefix(location, "/"):
		return l.pathFunc(location), nil
	case strings.HasPrefix(location, ClasspathPrefix):
		return l.assetPath(strings.TrimPrefix(location, ClasspathPrefix)), nil
	case schemePattern.MatchString(location):
		r, err := NewURLResource(location)
		if err != nil {
			// Not a well formed URL after all; treat it as a plain path.
			return l.pathFunc(location), nil
		}
		return r, nil
	default:
		return l.pathFunc(location), nil
	}
}

func (l *DefaultLoader) assetPath(p string) Resource {
	return NewFSResource(l.fsys, p)
}
