package resloc_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/resloc/resloc"
)

// prefixResolver resolves locations with its prefix to a fixed
// resource, counting how often it was consulted for a match.
type prefixResolver struct {
	prefix string
	result resloc.Resource
	hits   int
}

func (p *prefixResolver) Resolve(location string, _ resloc.Loader) resloc.Resource {
	if !strings.HasPrefix(location, p.prefix) {
		return nil
	}
	p.hits++
	return p.result
}

func TestResolverOrdering(t *testing.T) {
	first := &prefixResolver{prefix: "x:", result: resloc.NewBytesResource(nil, "first")}
	second := &prefixResolver{prefix: "x:", result: resloc.NewBytesResource(nil, "second")}

	l := resloc.New(resloc.Config{FS: assetFS()})
	l.AddResolver(first)
	l.AddResolver(second)

	r, err := l.Resolve("x:whatever")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !r.Equal(first.result) {
		t.Errorf("expected the first registered resolver to win, got %s", r.Description())
	}
	if second.hits != 0 {
		t.Errorf("resolution must stop at the first match")
	}
}

func TestCustomProtocol(t *testing.T) {
	l := resloc.New(resloc.Config{FS: assetFS()})
	l.AddResolver(resloc.ProtocolResolverFunc(func(location string, loader resloc.Loader) resloc.Resource {
		if !strings.HasPrefix(location, "cloud") {
			return nil
		}
		r, err := loader.Resolve(strings.Replace(location, "cloud", "classpath", 1))
		if err != nil {
			return nil
		}
		return r
	}))

	viaCloud, err := l.Resolve("cloud:Resource.class")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	direct, err := l.Resolve("classpath:Resource.class")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	if !viaCloud.Equal(direct) {
		t.Errorf("cloud: and classpath: should yield equal resources, got %s and %s",
			viaCloud.Description(), direct.Description())
	}
	if !viaCloud.Exists() {
		t.Errorf("the rewritten location should find the asset")
	}
}

func TestRootRelativeLocation(t *testing.T) {
	l := resloc.New(resloc.Config{FS: assetFS()})

	slashed, err := l.Resolve("/cfg/app.yml")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	direct, err := l.Resolve("classpath:cfg/app.yml")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	if !slashed.Equal(direct) {
		t.Errorf("root-relative and classpath locations should agree, got %s and %s",
			slashed.Description(), direct.Description())
	}
}

func TestUnqualifiedLocation(t *testing.T) {
	l := resloc.New(resloc.Config{FS: assetFS()})

	r, err := l.Resolve("cfg/app.yml")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if _, ok := r.(*resloc.FSResource); !ok {
		t.Fatalf("unqualified locations default to the asset space, got %T", r)
	}
	if !r.Exists() {
		t.Errorf("asset should exist")
	}
}

func TestURLLocation(t *testing.T) {
	l := resloc.New(resloc.Config{FS: assetFS()})

	r, err := l.Resolve("file:///etc/hosts")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if _, ok := r.(*resloc.URLResource); !ok {
		t.Errorf("expected a URL resource, got %T", r)
	}
}

func TestBadURLFallsBackToPath(t *testing.T) {
	l := resloc.New(resloc.Config{FS: assetFS()})

	// Scheme-shaped but not a parsable URL
	r, err := l.Resolve("weird://%zz")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if _, ok := r.(*resloc.FSResource); !ok {
		t.Errorf("expected fallback to the path strategy, got %T", r)
	}
}

func TestEmptyLocation(t *testing.T) {
	l := resloc.New(resloc.Config{})
	if _, err := l.Resolve(""); errors.Cause(err) != resloc.ErrMalformedLocation {
		t.Errorf("expected ErrMalformedLocation, got %v", err)
	}
}

func TestConcurrentResolveAndRegister(t *testing.T) {
	l := resloc.New(resloc.Config{FS: assetFS()})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.AddResolver(&prefixResolver{
				prefix: fmt.Sprintf("p%d:", i),
				result: resloc.NewBytesResource(nil, fmt.Sprintf("r%d", i)),
			})
		}()
		go func() {
			defer wg.Done()
			if _, err := l.Resolve("cfg/app.yml"); err != nil {
				t.Errorf("unexpected error %s", err)
			}
		}()
	}
	wg.Wait()

	// Every append must be visible to subsequent resolutions.
	for i := 0; i < 10; i++ {
		r, err := l.Resolve(fmt.Sprintf("p%d:x", i))
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}
		if !r.Equal(resloc.NewBytesResource(nil, fmt.Sprintf("r%d", i))) {
			t.Errorf("resolver %d was not registered", i)
		}
	}
}
