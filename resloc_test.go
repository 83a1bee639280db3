package resloc_test

import (
	"strings"
	"testing"

	"github.com/resloc/resloc"
)

func TestEquality(t *testing.T) {
	cases := []struct {
		name string
		a, b resloc.Resource
		same bool
	}{
		{"files with the same path", resloc.NewFileResource("a/b.txt"), resloc.NewFileResource("a/b.txt"), true},
		{"files with different paths", resloc.NewFileResource("a/b.txt"), resloc.NewFileResource("a/c.txt"), false},
		{"unclean and clean path", resloc.NewFileResource("a//b.txt"), resloc.NewFileResource("a/b.txt"), true},
		{"blobs with the same name", resloc.NewBytesResource([]byte("x"), "blob"), resloc.NewBytesResource([]byte("y"), "blob"), true},
		{"blobs with different names", resloc.NewBytesResource([]byte("x"), "blob"), resloc.NewBytesResource([]byte("x"), "other"), false},
		{"file and blob", resloc.NewFileResource("blob"), resloc.NewBytesResource(nil, "blob"), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if !c.a.Equal(c.a) {
				t.Errorf("%s should equal itself", c.a.Description())
			}
			if c.a.Equal(c.b) != c.same {
				t.Errorf("expected Equal == %v for %s and %s", c.same, c.a.Description(), c.b.Description())
			}
			if c.a.Equal(c.b) != c.b.Equal(c.a) {
				t.Errorf("equality should be symmetric")
			}
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := resloc.NewFileResource("a/b.txt")
	b := resloc.NewFileResource("a/b.txt")
	other := resloc.NewFileResource("a/c.txt")

	if resloc.Hash(a) != resloc.Hash(b) {
		t.Errorf("equal resources must hash equally")
	}
	if resloc.Hash(a) == resloc.Hash(other) {
		t.Errorf("distinct descriptions should not collide here")
	}
}

func TestEqualNil(t *testing.T) {
	if resloc.NewFileResource("a").Equal(nil) {
		t.Errorf("nothing equals nil")
	}
}

func TestDescriptionsName(t *testing.T) {
	r := resloc.NewBytesResource(nil, "manifest")
	if !strings.Contains(r.Description(), "manifest") {
		t.Errorf("description %q should carry the resource name", r.Description())
	}
}
