package resloc_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/resloc/resloc"
)

func runInTempDir(t *testing.T, f func(string)) {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "resloc_test")
	if err != nil {
		t.Fatal("could not create testing temp dir")
	}
	defer os.RemoveAll(tempDir)
	f(tempDir)
}

func TestFileResource(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		path := filepath.Join(tempDir, "data.txt")
		if err := os.WriteFile(path, []byte("hello"), 0664); err != nil {
			t.Fatal(err)
		}

		r := resloc.NewFileResource(path)

		if !r.Exists() || !r.Readable() {
			t.Errorf("existing file should exist and be readable")
		}
		if r.IsOpen() {
			t.Errorf("file handles are re-readable")
		}
		if !r.IsFile() {
			t.Errorf("file resource should be file backed")
		}
		if r.Filename() != "data.txt" {
			t.Errorf("unexpected filename %s", r.Filename())
		}

		n, err := r.ContentLength()
		if err != nil || n != 5 {
			t.Errorf("expected length 5, got %d (%v)", n, err)
		}

		mod, err := r.LastModified()
		if err != nil || mod.IsZero() {
			t.Errorf("expected a positive timestamp, got %v (%v)", mod, err)
		}

		content, err := r.Open()
		if err != nil {
			t.Fatalf("could not open: %s", err)
		}
		defer content.Close()
		read, _ := io.ReadAll(content)
		if string(read) != "hello" {
			t.Errorf("unexpected content %q", read)
		}
	})
}

func TestFileResourceURL(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		r := resloc.NewFileResource(filepath.Join(tempDir, "data.txt"))

		raw, err := r.URL()
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}
		if !strings.HasPrefix(raw, "file://") {
			t.Errorf("expected a file URL, got %s", raw)
		}

		u, err := r.URI()
		if err != nil {
			t.Fatalf("unexpected error %s", err)
		}
		if u.Scheme != "file" {
			t.Errorf("unexpected scheme %s", u.Scheme)
		}
	})
}

func TestFileResourceAbsent(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		r := resloc.NewFileResource(filepath.Join(tempDir, "missing.txt"))

		if r.Exists() || r.Readable() {
			t.Errorf("missing file should not exist")
		}
		if _, err := r.Open(); errors.Cause(err) != resloc.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := r.ContentLength(); errors.Cause(err) != resloc.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := r.LastModified(); errors.Cause(err) != resloc.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFileResourceRelative(t *testing.T) {
	r := resloc.NewFileResource("a/b.txt")

	rel, err := r.Relative("c.txt")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !rel.Equal(resloc.NewFileResource("a/c.txt")) {
		t.Errorf("expected a/c.txt, got %s", rel.Description())
	}

	up, err := r.Relative("../d.txt")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !up.Equal(resloc.NewFileResource("d.txt")) {
		t.Errorf("expected d.txt, got %s", up.Description())
	}
}
