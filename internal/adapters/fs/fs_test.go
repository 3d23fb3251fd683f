package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestReadOnlyFileSystem(t *testing.T) {
	fsys := NewReadOnlyFileSystem(fstest.MapFS{
		"content.yaml":    {Data: []byte("hero: {}")},
		"static/logo.png": {Data: []byte("png")},
	})

	data, err := fsys.ReadFile("./content.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "hero: {}" {
		t.Errorf("ReadFile() = %q", data)
	}

	if !fsys.FileExists("/static/logo.png") {
		t.Error("Expected static/logo.png to exist")
	}
	if fsys.FileExists("missing.yaml") {
		t.Error("Expected missing.yaml not to exist")
	}

	entries, err := fsys.ReadDir("static")
	if err != nil || len(entries) != 1 {
		t.Errorf("ReadDir() = %v, %v", entries, err)
	}

	if err := fsys.WriteFile("x", nil, 0644); !errors.Is(err, ErrReadOnly) {
		t.Errorf("WriteFile() error = %v, want ErrReadOnly", err)
	}
}

func TestOSFileSystemCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "nested", "b.txt")
	if err := os.WriteFile(src, []byte("hello"), 0600); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	if err := fsys.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "hello" {
		t.Errorf("copied data = %q, %v", data, err)
	}

	var seen []string
	err = fsys.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if !d.IsDir() {
			seen = append(seen, filepath.Base(path))
		}
		return err
	})
	if err != nil || len(seen) != 2 {
		t.Errorf("WalkDir() saw %v, err %v", seen, err)
	}
}
