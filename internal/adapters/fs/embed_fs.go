package fs

import (
	"errors"
	iofs "io/fs"
	"path"
)

var ErrReadOnly = errors.New("filesystem is read-only")

// ReadOnlyFileSystem serves content compiled into the binary, e.g. an
// embed.FS holding content.yaml.
type ReadOnlyFileSystem struct {
	fs iofs.FS
}

func NewReadOnlyFileSystem(fsys iofs.FS) *ReadOnlyFileSystem {
	return &ReadOnlyFileSystem{fs: fsys}
}

func (fs *ReadOnlyFileSystem) ReadFile(name string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, clean(name))
}

func (fs *ReadOnlyFileSystem) ReadDir(name string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, clean(name))
}

func (fs *ReadOnlyFileSystem) FileExists(name string) bool {
	_, err := iofs.Stat(fs.fs, clean(name))
	return err == nil
}

func (fs *ReadOnlyFileSystem) WriteFile(string, []byte, iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *ReadOnlyFileSystem) MkdirAll(string, iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *ReadOnlyFileSystem) Remove(string) error {
	return ErrReadOnly
}

func clean(name string) string {
	name = path.Clean("/" + name)
	if name == "/" {
		return "."
	}
	return name[1:]
}
