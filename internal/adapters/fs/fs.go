package fs

import (
	iofs "io/fs"
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	Remove(path string) error
}

// TreeFileSystem is a FileSystem that can also walk and copy, which the
// static export needs for the asset directory.
type TreeFileSystem interface {
	FileSystem
	WalkDir(root string, fn iofs.WalkDirFunc) error
	CopyFile(src, dst string) error
}
