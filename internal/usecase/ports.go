package usecase

import (
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/core"
)

type ContentLoader interface {
	Load(path string) (core.Content, error)
}

type SerializerSource interface {
	Serializer(format core.Format) (core.Serializer, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type BuildReporter interface {
	StartStep(name string) int
	EndStep(idx int, err error)
	AddIssue(field, message string)
	AddFile(path string)
}

type FileSystem = fs.FileSystem

type TreeFileSystem = fs.TreeFileSystem

type nopReporter struct{}

func (nopReporter) StartStep(string) int    { return 0 }
func (nopReporter) EndStep(int, error)      {}
func (nopReporter) AddIssue(string, string) {}
func (nopReporter) AddFile(string)          {}
