package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devsetup/internal/core"
	"devsetup/internal/ports"
)

// PackageFileAdapter reads a custom package file: one identifier per
// line, blanks and #-comments excluded before the orchestrator ever
// sees them.
type PackageFileAdapter struct{}

func NewPackageFileAdapter() PackageFileAdapter {
	return PackageFileAdapter{}
}

func (a PackageFileAdapter) Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("custom package file not found").
			WithCause(err)
	}
	defer file.Close()
	return core.ParsePackageLines(file)
}

var _ ports.PackageFilePort = PackageFileAdapter{}
