package ports

import "devsetup/internal/types"

// StackSourcePort loads stack definitions from an override file.
type StackSourcePort interface {
	Load(path string) ([]types.StackDefinition, error)
}

// PackageFilePort reads a custom package file into logical package
// identifiers, with comment and blank lines already filtered out.
type PackageFilePort interface {
	Read(path string) ([]string, error)
}
