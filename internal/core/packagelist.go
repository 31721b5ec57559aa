package core

import (
	"bufio"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devsetup/internal/types"
)

// commentMarker prefixes lines excluded from custom package files.
const commentMarker = "#"

// ParseToolList splits a comma-separated package list into system
// package specs. Fields are trimmed; empty fields are skipped.
func ParseToolList(list string) []types.PackageSpec {
	names := strings.Split(list, ",")
	return appendSpecs(nil, names, types.PackageKindSystem)
}

// ParsePackageLines reads a custom package file: UTF-8 text, one
// logical package identifier per line, blank lines and lines starting
// with # ignored, surrounding whitespace trimmed.
func ParsePackageLines(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read package file").
			WithCause(err)
	}
	return names, nil
}

// SpecsFromNames wraps plain identifiers as system package specs,
// dropping blanks and duplicates.
func SpecsFromNames(names []string) []types.PackageSpec {
	return appendSpecs(nil, names, types.PackageKindSystem)
}
