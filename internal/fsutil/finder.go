// Package fsutil provides file system helpers shared by the manifest loader
// and the registry source resolver.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. A root that is itself a file is returned as is.
// Results are in lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// ExpandLocation resolves a location that may be a plain path or a doublestar
// glob ("specs/**/*.xml"). A location naming an existing file is returned as
// is, even when it contains glob metacharacters. Matches are returned sorted.
// A plain path that does not exist, or a pattern that matches nothing, yields
// no results and no error.
func ExpandLocation(location string) ([]string, error) {
	if info, err := os.Stat(location); err == nil && !info.IsDir() {
		return []string{location}, nil
	}

	if !doublestar.ValidatePathPattern(location) {
		return nil, fmt.Errorf("invalid location pattern %q", location)
	}

	matches, err := doublestar.FilepathGlob(location, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", location, err)
	}
	sort.Strings(matches)
	return matches, nil
}
