// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ProjectFileExtension is the on-disk extension for circuit project documents.
const ProjectFileExtension = ".cv"

// FindProjectFiles recursively searches the given root path for circuit
// project files. Results are sorted lexicographically so callers process
// projects in a deterministic order.
func FindProjectFiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ProjectFileExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
