package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const packageFile = "package.json"

// PackageManifests returns the root package.json followed by every
// package.json under packages/, breadth first. Hidden directories and
// node_modules are not entered. Missing locations are not an error.
func (s *FileScanner) PackageManifests(root string) ([]string, error) {
	var found []string
	rootManifest := filepath.Join(root, packageFile)
	if _, err := os.Stat(rootManifest); err == nil {
		found = append(found, rootManifest)
	}

	queue := []string{filepath.Join(root, "packages")}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		slices.SortFunc(entries, func(a, b os.DirEntry) int { return strings.Compare(a.Name(), b.Name()) })

		for _, e := range entries {
			name := e.Name()
			switch {
			case e.IsDir():
				if strings.HasPrefix(name, ".") || name == "node_modules" {
					continue
				}
				queue = append(queue, filepath.Join(dir, name))
			case name == packageFile && e.Type().IsRegular():
				found = append(found, filepath.Join(dir, name))
			}
		}
	}
	return found, nil
}
