// Package scan enumerates the immediate subdirectories of a root and
// classifies each one.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/projscan/projscan/internal/projdetect"
)

// ErrInvalidRoot is returned when the scan root does not exist or is not a
// directory.
var ErrInvalidRoot = errors.New("not a directory")

// Scan probes and classifies every immediate subdirectory of root. Hidden
// (dot-prefixed) directories are not scan targets. Per-directory stat or
// probe failures are logged and that directory is skipped; partial results
// are always returned.
func Scan(root string) ([]projdetect.Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", absRoot, ErrInvalidRoot)
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", absRoot, err)
	}

	return scanEntries(absRoot, entries), nil
}

func scanEntries(root string, entries []fs.DirEntry) []projdetect.Project {
	projects := []projdetect.Project{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(root, entry.Name())

		fileInfo, err := entry.Info()
		if err != nil {
			log.Printf("skipping %s: stat failed: %v", path, err)
			continue
		}

		markers, err := projdetect.Probe(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}

		project := projdetect.Classify(path, markers)
		project.Name = entry.Name()
		project.LastModified = fileInfo.ModTime()

		projects = append(projects, project)
	}

	return projects
}
