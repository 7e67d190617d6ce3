package projdetect

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var pythonMarkers = []Marker{PyProject, UVLock, PoetryLock, Venv}

type pyProjectFile struct {
	Project struct {
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
	Tool struct {
		Poetry map[string]any `toml:"poetry"`
	} `toml:"tool"`
}

func detectPython(dir string, markers MarkerSet) *PythonInfo {
	var present []Marker
	for _, m := range pythonMarkers {
		if markers.Has(m) {
			present = append(present, m)
		}
	}

	if len(present) == 0 {
		return nil
	}

	info := &PythonInfo{
		IsUV:     markers.Has(PyProject) && (markers.Has(UVLock) || markers.Has(Venv)),
		IsPoetry: markers.Has(PoetryLock),
		Markers:  present,
	}

	if markers.Has(PyProject) {
		poetry, constraint := readPyProject(filepath.Join(dir, string(PyProject)))
		info.IsPoetry = info.IsPoetry || poetry
		info.VersionConstraint = constraint
	}

	return info
}

// readPyProject extracts the requires-python constraint and whether a
// [tool.poetry] table exists. Malformed TOML falls back to a line scan so a
// broken file still classifies as well as it can.
func readPyProject(path string) (poetry bool, constraint string) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return false, ""
	}

	var parsed pyProjectFile
	if err := toml.Unmarshal(contents, &parsed); err == nil {
		return parsed.Tool.Poetry != nil, parsed.Project.RequiresPython
	}

	scanner := bufio.NewScanner(bytes.NewReader(contents))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "tool.poetry") {
			poetry = true
		}

		if strings.HasPrefix(line, "requires-python") {
			if _, value, ok := strings.Cut(line, "="); ok {
				constraint = strings.Trim(strings.TrimSpace(value), `"'`)
			}
		}
	}

	return poetry, constraint
}
