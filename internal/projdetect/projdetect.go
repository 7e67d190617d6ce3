// Package projdetect probes directories for well-known marker files and
// classifies the development environment they indicate.
package projdetect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Marker is a file or directory name whose presence in a project directory
// indicates an ecosystem or tool.
type Marker string

const (
	PyProject   Marker = "pyproject.toml"
	UVLock      Marker = "uv.lock"
	PoetryLock  Marker = "poetry.lock"
	Venv        Marker = ".venv"
	Git         Marker = ".git"
	PackageJson Marker = "package.json"
	PackageLock Marker = "package-lock.json"
	YarnLock    Marker = "yarn.lock"
	PnpmLock    Marker = "pnpm-lock.yaml"
	TsConfig    Marker = "tsconfig.json"
	NodeModules Marker = "node_modules"
)

// AllMarkers lists every marker the prober checks for, in probe order.
var AllMarkers = []Marker{
	PyProject,
	UVLock,
	PoetryLock,
	Venv,
	Git,
	PackageJson,
	PackageLock,
	YarnLock,
	PnpmLock,
	TsConfig,
	NodeModules,
}

// MarkerSet holds the markers found in a single directory.
type MarkerSet map[Marker]struct{}

func (ms MarkerSet) Has(m Marker) bool {
	_, ok := ms[m]
	return ok
}

func (ms MarkerSet) HasAny(markers ...Marker) bool {
	for _, m := range markers {
		if ms.Has(m) {
			return true
		}
	}

	return false
}

type PackageManager string

const (
	Npm       PackageManager = "npm"
	Yarn      PackageManager = "yarn"
	Pnpm      PackageManager = "pnpm"
	NoManager PackageManager = "none"
)

type ModuleType string

const (
	ModuleCommonJS ModuleType = "commonjs"
	ModuleESM      ModuleType = "esm"
	ModuleUnknown  ModuleType = "unknown"
)

// PythonInfo describes the Python side of a project. It is present on a
// Project whenever at least one Python marker was found.
type PythonInfo struct {
	IsUV              bool
	IsPoetry          bool
	VersionConstraint string
	Markers           []Marker
}

// NodeInfo describes the Node.js side of a project. It is present on a
// Project whenever at least one Node marker was found.
type NodeInfo struct {
	PackageManager PackageManager
	IsTypeScript   bool
	ModuleType     ModuleType
	PackageName    string
	PackageVersion string
}

// Project is one classified directory. Python and Node are independently
// optional; a polyglot repository may carry both.
type Project struct {
	Name         string
	Path         string
	LastModified time.Time
	IsGit        bool
	Python       *PythonInfo
	Node         *NodeInfo
}

// Probe reads a directory once and reports which markers exist as direct
// children. A missing directory is an error; an unreadable one probes as
// empty so that partial unreadability never aborts a scan.
func Probe(dir string) (MarkerSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("probing %s: %w", dir, err)
		}

		return MarkerSet{}, nil
	}

	return probeEntries(entries), nil
}

func probeEntries(entries []fs.DirEntry) MarkerSet {
	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = struct{}{}
	}

	found := MarkerSet{}
	for _, m := range AllMarkers {
		if _, ok := names[string(m)]; ok {
			found[m] = struct{}{}
		}
	}

	return found
}

// Classify derives a Project from the markers found in dir. Metadata files
// (pyproject.toml, package.json) are opened as needed; a read or parse
// failure degrades the affected fields and never fails the directory.
func Classify(dir string, markers MarkerSet) Project {
	return Project{
		Path:   dir,
		IsGit:  markers.Has(Git),
		Python: detectPython(dir, markers),
		Node:   detectNode(dir, markers),
	}
}
