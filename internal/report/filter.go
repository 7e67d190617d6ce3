// Package report filters, orders, and renders scanned projects.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/projscan/projscan/internal/projdetect"
)

type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByName   SortKey = "name"
	SortByPython SortKey = "python"
	SortByType   SortKey = "type"
)

func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case SortByDate, SortByName, SortByPython, SortByType:
		return key, nil
	}

	return "", fmt.Errorf("invalid sort key %q: expected one of date, name, python, type", s)
}

// Filters are predicates combined as logical AND; a project failing any
// active predicate is excluded.
type Filters struct {
	UVOnly         bool
	PoetryOnly     bool
	NodeOnly       bool
	TypeScriptOnly bool
	GitOnly        bool
}

func (f Filters) match(p projdetect.Project) bool {
	if f.UVOnly && (p.Python == nil || !p.Python.IsUV) {
		return false
	}

	if f.PoetryOnly && (p.Python == nil || !p.Python.IsPoetry) {
		return false
	}

	if f.NodeOnly && p.Node == nil {
		return false
	}

	if f.TypeScriptOnly && (p.Node == nil || !p.Node.IsTypeScript) {
		return false
	}

	if f.GitOnly && !p.IsGit {
		return false
	}

	return true
}

// Apply filters projects and orders the remainder by key. The sort is
// stable: records with equal keys keep their scan order.
func Apply(projects []projdetect.Project, filters Filters, key SortKey) []projdetect.Project {
	filtered := make([]projdetect.Project, 0, len(projects))
	for _, p := range projects {
		if filters.match(p) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j], key)
	})

	return filtered
}

// Limit truncates projects to at most n entries. n <= 0 means unlimited;
// rejecting an explicit non-positive limit is the caller's concern.
func Limit(projects []projdetect.Project, n int) []projdetect.Project {
	if n <= 0 || n >= len(projects) {
		return projects
	}

	return projects[:n]
}

func less(a, b projdetect.Project, key SortKey) bool {
	switch key {
	case SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case SortByPython:
		ca, cb := pythonConstraint(a), pythonConstraint(b)
		// Projects without a constraint sort after every project with one.
		if (ca == "") != (cb == "") {
			return cb == ""
		}
		if ca != cb {
			return ca < cb
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case SortByType:
		ra, rb := typeRank(a), typeRank(b)
		if ra != rb {
			return ra < rb
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}

	// Default: most recently modified first.
	return a.LastModified.After(b.LastModified)
}

func pythonConstraint(p projdetect.Project) string {
	if p.Python == nil {
		return ""
	}

	return p.Python.VersionConstraint
}

// Grouping order for the type sort: UV Python, Poetry Python, TypeScript,
// other Node, Git-only, then everything else.
func typeRank(p projdetect.Project) int {
	switch {
	case p.Python != nil && p.Python.IsUV:
		return 0
	case p.Python != nil && p.Python.IsPoetry:
		return 1
	case p.Node != nil && p.Node.IsTypeScript:
		return 2
	case p.Node != nil:
		return 3
	case p.IsGit:
		return 4
	}

	return 5
}
