package report

import (
	"github.com/projscan/projscan/internal/projdetect"
)

// Summary holds aggregate statistics over the filtered project list.
type Summary struct {
	Total              int
	GitRepos           int
	UVManaged          int
	PoetryManaged      int
	NodeProjects       int
	TypeScriptProjects int
	PackageManagers    map[projdetect.PackageManager]int
	PythonVersions     map[string]int
}

func Summarize(projects []projdetect.Project) Summary {
	s := Summary{
		PackageManagers: map[projdetect.PackageManager]int{},
		PythonVersions:  map[string]int{},
	}

	for _, p := range projects {
		s.Total++
		if p.IsGit {
			s.GitRepos++
		}

		if p.Python != nil {
			if p.Python.IsUV {
				s.UVManaged++
			}
			if p.Python.IsPoetry {
				s.PoetryManaged++
			}
			if p.Python.VersionConstraint != "" {
				s.PythonVersions[p.Python.VersionConstraint]++
			}
		}

		if p.Node != nil {
			s.NodeProjects++
			if p.Node.IsTypeScript {
				s.TypeScriptProjects++
			}
			if p.Node.PackageManager != projdetect.NoManager {
				s.PackageManagers[p.Node.PackageManager]++
			}
		}
	}

	return s
}
