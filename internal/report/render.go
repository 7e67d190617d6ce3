package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/projscan/projscan/internal/projdetect"
	"github.com/projscan/projscan/pkg/output"
)

var separator = strings.Repeat("-", 70)

// Render writes the per-project blocks followed by the statistics block.
// An empty project list still produces a message and a zeroed summary,
// never blank output.
func Render(w io.Writer, projects []projdetect.Project, summary Summary) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found.")
	} else {
		fmt.Fprintln(w, "Recent Projects:")
		fmt.Fprintln(w, separator)
		for _, p := range projects {
			renderProject(w, p)
		}
	}

	renderSummary(w, summary)
}

func renderProject(w io.Writer, p projdetect.Project) {
	gitTag := "[No Git]"
	if p.IsGit {
		gitTag = output.WithSuccessFormat("[Git]")
	}

	fmt.Fprintf(w, "%s %s [%s]\n",
		output.WithHighLightFormat(p.Name),
		gitTag,
		strings.Join(TypeLabels(p), ", "))

	env := environmentMarkers(p)
	if len(env) == 0 {
		fmt.Fprintln(w, "Environment: [No Package Manager]")
	} else {
		fmt.Fprintf(w, "Environment: [%s]\n", strings.Join(env, ", "))
	}

	if p.Python != nil && p.Python.VersionConstraint != "" {
		fmt.Fprintf(w, "Python: %s\n", p.Python.VersionConstraint)
	}

	fmt.Fprintf(w, "Last modified: %s\n", relativeTime(p.LastModified))
	fmt.Fprintf(w, "Path: %s\n", p.Path)
	fmt.Fprintln(w, separator)
}

// TypeLabels returns the project-type tags shown next to the name, such as
// "UV Python" or "TypeScript (yarn)".
func TypeLabels(p projdetect.Project) []string {
	labels := []string{}

	if p.Python != nil {
		switch {
		case p.Python.IsUV:
			labels = append(labels, "UV Python")
		case p.Python.IsPoetry:
			labels = append(labels, "Poetry Python")
		default:
			labels = append(labels, "Python")
		}
	}

	if p.Node != nil {
		lang := "JavaScript"
		if p.Node.IsTypeScript {
			lang = "TypeScript"
		}

		if p.Node.PackageManager != projdetect.NoManager {
			labels = append(labels, fmt.Sprintf("%s (%s)", lang, p.Node.PackageManager))
		} else {
			labels = append(labels, lang)
		}
	}

	if len(labels) == 0 {
		labels = append(labels, "No managed environment")
	}

	return labels
}

func environmentMarkers(p projdetect.Project) []string {
	markers := []string{}

	if p.Python != nil {
		for _, m := range p.Python.Markers {
			markers = append(markers, string(m))
		}
	}

	if p.Node != nil {
		if p.Node.ModuleType == projdetect.ModuleESM {
			markers = append(markers, "ESM")
		}
		if p.Node.IsTypeScript {
			markers = append(markers, "TypeScript")
		}
	}

	return markers
}

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "Never modified"
	}

	return humanize.Time(t)
}

func renderSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Project Statistics:")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Total projects: %d\n", s.Total)
	fmt.Fprintf(w, "Git repositories: %d\n", s.GitRepos)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Python Projects:")
	fmt.Fprintf(w, "  UV-managed: %d\n", s.UVManaged)
	fmt.Fprintf(w, "  Poetry-managed: %d\n", s.PoetryManaged)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Node.js Projects:")
	fmt.Fprintf(w, "  Total Node.js projects: %d\n", s.NodeProjects)
	fmt.Fprintf(w, "  TypeScript projects: %d\n", s.TypeScriptProjects)
	fmt.Fprintln(w, "  Package Managers:")
	fmt.Fprintf(w, "    npm: %d\n", s.PackageManagers[projdetect.Npm])
	fmt.Fprintf(w, "    yarn: %d\n", s.PackageManagers[projdetect.Yarn])
	fmt.Fprintf(w, "    pnpm: %d\n", s.PackageManagers[projdetect.Pnpm])

	if len(s.PythonVersions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Python versions used:")
		versions := make([]string, 0, len(s.PythonVersions))
		for version := range s.PythonVersions {
			versions = append(versions, version)
		}
		slices.Sort(versions)
		for _, version := range versions {
			fmt.Fprintf(w, "  Python %s: %d projects\n", version, s.PythonVersions[version])
		}
	}
}
