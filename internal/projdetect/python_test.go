package projdetect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePyProject(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadPyProject(t *testing.T) {
	tests := []struct {
		name           string
		contents       string
		wantPoetry     bool
		wantConstraint string
	}{
		{
			"ProjectTable",
			"[project]\nname = \"demo\"\nrequires-python = \">=3.11\"\n",
			false,
			">=3.11",
		},
		{
			"EmptyPoetryTable",
			"[tool.poetry]\n",
			true,
			"",
		},
		{
			"PoetryAndConstraint",
			"[project]\nrequires-python = \">=3.10,<4\"\n\n[tool.poetry]\nname = \"demo\"\n",
			true,
			">=3.10,<4",
		},
		{
			"NoRelevantKeys",
			"[build-system]\nrequires = [\"hatchling\"]\n",
			false,
			"",
		},
		{
			// Invalid TOML drops to the line scanner, which still picks up
			// the poetry table and the constraint.
			"MalformedFallback",
			"this is [not valid toml\n[tool.poetry\nrequires-python = \">=3.11\"\n",
			true,
			">=3.11",
		},
		{
			"Empty",
			"",
			false,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poetry, constraint := readPyProject(writePyProject(t, tt.contents))
			require.Equal(t, tt.wantPoetry, poetry)
			require.Equal(t, tt.wantConstraint, constraint)
		})
	}
}

func TestReadPyProjectUnreadable(t *testing.T) {
	poetry, constraint := readPyProject(filepath.Join(t.TempDir(), "missing.toml"))
	require.False(t, poetry)
	require.Empty(t, constraint)
}
