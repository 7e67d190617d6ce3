package projdetect

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree materializes a fixture directory. Keys ending in "/" become
// directories, everything else becomes a file with the given contents.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}

	return dir
}

func TestProbe(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"pyproject.toml": "",
		"uv.lock":        "",
		".git/":          "",
		"package.json":   "{}",
		"README.md":      "not a marker",
	})

	markers, err := Probe(dir)
	require.NoError(t, err)

	require.True(t, markers.Has(PyProject))
	require.True(t, markers.Has(UVLock))
	require.True(t, markers.Has(Git))
	require.True(t, markers.Has(PackageJson))
	require.False(t, markers.Has(PoetryLock))
	require.False(t, markers.Has(YarnLock))
}

func TestProbeUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}

	dir := writeTree(t, map[string]string{"pyproject.toml": "", "uv.lock": ""})
	require.NoError(t, os.Chmod(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	// Unreadable directories probe as empty rather than failing the scan.
	markers, err := Probe(dir)
	require.NoError(t, err)
	require.Empty(t, markers)
}

func TestProbeMissingDir(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		check func(t *testing.T, p Project)
	}{
		{
			"UVWithLockfile",
			map[string]string{"pyproject.toml": "", "uv.lock": ""},
			func(t *testing.T, p Project) {
				require.NotNil(t, p.Python)
				require.True(t, p.Python.IsUV)
				require.False(t, p.Python.IsPoetry)
				require.Nil(t, p.Node)
			},
		},
		{
			"UVWithVenv",
			map[string]string{"pyproject.toml": "", ".venv/": ""},
			func(t *testing.T, p Project) {
				require.NotNil(t, p.Python)
				require.True(t, p.Python.IsUV)
			},
		},
		{
			"LockfileWithoutPyproject",
			map[string]string{"uv.lock": ""},
			func(t *testing.T, p Project) {
				require.NotNil(t, p.Python)
				require.False(t, p.Python.IsUV)
				require.Equal(t, []Marker{UVLock}, p.Python.Markers)
			},
		},
		{
			"PoetryLockfile",
			map[string]string{"pyproject.toml": "", "poetry.lock": ""},
			func(t *testing.T, p Project) {
				require.NotNil(t, p.Python)
				require.True(t, p.Python.IsPoetry)
			},
		},
		{
			"PoetryTableInPyproject",
			map[string]string{"pyproject.toml": "[tool.poetry]\nname = \"demo\"\n"},
			func(t *testing.T, p Project) {
				require.NotNil(t, p.Python)
				require.True(t, p.Python.IsPoetry)
				require.False(t, p.Python.IsUV)
			},
		},
		{
			"RequiresPython",
			map[string]string{
				"pyproject.toml": "[project]\nname = \"demo\"\nrequires-python = \">=3.12.3\"\n",
			},
			func(t *testing.T, p Project) {
				require.NotNil(t, p.Python)
				require.Equal(t, ">=3.12.3", p.Python.VersionConstraint)
			},
		},
		{
			"GitOnly",
			map[string]string{".git/": ""},
			func(t *testing.T, p Project) {
				require.True(t, p.IsGit)
				require.Nil(t, p.Python)
				require.Nil(t, p.Node)
			},
		},
		{
			"Polyglot",
			map[string]string{
				"pyproject.toml": "",
				"uv.lock":        "",
				"package.json":   "{}",
				".git/":          "",
			},
			func(t *testing.T, p Project) {
				require.True(t, p.IsGit)
				require.NotNil(t, p.Python)
				require.NotNil(t, p.Node)
				require.True(t, p.Python.IsUV)
			},
		},
		{
			"NoMarkers",
			map[string]string{"README.md": "hello"},
			func(t *testing.T, p Project) {
				require.False(t, p.IsGit)
				require.Nil(t, p.Python)
				require.Nil(t, p.Node)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeTree(t, tt.files)

			markers, err := Probe(dir)
			require.NoError(t, err)

			tt.check(t, Classify(dir, markers))
		})
	}
}
