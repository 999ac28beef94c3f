package cssdom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMinified(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "minified bundle",
			path:     "web/dist/app.min.css",
			expected: true,
		},
		{
			name:     "regular stylesheet",
			path:     "web/styles/app.css",
			expected: false,
		},
		{
			name:     "min in the middle",
			path:     "web/styles/admin.css",
			expected: false,
		},
		{
			name:     "minified in nested directory",
			path:     "web/vendor/bootstrap/css/bootstrap.min.css",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isMinified(tt.path)
			require.Equal(t, tt.expected, got, "isMinified(%q)", tt.path)
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "skip minified",
			path:     "web/app.min.css",
			expected: true,
		},
		{
			name:     "scan source",
			path:     "web/app.css",
			expected: false,
		},
		{
			name:     "absolute minified path",
			path:     "/tmp/styles/app.min.css",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"part10.css":         "a{}",
		"part2.css":          "a{}",
		"nested/deep/x.css":  "a{}",
		"nested/app.min.css": "a{}",
		"nested/readme.txt":  "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.css"), 0o755))

	files, stats, err := DiscoverFiles([]string{
		filepath.Join(dir, "**", "*.css"),
		filepath.Join(dir, "*.css"),
	})
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "nested", "deep", "x.css"),
		filepath.Join(dir, "part2.css"),
		filepath.Join(dir, "part10.css"),
	}
	assert.Equal(t, want, files)
	assert.Equal(t, ScanStats{FilesDiscovered: 4, FilesScanned: 3, FilesSkipped: 1}, stats)
}

func TestDiscoverFiles_BadPattern(t *testing.T) {
	_, _, err := DiscoverFiles([]string{"[unclosed"})
	require.Error(t, err)
}
