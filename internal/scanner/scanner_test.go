package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func relPaths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestContentScannerFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<h1>Home</h1>")
	writeFile(t, root, "docs/getting-started.html.twig", "<h1>Start</h1>")
	writeFile(t, root, "components/card.tmpl", "<h1>Card</h1>")
	writeFile(t, root, "partials/header.html", "<h1>Header</h1>")
	writeFile(t, root, "drafts/.searchignore", "")
	writeFile(t, root, "drafts/wip.html", "<h1>WIP</h1>")
	writeFile(t, root, "assets/app.js", "console.log(1)")

	s := &ContentScanner{
		Root:         root,
		Extensions:   []string{".html", ".tmpl", ".twig"},
		ExcludeDirs:  []string{"partials", "layouts"},
		IgnoreMarker: ".searchignore",
	}

	files, err := s.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"components/card.tmpl",
		"docs/getting-started.html.twig",
		"index.html",
	}, relPaths(files))

	data, err := files[2].Read()
	require.NoError(t, err)
	assert.Equal(t, "<h1>Home</h1>", string(data))
}

func TestContentScannerMissingRoot(t *testing.T) {
	s := &ContentScanner{Root: filepath.Join(t.TempDir(), "nope")}
	files, err := s.Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestContentScannerSkipsLargeFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.html", "0123456789")
	writeFile(t, root, "small.html", "01")

	s := &ContentScanner{Root: root, MaxFileSize: 5}
	files, err := s.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"small.html"}, relPaths(files))
}

func TestReadMissingFile(t *testing.T) {
	_, err := File{RelPath: "gone.html", Path: filepath.Join(t.TempDir(), "gone.html")}.Read()
	assert.Error(t, err)
}
