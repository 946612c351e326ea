package local

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFiles_BasicAndIgnoreDirs(t *testing.T) {
	tmpDir := t.TempDir()

	f1 := filepath.Join(tmpDir, "a.txt")
	f2 := filepath.Join(tmpDir, "sub", "b.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(f2), 0o755))
	require.NoError(t, os.WriteFile(f1, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(f2, []byte("y"), 0o644))

	matches, err := FindFiles(filepath.Join(tmpDir, "**", "*.txt"))
	require.NoError(t, err)
	require.Equal(t, []string{f1, f2}, matches)

	allMatches, err := FindFiles(filepath.Join(tmpDir, "**"))
	require.NoError(t, err)
	for _, m := range allMatches {
		info, err := os.Lstat(m)
		require.NoError(t, err)
		require.True(t, info.Mode().IsRegular())
	}
}

func TestFindFiles_InvalidPattern(t *testing.T) {
	_, err := FindFiles("[")
	require.Error(t, err)
}

func TestReadText_Plain(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(fpath, []byte("<b>not html</b>"), 0o644))

	text, err := ReadText(fpath, false)
	require.NoError(t, err)
	require.Equal(t, "<b>not html</b>", text)
}

func TestReadText_HTMLByExtension(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "page.HTML")
	require.NoError(t, os.WriteFile(fpath, []byte("<p>Hello <b>there</b></p>"), 0o644))

	text, err := ReadText(fpath, false)
	require.NoError(t, err)
	require.Equal(t, "Hello there", text)
}

func TestReadText_ForcedHTML(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "page.txt")
	require.NoError(t, os.WriteFile(fpath, []byte("<p>one</p><p>two</p>"), 0o644))

	text, err := ReadText(fpath, true)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo", text)
}

func TestReadText_FileNotFound(t *testing.T) {
	_, err := ReadText("/no/such/file/does_not_exist.txt", false)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestIsHTMLFile(t *testing.T) {
	require.True(t, IsHTMLFile("a/b/index.html"))
	require.True(t, IsHTMLFile("page.htm"))
	require.False(t, IsHTMLFile("notes.txt"))
	require.False(t, IsHTMLFile("html"))
}
