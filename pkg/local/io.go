package local

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFiles returns the regular files matching a doublestar glob pattern,
// sorted by path.
func FindFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, name := range matches {
		info, err := os.Lstat(name)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, name)
		}
	}
	slices.Sort(files)
	return files, nil
}

// ReadText reads a whole file as text. HTML files (by extension, or all files
// when html is set) are reduced to their visible text first.
func ReadText(filePath string, html bool) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if html || IsHTMLFile(filePath) {
		return ExtractText(file)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return string(data), nil
}

func IsHTMLFile(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".html", ".htm", ".xhtml":
		return true
	default:
		return false
	}
}
