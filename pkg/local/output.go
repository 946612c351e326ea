package local

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nemanja-m/wordfreq/pkg/core"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(value)); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// Extension is the file extension used when writing results in this format.
func (f Format) Extension() string {
	if f == FormatText {
		return ".txt"
	}
	return "." + string(f)
}

// WriteResult encodes result to w in the given format.
func WriteResult(w io.Writer, result *core.Result, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return writeSummary(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// AverageFrequency is the mean number of occurrences per distinct word.
func AverageFrequency(result *core.Result) float64 {
	if result.DistinctWords() == 0 {
		return 0
	}
	return float64(result.TotalWords) / float64(result.DistinctWords())
}

func writeSummary(w io.Writer, result *core.Result) error {
	lines := []string{
		fmt.Sprintf("Total words:    %d", result.TotalWords),
		fmt.Sprintf("Distinct words: %d", result.DistinctWords()),
		fmt.Sprintf("Unique words:   %d", result.UniqueWordCount),
		fmt.Sprintf("Repeated words: %d", result.RepeatedWordCount),
		fmt.Sprintf("Avg frequency:  %.2f", AverageFrequency(result)),
	}
	if len(result.Repeated) > 0 {
		lines = append(lines, "", "Most frequent:")
		for i, wc := range result.Repeated {
			lines = append(lines, fmt.Sprintf("%3d. %s: %d", i+1, wc.Word, wc.Count))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// OutputPath returns where the result for inputPath is written inside outputDir.
func OutputPath(outputDir, inputPath string, format Format) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(outputDir, base+format.Extension())
}

// WriteResultFile writes result to filePath, creating parent directories.
func WriteResultFile(filePath string, result *core.Result, format Format) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteResult(file, result, format)
}
