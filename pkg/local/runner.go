package local

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nemanja-m/wordfreq/pkg/core"
	"github.com/nemanja-m/wordfreq/pkg/mapreduce"
)

type Config struct {
	// Input is a doublestar glob; every matched file is analyzed on its own.
	Input string
	// HTML forces HTML text extraction regardless of file extension.
	HTML bool
	// Top limits the repeated list of every result. Zero keeps all entries.
	Top int
	// Output is the directory results are written to. Empty means no files
	// are written.
	Output     string
	Format     Format
	NumWorkers int
}

type FileResult struct {
	Path       string
	OutputPath string
	Result     *core.Result
	Err        error
}

type Runner struct {
	config Config
	engine *mapreduce.Engine
}

func NewRunner(config Config, engine *mapreduce.Engine) *Runner {
	if config.Format == "" {
		config.Format = FormatJSON
	}
	return &Runner{config: config, engine: engine}
}

// Run analyzes every input file independently and returns one result per
// file, in path order. Per-file failures are reported in FileResult.Err.
func (r *Runner) Run(ctx context.Context) ([]FileResult, error) {
	files, err := FindFiles(r.config.Input)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched the input pattern: %s", r.config.Input)
	}

	results := make([]FileResult, len(files))
	outputs := r.outputPaths(files)

	pool := mapreduce.NewPool(min(max(r.config.NumWorkers, 1), len(files)))
	pool.Start()
	for i, file := range files {
		pool.Submit(func() {
			log.Printf("Starting analysis of %s", file)
			results[i] = r.analyzeFile(ctx, file, outputs[i])
			if results[i].Err != nil {
				log.Printf("Error analyzing %s: %v", file, results[i].Err)
			} else {
				log.Printf("Completed analysis of %s: %d words", file, results[i].Result.TotalWords)
			}
		})
	}
	pool.Close()

	return results, ctx.Err()
}

// outputPaths assigns every input an output file, suffixing duplicate base
// names so that files from different directories do not overwrite each other.
func (r *Runner) outputPaths(files []string) []string {
	paths := make([]string, len(files))
	if r.config.Output == "" {
		return paths
	}

	ext := r.config.Format.Extension()
	used := make(map[string]struct{}, len(files))
	for i, file := range files {
		base := OutputPath(r.config.Output, file, r.config.Format)
		path := base
		for n := 1; ; n++ {
			if _, taken := used[path]; !taken {
				break
			}
			path = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), n, ext)
		}
		used[path] = struct{}{}
		paths[i] = path
	}
	return paths
}

func (r *Runner) analyzeFile(ctx context.Context, filePath, outputPath string) FileResult {
	fr := FileResult{Path: filePath}

	text, err := ReadText(filePath, r.config.HTML)
	if err != nil {
		fr.Err = err
		return fr
	}

	result, err := r.engine.Analyze(ctx, text)
	if err != nil {
		fr.Err = fmt.Errorf("%s: %w", filePath, err)
		return fr
	}
	fr.Result = result.Top(r.config.Top)

	if outputPath != "" {
		fr.OutputPath = outputPath
		if err := WriteResultFile(fr.OutputPath, fr.Result, r.config.Format); err != nil {
			fr.Err = err
		}
	}
	return fr
}
