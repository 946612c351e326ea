package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nemanja-m/wordfreq/internal/analyzer/api/grpc"
	"github.com/nemanja-m/wordfreq/pkg/local"
	"github.com/nemanja-m/wordfreq/pkg/mapreduce"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	app := &cli.App{
		Name:  "wordfreq",
		Usage: "word frequency analysis of text and HTML files",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "analyze local files, each on its own",
				Action: analyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "input files glob pattern", Required: true},
					&cli.BoolFlag{Name: "html", Usage: "extract visible text from every input as HTML"},
					&cli.IntFlag{Name: "top", Usage: "keep only the N most frequent repeated words"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "output format: json, yaml or text"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output directory (prints to stdout when empty)"},
					&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "number of files analyzed concurrently"},
					&cli.IntFlag{Name: "max-input-bytes", Value: mapreduce.DefaultMaxInputBytes, Usage: "reject larger inputs (0 disables the limit)"},
				},
			},
			{
				Name:   "remote",
				Usage:  "analyze text on a running analysis server",
				Action: remoteAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: "localhost:9090", Usage: "gRPC server address"},
					&cli.StringFlag{Name: "text", Usage: "text to analyze"},
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "file to analyze instead of --text"},
					&cli.BoolFlag{Name: "html", Usage: "extract visible text from the input file as HTML"},
					&cli.IntFlag{Name: "top", Usage: "keep only the N most frequent repeated words"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "output format: json, yaml or text"},
					&cli.IntFlag{Name: "max-response-bytes", Value: grpc.DefaultMaxResponseBytes, Usage: "largest analysis response accepted from the server"},
					&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "request timeout"},
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func analyzeAction(c *cli.Context) error {
	format, err := local.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}
	if c.Int("top") < 0 {
		return fmt.Errorf("top must be >= 0")
	}

	engineConfig := mapreduce.DefaultConfig()
	engineConfig.MaxInputBytes = c.Int("max-input-bytes")

	runner := local.NewRunner(local.Config{
		Input:      c.String("input"),
		HTML:       c.Bool("html"),
		Top:        c.Int("top"),
		Output:     c.String("output"),
		Format:     format,
		NumWorkers: c.Int("workers"),
	}, mapreduce.NewEngine(engineConfig))

	start := time.Now()
	results, err := runner.Run(c.Context)
	if err != nil {
		return err
	}

	failed := 0
	for _, fr := range results {
		if fr.Err != nil {
			failed++
			continue
		}
		if fr.OutputPath != "" {
			continue
		}
		fmt.Fprintf(c.App.Writer, "==> %s <==\n", fr.Path)
		if err := local.WriteResult(c.App.Writer, fr.Result, format); err != nil {
			return err
		}
	}

	log.Printf("Analyzed %d files in %s", len(results)-failed, time.Since(start))
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func remoteAction(c *cli.Context) error {
	format, err := local.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	text := c.String("text")
	if path := c.String("input"); path != "" {
		if text, err = local.ReadText(path, c.Bool("html")); err != nil {
			return err
		}
	}

	client, err := grpc.NewAnalyzerClient(c.String("addr"), grpc.WithMaxResponseBytes(c.Int("max-response-bytes")))
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	result, err := client.Analyze(ctx, text)
	if err != nil {
		return err
	}

	return local.WriteResult(c.App.Writer, result.Top(c.Int("top")), format)
}

