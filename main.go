package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/llm-readability/internal/evaluate"
	"github.com/dtnitsch/llm-readability/internal/similarity"
)

func main() {
	// Optional .env for API credentials; absence is not an error.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "llm-readability",
		Usage: "Score web pages for LLM readability and detect content cannibalization",
		Commands: []*cli.Command{
			{
				Name:   "evaluate",
				Usage:  "Score URLs with heuristic analyzers, optionally blended with LLM judges",
				Action: evaluate.EvaluateAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "urls",
						Usage:    "Comma-separated list of URLs to evaluate",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent workers",
						Value: runtime.NumCPU(),
					},
					&cli.BoolFlag{
						Name:  "include-llm",
						Usage: "Blend LLM judge consensus into the final score (needs OPENAI_API_KEY)",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or yaml",
						Value: "json",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "similarity",
				Usage:  "Compare URLs pairwise for duplicate and cannibalized content",
				Action: similarity.SimilarityAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "urls",
						Usage:    "Comma-separated list of URLs to compare (at least 2)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or yaml",
						Value: "json",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
