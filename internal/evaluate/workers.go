package evaluate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/fetcher"
	"github.com/dtnitsch/llm-readability/pkg/pagemodel"
	"github.com/dtnitsch/llm-readability/pkg/store"
)

func run(ctx context.Context, logger *slog.Logger, config *models.EvaluateConfig, evaluator *Evaluator, database *store.Store) ([]Result, error) {
	f := fetcher.NewFetcher()

	logger.Info("Starting concurrent evaluation phase", "url_count", len(config.URLs), "workers", config.WorkerCount, "include_llm", config.IncludeLLM)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.URLs))
	results := make(chan Result, len(config.URLs))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, f, evaluator, database, &wg, jobs, results)
	}

	for _, rawURL := range config.URLs {
		jobs <- Job{URL: rawURL, IncludeLLM: config.IncludeLLM}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All evaluation workers finished")

	allResults := make([]Result, 0, len(config.URLs))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more jobs failed")
		}
	}

	return allResults, runErr
}

func worker(ctx context.Context, id int, logger *slog.Logger, f *fetcher.Fetcher, evaluator *Evaluator, database *store.Store, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "url", job.URL)
		result := Result{URL: job.URL}

		html, err := f.GetHtml(ctx, job.URL)
		if err != nil {
			logger.Error("Error fetching HTML", "worker_id", id, "url", job.URL, "error", err)
			result.Error = err
			result.ErrorType = "fetch_error"
			results <- result
			continue
		}

		page, err := pagemodel.BuildFromHTML(job.URL, html)
		if err != nil {
			logger.Error("Error parsing HTML", "worker_id", id, "url", job.URL, "error", err)
			result.Error = err
			result.ErrorType = "parse_error"
			results <- result
			continue
		}

		result.Evaluation = evaluator.Evaluate(ctx, page, Options{IncludeLLM: job.IncludeLLM})

		if database != nil {
			if _, dbErr := database.SaveEvaluation(result.Evaluation); dbErr != nil {
				logger.Warn("Failed to persist evaluation", "url", job.URL, "error", dbErr)
			}
		}

		results <- result
		logger.Info("Worker finished processing", "worker_id", id, "url", job.URL, "score", result.Evaluation.Overall, "mode", result.Evaluation.Metadata.Mode)
	}
}
