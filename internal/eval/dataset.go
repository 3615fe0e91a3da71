package eval

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dataset groups test cases for batch evaluation.
type Dataset struct {
	Cases []TestCase
}

// CaseResult holds every metric verdict for one test case. A case passes
// only when every metric passed. Err is set when a metric could not be
// measured; the remaining metrics for that case are skipped.
type CaseResult struct {
	CaseID        string         `json:"case_id"`
	Input         string         `json:"input"`
	MetricResults []MetricResult `json:"metric_results"`
	Passed        bool           `json:"passed"`
	Err           error          `json:"-"`
}

// Report aggregates a dataset run: per-case results in dataset order,
// average score per metric, and the fraction of cases that passed.
type Report struct {
	Results        []CaseResult       `json:"results"`
	MetricAverages map[string]float64 `json:"metric_averages"`
	PassRate       float64            `json:"pass_rate"`
}

const defaultWorkers = 5

type evalOptions struct {
	workers int
	logger  *zerolog.Logger
}

type EvalOption func(*evalOptions)

// WithWorkers bounds the number of cases evaluated concurrently.
func WithWorkers(n int) EvalOption {
	return func(o *evalOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithEvalLogger attaches a logger to the dataset run.
func WithEvalLogger(logger *zerolog.Logger) EvalOption {
	return func(o *evalOptions) {
		o.logger = logger
	}
}

// Evaluate runs every metric against every case in the dataset with a bounded
// worker pool. Measurement failures mark the case failed and are recorded on
// its result; they do not abort the run.
func Evaluate(ctx context.Context, ds Dataset, metrics []Metric, opts ...EvalOption) (*Report, error) {
	if len(ds.Cases) == 0 {
		return nil, fmt.Errorf("dataset contains no test cases")
	}
	if len(metrics) == 0 {
		return nil, fmt.Errorf("no metrics provided")
	}

	nop := zerolog.Nop()
	options := evalOptions{
		workers: defaultWorkers,
		logger:  &nop,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.workers > len(ds.Cases) {
		options.workers = len(ds.Cases)
	}

	results := make([]CaseResult, len(ds.Cases))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < options.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = evaluateCase(ctx, ds.Cases[idx], metrics, options.logger)
			}
		}()
	}

	for idx := range ds.Cases {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	report := buildReport(results)

	options.logger.Info().
		Int("cases", len(results)).
		Float64("pass_rate", report.PassRate).
		Msg("dataset evaluation complete")

	return report, nil
}

func evaluateCase(ctx context.Context, tc TestCase, metrics []Metric, logger *zerolog.Logger) CaseResult {
	result := CaseResult{
		CaseID: uuid.NewString(),
		Input:  tc.Input,
		Passed: true,
	}

	for _, m := range metrics {
		mr, err := m.Measure(ctx, tc)
		if err != nil {
			logger.Error().
				Err(err).
				Str("case_id", result.CaseID).
				Str("metric", m.Name()).
				Msg("metric measurement failed")
			result.Err = err
			result.Passed = false
			return result
		}

		result.MetricResults = append(result.MetricResults, *mr)
		if !mr.Passed {
			result.Passed = false
		}
	}

	return result
}

func buildReport(results []CaseResult) *Report {
	report := &Report{
		Results:        results,
		MetricAverages: make(map[string]float64),
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	passed := 0

	for _, cr := range results {
		if cr.Passed {
			passed++
		}
		for _, mr := range cr.MetricResults {
			sums[mr.Name] += mr.Score
			counts[mr.Name]++
		}
	}

	for name, sum := range sums {
		report.MetricAverages[name] = sum / float64(counts[name])
	}
	report.PassRate = float64(passed) / float64(len(results))

	return report
}
