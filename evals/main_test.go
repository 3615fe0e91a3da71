package evals

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/joho/godotenv"
	"github.com/vek199/deep-eval-cicd/internal/eval"
	"github.com/vek199/deep-eval-cicd/internal/setup"
	"github.com/vek199/deep-eval-cicd/internal/setup/logger"
)

var (
	wireOnce sync.Once
	deps     *setup.Dependencies
	cfgErr   error

	metricsOnce sync.Once
	metricsCfg  *eval.MetricsConfig
	metricsErr  error
)

func TestMain(m *testing.M) {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	// Tests run from this package's directory; point the metric overrides at
	// the repo-level config unless the caller chose another one.
	if os.Getenv("METRICS_CONFIG_PATH") == "" {
		if _, err := os.Stat("../configs/metrics.yaml"); err == nil {
			os.Setenv("METRICS_CONFIG_PATH", "../configs/metrics.yaml")
		}
	}

	os.Exit(m.Run())
}

// liveDeps wires both Bedrock clients once per run. Every suite in this
// package calls real model endpoints, so execution is opt-in.
func liveDeps(t *testing.T) *setup.Dependencies {
	t.Helper()

	if os.Getenv("RUN_BEDROCK_EVALS") == "" {
		t.Skip("set RUN_BEDROCK_EVALS=1 to run live Bedrock evaluations")
	}

	wireOnce.Do(func() {
		cfg := setup.LoadConfig()
		lg := logger.New(cfg.LogLevel)
		deps, cfgErr = setup.Wire(context.Background(), cfg, &lg)
	})
	if cfgErr != nil {
		t.Fatalf("failed to wire Bedrock clients: %v", cfgErr)
	}

	return deps
}

func overrides(t *testing.T) *eval.MetricsConfig {
	t.Helper()

	metricsOnce.Do(func() {
		metricsCfg, metricsErr = eval.LoadMetricsConfig()
	})
	if metricsErr != nil {
		t.Fatalf("failed to load metric overrides: %v", metricsErr)
	}

	return metricsCfg
}

func mustMetric(t *testing.T, m eval.Metric, err error) eval.Metric {
	t.Helper()
	if err != nil {
		t.Fatalf("failed to build metric: %v", err)
	}
	return m
}

// generate obtains the application model's answer for a prompt, failing the
// test on any invocation error.
func generate(t *testing.T, prompt string) string {
	t.Helper()

	d := liveDeps(t)
	output, err := d.Model.Generate(t.Context(), prompt)
	if err != nil {
		t.Fatalf("application model call failed: %v", err)
	}
	return output
}

func generateWithContext(t *testing.T, prompt string, contextDocs []string) string {
	t.Helper()

	d := liveDeps(t)
	output, err := d.Model.GenerateWithContext(t.Context(), prompt, contextDocs)
	if err != nil {
		t.Fatalf("application model call failed: %v", err)
	}
	return output
}
