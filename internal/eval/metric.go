package eval

import (
	"context"
	"encoding/json"
	"time"
)

// JudgeModel is the pluggable judge contract. Any model that can generate
// text for an evaluation prompt, optionally constrained to a JSON schema,
// can score test cases.
type JudgeModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateWithSchema(ctx context.Context, prompt string, schema []byte) (json.RawMessage, error)
	Name() string
}

// Metric scores a test case against a pass/fail threshold.
type Metric interface {
	Name() string
	Threshold() float64
	Measure(ctx context.Context, tc TestCase) (*MetricResult, error)
}

// MetricResult is one metric's verdict for one test case.
type MetricResult struct {
	Name    string        `json:"name"`
	Score   float64       `json:"score"`
	Reason  string        `json:"reason"`
	Passed  bool          `json:"passed"`
	Elapsed time.Duration `json:"elapsed_ns"`
}
