package eval

import (
	"fmt"
	"strings"
)

const gevalPrompt = `You are an evaluation judge applying a custom metric.

Criteria:
{{.Criteria}}

{{.Fields}}

Score how well the content satisfies the criteria on a scale from 0.0 to 1.0.

` + respondJSON

// GEvalConfig declares a custom judge-scored metric: natural-language
// criteria plus the subset of test-case fields the judge should see.
type GEvalConfig struct {
	Name     string
	Criteria string
	Params   []Param

	// Threshold is the pass score; the zero value means the 0.5 default.
	// An explicit 0.0 threshold is expressed with WithThreshold(0).
	Threshold float64
}

// NewGEval builds a custom metric from natural-language criteria. Pass iff
// score >= threshold; a zero threshold defaults to 0.5.
func NewGEval(judge JudgeModel, cfg GEvalConfig, opts ...MetricOption) (Metric, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, fmt.Errorf("geval metric requires a name")
	}
	if strings.TrimSpace(cfg.Criteria) == "" {
		return nil, fmt.Errorf("geval metric %s requires criteria", cfg.Name)
	}
	if len(cfg.Params) == 0 {
		return nil, fmt.Errorf("geval metric %s requires at least one evaluation param", cfg.Name)
	}

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = 0.5
	}

	m, err := newJudgeMetric(cfg.Name, gevalPrompt, threshold, false, cfg.Params, judge, opts)
	if err != nil {
		return nil, err
	}
	m.criteria = cfg.Criteria

	return m, nil
}
