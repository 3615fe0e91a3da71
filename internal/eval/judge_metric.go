package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog"
)

// verdictSchema is the JSON schema every judge verdict must satisfy. The
// judge adapter validates its output against it before the verdict reaches
// the metric.
var verdictSchema = []byte(`{
	"type": "object",
	"required": ["score", "reason"],
	"properties": {
		"score": {"type": "number", "minimum": 0, "maximum": 1},
		"reason": {"type": "string", "minLength": 1}
	}
}`)

type judgeVerdict struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// promptData is the view a metric prompt template is executed against.
type promptData struct {
	Input            string
	ActualOutput     string
	ExpectedOutput   string
	RetrievalContext string
	Context          string
	Criteria         string
	Fields           string
}

// judgeMetric is the single engine behind every built-in metric and G-Eval:
// render the metric's prompt template, ask the judge for a schema-constrained
// verdict, compare the score against the threshold.
type judgeMetric struct {
	name      string
	threshold float64

	// lowerIsBetter flips the pass condition for metrics that score a defect
	// (hallucination, bias, toxicity): pass iff score <= threshold.
	lowerIsBetter bool

	required []Param
	tmpl     *template.Template
	criteria string
	judge    JudgeModel
	logger   *zerolog.Logger
}

func newJudgeMetric(
	name string,
	prompt string,
	threshold float64,
	lowerIsBetter bool,
	required []Param,
	judge JudgeModel,
	opts []MetricOption,
) (*judgeMetric, error) {
	if judge == nil {
		return nil, fmt.Errorf("metric %s: judge model is nil", name)
	}

	tmpl, err := template.New(name).Parse(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for metric %s: %w", name, err)
	}

	nop := zerolog.Nop()
	m := &judgeMetric{
		name:          name,
		threshold:     threshold,
		lowerIsBetter: lowerIsBetter,
		required:      required,
		tmpl:          tmpl,
		judge:         judge,
		logger:        &nop,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("metric %s: %w", name, err)
		}
	}

	if m.threshold < 0 || m.threshold > 1 {
		return nil, fmt.Errorf("metric %s: threshold %f out of range [0.0, 1.0]", name, m.threshold)
	}

	return m, nil
}

// MetricOption customizes a metric at construction time.
type MetricOption func(*judgeMetric) error

// WithThreshold overrides the metric's default pass/fail threshold.
func WithThreshold(t float64) MetricOption {
	return func(m *judgeMetric) error {
		m.threshold = t
		return nil
	}
}

// WithLogger attaches a logger; metrics are silent by default.
func WithLogger(logger *zerolog.Logger) MetricOption {
	return func(m *judgeMetric) error {
		m.logger = logger
		return nil
	}
}

// WithConfig applies the prompt/threshold override for this metric's name
// from a loaded metrics configuration, if one exists.
func WithConfig(cfg *MetricsConfig) MetricOption {
	return func(m *judgeMetric) error {
		if cfg == nil {
			return nil
		}
		override, ok := cfg.Metrics[m.name]
		if !ok {
			return nil
		}
		if override.Prompt != "" {
			tmpl, err := template.New(m.name).Parse(override.Prompt)
			if err != nil {
				return fmt.Errorf("invalid prompt override: %w", err)
			}
			m.tmpl = tmpl
		}
		if override.Threshold != nil {
			m.threshold = *override.Threshold
		}
		return nil
	}
}

func (m *judgeMetric) Name() string {
	return m.name
}

func (m *judgeMetric) Threshold() float64 {
	return m.threshold
}

// Measure renders the prompt, obtains the judge verdict, and applies the
// threshold. The boundary passes: score == threshold is a pass in both
// directions.
func (m *judgeMetric) Measure(ctx context.Context, tc TestCase) (*MetricResult, error) {
	start := time.Now()

	if missing := missingParams(tc, m.required); len(missing) > 0 {
		return nil, fmt.Errorf("metric %s requires non-empty %s", m.name, joinParams(missing))
	}

	prompt, err := m.buildPrompt(tc)
	if err != nil {
		return nil, fmt.Errorf("metric %s: failed to build prompt: %w", m.name, err)
	}

	raw, err := m.judge.GenerateWithSchema(ctx, prompt, verdictSchema)
	if err != nil {
		return nil, fmt.Errorf("metric %s: judge call failed: %w", m.name, err)
	}

	var verdict judgeVerdict
	if err := json.Unmarshal(raw, &verdict); err != nil {
		return nil, fmt.Errorf("metric %s: failed to decode judge verdict: %w", m.name, err)
	}

	passed := verdict.Score >= m.threshold
	if m.lowerIsBetter {
		passed = verdict.Score <= m.threshold
	}

	result := &MetricResult{
		Name:    m.name,
		Score:   verdict.Score,
		Reason:  verdict.Reason,
		Passed:  passed,
		Elapsed: time.Since(start),
	}

	m.logger.Info().
		Str("metric", m.name).
		Float64("score", result.Score).
		Float64("threshold", m.threshold).
		Bool("passed", result.Passed).
		Dur("duration", result.Elapsed).
		Msg("metric measured")

	return result, nil
}

func (m *judgeMetric) buildPrompt(tc TestCase) (string, error) {
	data := promptData{
		Input:            tc.Input,
		ActualOutput:     tc.ActualOutput,
		ExpectedOutput:   tc.ExpectedOutput,
		RetrievalContext: numberedBlock(tc.RetrievalContext),
		Context:          numberedBlock(tc.Context),
		Criteria:         m.criteria,
		Fields:           renderFields(tc, m.required),
	}

	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// renderFields produces the labeled block of test-case fields a custom metric
// declared it inspects.
func renderFields(tc TestCase, params []Param) string {
	var sb strings.Builder
	for _, p := range params {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		switch p {
		case ParamInput:
			sb.WriteString("Input: " + tc.Input)
		case ParamActualOutput:
			sb.WriteString("Actual output: " + tc.ActualOutput)
		case ParamExpectedOutput:
			sb.WriteString("Expected output: " + tc.ExpectedOutput)
		case ParamRetrievalContext:
			sb.WriteString("Retrieval context:\n" + numberedBlock(tc.RetrievalContext))
		case ParamContext:
			sb.WriteString("Context:\n" + numberedBlock(tc.Context))
		}
	}
	return sb.String()
}

func joinParams(params []Param) string {
	strs := make([]string, len(params))
	for i, p := range params {
		strs[i] = string(p)
	}
	return strings.Join(strs, ", ")
}
