package eval

import (
	"fmt"
	"strings"
)

// TestCase is a single evaluation input. It is constructed once per test case
// and never mutated: the query, the model output under evaluation, and the
// optional reference material the metrics inspect.
type TestCase struct {
	// Input is the query sent to the application model.
	Input string

	// ActualOutput is the application model's generated answer.
	ActualOutput string

	// ExpectedOutput is the optional reference answer.
	ExpectedOutput string

	// RetrievalContext is the ordered list of retrieved documents the answer
	// was generated from (RAG metrics).
	RetrievalContext []string

	// Context is the ground-truth background the answer is checked against
	// (hallucination metric).
	Context []string
}

// Param identifies a TestCase field a metric inspects.
type Param string

const (
	ParamInput            Param = "input"
	ParamActualOutput     Param = "actual_output"
	ParamExpectedOutput   Param = "expected_output"
	ParamRetrievalContext Param = "retrieval_context"
	ParamContext          Param = "context"
)

func (tc TestCase) has(p Param) bool {
	switch p {
	case ParamInput:
		return strings.TrimSpace(tc.Input) != ""
	case ParamActualOutput:
		return strings.TrimSpace(tc.ActualOutput) != ""
	case ParamExpectedOutput:
		return strings.TrimSpace(tc.ExpectedOutput) != ""
	case ParamRetrievalContext:
		return len(tc.RetrievalContext) > 0
	case ParamContext:
		return len(tc.Context) > 0
	}
	return false
}

func missingParams(tc TestCase, required []Param) []Param {
	var missing []Param
	for _, p := range required {
		if !tc.has(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// numberedBlock renders documents the way the judge prompts reference them,
// one "Context N: ..." line per document.
func numberedBlock(docs []string) string {
	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Context %d: %s", i+1, doc)
	}
	return sb.String()
}
