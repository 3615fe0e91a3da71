package qwen

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vek199/deep-eval-cicd/internal/llm"
)

const (
	// DefaultModelID is the application model under test.
	DefaultModelID = "qwen.qwen3-32b-v1:0"

	defaultMaxTokens   = 512
	defaultTemperature = 0.2

	// RAG answers are generated at a lower temperature so the output stays
	// close to the retrieved documents.
	ragTemperature = 0.1
)

// Model wraps the Qwen3-32B application model on Bedrock. It is the system
// under test: test declarations call it to obtain the outputs that the judge
// model scores.
type Model struct {
	client llm.Client
	retry  bool
	logger *zerolog.Logger
}

func NewModel(client llm.Client, retry bool, logger *zerolog.Logger) *Model {
	return &Model{
		client: client,
		retry:  retry,
		logger: logger,
	}
}

type genOptions struct {
	maxTokens   int
	temperature float64
}

type Option func(*genOptions)

func WithMaxTokens(n int) Option {
	return func(o *genOptions) {
		o.maxTokens = n
	}
}

func WithTemperature(t float64) Option {
	return func(o *genOptions) {
		o.temperature = t
	}
}

// Generate returns the model's text completion for the prompt. A successful
// call never returns an empty string; an empty completion is reported as an
// error so tests cannot silently pass on missing output.
func (m *Model) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt must not be empty")
	}

	options := genOptions{
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := llm.Request{
		Prompt:      prompt,
		MaxTokens:   options.maxTokens,
		Temperature: options.temperature,
	}

	var (
		resp *llm.Response
		err  error
	)
	if m.retry {
		resp, err = m.client.InvokeModelWithRetry(ctx, request)
	} else {
		resp, err = m.client.InvokeModel(ctx, request)
	}
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", fmt.Errorf("model returned empty output (stop_reason=%s)", resp.StopReason)
	}

	m.logger.Debug().
		Int("prompt_len", len(prompt)).
		Int("output_len", len(content)).
		Str("stop_reason", resp.StopReason).
		Msg("model generation complete")

	return content, nil
}

// GenerateWithContext answers a question against retrieved documents, for
// RAG-style evaluation.
func (m *Model) GenerateWithContext(ctx context.Context, prompt string, contextDocs []string, opts ...Option) (string, error) {
	var sb strings.Builder
	for i, doc := range contextDocs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Context %d: %s", i+1, doc)
	}

	fullPrompt := fmt.Sprintf(`Use the following context to answer the question.

%s

Question: %s

Answer:`, sb.String(), prompt)

	return m.Generate(ctx, fullPrompt, append([]Option{WithTemperature(ragTemperature)}, opts...)...)
}
