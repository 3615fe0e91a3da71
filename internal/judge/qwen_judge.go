package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vek199/deep-eval-cicd/internal/llm"
	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultModelID is the judge model, larger and more capable than the
	// application model it scores.
	DefaultModelID = "qwen.qwen3-235b-a22b-2507-v1:0"

	maxTokens = 1024

	// Low temperature for consistent evaluation
	temperature = 0.1
)

// Qwen adapts the Qwen3-235B judge model on Bedrock to the contract the
// evaluation metrics expect: generate text for a prompt, or generate a value
// that conforms to a caller-supplied JSON schema.
type Qwen struct {
	client llm.Client
	retry  bool
	logger *zerolog.Logger
}

func NewQwen(client llm.Client, retry bool, logger *zerolog.Logger) *Qwen {
	return &Qwen{
		client: client,
		retry:  retry,
		logger: logger,
	}
}

// Generate returns the judge model's raw text response to an evaluation prompt.
func (j *Qwen) Generate(ctx context.Context, prompt string) (string, error) {
	request := llm.Request{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	var (
		resp *llm.Response
		err  error
	)
	if j.retry {
		resp, err = j.client.InvokeModelWithRetry(ctx, request)
	} else {
		resp, err = j.client.InvokeModel(ctx, request)
	}
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}

// GenerateWithSchema calls the judge and validates its output against the
// supplied JSON schema. It returns the conforming JSON document or an error;
// a partially conforming value is never returned.
func (j *Qwen) GenerateWithSchema(ctx context.Context, prompt string, schema []byte) (json.RawMessage, error) {
	raw, err := j.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	content := stripMarkdownCodeBlock(raw)

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewStringLoader(content),
	)
	if err != nil {
		j.logger.Error().
			Err(err).
			Str("content", raw).
			Msg("judge output is not valid JSON")
		return nil, fmt.Errorf("judge output is not valid JSON: %w", err)
	}

	if !result.Valid() {
		var violations []string
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		j.logger.Error().
			Strs("violations", violations).
			Str("content", raw).
			Msg("judge output does not conform to schema")
		return nil, fmt.Errorf("judge output does not conform to schema: %s", strings.Join(violations, "; "))
	}

	return json.RawMessage(content), nil
}

// Name returns the model identifier used in logs and reports.
func (j *Qwen) Name() string {
	return "Qwen3-235B-A22B (Bedrock Judge)"
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	// Check for markdown code blocks (```json ... ``` or ``` ... ```)
	if strings.HasPrefix(content, "```") {
		// Find the first newline (after the opening ```)
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		// Find the closing ```
		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		// Extract the content between the code blocks
		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
