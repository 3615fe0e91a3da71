package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/vek199/deep-eval-cicd/internal/judge"
	"github.com/vek199/deep-eval-cicd/internal/llm/bedrock"
	"github.com/vek199/deep-eval-cicd/internal/qwen"
)

type Config struct {
	AWSRegion    string
	ModelID      string
	JudgeModelID string
	Retry        bool
	LogLevel     string
}

type Dependencies struct {
	Model  *qwen.Model
	Judge  *judge.Qwen
	Logger *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:    getEnv("AWS_REGION", "ap-south-1"),
		ModelID:      getEnv("QWEN_MODEL_ID", qwen.DefaultModelID),
		JudgeModelID: getEnv("QWEN_JUDGE_MODEL_ID", judge.DefaultModelID),
		Retry:        getEnvBool("BEDROCK_RETRY", false),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds both Bedrock clients and the adapters the test declarations
// use: the application model under test and the judge that scores it.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	modelClient, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create application model client: %w", err)
	}

	judgeClient, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.JudgeModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to create judge model client: %w", err)
	}

	return &Dependencies{
		Model:  qwen.NewModel(modelClient, cfg.Retry, logger),
		Judge:  judge.NewQwen(judgeClient, cfg.Retry, logger),
		Logger: logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
