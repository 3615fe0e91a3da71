package bedrock

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/vek199/deep-eval-cicd/internal/llm"
)

type Client struct {
	Client       *bedrockruntime.Client
	ModelID      string
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func NewClient(ctx context.Context, region string, modelID string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, &llm.InvocationError{ModelID: modelID, Op: "load-config", Err: err}
	}

	// Resolve the credential chain once so a misconfigured environment fails
	// here, before any model call goes out.
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, &llm.InvocationError{ModelID: modelID, Op: "resolve-credentials", Err: err}
	}

	return &Client{
		Client:       bedrockruntime.NewFromConfig(cfg),
		ModelID:      modelID,
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     8 * time.Second,
	}, nil
}
