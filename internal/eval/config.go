package eval

import (
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// MetricsConfig carries optional per-metric overrides loaded from YAML.
// Apply it to a metric with WithConfig.
type MetricsConfig struct {
	Metrics map[string]MetricOverride `yaml:"metrics"`
}

type MetricOverride struct {
	Prompt    string   `yaml:"prompt"`
	Threshold *float64 `yaml:"threshold"`
}

// LoadMetricsConfig reads metric overrides from METRICS_CONFIG_PATH
// (default configs/metrics.yaml). A missing file at the default path is not
// an error; an explicitly configured path must exist.
func LoadMetricsConfig() (*MetricsConfig, error) {
	path := os.Getenv("METRICS_CONFIG_PATH")
	explicit := path != ""
	if path == "" {
		path = "configs/metrics.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &MetricsConfig{}, nil
		}
		return nil, err
	}

	var cfg MetricsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *MetricsConfig) Validate() error {
	for name, override := range c.Metrics {
		if override.Prompt != "" {
			if _, err := template.New(name).Parse(override.Prompt); err != nil {
				return fmt.Errorf("metric %s: invalid prompt template: %w", name, err)
			}
		}
		if override.Threshold != nil && (*override.Threshold < 0 || *override.Threshold > 1) {
			return fmt.Errorf("metric %s: threshold %f out of range [0.0, 1.0]", name, *override.Threshold)
		}
	}
	return nil
}
