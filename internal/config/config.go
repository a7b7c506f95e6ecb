// Package config loads the optional YAML file of the API gateway.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Gateway holds file-level settings for cmd/api-gateway. Zero values mean
// "not set" and leave the flag default in place.
type Gateway struct {
	Addr         string   `yaml:"addr"`
	RPS          int      `yaml:"rps"`
	MaxBodyBytes int64    `yaml:"max_body_bytes"`
	BatchWorkers int      `yaml:"batch_workers"`
	LogJSON      bool     `yaml:"log_json"`
	CORSOrigins  []string `yaml:"cors_origins"`
}

// Load reads and validates the gateway config at path.
func Load(path string) (*Gateway, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a gateway config document. Unknown keys are rejected.
func Parse(data []byte) (*Gateway, error) {
	cfg := &Gateway{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Gateway) validate() error {
	if c.RPS < 0 {
		return fmt.Errorf("rps must not be negative, got %d", c.RPS)
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must not be negative, got %d", c.MaxBodyBytes)
	}
	if c.BatchWorkers < 0 {
		return fmt.Errorf("batch_workers must not be negative, got %d", c.BatchWorkers)
	}
	return nil
}
