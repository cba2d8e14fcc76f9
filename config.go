/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objectstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/objectstore/errors"
)

// Config holds the settings needed to reach the backing table. Values can
// come from a YAML file, the environment, or both; environment variables
// win over file values.
type Config struct {
	AWSAccessKey string `yaml:"awsAccessKey"`
	AWSSecretKey string `yaml:"awsSecretKey"`
	AWSRegion    string `yaml:"awsRegion"`
	TableName    string `yaml:"tableName"`
}

// LoadConfig reads a YAML configuration file and applies environment
// overrides (AWS_ACCESS_KEY, AWS_SECRET_KEY, AWS_REGION, AWS_DDB_TABLE).
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// ConfigFromEnv builds a Config from environment variables alone.
func ConfigFromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("AWS_ACCESS_KEY"); v != "" {
		c.AWSAccessKey = v
	}
	if v := os.Getenv("AWS_SECRET_KEY"); v != "" {
		c.AWSSecretKey = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.AWSRegion = v
	}
	if v := os.Getenv("AWS_DDB_TABLE"); v != "" {
		c.TableName = v
	}
}

// Validate checks that every required field is present.
func (c *Config) Validate() error {
	switch {
	case c.AWSAccessKey == "":
		return errors.NewConfigError("awsAccessKey", "must not be empty")
	case c.AWSSecretKey == "":
		return errors.NewConfigError("awsSecretKey", "must not be empty")
	case c.AWSRegion == "":
		return errors.NewConfigError("awsRegion", "must not be empty")
	case c.TableName == "":
		return errors.NewConfigError("tableName", "must not be empty")
	}
	return nil
}
