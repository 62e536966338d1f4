package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"voltline/internal/config"
)

type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Mongo struct {
		URI            string `yaml:"uri"`
		Database       string `yaml:"database"`
		ConnectTimeout string `yaml:"connectTimeout"`
	} `yaml:"mongo"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Order struct {
		NumberPrefix string `yaml:"numberPrefix"`
	} `yaml:"order"`
}

// LoadConfig reads a YAML config file, layering it over the environment
// defaults from config.Load. Unset file fields keep the env values.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if fc.Server.Port != 0 {
		cfg.Server.Port = fc.Server.Port
	}
	if fc.Mongo.URI != "" {
		cfg.Mongo.URI = fc.Mongo.URI
	}
	if fc.Mongo.Database != "" {
		cfg.Mongo.Database = fc.Mongo.Database
	}
	if fc.Mongo.ConnectTimeout != "" {
		d, err := time.ParseDuration(fc.Mongo.ConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing mongo connect timeout: %w", err)
		}
		cfg.Mongo.ConnectTimeout = d
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	if fc.Order.NumberPrefix != "" {
		cfg.Order.NumberPrefix = fc.Order.NumberPrefix
	}

	return cfg, nil
}
