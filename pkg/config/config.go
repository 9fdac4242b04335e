/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the RuneStream tool configuration
type Config struct {
	Endianness     string `yaml:"endianness"`      // "big" or "little", decode order for multi-byte reads
	VerifyChecksum bool   `yaml:"verify_checksum"` // verify trailing CRC-32 fields by default
	Output         Output `yaml:"output"`
}

// Output contains display configuration for the dump commands
type Output struct {
	Width int `yaml:"width"` // bytes per dump row
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Endianness:     "big",
		VerifyChecksum: true,
		Output: Output{
			Width: 16,
		},
	}
}

// LittleEndian reports whether multi-byte values should be decoded
// least-significant byte first.
func (c *Config) LittleEndian() bool {
	return c.Endianness == "little"
}

// Validate checks the configuration for values the tool cannot work with
func (c *Config) Validate() error {
	if c.Endianness != "big" && c.Endianness != "little" {
		return fmt.Errorf("invalid endianness %q: must be \"big\" or \"little\"", c.Endianness)
	}
	if c.Output.Width <= 0 {
		return fmt.Errorf("invalid output width %d: must be positive", c.Output.Width)
	}
	return nil
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
