package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Logger        Logger        `yaml:"logger"`
	BulkExtractor BulkExtractor `yaml:"bulk_extractor"`
	Uploader      Uploader      `yaml:"uploader"`
	Server        Server        `yaml:"server"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type BulkExtractor struct {
	Binary         string   `yaml:"binary"`
	OutputRoot     string   `yaml:"output_root"`
	AdditionalArgs []string `yaml:"additional_args"`
}

type Uploader struct {
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

type Server struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// NewConfig loads the YAML configuration at configPath. A missing file is not
// an error: the defaults apply so the CLI works without any configuration.
func NewConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := LoadYAML(configPath, config); err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Logger: Logger{Level: "INFO"},
		BulkExtractor: BulkExtractor{
			Binary:     "bulk_extractor",
			OutputRoot: os.TempDir(),
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = defaults.Logger.Level
	}
	if cfg.BulkExtractor.Binary == "" {
		cfg.BulkExtractor.Binary = defaults.BulkExtractor.Binary
	}
	if cfg.BulkExtractor.OutputRoot == "" {
		cfg.BulkExtractor.OutputRoot = defaults.BulkExtractor.OutputRoot
	}
}
