package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voxscribe/internal/models"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Chat        ChatConfig        `yaml:"chat"`
	Segment     SegmentConfig     `yaml:"segment"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`

	// Credentials come from the environment, never from the config file.
	OpenAIKey string `yaml:"-"`
	GeminiKey string `yaml:"-"`

	// Summarize is set from the CLI flag.
	Summarize bool `yaml:"-"`
}

type WhisperConfig struct {
	Model string `yaml:"model"`
}

type ChatConfig struct {
	// Model is a user-facing alias resolved through internal/models.
	Model string `yaml:"model"`
}

type SegmentConfig struct {
	// DurationSeconds is the maximum length of one audio segment, sized to
	// stay within the speech-recognition backend's input limits.
	DurationSeconds int `yaml:"duration_seconds"`
}

type OutputConfig struct {
	WrapWidth int  `yaml:"wrap_width"`
	Docx      bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads an optional YAML config file. An empty path yields a config
// holding only defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{Summarize: true}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.Model == "" {
		c.Whisper.Model = "whisper-1"
	}
	if c.Chat.Model == "" {
		c.Chat.Model = models.DefaultAlias
	}
	if c.Segment.DurationSeconds == 0 {
		c.Segment.DurationSeconds = 600
	}
	if c.Segment.DurationSeconds < 0 {
		return fmt.Errorf("segment.duration_seconds must be positive")
	}
	if c.Output.WrapWidth == 0 {
		c.Output.WrapWidth = 80
	}
	if c.Output.WrapWidth < 0 {
		return fmt.Errorf("output.wrap_width must be positive")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be positive")
	}

	return nil
}
