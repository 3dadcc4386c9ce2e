package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit values kept",
			config: Config{
				Whisper: WhisperConfig{Model: "whisper-1"},
				Chat:    ChatConfig{Model: "gpt-4"},
				Segment: SegmentConfig{DurationSeconds: 300},
				Output:  OutputConfig{WrapWidth: 120},
			},
			wantErr: false,
		},
		{
			name:    "negative segment duration",
			config:  Config{Segment: SegmentConfig{DurationSeconds: -1}},
			wantErr: true,
		},
		{
			name:    "negative wrap width",
			config:  Config{Output: OutputConfig{WrapWidth: -80}},
			wantErr: true,
		},
		{
			name:    "negative max concurrent",
			config:  Config{Performance: PerformanceConfig{MaxConcurrent: -2}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Model != "whisper-1" {
		t.Errorf("Whisper.Model = %v, want whisper-1", cfg.Whisper.Model)
	}
	if cfg.Chat.Model != "gpt-3.5" {
		t.Errorf("Chat.Model = %v, want gpt-3.5", cfg.Chat.Model)
	}
	if cfg.Segment.DurationSeconds != 600 {
		t.Errorf("Segment.DurationSeconds = %v, want 600", cfg.Segment.DurationSeconds)
	}
	if cfg.Output.WrapWidth != 80 {
		t.Errorf("Output.WrapWidth = %v, want 80", cfg.Output.WrapWidth)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("Performance.MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model: "whisper-1"

chat:
  model: "gpt-4"

segment:
  duration_seconds: 300

output:
  wrap_width: 100
  docx: true

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Chat.Model != "gpt-4" {
		t.Errorf("Chat.Model = %v, want gpt-4", cfg.Chat.Model)
	}
	if cfg.Segment.DurationSeconds != 300 {
		t.Errorf("Segment.DurationSeconds = %v, want 300", cfg.Segment.DurationSeconds)
	}
	if !cfg.Output.Docx {
		t.Error("Output.Docx = false, want true")
	}
	if !cfg.Summarize {
		t.Error("Summarize default = false, want true")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Output.WrapWidth != 80 {
		t.Errorf("WrapWidth = %v, want default 80", cfg.Output.WrapWidth)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
