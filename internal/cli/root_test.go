package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxscribe/internal/models"
)

// resetFlags restores every persistent flag to its default and clears its
// explicitly-set state.
func resetFlags(t *testing.T) {
	t.Helper()
	defaults := map[string]string{
		"config":    "",
		"summarize": "true",
		"gpt-model": models.DefaultAlias,
		"docx":      "false",
	}
	pf := rootCmd.PersistentFlags()
	for name, def := range defaults {
		if err := pf.Set(name, def); err != nil {
			t.Fatal(err)
		}
		pf.Lookup(name).Changed = false
	}
}

// setFlag simulates the flag being passed on the command line.
func setFlag(t *testing.T, name, value string) {
	t.Helper()
	if err := rootCmd.PersistentFlags().Set(name, value); err != nil {
		t.Fatal(err)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildConfigDefaults(t *testing.T) {
	resetFlags(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.Chat.Model != models.DefaultAlias {
		t.Errorf("Chat.Model = %q, want %q", cfg.Chat.Model, models.DefaultAlias)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q, want sk-test", cfg.OpenAIKey)
	}
	if !cfg.Summarize {
		t.Error("Summarize should default to true")
	}
	if cfg.Output.WrapWidth != 80 {
		t.Errorf("WrapWidth = %d, want 80", cfg.Output.WrapWidth)
	}
}

func TestBuildConfigMissingKey(t *testing.T) {
	resetFlags(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := buildConfig()
	if err == nil {
		t.Fatal("buildConfig() should fail without OPENAI_API_KEY")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the missing variable, got %v", err)
	}
}

func TestBuildConfigUnknownAlias(t *testing.T) {
	resetFlags(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	setFlag(t, "gpt-model", "claude")

	_, err := buildConfig()
	if err == nil {
		t.Fatal("buildConfig() should fail on an unknown model alias")
	}
	if !errors.Is(err, models.ErrUnsupportedModel) {
		t.Errorf("error = %v, want ErrUnsupportedModel", err)
	}
}

func TestBuildConfigGeminiNeedsKey(t *testing.T) {
	resetFlags(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")
	setFlag(t, "gpt-model", "gemini")

	if _, err := buildConfig(); err == nil {
		t.Fatal("buildConfig() should require GEMINI_API_KEY for the gemini alias")
	}

	t.Setenv("GEMINI_API_KEY", "g-test")
	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.GeminiKey != "g-test" {
		t.Errorf("GeminiKey = %q, want g-test", cfg.GeminiKey)
	}
}

func TestBuildConfigSummarizeDisabledSkipsGeminiKey(t *testing.T) {
	resetFlags(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")
	setFlag(t, "gpt-model", "gemini")
	setFlag(t, "summarize", "false")

	// Without summarization the chat backend is never called, so its
	// credential is not required.
	if _, err := buildConfig(); err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
}

func TestBuildConfigFileValueStandsWithoutFlag(t *testing.T) {
	resetFlags(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "g-test")

	path := writeConfigFile(t, "chat:\n  model: gemini\noutput:\n  docx: true\n")
	setFlag(t, "config", path)

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.Chat.Model != "gemini" {
		t.Errorf("Chat.Model = %q, want gemini from the config file", cfg.Chat.Model)
	}
	if !cfg.Output.Docx {
		t.Error("Output.Docx should come from the config file")
	}
}

func TestBuildConfigExplicitFlagBeatsFile(t *testing.T) {
	resetFlags(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := writeConfigFile(t, "chat:\n  model: gemini\noutput:\n  docx: true\n")
	setFlag(t, "config", path)

	// Explicitly passing the defaults must still override the file.
	setFlag(t, "gpt-model", "gpt-3.5")
	setFlag(t, "docx", "false")

	cfg, err := buildConfig()
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.Chat.Model != "gpt-3.5" {
		t.Errorf("Chat.Model = %q, want gpt-3.5 (explicit flag should beat config file)", cfg.Chat.Model)
	}
	if cfg.Output.Docx {
		t.Error("Output.Docx = true, want false (explicit flag should beat config file)")
	}
}
