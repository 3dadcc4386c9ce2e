package models

import (
	"errors"
	"fmt"
)

// Provider identifies which chat backend serves a model.
type Provider int

const (
	ProviderOpenAI Provider = iota
	ProviderGemini
)

func (p Provider) String() string {
	switch p {
	case ProviderOpenAI:
		return "openai"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// ChatModel maps a user-facing alias to a canonical backend identifier.
type ChatModel struct {
	Alias    string
	ID       string
	Provider Provider
}

// DefaultAlias is used when no --gpt-model flag is given.
const DefaultAlias = "gpt-3.5"

// ErrUnsupportedModel is returned for aliases outside the fixed set.
var ErrUnsupportedModel = errors.New("unsupported model")

var catalog = map[string]ChatModel{
	"gpt-3.5": {Alias: "gpt-3.5", ID: "gpt-3.5-turbo", Provider: ProviderOpenAI},
	"gpt-4":   {Alias: "gpt-4", ID: "gpt-4", Provider: ProviderOpenAI},
	"gemini":  {Alias: "gemini", ID: "gemini-2.5-flash", Provider: ProviderGemini},
}

// Resolve returns the catalog entry for alias. Unknown aliases are a hard
// error, never a fallback to a default model.
func Resolve(alias string) (ChatModel, error) {
	m, ok := catalog[alias]
	if !ok {
		return ChatModel{}, fmt.Errorf("%w: %q", ErrUnsupportedModel, alias)
	}
	return m, nil
}

// Aliases returns the supported aliases, for help text and validation
// messages.
func Aliases() []string {
	return []string{"gpt-3.5", "gpt-4", "gemini"}
}
