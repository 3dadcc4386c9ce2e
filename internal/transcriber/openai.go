package transcriber

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"voxscribe/internal/config"
	"voxscribe/internal/logger"
)

type implTranscriber struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// New creates a Transcriber backed by OpenAI's speech-recognition API.
func New(cfg *config.Config, log logger.Logger) Transcriber {
	return &implTranscriber{
		client: openai.NewClient(cfg.OpenAIKey),
		model:  cfg.Whisper.Model,
		logger: log,
	}
}

// Transcribe uploads the segment's bytes and returns the recognized text.
// The caller decides what a failed segment means; this just reports it.
func (t *implTranscriber) Transcribe(ctx context.Context, segmentPath string) (string, error) {
	t.logger.Debug(ctx, "Transcribing segment: %s", segmentPath)

	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: segmentPath,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", segmentPath, err)
	}

	return resp.Text, nil
}
