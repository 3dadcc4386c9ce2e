package summarizer

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"voxscribe/internal/models"
)

const summaryPrompt = `You are given the transcript of a recorded talk. Write a concise summary in the transcript's own language.

Requirements:
- Start with a one-sentence overview of the topic
- List the main points in the order they appear
- Keep technical terms as spoken
- End with the conclusions or takeaways, if any

Transcript:
---
%s
---`

// Summarize resolves modelAlias (hard failure on an unknown alias), sends
// the whole transcript in a single user message, and returns the single
// response. No retry and no transcript chunking: an oversized transcript
// is rejected by the backend and that error is returned as-is.
func (s *implSummarizer) Summarize(ctx context.Context, transcript, modelAlias string) (string, error) {
	model, err := models.Resolve(modelAlias)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Summarizing with %s (%s)", model.ID, model.Provider)

	prompt := fmt.Sprintf(summaryPrompt, transcript)

	switch model.Provider {
	case models.ProviderGemini:
		return s.callGemini(ctx, model.ID, prompt)
	default:
		return s.callOpenAI(ctx, model.ID, prompt)
	}
}

func (s *implSummarizer) callOpenAI(ctx context.Context, modelID, prompt string) (string, error) {
	client := openai.NewClient(s.cfg.OpenAIKey)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

func (s *implSummarizer) callGemini(ctx context.Context, modelID, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.cfg.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, modelID, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
