package summarizer

import "context"

// Summarizer produces a summary of one full transcript via a chat model.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, modelAlias string) (string, error)
}
