package summarizer

import (
	"voxscribe/internal/config"
	"voxscribe/internal/logger"
)

type implSummarizer struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a Summarizer that dispatches to the backend the resolved
// model alias belongs to.
func New(cfg *config.Config, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:    cfg,
		logger: log,
	}
}
