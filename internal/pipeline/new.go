package pipeline

import (
	"voxscribe/internal/chunker"
	"voxscribe/internal/config"
	"voxscribe/internal/logger"
	"voxscribe/internal/summarizer"
	"voxscribe/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	chunker     chunker.Chunker
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(cfg *config.Config, ch chunker.Chunker, tr transcriber.Transcriber, sm summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		chunker:     ch,
		transcriber: tr,
		summarizer:  sm,
		logger:      log,
	}
}
