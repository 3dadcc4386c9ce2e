package router

import (
	"context"
	"strings"
	"sync"

	"voxscribe/internal/config"
	"voxscribe/internal/downloader"
	"voxscribe/internal/logger"
	"voxscribe/internal/pipeline"
)

// Kind classifies one CLI input item.
type Kind int

const (
	KindRemoteLink Kind = iota
	KindLocalAudio
	KindInvalid
)

var remotePrefixes = []string{
	"https://www.youtube.com/",
	"https://youtu.be/",
}

// Classify applies the routing rule in order: remote-hosting prefix, then
// the .mp3 suffix (case-insensitive, same rule as the watcher), otherwise
// invalid.
func Classify(input string) Kind {
	for _, prefix := range remotePrefixes {
		if strings.HasPrefix(input, prefix) {
			return KindRemoteLink
		}
	}
	if strings.HasSuffix(strings.ToLower(input), ".mp3") {
		return KindLocalAudio
	}
	return KindInvalid
}

type Router struct {
	cfg        *config.Config
	downloader downloader.Downloader
	pipeline   pipeline.Pipeline
	logger     logger.Logger
}

// New creates a new Router instance
func New(cfg *config.Config, dl downloader.Downloader, pl pipeline.Pipeline, log logger.Logger) *Router {
	return &Router{
		cfg:        cfg,
		downloader: dl,
		pipeline:   pl,
		logger:     log,
	}
}

// Dispatch processes all inputs concurrently, bounded by the configured
// semaphore. One input's failure never aborts its siblings. Returns the
// number of inputs that failed so the caller can reflect it in the exit
// status.
func (r *Router) Dispatch(ctx context.Context, inputs []string) int {
	sem := newSemaphore(r.cfg.Performance.MaxConcurrent)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for _, input := range inputs {
		if Classify(input) == KindInvalid {
			r.logger.Error(ctx, "Invalid input, skipping: %s", input)
			mu.Lock()
			failed++
			mu.Unlock()
			continue
		}

		if err := sem.acquire(ctx); err != nil {
			r.logger.Error(ctx, "Dispatch cancelled: %v", err)
			mu.Lock()
			failed++
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			defer sem.release()

			if err := r.processOne(ctx, input); err != nil {
				r.logger.Error(ctx, "Processing failed for %s: %v", input, err)
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(input)
	}

	wg.Wait()
	return failed
}

func (r *Router) processOne(ctx context.Context, input string) error {
	audioPath := input

	if Classify(input) == KindRemoteLink {
		var err error
		audioPath, err = r.downloader.Download(ctx, input)
		if err != nil {
			return err
		}
	}

	return r.pipeline.Process(ctx, audioPath)
}
