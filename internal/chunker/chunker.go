package chunker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"voxscribe/internal/config"
	"voxscribe/internal/logger"
	"voxscribe/pkg/executor"
)

const segmentPattern = "seg%03d.mp3"

type implChunker struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Chunker instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Chunker {
	return &implChunker{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Split invokes ffmpeg's segment muxer to cut audioPath into segments of at
// most segment.duration_seconds each. Segments live in an isolated temp
// directory so concurrent inputs never share file names.
func (c *implChunker) Split(ctx context.Context, audioPath string) (string, error) {
	absAudio, err := filepath.Abs(audioPath)
	if err != nil {
		return "", fmt.Errorf("resolve audio path: %w", err)
	}

	dir, err := os.MkdirTemp(filepath.Dir(audioPath), "segments-*")
	if err != nil {
		return "", fmt.Errorf("create segment dir: %w", err)
	}

	c.logger.Info(ctx, "Splitting audio into %ds segments: %s", c.cfg.Segment.DurationSeconds, audioPath)

	// FFmpeg arguments for segmenting
	// -i: Input audio
	// -f segment: Segment muxer
	// -segment_time: Maximum segment duration in seconds
	// -c copy: Stream copy, no re-encode
	// -y: Overwrite output files if they exist
	args := []string{
		"-i", absAudio,
		"-f", "segment",
		"-segment_time", strconv.Itoa(c.cfg.Segment.DurationSeconds),
		"-c", "copy",
		"-y",
		segmentPattern,
	}

	if _, err := c.executor.ExecuteInDir(ctx, dir, "ffmpeg", args...); err != nil {
		// Non-zero exit is not fatal: continue with whatever segments
		// ffmpeg managed to write before failing.
		c.logger.Error(ctx, "ffmpeg split failed for %s: %v", audioPath, err)
		return dir, nil
	}

	c.logger.Debug(ctx, "Audio split complete: %s", dir)
	return dir, nil
}

func (c *implChunker) SegmentPath(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf(segmentPattern, i))
}

// Cleanup removes segment files in index order, stopping at the first gap,
// then removes the directory itself. It never fails; leftovers are logged.
func (c *implChunker) Cleanup(ctx context.Context, dir string) {
	if dir == "" {
		return
	}

	for i := 0; ; i++ {
		seg := c.SegmentPath(dir, i)
		if _, err := os.Stat(seg); err != nil {
			break
		}
		if err := os.Remove(seg); err != nil {
			c.logger.Warn(ctx, "Failed to remove segment %s: %v", seg, err)
		} else {
			c.logger.Debug(ctx, "Removed segment: %s", seg)
		}
	}

	if err := os.Remove(dir); err != nil {
		c.logger.Warn(ctx, "Segment dir not removed %s: %v", dir, err)
	}
}
