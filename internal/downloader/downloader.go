package downloader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	youtube "github.com/kkdai/youtube/v2"

	"voxscribe/internal/logger"
)

// audioFileName is the fixed name the audio stream is saved under inside
// the per-video directory.
const audioFileName = "audio.mp3"

type implDownloader struct {
	client youtube.Client
	logger logger.Logger
}

// New creates a new Downloader instance
func New(log logger.Logger) Downloader {
	return &implDownloader{
		client: youtube.Client{},
		logger: log,
	}
}

func (d *implDownloader) Download(ctx context.Context, url string) (string, error) {
	d.logger.Info(ctx, "Resolving video metadata: %s", url)

	video, err := d.client.GetVideoContext(ctx, url)
	if err != nil {
		return "", fmt.Errorf("get video metadata: %w", err)
	}

	formats := video.Formats.Type("audio")
	if len(formats) == 0 {
		// No fallback to video-with-audio formats.
		return "", fmt.Errorf("no audio-only format available for %q", video.Title)
	}

	sort.Slice(formats, func(i, j int) bool {
		return formats[i].Bitrate > formats[j].Bitrate
	})
	format := formats[0]

	dir := SanitizeTitle(video.Title)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create video dir: %w", err)
	}

	outPath := filepath.Join(dir, audioFileName)
	d.logger.Info(ctx, "Downloading audio (%d bps) to %s", format.Bitrate, outPath)

	stream, _, err := d.client.GetStreamContext(ctx, video, &format)
	if err != nil {
		return "", fmt.Errorf("open audio stream: %w", err)
	}
	defer stream.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, stream); err != nil {
		return "", fmt.Errorf("stream audio: %w", err)
	}

	d.logger.Info(ctx, "Download complete: %s", outPath)
	return outPath, nil
}

// SanitizeTitle strips characters that are illegal in path segments so a
// video title can name its output directory.
func SanitizeTitle(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, title)

	sanitized = strings.TrimSpace(sanitized)
	if sanitized == "" {
		return "video"
	}
	return sanitized
}
