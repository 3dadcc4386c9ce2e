package downloader

import "context"

// Downloader resolves a video link to its audio track on disk.
type Downloader interface {
	// Download fetches the best audio-only stream of the video behind url
	// into a directory named after the video title and returns the local
	// file path.
	Download(ctx context.Context, url string) (string, error)
}
