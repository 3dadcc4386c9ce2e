package transcriber

import "context"

// Transcriber converts one audio segment into recognized text.
type Transcriber interface {
	Transcribe(ctx context.Context, segmentPath string) (string, error)
}
