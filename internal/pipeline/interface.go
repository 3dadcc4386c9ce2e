package pipeline

import "context"

// Pipeline defines the interface for processing one audio input end to end
type Pipeline interface {
	Process(ctx context.Context, audioPath string) error
}
