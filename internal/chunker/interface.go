package chunker

import "context"

// Chunker splits an audio file into fixed-duration segments on disk and
// deletes them once the caller is done.
type Chunker interface {
	// Split writes sequentially numbered segment files for audioPath into a
	// fresh job directory and returns that directory. A splitter failure is
	// logged, not returned; the caller proceeds with whatever segments were
	// produced.
	Split(ctx context.Context, audioPath string) (string, error)

	// SegmentPath returns the path of segment index i inside dir.
	SegmentPath(dir string, i int) string

	// Cleanup deletes segment files starting at index 0 until the first
	// missing index, then removes the job directory if it is empty.
	Cleanup(ctx context.Context, dir string)
}
