package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voxscribe/internal/summarizer"
	"voxscribe/internal/textwrap"
)

// Process runs the whole flow for one audio file: split into segments,
// transcribe each in index order, aggregate, persist the transcript, and
// optionally summarize.
func (p *implPipeline) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting transcription pipeline: %s", audioPath)

	// Step 1: split into segments
	segDir, err := p.chunker.Split(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("split audio: %w", err)
	}
	// Every segment file is gone before this input counts as done,
	// whether or not its transcription succeeded.
	defer p.chunker.Cleanup(ctx, segDir)

	// Step 2: transcribe segments sequentially, stopping at the first
	// missing index
	transcript, transcribed := p.aggregate(ctx, segDir)
	if transcribed == 0 {
		return fmt.Errorf("no segment of %s produced any text", audioPath)
	}

	// Step 3: persist the transcript
	base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	transcriptPath := base + "_transcript.txt"
	if err := p.persist(transcriptPath, transcript); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript written: %s (%d segments)", transcriptPath, transcribed)

	if p.cfg.Output.Docx {
		if err := summarizer.TranscriptToDocx(filepath.Base(base), transcript, base+"_transcript.docx"); err != nil {
			p.logger.Warn(ctx, "Failed to export transcript docx: %v", err)
		}
	}

	// Step 4: summarize, if requested
	if p.cfg.Summarize {
		summary, err := p.summarizer.Summarize(ctx, transcript, p.cfg.Chat.Model)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}

		summaryPath := base + "_summary.txt"
		if err := p.persist(summaryPath, summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		p.logger.Info(ctx, "Summary written: %s", summaryPath)

		if p.cfg.Output.Docx {
			if err := summarizer.MarkdownToDocx(filepath.Base(base), summary, base+"_summary.docx"); err != nil {
				p.logger.Warn(ctx, "Failed to export summary docx: %v", err)
			}
		}
	}

	p.logger.Info(ctx, "Pipeline completed for %s in %s", audioPath, time.Since(startTime))
	return nil
}

// aggregate walks segment indices from 0 until the first missing file and
// concatenates the transcriptions in order, separated by blank lines. A
// failed segment leaves a placeholder marker so the transcript's position
// correspondence with the source audio survives. Returns the aggregated
// text and the number of segments that actually transcribed.
func (p *implPipeline) aggregate(ctx context.Context, segDir string) (string, int) {
	var sb strings.Builder
	transcribed := 0

	for i := 0; ; i++ {
		seg := p.chunker.SegmentPath(segDir, i)
		if _, err := os.Stat(seg); err != nil {
			break
		}

		text, err := p.transcriber.Transcribe(ctx, seg)
		if err != nil {
			p.logger.Error(ctx, "Segment %03d failed, skipping: %v", i, err)
			sb.WriteString(fmt.Sprintf("[segment %03d unavailable]\n\n", i))
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n\n")
		transcribed++
	}

	return sb.String(), transcribed
}

func (p *implPipeline) persist(path, text string) error {
	wrapped := textwrap.Wrap(text, p.cfg.Output.WrapWidth)
	return os.WriteFile(path, []byte(wrapped), 0644)
}
