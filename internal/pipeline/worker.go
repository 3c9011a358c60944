package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/outliner/internal/indexer"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// Worker processes a single document job: parse to spans, run the
// outline engine, publish downstream.
type Worker struct {
	extractor *outline.Extractor
	indexer   *indexer.Client
	stats     *ExtractStats
	log       *slog.Logger
}

func NewWorker(ex *outline.Extractor, idx *indexer.Client, stats *ExtractStats, log *slog.Logger) *Worker {
	return &Worker{
		extractor: ex,
		indexer:   idx,
		stats:     stats,
		log:       log,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse to spans.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	spans, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Classify. The engine never fails; degenerate input
	// yields an empty outline.
	job.SetStatus(StatusClassifying, "classifying")
	start := time.Now()
	o := w.extractor.Extract(spans)
	w.stats.Record(time.Since(start).Milliseconds())

	job.SetResult(&o)
	job.SetCounts(len(spans), len(o.Entries))
	log.Info("outline extracted", "spans", len(spans), "entries", len(o.Entries), "title", o.Title)

	// Phase 3: Publish downstream, with backoff on transient failures.
	if !w.indexer.Enabled() {
		job.SetStatus(StatusCompleted, "done")
		return
	}

	job.SetStatus(StatusPublishing, "publishing")
	var lastErr error
	for attempt := range MaxRetries {
		lastErr = w.indexer.PublishOutline(ctx, job.DocID, o)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		if attempt == MaxRetries-1 {
			// No backoff after the last attempt.
			break
		}
		log.Warn("retryable publish error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			lastErr = ctx.Err()
		}
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr != nil {
		// The outline itself is done and servable; only the downstream
		// handoff failed.
		log.Error("publish failed", "error", lastErr)
		job.AddError(fmt.Sprintf("publish: %s", lastErr))
		job.SetStatus(StatusPartial, "publishing")
		return
	}

	job.SetStatus(StatusCompleted, "done")
}
