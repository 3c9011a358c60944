package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/indexer"
	"github.com/dgallion1/outliner/internal/outline"
)

func testOrchestrator(queueSize int) *Orchestrator {
	cfg := config.Config{
		WorkerCount:  1,
		MaxQueueSize: queueSize,
		JobTTL:       time.Hour,
	}
	return NewOrchestrator(cfg, outline.New(outline.DefaultConfig()), indexer.NewClient("", ""), discardLogger())
}

func TestOrchestrator_SubmitAndProcess(t *testing.T) {
	o := testOrchestrator(4)
	o.Start(context.Background())
	defer o.Stop()

	job := testJob()
	if err := o.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if o.GetJob("j1") != job {
		t.Error("expected submitted job retrievable")
	}

	deadline := time.After(5 * time.Second)
	for job.Snapshot().Status != StatusCompleted {
		select {
		case <-deadline:
			t.Fatalf("job never completed, status %s", job.Snapshot().Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
	if job.Result() == nil {
		t.Error("expected a stored outline on the completed job")
	}
}

func TestOrchestrator_SubmitQueueFull(t *testing.T) {
	// Never started, so nothing drains the queue.
	o := testOrchestrator(1)

	if err := o.Submit(&Job{ID: "first"}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	overflow := &Job{ID: "second"}
	if err := o.Submit(overflow); err == nil {
		t.Fatal("expected error when queue is full")
	}
	if overflow.Status != StatusFailed {
		t.Errorf("expected overflow job failed, got %s", overflow.Status)
	}
}

func TestOrchestrator_SubmitAfterStop(t *testing.T) {
	o := testOrchestrator(4)
	o.Start(context.Background())
	o.Stop()

	job := &Job{ID: "late"}
	if err := o.Submit(job); err == nil {
		t.Fatal("expected error submitting after stop")
	}
	if job.Status != StatusFailed {
		t.Errorf("expected late job failed, got %s", job.Status)
	}

	// Stop is idempotent.
	o.Stop()
}
