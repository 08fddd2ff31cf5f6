package queue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shashiranjanraj/crm/pkg/queue"
)

// ─── Job types ────────────────────────────────────────────────────────────────

var (
	echoCalls    atomic.Int32
	failAttempts atomic.Int32
)

type echoJob struct {
	Val string
}

func (j *echoJob) Handle() error {
	echoCalls.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	failAttempts.Add(1)
	return errors.New("always fails")
}

func init() {
	// Workers run for the lifetime of the test binary.
	queue.StartWorkers(context.Background(), 2)

	queue.Register("*queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestDispatchAndProcess(t *testing.T) {
	before := echoCalls.Load()
	if err := queue.Dispatch(&echoJob{Val: "hello"}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for echoCalls.Load() == before {
		select {
		case <-deadline:
			t.Fatal("job was not processed in time")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestFailedJobRetryAndPersist(t *testing.T) {
	queue.SetMaxRetry(2)
	defer queue.SetMaxRetry(3)

	before := len(queue.FailedJobs())
	if err := queue.Dispatch(&failJob{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	deadline := time.After(10 * time.Second)
	for len(queue.FailedJobs()) == before {
		select {
		case <-deadline:
			t.Fatal("failed job was not recorded in time")
		case <-time.After(50 * time.Millisecond):
		}
	}

	failed := queue.FailedJobs()
	last := failed[len(failed)-1]
	if last.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", last.Attempts)
	}
	if last.Err == nil {
		t.Error("expected error recorded")
	}
}

func TestDispatchAfterDelays(t *testing.T) {
	before := echoCalls.Load()
	queue.DispatchAfter(&echoJob{Val: "later"}, 50*time.Millisecond)

	if echoCalls.Load() != before {
		// Not yet dispatched: the delay has not elapsed.
		t.Log("job not processed immediately, as expected")
	}

	deadline := time.After(2 * time.Second)
	for echoCalls.Load() == before {
		select {
		case <-deadline:
			t.Fatal("delayed job was not processed in time")
		case <-time.After(20 * time.Millisecond):
		}
	}
}
