package syncs

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	ctx := context.Background()
	if err := sem.Acquire(ctx); err != nil {
		t.Fatal(err)
	}

	ctx2, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	if err := sem.Acquire(ctx2); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}

	sem.Release()
	if err := sem.Acquire(ctx); err != nil {
		t.Fatal(err)
	}
	sem.Release()
}

func TestSemaphoreMinimum(t *testing.T) {
	if cap(NewSemaphore(0)) != 1 {
		t.Fatal()
	}
}
