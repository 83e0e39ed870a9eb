package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "goalkeeper", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "positions:1", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "goalkeeper" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "left", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "feet:1", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "feet:1", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_DeletePrefix_EvictsMatchingKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "positions:1", "goalkeeper")
	store.Set(ctx, "positions:2", "defender")
	store.Set(ctx, "feet:1", "left")

	store.DeletePrefix(ctx, "positions:")

	if _, ok := store.Get(ctx, "positions:1"); ok {
		t.Fatal("positions:1 must be evicted")
	}
	if _, ok := store.Get(ctx, "positions:2"); ok {
		t.Fatal("positions:2 must be evicted")
	}
	if _, ok := store.Get(ctx, "feet:1"); !ok {
		t.Fatal("feet:1 must survive a positions eviction")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
