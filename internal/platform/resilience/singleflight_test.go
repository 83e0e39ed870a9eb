package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, _ := g.Do("positions", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "goalkeeper", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if val != "goalkeeper" {
				t.Errorf("unexpected shared value %v", val)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g SingleFlight
	var counter int32

	fn := func() (any, error) {
		atomic.AddInt32(&counter, 1)
		return nil, nil
	}

	if _, err, shared := g.Do("positions", fn); err != nil || shared {
		t.Fatalf("first call: err=%v shared=%v", err, shared)
	}
	if _, err, shared := g.Do("feet", fn); err != nil || shared {
		t.Fatalf("second call: err=%v shared=%v", err, shared)
	}
	if got := atomic.LoadInt32(&counter); got != 2 {
		t.Fatalf("expected both keys to execute, got %d", got)
	}
}

func TestSingleFlight_PropagatesError(t *testing.T) {
	var g SingleFlight
	wantErr := errors.New("lookup backend down")

	_, err, _ := g.Do("positions", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the call error, got %v", err)
	}
}
