package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetAdd(t *testing.T) {
	c, err := New[string](4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on an empty cache should miss")
	}

	c.Add("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Errorf("Get(k) = %q, %v; want v, true", got, ok)
	}

	c.Add("k", "v2")
	if got, _ := c.Get("k"); got != "v2" {
		t.Errorf("re-Add should replace the entry, got %q", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestEvictionBound(t *testing.T) {
	const size = 3
	c, err := New[int](size)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < size*2; i++ {
		c.Add(fmt.Sprintf("k%d", i), i)
	}
	if c.Len() != size {
		t.Errorf("Len = %d, want bound %d", c.Len(), size)
	}
	if _, ok := c.Get("k0"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if v, ok := c.Get("k5"); !ok || v != 5 {
		t.Error("newest entry should survive eviction")
	}
}

func TestDoCoalesces(t *testing.T) {
	c, err := New[string](4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var computations atomic.Int32
	release := make(chan struct{})

	const callers = 10
	results := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Do(context.Background(), "shared", func() (string, error) {
				computations.Add(1)
				<-release
				return "computed", nil
			})
		}(i)
	}

	// Let the callers pile up on the flight, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := computations.Load(); n < 1 || n > 2 {
		// A caller arriving after the flight completes may start a second
		// one, but ten concurrent callers must not run ten computations.
		t.Errorf("computations = %d, want coalesced to 1 or 2", n)
	}
	for i, r := range results {
		if r != "computed" {
			t.Errorf("caller %d got %q", i, r)
		}
	}
}

func TestDoErrorLeavesNoEntry(t *testing.T) {
	c, err := New[string](4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	boom := errors.New("boom")
	ctx := context.Background()
	if _, err := c.Do(ctx, "k", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("Do should surface the computation error, got %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("a failed computation must not populate the cache")
	}

	// The key is usable again after the failure.
	v, err := c.Do(ctx, "k", func() (string, error) { return "ok", nil })
	if err != nil || v != "ok" {
		t.Errorf("Do after failure = %q, %v", v, err)
	}
}

func TestDoCanceledWaiterReturnsPromptly(t *testing.T) {
	c, err := New[string](4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	release := make(chan struct{})
	leaderDone := make(chan struct{})
	go func() {
		defer close(leaderDone)
		v, err := c.Do(context.Background(), "shared", func() (string, error) {
			<-release
			return "computed", nil
		})
		if err != nil || v != "computed" {
			t.Errorf("leader Do = %q, %v", v, err)
		}
	}()

	// Join the flight as a waiter, then abandon it.
	time.Sleep(20 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	waiterDone := make(chan error, 1)
	go func() {
		_, err := c.Do(ctx, "shared", func() (string, error) {
			t.Error("waiter must not start a second computation")
			return "", nil
		})
		waiterDone <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-waiterDone:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("waiter error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("canceled waiter did not return while the flight was in progress")
	}

	// The flight itself is unaffected by the abandoned waiter.
	close(release)
	select {
	case <-leaderDone:
	case <-time.After(2 * time.Second):
		t.Fatal("leader did not complete")
	}
}
