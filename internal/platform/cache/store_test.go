package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(20 * time.Millisecond)

	store.Set(ctx, "k", []byte("v"))
	if got, ok := store.Get(ctx, "k"); !ok || string(got) != "v" {
		t.Fatalf("expected hit, got %q ok=%v", got, ok)
	}

	time.Sleep(30 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(0)

	store.Set(ctx, "k", []byte("v"))
	store.Delete(ctx, "k")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expected delete to remove entry")
	}
}

func TestLoaderGetOrLoad(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(NewMemory(time.Minute))

	var loads int32
	load := func(context.Context) ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(10 * time.Millisecond)
		return []byte("loaded"), nil
	}

	const workers = 10
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			got, err := loader.GetOrLoad(ctx, "token", load)
			if err != nil {
				t.Errorf("GetOrLoad: %v", err)
			}
			if string(got) != "loaded" {
				t.Errorf("got %q", got)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}

	// Cached afterwards.
	if _, err := loader.GetOrLoad(ctx, "token", load); err != nil {
		t.Fatalf("GetOrLoad: %v", err)
	}
	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Fatalf("expected cache hit, loads=%d", got)
	}
}

func TestLoaderErrorNotCached(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(NewMemory(time.Minute))

	sentinel := errors.New("upstream down")
	if _, err := loader.GetOrLoad(ctx, "k", func(context.Context) ([]byte, error) {
		return nil, sentinel
	}); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	got, err := loader.GetOrLoad(ctx, "k", func(context.Context) ([]byte, error) {
		return []byte("ok"), nil
	})
	if err != nil || string(got) != "ok" {
		t.Fatalf("expected retry to load, got %q err=%v", got, err)
	}
}
