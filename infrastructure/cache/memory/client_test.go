package memory

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestGet_Missing(t *testing.T) {
	cache := NewMemoryCache()

	_, err := cache.Get(context.Background(), "absent")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)

	first, _ := cache.Get(ctx, "key")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "key")
	if !bytes.Equal(second, []byte("value")) {
		t.Errorf("cached bytes mutated through returned slice: %q", second)
	}
}

func TestSet_CopiesInput(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	value := []byte("value")
	cache.Set(ctx, "key", value, time.Minute)
	value[0] = 'X'

	got, _ := cache.Get(ctx, "key")
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("cached bytes mutated through caller slice: %q", got)
	}
}

func TestDelete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	_, err := cache.Get(ctx, "key")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestSet_ExpiredEntryNotReturned(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, err := cache.Get(ctx, "key")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected expired entry to miss, got %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); !errors.Is(err, context.Canceled) {
		t.Errorf("Set with cancelled context: got %v", err)
	}
	if _, err := cache.Get(ctx, "key"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get with cancelled context: got %v", err)
	}
	if err := cache.Delete(ctx, "key"); !errors.Is(err, context.Canceled) {
		t.Errorf("Delete with cancelled context: got %v", err)
	}
}
