package cache

import (
	"bytes"
	"context"
	"testing"
)

func TestMemoryGetMiss(t *testing.T) {
	m := NewMemory()
	if val, ok := m.Get(context.Background(), "aabbccdd"); ok || val != nil {
		t.Fatalf("Get() on empty cache = (%v, %v), want miss", val, ok)
	}
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "aabbccdd", []byte("png-bytes"))
	val, ok := m.Get(ctx, "aabbccdd")
	if !ok || !bytes.Equal(val, []byte("png-bytes")) {
		t.Fatalf("Get() = (%q, %v), want stored bytes", val, ok)
	}

	// Entries are keyed independently.
	if _, ok := m.Get(ctx, "11111111"); ok {
		t.Fatal("Get() for a different key hit")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "aabbccdd", []byte("first"))
	m.Set(ctx, "aabbccdd", []byte("second"))
	val, ok := m.Get(ctx, "aabbccdd")
	if !ok || string(val) != "second" {
		t.Fatalf("Get() after overwrite = (%q, %v)", val, ok)
	}
}
