package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/layensweets/site/internal/domain"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, err := kv.Get(ctx, KeyProducts); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing key: got %v, want ErrNotFound", err)
	}

	doc := []byte(`[{"id":"m1"}]`)
	if err := kv.Put(ctx, KeyProducts, doc); err != nil {
		t.Fatal(err)
	}
	got, err := kv.Get(ctx, KeyProducts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, doc) {
		t.Errorf("got %s, want %s", got, doc)
	}

	// Mutating the returned slice must not touch the stored copy.
	got[0] = 'X'
	again, _ := kv.Get(ctx, KeyProducts)
	if !bytes.Equal(again, doc) {
		t.Error("stored value was aliased by a reader")
	}
}

func TestMemoryKVPayloadLimit(t *testing.T) {
	kv := NewMemoryKV()
	big := make([]byte, MaxPayloadBytes+1)
	if err := kv.Put(context.Background(), KeyContent, big); !errors.Is(err, domain.ErrPayloadTooLarge) {
		t.Fatalf("got %v, want ErrPayloadTooLarge", err)
	}
	if _, err := kv.Get(context.Background(), KeyContent); !errors.Is(err, domain.ErrNotFound) {
		t.Error("rejected payload must not be stored")
	}
}
