package store

import (
	"context"
	"testing"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, found, err := st.Get(ctx, "user:123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected absent key")
	}

	if err := st.Put(ctx, "user:123", []byte(`{"userId":"123"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	val, found, err := st.Get(ctx, "user:123")
	if err != nil || !found {
		t.Fatalf("expected value, found=%v err=%v", found, err)
	}
	if string(val) != `{"userId":"123"}` {
		t.Fatalf("unexpected value %s", val)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if err := st.Put(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("put: %v", err)
	}
	val, _, _ := st.Get(ctx, "k")
	val[0] = 'X'

	again, _, _ := st.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value mutated through the returned slice")
	}
}
