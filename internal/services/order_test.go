package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/store"
)

func orderDoc(orderID, userID string) map[string]any {
	return map[string]any{
		"orderId":     orderID,
		"userId":      userID,
		"orderDate":   "2023-10-01",
		"totalAmount": 150.0,
		"products":    []any{map[string]any{"productId": "p1", "quantity": 2}},
	}
}

func TestOrderCreate_StoresOrderAndIndex(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewOrderService(testLogger(t), st)
	ctx := context.Background()

	if _, err := svc.Create(ctx, orderDoc("1001", "123")); err != nil {
		t.Fatalf("create: %v", err)
	}

	raw, found, err := st.Get(ctx, "order:1001")
	if err != nil || !found {
		t.Fatalf("order not stored: found=%v err=%v", found, err)
	}
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("stored order undecodable: %v", err)
	}
	if stored["orderId"] != "1001" {
		t.Fatalf("wrong order stored: %+v", stored)
	}

	idx, found, err := st.Get(ctx, "user-orders:123")
	if err != nil || !found {
		t.Fatalf("index not stored: found=%v err=%v", found, err)
	}
	var ids []string
	if err := json.Unmarshal(idx, &ids); err != nil {
		t.Fatalf("index undecodable: %v", err)
	}
	if len(ids) != 1 || ids[0] != "1001" {
		t.Fatalf("unexpected index: %v", ids)
	}
}

func TestOrderCreate_DuplicateConflictsWithoutMutation(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewOrderService(testLogger(t), st)
	ctx := context.Background()

	if _, err := svc.Create(ctx, orderDoc("1001", "123")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	before, _, _ := st.Get(ctx, "order:1001")

	doc := orderDoc("1001", "123")
	doc["totalAmount"] = 999.0
	_, err := svc.Create(ctx, doc)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	after, _, _ := st.Get(ctx, "order:1001")
	if string(before) != string(after) {
		t.Fatalf("conflicting create mutated the order:\n%s\n%s", before, after)
	}

	idx, _, _ := st.Get(ctx, "user-orders:123")
	var ids []string
	if err := json.Unmarshal(idx, &ids); err != nil {
		t.Fatalf("index undecodable: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("index duplicated: %v", ids)
	}
}

func TestOrderCreate_MissingFieldRejected(t *testing.T) {
	svc := NewOrderService(testLogger(t), store.NewMemoryStore())

	doc := orderDoc("1001", "123")
	delete(doc, "totalAmount")
	_, err := svc.Create(context.Background(), doc)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if msg := domain.Message(err); msg != "Missing required field: totalAmount" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestOrderListByUser_EmptyWithoutIndex(t *testing.T) {
	svc := NewOrderService(testLogger(t), store.NewMemoryStore())

	orders, err := svc.ListByUser(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", orders)
	}
}

func TestOrderListByUser_SkipsMissingEntries(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewOrderService(testLogger(t), st)
	ctx := context.Background()

	if _, err := svc.Create(ctx, orderDoc("1001", "123")); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Corrupt the index with an id that has no record behind it.
	idx, _ := json.Marshal([]string{"1001", "ghost"})
	if err := st.Put(ctx, "user-orders:123", idx); err != nil {
		t.Fatalf("put index: %v", err)
	}

	orders, err := svc.ListByUser(ctx, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected the broken entry skipped, got %d orders", len(orders))
	}
}

func TestOrderUpdate_MergesFields(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewOrderService(testLogger(t), st)
	ctx := context.Background()

	if _, err := svc.Create(ctx, orderDoc("1001", "123")); err != nil {
		t.Fatalf("create: %v", err)
	}

	merged, err := svc.Update(ctx, "1001", map[string]any{"totalAmount": 200.0})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(merged, &doc); err != nil {
		t.Fatalf("merged undecodable: %v", err)
	}
	if doc["totalAmount"] != 200.0 {
		t.Fatalf("totalAmount not merged: %v", doc["totalAmount"])
	}
	if doc["orderDate"] != "2023-10-01" {
		t.Fatalf("untouched field lost: %v", doc["orderDate"])
	}
}

func TestOrderUpdate_MissingOrderIs404(t *testing.T) {
	svc := NewOrderService(testLogger(t), store.NewMemoryStore())

	_, err := svc.Update(context.Background(), "nope", map[string]any{"totalAmount": 1.0})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
