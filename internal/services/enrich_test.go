package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/types"
)

type fakeInvoker struct {
	mu        sync.Mutex
	responses map[string][]byte
	errs      map[string]error
	calls     []string
}

func newFakeInvoker() *fakeInvoker {
	return &fakeInvoker{
		responses: map[string][]byte{},
		errs:      map[string]error{},
	}
}

func (f *fakeInvoker) put(appID, method string, doc any) {
	data, _ := json.Marshal(doc)
	f.responses[appID+"/"+method] = data
}

func (f *fakeInvoker) InvokeMethod(_ context.Context, appID, method string) ([]byte, bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, appID+"/"+method)
	f.mu.Unlock()

	key := appID + "/" + method
	if err, ok := f.errs[key]; ok {
		return nil, false, err
	}
	data, ok := f.responses[key]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

func TestEnrichOrders_MergesProductData(t *testing.T) {
	inv := newFakeInvoker()
	inv.put("product-service", "products/p1", types.Product{ProductID: "p1", Name: "Laptop", Price: 1000})

	e := NewOrderEnricher(testLogger(t), inv, 4)
	orders := []types.Order{{
		OrderID:     "1001",
		OrderDate:   "2023-10-01",
		TotalAmount: 150.0,
		Products:    []types.OrderLineItem{{ProductID: "p1", Quantity: 2}},
	}}

	enriched := e.EnrichOrders(context.Background(), orders)
	if len(enriched) != 1 {
		t.Fatalf("expected 1 enriched order, got %d", len(enriched))
	}
	got := enriched[0]
	if got.OrderID != "1001" || got.OrderDate != "2023-10-01" || got.TotalAmount != 150.0 {
		t.Fatalf("order header not preserved: %+v", got)
	}
	want := types.EnrichedLineItem{ProductID: "p1", Name: "Laptop", Price: 1000, Quantity: 2}
	if len(got.Products) != 1 || got.Products[0] != want {
		t.Fatalf("expected %+v, got %+v", want, got.Products)
	}
}

func TestEnrichOrders_MissingProductDegrades(t *testing.T) {
	inv := newFakeInvoker()

	e := NewOrderEnricher(testLogger(t), inv, 4)
	orders := []types.Order{{
		OrderID:  "1001",
		Products: []types.OrderLineItem{{ProductID: "p1", Quantity: 2}},
	}}

	enriched := e.EnrichOrders(context.Background(), orders)
	want := types.EnrichedLineItem{ProductID: "p1", Name: "Unknown Product", Price: 0, Quantity: 2}
	if enriched[0].Products[0] != want {
		t.Fatalf("expected degraded item %+v, got %+v", want, enriched[0].Products[0])
	}
}

func TestEnrichOrders_LookupErrorDegrades(t *testing.T) {
	inv := newFakeInvoker()
	inv.errs["product-service/products/p1"] = fmt.Errorf("connection refused")

	e := NewOrderEnricher(testLogger(t), inv, 4)
	orders := []types.Order{{
		OrderID:  "1001",
		Products: []types.OrderLineItem{{ProductID: "p1", Quantity: 3}},
	}}

	enriched := e.EnrichOrders(context.Background(), orders)
	want := types.EnrichedLineItem{ProductID: "p1", Name: "Unknown Product", Price: 0, Quantity: 3}
	if enriched[0].Products[0] != want {
		t.Fatalf("expected degraded item %+v, got %+v", want, enriched[0].Products[0])
	}
}

func TestEnrichOrders_SkipsItemsWithoutProductID(t *testing.T) {
	inv := newFakeInvoker()
	inv.put("product-service", "products/p2", types.Product{ProductID: "p2", Name: "Mouse", Price: 25})

	e := NewOrderEnricher(testLogger(t), inv, 4)
	orders := []types.Order{{
		OrderID: "1001",
		Products: []types.OrderLineItem{
			{Quantity: 1},
			{ProductID: "p2", Quantity: 2},
			{Quantity: 9},
		},
	}}

	enriched := e.EnrichOrders(context.Background(), orders)
	if len(enriched[0].Products) != 1 {
		t.Fatalf("expected 1 kept item, got %d", len(enriched[0].Products))
	}
	if enriched[0].Products[0].ProductID != "p2" {
		t.Fatalf("wrong item kept: %+v", enriched[0].Products[0])
	}
}

func TestEnrichOrders_PreservesOrderUnderConcurrency(t *testing.T) {
	inv := newFakeInvoker()
	const n = 20
	items := make([]types.OrderLineItem, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p%d", i)
		inv.put("product-service", "products/"+id, types.Product{ProductID: id, Name: "Item " + id, Price: float64(i)})
		items = append(items, types.OrderLineItem{ProductID: id, Quantity: i})
	}

	e := NewOrderEnricher(testLogger(t), inv, 5)
	enriched := e.EnrichOrders(context.Background(), []types.Order{{OrderID: "1", Products: items}})

	if len(enriched[0].Products) != n {
		t.Fatalf("expected %d items, got %d", n, len(enriched[0].Products))
	}
	for i, item := range enriched[0].Products {
		wantID := fmt.Sprintf("p%d", i)
		if item.ProductID != wantID || item.Quantity != i || item.Price != float64(i) {
			t.Fatalf("slot %d out of order: %+v", i, item)
		}
	}
}

func TestEnrichOrders_EmptyInput(t *testing.T) {
	e := NewOrderEnricher(testLogger(t), newFakeInvoker(), 4)
	enriched := e.EnrichOrders(context.Background(), nil)
	if len(enriched) != 0 {
		t.Fatalf("expected no orders, got %d", len(enriched))
	}
}

func TestEnrichOrders_NeverDropsOrders(t *testing.T) {
	inv := newFakeInvoker()
	e := NewOrderEnricher(testLogger(t), inv, 2)

	orders := []types.Order{
		{OrderID: "1", Products: []types.OrderLineItem{{ProductID: "missing", Quantity: 1}}},
		{OrderID: "2"},
		{OrderID: "3", Products: []types.OrderLineItem{{Quantity: 5}}},
	}
	enriched := e.EnrichOrders(context.Background(), orders)
	if len(enriched) != len(orders) {
		t.Fatalf("order count changed: %d != %d", len(enriched), len(orders))
	}
	for i := range orders {
		if enriched[i].OrderID != orders[i].OrderID {
			t.Fatalf("order %d id mismatch: %s != %s", i, enriched[i].OrderID, orders[i].OrderID)
		}
	}
}
