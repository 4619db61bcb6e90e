package services

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/types"
)

// Invoker calls a named sibling service. Satisfied by both the Dapr sidecar
// client and the direct HTTP client.
type Invoker interface {
	InvokeMethod(ctx context.Context, appID, method string) ([]byte, bool, error)
}

// OrderEnricher resolves each order's line items against the product service.
// Enrichment is fail-open: a missing or erroring product yields a placeholder
// line item and never fails the order, let alone the profile. Output order
// and count always match the input; the only items dropped are those with no
// productId at all.
type OrderEnricher interface {
	EnrichOrders(ctx context.Context, orders []types.Order) []types.EnrichedOrder
}

type orderEnricher struct {
	log         *logger.Logger
	invoker     Invoker
	productApp  string
	concurrency int
}

func NewOrderEnricher(baseLog *logger.Logger, invoker Invoker, concurrency int) OrderEnricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &orderEnricher{
		log:         baseLog.With("service", "OrderEnricher"),
		invoker:     invoker,
		productApp:  "product-service",
		concurrency: concurrency,
	}
}

// EnrichOrders dispatches product lookups concurrently, capped so one large
// order cannot overwhelm the product store. Each lookup writes into a
// pre-sized slot indexed by input position, so output ordering follows input
// ordering regardless of completion order.
func (e *orderEnricher) EnrichOrders(ctx context.Context, orders []types.Order) []types.EnrichedOrder {
	enriched := make([]types.EnrichedOrder, len(orders))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, order := range orders {
		kept := make([]types.OrderLineItem, 0, len(order.Products))
		for _, item := range order.Products {
			// No identifying key, nothing to resolve: the item is dropped.
			if item.ProductID == "" {
				continue
			}
			kept = append(kept, item)
		}

		enriched[i] = types.EnrichedOrder{
			OrderID:     order.OrderID,
			OrderDate:   order.OrderDate,
			TotalAmount: order.TotalAmount,
			Products:    make([]types.EnrichedLineItem, len(kept)),
		}

		slot := enriched[i].Products
		for j, item := range kept {
			j, item := j, item
			g.Go(func() error {
				slot[j] = e.lookupProduct(gctx, item)
				return nil
			})
		}
	}

	// Lookups never return errors; Wait only fences the goroutines.
	_ = g.Wait()
	return enriched
}

// lookupProduct makes a single attempt, no retries, keeping tail latency
// bounded. Absent product and lookup failure both degrade to the placeholder.
func (e *orderEnricher) lookupProduct(ctx context.Context, item types.OrderLineItem) types.EnrichedLineItem {
	degraded := types.EnrichedLineItem{
		ProductID: item.ProductID,
		Name:      "Unknown Product",
		Price:     0,
		Quantity:  item.Quantity,
	}

	data, found, err := e.invoker.InvokeMethod(ctx, e.productApp, "products/"+item.ProductID)
	if err != nil {
		e.log.Warn("product lookup failed", "productId", item.ProductID, "error", err)
		return degraded
	}
	if !found {
		e.log.Warn("product not found", "productId", item.ProductID)
		return degraded
	}

	var product types.Product
	if err := json.Unmarshal(data, &product); err != nil {
		e.log.Warn("product payload undecodable", "productId", item.ProductID, "error", err)
		return degraded
	}

	name := product.Name
	if name == "" {
		name = "Unknown"
	}
	return types.EnrichedLineItem{
		ProductID: item.ProductID,
		Name:      name,
		Price:     product.Price,
		Quantity:  item.Quantity,
	}
}
