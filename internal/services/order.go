package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/store"
)

// OrderService owns "order:{orderId}" records plus the "user-orders:{userId}"
// index that maps a user to their order ids.
type OrderService interface {
	EntityService
	// ListByUser returns every resolvable order for the user, oldest first.
	// A missing index means an empty history, not an error.
	ListByUser(ctx context.Context, userID string) ([]json.RawMessage, error)
}

type orderService struct {
	entityService
}

func NewOrderService(baseLog *logger.Logger, st store.Store) OrderService {
	return &orderService{entityService{
		log:      baseLog.With("service", "OrderService"),
		store:    st,
		kind:     "order",
		label:    "Order",
		idField:  "orderId",
		required: []string{"orderId", "userId", "orderDate", "totalAmount", "products"},
	}}
}

func indexKey(userID string) string { return "user-orders:" + userID }

// Create stores the order and appends its id to the owner's index. A
// duplicate orderId is rejected before anything is written, so a conflicting
// create mutates neither the order record nor the index.
func (s *orderService) Create(ctx context.Context, doc map[string]any) (json.RawMessage, error) {
	data, err := s.entityService.Create(ctx, doc)
	if err != nil {
		return nil, err
	}

	orderID, _ := doc["orderId"].(string)
	userID, _ := doc["userId"].(string)
	if err := s.appendToIndex(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *orderService) appendToIndex(ctx context.Context, userID, orderID string) error {
	key := indexKey(userID)
	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}

	var orderIDs []string
	if found {
		if err := json.Unmarshal(raw, &orderIDs); err != nil {
			return domain.Dependency("order-store", fmt.Errorf("decode index %s: %w", key, err))
		}
	}
	for _, id := range orderIDs {
		if id == orderID {
			return nil
		}
	}
	orderIDs = append(orderIDs, orderID)

	data, err := json.Marshal(orderIDs)
	if err != nil {
		return domain.Dependency("order-store", fmt.Errorf("encode index %s: %w", key, err))
	}
	if err := s.store.Put(ctx, key, data); err != nil {
		return err
	}
	s.log.Debug("index updated", "key", key, "orders", len(orderIDs))
	return nil
}

func (s *orderService) ListByUser(ctx context.Context, userID string) ([]json.RawMessage, error) {
	raw, found, err := s.store.Get(ctx, indexKey(userID))
	if err != nil {
		return nil, err
	}
	if !found {
		s.log.Debug("no orders for user", "userId", userID)
		return []json.RawMessage{}, nil
	}

	var orderIDs []string
	if err := json.Unmarshal(raw, &orderIDs); err != nil {
		return nil, domain.Dependency("order-store", fmt.Errorf("decode index %s: %w", indexKey(userID), err))
	}

	orders := make([]json.RawMessage, 0, len(orderIDs))
	for _, id := range orderIDs {
		data, found, err := s.store.Get(ctx, s.key(id))
		if err != nil {
			// A broken entry degrades the listing, it does not fail it.
			s.log.Error("order fetch failed, skipping", "orderId", id, "error", err)
			continue
		}
		if !found {
			s.log.Warn("indexed order missing, skipping", "orderId", id)
			continue
		}
		orders = append(orders, data)
	}
	return orders, nil
}
