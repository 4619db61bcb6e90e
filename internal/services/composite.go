package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/store"
)

// CompositeService is the precomputed composition path: a single keyed read
// against the composite store, whose records an external materialization
// pipeline maintains. No fan-out, no enrichment. Records may lag the
// query-time path; that eventual consistency is inherent to the design and
// carries no staleness bound this service could enforce.
type CompositeService interface {
	GetProfile(ctx context.Context, userID string) (json.RawMessage, error)
}

type compositeService struct {
	log   *logger.Logger
	store store.Store
}

func NewCompositeService(baseLog *logger.Logger, st store.Store) CompositeService {
	return &compositeService{
		log:   baseLog.With("service", "CompositeService"),
		store: st,
	}
}

// GetProfile returns the materialized record verbatim. Beyond JSON
// well-formedness the record is trusted; its internal shape is the
// materializer's contract.
func (s *compositeService) GetProfile(ctx context.Context, userID string) (json.RawMessage, error) {
	key := "user:" + userID
	data, found, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Error("composite lookup failed", "key", key, "error", err)
		return nil, err
	}
	if !found {
		s.log.Warn("composite record not found", "key", key)
		return nil, domain.NotFoundError("User profile not found")
	}
	if !json.Valid(data) {
		return nil, domain.Dependency("composite-store", fmt.Errorf("malformed composite record for %s", key))
	}
	return data, nil
}
