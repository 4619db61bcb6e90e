package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/types"
)

// ProfileService is the query-time composition path: it fans out to the user,
// order, and product services on every request and assembles the denormalized
// profile. The user and order fetches are load-bearing (their failure fails
// the request); product detail is decorative and degrades per item.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*types.Profile, error)
}

type profileService struct {
	log      *logger.Logger
	invoker  Invoker
	enricher OrderEnricher
	userApp  string
	orderApp string
}

func NewProfileService(baseLog *logger.Logger, invoker Invoker, enricher OrderEnricher) ProfileService {
	return &profileService{
		log:      baseLog.With("service", "ProfileService"),
		invoker:  invoker,
		enricher: enricher,
		userApp:  "user-service",
		orderApp: "order-service",
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	// Step 1: the user record. Absent means 404; this is the one lookup whose
	// absence is an error, unlike the order history below.
	userData, found, err := s.invoker.InvokeMethod(ctx, s.userApp, "users/"+userID)
	if err != nil {
		s.log.Error("user fetch failed", "userId", userID, "error", err)
		return nil, err
	}
	if !found {
		s.log.Warn("user not found", "userId", userID)
		return nil, domain.NotFoundError("User not found")
	}
	var user types.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, domain.Dependency(s.userApp, fmt.Errorf("decode user: %w", err))
	}

	// Step 2: the order history. Absent payload is an empty history, not an
	// error.
	var orders []types.Order
	ordersData, found, err := s.invoker.InvokeMethod(ctx, s.orderApp, "orders?userId="+userID)
	if err != nil {
		s.log.Error("orders fetch failed", "userId", userID, "error", err)
		return nil, err
	}
	if found {
		if err := json.Unmarshal(ordersData, &orders); err != nil {
			return nil, domain.Dependency(s.orderApp, fmt.Errorf("decode orders: %w", err))
		}
	}
	s.log.Debug("orders fetched", "userId", userID, "count", len(orders))

	// Steps 3 and 4: enrich and assemble.
	enriched := s.enricher.EnrichOrders(ctx, orders)
	return &types.Profile{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Orders: enriched,
	}, nil
}
