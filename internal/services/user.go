package services

import (
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/store"
)

// UserService owns "user:{userId}" records.
type UserService interface {
	EntityService
}

func NewUserService(baseLog *logger.Logger, st store.Store) UserService {
	return &entityService{
		log:      baseLog.With("service", "UserService"),
		store:    st,
		kind:     "user",
		label:    "User",
		idField:  "userId",
		required: []string{"userId", "name", "email"},
	}
}
