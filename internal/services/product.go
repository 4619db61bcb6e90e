package services

import (
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/store"
)

// ProductService owns "product:{productId}" records.
type ProductService interface {
	EntityService
}

func NewProductService(baseLog *logger.Logger, st store.Store) ProductService {
	return &entityService{
		log:      baseLog.With("service", "ProductService"),
		store:    st,
		kind:     "product",
		label:    "Product",
		idField:  "productId",
		required: []string{"productId", "name", "description", "price"},
	}
}
