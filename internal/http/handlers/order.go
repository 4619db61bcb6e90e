package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/services"
)

// OrderHandler adds the by-user listing on top of the shared entity CRUD.
type OrderHandler struct {
	EntityHandler
	svc services.OrderService
}

func NewOrderHandler(svc services.OrderService) *OrderHandler {
	return &OrderHandler{
		EntityHandler: EntityHandler{svc: svc, idParam: "orderId"},
		svc:           svc,
	}
}

// GET /orders?userId={id}. An empty history is a 200 with an empty array.
func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Error(c, http.StatusBadRequest, "userId parameter is required")
		return
	}
	orders, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, orders)
}
