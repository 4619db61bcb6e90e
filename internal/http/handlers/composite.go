package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/services"
)

// CompositeHandler serves the precomputed composition path. Responses may be
// stale relative to /all-details-direct; freshness is the materialization
// pipeline's contract, not this handler's.
type CompositeHandler struct {
	svc services.CompositeService
}

func NewCompositeHandler(svc services.CompositeService) *CompositeHandler {
	return &CompositeHandler{svc: svc}
}

// GET /users/{userId}/all-details-drasi
func (h *CompositeHandler) GetProfile(c *gin.Context) {
	raw, err := h.svc.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, raw)
}
