package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/services"
)

// EntityHandler exposes one entity store's CRUD endpoints. The same handler
// backs users, orders, and products; only the route param name and the
// underlying service differ.
type EntityHandler struct {
	svc     services.EntityService
	idParam string
}

func NewEntityHandler(svc services.EntityService, idParam string) *EntityHandler {
	return &EntityHandler{svc: svc, idParam: idParam}
}

// GET /{entities}/{id}
func (h *EntityHandler) Get(c *gin.Context) {
	raw, err := h.svc.Get(c.Request.Context(), c.Param(h.idParam))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, raw)
}

// POST /{entities}
func (h *EntityHandler) Create(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	raw, err := h.svc.Create(c.Request.Context(), doc)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusCreated, raw)
}

// PUT /{entities}/{id}
func (h *EntityHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	raw, err := h.svc.Update(c.Request.Context(), c.Param(h.idParam), patch)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, raw)
}
