package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traceability-api/internal/services"
)

// GitterHandler handles gitterbox content lookups.
type GitterHandler struct {
	service services.GitterService
}

// NewGitterHandler creates a new gitter handler
func NewGitterHandler(service services.GitterService) *GitterHandler {
	return &GitterHandler{service: service}
}

// @Summary List the parts in a gitterbox
// @Description Returns every part recorded against a shipping ID, most recent status first
// @Tags gitter
// @Produce json
// @Param shipping_id query string true "Shipping (gitterbox) ID"
// @Success 200 {object} map[string][]models.GitterHistoryEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /GetInfoGitter [get]
func (h *GitterHandler) GetInfoGitter(c *gin.Context) {
	shippingID := fieldFromRequest(c, "shipping_id")
	if shippingID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please pass shipping_id in the query string or request body"})
		return
	}

	entries, err := h.service.GitterHistory(c.Request.Context(), shippingID)
	if err != nil {
		respondError(c, err)
		return
	}

	// An unknown gitterbox returns an empty history, not an error.
	c.JSON(http.StatusOK, gin.H{"gitter_history": entries})
}
