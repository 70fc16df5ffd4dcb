package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
	"traceability-api/internal/services"
)

// ProtocolHandler handles protocol-part insert requests.
type ProtocolHandler struct {
	service services.ProtocolService
}

// NewProtocolHandler creates a new protocol handler
func NewProtocolHandler(service services.ProtocolService) *ProtocolHandler {
	return &ProtocolHandler{service: service}
}

// @Summary Link a part to a measurement protocol
// @Description Inserts a protocol-part row; requires a JSON body with part_id and protocol_id
// @Tags protocol
// @Accept json
// @Produce json
// @Param request body models.ProtocolPartRequest true "Protocol part"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ProtocolPartInsert [post]
func (h *ProtocolHandler) Insert(c *gin.Context) {
	if !strings.HasPrefix(c.GetHeader("Content-Type"), "application/json") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Content-Type must be application/json"})
		return
	}

	var req models.ProtocolPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
		return
	}

	if err := h.service.Insert(c.Request.Context(), &req); err != nil {
		switch dispatch.KindOf(err) {
		case dispatch.KindValidation:
			respondError(c, err)
		case dispatch.KindDatabase, dispatch.KindConnectivity, dispatch.KindConfiguration:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Database connection error. Check logs for details."})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An internal server error occurred. Check logs for details."})
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Protocol part data inserted successfully"})
}
