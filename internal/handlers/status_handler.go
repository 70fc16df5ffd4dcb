package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
	"traceability-api/internal/services"
)

// StatusHandler handles part and gitterbox status requests.
type StatusHandler struct {
	service services.StatusService
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service services.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// @Summary Change gitterbox status
// @Description Records a gitterbox status transition scanned at a station
// @Tags status
// @Accept json
// @Produce json
// @Param request body models.ChangeStatusRequest true "Status transition"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ChangeStatus [post]
func (h *StatusHandler) ChangeStatus(c *gin.Context) {
	var req models.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
		return
	}

	if err := h.service.ChangeStatus(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Status updated successfully"})
}

// @Summary Read the latest status of a part
// @Description Returns the latest recorded state of a part; an unknown part is not an error
// @Tags status
// @Produce json
// @Param part_id query string true "Part ID"
// @Success 200 {object} models.PartStatus
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /readstatus [get]
func (h *StatusHandler) ReadStatus(c *gin.Context) {
	partID := fieldFromRequest(c, "part_id")
	if partID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please pass part_id in the query string or request body"})
		return
	}

	status, err := h.service.ReadStatus(c.Request.Context(), partID)
	if err != nil {
		respondError(c, err)
		return
	}
	if status == nil {
		c.JSON(http.StatusOK, MessageResponse{Message: "No record found for part ID: " + partID})
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Read the full history of a part
// @Description Returns the combined traceability and status history of a part, most recent first
// @Tags status
// @Produce json
// @Param part_id query string true "Part ID"
// @Success 200 {object} map[string][]models.PartHistoryEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /InfoStatus [get]
func (h *StatusHandler) InfoStatus(c *gin.Context) {
	partID := fieldFromRequest(c, "part_id")
	if partID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please pass part_id in the query string or request body"})
		return
	}

	entries, err := h.service.PartHistory(c.Request.Context(), partID)
	if err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusOK, MessageResponse{Message: "No record found for part ID: " + partID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"part_history": entries})
}
