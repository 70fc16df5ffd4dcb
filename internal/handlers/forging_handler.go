package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
	"traceability-api/internal/services"
)

// ForgingHandler handles forging-line scan requests.
type ForgingHandler struct {
	service services.ForgingService
}

// NewForgingHandler creates a new forging handler
func NewForgingHandler(service services.ForgingService) *ForgingHandler {
	return &ForgingHandler{service: service}
}

// @Summary Check a gitterbox on the forging line
// @Description Returns the most recent forging-line scan for a gitterbox, or exists=false
// @Tags forging
// @Accept json
// @Produce json
// @Success 200 {object} models.ForgingCheckResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /KovaciLinkaCheck [post]
func (h *ForgingHandler) Check(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
		return
	}

	raw, ok := body["gitter_id"]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required field: gitter_id"})
		return
	}
	var gitterID string
	_ = json.Unmarshal(raw, &gitterID)
	if strings.TrimSpace(gitterID) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "gitter_id cannot be empty"})
		return
	}

	result, err := h.service.Check(c.Request.Context(), gitterID)
	if err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			respondError(c, err)
			return
		}
		// Failure detail stays in the logs; callers only learn the check failed.
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check gitter_id"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Record a forging-line scan
// @Description Stores a gitterbox scan at forging-line position A or B
// @Tags forging
// @Accept json
// @Produce json
// @Param request body models.ForgingScanRequest true "Scan"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /KovaciLinkaScan [post]
func (h *ForgingHandler) Scan(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
		return
	}

	var missing []string
	for _, field := range []string{"gitter_id", "employee_id", "position"} {
		if _, ok := body[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields: " + strings.Join(missing, ", ")})
		return
	}

	req := &models.ForgingScanRequest{}
	_ = json.Unmarshal(body["gitter_id"], &req.GitterID)
	_ = json.Unmarshal(body["employee_id"], &req.EmployeeID)
	_ = json.Unmarshal(body["position"], &req.Position)

	if err := h.service.Scan(c.Request.Context(), req); err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process scan"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Scan saved successfully"})
}
