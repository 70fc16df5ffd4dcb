package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
	"traceability-api/internal/services"
)

// AuthHandler handles NFC/RFID card authentication requests.
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// @Summary Authenticate an NFC/RFID card
// @Description Verifies a presented card identifier against the employee register
// @Tags auth
// @Accept json
// @Produce json
// @Param card_id query string false "Card ID (GET)"
// @Success 200 {object} models.AuthResult
// @Failure 400 {object} models.AuthResult
// @Failure 401 {object} models.AuthResult
// @Failure 500 {object} models.AuthResult
// @Router /authenticatecard [get]
func (h *AuthHandler) AuthenticateCard(c *gin.Context) {
	var cardID string
	if c.Request.Method == http.MethodGet {
		cardID = c.Query("card_id")
	} else {
		var body map[string]json.RawMessage
		if err := c.ShouldBindJSON(&body); err == nil {
			_ = json.Unmarshal(body["card_id"], &cardID)
		}
	}

	if cardID == "" {
		c.JSON(http.StatusBadRequest, models.AuthResult{
			Status:  "error",
			Message: "Missing required parameter: card_id",
		})
		return
	}

	result, err := h.service.AuthenticateCard(c.Request.Context(), cardID)
	if err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			c.JSON(http.StatusBadRequest, models.AuthResult{Status: "error", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.AuthResult{
			Status:  "error",
			Message: "Internal server error: " + err.Error(),
		})
		return
	}

	// The procedure's own status decides between 200 and 401. Any
	// non-success status, whatever its cause, is reported as not
	// authenticated.
	status := http.StatusOK
	if !result.Authenticated() {
		status = http.StatusUnauthorized
	}
	c.JSON(status, result)
}
