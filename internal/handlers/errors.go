package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"traceability-api/internal/dispatch"
)

// ErrorResponse is the JSON error body shared by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the acknowledgement body for pure writes and for reads
// that found nothing; absence of data is not an error.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps a classified failure to its status code and echoes the
// failure message. Validation failures are 400; everything else is 500.
func respondError(c *gin.Context, err error) {
	c.JSON(dispatch.HTTPStatus(err), ErrorResponse{Error: err.Error()})
}

// fieldFromRequest extracts a required field from the query string first,
// then from a JSON body when the query has no value. Returns the empty
// string when the field is absent from both sources.
func fieldFromRequest(c *gin.Context, name string) string {
	if v := c.Query(name); v != "" {
		return v
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		return ""
	}
	raw, ok := body[name]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}
