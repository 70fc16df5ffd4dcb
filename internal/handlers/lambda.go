package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
	"traceability-api/pkg/lambda"
)

// Lambda-style variants of the HTTP handlers. Each mirrors its gin
// counterpart but works on the generic serverless request shape, so the
// same handler structs serve both deployment modes.

// lambdaField extracts a field from the query string first, then from a
// JSON body, matching fieldFromRequest.
func lambdaField(req *lambda.Request, name string) string {
	if v := req.QueryParams[name]; v != "" {
		return v
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(req.Body, &body); err != nil {
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

func lambdaError(err error) *lambda.Response {
	return lambda.JSON(dispatch.HTTPStatus(err), ErrorResponse{Error: err.Error()})
}

// HandleAuthenticateCard handles card authentication in serverless mode.
func (h *AuthHandler) HandleAuthenticateCard(ctx context.Context, req *lambda.Request) *lambda.Response {
	var cardID string
	if req.Method == http.MethodGet {
		cardID = req.QueryParams["card_id"]
	} else {
		var body map[string]json.RawMessage
		if err := json.Unmarshal(req.Body, &body); err == nil {
			_ = json.Unmarshal(body["card_id"], &cardID)
		}
	}

	if cardID == "" {
		return lambda.JSON(http.StatusBadRequest, models.AuthResult{
			Status:  "error",
			Message: "Missing required parameter: card_id",
		})
	}

	result, err := h.service.AuthenticateCard(ctx, cardID)
	if err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			return lambda.JSON(http.StatusBadRequest, models.AuthResult{Status: "error", Message: err.Error()})
		}
		return lambda.JSON(http.StatusInternalServerError, models.AuthResult{
			Status:  "error",
			Message: "Internal server error: " + err.Error(),
		})
	}

	status := http.StatusOK
	if !result.Authenticated() {
		status = http.StatusUnauthorized
	}
	return lambda.JSON(status, result)
}

// HandleChangeStatus handles gitterbox status transitions in serverless mode.
func (h *StatusHandler) HandleChangeStatus(ctx context.Context, req *lambda.Request) *lambda.Response {
	var body models.ChangeStatusRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
	}
	if body.StationID == "" || body.Status == "" || body.StatusTimestamp == "" || body.ShippingID == "" {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
	}

	if err := h.service.ChangeStatus(ctx, &body); err != nil {
		return lambdaError(err)
	}
	return lambda.JSON(http.StatusOK, MessageResponse{Message: "Status updated successfully"})
}

// HandleReadStatus handles latest-status reads in serverless mode.
func (h *StatusHandler) HandleReadStatus(ctx context.Context, req *lambda.Request) *lambda.Response {
	partID := lambdaField(req, "part_id")
	if partID == "" {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please pass part_id in the query string or request body"})
	}

	status, err := h.service.ReadStatus(ctx, partID)
	if err != nil {
		return lambdaError(err)
	}
	if status == nil {
		return lambda.JSON(http.StatusOK, MessageResponse{Message: "No record found for part ID: " + partID})
	}
	return lambda.JSON(http.StatusOK, status)
}

// HandleInfoStatus handles part-history reads in serverless mode.
func (h *StatusHandler) HandleInfoStatus(ctx context.Context, req *lambda.Request) *lambda.Response {
	partID := lambdaField(req, "part_id")
	if partID == "" {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please pass part_id in the query string or request body"})
	}

	entries, err := h.service.PartHistory(ctx, partID)
	if err != nil {
		return lambdaError(err)
	}
	if len(entries) == 0 {
		return lambda.JSON(http.StatusOK, MessageResponse{Message: "No record found for part ID: " + partID})
	}
	return lambda.JSON(http.StatusOK, map[string][]models.PartHistoryEntry{"part_history": entries})
}

// HandleGetInfoGitter handles gitterbox content lookups in serverless mode.
func (h *GitterHandler) HandleGetInfoGitter(ctx context.Context, req *lambda.Request) *lambda.Response {
	shippingID := lambdaField(req, "shipping_id")
	if shippingID == "" {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please pass shipping_id in the query string or request body"})
	}

	entries, err := h.service.GitterHistory(ctx, shippingID)
	if err != nil {
		return lambdaError(err)
	}
	return lambda.JSON(http.StatusOK, map[string][]models.GitterHistoryEntry{"gitter_history": entries})
}

// HandleCheck handles forging-line checks in serverless mode.
func (h *ForgingHandler) HandleCheck(ctx context.Context, req *lambda.Request) *lambda.Response {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
	}

	raw, ok := body["gitter_id"]
	if !ok {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required field: gitter_id"})
	}
	var gitterID string
	_ = json.Unmarshal(raw, &gitterID)
	if strings.TrimSpace(gitterID) == "" {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "gitter_id cannot be empty"})
	}

	result, err := h.service.Check(ctx, gitterID)
	if err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			return lambdaError(err)
		}
		return lambda.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check gitter_id"})
	}
	return lambda.JSON(http.StatusOK, result)
}

// HandleScan handles forging-line scans in serverless mode.
func (h *ForgingHandler) HandleScan(ctx context.Context, req *lambda.Request) *lambda.Response {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
	}

	var missing []string
	for _, field := range []string{"gitter_id", "employee_id", "position"} {
		if _, ok := body[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields: " + strings.Join(missing, ", ")})
	}

	scan := &models.ForgingScanRequest{}
	_ = json.Unmarshal(body["gitter_id"], &scan.GitterID)
	_ = json.Unmarshal(body["employee_id"], &scan.EmployeeID)
	_ = json.Unmarshal(body["position"], &scan.Position)

	if err := h.service.Scan(ctx, scan); err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			return lambdaError(err)
		}
		return lambda.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process scan"})
	}
	return lambda.JSON(http.StatusOK, MessageResponse{Message: "Scan saved successfully"})
}

// HandleInsert handles protocol-part inserts in serverless mode.
func (h *ProtocolHandler) HandleInsert(ctx context.Context, req *lambda.Request) *lambda.Response {
	if !strings.HasPrefix(req.Header("Content-Type"), "application/json") {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Content-Type must be application/json"})
	}

	var body models.ProtocolPartRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return lambda.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
	}

	if err := h.service.Insert(ctx, &body); err != nil {
		switch dispatch.KindOf(err) {
		case dispatch.KindValidation:
			return lambdaError(err)
		case dispatch.KindDatabase, dispatch.KindConnectivity, dispatch.KindConfiguration:
			return lambda.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Database connection error. Check logs for details."})
		default:
			return lambda.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An internal server error occurred. Check logs for details."})
		}
	}
	return lambda.JSON(http.StatusOK, MessageResponse{Message: "Protocol part data inserted successfully"})
}
