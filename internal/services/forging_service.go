package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

type forgingService struct {
	dispatcher Dispatcher
	logger     *logrus.Logger
	validate   *validator.Validate
}

// Check looks up the most recent forging-line scan for a gitterbox. This is a
// pure read: repeating it with no intervening scan returns the same result.
func (s *forgingService) Check(ctx context.Context, gitterID string) (*models.ForgingCheckResult, error) {
	gitterID = strings.TrimSpace(gitterID)
	if gitterID == "" {
		return nil, dispatch.NewValidation("gitter_id cannot be empty")
	}

	outcome, err := s.dispatcher.Dispatch(ctx, forgingCheckCommand(gitterID))
	if err != nil {
		s.logger.WithField("gitter_id", gitterID).WithError(err).Error("Error checking gitter_id")
		return nil, err
	}

	if !outcome.HasRows() {
		return &models.ForgingCheckResult{
			Exists:  false,
			Message: "Gitter ID not found",
		}, nil
	}

	row := outcome.Rows[0]
	return &models.ForgingCheckResult{
		Exists:     true,
		GitterID:   optString(row["gitter_id"]),
		EmployeeID: optString(row["employee_id"]),
		Timestamp:  optISOString(row["timestamp"]),
		Position:   optString(row["position"]),
	}, nil
}

// Scan records a forging-line scan. The position domain is the fixed set
// {A, B}; anything else never reaches the dispatcher.
func (s *forgingService) Scan(ctx context.Context, req *models.ForgingScanRequest) error {
	if req == nil {
		return dispatch.NewValidation("Missing required fields: gitter_id, employee_id, or position")
	}
	if err := s.validate.Struct(req); err != nil {
		if !models.ValidPosition(req.Position) && req.Position != "" {
			return dispatch.NewValidation("Position must be either 'A' or 'B'")
		}
		return dispatch.NewValidation("Missing required fields: gitter_id, employee_id, or position")
	}

	_, err := s.dispatcher.Dispatch(ctx, insertForgingScanCommand(req))
	if err != nil {
		s.logger.WithField("gitter_id", req.GitterID).WithError(err).Error("Error saving forging line scan")
		return err
	}

	s.logger.WithField("gitter_id", req.GitterID).Info("Forging line scan saved")
	return nil
}
