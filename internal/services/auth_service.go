package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

type authService struct {
	dispatcher Dispatcher
	logger     *logrus.Logger
}

// AuthenticateCard runs the card authentication procedure. The procedure
// returns its own status row; a card the database rejects is still a
// transport-level success here.
func (s *authService) AuthenticateCard(ctx context.Context, cardID string) (*models.AuthResult, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return nil, dispatch.NewValidation("Missing required parameter: card_id")
	}

	outcome, err := s.dispatcher.Dispatch(ctx, authenticateCardCommand(cardID))
	if err != nil {
		s.logger.WithField("card_id", cardID).WithError(err).Error("Error authenticating card")
		return nil, err
	}

	if !outcome.HasRows() {
		return &models.AuthResult{
			Status:  "error",
			Message: "No result from database",
		}, nil
	}

	// The procedure's result set is positional: status, message,
	// employee_name, employee_id.
	return &models.AuthResult{
		Status:       asString(outcome.ValueAt(0, 0)),
		Message:      asString(outcome.ValueAt(0, 1)),
		EmployeeName: optString(outcome.ValueAt(0, 2)),
		EmployeeID:   optString(outcome.ValueAt(0, 3)),
	}, nil
}
