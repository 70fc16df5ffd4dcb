package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

type operationsLogService struct {
	dispatcher Dispatcher
	logger     *logrus.Logger
	validate   *validator.Validate
}

// Insert records one traceability log row from a queue payload.
func (s *operationsLogService) Insert(ctx context.Context, msg *models.OperationLogMessage) error {
	if msg == nil {
		return dispatch.NewValidation("message must contain 'part_id'")
	}
	if err := s.validate.Struct(msg); err != nil {
		return dispatch.NewValidation("message must contain 'part_id'")
	}

	_, err := s.dispatcher.Dispatch(ctx, insertTraceabilityLogCommand(msg))
	if err != nil {
		s.logger.WithField("part_id", msg.PartID).WithError(err).Error("Error inserting traceability log")
		return err
	}

	s.logger.WithField("part_id", msg.PartID).Info("Traceability log inserted")
	return nil
}
