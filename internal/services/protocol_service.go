package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

type protocolService struct {
	dispatcher Dispatcher
	logger     *logrus.Logger
	validate   *validator.Validate
}

// Insert links a part to a measurement protocol via the insert_protocol_part
// procedure. Optional fields pass through as NULL.
func (s *protocolService) Insert(ctx context.Context, req *models.ProtocolPartRequest) error {
	if req == nil {
		return dispatch.NewValidation("Request body must contain 'part_id' and 'protocol_id'")
	}
	if err := s.validate.Struct(req); err != nil {
		return dispatch.NewValidation("Request body must contain 'part_id' and 'protocol_id'")
	}

	_, err := s.dispatcher.Dispatch(ctx, insertProtocolPartCommand(req))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"part_id":     req.PartID,
			"protocol_id": req.ProtocolID,
		}).WithError(err).Error("Error inserting protocol part")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"part_id":     req.PartID,
		"protocol_id": req.ProtocolID,
	}).Info("Protocol part inserted")
	return nil
}
