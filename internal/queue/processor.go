package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
	"traceability-api/internal/services"
)

// Queue names the processor routes on. These match the queues the upstream
// systems already publish to.
const (
	OperationsLogQueue = "operations-log-insert"
	ProtocolPartQueue  = "protocol-part-insert-test"
)

// Processor consumes queue messages and applies them through the services
// layer. A returned error signals the host to redeliver the message; a nil
// return acknowledges it. Malformed messages are rejected permanently since
// redelivery cannot fix them.
type Processor struct {
	services *services.ServiceContainer
	logger   *logrus.Logger
}

// NewProcessor creates a queue processor over the given services
func NewProcessor(svcs *services.ServiceContainer, logger *logrus.Logger) *Processor {
	if logger == nil {
		logger = logrus.New()
	}
	return &Processor{services: svcs, logger: logger}
}

// Process routes a raw message body by queue name.
func (p *Processor) Process(ctx context.Context, queueName string, body []byte) error {
	switch queueName {
	case OperationsLogQueue:
		return p.ProcessOperationsLog(ctx, body)
	case ProtocolPartQueue:
		return p.ProcessProtocolPart(ctx, body)
	default:
		return fmt.Errorf("unknown queue: %s", queueName)
	}
}

// ProcessOperationsLog inserts a traceability log row from a queue message.
func (p *Processor) ProcessOperationsLog(ctx context.Context, body []byte) error {
	var msg models.OperationLogMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		// Drop instead of redeliver; the payload will never parse.
		p.logger.WithError(err).Error("Discarding malformed operations-log message")
		return nil
	}

	if err := p.services.OperationsLog.Insert(ctx, &msg); err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			p.logger.WithError(err).WithField("part_id", msg.PartID).
				Error("Discarding invalid operations-log message")
			return nil
		}
		p.logger.WithError(err).WithField("part_id", msg.PartID).
			Error("Failed to insert operations log entry")
		return err
	}

	p.logger.WithField("part_id", msg.PartID).Info("Operations log entry inserted")
	return nil
}

// ProcessProtocolPart inserts a protocol-part row from a queue message.
func (p *Processor) ProcessProtocolPart(ctx context.Context, body []byte) error {
	var msg models.ProtocolPartRequest
	if err := json.Unmarshal(body, &msg); err != nil {
		p.logger.WithError(err).Error("Discarding malformed protocol-part message")
		return nil
	}

	if err := p.services.Protocol.Insert(ctx, &msg); err != nil {
		if dispatch.KindOf(err) == dispatch.KindValidation {
			p.logger.WithError(err).WithField("part_id", msg.PartID).
				Error("Discarding invalid protocol-part message")
			return nil
		}
		p.logger.WithError(err).WithField("part_id", msg.PartID).
			Error("Failed to insert protocol part entry")
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"part_id":     msg.PartID,
		"protocol_id": msg.ProtocolID,
	}).Info("Protocol part entry inserted")
	return nil
}
