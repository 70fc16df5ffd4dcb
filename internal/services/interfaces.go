package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"traceability-api/internal/dispatch"
	"traceability-api/internal/models"
)

// Dispatcher is the slice of the blocking-operation dispatcher the services
// consume. Services validate commands fully before handing them over; the
// dispatcher only surfaces transport and database failures.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd dispatch.Command) (*dispatch.Outcome, error)
	DispatchAll(ctx context.Context, cmds ...dispatch.Command) ([]*dispatch.Outcome, error)
}

// AuthService verifies presented NFC/RFID card identifiers.
type AuthService interface {
	AuthenticateCard(ctx context.Context, cardID string) (*models.AuthResult, error)
}

// StatusService records and reads part and gitterbox status.
type StatusService interface {
	ChangeStatus(ctx context.Context, req *models.ChangeStatusRequest) error
	ReadStatus(ctx context.Context, partID string) (*models.PartStatus, error)
	PartHistory(ctx context.Context, partID string) ([]models.PartHistoryEntry, error)
}

// GitterService reads gitterbox contents.
type GitterService interface {
	GitterHistory(ctx context.Context, shippingID string) ([]models.GitterHistoryEntry, error)
}

// ForgingService handles the forging-line scan workstream.
type ForgingService interface {
	Check(ctx context.Context, gitterID string) (*models.ForgingCheckResult, error)
	Scan(ctx context.Context, req *models.ForgingScanRequest) error
}

// ProtocolService links parts to measurement protocols.
type ProtocolService interface {
	Insert(ctx context.Context, req *models.ProtocolPartRequest) error
}

// OperationsLogService inserts traceability log rows from queue messages.
type OperationsLogService interface {
	Insert(ctx context.Context, msg *models.OperationLogMessage) error
}

// ServiceContainer bundles all services behind their interfaces.
type ServiceContainer struct {
	Auth          AuthService
	Status        StatusService
	Gitter        GitterService
	Forging       ForgingService
	Protocol      ProtocolService
	OperationsLog OperationsLogService
}

// NewServiceContainer wires every service to the given dispatcher.
func NewServiceContainer(d Dispatcher, logger *logrus.Logger) *ServiceContainer {
	if logger == nil {
		logger = logrus.New()
	}
	validate := validator.New()

	return &ServiceContainer{
		Auth:          &authService{dispatcher: d, logger: logger},
		Status:        &statusService{dispatcher: d, logger: logger},
		Gitter:        &gitterService{dispatcher: d, logger: logger},
		Forging:       &forgingService{dispatcher: d, logger: logger, validate: validate},
		Protocol:      &protocolService{dispatcher: d, logger: logger, validate: validate},
		OperationsLog: &operationsLogService{dispatcher: d, logger: logger, validate: validate},
	}
}
