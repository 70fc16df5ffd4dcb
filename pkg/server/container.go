package server

import (
	"time"

	_ "github.com/microsoft/go-mssqldb"
	"github.com/sirupsen/logrus"

	"traceability-api/internal/config"
	"traceability-api/internal/dispatch"
	"traceability-api/internal/queue"
	"traceability-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Dispatcher *dispatch.Dispatcher
	Services   *services.ServiceContainer
	Queue      *queue.Processor
}

// NewContainer creates and initializes all application dependencies. The
// dispatcher holds no open connections, so construction never touches the
// database; connection failures surface per request.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := config.NewLogger(cfg.Environment)

	dispatcher := dispatch.New(
		&cfg.Database,
		time.Duration(cfg.Database.ConnectTimeout)*time.Second,
		logger,
	)

	svcs := services.NewServiceContainer(dispatcher, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Dispatcher: dispatcher,
		Services:   svcs,
		Queue:      queue.NewProcessor(svcs, logger),
	}, nil
}

// Close cleans up resources. The dispatcher closes its connection after
// every command, so there is nothing held open to release.
func (c *Container) Close() error {
	return nil
}
