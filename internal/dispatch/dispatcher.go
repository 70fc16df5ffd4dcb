package dispatch

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Dispatcher executes exactly one database operation per command against a
// connection scoped to that single call. There is no pool shared across
// requests: every Dispatch opens its own handle and closes it on every exit
// path, trading connection-setup latency for absolute isolation between
// requests. Each command is attempted exactly once; a caller that wants
// retries re-dispatches the whole command.
type Dispatcher struct {
	resolve     func() (driver, dsn string, err error)
	connTimeout time.Duration
	logger      *logrus.Logger
}

// Resolver supplies the driver name and connection string for one dispatch.
// Configuration is resolved per invocation so an operator can fix settings
// without a restart.
type Resolver interface {
	Resolve() (driver, dsn string, err error)
}

// New creates a dispatcher whose connections are described by the resolver.
func New(resolver Resolver, connTimeout time.Duration, logger *logrus.Logger) *Dispatcher {
	if logger == nil {
		logger = logrus.New()
	}
	if connTimeout <= 0 {
		connTimeout = 60 * time.Second
	}
	return &Dispatcher{
		resolve:     resolver.Resolve,
		connTimeout: connTimeout,
		logger:      logger,
	}
}

// NewWithDSN creates a dispatcher bound to a fixed driver and connection
// string. The dispatcher is driver-agnostic; tests run it against SQLite.
func NewWithDSN(driver, dsn string, logger *logrus.Logger) *Dispatcher {
	if logger == nil {
		logger = logrus.New()
	}
	return &Dispatcher{
		resolve:     func() (string, string, error) { return driver, dsn, nil },
		connTimeout: 30 * time.Second,
		logger:      logger,
	}
}

// Dispatch runs one command and returns its outcome. The returned error is
// always a classified *Error. Reads materialize every row before the
// connection is released; writes commit before it is released.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (*Outcome, error) {
	driver, dsn, err := d.resolve()
	if err != nil {
		d.logFailure(cmd, err)
		return nil, NewConfiguration(err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		d.logFailure(cmd, err)
		return nil, NewConnectivity(err)
	}
	defer db.Close()

	connCtx, cancel := context.WithTimeout(ctx, d.connTimeout)
	defer cancel()
	if err := db.PingContext(connCtx); err != nil {
		d.logFailure(cmd, err)
		return nil, NewConnectivity(err)
	}

	var outcome *Outcome
	switch cmd.Kind {
	case CommandWrite:
		outcome, err = d.execute(ctx, db, cmd)
	default:
		outcome, err = d.query(ctx, db, cmd)
	}
	if err != nil {
		d.logFailure(cmd, err)
		return nil, NewDatabase(cmd.Operation, err)
	}

	d.logger.WithFields(logrus.Fields{
		"operation": cmd.Operation,
		"key":       cmd.Key,
	}).Debug("Command completed")
	return outcome, nil
}

// DispatchAll runs each command on its own goroutine and joins them all
// before returning. Sibling commands are independent reads with no shared
// mutable state, so their relative completion order is irrelevant; results
// are merged only after every command has finished. The first failure, in
// command order, is returned alongside the per-command outcomes.
func (d *Dispatcher) DispatchAll(ctx context.Context, cmds ...Command) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(cmds))
	failures := make([]error, len(cmds))

	var wg sync.WaitGroup
	for i, cmd := range cmds {
		wg.Add(1)
		go func(i int, cmd Command) {
			defer wg.Done()
			outcomes[i], failures[i] = d.Dispatch(ctx, cmd)
		}(i, cmd)
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

func (d *Dispatcher) query(ctx context.Context, db *sql.DB, cmd Command) (*Outcome, error) {
	rows, err := db.QueryContext(ctx, cmd.Statement, cmd.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Columns: columns, Rows: []Row{}}
	values := make([]interface{}, len(columns))
	scanTargets := make([]interface{}, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalize(values[i])
		}
		outcome.Rows = append(outcome.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (d *Dispatcher) execute(ctx context.Context, db *sql.DB, cmd Command) (*Outcome, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, cmd.Statement, cmd.Args...)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	affected, _ := result.RowsAffected()
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &Outcome{RowsAffected: affected}, nil
}

func (d *Dispatcher) logFailure(cmd Command, err error) {
	d.logger.WithFields(logrus.Fields{
		"operation": cmd.Operation,
		"key":       cmd.Key,
	}).WithError(err).Error("Command failed")
}

// normalize converts driver byte slices to strings so outcomes are plain
// values regardless of the driver in use.
func normalize(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
