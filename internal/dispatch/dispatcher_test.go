package dispatch

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel) // Reduce noise in tests
	return logger
}

// testDB creates a file-backed SQLite database with a scan table. The
// dispatcher opens a fresh connection per command, so the database must
// outlive individual connections.
func testDB(t *testing.T) (driver, dsn string) {
	t.Helper()
	dsn = filepath.Join(t.TempDir(), "dispatch_test.db")

	d := NewWithDSN("sqlite3", dsn, testLogger())
	_, err := d.Dispatch(context.Background(), Command{
		Operation: "create_scan_table",
		Statement: `CREATE TABLE scans (gitter_id TEXT, employee_id TEXT, position TEXT)`,
		Kind:      CommandWrite,
	})
	if err != nil {
		t.Fatalf("Failed to create test table: %v", err)
	}
	return "sqlite3", dsn
}

func TestDispatcher_WriteCommits(t *testing.T) {
	driver, dsn := testDB(t)
	d := NewWithDSN(driver, dsn, testLogger())
	ctx := context.Background()

	outcome, err := d.Dispatch(ctx, Command{
		Operation: "insert_scan",
		Statement: `INSERT INTO scans (gitter_id, employee_id, position) VALUES (?, ?, ?)`,
		Args:      []interface{}{"G-100", "E-7", "A"},
		Kind:      CommandWrite,
		Key:       "G-100",
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if outcome.RowsAffected != 1 {
		t.Errorf("RowsAffected = %d, want 1", outcome.RowsAffected)
	}

	// A second dispatch opens a new connection; the row must have committed.
	read, err := d.Dispatch(ctx, Command{
		Operation: "read_scans",
		Statement: `SELECT gitter_id, employee_id, position FROM scans`,
		Kind:      CommandRead,
	})
	if err != nil {
		t.Fatalf("Dispatch() read error = %v", err)
	}
	if len(read.Rows) != 1 {
		t.Fatalf("Rows = %d, want 1", len(read.Rows))
	}
	if got := read.Rows[0]["gitter_id"]; got != "G-100" {
		t.Errorf("gitter_id = %v, want G-100", got)
	}
}

func TestDispatcher_ReadMaterializesRows(t *testing.T) {
	driver, dsn := testDB(t)
	d := NewWithDSN(driver, dsn, testLogger())
	ctx := context.Background()

	for _, args := range [][]interface{}{
		{"G-1", "E-1", "A"},
		{"G-2", "E-2", "B"},
	} {
		if _, err := d.Dispatch(ctx, Command{
			Operation: "insert_scan",
			Statement: `INSERT INTO scans (gitter_id, employee_id, position) VALUES (?, ?, ?)`,
			Args:      args,
			Kind:      CommandWrite,
		}); err != nil {
			t.Fatalf("Dispatch() insert error = %v", err)
		}
	}

	outcome, err := d.Dispatch(ctx, Command{
		Operation: "read_scans",
		Statement: `SELECT gitter_id, employee_id, position FROM scans ORDER BY gitter_id`,
		Kind:      CommandRead,
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if len(outcome.Columns) != 3 || outcome.Columns[0] != "gitter_id" {
		t.Errorf("Columns = %v, want [gitter_id employee_id position]", outcome.Columns)
	}
	if len(outcome.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(outcome.Rows))
	}
	if got := outcome.ValueAt(1, 2); got != "B" {
		t.Errorf("ValueAt(1, 2) = %v, want B", got)
	}
	if got := outcome.Value(0, "employee_id"); got != "E-1" {
		t.Errorf("Value(0, employee_id) = %v, want E-1", got)
	}
}

func TestDispatcher_EmptyReadIsNotError(t *testing.T) {
	driver, dsn := testDB(t)
	d := NewWithDSN(driver, dsn, testLogger())

	outcome, err := d.Dispatch(context.Background(), Command{
		Operation: "read_scans",
		Statement: `SELECT gitter_id FROM scans WHERE gitter_id = ?`,
		Args:      []interface{}{"missing"},
		Kind:      CommandRead,
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if outcome.HasRows() {
		t.Errorf("HasRows() = true, want false")
	}
}

func TestDispatcher_DispatchAll(t *testing.T) {
	driver, dsn := testDB(t)
	d := NewWithDSN(driver, dsn, testLogger())
	ctx := context.Background()

	if _, err := d.Dispatch(ctx, Command{
		Operation: "insert_scan",
		Statement: `INSERT INTO scans (gitter_id, employee_id, position) VALUES ('G-1', 'E-1', 'A')`,
		Kind:      CommandWrite,
	}); err != nil {
		t.Fatalf("Dispatch() insert error = %v", err)
	}

	outcomes, err := d.DispatchAll(ctx,
		Command{
			Operation: "read_by_position",
			Statement: `SELECT gitter_id FROM scans WHERE position = 'A'`,
			Kind:      CommandRead,
		},
		Command{
			Operation: "count_scans",
			Statement: `SELECT COUNT(*) AS total FROM scans`,
			Kind:      CommandRead,
		},
	)
	if err != nil {
		t.Fatalf("DispatchAll() error = %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(outcomes))
	}
	if len(outcomes[0].Rows) != 1 {
		t.Errorf("first outcome rows = %d, want 1", len(outcomes[0].Rows))
	}
	if !outcomes[1].HasRows() {
		t.Errorf("second outcome has no rows")
	}
}

func TestDispatcher_DispatchAllReturnsFirstFailure(t *testing.T) {
	driver, dsn := testDB(t)
	d := NewWithDSN(driver, dsn, testLogger())

	outcomes, err := d.DispatchAll(context.Background(),
		Command{
			Operation: "bad_read",
			Statement: `SELECT * FROM no_such_table`,
			Kind:      CommandRead,
		},
		Command{
			Operation: "good_read",
			Statement: `SELECT COUNT(*) FROM scans`,
			Kind:      CommandRead,
		},
	)
	if err == nil {
		t.Fatal("DispatchAll() error = nil, want database error")
	}
	if KindOf(err) != KindDatabase {
		t.Errorf("KindOf(err) = %v, want %v", KindOf(err), KindDatabase)
	}
	// The healthy sibling still completes even though a sibling failed.
	if outcomes[1] == nil || !outcomes[1].HasRows() {
		t.Errorf("sibling outcome missing, want completed read")
	}
}

func TestDispatcher_FailedWriteRollsBack(t *testing.T) {
	driver, dsn := testDB(t)
	d := NewWithDSN(driver, dsn, testLogger())
	ctx := context.Background()

	_, err := d.Dispatch(ctx, Command{
		Operation: "bad_insert",
		Statement: `INSERT INTO no_such_table (x) VALUES (1)`,
		Kind:      CommandWrite,
	})
	if err == nil {
		t.Fatal("Dispatch() error = nil, want database error")
	}

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if de.Kind != KindDatabase {
		t.Errorf("Kind = %v, want %v", de.Kind, KindDatabase)
	}
}

func TestDispatcher_ResolveFailureIsConfiguration(t *testing.T) {
	d := New(resolverFunc(func() (string, string, error) {
		return "", "", errors.New("incomplete database configuration")
	}), 0, testLogger())

	_, err := d.Dispatch(context.Background(), Command{
		Operation: "read_scans",
		Statement: `SELECT 1`,
		Kind:      CommandRead,
	})
	if KindOf(err) != KindConfiguration {
		t.Errorf("KindOf(err) = %v, want %v", KindOf(err), KindConfiguration)
	}
}

type resolverFunc func() (string, string, error)

func (f resolverFunc) Resolve() (string, string, error) { return f() }
