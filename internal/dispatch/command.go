package dispatch

// CommandKind distinguishes reads, which materialize rows, from writes, which
// run inside a committed transaction and return an acknowledgement.
type CommandKind int

const (
	CommandRead CommandKind = iota
	CommandWrite
)

// Command is the normalized, validated input to one database operation: a
// stored-procedure call or a parameterized query with its arguments already
// bound in the order the target declares. A command is built per request,
// consumed once by the dispatcher and discarded.
type Command struct {
	// Operation names the stored procedure or logical query for logging.
	Operation string

	// Statement is the SQL text executed verbatim.
	Statement string

	// Args are bound positionally, in the target's declared order.
	Args []interface{}

	Kind CommandKind

	// Key is the primary identifier parameter, logged with any failure.
	Key string
}

// Row maps column names to scanned values.
type Row map[string]interface{}

// Outcome is the result of one executed command. A read yields Columns and
// Rows (Rows may be empty); a write yields only RowsAffected. Failures are
// returned as a classified *Error alongside a nil Outcome, never as a
// partially populated one.
type Outcome struct {
	// Columns preserves the result set's column order, so callers of stored
	// procedures with unaliased result sets can still read positionally.
	Columns []string

	Rows []Row

	RowsAffected int64
}

// HasRows reports whether a read produced at least one row.
func (o *Outcome) HasRows() bool {
	return o != nil && len(o.Rows) > 0
}

// Value returns the named column of row i, or nil when absent.
func (o *Outcome) Value(i int, column string) interface{} {
	if o == nil || i < 0 || i >= len(o.Rows) {
		return nil
	}
	return o.Rows[i][column]
}

// ValueAt returns column j of row i by result-set position, or nil when out
// of range.
func (o *Outcome) ValueAt(i, j int) interface{} {
	if o == nil || i < 0 || i >= len(o.Rows) || j < 0 || j >= len(o.Columns) {
		return nil
	}
	return o.Rows[i][o.Columns[j]]
}
