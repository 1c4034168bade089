package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Mode tells Execute what to do with a statement's result.
type Mode int

const (
	// ModeOne fetches at most one row.
	ModeOne Mode = iota
	// ModeAll fetches every row.
	ModeAll
	// ModeWrite runs the statement in a transaction and commits it.
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeOne:
		return "one"
	case ModeAll:
		return "all"
	case ModeWrite:
		return "write"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Row maps column names to values. Byte slices are returned as strings.
type Row map[string]any

// Result is what Execute returns. Rows is empty for writes; RowsAffected and
// LastInsertID are zero for reads.
type Result struct {
	Rows         []Row
	RowsAffected int64
	LastInsertID int64
}

// First returns the first row, if any.
func (r Result) First() (Row, bool) {
	if len(r.Rows) == 0 {
		return nil, false
	}
	return r.Rows[0], true
}

// Executor is the only path to the store. Each call holds its own pooled
// connection for exactly the duration of one statement.
type Executor struct {
	db      *sql.DB
	dialect Dialect
}

func NewExecutor(db *sql.DB, dialect Dialect) *Executor {
	return &Executor{db: db, dialect: dialect}
}

func (e *Executor) Dialect() Dialect { return e.dialect }

// Execute runs a parameterized statement. Arguments are always passed to the
// driver as bind parameters, never spliced into the query text.
func (e *Executor) Execute(ctx context.Context, mode Mode, query string, args ...any) (Result, error) {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	switch mode {
	case ModeOne, ModeAll:
		return fetchRows(ctx, conn, mode, query, args)
	case ModeWrite:
		return execWrite(ctx, conn, query, args)
	default:
		return Result{}, fmt.Errorf("execute: unknown %s", mode)
	}
}

func fetchRows(ctx context.Context, conn *sql.Conn, mode Mode, query string, args []any) (Result, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return Result{}, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("read columns: %w", err)
	}

	var res Result
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = vals[i]
		}
		res.Rows = append(res.Rows, row)

		if mode == ModeOne {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("iterate rows: %w", err)
	}
	return res, nil
}

func execWrite(ctx context.Context, conn *sql.Conn, query string, args []any) (Result, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin: %w", err)
	}

	sqlRes, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		_ = tx.Rollback()
		return Result{}, fmt.Errorf("exec: %w", err)
	}

	affected, err := sqlRes.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return Result{}, fmt.Errorf("rows affected: %w", err)
	}
	lastID, err := sqlRes.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return Result{}, fmt.Errorf("last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit: %w", err)
	}
	return Result{RowsAffected: affected, LastInsertID: lastID}, nil
}
