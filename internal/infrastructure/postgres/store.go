// Package postgres implements the verification lookup store against a
// relational database whose table and column layout is not known in advance.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/go-verify-api/internal/config"
	"github.com/go-verify-api/internal/domain"
)

// Store executes schema-probing point lookups over database/sql.
type Store struct {
	db *sql.DB
}

// New opens a connection pool using the elevated service DSN when configured,
// falling back to the regular one. The resolver only ever reads.
func New(cfg *config.Config) (*Store, error) {
	dsn := cfg.DatabaseURL
	if cfg.DatabaseServiceURL != "" {
		dsn = cfg.DatabaseServiceURL
	}
	if dsn == "" {
		return nil, fmt.Errorf("postgres backend selected but DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB wraps an existing handle. Used by tests.
func NewWithDB(db *sql.DB) *Store { return &Store{db: db} }

// Close closes the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

// Lookup fetches at most one row where column equals token. Table and column
// names come from candidate hypotheses, not callers, and are still quoted as
// identifiers before interpolation.
func (s *Store) Lookup(ctx context.Context, table, column, token string) (domain.Record, error) {
	q := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1 LIMIT 1`,
		pq.QuoteIdentifier(table), pq.QuoteIdentifier(column))

	rows, err := s.db.QueryContext(ctx, q, token)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, classify(err)
		}
		return nil, domain.ErrNotFound
	}

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	rec := make(domain.Record, len(cols))
	for i, c := range cols {
		rec[c] = sqlValue(values[i])
	}
	return rec, nil
}

// sqlValue keeps records readable: text columns arrive as []byte through
// database/sql and are folded to string.
func sqlValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// classify maps driver errors onto the domain sentinels. Undefined tables and
// columns are the expected shape when probing schema hypotheses; privilege
// and row-level-security denials are tolerated but reported distinctly.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "42P01", "42703": // undefined_table, undefined_column
			return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrSchemaAbsent)
		case "42501", "2F004": // insufficient_privilege, reading not permitted
			return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrAccessDenied)
		}
	}
	return err
}
