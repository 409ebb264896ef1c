package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ivoronin/databoxes/internal/filter"
	"github.com/ivoronin/databoxes/internal/sqlquery"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// SQLStore is a Store backed by database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect sqlquery.Dialect
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One connection keeps per-connection pragmas and :memory: databases consistent.
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA case_sensitive_like = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure sqlite: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLStore{db: db, dialect: dialect}, nil
}

func dialectFor(driver string) (sqlquery.Dialect, error) {
	switch driver {
	case DriverSQLite:
		return sqlquery.SQLite, nil
	case DriverPostgres:
		return sqlquery.Postgres, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// List returns the requested page, ordered by id.
func (s *SQLStore) List(ctx context.Context, q Query) ([]Record, error) {
	fields := q.fields()
	query, args, err := sqlquery.Build(sqlquery.ListQuery{
		Table:   Table,
		Columns: fields,
		Where:   q.Where,
		OrderBy: Key,
		Take:    q.Take,
		Skip:    q.Skip,
	}, s.dialect)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list databoxes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []Record{}
	for rows.Next() {
		values := make([]string, len(fields))
		dest := make([]any, len(fields))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan databox: %w", err)
		}
		rec := make(Record, len(fields))
		for i, f := range fields {
			rec[f] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list databoxes: %w", err)
	}
	return records, nil
}

// Get returns the databox with the given id or ErrNotFound.
func (s *SQLStore) Get(ctx context.Context, id string) (Record, error) {
	records, err := s.List(ctx, Query{
		Where: &filter.Comparison{Field: Key, Operator: filter.OpEquals, Value: id},
		Take:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// Insert stores a new databox.
func (s *SQLStore) Insert(ctx context.Context, d Databox) error {
	query := fmt.Sprintf("INSERT INTO %s (id, name, description) VALUES (%s, %s, %s)",
		sqlquery.Ident(Table), s.dialect.Placeholder(1), s.dialect.Placeholder(2), s.dialect.Placeholder(3))
	if _, err := s.db.ExecContext(ctx, query, d.ID, d.Name, d.Description); err != nil {
		return fmt.Errorf("insert databox %s: %w", d.ID, err)
	}
	return nil
}

// Close closes the database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
