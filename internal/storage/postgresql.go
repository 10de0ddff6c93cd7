package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecosnap/internal/pkg/logger"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	getValueQuery    = `SELECT value FROM content.kv WHERE key = $1;`
	setValueQuery    = `INSERT INTO content.kv (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`
	deleteValueQuery = `DELETE FROM content.kv WHERE key = $1;`

	createSchemaQuery = `CREATE SCHEMA IF NOT EXISTS content;`
	createTableQuery  = `CREATE TABLE IF NOT EXISTS content.kv (key TEXT PRIMARY KEY, value JSONB NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW());`
)

// PostgreSQL implements the KV interface on top of a single jsonb table.
type PostgreSQL struct {
	db  *sql.DB        // Connection to the database.
	log *logger.Logger // Logger for recording events and errors.
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string and logger.
// It opens the connection and pings the database to ensure connectivity.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// Get returns the stored document for key, reporting whether it existed.
// A missing table is treated as an empty store after bootstrapping it.
func (postgresql *PostgreSQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := postgresql.db.QueryRowContext(ctx, getValueQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		if isUndefinedTable(err) {
			if err := postgresql.bootstrap(ctx); err != nil {
				return nil, false, err
			}
			return nil, false, nil
		}
		postgresql.log.Sugar().Errorf("Failed to execute a query getValueQuery: %s", err)
		return nil, false, err
	}

	return value, true, nil
}

// Set stores the document under key, creating the table on first use.
func (postgresql *PostgreSQL) Set(ctx context.Context, key string, value []byte) error {
	_, err := postgresql.db.ExecContext(ctx, setValueQuery, key, value)
	if err != nil && isUndefinedTable(err) {
		if err := postgresql.bootstrap(ctx); err != nil {
			return err
		}
		_, err = postgresql.db.ExecContext(ctx, setValueQuery, key, value)
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setValueQuery: %s", err)
		return err
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (postgresql *PostgreSQL) Delete(ctx context.Context, key string) error {
	_, err := postgresql.db.ExecContext(ctx, deleteValueQuery, key)
	if err != nil && isUndefinedTable(err) {
		return nil
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteValueQuery: %s", err)
		return err
	}
	return nil
}

// bootstrap creates the schema and table on first contact with a fresh
// database.
func (postgresql *PostgreSQL) bootstrap(ctx context.Context) error {
	if _, err := postgresql.db.ExecContext(ctx, createSchemaQuery); err != nil {
		postgresql.log.Sugar().Errorf("Failed to create schema: %s", err)
		return err
	}
	if _, err := postgresql.db.ExecContext(ctx, createTableQuery); err != nil {
		postgresql.log.Sugar().Errorf("Failed to create kv table: %s", err)
		return err
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == pgerrcode.UndefinedTable
}
