// Package db provides PostgreSQL storage for extracted resume records.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports an operation on a client row that does not exist.
var ErrNotFound = errors.New("client not found")

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migrate creates the clients table if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			telegram_id BIGINT NOT NULL UNIQUE,
			resume_url TEXT NOT NULL,
			record JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create clients table: %w", err)
	}
	return nil
}

// Client associates a chat user with their resume link and the last record
// extracted from it.
type Client struct {
	ID         uuid.UUID       `json:"id"`
	TelegramID int64           `json:"telegram_id"`
	ResumeURL  string          `json:"resume_url"`
	Record     json.RawMessage `json:"record,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// SaveResume upserts the resume record for a chat user: one row per user,
// the latest extraction wins.
func (db *DB) SaveResume(ctx context.Context, telegramID int64, resumeURL string, record any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO clients (telegram_id, resume_url, record)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (telegram_id) DO UPDATE SET resume_url = $2, record = $3, updated_at = NOW()
		 RETURNING id`,
		telegramID, resumeURL, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves the stored record for a chat user, or nil when none
// exists.
func (db *DB) GetResume(ctx context.Context, telegramID int64) (*Client, error) {
	var client Client
	err := db.pool.QueryRow(ctx,
		`SELECT id, telegram_id, resume_url, record, created_at, updated_at
		 FROM clients WHERE telegram_id = $1`,
		telegramID,
	).Scan(&client.ID, &client.TelegramID, &client.ResumeURL, &client.Record, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &client, nil
}

// ListClients retrieves recently updated clients.
func (db *DB) ListClients(ctx context.Context, limit int) ([]Client, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, telegram_id, resume_url, record, created_at, updated_at
		 FROM clients ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var client Client
		if err := rows.Scan(&client.ID, &client.TelegramID, &client.ResumeURL, &client.Record, &client.CreatedAt, &client.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, nil
}

// DeleteClient removes a stored client row.
func (db *DB) DeleteClient(ctx context.Context, telegramID int64) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM clients WHERE telegram_id = $1`, telegramID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, telegramID)
	}
	return nil
}
