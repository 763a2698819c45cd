package invoicing

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

// Statements run one at a time: pgx's extended protocol rejects
// multi-command strings.
var invoicesSchema = []string{
	`CREATE TABLE IF NOT EXISTS invoices (
		id         uuid PRIMARY KEY,
		doc        jsonb NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS invoices_created_at_idx ON invoices (created_at DESC)`,
}

// PostgresStore persists invoice documents as JSONB rows.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	for _, stmt := range invoicesSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) SaveInvoice(ctx context.Context, inv Invoice) (Invoice, error) {
	inv.ID = uuid.NewString()
	inv.CreatedAt = time.Now().UTC()
	doc, err := json.Marshal(inv)
	if err != nil {
		return Invoice{}, fmt.Errorf("encode invoice: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO invoices (id, doc, created_at) VALUES ($1, $2, $3)`,
		inv.ID, doc, inv.CreatedAt)
	if err != nil {
		return Invoice{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return inv, nil
}

func (s *PostgresStore) ListInvoices(ctx context.Context) ([]Invoice, error) {
	rows, err := s.pool.Query(ctx, `SELECT doc FROM invoices ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		var inv Invoice
		if err := json.Unmarshal(doc, &inv); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return invoices, nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status PaymentStatus) (Invoice, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`UPDATE invoices
		 SET doc = jsonb_set(doc, '{paymentStatus}', to_jsonb($2::text))
		 WHERE id = $1
		 RETURNING doc`,
		id, string(status)).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	var inv Invoice
	if err := json.Unmarshal(doc, &inv); err != nil {
		return Invoice{}, fmt.Errorf("decode invoice: %w", err)
	}
	return inv, nil
}

func (s *PostgresStore) NumbersForYear(ctx context.Context, year int) ([]string, error) {
	prefix := fmt.Sprintf("%s-%d%%", numberPrefix, year)
	rows, err := s.pool.Query(ctx,
		`SELECT doc->'invoiceInfo'->>'number'
		 FROM invoices
		 WHERE doc->'invoiceInfo'->>'number' LIKE $1
		 ORDER BY created_at DESC`,
		prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return numbers, nil
}
