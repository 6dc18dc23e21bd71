package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"pennyledger/internal/domain"
	"pennyledger/internal/infrastructure/postgres"
)

// EntryRepository implements usecase.EntryRepository on PostgreSQL.
type EntryRepository struct {
	gateway *postgres.Gateway
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(gateway *postgres.Gateway) *EntryRepository {
	return &EntryRepository{gateway: gateway}
}

const insertEntrySQL = `
INSERT INTO entries (id, type, amount, description, date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create inserts a new entry.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	pool, err := r.gateway.Acquire(ctx)
	if err != nil {
		return err
	}

	amount, err := decimalToNumeric(entry.Amount)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, insertEntrySQL,
		entry.ID,
		string(entry.Type),
		amount,
		entry.Description,
		dateToPgDate(entry.Date),
		timeToPgTimestamptz(entry.CreatedAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	)

	return err
}

const listEntriesSQL = `
SELECT id, type, amount, description, date, created_at, updated_at
FROM entries
ORDER BY date DESC, created_at DESC`

// List returns all entries ordered by effective date descending;
// entries sharing a date come back newest first.
func (r *EntryRepository) List(ctx context.Context) ([]*domain.Entry, error) {
	pool, err := r.gateway.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, listEntriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

const deleteEntrySQL = `
DELETE FROM entries
WHERE id = $1
RETURNING id, type, amount, description, date, created_at, updated_at`

// Delete removes an entry by ID and returns the removed row. A missing
// ID yields domain.ErrEntryNotFound.
func (r *EntryRepository) Delete(ctx context.Context, id string) (*domain.Entry, error) {
	pool, err := r.gateway.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := scanEntry(pool.QueryRow(ctx, deleteEntrySQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		entry     domain.Entry
		entryType string
		amount    pgtype.Numeric
		date      pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&entry.ID, &entryType, &amount, &entry.Description, &date, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	entry.Type = domain.EntryType(entryType)
	entry.Amount = numericToDecimal(amount)
	entry.Date = date.Time
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}

func decimalToNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric

	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}

	return n, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	// A NaN numeric scans as Valid with a nil Int.
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func dateToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}
