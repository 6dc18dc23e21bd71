package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pennyledger/internal/domain"
	"pennyledger/internal/infrastructure/metrics"
)

// EntryUseCase handles entry business logic.
type EntryUseCase struct {
	entryRepo EntryRepository
	idGen     IDGenerator
	metrics   *metrics.Metrics
}

// NewEntryUseCase creates a new EntryUseCase. The metrics argument may
// be nil.
func NewEntryUseCase(entryRepo EntryRepository, idGen IDGenerator, m *metrics.Metrics) *EntryUseCase {
	return &EntryUseCase{
		entryRepo: entryRepo,
		idGen:     idGen,
		metrics:   m,
	}
}

// ListEntries returns all entries ordered by effective date, most
// recent first.
func (uc *EntryUseCase) ListEntries(ctx context.Context) ([]*domain.Entry, error) {
	entries, err := uc.entryRepo.List(ctx)
	if err != nil {
		uc.countStoreError("list")
		return nil, err
	}

	return entries, nil
}

// CreateEntryInput represents input for creating an entry.
type CreateEntryInput struct {
	Type        domain.EntryType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// CreateEntry validates the candidate entry, assigns its ID and
// timestamps, and persists it. The stored entry is returned.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	now := time.Now().UTC()

	entry := &domain.Entry{
		Type:        input.Type,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := domain.ValidateNewEntry(entry); err != nil {
		return nil, err
	}

	entry.ID = uc.idGen.Generate()

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		uc.countStoreError("create")
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.WithLabelValues(string(entry.Type)).Inc()
		amount, _ := entry.Amount.Float64()
		uc.metrics.EntryAmount.Observe(amount)
	}

	return entry, nil
}

// DeleteEntry removes an entry by ID and returns the removed entry.
// A missing ID yields domain.ErrEntryNotFound and leaves the store
// untouched.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) (*domain.Entry, error) {
	entry, err := uc.entryRepo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrEntryNotFound) {
			uc.countStoreError("delete")
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesDeleted.Inc()
	}

	return entry, nil
}

func (uc *EntryUseCase) countStoreError(operation string) {
	if uc.metrics != nil {
		uc.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}
