package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pennyledger/internal/domain"
	"pennyledger/internal/usecase"
)

// DateLayout is the wire format for entry dates.
const DateLayout = "2006-01-02"

// CreateEntryRequest represents a request to create an entry.
type CreateEntryRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// ToUseCaseInput converts to use case input. An absent date passes
// through as the zero time so the domain reports the missing field.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	var date time.Time

	if r.Date != "" {
		parsed, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			// Full timestamps are accepted too.
			parsed, err = time.Parse(time.RFC3339, r.Date)
			if err != nil {
				return usecase.CreateEntryInput{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", r.Date)
			}
		}
		date = parsed
	}

	return usecase.CreateEntryInput{
		Type:        domain.EntryType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		Date:        date,
	}, nil
}
