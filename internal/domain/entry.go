package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the direction of a ledger entry.
type EntryType string

const (
	EntryTypeCredit EntryType = "credit"
	EntryTypeDebit  EntryType = "debit"
)

// Entry represents a single ledger entry (credit or debit).
type Entry struct {
	ID          string
	Type        EntryType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Balance folds entries into the running balance: credits add, debits
// subtract. An empty set yields zero.
func Balance(entries []*Entry) decimal.Decimal {
	balance := decimal.Zero

	for _, e := range entries {
		if e.Type == EntryTypeCredit {
			balance = balance.Add(e.Amount)
		} else {
			balance = balance.Sub(e.Amount)
		}
	}

	return balance
}
