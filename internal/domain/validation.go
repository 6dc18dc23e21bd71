package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrTypeRequired        = errors.New("type is required")
	ErrInvalidEntryType    = errors.New("type must be credit or debit")
	ErrAmountTooSmall      = errors.New("amount must be greater than 0")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDateRequired        = errors.New("date is required")
)

// MinEntryAmount is the smallest amount an entry may carry.
const MinEntryAmount = "0.01"

// ValidateEntryType validates the credit/debit enumeration.
func ValidateEntryType(t EntryType) error {
	switch t {
	case "":
		return ErrTypeRequired
	case EntryTypeCredit, EntryTypeDebit:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidEntryType, string(t))
	}
}

// ValidateAmount validates an entry amount.
func ValidateAmount(amount decimal.Decimal) error {
	minAmount, _ := decimal.NewFromString(MinEntryAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinEntryAmount)
	}

	return nil
}

// ValidateDescription validates that a description is non-empty after trimming.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}

	return nil
}

// ValidateNewEntry validates a candidate entry before it is persisted.
// The first violated constraint is reported.
func ValidateNewEntry(e *Entry) error {
	if err := ValidateEntryType(e.Type); err != nil {
		return err
	}

	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}

	if err := ValidateDescription(e.Description); err != nil {
		return err
	}

	if e.Date.IsZero() {
		return ErrDateRequired
	}

	return nil
}
