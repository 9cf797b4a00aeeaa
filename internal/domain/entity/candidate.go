// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// Candidate is one member of a receipt's candidate pool: either a single
// ungrouped transaction or a transaction group, never both.
type Candidate struct {
	Transaction *Transaction
	Group       *TransactionGroup
}

// TransactionCandidate wraps an ungrouped transaction as a candidate.
func TransactionCandidate(t *Transaction) Candidate {
	return Candidate{Transaction: t}
}

// GroupCandidate wraps a transaction group as a candidate.
func GroupCandidate(g *TransactionGroup) Candidate {
	return Candidate{Group: g}
}

// IsGroup reports whether the candidate is a transaction group.
func (c Candidate) IsGroup() bool {
	return c.Group != nil
}

// Amount returns the candidate amount: the transaction amount or the group's
// combined amount.
func (c Candidate) Amount() decimal.Decimal {
	if c.IsGroup() {
		return c.Group.CombinedAmount
	}
	return c.Transaction.Amount
}

// Date returns the candidate date: the transaction date or the group's display
// date. The zero time is returned when the candidate carries no date.
func (c Candidate) Date() time.Time {
	if c.IsGroup() {
		return c.Group.DisplayDate
	}
	return c.Transaction.Date
}

// VendorText returns the raw vendor text for the candidate. Group labels keep
// their display annotation here; scoring strips it via ExtractVendorFromGroupName.
func (c Candidate) VendorText() string {
	if c.IsGroup() {
		return c.Group.DisplayName
	}
	return c.Transaction.Description
}

// Target returns the match target referencing this candidate.
func (c Candidate) Target() valueobject.MatchTarget {
	if c.IsGroup() {
		return valueobject.GroupTarget(c.Group.ID)
	}
	return valueobject.TransactionTarget(c.Transaction.ID)
}
