// Package valueobject contains domain value objects for the receipt matching system.
package valueobject

import (
	"github.com/google/uuid"

	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// MatchTargetKind distinguishes the two kinds of candidates a match can reference.
type MatchTargetKind string

const (
	TargetTransaction MatchTargetKind = "transaction"
	TargetGroup       MatchTargetKind = "group"
)

// MatchTarget identifies exactly one transaction or one transaction group.
// The constructor is the only way to build one, which makes the
// "both set" and "neither set" states unrepresentable in the domain layer.
type MatchTarget struct {
	kind MatchTargetKind
	id   uuid.UUID
}

// NewMatchTarget builds a MatchTarget from two optional references, failing when
// both or neither are provided.
func NewMatchTarget(transactionID, groupID *uuid.UUID) (MatchTarget, error) {
	switch {
	case transactionID != nil && groupID != nil:
		return MatchTarget{}, domainerror.NewMatchError(
			domainerror.ErrCodeAmbiguousMatchTarget,
			"match target cannot reference both a transaction and a group",
			domainerror.ErrAmbiguousMatchTarget,
		)
	case transactionID == nil && groupID == nil:
		return MatchTarget{}, domainerror.NewMatchError(
			domainerror.ErrCodeMissingMatchTarget,
			"match target must reference a transaction or a group",
			domainerror.ErrMissingMatchTarget,
		)
	case transactionID != nil:
		return TransactionTarget(*transactionID), nil
	default:
		return GroupTarget(*groupID), nil
	}
}

// TransactionTarget builds a target referencing a single transaction.
func TransactionTarget(id uuid.UUID) MatchTarget {
	return MatchTarget{kind: TargetTransaction, id: id}
}

// GroupTarget builds a target referencing a transaction group.
func GroupTarget(id uuid.UUID) MatchTarget {
	return MatchTarget{kind: TargetGroup, id: id}
}

// Kind returns the kind of candidate the target references.
func (t MatchTarget) Kind() MatchTargetKind {
	return t.kind
}

// ID returns the referenced transaction or group ID.
func (t MatchTarget) ID() uuid.UUID {
	return t.id
}

// IsGroup reports whether the target references a transaction group.
func (t MatchTarget) IsGroup() bool {
	return t.kind == TargetGroup
}
