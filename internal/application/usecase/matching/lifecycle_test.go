package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

func TestConfirmMatch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	receiptID := uuid.New()

	t.Run("confirming a proposed transaction match sets the pointer", func(t *testing.T) {
		txn := entity.NewTransaction(userID, day("2025-03-10"), "TWILIO", amount("15.00"))
		match := entity.NewProposedMatch(userID, receiptID, valueobject.TransactionTarget(txn.ID), 85)

		uc := NewConfirmMatchUseCase(newFakeTxnRepo(txn), newFakeGroupRepo(), newFakeMatchRepo(match))

		out, err := uc.Execute(ctx, ConfirmMatchInput{UserID: userID, MatchID: match.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Match.Status != entity.MatchStatusConfirmed {
			t.Errorf("status = %v, want confirmed", out.Match.Status)
		}
		if txn.MatchedReceiptID == nil || *txn.MatchedReceiptID != receiptID {
			t.Error("transaction should point at the matched receipt")
		}
	})

	t.Run("confirming a proposed group match marks the group matched", func(t *testing.T) {
		group := entity.NewTransactionGroup(userID, "TWILIO (3 charges)", amount("45.00"), 3, day("2025-03-10"))
		group.MatchStatus = entity.GroupMatchStatusProposed
		match := entity.NewProposedMatch(userID, receiptID, valueobject.GroupTarget(group.ID), 85)

		uc := NewConfirmMatchUseCase(newFakeTxnRepo(), newFakeGroupRepo(group), newFakeMatchRepo(match))

		if _, err := uc.Execute(ctx, ConfirmMatchInput{UserID: userID, MatchID: match.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if group.MatchStatus != entity.GroupMatchStatusMatched {
			t.Errorf("group status = %v, want matched", group.MatchStatus)
		}
		if group.MatchedReceiptID == nil || *group.MatchedReceiptID != receiptID {
			t.Error("group should point at the matched receipt")
		}
	})

	t.Run("non-proposed matches cannot be confirmed", func(t *testing.T) {
		for _, status := range []entity.MatchStatus{entity.MatchStatusConfirmed, entity.MatchStatusRejected} {
			match := entity.NewProposedMatch(userID, receiptID, valueobject.TransactionTarget(uuid.New()), 85)
			match.Status = status

			uc := NewConfirmMatchUseCase(newFakeTxnRepo(), newFakeGroupRepo(), newFakeMatchRepo(match))

			_, err := uc.Execute(ctx, ConfirmMatchInput{UserID: userID, MatchID: match.ID})
			if !errors.Is(err, domainerror.ErrMatchAlreadyConfirmed) {
				t.Errorf("status %v: Execute() error = %v, want ErrMatchAlreadyConfirmed", status, err)
			}
		}
	})

	t.Run("another user's match reads as not found", func(t *testing.T) {
		match := entity.NewProposedMatch(uuid.New(), receiptID, valueobject.TransactionTarget(uuid.New()), 85)

		uc := NewConfirmMatchUseCase(newFakeTxnRepo(), newFakeGroupRepo(), newFakeMatchRepo(match))

		_, err := uc.Execute(ctx, ConfirmMatchInput{UserID: userID, MatchID: match.ID})
		if !errors.Is(err, domainerror.ErrMatchNotFound) {
			t.Errorf("Execute() error = %v, want ErrMatchNotFound", err)
		}
	})
}

func TestRejectMatch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	receiptID := uuid.New()

	t.Run("rejecting a confirmed transaction match clears the pointer", func(t *testing.T) {
		txn := entity.NewTransaction(userID, day("2025-03-10"), "TWILIO", amount("15.00"))
		txn.MatchedReceiptID = &receiptID
		match := entity.NewManualMatch(userID, receiptID, valueobject.TransactionTarget(txn.ID))

		uc := NewRejectMatchUseCase(newFakeTxnRepo(txn), newFakeGroupRepo(), newFakeMatchRepo(match))

		out, err := uc.Execute(ctx, RejectMatchInput{UserID: userID, MatchID: match.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Match.Status != entity.MatchStatusRejected {
			t.Errorf("status = %v, want rejected", out.Match.Status)
		}
		if txn.MatchedReceiptID != nil {
			t.Error("transaction pointer should be cleared")
		}
	})

	t.Run("rejecting a group match resets the group", func(t *testing.T) {
		group := entity.NewTransactionGroup(userID, "TWILIO (3 charges)", amount("45.00"), 3, day("2025-03-10"))
		group.MatchStatus = entity.GroupMatchStatusMatched
		group.MatchedReceiptID = &receiptID
		match := entity.NewManualMatch(userID, receiptID, valueobject.GroupTarget(group.ID))

		uc := NewRejectMatchUseCase(newFakeTxnRepo(), newFakeGroupRepo(group), newFakeMatchRepo(match))

		if _, err := uc.Execute(ctx, RejectMatchInput{UserID: userID, MatchID: match.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if group.MatchStatus != entity.GroupMatchStatusUnmatched {
			t.Errorf("group status = %v, want unmatched", group.MatchStatus)
		}
		if group.MatchedReceiptID != nil {
			t.Error("group pointer should be cleared")
		}
	})

	t.Run("rejecting an already rejected match is a no-op", func(t *testing.T) {
		match := entity.NewProposedMatch(userID, receiptID, valueobject.TransactionTarget(uuid.New()), 85)
		match.Status = entity.MatchStatusRejected

		uc := NewRejectMatchUseCase(newFakeTxnRepo(), newFakeGroupRepo(), newFakeMatchRepo(match))

		out, err := uc.Execute(ctx, RejectMatchInput{UserID: userID, MatchID: match.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Match.Status != entity.MatchStatusRejected {
			t.Errorf("status = %v, want rejected", out.Match.Status)
		}
	})

	t.Run("the match record survives rejection", func(t *testing.T) {
		txn := entity.NewTransaction(userID, day("2025-03-10"), "TWILIO", amount("15.00"))
		match := entity.NewProposedMatch(userID, receiptID, valueobject.TransactionTarget(txn.ID), 85)
		matchRepo := newFakeMatchRepo(match)

		uc := NewRejectMatchUseCase(newFakeTxnRepo(txn), newFakeGroupRepo(), matchRepo)

		if _, err := uc.Execute(ctx, RejectMatchInput{UserID: userID, MatchID: match.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		kept, err := matchRepo.FindByID(ctx, match.ID)
		if err != nil {
			t.Fatalf("rejected match should still be retrievable: %v", err)
		}
		if kept.Status != entity.MatchStatusRejected {
			t.Errorf("kept status = %v, want rejected", kept.Status)
		}
	})
}
