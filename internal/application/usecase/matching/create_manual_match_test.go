package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

func TestCreateManualMatch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("target validation", func(t *testing.T) {
		txnID := uuid.New()
		groupID := uuid.New()

		tests := []struct {
			name          string
			transactionID *uuid.UUID
			groupID       *uuid.UUID
			wantErr       error
		}{
			{
				name:          "both transaction and group",
				transactionID: &txnID,
				groupID:       &groupID,
				wantErr:       domainerror.ErrAmbiguousMatchTarget,
			},
			{
				name:    "neither transaction nor group",
				wantErr: domainerror.ErrMissingMatchTarget,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewCreateManualMatchUseCase(newFakeReceiptRepo(), newFakeTxnRepo(), newFakeGroupRepo(), newFakeMatchRepo())
				_, err := uc.Execute(ctx, CreateManualMatchInput{
					UserID:        userID,
					ReceiptID:     uuid.New(),
					TransactionID: tt.transactionID,
					GroupID:       tt.groupID,
				})
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("matching a transaction confirms immediately and sets the pointer", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"), "")
		txn := entity.NewTransaction(userID, day("2025-03-12"), "SOMETHING ELSE", amount("99.99"))

		matchRepo := newFakeMatchRepo()
		uc := NewCreateManualMatchUseCase(newFakeReceiptRepo(receipt), newFakeTxnRepo(txn), newFakeGroupRepo(), matchRepo)

		out, err := uc.Execute(ctx, CreateManualMatchInput{UserID: userID, ReceiptID: receipt.ID, TransactionID: &txn.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Match.Status != entity.MatchStatusConfirmed {
			t.Errorf("match status = %v, want confirmed", out.Match.Status)
		}
		if !out.Match.IsManualMatch {
			t.Error("match should be flagged manual")
		}
		if out.Match.Score != 0 {
			t.Errorf("manual match score = %d, want 0", out.Match.Score)
		}
		if txn.MatchedReceiptID == nil || *txn.MatchedReceiptID != receipt.ID {
			t.Error("transaction should point at the matched receipt")
		}
	})

	t.Run("matching a group marks it matched", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "TWILIO", amount("45.00"), "")
		group := entity.NewTransactionGroup(userID, "TWILIO (3 charges)", amount("45.00"), 3, day("2025-03-10"))

		uc := NewCreateManualMatchUseCase(newFakeReceiptRepo(receipt), newFakeTxnRepo(), newFakeGroupRepo(group), newFakeMatchRepo())

		out, err := uc.Execute(ctx, CreateManualMatchInput{UserID: userID, ReceiptID: receipt.ID, GroupID: &group.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.Match.Target.IsGroup() {
			t.Error("match target should be the group")
		}
		if group.MatchStatus != entity.GroupMatchStatusMatched {
			t.Errorf("group status = %v, want matched", group.MatchStatus)
		}
		if group.MatchedReceiptID == nil || *group.MatchedReceiptID != receipt.ID {
			t.Error("group should point at the matched receipt")
		}
	})

	t.Run("grouped transaction cannot be matched individually", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "TWILIO", amount("15.00"), "")
		groupID := uuid.New()
		member := entity.NewTransaction(userID, day("2025-03-10"), "TWILIO", amount("15.00"))
		member.GroupID = &groupID

		uc := NewCreateManualMatchUseCase(newFakeReceiptRepo(receipt), newFakeTxnRepo(member), newFakeGroupRepo(), newFakeMatchRepo())

		_, err := uc.Execute(ctx, CreateManualMatchInput{UserID: userID, ReceiptID: receipt.ID, TransactionID: &member.ID})
		if !errors.Is(err, domainerror.ErrTransactionGrouped) {
			t.Errorf("Execute() error = %v, want ErrTransactionGrouped", err)
		}
	})

	t.Run("another user's transaction reads as not found", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "TWILIO", amount("15.00"), "")
		foreign := entity.NewTransaction(uuid.New(), day("2025-03-10"), "TWILIO", amount("15.00"))

		uc := NewCreateManualMatchUseCase(newFakeReceiptRepo(receipt), newFakeTxnRepo(foreign), newFakeGroupRepo(), newFakeMatchRepo())

		_, err := uc.Execute(ctx, CreateManualMatchInput{UserID: userID, ReceiptID: receipt.ID, TransactionID: &foreign.ID})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("Execute() error = %v, want ErrTransactionNotFound", err)
		}
	})
}
