package matching

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/domain/entity"
)

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestProposeMatches(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	user.ID = userID

	t.Run("proposes only candidates at or above threshold", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"), "")

		// Exact amount, same day, exact vendor: 40+35+25 = 100.
		strong := entity.NewTransaction(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"))
		// Exact amount and day, unrelated vendor: 40+35+0 = 75.
		decent := entity.NewTransaction(userID, day("2025-03-10"), "SHELL GAS", amount("14.50"))
		// Amount off by 0.50, ten days out, unrelated vendor: 20+0+0 = 20.
		weak := entity.NewTransaction(userID, day("2025-03-20"), "SHELL GAS", amount("15.00"))

		matchRepo := newFakeMatchRepo()
		uc := NewProposeMatchesUseCase(
			newFakeReceiptRepo(receipt),
			newFakeTxnRepo(strong, decent, weak),
			newFakeGroupRepo(),
			matchRepo,
			newFakeUserRepo(user),
			&fakeEmailService{},
			newTestScorer(),
		)

		out, err := uc.Execute(ctx, ProposeMatchesInput{UserID: userID, ReceiptID: receipt.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Proposed) != 2 {
			t.Fatalf("Execute() proposed %d matches, want 2", len(out.Proposed))
		}
		if out.Proposed[0].Score != 100 {
			t.Errorf("best proposal score = %d, want 100", out.Proposed[0].Score)
		}
		if out.Proposed[0].Target.ID() != strong.ID {
			t.Errorf("best proposal targets %v, want strongest candidate", out.Proposed[0].Target.ID())
		}
		for _, match := range out.Proposed {
			if match.Status != entity.MatchStatusProposed {
				t.Errorf("proposal status = %v, want proposed", match.Status)
			}
			if match.Target.ID() == weak.ID {
				t.Error("below-threshold candidate was proposed")
			}
		}
	})

	t.Run("grouped transactions enter the pool only through their group", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "TWILIO", amount("45.00"), "")

		group := entity.NewTransactionGroup(userID, "TWILIO (3 charges)", amount("45.00"), 3, day("2025-03-10"))
		member := entity.NewTransaction(userID, day("2025-03-10"), "TWILIO", amount("15.00"))
		member.GroupID = &group.ID

		matchRepo := newFakeMatchRepo()
		uc := NewProposeMatchesUseCase(
			newFakeReceiptRepo(receipt),
			newFakeTxnRepo(member),
			newFakeGroupRepo(group),
			matchRepo,
			newFakeUserRepo(user),
			&fakeEmailService{},
			newTestScorer(),
		)

		out, err := uc.Execute(ctx, ProposeMatchesInput{UserID: userID, ReceiptID: receipt.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Proposed) != 1 {
			t.Fatalf("Execute() proposed %d matches, want 1", len(out.Proposed))
		}
		if !out.Proposed[0].Target.IsGroup() || out.Proposed[0].Target.ID() != group.ID {
			t.Error("proposal should target the group, not its member transaction")
		}
		if group.MatchStatus != entity.GroupMatchStatusProposed {
			t.Errorf("group status = %v, want proposed", group.MatchStatus)
		}
	})

	t.Run("open match blocks re-proposal but rejected does not", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"), "")
		blocked := entity.NewTransaction(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"))
		free := entity.NewTransaction(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"))

		otherReceipt := uuid.New()
		openMatch := entity.NewProposedMatch(userID, otherReceipt, entity.TransactionCandidate(blocked).Target(), 80)
		rejected := entity.NewProposedMatch(userID, otherReceipt, entity.TransactionCandidate(free).Target(), 80)
		rejected.Status = entity.MatchStatusRejected

		uc := NewProposeMatchesUseCase(
			newFakeReceiptRepo(receipt),
			newFakeTxnRepo(blocked, free),
			newFakeGroupRepo(),
			newFakeMatchRepo(openMatch, rejected),
			newFakeUserRepo(user),
			&fakeEmailService{},
			newTestScorer(),
		)

		out, err := uc.Execute(ctx, ProposeMatchesInput{UserID: userID, ReceiptID: receipt.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Proposed) != 1 {
			t.Fatalf("Execute() proposed %d matches, want 1", len(out.Proposed))
		}
		if out.Proposed[0].Target.ID() != free.ID {
			t.Error("proposal should target the transaction whose old match was rejected")
		}
	})

	t.Run("queues a digest when the user wants notifications", func(t *testing.T) {
		receipt := entity.NewReceipt(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"), "")
		txn := entity.NewTransaction(userID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"))

		emails := &fakeEmailService{}
		uc := NewProposeMatchesUseCase(
			newFakeReceiptRepo(receipt),
			newFakeTxnRepo(txn),
			newFakeGroupRepo(),
			newFakeMatchRepo(),
			newFakeUserRepo(user),
			emails,
			newTestScorer(),
		)

		if _, err := uc.Execute(ctx, ProposeMatchesInput{UserID: userID, ReceiptID: receipt.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(emails.matchDigests) != 1 {
			t.Fatalf("queued %d digests, want 1", len(emails.matchDigests))
		}
		if emails.matchDigests[0].BestScore != 100 {
			t.Errorf("digest best score = %d, want 100", emails.matchDigests[0].BestScore)
		}
	})

	t.Run("skips the digest when notifications are off", func(t *testing.T) {
		quiet := entity.NewUser("quiet@example.com", "Quiet", "hash")
		quiet.EmailNotifications = false
		receipt := entity.NewReceipt(quiet.ID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"), "")
		txn := entity.NewTransaction(quiet.ID, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"))

		emails := &fakeEmailService{}
		uc := NewProposeMatchesUseCase(
			newFakeReceiptRepo(receipt),
			newFakeTxnRepo(txn),
			newFakeGroupRepo(),
			newFakeMatchRepo(),
			newFakeUserRepo(quiet),
			emails,
			newTestScorer(),
		)

		if _, err := uc.Execute(ctx, ProposeMatchesInput{UserID: quiet.ID, ReceiptID: receipt.ID}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(emails.matchDigests) != 0 {
			t.Errorf("queued %d digests, want 0", len(emails.matchDigests))
		}
	})

	t.Run("another user's receipt reads as not found", func(t *testing.T) {
		stranger := uuid.New()
		receipt := entity.NewReceipt(stranger, day("2025-03-10"), "BLUE BOTTLE COFFEE", amount("14.50"), "")

		uc := NewProposeMatchesUseCase(
			newFakeReceiptRepo(receipt),
			newFakeTxnRepo(),
			newFakeGroupRepo(),
			newFakeMatchRepo(),
			newFakeUserRepo(user),
			&fakeEmailService{},
			newTestScorer(),
		)

		if _, err := uc.Execute(ctx, ProposeMatchesInput{UserID: userID, ReceiptID: receipt.ID}); err == nil {
			t.Fatal("Execute() expected error for another user's receipt")
		}
	})
}
