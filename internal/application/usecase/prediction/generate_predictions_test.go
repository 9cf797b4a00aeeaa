package prediction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/domain/entity"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTxn(userID uuid.UUID, description string) *entity.Transaction {
	return entity.NewTransaction(userID, day("2025-03-10"), description, decimal.NewFromInt(20))
}

func patternWith(userID uuid.UUID, vendor string, confirms, rejects int) *entity.ExpensePattern {
	p := entity.NewExpensePattern(userID, vendor)
	p.ConfirmCount = confirms
	p.RejectCount = rejects
	p.OccurrenceCount = confirms + rejects
	return p
}

func TestGeneratePredictions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	user.ID = userID

	newUseCase := func(txnRepo *fakeTxnRepo, patternRepo *fakePatternRepo, predictionRepo *fakePredictionRepo, emails *fakeEmailService) *GeneratePredictionsUseCase {
		return NewGeneratePredictionsUseCase(txnRepo, patternRepo, predictionRepo, newFakeUserRepo(user), emails)
	}

	t.Run("generates a business prediction for a confirmed-heavy pattern", func(t *testing.T) {
		txn := newTxn(userID, "TWILIO")
		pattern := patternWith(userID, "TWILIO", 4, 1)

		predictionRepo := newFakePredictionRepo()
		emails := &fakeEmailService{}
		uc := newUseCase(newFakeTxnRepo(txn), newFakePatternRepo(pattern), predictionRepo, emails)

		out, err := uc.Execute(ctx, GeneratePredictionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Generated) != 1 {
			t.Fatalf("generated %d predictions, want 1", len(out.Generated))
		}

		got := out.Generated[0]
		if got.IsPersonalPrediction {
			t.Error("prediction should be a business call")
		}
		if got.Status != entity.PredictionStatusPending {
			t.Errorf("status = %v, want pending", got.Status)
		}
		if got.ConfidenceScore != 0.8 {
			t.Errorf("confidence score = %v, want 0.8", got.ConfidenceScore)
		}
		if got.ConfidenceLevel != valueobject.ConfidenceHigh {
			t.Errorf("confidence level = %v, want high", got.ConfidenceLevel)
		}
		if len(emails.predictionDigests) != 1 {
			t.Errorf("queued %d digests, want 1", len(emails.predictionDigests))
		}
	})

	t.Run("generates a personal prediction for a reject-heavy pattern", func(t *testing.T) {
		txn := newTxn(userID, "NETFLIX")
		pattern := patternWith(userID, "NETFLIX", 1, 4)

		uc := newUseCase(newFakeTxnRepo(txn), newFakePatternRepo(pattern), newFakePredictionRepo(), &fakeEmailService{})

		out, err := uc.Execute(ctx, GeneratePredictionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Generated) != 1 {
			t.Fatalf("generated %d predictions, want 1", len(out.Generated))
		}
		if !out.Generated[0].IsPersonalPrediction {
			t.Error("prediction should be a personal call")
		}
	})

	t.Run("gating", func(t *testing.T) {
		receiptID := uuid.New()

		matched := newTxn(userID, "GITHUB")
		matched.MatchedReceiptID = &receiptID

		tests := []struct {
			name    string
			txn     *entity.Transaction
			pattern *entity.ExpensePattern
			setup   func(p *entity.ExpensePattern)
			want    int
		}{
			{
				name: "no pattern for vendor",
				txn:  newTxn(userID, "UNKNOWN VENDOR"),
				want: 0,
			},
			{
				name:    "suppressed pattern",
				txn:     newTxn(userID, "TWILIO"),
				pattern: patternWith(userID, "TWILIO", 4, 1),
				setup:   func(p *entity.ExpensePattern) { p.IsSuppressed = true },
				want:    0,
			},
			{
				name:    "undetermined pattern still predicts",
				txn:     newTxn(userID, "TWILIO"),
				pattern: patternWith(userID, "TWILIO", 0, 2),
				want:    1,
			},
			{
				name:    "no feedback yet still predicts",
				txn:     newTxn(userID, "TWILIO"),
				pattern: patternWith(userID, "TWILIO", 0, 0),
				want:    1,
			},
			{
				name:    "requires receipt match and has none",
				txn:     newTxn(userID, "GITHUB"),
				pattern: patternWith(userID, "GITHUB", 4, 1),
				setup:   func(p *entity.ExpensePattern) { p.RequiresReceiptMatch = true },
				want:    0,
			},
			{
				name:    "requires receipt match and has one",
				txn:     matched,
				pattern: patternWith(userID, "GITHUB", 4, 1),
				setup:   func(p *entity.ExpensePattern) { p.RequiresReceiptMatch = true },
				want:    1,
			},
			{
				name: "blank vendor",
				txn:  newTxn(userID, "   "),
				want: 0,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				patternRepo := newFakePatternRepo()
				if tt.pattern != nil {
					if tt.setup != nil {
						tt.setup(tt.pattern)
					}
					patternRepo.patterns[tt.pattern.ID] = tt.pattern
				}

				uc := newUseCase(newFakeTxnRepo(tt.txn), patternRepo, newFakePredictionRepo(), &fakeEmailService{})

				out, err := uc.Execute(ctx, GeneratePredictionsInput{UserID: userID})
				if err != nil {
					t.Fatalf("Execute() error = %v", err)
				}
				if len(out.Generated) != tt.want {
					t.Errorf("generated %d predictions, want %d", len(out.Generated), tt.want)
				}
			})
		}
	})

	t.Run("an undetermined pattern predicts business", func(t *testing.T) {
		txn := newTxn(userID, "CORNER CAFE")
		pattern := patternWith(userID, "CORNER CAFE", 0, 2)

		predictionRepo := newFakePredictionRepo()
		uc := newUseCase(newFakeTxnRepo(txn), newFakePatternRepo(pattern), predictionRepo, &fakeEmailService{})

		out, err := uc.Execute(ctx, GeneratePredictionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Generated) != 1 {
			t.Fatalf("generated %d predictions, want 1", len(out.Generated))
		}

		got := out.Generated[0]
		if got.IsPersonalPrediction {
			t.Error("an undetermined classification should predict business")
		}
		if got.ConfidenceScore != 0 {
			t.Errorf("confidence score = %v, want 0 with no confirms", got.ConfidenceScore)
		}
		if got.ConfidenceLevel != valueobject.ConfidenceLow {
			t.Errorf("confidence level = %v, want low", got.ConfidenceLevel)
		}
	})

	t.Run("an existing prediction is never replaced", func(t *testing.T) {
		txn := newTxn(userID, "TWILIO")
		pattern := patternWith(userID, "TWILIO", 4, 1)
		existing := entity.NewPatternPrediction(userID, txn.ID, pattern.ID, 0.8, valueobject.ConfidenceHigh, false)

		emails := &fakeEmailService{}
		uc := newUseCase(newFakeTxnRepo(txn), newFakePatternRepo(pattern), newFakePredictionRepo(existing), emails)

		out, err := uc.Execute(ctx, GeneratePredictionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Generated) != 0 {
			t.Errorf("generated %d predictions, want 0", len(out.Generated))
		}
		if out.Skipped != 1 {
			t.Errorf("skipped = %d, want 1", out.Skipped)
		}
		if len(emails.predictionDigests) != 0 {
			t.Errorf("queued %d digests, want 0 when nothing was generated", len(emails.predictionDigests))
		}
	})

	t.Run("a transaction scope limits the pass", func(t *testing.T) {
		inScope := newTxn(userID, "TWILIO")
		outOfScope := newTxn(userID, "NETFLIX")
		foreign := entity.NewTransaction(uuid.New(), day("2025-03-10"), "TWILIO", decimal.NewFromInt(20))

		patternRepo := newFakePatternRepo(
			patternWith(userID, "TWILIO", 4, 1),
			patternWith(userID, "NETFLIX", 1, 4),
		)

		uc := newUseCase(newFakeTxnRepo(inScope, outOfScope, foreign), patternRepo, newFakePredictionRepo(), &fakeEmailService{})

		out, err := uc.Execute(ctx, GeneratePredictionsInput{
			UserID:         userID,
			TransactionIDs: []uuid.UUID{inScope.ID, foreign.ID},
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Generated) != 1 {
			t.Fatalf("generated %d predictions, want 1", len(out.Generated))
		}
		if out.Generated[0].TransactionID != inScope.ID {
			t.Errorf("generated for transaction %v, want the in-scope one", out.Generated[0].TransactionID)
		}
		if out.Skipped != 0 {
			t.Errorf("skipped = %d, want 0 when the scope excludes the rest", out.Skipped)
		}
	})

	t.Run("processor noise in the description still finds the pattern", func(t *testing.T) {
		txn := newTxn(userID, "PAYPAL *TWILIO 12345")
		pattern := patternWith(userID, "TWILIO", 4, 1)

		uc := newUseCase(newFakeTxnRepo(txn), newFakePatternRepo(pattern), newFakePredictionRepo(), &fakeEmailService{})

		out, err := uc.Execute(ctx, GeneratePredictionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Generated) != 1 {
			t.Fatalf("generated %d predictions, want 1", len(out.Generated))
		}
	})
}
