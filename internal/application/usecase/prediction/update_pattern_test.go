package prediction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

func boolPtr(b bool) *bool { return &b }

func TestUpdatePattern(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("suppress and unsuppress", func(t *testing.T) {
		pattern := patternWith(userID, "TWILIO", 4, 1)
		uc := NewUpdatePatternUseCase(newFakePatternRepo(pattern))

		out, err := uc.Execute(ctx, UpdatePatternInput{UserID: userID, PatternID: pattern.ID, IsSuppressed: boolPtr(true)})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.Pattern.IsSuppressed {
			t.Error("pattern should be suppressed")
		}

		out, err = uc.Execute(ctx, UpdatePatternInput{UserID: userID, PatternID: pattern.ID, IsSuppressed: boolPtr(false)})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Pattern.IsSuppressed {
			t.Error("pattern should be unsuppressed")
		}
	})

	t.Run("nil fields leave flags untouched", func(t *testing.T) {
		pattern := patternWith(userID, "TWILIO", 4, 1)
		pattern.IsSuppressed = true
		uc := NewUpdatePatternUseCase(newFakePatternRepo(pattern))

		out, err := uc.Execute(ctx, UpdatePatternInput{UserID: userID, PatternID: pattern.ID, RequiresReceiptMatch: boolPtr(true)})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.Pattern.IsSuppressed {
			t.Error("suppression flag should be untouched")
		}
		if !out.Pattern.RequiresReceiptMatch {
			t.Error("receipt requirement should be set")
		}
	})

	t.Run("another user's pattern reads as not found", func(t *testing.T) {
		pattern := patternWith(uuid.New(), "TWILIO", 4, 1)
		uc := NewUpdatePatternUseCase(newFakePatternRepo(pattern))

		_, err := uc.Execute(ctx, UpdatePatternInput{UserID: userID, PatternID: pattern.ID, IsSuppressed: boolPtr(true)})
		if !errors.Is(err, domainerror.ErrPatternNotFound) {
			t.Errorf("Execute() error = %v, want ErrPatternNotFound", err)
		}
	})
}

func TestListPatterns(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	business := patternWith(userID, "TWILIO", 4, 1)
	personal := patternWith(userID, "NETFLIX", 1, 4)
	fresh := patternWith(userID, "NEW VENDOR", 0, 0)
	foreign := patternWith(uuid.New(), "OTHER", 9, 0)

	uc := NewListPatternsUseCase(newFakePatternRepo(business, personal, fresh, foreign))

	out, err := uc.Execute(ctx, ListPatternsInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Patterns) != 3 {
		t.Fatalf("listed %d patterns, want 3", len(out.Patterns))
	}

	want := map[string]valueobject.Classification{
		"TWILIO":     valueobject.ClassificationBusiness,
		"NETFLIX":    valueobject.ClassificationPersonal,
		"NEW VENDOR": valueobject.ClassificationUndetermined,
	}
	for _, summary := range out.Patterns {
		if got := want[summary.Pattern.NormalizedVendor]; summary.Classification != got {
			t.Errorf("%s classified %v, want %v", summary.Pattern.NormalizedVendor, summary.Classification, got)
		}
	}
}

func TestCreateManualOverride(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a confirmed override", func(t *testing.T) {
		txn := newTxn(userID, "LOCAL BAKERY")
		uc := NewCreateManualOverrideUseCase(newFakeTxnRepo(txn), newFakePredictionRepo())

		out, err := uc.Execute(ctx, CreateManualOverrideInput{UserID: userID, TransactionID: txn.ID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !out.Prediction.IsManualOverride {
			t.Error("prediction should be flagged as a manual override")
		}
		if out.Prediction.Status != entity.PredictionStatusConfirmed {
			t.Errorf("status = %v, want confirmed", out.Prediction.Status)
		}
		if out.Prediction.PatternID != nil {
			t.Error("override should have no backing pattern")
		}
	})

	t.Run("refuses a second prediction for the transaction", func(t *testing.T) {
		txn := newTxn(userID, "LOCAL BAKERY")
		existing := entity.NewManualOverridePrediction(userID, txn.ID)
		uc := NewCreateManualOverrideUseCase(newFakeTxnRepo(txn), newFakePredictionRepo(existing))

		_, err := uc.Execute(ctx, CreateManualOverrideInput{UserID: userID, TransactionID: txn.ID})
		if !errors.Is(err, domainerror.ErrPredictionExists) {
			t.Errorf("Execute() error = %v, want ErrPredictionExists", err)
		}
	})
}
