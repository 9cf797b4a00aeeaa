package prediction

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// In-memory fakes for the repository ports, mirroring the error translation the
// real repositories perform.

type fakeTxnRepo struct {
	txns map[uuid.UUID]*entity.Transaction
}

func newFakeTxnRepo(txns ...*entity.Transaction) *fakeTxnRepo {
	r := &fakeTxnRepo{txns: make(map[uuid.UUID]*entity.Transaction)}
	for _, txn := range txns {
		r.txns[txn.ID] = txn
	}
	return r
}

func (r *fakeTxnRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTxnRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, ok := r.txns[id]
	if !ok {
		return nil, domainerror.NewMatchError(domainerror.ErrCodeTransactionNotFound, "transaction not found", domainerror.ErrTransactionNotFound)
	}
	return txn, nil
}

func (r *fakeTxnRepo) FindByIDs(_ context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, id := range ids {
		if txn, ok := r.txns[id]; ok && txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.txns {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) FindUngroupedByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.txns {
		if txn.UserID == userID && !txn.IsGrouped() {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) Update(_ context.Context, txn *entity.Transaction) error {
	r.txns[txn.ID] = txn
	return nil
}

func (r *fakeTxnRepo) ClearMatchedReceipt(_ context.Context, id uuid.UUID) error {
	if txn, ok := r.txns[id]; ok {
		txn.MatchedReceiptID = nil
	}
	return nil
}

type fakePatternRepo struct {
	patterns map[uuid.UUID]*entity.ExpensePattern
}

func newFakePatternRepo(patterns ...*entity.ExpensePattern) *fakePatternRepo {
	r := &fakePatternRepo{patterns: make(map[uuid.UUID]*entity.ExpensePattern)}
	for _, pattern := range patterns {
		r.patterns[pattern.ID] = pattern
	}
	return r
}

func (r *fakePatternRepo) Create(_ context.Context, pattern *entity.ExpensePattern) error {
	r.patterns[pattern.ID] = pattern
	return nil
}

func (r *fakePatternRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ExpensePattern, error) {
	pattern, ok := r.patterns[id]
	if !ok {
		return nil, domainerror.NewPatternError(domainerror.ErrCodePatternNotFound, "expense pattern not found", domainerror.ErrPatternNotFound)
	}
	return pattern, nil
}

func (r *fakePatternRepo) FindByUserAndVendor(_ context.Context, userID uuid.UUID, vendor string) (*entity.ExpensePattern, error) {
	for _, pattern := range r.patterns {
		if pattern.UserID == userID && pattern.NormalizedVendor == vendor {
			return pattern, nil
		}
	}
	return nil, domainerror.NewPatternError(domainerror.ErrCodePatternNotFound, "expense pattern not found", domainerror.ErrPatternNotFound)
}

func (r *fakePatternRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.ExpensePattern, error) {
	var out []*entity.ExpensePattern
	for _, pattern := range r.patterns {
		if pattern.UserID == userID {
			out = append(out, pattern)
		}
	}
	return out, nil
}

func (r *fakePatternRepo) Update(_ context.Context, pattern *entity.ExpensePattern) error {
	r.patterns[pattern.ID] = pattern
	return nil
}

type fakePredictionRepo struct {
	predictions map[uuid.UUID]*entity.TransactionPrediction
}

func newFakePredictionRepo(predictions ...*entity.TransactionPrediction) *fakePredictionRepo {
	r := &fakePredictionRepo{predictions: make(map[uuid.UUID]*entity.TransactionPrediction)}
	for _, prediction := range predictions {
		r.predictions[prediction.ID] = prediction
	}
	return r
}

func (r *fakePredictionRepo) Create(_ context.Context, prediction *entity.TransactionPrediction) error {
	for _, existing := range r.predictions {
		if existing.TransactionID == prediction.TransactionID {
			return domainerror.NewPatternError(domainerror.ErrCodePredictionExists, "prediction already exists for transaction", domainerror.ErrPredictionExists)
		}
	}
	r.predictions[prediction.ID] = prediction
	return nil
}

func (r *fakePredictionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TransactionPrediction, error) {
	prediction, ok := r.predictions[id]
	if !ok {
		return nil, domainerror.NewPatternError(domainerror.ErrCodePredictionNotFound, "prediction not found", domainerror.ErrPredictionNotFound)
	}
	return prediction, nil
}

func (r *fakePredictionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.TransactionPrediction, error) {
	var out []*entity.TransactionPrediction
	for _, prediction := range r.predictions {
		if prediction.UserID == userID {
			out = append(out, prediction)
		}
	}
	return out, nil
}

func (r *fakePredictionRepo) ExistsByTransaction(_ context.Context, transactionID uuid.UUID) (bool, error) {
	for _, prediction := range r.predictions {
		if prediction.TransactionID == transactionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePredictionRepo) Update(_ context.Context, prediction *entity.TransactionPrediction) error {
	r.predictions[prediction.ID] = prediction
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, user := range users {
		r.users[user.ID] = user
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", domainerror.ErrUserNotFound)
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", domainerror.ErrUserNotFound)
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmailService struct {
	matchDigests      []adapter.QueueMatchDigestInput
	predictionDigests []adapter.QueuePredictionDigestInput
}

func (s *fakeEmailService) QueueMatchDigest(_ context.Context, input adapter.QueueMatchDigestInput) error {
	s.matchDigests = append(s.matchDigests, input)
	return nil
}

func (s *fakeEmailService) QueuePredictionDigest(_ context.Context, input adapter.QueuePredictionDigestInput) error {
	s.predictionDigests = append(s.predictionDigests, input)
	return nil
}
