package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// In-memory fakes for the repository ports. They hold entities by ID and return
// the same not-found errors the real repositories translate to.

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
}

func newFakeReceiptRepo(receipts ...*entity.Receipt) *fakeReceiptRepo {
	r := &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
	for _, receipt := range receipts {
		r.receipts[receipt.ID] = receipt
	}
	return r
}

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, ok := r.receipts[id]
	if !ok {
		return nil, domainerror.NewMatchError(domainerror.ErrCodeReceiptNotFound, "receipt not found", domainerror.ErrReceiptNotFound)
	}
	return receipt, nil
}

func (r *fakeReceiptRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, receipt := range r.receipts {
		if receipt.UserID == userID {
			out = append(out, receipt)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) Update(_ context.Context, receipt *entity.Receipt) error {
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.receipts, id)
	return nil
}

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

type fakeGroupRepo struct {
	groups map[uuid.UUID]*entity.TransactionGroup
}

func newFakeGroupRepo(groups ...*entity.TransactionGroup) *fakeGroupRepo {
	r := &fakeGroupRepo{groups: make(map[uuid.UUID]*entity.TransactionGroup)}
	for _, group := range groups {
		r.groups[group.ID] = group
	}
	return r
}

func (r *fakeGroupRepo) Create(_ context.Context, group *entity.TransactionGroup) error {
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, domainerror.NewMatchError(domainerror.ErrCodeGroupNotFound, "transaction group not found", domainerror.ErrGroupNotFound)
	}
	return group, nil
}

func (r *fakeGroupRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.TransactionGroup, error) {
	var out []*entity.TransactionGroup
	for _, group := range r.groups {
		if group.UserID == userID {
			out = append(out, group)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, group *entity.TransactionGroup) error {
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) AssignTransactions(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (int, error) {
	return len(ids), nil
}

type fakeMatchRepo struct {
	matches map[uuid.UUID]*entity.ReceiptTransactionMatch
}

func newFakeMatchRepo(matches ...*entity.ReceiptTransactionMatch) *fakeMatchRepo {
	r := &fakeMatchRepo{matches: make(map[uuid.UUID]*entity.ReceiptTransactionMatch)}
	for _, match := range matches {
		r.matches[match.ID] = match
	}
	return r
}

func (r *fakeMatchRepo) Create(_ context.Context, match *entity.ReceiptTransactionMatch) error {
	r.matches[match.ID] = match
	return nil
}

func (r *fakeMatchRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ReceiptTransactionMatch, error) {
	match, ok := r.matches[id]
	if !ok {
		return nil, domainerror.NewMatchError(domainerror.ErrCodeMatchNotFound, "match not found", domainerror.ErrMatchNotFound)
	}
	return match, nil
}

func (r *fakeMatchRepo) FindByReceipt(_ context.Context, receiptID uuid.UUID) ([]*entity.ReceiptTransactionMatch, error) {
	var out []*entity.ReceiptTransactionMatch
	for _, match := range r.matches {
		if match.ReceiptID == receiptID {
			out = append(out, match)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) Update(_ context.Context, match *entity.ReceiptTransactionMatch) error {
	r.matches[match.ID] = match
	return nil
}

func (r *fakeMatchRepo) HasOpenMatchForTarget(_ context.Context, target adapter.TargetRef) (bool, error) {
	for _, match := range r.matches {
		if match.Status == entity.MatchStatusRejected {
			continue
		}
		id := match.Target.ID()
		if target.TransactionID != nil && !match.Target.IsGroup() && id == *target.TransactionID {
			return true, nil
		}
		if target.GroupID != nil && match.Target.IsGroup() && id == *target.GroupID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMatchRepo) HasConfirmedMatchForTransaction(_ context.Context, transactionID uuid.UUID) (bool, error) {
	for _, match := range r.matches {
		if match.Status == entity.MatchStatusConfirmed && !match.Target.IsGroup() && match.Target.ID() == transactionID {
			return true, nil
		}
	}
	return false, nil
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

// fakeAliases resolves aliases from a fixed map.
type fakeAliases struct {
	aliases map[string]string
}

func (a *fakeAliases) CanonicalAlias(_ context.Context, vendor string) (string, bool, error) {
	if a == nil || a.aliases == nil {
		return "", false, nil
	}
	alias, ok := a.aliases[vendor]
	return alias, ok, nil
}

// fakeSimilarity returns a fixed similarity for every pair.
type fakeSimilarity struct {
	score float64
}

func (s *fakeSimilarity) Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	return s.score
}

func newTestScorer() *Scorer {
	return NewScorer(&fakeAliases{}, &fakeSimilarity{})
}
