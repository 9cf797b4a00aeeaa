// Package matching contains receipt-to-transaction matching use cases.
package matching

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// ProposeMatchesInput represents the input for a scoring pass over one receipt.
type ProposeMatchesInput struct {
	UserID    uuid.UUID
	ReceiptID uuid.UUID
}

// ProposeMatchesOutput represents the result of a scoring pass.
type ProposeMatchesOutput struct {
	Proposed []*entity.ReceiptTransactionMatch
}

// ProposeMatchesUseCase scores a receipt against its candidate pool and records
// a proposed match for every pairing that clears the threshold.
type ProposeMatchesUseCase struct {
	receiptRepo  adapter.ReceiptRepository
	txnRepo      adapter.TransactionRepository
	groupRepo    adapter.TransactionGroupRepository
	matchRepo    adapter.MatchRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	scorer       *Scorer
}

// NewProposeMatchesUseCase creates a new ProposeMatchesUseCase instance.
func NewProposeMatchesUseCase(
	receiptRepo adapter.ReceiptRepository,
	txnRepo adapter.TransactionRepository,
	groupRepo adapter.TransactionGroupRepository,
	matchRepo adapter.MatchRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	scorer *Scorer,
) *ProposeMatchesUseCase {
	return &ProposeMatchesUseCase{
		receiptRepo:  receiptRepo,
		txnRepo:      txnRepo,
		groupRepo:    groupRepo,
		matchRepo:    matchRepo,
		userRepo:     userRepo,
		emailService: emailService,
		scorer:       scorer,
	}
}

// Execute runs one scoring pass. Candidates that already carry an open match
// (proposed or confirmed) are skipped; rejected matches do not block, so a
// rejected pairing can be re-proposed by a later pass.
func (uc *ProposeMatchesUseCase) Execute(ctx context.Context, input ProposeMatchesInput) (*ProposeMatchesOutput, error) {
	receipt, err := findOwnedReceipt(ctx, uc.receiptRepo, input.ReceiptID, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.txnRepo.FindUngroupedByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	groups, err := uc.groupRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	pool := BuildCandidatePool(transactions, groups)
	scored := make([]ScoredCandidate, 0, len(pool))
	for _, candidate := range pool {
		score := uc.scorer.Score(ctx, receipt, candidate)
		if score.IsMatchWorthy() {
			scored = append(scored, ScoredCandidate{Candidate: candidate, Score: score})
		}
	}
	sortByScoreDesc(scored)

	var proposed []*entity.ReceiptTransactionMatch
	for _, sc := range scored {
		target := sc.Candidate.Target()

		open, err := uc.matchRepo.HasOpenMatchForTarget(ctx, targetRef(target))
		if err != nil {
			return nil, err
		}
		if open {
			continue
		}

		match := entity.NewProposedMatch(input.UserID, receipt.ID, target, sc.Score.Total)
		if err := uc.matchRepo.Create(ctx, match); err != nil {
			return nil, err
		}

		if sc.Candidate.IsGroup() {
			group := sc.Candidate.Group
			group.MatchStatus = entity.GroupMatchStatusProposed
			if err := uc.groupRepo.Update(ctx, group); err != nil {
				return nil, err
			}
		}

		proposed = append(proposed, match)
	}

	uc.notify(ctx, receipt, proposed)

	return &ProposeMatchesOutput{Proposed: proposed}, nil
}

// notify queues a digest email about newly proposed matches. Queueing failures
// are logged and swallowed; they must not fail the scoring pass.
func (uc *ProposeMatchesUseCase) notify(ctx context.Context, receipt *entity.Receipt, proposed []*entity.ReceiptTransactionMatch) {
	if len(proposed) == 0 || uc.emailService == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, receipt.UserID)
	if err != nil || !user.EmailNotifications {
		return
	}

	input := adapter.QueueMatchDigestInput{
		UserEmail:     user.Email,
		UserName:      user.Name,
		ReceiptVendor: receipt.VendorText,
		ProposedCount: len(proposed),
		BestScore:     proposed[0].Score,
	}
	if err := uc.emailService.QueueMatchDigest(ctx, input); err != nil {
		slog.Warn("Failed to queue match digest email",
			"receipt_id", receipt.ID,
			"error", err,
		)
	}
}
