package usecase

import (
	"context"
	"fmt"

	"receipt-processor/internal/domain"
)

// ReceiptUseCase orchestrates receipt submission and point lookup.
type ReceiptUseCase struct {
	store ScoreStore
	ids   IDGenerator
}

// NewReceiptUseCase creates a new instance of the usecase.
func NewReceiptUseCase(store ScoreStore, ids IDGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{store: store, ids: ids}
}

// Process validates and scores a submitted receipt document, binds the score
// to a freshly minted identifier and returns the resulting ScoredReceipt.
// Every submission gets a fresh identifier, identical content included. An
// invalid document allocates no identifier and touches no storage.
func (uc *ReceiptUseCase) Process(ctx context.Context, document []byte) (domain.ScoredReceipt, error) {
	receipt, err := ParseReceipt(document)
	if err != nil {
		return domain.ScoredReceipt{}, err
	}

	points, err := Score(receipt)
	if err != nil {
		return domain.ScoredReceipt{}, fmt.Errorf("could not score receipt: %w", err)
	}

	scored := domain.ScoredReceipt{ID: uc.ids.NewID(), Points: points}
	if err := uc.store.Put(ctx, scored.ID, scored.Points); err != nil {
		return domain.ScoredReceipt{}, fmt.Errorf("could not store score for receipt %s: %w", scored.ID, err)
	}
	return scored, nil
}

// Points returns the score bound to id, or domain.ErrReceiptNotFound.
func (uc *ReceiptUseCase) Points(ctx context.Context, id string) (int64, error) {
	points, err := uc.store.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("could not look up receipt %s: %w", id, err)
	}
	return points, nil
}
