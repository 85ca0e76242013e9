package usecase

import "context"

// ScoreStore persists the points awarded to a receipt under its identifier.
// The usecase layer depends on this interface, not on a concrete backend.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go ScoreStore,IDGenerator
type ScoreStore interface {
	// Put inserts a new (id, points) binding. Bindings are write-once;
	// implementations must reject a second write to the same id.
	Put(ctx context.Context, id string, points int64) error

	// Get returns the points bound to id, or domain.ErrReceiptNotFound when
	// the id is unknown.
	Get(ctx context.Context, id string) (int64, error)
}

// IDGenerator mints opaque identifiers for scored receipts. Two calls in the
// same process lifetime must practically never collide.
type IDGenerator interface {
	NewID() string
}
