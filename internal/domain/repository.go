package domain

import "context"

// Repository defines the contract for idea persistence
type Repository interface {
	// WithinTx runs fn in a single transaction. The transaction commits when
	// fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// ListByOwner retrieves every idea of an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*Idea, error)
}

// Tx is the set of operations available inside a transaction
type Tx interface {
	// LockBoard serializes transactions touching the same owner's board. It
	// must be called before any read that feeds a placement plan.
	LockBoard(ctx context.Context, ownerID string) error

	// Insert persists a new idea
	Insert(ctx context.Context, idea *Idea) error

	// GetByID retrieves an idea by ID, returning ErrIdeaNotFound if absent
	GetByID(ctx context.Context, id string) (*Idea, error)

	// ListByOwner retrieves every idea of an owner, locked for update
	ListByOwner(ctx context.Context, ownerID string) ([]*Idea, error)

	// ListInStage retrieves the ideas of one (owner, stage) group ordered by
	// position, locked for update
	ListInStage(ctx context.Context, ownerID string, stage Stage) ([]*Idea, error)

	// UpdateText updates title and description only
	UpdateText(ctx context.Context, idea *Idea) error

	// UpdatePlacements writes stage and position for each placement
	UpdatePlacements(ctx context.Context, plan []Placement) error

	// Delete removes an idea
	Delete(ctx context.Context, id string) error
}
