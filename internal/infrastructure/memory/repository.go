// Package memory is an in-process idea repository. Transactions are
// serialized by a single lock and applied to a working copy that replaces
// the committed state only when the transaction succeeds.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dmehra2102/IdeaBoard/internal/domain"
)

type Repository struct {
	mu    sync.RWMutex
	ideas map[string]*domain.Idea
}

func NewRepository() *Repository {
	return &Repository{ideas: make(map[string]*domain.Idea)}
}

func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	working := make(map[string]*domain.Idea, len(r.ideas))
	for id, idea := range r.ideas {
		working[id] = idea.Clone()
	}

	t := &tx{ideas: working}
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := t.checkUnique(); err != nil {
		return err
	}

	r.ideas = working
	return nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return listByOwner(r.ideas, ownerID), nil
}

type tx struct {
	ideas map[string]*domain.Idea
}

// LockBoard is a no-op: WithinTx already holds the repository lock.
func (t *tx) LockBoard(ctx context.Context, ownerID string) error {
	return nil
}

func (t *tx) Insert(ctx context.Context, idea *domain.Idea) error {
	if _, exists := t.ideas[idea.ID]; exists {
		return fmt.Errorf("failed to insert idea %s: duplicate id", idea.ID)
	}
	t.ideas[idea.ID] = idea.Clone()
	return nil
}

func (t *tx) GetByID(ctx context.Context, id string) (*domain.Idea, error) {
	idea, ok := t.ideas[id]
	if !ok {
		return nil, domain.ErrIdeaNotFound
	}
	return idea.Clone(), nil
}

func (t *tx) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Idea, error) {
	return listByOwner(t.ideas, ownerID), nil
}

func (t *tx) ListInStage(ctx context.Context, ownerID string, stage domain.Stage) ([]*domain.Idea, error) {
	var out []*domain.Idea
	for _, idea := range t.ideas {
		if idea.OwnerID == ownerID && idea.Stage == stage {
			out = append(out, idea.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *domain.Idea) int { return a.Position - b.Position })
	return out, nil
}

func (t *tx) UpdateText(ctx context.Context, idea *domain.Idea) error {
	stored, ok := t.ideas[idea.ID]
	if !ok {
		return domain.ErrIdeaNotFound
	}
	stored.Title = idea.Title
	stored.Description = idea.Description
	stored.UpdatedAt = idea.UpdatedAt
	return nil
}

func (t *tx) UpdatePlacements(ctx context.Context, plan []domain.Placement) error {
	for _, p := range plan {
		stored, ok := t.ideas[p.ID]
		if !ok {
			return domain.ErrIdeaNotFound
		}
		stored.Stage = p.Stage
		stored.Position = p.Position
	}
	return nil
}

func (t *tx) Delete(ctx context.Context, id string) error {
	if _, ok := t.ideas[id]; !ok {
		return domain.ErrIdeaNotFound
	}
	delete(t.ideas, id)
	return nil
}

// checkUnique mirrors the deferred (owner, stage, position) constraint of the
// postgres schema: it runs once, at commit.
func (t *tx) checkUnique() error {
	type slot struct {
		owner    string
		stage    domain.Stage
		position int
	}
	seen := make(map[slot]bool, len(t.ideas))
	for _, idea := range t.ideas {
		s := slot{idea.OwnerID, idea.Stage, idea.Position}
		if seen[s] {
			return domain.ErrPositionClash
		}
		seen[s] = true
	}
	return nil
}

func listByOwner(ideas map[string]*domain.Idea, ownerID string) []*domain.Idea {
	out := make([]*domain.Idea, 0)
	for _, id := range slices.Sorted(maps.Keys(ideas)) {
		if idea := ideas[id]; idea.OwnerID == ownerID {
			out = append(out, idea.Clone())
		}
	}
	return out
}
