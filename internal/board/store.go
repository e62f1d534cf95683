// Package board maintains each owner's idea board: the per-stage ordering of
// ideas and every operation that inserts, moves, reorders or removes them.
//
// Each operation runs in one repository transaction. Positions inside an
// (owner, stage) group are kept at 0..count-1 when StrictDensity is set; with
// it unset, MoveToStage and Delete leave the vacated slot empty and target
// positions are taken as given.
package board

import (
	"context"

	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ListCache caches List results per owner. Every Invalidate advances the
// owner's generation; Set only stores a list when the generation is still the
// one read before that list was loaded.
type ListCache interface {
	Get(ctx context.Context, ownerID string) ([]*domain.Idea, bool, error)
	Generation(ctx context.Context, ownerID string) (int64, error)
	Set(ctx context.Context, ownerID string, gen int64, ideas []*domain.Idea) (bool, error)
	Invalidate(ctx context.Context, ownerID string) error
}

type Options struct {
	// StrictDensity re-densifies vacated stages and clamps target positions.
	StrictDensity bool

	// Cache is optional.
	Cache ListCache
}

type Store struct {
	repo   domain.Repository
	cache  ListCache
	strict bool
	logger *zap.Logger
	tracer trace.Tracer
}

func NewStore(repo domain.Repository, logger *zap.Logger, opts Options) *Store {
	return &Store{
		repo:   repo,
		cache:  opts.Cache,
		strict: opts.StrictDensity,
		logger: logger,
		tracer: otel.Tracer("board-store"),
	}
}

// List returns every idea of ownerID ordered by stage and position. An
// anonymous caller gets an empty board.
func (s *Store) List(ctx context.Context, ownerID string) ([]*domain.Idea, error) {
	ctx, span := s.tracer.Start(ctx, "board.List")
	defer span.End()

	if ownerID == "" {
		return []*domain.Idea{}, nil
	}
	span.SetAttributes(attribute.String("user.id", ownerID))

	// cacheable stays false when the cache is absent or failing.
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		ideas, ok, err := s.cache.Get(ctx, ownerID)
		switch {
		case err != nil:
			cacheLookupsTotal.WithLabelValues("error").Inc()
			s.logger.Warn("idea cache lookup failed", zap.Error(err), zap.String("user_id", ownerID))
		case ok:
			cacheLookupsTotal.WithLabelValues("hit").Inc()
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return ideas, nil
		default:
			cacheLookupsTotal.WithLabelValues("miss").Inc()
			if gen, err = s.cache.Generation(ctx, ownerID); err != nil {
				s.logger.Warn("idea cache generation lookup failed", zap.Error(err), zap.String("user_id", ownerID))
			} else {
				cacheable = true
			}
		}
	}

	ideas, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	domain.SortIdeas(ideas)

	if cacheable {
		stored, err := s.cache.Set(ctx, ownerID, gen, ideas)
		switch {
		case err != nil:
			s.logger.Warn("failed to cache ideas", zap.Error(err), zap.String("user_id", ownerID))
		case !stored:
			cacheLookupsTotal.WithLabelValues("stale").Inc()
			s.logger.Debug("board changed while listing, result not cached", zap.String("user_id", ownerID))
		}
	}

	span.SetAttributes(attribute.Int("returned_count", len(ideas)))
	return ideas, nil
}

// Create appends a new idea at the end of stage.
func (s *Store) Create(ctx context.Context, ownerID, title, description string, stage domain.Stage) (*domain.Idea, error) {
	ctx, span := s.tracer.Start(ctx, "board.Create")
	defer span.End()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	idea, err := domain.NewIdea(ownerID, title, description, stage)
	if err != nil {
		return nil, err
	}

	err = s.withinBoard(ctx, ownerID, func(ctx context.Context, tx domain.Tx) error {
		group, err := tx.ListInStage(ctx, ownerID, stage)
		if err != nil {
			return err
		}
		idea.Position = domain.NextPosition(group)
		return tx.Insert(ctx, idea)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("idea.id", idea.ID),
		attribute.Int("idea.position", idea.Position),
	)
	s.invalidate(ctx, ownerID)

	s.logger.Debug("idea created",
		zap.String("idea_id", idea.ID),
		zap.String("user_id", ownerID),
		zap.String("stage", string(stage)),
		zap.Int("position", idea.Position),
	)
	return idea, nil
}

// Rename replaces the title and description of an idea.
func (s *Store) Rename(ctx context.Context, ownerID, id, title, description string) (*domain.Idea, error) {
	ctx, span := s.tracer.Start(ctx, "board.Rename")
	defer span.End()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	span.SetAttributes(attribute.String("idea.id", id))

	var idea *domain.Idea
	err := s.withinBoard(ctx, ownerID, func(ctx context.Context, tx domain.Tx) error {
		var err error
		if idea, err = getOwned(ctx, tx, ownerID, id); err != nil {
			return err
		}
		if err := idea.Rename(title, description); err != nil {
			return err
		}
		return tx.UpdateText(ctx, idea)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	return idea, nil
}

// MoveToStage places an idea in target at position, shifting the ideas
// already at or after position down by one.
func (s *Store) MoveToStage(ctx context.Context, ownerID, id string, target domain.Stage, position int) (*domain.Idea, error) {
	ctx, span := s.tracer.Start(ctx, "board.MoveToStage")
	defer span.End()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if !target.Valid() {
		return nil, domain.ErrInvalidStage
	}
	if position < 0 {
		return nil, domain.ErrInvalidPosition
	}
	span.SetAttributes(
		attribute.String("idea.id", id),
		attribute.String("stage.target", string(target)),
		attribute.Int("position.target", position),
	)

	var idea *domain.Idea
	err := s.withinBoard(ctx, ownerID, func(ctx context.Context, tx domain.Tx) error {
		var err error
		if idea, err = getOwned(ctx, tx, ownerID, id); err != nil {
			return err
		}

		if s.strict && idea.Stage == target {
			return s.reorderWithin(ctx, tx, idea, position, "move")
		}

		var plan []domain.Placement
		if s.strict {
			origin, err := tx.ListInStage(ctx, ownerID, idea.Stage)
			if err != nil {
				return err
			}
			plan = domain.PlanCompact(origin, idea.ID)
		}

		dest, err := tx.ListInStage(ctx, ownerID, target)
		if err != nil {
			return err
		}
		if s.strict {
			position = domain.Clamp(position, len(dest))
		}
		plan = append(plan, domain.PlanInsert(dest, idea.ID, position)...)
		plan = append(plan, domain.Placement{ID: idea.ID, Stage: target, Position: position})

		if err := tx.UpdatePlacements(ctx, plan); err != nil {
			return err
		}
		positionShiftsTotal.WithLabelValues("move").Add(float64(len(plan) - 1))

		idea.Stage = target
		idea.Position = position
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.invalidate(ctx, ownerID)

	s.logger.Debug("idea moved",
		zap.String("idea_id", idea.ID),
		zap.String("user_id", ownerID),
		zap.String("stage", string(idea.Stage)),
		zap.Int("position", idea.Position),
	)
	return idea, nil
}

// Reorder moves an idea to position within its current stage.
func (s *Store) Reorder(ctx context.Context, ownerID, id string, position int) (*domain.Idea, error) {
	ctx, span := s.tracer.Start(ctx, "board.Reorder")
	defer span.End()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if position < 0 {
		return nil, domain.ErrInvalidPosition
	}
	span.SetAttributes(
		attribute.String("idea.id", id),
		attribute.Int("position.target", position),
	)

	var (
		idea    *domain.Idea
		changed bool
	)
	err := s.withinBoard(ctx, ownerID, func(ctx context.Context, tx domain.Tx) error {
		var err error
		if idea, err = getOwned(ctx, tx, ownerID, id); err != nil {
			return err
		}
		from := idea.Position
		if err := s.reorderWithin(ctx, tx, idea, position, "reorder"); err != nil {
			return err
		}
		changed = idea.Position != from
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if changed {
		s.invalidate(ctx, ownerID)
	}
	return idea, nil
}

// Delete removes an idea.
func (s *Store) Delete(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "board.Delete")
	defer span.End()

	if ownerID == "" {
		return domain.ErrUnauthenticated
	}
	span.SetAttributes(attribute.String("idea.id", id))

	err := s.withinBoard(ctx, ownerID, func(ctx context.Context, tx domain.Tx) error {
		idea, err := getOwned(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, idea.ID); err != nil {
			return err
		}
		if !s.strict {
			return nil
		}

		rest, err := tx.ListInStage(ctx, ownerID, idea.Stage)
		if err != nil {
			return err
		}
		plan := domain.PlanCompact(rest, "")
		positionShiftsTotal.WithLabelValues("delete").Add(float64(len(plan)))
		return tx.UpdatePlacements(ctx, plan)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.invalidate(ctx, ownerID)

	s.logger.Debug("idea deleted",
		zap.String("idea_id", id),
		zap.String("user_id", ownerID),
	)
	return nil
}

// Audit reports every stage of ownerID whose positions are not dense.
func (s *Store) Audit(ctx context.Context, ownerID string) ([]domain.Violation, error) {
	ctx, span := s.tracer.Start(ctx, "board.Audit")
	defer span.End()

	if ownerID == "" {
		return nil, domain.ErrUnauthenticated
	}

	ideas, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	violations := domain.Audit(ideas)
	span.SetAttributes(attribute.Int("violations", len(violations)))
	return violations, nil
}

// Compact renumbers every stage of ownerID to 0..count-1, keeping the
// existing order. It returns the number of ideas renumbered.
func (s *Store) Compact(ctx context.Context, ownerID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "board.Compact")
	defer span.End()

	if ownerID == "" {
		return 0, domain.ErrUnauthenticated
	}

	var renumbered int
	err := s.withinBoard(ctx, ownerID, func(ctx context.Context, tx domain.Tx) error {
		ideas, err := tx.ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}

		var plan []domain.Placement
		for _, group := range domain.GroupByStage(ideas) {
			plan = append(plan, domain.PlanCompact(group, "")...)
		}
		renumbered = len(plan)
		return tx.UpdatePlacements(ctx, plan)
	})
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	positionShiftsTotal.WithLabelValues("compact").Add(float64(renumbered))
	if renumbered > 0 {
		s.invalidate(ctx, ownerID)
		s.logger.Info("board compacted",
			zap.String("user_id", ownerID),
			zap.Int("renumbered", renumbered),
		)
	}
	return renumbered, nil
}

// reorderWithin applies the reorder plan for idea inside its current stage
// and updates idea in place.
func (s *Store) reorderWithin(ctx context.Context, tx domain.Tx, idea *domain.Idea, position int, op string) error {
	group, err := tx.ListInStage(ctx, idea.OwnerID, idea.Stage)
	if err != nil {
		return err
	}
	if s.strict {
		position = domain.Clamp(position, len(group)-1)
	}

	plan := domain.PlanReorder(group, idea, position)
	if len(plan) == 0 {
		return nil
	}
	if err := tx.UpdatePlacements(ctx, plan); err != nil {
		return err
	}
	positionShiftsTotal.WithLabelValues(op).Add(float64(len(plan) - 1))

	idea.Position = position
	return nil
}

// withinBoard runs fn in one transaction holding ownerID's board lock.
func (s *Store) withinBoard(ctx context.Context, ownerID string, fn func(ctx context.Context, tx domain.Tx) error) error {
	return s.repo.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		if err := tx.LockBoard(ctx, ownerID); err != nil {
			return err
		}
		return fn(ctx, tx)
	})
}

func (s *Store) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn("failed to invalidate idea cache",
			zap.Error(err),
			zap.String("user_id", ownerID),
		)
	}
}

// getOwned loads id and hides ideas of other owners behind ErrIdeaNotFound.
func getOwned(ctx context.Context, tx domain.Tx, ownerID, id string) (*domain.Idea, error) {
	if id == "" {
		return nil, domain.ErrIdeaNotFound
	}
	idea, err := tx.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !idea.OwnedBy(ownerID) {
		return nil, domain.ErrIdeaNotFound
	}
	return idea, nil
}
