package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const queryTimeout = 5 * time.Second

// uniqueViolation is the SQLSTATE raised by the deferred
// ideas_owner_stage_position_key constraint at commit.
const uniqueViolation = "23505"

const ideaColumns = `id, owner_id, title, description, stage, position, created_at, updated_at`

type PostgresRepository struct {
	db        *sql.DB
	tracer    trace.Tracer
	isolation sql.IsolationLevel
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:        db,
		tracer:    otel.Tracer("postgres-repository"),
		isolation: sql.LevelReadCommitted,
	}
}

// WithinTx runs fn in one transaction. Board operations take the owner's
// advisory lock through LockBoard first, so concurrent operations on the same
// board queue behind each other instead of deadlocking on row locks.
func (r *PostgresRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx domain.Tx) error) error {
	ctx, span := r.tracer.Start(ctx, "repository.WithinTx")
	defer span.End()

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: r.isolation})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &postgresTx{tx: tx, tracer: r.tracer}); err != nil {
		span.RecordError(err)
		return err
	}

	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		return mapConstraintError(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "repository.ListByOwner")
	defer span.End()

	span.SetAttributes(attribute.String("owner.id", ownerID))

	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE owner_id = $1 ORDER BY stage, position`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	ideas, err := scanIdeas(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("returned_count", len(ideas)))
	return ideas, nil
}

type postgresTx struct {
	tx     *sql.Tx
	tracer trace.Tracer
}

func (t *postgresTx) LockBoard(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.LockBoard")
	defer span.End()

	span.SetAttributes(attribute.String("owner.id", ownerID))

	// Released automatically at commit or rollback.
	if _, err := t.tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ownerID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to lock board: %w", err)
	}
	return nil
}

func (t *postgresTx) Insert(ctx context.Context, idea *domain.Idea) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.Insert")
	defer span.End()

	span.SetAttributes(
		attribute.String("idea.id", idea.ID),
		attribute.String("owner.id", idea.OwnerID),
	)

	query := `
		INSERT INTO ideas (
			id, owner_id, title, description, stage, position, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := t.tx.ExecContext(ctx, query,
		idea.ID,
		idea.OwnerID,
		idea.Title,
		idea.Description,
		string(idea.Stage),
		idea.Position,
		idea.CreatedAt,
		idea.UpdatedAt,
	)
	if err != nil {
		span.RecordError(err)
		return mapConstraintError(fmt.Errorf("failed to create idea: %w", err))
	}

	return nil
}

func (t *postgresTx) GetByID(ctx context.Context, id string) (*domain.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.GetByID")
	defer span.End()

	span.SetAttributes(attribute.String("idea.id", id))

	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1`

	idea, err := scanIdea(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			span.SetAttributes(attribute.Bool("not_found", true))
			return nil, domain.ErrIdeaNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
			// not a uuid: no such idea
			return nil, domain.ErrIdeaNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}

	return idea, nil
}

func (t *postgresTx) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.ListByOwnerForUpdate")
	defer span.End()

	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE owner_id = $1 ORDER BY stage, position FOR UPDATE`

	rows, err := t.tx.QueryContext(ctx, query, ownerID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	return scanIdeas(rows)
}

func (t *postgresTx) ListInStage(ctx context.Context, ownerID string, stage domain.Stage) ([]*domain.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.ListInStage")
	defer span.End()

	span.SetAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("stage", string(stage)),
	)

	query := `
		SELECT ` + ideaColumns + `
		FROM ideas
		WHERE owner_id = $1 AND stage = $2
		ORDER BY position
		FOR UPDATE
	`

	rows, err := t.tx.QueryContext(ctx, query, ownerID, string(stage))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list ideas in stage: %w", err)
	}

	ideas, err := scanIdeas(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("returned_count", len(ideas)))
	return ideas, nil
}

func (t *postgresTx) UpdateText(ctx context.Context, idea *domain.Idea) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.UpdateText")
	defer span.End()

	span.SetAttributes(attribute.String("idea.id", idea.ID))

	query := `
		UPDATE ideas
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := t.tx.ExecContext(ctx, query, idea.Title, idea.Description, idea.UpdatedAt, idea.ID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update idea: %w", err)
	}

	return expectOneRow(result)
}

// UpdatePlacements writes every placement with one prepared statement. The
// unique constraint on (owner_id, stage, position) is deferred, so the order
// of the writes does not matter.
func (t *postgresTx) UpdatePlacements(ctx context.Context, plan []domain.Placement) error {
	if len(plan) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.UpdatePlacements")
	defer span.End()

	span.SetAttributes(attribute.Int("batch_size", len(plan)))

	stmt, err := t.tx.PrepareContext(ctx, `
		UPDATE ideas
		SET stage = $1, position = $2, updated_at = $3
		WHERE id = $4
	`)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, p := range plan {
		result, err := stmt.ExecContext(ctx, string(p.Stage), p.Position, now, p.ID)
		if err != nil {
			span.RecordError(err)
			return mapConstraintError(fmt.Errorf("failed to place idea %s: %w", p.ID, err))
		}
		if err := expectOneRow(result); err != nil {
			return err
		}
	}

	return nil
}

func (t *postgresTx) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "repository.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("idea.id", id))

	result, err := t.tx.ExecContext(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	return expectOneRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*domain.Idea, error) {
	idea := &domain.Idea{}
	var stage string

	err := row.Scan(
		&idea.ID,
		&idea.OwnerID,
		&idea.Title,
		&idea.Description,
		&stage,
		&idea.Position,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	idea.Stage = domain.Stage(stage)
	return idea, nil
}

func scanIdeas(rows *sql.Rows) ([]*domain.Idea, error) {
	defer rows.Close()

	ideas := make([]*domain.Idea, 0)
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ideas: %w", err)
	}

	return ideas, nil
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrIdeaNotFound
	}
	return nil
}

func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation &&
		strings.Contains(pqErr.Constraint, "position") {
		return fmt.Errorf("%w: %w", domain.ErrPositionClash, err)
	}
	return err
}
