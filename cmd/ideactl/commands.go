package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmehra2102/IdeaBoard/internal/board"
	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"github.com/dmehra2102/IdeaBoard/internal/infrastructure/config"
	infrapostgres "github.com/dmehra2102/IdeaBoard/internal/infrastructure/postgres"
	"github.com/dmehra2102/IdeaBoard/pkg/auth"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func runToken(ctx context.Context, c *cli.Command) error {
	token, err := auth.IssueToken(c.String("secret"), c.String("user"), c.Duration("ttl"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.Root().Writer, token)
	return nil
}

func runList(ctx context.Context, c *cli.Command) error {
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	ideas, err := store.List(ctx, c.String("owner"))
	if err != nil {
		return fmt.Errorf("list ideas: %w", err)
	}

	renderBoard(c.Root().Writer, ideas)
	return nil
}

func runAudit(ctx context.Context, c *cli.Command) error {
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	violations, err := store.Audit(ctx, c.String("owner"))
	if err != nil {
		return fmt.Errorf("audit board: %w", err)
	}

	renderViolations(c.Root().Writer, violations)
	if len(violations) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func runCompact(ctx context.Context, c *cli.Command) error {
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	renumbered, err := store.Compact(ctx, c.String("owner"))
	if err != nil {
		return fmt.Errorf("compact board: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "renumbered %d idea(s)\n", renumbered)
	return nil
}

func openStore(ctx context.Context) (*board.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.StorageBackend != config.BackendPostgres {
		return nil, nil, fmt.Errorf("ideactl needs the postgres backend, got %q", cfg.StorageBackend)
	}

	db, err := infrapostgres.Open(ctx, cfg.GetDatabaseConfig())
	if err != nil {
		return nil, nil, err
	}

	logger, err := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	store := board.NewStore(infrapostgres.NewPostgresRepository(db), logger, board.Options{
		StrictDensity: cfg.StrictDensity,
	})

	return store, func() {
		_ = logger.Sync()
		_ = db.Close()
	}, nil
}

func renderBoard(w io.Writer, ideas []*domain.Idea) {
	groups := domain.GroupByStage(ideas)
	for _, stage := range domain.Stages {
		group := groups[stage]
		fmt.Fprintf(w, "%s (%d)\n", stage, len(group))
		for _, idea := range group {
			fmt.Fprintf(w, "  %3d  %s  %s\n", idea.Position, idea.ID, oneLine(idea.Title))
		}
	}
}

func renderViolations(w io.Writer, violations []domain.Violation) {
	if len(violations) == 0 {
		fmt.Fprintln(w, "ok: every stage is dense")
		return
	}
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %v, positions %v\n", v.Stage, v.Err, v.Positions)
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
