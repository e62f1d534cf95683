package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmehra2102/IdeaBoard/internal/domain"
	"github.com/dmehra2102/IdeaBoard/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestRenderBoard(t *testing.T) {
	ideas := []*domain.Idea{
		{ID: "id-b", Title: "Second", Stage: domain.StageIdea, Position: 1},
		{ID: "id-a", Title: "First\nline", Stage: domain.StageIdea, Position: 0},
		{ID: "id-x", Title: "Plan it", Stage: domain.StagePlan, Position: 0},
	}

	var buf bytes.Buffer
	renderBoard(&buf, ideas)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(domain.Stages)+len(ideas))
	assert.Equal(t, "Idea (2)", lines[0])
	assert.Equal(t, "    0  id-a  First line", lines[1])
	assert.Equal(t, "    1  id-b  Second", lines[2])
	assert.Equal(t, "Materials (0)", lines[3])
	assert.Equal(t, "Plan (1)", lines[4])
	assert.Contains(t, out, "Improvements (0)")
}

func TestRenderViolations(t *testing.T) {
	var buf bytes.Buffer
	renderViolations(&buf, nil)
	assert.Equal(t, "ok: every stage is dense\n", buf.String())

	buf.Reset()
	renderViolations(&buf, []domain.Violation{
		{Stage: domain.StagePlan, Positions: []int{0, 2}, Err: domain.ErrPositionGap},
	})
	assert.Equal(t, "Plan: positions are not contiguous, positions [0 2]\n", buf.String())
}

func TestRunToken(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cli.Command{
		Name:   "token",
		Writer: &buf,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user"},
			&cli.StringFlag{Name: "secret"},
			&cli.DurationFlag{Name: "ttl", Value: time.Hour},
		},
		Action: runToken,
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"token", "--user", "u1", "--secret", "s3cret"}))

	userCtx, err := auth.ParseToken("s3cret", strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "u1", userCtx.UserID)
}
