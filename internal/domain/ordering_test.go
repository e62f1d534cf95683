package domain

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(stage Stage, titles ...string) []*Idea {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*Idea, len(titles))
	for i, title := range titles {
		out[i] = &Idea{
			ID:        title,
			OwnerID:   "u1",
			Title:     title,
			Stage:     stage,
			Position:  i,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
	}
	return out
}

func positionsByID(ideas []*Idea) map[string]int {
	out := make(map[string]int, len(ideas))
	for _, idea := range ideas {
		out[idea.ID] = idea.Position
	}
	return out
}

func find(ideas []*Idea, id string) *Idea {
	for _, idea := range ideas {
		if idea.ID == id {
			return idea
		}
	}
	return nil
}

func TestNextPosition(t *testing.T) {
	assert.Equal(t, 0, NextPosition(nil))
	assert.Equal(t, 3, NextPosition(group(StageIdea, "A", "B", "C")))

	gapped := group(StageIdea, "A", "B")
	gapped[1].Position = 5
	assert.Equal(t, 6, NextPosition(gapped), "append goes after the highest position, not the count")
}

func TestPlanReorder(t *testing.T) {
	tests := []struct {
		name   string
		moving string
		to     int
		want   map[string]int
	}{
		{
			name:   "move last to top",
			moving: "C",
			to:     0,
			want:   map[string]int{"A": 1, "B": 2, "C": 0},
		},
		{
			name:   "move first to bottom",
			moving: "A",
			to:     2,
			want:   map[string]int{"A": 2, "B": 0, "C": 1},
		},
		{
			name:   "move down one",
			moving: "A",
			to:     1,
			want:   map[string]int{"A": 1, "B": 0, "C": 2},
		},
		{
			name:   "move up one",
			moving: "C",
			to:     1,
			want:   map[string]int{"A": 0, "B": 2, "C": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ideas := group(StageIdea, "A", "B", "C")
			plan := PlanReorder(ideas, find(ideas, tt.moving), tt.to)

			require.NotEmpty(t, plan)
			assert.Equal(t, tt.moving, plan[len(plan)-1].ID, "moved idea is placed last")

			ApplyPlacements(ideas, plan)
			assert.Equal(t, tt.want, positionsByID(ideas))
			assert.NoError(t, CheckDensity(ideas))
		})
	}
}

func TestPlanReorder_NoOp(t *testing.T) {
	ideas := group(StageIdea, "A", "B", "C")
	assert.Nil(t, PlanReorder(ideas, ideas[1], 1))
}

func TestPlanReorder_OnlyChangedIdeas(t *testing.T) {
	ideas := group(StageIdea, "A", "B", "C", "D", "E")
	plan := PlanReorder(ideas, find(ideas, "B"), 3)

	ids := make([]string, len(plan))
	for i, p := range plan {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"C", "D", "B"}, ids, "A and E keep their positions and are not written")
}

// Any sequence of reorders keeps a dense group dense.
func TestPlanReorder_PreservesDensity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for size := 1; size <= 8; size++ {
		titles := make([]string, size)
		for i := range titles {
			titles[i] = fmt.Sprintf("i%d", i)
		}
		ideas := group(StagePlan, titles...)

		for step := 0; step < 200; step++ {
			moving := ideas[rng.IntN(size)]
			to := rng.IntN(size)
			before := positionsByID(ideas)

			ApplyPlacements(ideas, PlanReorder(ideas, moving, to))

			require.NoError(t, CheckDensity(ideas), "size %d step %d", size, step)
			require.Equal(t, to, moving.Position)
			if before[moving.ID] == to {
				assert.Equal(t, before, positionsByID(ideas), "reorder to the same slot changes nothing")
			}
		}
	}
}

func TestPlanInsert(t *testing.T) {
	dest := group(StagePlan, "X", "Y")
	plan := PlanInsert(dest, "A", 0)

	assert.Equal(t, []Placement{
		{ID: "X", Stage: StagePlan, Position: 1},
		{ID: "Y", Stage: StagePlan, Position: 2},
	}, plan)

	assert.Empty(t, PlanInsert(dest, "A", 2), "appending shifts nothing")
}

func TestPlanInsert_SkipsMovingIdea(t *testing.T) {
	dest := group(StagePlan, "X", "A", "Y")
	plan := PlanInsert(dest, "A", 0)

	for _, p := range plan {
		assert.NotEqual(t, "A", p.ID)
	}
	assert.Len(t, plan, 2)
}

func TestPlanCompact(t *testing.T) {
	ideas := group(StageIdea, "A", "B", "C", "D")
	ideas[1].Position = 4
	ideas[2].Position = 7
	ideas[3].Position = 9

	plan := PlanCompact(ideas, "C")
	ApplyPlacements(ideas, plan)

	assert.Equal(t, 0, find(ideas, "A").Position)
	assert.Equal(t, 1, find(ideas, "B").Position)
	assert.Equal(t, 2, find(ideas, "D").Position)
	assert.Equal(t, 7, find(ideas, "C").Position, "excluded idea is not renumbered")

	for _, p := range plan {
		assert.NotEqual(t, "A", p.ID, "unchanged ideas are not in the plan")
	}
}

func TestPlanCompact_TieBreaksOnCreation(t *testing.T) {
	ideas := group(StageIdea, "A", "B")
	ideas[0].Position = 1
	ideas[1].Position = 1
	ideas[1].CreatedAt = ideas[0].CreatedAt.Add(-time.Minute)

	ApplyPlacements(ideas, PlanCompact(ideas, ""))

	assert.Equal(t, 1, find(ideas, "A").Position)
	assert.Equal(t, 0, find(ideas, "B").Position)
}

func TestCheckDensity(t *testing.T) {
	assert.NoError(t, CheckDensity(nil))
	assert.NoError(t, CheckDensity(group(StageIdea, "A", "B")))

	gapped := group(StageIdea, "A", "B")
	gapped[1].Position = 2
	assert.ErrorIs(t, CheckDensity(gapped), ErrPositionGap)

	dup := group(StageIdea, "A", "B")
	dup[1].Position = 0
	assert.ErrorIs(t, CheckDensity(dup), ErrPositionDup)
}

func TestAudit(t *testing.T) {
	ideas := append(group(StageIdea, "A", "B", "C"), group(StagePlan, "X", "Y")...)
	assert.Empty(t, Audit(ideas))

	find(ideas, "A").Position = 3
	violations := Audit(ideas)

	require.Len(t, violations, 1)
	assert.Equal(t, StageIdea, violations[0].Stage)
	assert.Equal(t, []int{1, 2, 3}, violations[0].Positions)
	assert.ErrorIs(t, violations[0], ErrPositionGap)
}

func TestSortIdeas(t *testing.T) {
	ideas := append(group(StagePlan, "X", "Y"), group(StageIdea, "A", "B")...)
	find(ideas, "A").Position = 1
	find(ideas, "B").Position = 0

	SortIdeas(ideas)

	ids := make([]string, len(ideas))
	for i, idea := range ideas {
		ids[i] = idea.ID
	}
	assert.Equal(t, []string{"B", "A", "X", "Y"}, ids)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 4))
	assert.Equal(t, 2, Clamp(2, 4))
	assert.Equal(t, 4, Clamp(10, 4))
}
