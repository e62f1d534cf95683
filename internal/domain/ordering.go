package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// Placement assigns a stage and position to one idea.
type Placement struct {
	ID       string
	Stage    Stage
	Position int
}

// Violation describes a stage whose positions are not exactly 0..count-1.
type Violation struct {
	Stage     Stage
	Positions []int
	Err       error
}

func (v Violation) Error() string {
	return fmt.Sprintf("stage %s: %v (positions %v)", v.Stage, v.Err, v.Positions)
}

func (v Violation) Unwrap() error {
	return v.Err
}

// NextPosition returns one past the highest position in group, or 0 when the
// group is empty.
func NextPosition(group []*Idea) int {
	next := 0
	for _, idea := range group {
		if idea.Position+1 > next {
			next = idea.Position + 1
		}
	}
	return next
}

// PlanInsert makes room for an idea at target: every other idea in group with
// position >= target moves up by one.
func PlanInsert(group []*Idea, movingID string, target int) []Placement {
	var plan []Placement
	for _, idea := range group {
		if idea.ID == movingID || idea.Position < target {
			continue
		}
		plan = append(plan, Placement{ID: idea.ID, Stage: idea.Stage, Position: idea.Position + 1})
	}
	return plan
}

// PlanReorder moves moving to newPos within its own stage. Ideas strictly
// between the old and new slot (destination inclusive) step one place toward
// the vacated slot. The moved idea's placement is always last.
func PlanReorder(group []*Idea, moving *Idea, newPos int) []Placement {
	oldPos := moving.Position
	if oldPos == newPos {
		return nil
	}

	var plan []Placement
	for _, idea := range group {
		if idea.ID == moving.ID {
			continue
		}

		pos := idea.Position
		switch {
		case oldPos < newPos && pos > oldPos && pos <= newPos:
			pos--
		case oldPos > newPos && pos >= newPos && pos < oldPos:
			pos++
		}

		if pos != idea.Position {
			plan = append(plan, Placement{ID: idea.ID, Stage: idea.Stage, Position: pos})
		}
	}

	return append(plan, Placement{ID: moving.ID, Stage: moving.Stage, Position: newPos})
}

// PlanCompact renumbers group to 0..n-1 keeping the current relative order,
// leaving out excludeID. Only ideas whose position changes are returned.
func PlanCompact(group []*Idea, excludeID string) []Placement {
	ordered := make([]*Idea, 0, len(group))
	for _, idea := range group {
		if idea.ID != excludeID {
			ordered = append(ordered, idea)
		}
	}
	slices.SortStableFunc(ordered, comparePosition)

	var plan []Placement
	for i, idea := range ordered {
		if idea.Position != i {
			plan = append(plan, Placement{ID: idea.ID, Stage: idea.Stage, Position: i})
		}
	}
	return plan
}

// CheckDensity returns nil when the positions in group are exactly 0..n-1.
func CheckDensity(group []*Idea) error {
	seen := make(map[int]bool, len(group))
	for _, idea := range group {
		if seen[idea.Position] {
			return fmt.Errorf("%w: %d", ErrPositionDup, idea.Position)
		}
		seen[idea.Position] = true
	}
	for i := range group {
		if !seen[i] {
			return fmt.Errorf("%w: %d missing", ErrPositionGap, i)
		}
	}
	return nil
}

// Audit checks every stage group in ideas and returns the violations in
// stage order.
func Audit(ideas []*Idea) []Violation {
	groups := GroupByStage(ideas)

	var violations []Violation
	for _, stage := range Stages {
		group := groups[stage]
		if err := CheckDensity(group); err != nil {
			violations = append(violations, Violation{
				Stage:     stage,
				Positions: Positions(group),
				Err:       err,
			})
		}
	}
	return violations
}

// ApplyPlacements updates the ideas in place. Placements for ids not present
// are ignored.
func ApplyPlacements(ideas []*Idea, plan []Placement) {
	byID := make(map[string]*Idea, len(ideas))
	for _, idea := range ideas {
		byID[idea.ID] = idea
	}
	for _, p := range plan {
		if idea, ok := byID[p.ID]; ok {
			idea.Stage = p.Stage
			idea.Position = p.Position
		}
	}
}

// GroupByStage splits ideas into per-stage groups sorted by position.
func GroupByStage(ideas []*Idea) map[Stage][]*Idea {
	groups := make(map[Stage][]*Idea)
	for _, idea := range ideas {
		groups[idea.Stage] = append(groups[idea.Stage], idea)
	}
	for _, group := range groups {
		slices.SortStableFunc(group, comparePosition)
	}
	return groups
}

// SortIdeas orders ideas for display: by stage column, then position.
func SortIdeas(ideas []*Idea) {
	slices.SortStableFunc(ideas, func(a, b *Idea) int {
		if c := cmp.Compare(a.Stage.Index(), b.Stage.Index()); c != 0 {
			return c
		}
		return comparePosition(a, b)
	})
}

// Positions returns the positions of group in ascending order.
func Positions(group []*Idea) []int {
	out := make([]int, 0, len(group))
	for _, idea := range group {
		out = append(out, idea.Position)
	}
	slices.Sort(out)
	return out
}

// Clamp limits pos to [0, limit].
func Clamp(pos, limit int) int {
	return max(0, min(pos, limit))
}

func comparePosition(a, b *Idea) int {
	if c := cmp.Compare(a.Position, b.Position); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
