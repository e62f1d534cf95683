package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

type Stage string

const (
	StageIdea         Stage = "Idea"
	StageMaterials    Stage = "Materials"
	StagePlan         Stage = "Plan"
	StageAction       Stage = "Action"
	StageCompletion   Stage = "Completion"
	StageTesting      Stage = "Testing"
	StageImprovements Stage = "Improvements"
)

// Stages lists the board columns in workflow order.
var Stages = []Stage{
	StageIdea,
	StageMaterials,
	StagePlan,
	StageAction,
	StageCompletion,
	StageTesting,
	StageImprovements,
}

// ParseStage resolves a stage name. An empty name selects the first column.
func ParseStage(name string) (Stage, error) {
	if name == "" {
		return StageIdea, nil
	}
	for _, s := range Stages {
		if string(s) == name {
			return s, nil
		}
	}
	return "", ErrInvalidStage
}

// Index returns the column index of s, or -1 for an unknown stage.
func (s Stage) Index() int {
	for i, candidate := range Stages {
		if candidate == s {
			return i
		}
	}
	return -1
}

func (s Stage) Valid() bool {
	return s.Index() >= 0
}

type Idea struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Stage       Stage
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIdea creates a new idea with validation. The position is assigned by the
// store when the idea is inserted.
func NewIdea(ownerID, title, description string, stage Stage) (*Idea, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if err := validateText(title, description); err != nil {
		return nil, err
	}
	if !stage.Valid() {
		return nil, ErrInvalidStage
	}

	now := time.Now().UTC()

	return &Idea{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Stage:       stage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename replaces the text fields. Stage and position are untouched.
func (i *Idea) Rename(title, description string) error {
	if err := validateText(title, description); err != nil {
		return err
	}
	i.Title = title
	i.Description = description
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// OwnedBy reports whether ownerID may read or mutate the idea.
func (i *Idea) OwnedBy(ownerID string) bool {
	return ownerID != "" && i.OwnerID == ownerID
}

// Clone returns a copy that can be mutated without affecting i.
func (i *Idea) Clone() *Idea {
	c := *i
	return &c
}

func validateText(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
