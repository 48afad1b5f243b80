package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/incidentthought"
	"github.com/aurora-sre/aurora/pkg/database"
)

// ThoughtService appends to the incident's investigation trace while an
// RCA runs. The trace is append-only.
type ThoughtService struct {
	db *database.Client
}

func NewThoughtService(db *database.Client) *ThoughtService {
	if db == nil {
		panic("NewThoughtService: db must not be nil")
	}
	return &ThoughtService{db: db}
}

// Append records one thought.
func (s *ThoughtService) Append(ctx context.Context, userID, incidentID, thoughtType, content string) (*ent.IncidentThought, error) {
	if content == "" {
		return nil, NewValidationError("content", "thought content is required")
	}
	if thoughtType == "" {
		thoughtType = "analysis"
	}

	var thought *ent.IncidentThought
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		thought, err = tx.IncidentThought.Create().
			SetID(uuid.New().String()).
			SetIncidentID(incidentID).
			SetUserID(userID).
			SetThoughtType(thoughtType).
			SetContent(content).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("append incident thought: %w", err)
		}
		return nil
	})
	return thought, err
}

// Trailing returns the incident's most recent thoughts in chronological
// order, at most limit entries. Used to build merge context updates.
func (s *ThoughtService) Trailing(ctx context.Context, userID, incidentID string, limit int) ([]*ent.IncidentThought, error) {
	if limit <= 0 {
		limit = 20
	}
	var thoughts []*ent.IncidentThought
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		recent, err := tx.IncidentThought.Query().
			Where(incidentthought.IncidentIDEQ(incidentID)).
			Order(ent.Desc(incidentthought.FieldCreatedAt)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load trailing thoughts: %w", err)
		}
		// Reverse back to chronological order.
		thoughts = make([]*ent.IncidentThought, len(recent))
		for i, t := range recent {
			thoughts[len(recent)-1-i] = t
		}
		return nil
	})
	return thoughts, err
}

// List returns the full trace, oldest first.
func (s *ThoughtService) List(ctx context.Context, userID, incidentID string) ([]*ent.IncidentThought, error) {
	var thoughts []*ent.IncidentThought
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		thoughts, err = tx.IncidentThought.Query().
			Where(incidentthought.IncidentIDEQ(incidentID)).
			Order(ent.Asc(incidentthought.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list incident thoughts: %w", err)
		}
		return nil
	})
	return thoughts, err
}
