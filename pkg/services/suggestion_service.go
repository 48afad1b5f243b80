package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/incidentsuggestion"
	"github.com/aurora-sre/aurora/pkg/database"
)

// SuggestionService stores the next actions proposed by the RCA agent.
type SuggestionService struct {
	db *database.Client
}

func NewSuggestionService(db *database.Client) *SuggestionService {
	if db == nil {
		panic("NewSuggestionService: db must not be nil")
	}
	return &SuggestionService{db: db}
}

// SuggestionInput is one proposed action. The patch fields apply only to
// fix-type suggestions.
type SuggestionInput struct {
	Type        string
	Risk        string
	Title       string
	Description string
	Command     string

	FilePath      string
	OriginalCode  string
	SuggestedCode string
	Repo          string
}

// Create stores a suggestion.
func (s *SuggestionService) Create(ctx context.Context, userID, incidentID string, input SuggestionInput) (*ent.IncidentSuggestion, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "suggestion title is required")
	}
	if input.Risk == "" {
		input.Risk = "safe"
	}

	var suggestion *ent.IncidentSuggestion
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		builder := tx.IncidentSuggestion.Create().
			SetID(uuid.New().String()).
			SetIncidentID(incidentID).
			SetUserID(userID).
			SetSuggestionType(incidentsuggestion.SuggestionType(input.Type)).
			SetRisk(input.Risk).
			SetTitle(input.Title).
			SetDescription(input.Description)
		if input.Command != "" {
			builder.SetCommand(input.Command)
		}
		if input.FilePath != "" {
			builder.SetFilePath(input.FilePath).
				SetOriginalCode(input.OriginalCode).
				SetSuggestedCode(input.SuggestedCode)
		}
		if input.Repo != "" {
			builder.SetRepo(input.Repo)
		}

		var err error
		suggestion, err = builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create suggestion: %w", err)
		}
		return nil
	})
	return suggestion, err
}

// AttachPR records the pull request opened from a fix-type suggestion.
func (s *SuggestionService) AttachPR(ctx context.Context, userID, suggestionID, prURL string, prNumber int, branch string) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		err := tx.IncidentSuggestion.UpdateOneID(suggestionID).
			SetPrURL(prURL).
			SetPrNumber(prNumber).
			SetCreatedBranch(branch).
			Exec(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: suggestion %s", ErrNotFound, suggestionID)
			}
			return fmt.Errorf("attach pr to suggestion: %w", err)
		}
		return nil
	})
}

// MarkApplied stamps the suggestion as executed, optionally with the
// user-edited version of the patch that was actually applied.
func (s *SuggestionService) MarkApplied(ctx context.Context, userID, suggestionID, userEditedCode string) error {
	return database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		update := tx.IncidentSuggestion.UpdateOneID(suggestionID).
			SetAppliedAt(time.Now())
		if userEditedCode != "" {
			update.SetUserEditedCode(userEditedCode)
		}
		if err := update.Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: suggestion %s", ErrNotFound, suggestionID)
			}
			return fmt.Errorf("mark suggestion applied: %w", err)
		}
		return nil
	})
}

// List returns the incident's suggestions, oldest first.
func (s *SuggestionService) List(ctx context.Context, userID, incidentID string) ([]*ent.IncidentSuggestion, error) {
	var suggestions []*ent.IncidentSuggestion
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		suggestions, err = tx.IncidentSuggestion.Query().
			Where(incidentsuggestion.IncidentIDEQ(incidentID)).
			Order(ent.Asc(incidentsuggestion.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list suggestions: %w", err)
		}
		return nil
	})
	return suggestions, err
}
