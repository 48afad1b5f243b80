package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aurora-sre/aurora/ent"
	"github.com/aurora-sre/aurora/ent/incidentcitation"
	"github.com/aurora-sre/aurora/pkg/database"
)

// CitationService records the numbered evidence items produced by tool
// executions during an RCA.
type CitationService struct {
	db *database.Client
}

func NewCitationService(db *database.Client) *CitationService {
	if db == nil {
		panic("NewCitationService: db must not be nil")
	}
	return &CitationService{db: db}
}

// CitationInput is one evidence item keyed by its numeric display key.
type CitationInput struct {
	CitationKey string
	ToolName    string
	Command     string
	Output      string
	ExecutedAt  time.Time
}

// Record stores a citation. Re-recording an existing key refreshes its
// command and output instead of failing, so a re-run tool updates its
// evidence in place.
func (s *CitationService) Record(ctx context.Context, userID, incidentID string, input CitationInput) (*ent.IncidentCitation, error) {
	if input.CitationKey == "" {
		return nil, NewValidationError("citation_key", "citation key is required")
	}
	if input.ExecutedAt.IsZero() {
		input.ExecutedAt = time.Now()
	}

	var citation *ent.IncidentCitation
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		existing, err := tx.IncidentCitation.Query().
			Where(
				incidentcitation.IncidentIDEQ(incidentID),
				incidentcitation.CitationKeyEQ(input.CitationKey),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("query citation: %w", err)
		}

		if existing != nil {
			citation, err = existing.Update().
				SetToolName(input.ToolName).
				SetCommand(input.Command).
				SetOutput(input.Output).
				SetExecutedAt(input.ExecutedAt).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("refresh citation: %w", err)
			}
			return nil
		}

		citation, err = tx.IncidentCitation.Create().
			SetID(uuid.New().String()).
			SetIncidentID(incidentID).
			SetUserID(userID).
			SetCitationKey(input.CitationKey).
			SetToolName(input.ToolName).
			SetCommand(input.Command).
			SetOutput(input.Output).
			SetExecutedAt(input.ExecutedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("record citation: %w", err)
		}
		return nil
	})
	return citation, err
}

// List returns the incident's citations ordered by numeric key.
func (s *CitationService) List(ctx context.Context, userID, incidentID string) ([]*ent.IncidentCitation, error) {
	var citations []*ent.IncidentCitation
	err := database.WithTenant(ctx, s.db.App, userID, func(tx *ent.Tx) error {
		var err error
		citations, err = tx.IncidentCitation.Query().
			Where(incidentcitation.IncidentIDEQ(incidentID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("list citations: %w", err)
		}
		sortCitations(citations)
		return nil
	})
	return citations, err
}
