package workflow

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aurora-sre/aurora/pkg/models"
	"github.com/aurora-sre/aurora/pkg/services"
)

// Observer taps the agent stream for side channels beyond the session
// socket. The RCA runner uses it to persist thoughts, citations, and
// suggestions while the investigation streams. A nil Observer is valid.
type Observer interface {
	// OnThinking receives structured-reasoning deltas.
	OnThinking(ctx context.Context, delta string)
	// OnToolResult receives every executed tool call with its output.
	OnToolResult(ctx context.Context, call models.ToolCall, output string)
	// OnFinal receives the turn's final assistant message.
	OnFinal(ctx context.Context, text string)
}

// RCAObserver persists the investigation trace of an automated RCA run:
// reasoning deltas become incident thoughts, tool executions become numbered
// citations, and the final analysis is scanned for suggestion blocks.
type RCAObserver struct {
	userID     string
	incidentID string

	thoughts    *services.ThoughtService
	citations   *services.CitationService
	suggestions *services.SuggestionService

	mu          sync.Mutex
	buf         strings.Builder
	citationSeq int
}

func NewRCAObserver(userID, incidentID string, thoughts *services.ThoughtService,
	citations *services.CitationService, suggestions *services.SuggestionService) *RCAObserver {
	return &RCAObserver{
		userID:      userID,
		incidentID:  incidentID,
		thoughts:    thoughts,
		citations:   citations,
		suggestions: suggestions,
	}
}

// OnThinking buffers reasoning deltas and appends a thought per completed
// paragraph, so the incident timeline reads as discrete analysis steps.
func (o *RCAObserver) OnThinking(ctx context.Context, delta string) {
	o.mu.Lock()
	o.buf.WriteString(delta)
	var complete []string
	for {
		text := o.buf.String()
		idx := strings.Index(text, "\n\n")
		if idx < 0 {
			break
		}
		if para := strings.TrimSpace(text[:idx]); para != "" {
			complete = append(complete, para)
		}
		o.buf.Reset()
		o.buf.WriteString(text[idx+2:])
	}
	o.mu.Unlock()

	for _, para := range complete {
		o.appendThought(ctx, para)
	}
}

// OnToolResult records the execution as the next numbered citation.
func (o *RCAObserver) OnToolResult(ctx context.Context, call models.ToolCall, output string) {
	o.mu.Lock()
	o.citationSeq++
	key := strconv.Itoa(o.citationSeq)
	o.mu.Unlock()

	command, _ := call.Args["command"].(string)
	if command == "" {
		if raw, err := json.Marshal(call.Args); err == nil {
			command = string(raw)
		}
	}
	_, err := o.citations.Record(ctx, o.userID, o.incidentID, services.CitationInput{
		CitationKey: key,
		ToolName:    call.Name,
		Command:     command,
		Output:      output,
		ExecutedAt:  time.Now(),
	})
	if err != nil {
		slog.Warn("recording citation failed", "incident_id", o.incidentID, "key", key, "error", err)
	}
}

// OnFinal flushes the remaining thought buffer and extracts suggestions
// from the analysis text.
func (o *RCAObserver) OnFinal(ctx context.Context, text string) {
	o.mu.Lock()
	rest := strings.TrimSpace(o.buf.String())
	o.buf.Reset()
	o.mu.Unlock()
	if rest != "" {
		o.appendThought(ctx, rest)
	}

	for _, input := range parseSuggestions(text) {
		if _, err := o.suggestions.Create(ctx, o.userID, o.incidentID, input); err != nil {
			slog.Warn("storing suggestion failed", "incident_id", o.incidentID, "title", input.Title, "error", err)
		}
	}
}

func (o *RCAObserver) appendThought(ctx context.Context, content string) {
	if _, err := o.thoughts.Append(ctx, o.userID, o.incidentID, "analysis", content); err != nil {
		slog.Warn("appending thought failed", "incident_id", o.incidentID, "error", err)
	}
}

type suggestionDoc struct {
	Type          string `json:"type"`
	Risk          string `json:"risk"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Command       string `json:"command"`
	FilePath      string `json:"file_path"`
	OriginalCode  string `json:"original_code"`
	SuggestedCode string `json:"suggested_code"`
	Repo          string `json:"repo"`
}

// parseSuggestions extracts suggestion blocks from the final analysis. The
// RCA prompt asks the model to emit them as fenced json blocks holding
// either a {"suggestions": [...]} object or a bare array.
func parseSuggestions(text string) []services.SuggestionInput {
	var out []services.SuggestionInput
	for _, block := range fencedJSONBlocks(text) {
		var wrapper struct {
			Suggestions []suggestionDoc `json:"suggestions"`
		}
		var docs []suggestionDoc
		if err := json.Unmarshal([]byte(block), &wrapper); err == nil && len(wrapper.Suggestions) > 0 {
			docs = wrapper.Suggestions
		} else if err := json.Unmarshal([]byte(block), &docs); err != nil {
			continue
		}
		for _, d := range docs {
			if d.Title == "" {
				continue
			}
			out = append(out, services.SuggestionInput{
				Type:          d.Type,
				Risk:          d.Risk,
				Title:         d.Title,
				Description:   d.Description,
				Command:       d.Command,
				FilePath:      d.FilePath,
				OriginalCode:  d.OriginalCode,
				SuggestedCode: d.SuggestedCode,
				Repo:          d.Repo,
			})
		}
	}
	return out
}

func fencedJSONBlocks(text string) []string {
	var blocks []string
	for {
		start := strings.Index(text, "```json")
		if start < 0 {
			break
		}
		rest := text[start+len("```json"):]
		end := strings.Index(rest, "```")
		if end < 0 {
			break
		}
		blocks = append(blocks, strings.TrimSpace(rest[:end]))
		text = rest[end+3:]
	}
	return blocks
}

// SuggestionFormatHint is appended to RCA prompts so the final analysis
// carries machine-readable suggestions.
const SuggestionFormatHint = "\n\nWhen you conclude, list your proposed next actions as a fenced json block " +
	"of the form {\"suggestions\": [{\"type\": \"diagnostic|mitigation|communication|fix\", " +
	"\"risk\": \"safe|moderate|dangerous\", \"title\": ..., \"description\": ..., \"command\": ...}]}."
