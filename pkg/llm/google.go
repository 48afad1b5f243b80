package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/models"
)

type googleProvider struct {
	apiKey string
	cfg    config.LLMConfig
}

func newGoogleProvider(cfg config.LLMConfig) *googleProvider {
	return &googleProvider{
		apiKey: config.APIKey(config.ProviderGoogle),
		cfg:    cfg,
	}
}

func (p *googleProvider) Name() string { return config.ProviderGoogle }

func (p *googleProvider) Available() bool { return p.apiKey != "" }

func (p *googleProvider) Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, <-chan error) {
	chunks := make(chan Chunk, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			errs <- fmt.Errorf("create gemini client: %w", err)
			return
		}

		contents := googleContents(req.Messages)
		genCfg := p.buildConfig(req)

		finish := FinishStop
		var usage Usage
		toolIndex := 0

		for resp, err := range client.Models.GenerateContentStream(ctx, req.Model, contents, genCfg) {
			if err != nil {
				errs <- err
				return
			}
			if resp == nil {
				continue
			}
			if resp.UsageMetadata != nil {
				usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
				usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
			}
			for _, candidate := range resp.Candidates {
				if candidate == nil || candidate.Content == nil {
					continue
				}
				for _, part := range candidate.Content.Parts {
					if part == nil {
						continue
					}
					if part.Text != "" {
						if part.Thought {
							emit(ctx, chunks, Chunk{ThinkingDelta: part.Text})
						} else {
							emit(ctx, chunks, Chunk{TextDelta: part.Text})
						}
					}
					if part.FunctionCall != nil {
						finish = FinishToolCalls
						// Gemini does not assign call ids; mint stable ones so
						// downstream pairing works the same as other vendors.
						id := fmt.Sprintf("run-%s-%d", part.FunctionCall.Name, time.Now().UnixNano())
						args := "{}"
						if raw, err := json.Marshal(part.FunctionCall.Args); err == nil {
							args = string(raw)
						}
						emit(ctx, chunks, Chunk{ToolCall: &ToolCallDelta{
							Index:     toolIndex,
							ID:        id,
							Name:      part.FunctionCall.Name,
							ArgsDelta: args,
						}})
						toolIndex++
					}
				}
			}
		}

		usage.Cost = CostFor(req.Model, usage)
		emit(ctx, chunks, Chunk{FinishReason: finish, Usage: &usage})
	}()

	return chunks, errs
}

func (p *googleProvider) buildConfig(req ChatRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if system := systemPrompt(req.Messages); system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if len(req.Tools) > 0 {
		cfg.Tools = googleTools(req.Tools)
	}
	if req.EnableThinking && !p.cfg.DisableThinking {
		cfg.ThinkingConfig = &genai.ThinkingConfig{IncludeThoughts: true}
	}
	return cfg
}

func googleContents(messages []models.ContextMessage) []*genai.Content {
	var result []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			continue
		case models.RoleAssistant:
			content := &genai.Content{Role: genai.RoleModel}
			if msg.Content != "" {
				content.Parts = append(content.Parts, &genai.Part{Text: msg.Content})
			}
			for _, tc := range msg.ToolCalls {
				content.Parts = append(content.Parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{
						Name: tc.Name,
						Args: tc.Args,
					},
				})
			}
			if len(content.Parts) > 0 {
				result = append(result, content)
			}
		case models.RoleTool:
			result = append(result, &genai.Content{
				Role: genai.RoleUser,
				Parts: []*genai.Part{{
					FunctionResponse: &genai.FunctionResponse{
						Name:     toolNameFromID(msg.ToolCallID),
						Response: map[string]any{"output": msg.Content},
					},
				}},
			})
		default:
			result = append(result, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		}
	}
	return result
}

func googleTools(tools []ToolSpec) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, tool := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:                 tool.Name,
			Description:          tool.Description,
			ParametersJsonSchema: tool.Schema,
		})
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// toolNameFromID recovers the tool name from the ids minted in Stream
// ("run-<name>-<nanos>"). Unknown shapes pass through unchanged.
func toolNameFromID(id string) string {
	const prefix = "run-"
	if len(id) <= len(prefix) || id[:len(prefix)] != prefix {
		return id
	}
	rest := id[len(prefix):]
	for i := len(rest) - 1; i >= 0; i-- {
		if rest[i] == '-' {
			return rest[:i]
		}
	}
	return rest
}
