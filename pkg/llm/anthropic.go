package llm

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/models"
)

type anthropicProvider struct {
	apiKey string
	cfg    config.LLMConfig
}

func newAnthropicProvider(cfg config.LLMConfig) *anthropicProvider {
	return &anthropicProvider{
		apiKey: config.APIKey(config.ProviderAnthropic),
		cfg:    cfg,
	}
}

func (p *anthropicProvider) Name() string { return config.ProviderAnthropic }

func (p *anthropicProvider) Available() bool { return p.apiKey != "" }

func (p *anthropicProvider) Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, <-chan error) {
	chunks := make(chan Chunk, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		client := anthropic.NewClient(
			option.WithAPIKey(p.apiKey),
			option.WithMaxRetries(p.cfg.MaxRetries),
			option.WithRequestTimeout(p.cfg.RequestTimeout),
		)

		params := anthropic.MessageNewParams{
			Model:     anthropic.Model(req.Model),
			Messages:  anthropicMessages(req.Messages),
			MaxTokens: int64(maxTokensOrDefault(req.MaxTokens)),
		}
		if system := systemPrompt(req.Messages); system != "" {
			params.System = []anthropic.TextBlockParam{{Type: "text", Text: system}}
		}
		if req.Temperature != nil {
			params.Temperature = anthropic.Float(float64(*req.Temperature))
		}
		if len(req.Tools) > 0 {
			params.Tools = anthropicTools(req.Tools)
		}
		if req.EnableThinking {
			params.Thinking = anthropic.ThinkingConfigParamOfEnabled(10000)
		}

		stream := client.Messages.NewStreaming(ctx, params)

		finish := FinishStop
		var usage Usage
		toolIndexes := make(map[int64]bool)

		for stream.Next() {
			event := stream.Current()
			switch event.Type {
			case "message_start":
				start := event.AsMessageStart()
				usage.InputTokens = int(start.Message.Usage.InputTokens)

			case "content_block_start":
				blockStart := event.AsContentBlockStart()
				if blockStart.ContentBlock.Type == "tool_use" {
					toolUse := blockStart.ContentBlock.AsToolUse()
					toolIndexes[event.Index] = true
					finish = FinishToolCalls
					emit(ctx, chunks, Chunk{ToolCall: &ToolCallDelta{
						Index: int(event.Index),
						ID:    toolUse.ID,
						Name:  toolUse.Name,
					}})
				}

			case "content_block_delta":
				delta := event.AsContentBlockDelta().Delta
				switch delta.Type {
				case "text_delta":
					if delta.Text != "" {
						emit(ctx, chunks, Chunk{TextDelta: delta.Text})
					}
				case "thinking_delta":
					if delta.Thinking != "" {
						emit(ctx, chunks, Chunk{ThinkingDelta: delta.Thinking})
					}
				case "input_json_delta":
					if delta.PartialJSON != "" && toolIndexes[event.Index] {
						emit(ctx, chunks, Chunk{ToolCall: &ToolCallDelta{
							Index:     int(event.Index),
							ArgsDelta: delta.PartialJSON,
						}})
					}
				}

			case "message_delta":
				msgDelta := event.AsMessageDelta()
				if msgDelta.Usage.OutputTokens > 0 {
					usage.OutputTokens = int(msgDelta.Usage.OutputTokens)
				}

			case "message_stop":
				usage.Cost = CostFor(req.Model, usage)
				emit(ctx, chunks, Chunk{FinishReason: finish, Usage: &usage})
				return
			}
		}

		if err := stream.Err(); err != nil {
			errs <- err
		}
	}()

	return chunks, errs
}

// systemPrompt pulls the first system message out of the context; Anthropic
// takes the system prompt as a request parameter rather than a message.
func systemPrompt(messages []models.ContextMessage) string {
	for _, m := range messages {
		if m.Role == models.RoleSystem {
			return m.Content
		}
	}
	return ""
}

func anthropicMessages(messages []models.ContextMessage) []anthropic.MessageParam {
	var result []anthropic.MessageParam
	for _, msg := range messages {
		var content []anthropic.ContentBlockParamUnion
		switch msg.Role {
		case models.RoleSystem:
			continue
		case models.RoleAssistant:
			if msg.Content != "" {
				content = append(content, anthropic.NewTextBlock(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				content = append(content, anthropic.NewToolUseBlock(tc.ID, tc.Args, tc.Name))
			}
			if len(content) > 0 {
				result = append(result, anthropic.NewAssistantMessage(content...))
			}
		case models.RoleTool:
			content = append(content, anthropic.NewToolResultBlock(msg.ToolCallID, msg.Content, false))
			result = append(result, anthropic.NewUserMessage(content...))
		default:
			content = append(content, anthropic.NewTextBlock(msg.Content))
			result = append(result, anthropic.NewUserMessage(content...))
		}
	}
	return result
}

func anthropicTools(tools []ToolSpec) []anthropic.ToolUnionParam {
	result := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, tool := range tools {
		var schema anthropic.ToolInputSchemaParam
		raw, _ := json.Marshal(tool.Schema)
		if err := json.Unmarshal(raw, &schema); err != nil {
			continue
		}
		param := anthropic.ToolUnionParamOfTool(schema, tool.Name)
		if param.OfTool != nil {
			param.OfTool.Description = anthropic.String(tool.Description)
		}
		result = append(result, param)
	}
	return result
}

func maxTokensOrDefault(n int) int {
	if n <= 0 {
		return 8192
	}
	return n
}

// emit sends a chunk unless the context is already cancelled.
func emit(ctx context.Context, ch chan<- Chunk, c Chunk) {
	select {
	case ch <- c:
	case <-ctx.Done():
	}
}
