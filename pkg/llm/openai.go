package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aurora-sre/aurora/pkg/config"
	"github.com/aurora-sre/aurora/pkg/models"
)

// openRouterBaseURL is the OpenAI-compatible endpoint of the OpenRouter
// gateway. The gateway provider is the same client pointed at a different
// host with canonical "vendor/model" names passed through.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

type openAIProvider struct {
	name    string
	apiKey  string
	baseURL string
	cfg     config.LLMConfig
}

func newOpenAIProvider(cfg config.LLMConfig) *openAIProvider {
	return &openAIProvider{
		name:   config.ProviderOpenAI,
		apiKey: config.APIKey(config.ProviderOpenAI),
		cfg:    cfg,
	}
}

func newOpenRouterProvider(cfg config.LLMConfig) *openAIProvider {
	return &openAIProvider{
		name:    config.ProviderOpenRouter,
		apiKey:  config.APIKey(config.ProviderOpenRouter),
		baseURL: openRouterBaseURL,
		cfg:     cfg,
	}
}

func (p *openAIProvider) Name() string { return p.name }

func (p *openAIProvider) Available() bool { return p.apiKey != "" }

func (p *openAIProvider) Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, <-chan error) {
	chunks := make(chan Chunk, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		clientCfg := openai.DefaultConfig(p.apiKey)
		if p.baseURL != "" {
			clientCfg.BaseURL = p.baseURL
		}
		client := openai.NewClientWithConfig(clientCfg)

		chatReq := openai.ChatCompletionRequest{
			Model:    req.Model,
			Messages: openAIMessages(req.Messages),
			Stream:   true,
			StreamOptions: &openai.StreamOptions{
				IncludeUsage: true,
			},
		}
		if req.Temperature != nil {
			chatReq.Temperature = *req.Temperature
		}
		if req.MaxTokens > 0 {
			chatReq.MaxCompletionTokens = req.MaxTokens
		}
		if len(req.Tools) > 0 {
			chatReq.Tools = openAITools(req.Tools)
		}

		stream, err := client.CreateChatCompletionStream(ctx, chatReq)
		if err != nil {
			errs <- err
			return
		}
		defer stream.Close()

		finish := FinishStop
		var usage Usage

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				usage.Cost = CostFor(req.Model, usage)
				emit(ctx, chunks, Chunk{FinishReason: finish, Usage: &usage})
				return
			}
			if err != nil {
				errs <- err
				return
			}

			if resp.Usage != nil {
				usage.InputTokens = resp.Usage.PromptTokens
				usage.OutputTokens = resp.Usage.CompletionTokens
			}
			if len(resp.Choices) == 0 {
				continue
			}
			choice := resp.Choices[0]

			if choice.Delta.Content != "" {
				emit(ctx, chunks, Chunk{TextDelta: choice.Delta.Content})
			}
			for _, tc := range choice.Delta.ToolCalls {
				index := 0
				if tc.Index != nil {
					index = *tc.Index
				}
				emit(ctx, chunks, Chunk{ToolCall: &ToolCallDelta{
					Index:     index,
					ID:        tc.ID,
					Name:      tc.Function.Name,
					ArgsDelta: tc.Function.Arguments,
				}})
			}
			if choice.FinishReason == openai.FinishReasonToolCalls {
				finish = FinishToolCalls
			}
		}
	}()

	return chunks, errs
}

func openAIMessages(messages []models.ContextMessage) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			result = append(result, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleSystem,
				Content: msg.Content,
			})
		case models.RoleAssistant:
			m := openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: msg.Content,
			}
			for _, tc := range msg.ToolCalls {
				args, _ := json.Marshal(tc.Args)
				m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Name,
						Arguments: string(args),
					},
				})
			}
			result = append(result, m)
		case models.RoleTool:
			result = append(result, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    msg.Content,
				ToolCallID: msg.ToolCallID,
			})
		default:
			result = append(result, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: msg.Content,
			})
		}
	}
	return result
}

func openAITools(tools []ToolSpec) []openai.Tool {
	result := make([]openai.Tool, len(tools))
	for i, tool := range tools {
		result[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Schema,
			},
		}
	}
	return result
}
