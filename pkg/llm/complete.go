package llm

import (
	"context"
	"strings"
)

// Complete runs one non-streaming invocation by draining the stream. Used
// for background calls (incident summaries) where nobody watches tokens.
func Complete(ctx context.Context, p Provider, req ChatRequest) (string, *Usage, error) {
	chunks, errs := p.Stream(ctx, req)

	var sb strings.Builder
	var usage *Usage
	for chunks != nil || errs != nil {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				chunks = nil
				continue
			}
			sb.WriteString(chunk.TextDelta)
			if chunk.Usage != nil {
				usage = chunk.Usage
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err != nil {
				return "", usage, err
			}
		case <-ctx.Done():
			return "", usage, ctx.Err()
		}
	}
	return sb.String(), usage, nil
}
