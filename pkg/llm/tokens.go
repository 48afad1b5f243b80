package llm

// EstimateTokens approximates the token count of text. Providers tokenize
// differently; four characters per token is close enough for budget checks
// and errs on the permissive side for English prose.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	n := len(text) / 4
	if n == 0 {
		n = 1
	}
	return n
}
