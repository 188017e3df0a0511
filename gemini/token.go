// Package gemini measures datasets with the Gemini tokenizer.
package gemini

import (
	"context"

	"github.com/fwojciec/docqa"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ docqa.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts dataset tokens using the local Gemini tokenizer.
// No API calls are made; the tokenizer model is fetched once and cached.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the tokens of every record as one conversation:
// each question is a user turn and each answer the model's reply.
// Empty fields contribute nothing.
func (tc *TokenCounter) CountTokens(ctx context.Context, records []docqa.Record) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	contents := make([]*genai.Content, 0, 2*len(records))
	for _, r := range records {
		if r.Question != "" {
			contents = append(contents, genai.NewContentFromText(r.Question, "user"))
		}
		if r.Answer != "" {
			contents = append(contents, genai.NewContentFromText(r.Answer, "model"))
		}
	}
	if len(contents) == 0 {
		return 0, nil
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
