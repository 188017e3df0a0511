package docqa

import "context"

// TokenCounter counts the model tokens a dataset would consume.
type TokenCounter interface {
	CountTokens(ctx context.Context, records []Record) (int, error)
}
