package agents

import (
	"context"
)

// Assistant answers a single natural-language query with a single text
// response. Implementations carry no conversation state between calls.
type Assistant interface {
	Answer(ctx context.Context, query string) (string, error)
}
