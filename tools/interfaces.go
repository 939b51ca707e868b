package tools

import "context"

// LLMClient is the minimal text-generation surface the manual
// tool-calling loop needs. Providers without native tool support only
// have to implement this.
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
