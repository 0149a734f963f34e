package llm

import "context"

// Gateway sends one prompt to a generative model and returns its raw textual
// response. One request per invocation; no retries, no streaming.
type Gateway interface {
	Generate(ctx context.Context, systemRole, prompt string, jsonMode bool) (string, error)
}
