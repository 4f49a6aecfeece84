// Package ai talks to the language model that writes insights and
// recommendations.
package ai

import "context"

// Status describes the reachability of the model backend.
type Status struct {
	Available      bool
	ModelAvailable bool
	Model          string
	Models         []string
	Error          string
}

// Advisor generates text from a prompt.
type Advisor interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Status(ctx context.Context) Status
}
