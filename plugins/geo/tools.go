package geo

import (
	"context"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/ebalda/wayfarer/log"
	"github.com/ebalda/wayfarer/tools"
)

// DistanceTool exposes the Calculator as the calculate_distance tool
type DistanceTool struct {
	calculator *Calculator
}

// DistanceInput is the tool argument schema
type DistanceInput struct {
	FromCity string `json:"from_city" description:"The origin city"`
	ToCity   string `json:"to_city" description:"The destination city"`
}

func (t *DistanceTool) Name() string {
	return "calculate_distance"
}

func (t *DistanceTool) Description() string {
	return "Calculates the great-circle distance between two cities in kilometers and miles. Arguments: from_city (string, required), to_city (string, required)."
}

// Execute runs the calculation. Failures are embedded in the result
// payload; the error return is always nil.
func (t *DistanceTool) Execute(ctx context.Context, input *DistanceInput) (*DistanceResult, error) {
	log.Debugf(ctx, "[Geo] calculate_distance executing: %q -> %q", input.FromCity, input.ToCity)
	return t.calculator.Distance(ctx, input.FromCity, input.ToCity), nil
}

// NewDistanceTool wires the calculator into the registry.
func NewDistanceTool(calculator *Calculator, gk *genkit.Genkit, registry *tools.Registry) *DistanceTool {
	t := &DistanceTool{calculator: calculator}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool(gk, t.Name(), t.Description(),
		func(ctx *ai.ToolContext, input *DistanceInput) (*DistanceResult, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		// Adapter for generic registry execution
		fromCity, _ := args["from_city"].(string)
		toCity, _ := args["to_city"].(string)
		return t.Execute(ctx, &DistanceInput{FromCity: fromCity, ToCity: toCity})
	})

	log.Info(context.Background(), "[Geo] Registered tool: calculate_distance")

	return t
}
