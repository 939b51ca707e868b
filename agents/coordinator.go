package agents

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/ebalda/wayfarer/log"
)

const coordinatorSystemPrompt = `You are a travel assistant coordinator that manages two specialized agents:

1. A weather agent that provides current weather information for cities.
2. A distance agent that calculates the distance between two cities.

Delegation rules:
- When the user asks about weather, use the ask_weather_agent tool.
- When the user asks about the distance between cities, use the ask_distance_agent tool.
- When the user asks about both, use both tools and combine the results.

Distance questions:
- "How far is X from Y?" means the distance from X to Y.
- If the user does not name two cities, assume the journey starts in Malaga, Spain.
- Always mention both cities explicitly in the query you send, formatted as "Calculate the distance from [city1] to [city2]".

Be helpful, concise and informative in your final answer.`

// DelegateInput is the input for the ask_*_agent delegation tools
type DelegateInput struct {
	Query string `json:"query" description:"The question to forward to the specialist agent"`
}

// Coordinator routes user queries to specialist agents exposed to the
// model as delegation tools, then composes the final answer.
type Coordinator struct {
	genkit    *genkit.Genkit
	model     ai.Model
	maxTurns  int
	delegates []ai.ToolRef
}

var _ Assistant = (*Coordinator)(nil)

// NewCoordinator wraps the weather and distance agents in delegation
// tools and returns the coordinating agent.
func NewCoordinator(gk *genkit.Genkit, model ai.Model, maxTurns int, weather, distance Assistant) *Coordinator {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	askWeather := genkit.DefineTool(gk, "ask_weather_agent",
		"Ask the weather agent for current weather information. Arguments: query (string, required).",
		func(ctx *ai.ToolContext, input *DelegateInput) (string, error) {
			return askAgent(ctx, "weather agent", weather, "Error getting weather information", input.Query), nil
		},
	)

	askDistance := genkit.DefineTool(gk, "ask_distance_agent",
		"Ask the distance agent to calculate the distance between two cities. Arguments: query (string, required).",
		func(ctx *ai.ToolContext, input *DelegateInput) (string, error) {
			return askAgent(ctx, "distance agent", distance, "Error calculating distance", input.Query), nil
		},
	)

	return &Coordinator{
		genkit:    gk,
		model:     model,
		maxTurns:  maxTurns,
		delegates: []ai.ToolRef{askWeather, askDistance},
	}
}

// askAgent forwards a query to a specialist. Failures come back as
// apologetic text so the coordinator can still finish its answer.
func askAgent(ctx context.Context, label string, target Assistant, apology string, query string) string {
	log.Infof(ctx, "[Coordinator] Asking %s: %s", label, query)

	answer, err := target.Answer(ctx, query)
	if err != nil {
		log.Errorf(ctx, "[Coordinator] %s failed: %v", label, err)
		return fmt.Sprintf("%s: %v", apology, err)
	}
	return answer
}

// Answer runs one user query through the coordinator model.
func (c *Coordinator) Answer(ctx context.Context, query string) (string, error) {
	log.Infof(ctx, "[Coordinator] Processing query: %s", query)

	response, err := genkit.Generate(ctx,
		c.genkit,
		ai.WithModel(c.model),
		ai.WithSystem(coordinatorSystemPrompt),
		ai.WithPrompt(query),
		ai.WithTools(c.delegates...),
		ai.WithMaxTurns(c.maxTurns),
	)
	if err != nil {
		log.Errorf(ctx, "[Coordinator] Generate error: %v", err)
		return "", fmt.Errorf("coordination failed: %w", err)
	}

	return response.Text(), nil
}
