package agents

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/ebalda/wayfarer/log"
)

const weatherSystemPrompt = `You are a helpful weather assistant.
You provide current weather information for cities around the world using the get_weather tool.
Always present the weather in a clear, concise format.
Include temperature in both Celsius and Fahrenheit.`

const distanceSystemPrompt = `You are a helpful distance calculator assistant.
You calculate the distance between two cities using the calculate_distance tool.
Always provide distances in both kilometers and miles.
Be precise and clear in your responses.`

const defaultMaxTurns = 5

// Specialist is a single-purpose agent: one system prompt, one tool,
// answered with Genkit's native tool calling.
type Specialist struct {
	name     string
	genkit   *genkit.Genkit
	model    ai.Model
	system   string
	tools    []ai.ToolRef
	maxTurns int
}

var _ Assistant = (*Specialist)(nil)

// NewSpecialist creates an agent bound to the given system prompt and
// tools. maxTurns caps the generate/tool-call iterations per query.
func NewSpecialist(name string, gk *genkit.Genkit, model ai.Model, system string, maxTurns int, toolRefs ...ai.ToolRef) *Specialist {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Specialist{
		name:     name,
		genkit:   gk,
		model:    model,
		system:   system,
		tools:    toolRefs,
		maxTurns: maxTurns,
	}
}

// NewWeatherSpecialist creates the agent that answers current-weather
// questions via the get_weather tool.
func NewWeatherSpecialist(gk *genkit.Genkit, model ai.Model, maxTurns int, weatherTool ai.ToolRef) *Specialist {
	return NewSpecialist("WeatherAgent", gk, model, weatherSystemPrompt, maxTurns, weatherTool)
}

// NewDistanceSpecialist creates the agent that answers city-distance
// questions via the calculate_distance tool.
func NewDistanceSpecialist(gk *genkit.Genkit, model ai.Model, maxTurns int, distanceTool ai.ToolRef) *Specialist {
	return NewSpecialist("DistanceAgent", gk, model, distanceSystemPrompt, maxTurns, distanceTool)
}

// Name returns the agent name
func (s *Specialist) Name() string {
	return s.name
}

// Answer runs one query through the model with the specialist's tools.
func (s *Specialist) Answer(ctx context.Context, query string) (string, error) {
	log.Infof(ctx, "[%s] Handling query: %s", s.name, query)

	response, err := genkit.Generate(ctx,
		s.genkit,
		ai.WithModel(s.model),
		ai.WithSystem(s.system),
		ai.WithPrompt(query),
		ai.WithTools(s.tools...),
		ai.WithMaxTurns(s.maxTurns),
	)
	if err != nil {
		log.Errorf(ctx, "[%s] Generate error: %v", s.name, err)
		return "", fmt.Errorf("%s generation failed: %w", s.name, err)
	}

	return response.Text(), nil
}
