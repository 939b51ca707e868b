package bootstrap

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"github.com/firebase/genkit/go/plugins/ollama"

	"github.com/ebalda/wayfarer/agents"
	"github.com/ebalda/wayfarer/bootstrap/anthropic"
	"github.com/ebalda/wayfarer/config"
	"github.com/ebalda/wayfarer/log"
	"github.com/ebalda/wayfarer/plugins/geo"
	"github.com/ebalda/wayfarer/plugins/openweather"
	"github.com/ebalda/wayfarer/providers/gemini"
	"github.com/ebalda/wayfarer/tools"
)

// App holds the initialized components of the application
type App struct {
	Assistant agents.Assistant
	Genkit    *genkit.Genkit
	Registry  *tools.Registry
	Model     ai.Model
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// Weather lookups cannot work without a key; refuse to start rather
	// than fail on the first query.
	if cfg.Weather.APIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY must be set")
	}

	// 1. Setup Genkit with AI Plugin
	var gk *genkit.Genkit
	var model ai.Model

	switch cfg.AI.Plugin {
	case "ollama":
		log.Infof(ctx, "Using Ollama Plugin (Model: %s)...", cfg.AI.Ollama.Model)
		ollamaPlugin := &ollama.Ollama{
			ServerAddress: cfg.AI.Ollama.BaseURL,
		}
		gk = genkit.Init(ctx, genkit.WithPlugins(ollamaPlugin))

		// Define the model with capabilities - explicitly enable tool support
		model = ollamaPlugin.DefineModel(gk, ollama.ModelDefinition{
			Name: cfg.AI.Ollama.Model,
			Type: "chat",
		}, &ai.ModelOptions{
			Supports: &ai.ModelSupports{
				Multiturn:  true,
				SystemRole: true,
				Tools:      true, // Enable tool support
				Media:      false,
			},
		})

	case "anthropic":
		log.Infof(ctx, "Using Anthropic Plugin (Model: %s)...", cfg.AI.Anthropic.Model)
		if cfg.AI.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY must be set")
		}

		anthropicPlugin := &anthropic.Anthropic{
			APIKey:  cfg.AI.Anthropic.APIKey,
			BaseURL: cfg.AI.Anthropic.BaseURL,
		}
		gk = genkit.Init(ctx, genkit.WithPlugins(anthropicPlugin))
		model = anthropicPlugin.Model(gk, cfg.AI.Anthropic.Model)

	default:
		log.Info(ctx, "Using Gemini Plugin...")
		if cfg.AI.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set (or set AI_PLUGIN=ollama)")
		}

		gk = genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{
			APIKey: cfg.AI.Gemini.APIKey,
		}))
		model = googlegenai.GoogleAIModel(gk, cfg.AI.Gemini.Model)
	}

	// 2. Init Tools Registry
	registry := tools.NewRegistry()

	// Initializing the weather client registers its tool automatically
	openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL,
		cfg.Weather.TimeoutSeconds, cfg.Weather.MaxRetries, gk, registry)

	// Distance tool over the built-in gazetteer
	calculator := geo.NewCalculator(geo.DefaultGazetteer())
	geo.NewDistanceTool(calculator, gk, registry)

	// 3. Init Agents
	var assistant agents.Assistant

	if cfg.Agent.Mode == "manual" {
		// Manual mode drives the tools through the JSON-protocol loop
		// with a direct Gemini client instead of Genkit generation.
		log.Info(ctx, "Initializing manual agent loop...")
		if cfg.AI.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set for manual agent mode")
		}

		llmClient, err := gemini.NewClient(ctx, cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}

		assistant, err = tools.NewAgent(gk, registry, llmClient, cfg.Agent.MaxTurns)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize manual agent: %w", err)
		}
	} else {
		log.Info(ctx, "Initializing coordinator and specialist agents...")
		weatherTool, ok := registry.Get("get_weather")
		if !ok {
			return nil, fmt.Errorf("get_weather tool is not registered")
		}
		distanceTool, ok := registry.Get("calculate_distance")
		if !ok {
			return nil, fmt.Errorf("calculate_distance tool is not registered")
		}

		weatherAgent := agents.NewWeatherSpecialist(gk, model, cfg.Agent.MaxTurns, weatherTool)
		distanceAgent := agents.NewDistanceSpecialist(gk, model, cfg.Agent.MaxTurns, distanceTool)
		assistant = agents.NewCoordinator(gk, model, cfg.Agent.MaxTurns, weatherAgent, distanceAgent)
	}

	return &App{
		Assistant: assistant,
		Genkit:    gk,
		Registry:  registry,
		Model:     model,
	}, nil
}
