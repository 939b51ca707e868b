// Copyright 2025
//
// Anthropic plugin for Firebase Genkit Go
// Provides integration with Anthropic's OpenAI-compatible API

package anthropic

import (
	"context"
	"os"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core/api"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai"
	"github.com/openai/openai-go/option"
)

const provider = "anthropic"

// Anthropic is a plugin that provides integration with Anthropic's Claude models.
type Anthropic struct {
	// APIKey is the API key for the Anthropic API. If empty, the values of the environment variable "ANTHROPIC_API_KEY" will be consulted.
	// Request a key at https://console.anthropic.com/
	APIKey string
	// BaseURL is the base URL for the Anthropic API. Defaults to https://api.anthropic.com/v1/
	BaseURL string

	openAICompatible *compat_oai.OpenAICompatible
}

// Name implements genkit.Plugin.
func (a *Anthropic) Name() string {
	return provider
}

// Init implements genkit.Plugin.
func (a *Anthropic) Init(ctx context.Context) []api.Action {
	apiKey := a.APIKey
	baseURL := a.BaseURL

	// if api key is not set, get it from environment variable
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	if apiKey == "" {
		panic("anthropic plugin initialization failed: apiKey is required (set ANTHROPIC_API_KEY or pass APIKey)")
	}

	// Set default base URL if not provided
	if baseURL == "" {
		baseURL = "https://api.anthropic.com/v1/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	if a.openAICompatible == nil {
		a.openAICompatible = &compat_oai.OpenAICompatible{}
	}

	// set the options
	a.openAICompatible.Opts = []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}

	a.openAICompatible.Provider = provider
	compatActions := a.openAICompatible.Init(ctx)

	var actions []api.Action
	actions = append(actions, compatActions...)

	// define default models
	supportedModels := map[string]ai.ModelOptions{
		"claude-sonnet-4-5": {
			Label:    "Anthropic Claude Sonnet 4.5",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"claude-sonnet-4-5"},
		},
		"claude-opus-4-1": {
			Label:    "Anthropic Claude Opus 4.1",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"claude-opus-4-1"},
		},
		"claude-3-7-sonnet-latest": {
			Label:    "Anthropic Claude 3.7 Sonnet",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"claude-3-7-sonnet-latest"},
		},
		"claude-3-5-haiku-latest": {
			Label:    "Anthropic Claude 3.5 Haiku",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"claude-3-5-haiku-latest"},
		},
	}

	for model, opts := range supportedModels {
		actions = append(actions, a.DefineModel(model, opts).(api.Action))
	}

	return actions
}

// Model returns a model by name.
func (a *Anthropic) Model(g *genkit.Genkit, name string) ai.Model {
	return a.openAICompatible.Model(g, api.NewName(provider, name))
}

// DefineModel defines a model with the given ID and options.
func (a *Anthropic) DefineModel(id string, opts ai.ModelOptions) ai.Model {
	return a.openAICompatible.DefineModel(provider, id, opts)
}

// ListActions returns a list of actions provided by this plugin.
func (a *Anthropic) ListActions(ctx context.Context) []api.ActionDesc {
	return a.openAICompatible.ListActions(ctx)
}

// ResolveAction resolves an action by type and name.
func (a *Anthropic) ResolveAction(atype api.ActionType, name string) api.Action {
	return a.openAICompatible.ResolveAction(atype, name)
}

// Helper function to create a model with default options
func (a *Anthropic) DefineModelWithDefaults(id string) ai.Model {
	return a.DefineModel(id, ai.ModelOptions{
		Label:    "Anthropic " + id,
		Supports: &compat_oai.Multimodal,
	})
}
