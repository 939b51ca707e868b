package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	AI      AIConfig      `yaml:"ai"`
	Agent   AgentConfig   `yaml:"agent"`
	Weather WeatherConfig `yaml:"weather"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type AIConfig struct {
	Plugin    string          `yaml:"plugin" env:"AI_PLUGIN" env-default:"gemini"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Ollama    OllamaConfig    `yaml:"ollama"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

type OllamaConfig struct {
	Model   string `yaml:"model" env:"OLLAMA_MODEL" env-default:"qwen3:4b"`
	BaseURL string `yaml:"base_url" env:"OLLAMA_BASE_URL" env-default:"http://localhost:11434"`
}

type AnthropicConfig struct {
	APIKey  string `yaml:"api_key" env:"ANTHROPIC_API_KEY"`
	Model   string `yaml:"model" env:"ANTHROPIC_MODEL" env-default:"claude-3-7-sonnet-latest"`
	BaseURL string `yaml:"base_url" env:"ANTHROPIC_BASE_URL" env-default:"https://api.anthropic.com/v1"`
}

type AgentConfig struct {
	// Mode selects the tool-calling strategy: "native" uses the model's
	// built-in tool support, "manual" drives the JSON tool protocol loop.
	Mode     string `yaml:"mode" env:"AGENT_MODE" env-default:"native"`
	MaxTurns int    `yaml:"max_turns" env:"AGENT_MAX_TURNS" env-default:"5"`
}

// WeatherConfig configures the current-weather client. APIKey has no
// default on purpose: a missing key is a setup error, not something to
// paper over with a baked-in credential.
type WeatherConfig struct {
	APIKey         string `yaml:"api_key" env:"OPENWEATHER_API_KEY"`
	BaseURL        string `yaml:"base_url" env:"WEATHER_BASE_URL" env-default:"https://api.openweathermap.org/data/2.5"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"WEATHER_TIMEOUT_SECONDS" env-default:"10"`
	MaxRetries     int    `yaml:"max_retries" env:"WEATHER_MAX_RETRIES" env-default:"0"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// No config file; env vars and defaults only
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
