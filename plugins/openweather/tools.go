package openweather

import (
	"context"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/ebalda/wayfarer/log"
	"github.com/ebalda/wayfarer/tools"
)

// WeatherTool exposes current-weather lookups as the get_weather tool.
type WeatherTool struct {
	client *Client
}

// WeatherInput is the input for the get_weather tool
type WeatherInput struct {
	City string `json:"city" description:"The name of the city to get weather for"`
}

// Name returns the tool name
func (t *WeatherTool) Name() string {
	return "get_weather"
}

// Description returns the tool description
func (t *WeatherTool) Description() string {
	return "Gets current weather for a city: temperature in Celsius and Fahrenheit, conditions, humidity, wind speed and pressure. Arguments: city (string, required)."
}

// Execute runs a weather lookup. Failures are embedded in the report
// payload rather than returned, so the model always sees a structured
// result it can relay.
func (t *WeatherTool) Execute(ctx context.Context, input *WeatherInput) (*Report, error) {
	log.Debugf(ctx, "[Weather] get_weather executing for %q", input.City)

	report, err := t.client.CurrentWeather(ctx, input.City)
	if err != nil {
		return &Report{City: input.City, Error: tools.AsError(err)}, nil
	}
	return report, nil
}

// registerTools wires the client's tools into genkit and the registry.
func (c *Client) registerTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}

	t := &WeatherTool{client: c}

	registry.Register(
		genkit.DefineTool(gk, t.Name(), t.Description(),
			func(ctx *ai.ToolContext, input *WeatherInput) (*Report, error) {
				return t.Execute(ctx, input)
			}),
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			city, _ := args["city"].(string)
			return t.Execute(ctx, &WeatherInput{City: city})
		},
	)

	log.Info(context.Background(), "[Weather] Registered tool: get_weather")
}
