package openweather

import (
	"context"
	"net/http"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebalda/wayfarer/tools"
)

func TestWeatherTool_Metadata(t *testing.T) {
	tool := &WeatherTool{}

	assert.Equal(t, "get_weather", tool.Name())
	assert.Contains(t, tool.Description(), "weather")
	assert.Contains(t, tool.Description(), "city")
}

func TestWeatherTool_Execute_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(currentWeatherJSON))
	})
	tool := &WeatherTool{client: client}

	report, err := tool.Execute(context.Background(), &WeatherInput{City: "London"})

	require.NoError(t, err)
	assert.Equal(t, "London", report.City)
	assert.Equal(t, 22.5, report.TemperatureC)
	assert.Nil(t, report.Error)
}

func TestWeatherTool_Execute_EmbedsError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})
	tool := &WeatherTool{client: client}

	report, err := tool.Execute(context.Background(), &WeatherInput{City: "Nowhereville"})

	// Tool failures ride in the payload, never as a Go error.
	require.NoError(t, err)
	assert.Equal(t, "Nowhereville", report.City)
	require.NotNil(t, report.Error)
	assert.Equal(t, tools.ErrorKindAPI, report.Error.Kind)
	assert.Contains(t, report.Error.Message, "city not found")
}

func TestRegisterTools(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	registry := tools.NewRegistry()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(currentWeatherJSON))
	})
	// newTestClient skips registration, wire it up explicitly.
	client.registerTools(gk, registry)

	_, ok := registry.Get("get_weather")
	require.True(t, ok)

	result, err := registry.ExecuteTool(ctx, "get_weather", map[string]interface{}{"city": "London"})

	require.NoError(t, err)
	report, ok := result.(*Report)
	require.True(t, ok)
	assert.Equal(t, "London", report.City)
	assert.Equal(t, 22.5, report.TemperatureC)
	assert.Equal(t, 72.5, report.TemperatureF)
}
