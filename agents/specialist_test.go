package agents

import (
	"context"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeatherSpecialist(t *testing.T) {
	gk := genkit.Init(context.Background())

	s := NewWeatherSpecialist(gk, nil, 5, nil)

	require.NotNil(t, s)
	assert.Equal(t, "WeatherAgent", s.Name())
	assert.Equal(t, weatherSystemPrompt, s.system)
	assert.Equal(t, 5, s.maxTurns)
}

func TestNewDistanceSpecialist(t *testing.T) {
	gk := genkit.Init(context.Background())

	s := NewDistanceSpecialist(gk, nil, 3, nil)

	require.NotNil(t, s)
	assert.Equal(t, "DistanceAgent", s.Name())
	assert.Equal(t, distanceSystemPrompt, s.system)
	assert.Equal(t, 3, s.maxTurns)
}

func TestNewSpecialist_DefaultMaxTurns(t *testing.T) {
	gk := genkit.Init(context.Background())

	s := NewSpecialist("TestAgent", gk, nil, "prompt", 0)

	assert.Equal(t, defaultMaxTurns, s.maxTurns)
	assert.Empty(t, s.tools)
}

func TestSpecialistPrompts(t *testing.T) {
	assert.Contains(t, weatherSystemPrompt, "get_weather")
	assert.Contains(t, weatherSystemPrompt, "Celsius and Fahrenheit")
	assert.Contains(t, distanceSystemPrompt, "calculate_distance")
	assert.Contains(t, distanceSystemPrompt, "kilometers and miles")
}
