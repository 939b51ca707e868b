package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistant struct {
	answer string
	err    error
	asked  []string
}

func (s *stubAssistant) Answer(_ context.Context, query string) (string, error) {
	s.asked = append(s.asked, query)
	return s.answer, s.err
}

func TestAskAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("success_passes_through", func(t *testing.T) {
		stub := &stubAssistant{answer: "It is 22.5°C in London."}

		got := askAgent(ctx, "weather agent", stub, "Error getting weather information", "weather in London?")

		assert.Equal(t, "It is 22.5°C in London.", got)
		require.Len(t, stub.asked, 1)
		assert.Equal(t, "weather in London?", stub.asked[0])
	})

	t.Run("failure_becomes_text", func(t *testing.T) {
		stub := &stubAssistant{err: errors.New("boom")}

		got := askAgent(ctx, "weather agent", stub, "Error getting weather information", "weather in London?")

		assert.Equal(t, "Error getting weather information: boom", got)
	})
}

func TestNewCoordinator(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)

	weather := &stubAssistant{answer: "sunny"}
	distance := &stubAssistant{answer: "505.44 km"}

	c := NewCoordinator(gk, nil, 5, weather, distance)

	require.NotNil(t, c)
	assert.Len(t, c.delegates, 2)
	assert.Equal(t, 5, c.maxTurns)
}

func TestNewCoordinator_DefaultMaxTurns(t *testing.T) {
	gk := genkit.Init(context.Background())

	c := NewCoordinator(gk, nil, 0, &stubAssistant{}, &stubAssistant{})

	assert.Equal(t, defaultMaxTurns, c.maxTurns)
}

func TestCoordinatorSystemPrompt(t *testing.T) {
	assert.Contains(t, coordinatorSystemPrompt, "ask_weather_agent")
	assert.Contains(t, coordinatorSystemPrompt, "ask_distance_agent")
	assert.Contains(t, coordinatorSystemPrompt, "Malaga, Spain")
	assert.Contains(t, coordinatorSystemPrompt, "Calculate the distance from [city1] to [city2]")
}
