package tools_test

import (
	"context"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebalda/wayfarer/plugins/geo"
	"github.com/ebalda/wayfarer/tools"
)

func TestNewRegistry(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NotNil(t, reg)
	assert.Empty(t, reg.GetTools())
	assert.Empty(t, reg.Names())
}

func TestRegistry_Register(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	reg := tools.NewRegistry()

	// Register a dummy tool
	reg.Register(genkit.DefineTool[*geo.DistanceInput, string](
		gk,
		"testTool",
		"Test Description",
		func(ctx *ai.ToolContext, input *geo.DistanceInput) (string, error) {
			return "ok", nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return "ok", nil
	})

	registered := reg.GetTools()
	assert.Len(t, registered, 1)
	assert.Equal(t, "testTool", registered[0].Definition().Name)

	tool, ok := reg.Get("testTool")
	assert.True(t, ok)
	assert.NotNil(t, tool)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"testTool"}, reg.Names())
}

func TestRegistry_ExecuteTool(t *testing.T) {
	ctx := context.Background()
	gk := genkit.Init(ctx)
	reg := tools.NewRegistry()

	calc := geo.NewCalculator(geo.DefaultGazetteer())
	geo.NewDistanceTool(calc, gk, reg)

	result, err := reg.ExecuteTool(ctx, "calculate_distance", map[string]interface{}{
		"from_city": "madrid",
		"to_city":   "barcelona",
	})

	require.NoError(t, err)
	distance, ok := result.(*geo.DistanceResult)
	require.True(t, ok)
	assert.Equal(t, 505.44, distance.DistanceKm)
	assert.Equal(t, 314.07, distance.DistanceMiles)
	assert.Nil(t, distance.Error)
}

func TestRegistry_ExecuteTool_Unknown(t *testing.T) {
	reg := tools.NewRegistry()

	_, err := reg.ExecuteTool(context.Background(), "teleport", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool not found: teleport")
}
