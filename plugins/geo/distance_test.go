package geo

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ebalda/wayfarer/tools"
)

func defaultCalculator() *Calculator {
	return NewCalculator(DefaultGazetteer())
}

func TestCalculator_Distance_PinnedFixtures(t *testing.T) {
	calc := defaultCalculator()
	ctx := context.Background()

	// Expected values computed from the haversine formula over the
	// built-in coordinates, rounded to 2 decimals.
	fixtures := []struct {
		from, to string
		km, mi   float64
	}{
		{"malaga", "madrid", 415.62, 258.26},
		{"madrid", "barcelona", 505.44, 314.07},
		{"london", "paris", 343.56, 213.48},
		{"new york", "los angeles", 3935.75, 2445.56},
		{"paris", "berlin", 877.46, 545.23},
		{"lisbon", "madrid", 502.45, 312.21},
		{"singapore", "dubai", 5837.14, 3627.03},
		{"madrid", "seville", 390.21, 242.47},
		{"malaga", "fuengirola", 27.20, 16.90},
		{"malaga", "marbella", 47.68, 29.62},
		{"chicago", "toronto", 701.18, 435.69},
		{"beijing", "tokyo", 2089.39, 1298.28},
		{"valencia", "barcelona", 303.17, 188.38},
		{"amsterdam", "berlin", 576.09, 357.96},
	}

	for _, fx := range fixtures {
		t.Run(fx.from+"_to_"+fx.to, func(t *testing.T) {
			res := calc.Distance(ctx, fx.from, fx.to)
			assert.Nil(t, res.Error)
			assert.Equal(t, fx.from, res.FromCity)
			assert.Equal(t, fx.to, res.ToCity)
			assert.Equal(t, fx.km, res.DistanceKm)
			assert.Equal(t, fx.mi, res.DistanceMiles)
		})
	}
}

func TestCalculator_Distance_Symmetry(t *testing.T) {
	calc := defaultCalculator()
	ctx := context.Background()

	pairs := [][2]string{
		{"malaga", "madrid"},
		{"tokyo", "sydney"},
		{"mexico city", "buenos aires"},
		{"rome", "amsterdam"},
	}
	for _, pair := range pairs {
		forward := calc.Distance(ctx, pair[0], pair[1])
		backward := calc.Distance(ctx, pair[1], pair[0])
		assert.Nil(t, forward.Error)
		assert.Nil(t, backward.Error)
		assert.Equal(t, forward.DistanceKm, backward.DistanceKm)
		assert.Equal(t, forward.DistanceMiles, backward.DistanceMiles)
	}
}

func TestCalculator_Distance_Identity(t *testing.T) {
	calc := defaultCalculator()
	ctx := context.Background()

	cities := []string{
		"malaga", "madrid", "barcelona", "valencia", "seville", "fuengirola",
		"marbella", "london", "paris", "berlin", "rome", "amsterdam", "lisbon",
		"new york", "los angeles", "chicago", "toronto", "mexico city",
		"buenos aires", "tokyo", "beijing", "sydney", "singapore", "dubai",
	}
	for _, city := range cities {
		res := calc.Distance(ctx, city, city)
		assert.Nil(t, res.Error)
		assert.Equal(t, 0.00, res.DistanceKm, "distance %s to itself", city)
		assert.Equal(t, 0.00, res.DistanceMiles)
	}
}

func TestCalculator_Distance_CaseInsensitive(t *testing.T) {
	calc := defaultCalculator()
	ctx := context.Background()

	upper := calc.Distance(ctx, "MADRID", "barcelona")
	lower := calc.Distance(ctx, "madrid", "barcelona")

	assert.Nil(t, upper.Error)
	assert.Equal(t, lower.DistanceKm, upper.DistanceKm)
	assert.Equal(t, lower.DistanceMiles, upper.DistanceMiles)

	// Original casing is echoed back untouched
	assert.Equal(t, "MADRID", upper.FromCity)
	assert.Equal(t, "barcelona", upper.ToCity)
}

func TestCalculator_Distance_UnknownCity(t *testing.T) {
	calc := defaultCalculator()
	ctx := context.Background()

	t.Run("UnknownOrigin", func(t *testing.T) {
		res := calc.Distance(ctx, "Nowhereville", "Madrid")
		assert.NotNil(t, res.Error)
		assert.Equal(t, tools.ErrorKindLookup, res.Error.Kind)
		assert.Contains(t, res.Error.Message, "Nowhereville")
		assert.Equal(t, 0.00, res.DistanceKm)
	})

	t.Run("UnknownDestination", func(t *testing.T) {
		res := calc.Distance(ctx, "Madrid", "Atlantis")
		assert.NotNil(t, res.Error)
		assert.Equal(t, tools.ErrorKindLookup, res.Error.Kind)
		assert.Contains(t, res.Error.Message, "Atlantis")
	})
}

func TestCalculator_Distance_MilesConversion(t *testing.T) {
	calc := defaultCalculator()
	ctx := context.Background()

	res := calc.Distance(ctx, "london", "tokyo")
	assert.Nil(t, res.Error)
	assert.InDelta(t, res.DistanceKm*0.621371, res.DistanceMiles, 0.01)
}

func TestCalculator_InjectedGazetteer(t *testing.T) {
	// Fixture gazetteer substituted for the built-in table
	g, err := NewStaticGazetteer(map[string]GeoPoint{
		"equator west": {Lat: 0, Lon: 0},
		"equator east": {Lat: 0, Lon: 180},
	})
	assert.NoError(t, err)

	calc := NewCalculator(g)
	res := calc.Distance(context.Background(), "equator west", "equator east")

	// Antipodal equator points are half the circumference apart
	expected := math.Round(math.Pi*6371*100) / 100
	assert.Nil(t, res.Error)
	assert.Equal(t, expected, res.DistanceKm)
}
