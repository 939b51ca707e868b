package geo

import (
	"context"
	"math"

	"github.com/ebalda/wayfarer/log"
	"github.com/ebalda/wayfarer/tools"
)

const (
	// earthRadiusKm is the mean Earth radius. Haversine over a sphere
	// carries roughly 0.5% error versus ellipsoidal models, which is
	// accepted here.
	earthRadiusKm = 6371

	milesPerKm = 0.621371
)

// DistanceResult is the tool payload for a distance calculation.
// Either the distance fields or Error is populated, never both.
type DistanceResult struct {
	FromCity      string       `json:"from_city"`
	ToCity        string       `json:"to_city"`
	DistanceKm    float64      `json:"distance_km"`
	DistanceMiles float64      `json:"distance_miles"`
	Error         *tools.Error `json:"error,omitempty"`
}

// Calculator computes great-circle distances between gazetteer cities.
type Calculator struct {
	gazetteer Gazetteer
}

// NewCalculator creates a Calculator over the given gazetteer.
func NewCalculator(g Gazetteer) *Calculator {
	return &Calculator{gazetteer: g}
}

// Distance resolves both cities and returns the haversine distance
// between them, in kilometers and miles rounded to 2 decimals. An
// unknown city produces a lookup error payload naming the city as the
// caller spelled it. Pure apart from the diagnostic log line.
func (c *Calculator) Distance(ctx context.Context, fromCity, toCity string) *DistanceResult {
	from, ok := c.gazetteer.Lookup(fromCity)
	if !ok {
		log.Infof(ctx, "[Geo] Unknown origin city %q", fromCity)
		return &DistanceResult{
			Error: tools.NewError(tools.ErrorKindLookup, "Coordinates for %s not found. Please try another city.", fromCity),
		}
	}

	to, ok := c.gazetteer.Lookup(toCity)
	if !ok {
		log.Infof(ctx, "[Geo] Unknown destination city %q", toCity)
		return &DistanceResult{
			Error: tools.NewError(tools.ErrorKindLookup, "Coordinates for %s not found. Please try another city.", toCity),
		}
	}

	km := haversineKm(from, to)
	result := &DistanceResult{
		FromCity:      fromCity,
		ToCity:        toCity,
		DistanceKm:    round2(km),
		DistanceMiles: round2(km * milesPerKm),
	}

	log.Infof(ctx, "[Geo] Distance %s -> %s: %.2f km / %.2f miles", fromCity, toCity, result.DistanceKm, result.DistanceMiles)
	return result
}

// haversineKm returns the great-circle distance in kilometers between
// two points on a sphere of radius earthRadiusKm.
func haversineKm(from, to GeoPoint) float64 {
	lat1 := radians(from.Lat)
	lon1 := radians(from.Lon)
	lat2 := radians(to.Lat)
	lon2 := radians(to.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// round2 rounds to 2 decimal places, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
