// Package geo provides the offline city gazetteer and great-circle
// distance calculation behind the calculate_distance tool.
package geo

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// GeoPoint is a location in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate checks the coordinate ranges.
func (p GeoPoint) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p.Lon)
	}
	return nil
}

// Gazetteer resolves a city name to coordinates. Lookups are
// case-insensitive and exact, never fuzzy.
type Gazetteer interface {
	Lookup(city string) (GeoPoint, bool)
}

// NormalizeCity canonicalizes a city name for lookup: surrounding
// whitespace is dropped and the name is Unicode case-folded.
func NormalizeCity(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// StaticGazetteer is an immutable in-memory Gazetteer. Safe for
// concurrent lookups once constructed.
type StaticGazetteer struct {
	entries map[string]GeoPoint
}

// NewStaticGazetteer builds a gazetteer from the given entries. Keys
// are normalized once and the map is copied, so the caller keeps no
// handle that could mutate the gazetteer afterwards. Entries with
// out-of-range coordinates are rejected.
func NewStaticGazetteer(entries map[string]GeoPoint) (*StaticGazetteer, error) {
	m := make(map[string]GeoPoint, len(entries))
	for name, point := range entries {
		if err := point.Validate(); err != nil {
			return nil, fmt.Errorf("gazetteer entry %q: %w", name, err)
		}
		m[NormalizeCity(name)] = point
	}
	return &StaticGazetteer{entries: m}, nil
}

// Lookup implements Gazetteer.
func (g *StaticGazetteer) Lookup(city string) (GeoPoint, bool) {
	point, ok := g.entries[NormalizeCity(city)]
	return point, ok
}

// Len reports the number of known cities.
func (g *StaticGazetteer) Len() int {
	return len(g.entries)
}

// defaultCities is the built-in city table.
var defaultCities = map[string]GeoPoint{
	// Spain
	"malaga":     {Lat: 36.7213, Lon: -4.4213},
	"madrid":     {Lat: 40.4168, Lon: -3.7038},
	"barcelona":  {Lat: 41.3851, Lon: 2.1734},
	"valencia":   {Lat: 39.4699, Lon: -0.3763},
	"seville":    {Lat: 37.3891, Lon: -5.9845},
	"fuengirola": {Lat: 36.5393, Lon: -4.6249},
	"marbella":   {Lat: 36.5100, Lon: -4.8861},

	// Europe
	"london":    {Lat: 51.5074, Lon: -0.1278},
	"paris":     {Lat: 48.8566, Lon: 2.3522},
	"berlin":    {Lat: 52.5200, Lon: 13.4050},
	"rome":      {Lat: 41.9028, Lon: 12.4964},
	"amsterdam": {Lat: 52.3676, Lon: 4.9041},
	"lisbon":    {Lat: 38.7223, Lon: -9.1393},

	// Americas
	"new york":     {Lat: 40.7128, Lon: -74.0060},
	"los angeles":  {Lat: 34.0522, Lon: -118.2437},
	"chicago":      {Lat: 41.8781, Lon: -87.6298},
	"toronto":      {Lat: 43.6532, Lon: -79.3832},
	"mexico city":  {Lat: 19.4326, Lon: -99.1332},
	"buenos aires": {Lat: 34.6037, Lon: -58.3816},

	// Asia & Oceania
	"tokyo":     {Lat: 35.6762, Lon: 139.6503},
	"beijing":   {Lat: 39.9042, Lon: 116.4074},
	"sydney":    {Lat: 33.8688, Lon: 151.2093},
	"singapore": {Lat: 1.3521, Lon: 103.8198},
	"dubai":     {Lat: 25.2048, Lon: 55.2708},
}

// DefaultGazetteer returns a gazetteer over the built-in city table.
// It panics only if the built-in table is invalid, which would be a
// programming error.
func DefaultGazetteer() *StaticGazetteer {
	g, err := NewStaticGazetteer(defaultCities)
	if err != nil {
		panic(err)
	}
	return g
}
