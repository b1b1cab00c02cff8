package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/rendis/triptap/internal/model"
)

// Per-km fares in INR for the three supported transport modes.
const (
	ModeCar    = "Car (₹10/km)"
	ModeTrain  = "Train (₹2/km)"
	ModeFlight = "Flight (₹6/km)"

	rateCar    = 10.0
	rateTrain  = 2.0
	rateFlight = 6.0
)

// DistanceKm returns the great-circle distance between two points in km.
func DistanceKm(a, b model.Coordinates) float64 {
	pa := orb.Point{a.Lng, a.Lat} // orb.Point is [lng, lat]
	pb := orb.Point{b.Lng, b.Lat}
	return orbgeo.DistanceHaversine(pa, pb) / 1000.0
}

// Costs maps each transport mode to its fare for the given distance,
// rounded to 2 decimals.
func Costs(distanceKm float64) map[string]float64 {
	return map[string]float64{
		ModeCar:    round2(distanceKm * rateCar),
		ModeTrain:  round2(distanceKm * rateTrain),
		ModeFlight: round2(distanceKm * rateFlight),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Estimate geocodes both endpoints and, if both resolve, computes the
// distance and per-mode costs. Unresolved names come back in missed with a
// nil estimate; no distance is computed in that case. err is reserved for
// geocoder transport failures.
func Estimate(g Geocoder, from, to string) (est *model.TravelEstimate, missed []string, err error) {
	fromCoords, ok, err := g.Geocode(from)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		missed = append(missed, from)
	}

	toCoords, ok, err := g.Geocode(to)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		missed = append(missed, to)
	}

	if len(missed) > 0 {
		return nil, missed, nil
	}

	km := DistanceKm(fromCoords, toCoords)
	return &model.TravelEstimate{
		From:       from,
		To:         to,
		FromCoords: fromCoords,
		ToCoords:   toCoords,
		DistanceKm: km,
		Costs:      Costs(km),
	}, nil, nil
}
