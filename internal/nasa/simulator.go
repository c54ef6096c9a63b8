// Package nasa produces simulated satellite readings for the farm
// dashboard. The numbers are random, shaped to look like real soil
// moisture and vegetation index data; there is no live integration.
package nasa

import (
	"math"
	"math/rand"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
)

// Forecast values for the precipitation field.
var forecasts = []string{"clear", "light_rain", "heavy_rain"}

// Reading bounds.
const (
	soilMoistureMin    = 0.2
	soilMoistureMax    = 0.8
	vegetationIndexMin = 0.3
	vegetationIndexMax = 0.9
)

// Simulator generates readings on demand.
type Simulator interface {
	Sample(regionName string) domain.NasaData
}

type simulator struct {
	randFloat func() float64 // uniform in [0,1)
	randIntn  func(n int) int
}

// NewSimulator creates a simulator backed by the default RNG.
func NewSimulator() Simulator {
	return &simulator{
		randFloat: rand.Float64,
		randIntn:  rand.Intn,
	}
}

// NewSimulatorWithRand creates a simulator with injected randomness for
// deterministic tests.
func NewSimulatorWithRand(randFloat func() float64, randIntn func(n int) int) Simulator {
	return &simulator{randFloat: randFloat, randIntn: randIntn}
}

// Sample returns a fresh reading. The region name is accepted for API
// symmetry but does not currently shape the output; every region draws
// from the same distributions.
func (s *simulator) Sample(regionName string) domain.NasaData {
	_ = regionName

	return domain.NasaData{
		SoilMoisture:          round2(s.uniform(soilMoistureMin, soilMoistureMax)),
		PrecipitationForecast: forecasts[s.randIntn(len(forecasts))],
		VegetationIndex:       round2(s.uniform(vegetationIndexMin, vegetationIndexMax)),
	}
}

func (s *simulator) uniform(min, max float64) float64 {
	return min + s.randFloat()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
