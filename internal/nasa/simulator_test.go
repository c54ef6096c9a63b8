package nasa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleStaysWithinBounds(t *testing.T) {
	sim := NewSimulator()

	for i := 0; i < 200; i++ {
		reading := sim.Sample("Morogoro")

		assert.GreaterOrEqual(t, reading.SoilMoisture, 0.2)
		assert.LessOrEqual(t, reading.SoilMoisture, 0.8)
		assert.GreaterOrEqual(t, reading.VegetationIndex, 0.3)
		assert.LessOrEqual(t, reading.VegetationIndex, 0.9)
		assert.Contains(t, forecasts, reading.PrecipitationForecast)
	}
}

func TestSampleRoundsToTwoDecimals(t *testing.T) {
	sim := NewSimulatorWithRand(func() float64 { return 0.123456 }, func(n int) int { return 0 })

	reading := sim.Sample("Arusha")

	// 0.2 + 0.123456*0.6 = 0.2740736, rounded to 0.27
	assert.Equal(t, 0.27, reading.SoilMoisture)
	// 0.3 + 0.123456*0.6 = 0.3740736, rounded to 0.37
	assert.Equal(t, 0.37, reading.VegetationIndex)
	assert.Equal(t, "clear", reading.PrecipitationForecast)
}

func TestSampleIgnoresRegion(t *testing.T) {
	// Two simulators seeded identically must produce identical readings
	// for different regions.
	rngA := rand.New(rand.NewSource(7))
	rngB := rand.New(rand.NewSource(7))
	simA := NewSimulatorWithRand(rngA.Float64, rngA.Intn)
	simB := NewSimulatorWithRand(rngB.Float64, rngB.Intn)

	assert.Equal(t, simA.Sample("Morogoro"), simB.Sample("Dodoma"))
}
