package game

import (
	"fmt"
	"math"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
)

// AdvanceDay moves one player's farm forward a single simulated day:
// the day counter increments, every market price is re-rolled, and each
// growing field progresses. Only the passed-in state is touched.
//
// Per field with a crop in Growing status:
//   - the crop gains a growth stage only if water is above the grow
//     threshold, but water decays either way;
//   - once the stage reaches the crop's growth time the status flips to
//     Ready to Harvest, leaving crop and stage untouched.
//
// Fallow and Ready fields are skipped entirely; nothing here ever adds
// water or health.
func AdvanceDay(state *domain.PlayerState, crops map[string]domain.CropDefinition, randInt func(min, max int) int) error {
	state.CurrentDay++

	for item := range state.MarketPrices {
		state.MarketPrices[item] = randInt(domain.MarketPriceMin, domain.MarketPriceMax)
	}

	for i := range state.Fields {
		field := &state.Fields[i]
		if field.Crop == "" || field.Status != domain.FieldStatusGrowing {
			continue
		}

		if field.WaterLevel > domain.WaterGrowThreshold {
			field.GrowthStage++
		}
		field.WaterLevel = math.Max(0, field.WaterLevel-domain.WaterDecayPerDay)

		crop, ok := crops[field.Crop]
		if !ok {
			return fmt.Errorf("%w: %q in field %d", domain.ErrUnknownCrop, field.Crop, field.ID)
		}
		if field.GrowthStage >= crop.GrowthTime {
			field.Status = domain.FieldStatusReady
		}
	}

	return nil
}
