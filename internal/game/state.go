package game

import (
	"fmt"
	"math/rand"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
)

// defaultRandInt returns a uniform integer in [min, max].
func defaultRandInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// NewPlayerState builds a brand new farm for a player. The caller must
// have validated the region name against the catalog; this constructor
// trusts its inputs. Everything is fixed except the starting market
// price, which is rolled fresh per farm.
func NewPlayerState(playerName, regionName string, region domain.Region, randInt func(min, max int) int) domain.PlayerState {
	return domain.PlayerState{
		PlayerName: playerName,
		Region:     regionName,
		RegionInfo: &region,
		Currency:   domain.CurrencyTZS,
		Balance:    domain.StartingBalance,
		CurrentDay: domain.StartingDay,
		Fields: []domain.Field{
			{ID: 1, Status: domain.FieldStatusFallow, WaterLevel: domain.StartingFieldWater, GrowthStage: 0, Health: domain.StartingFieldHealth},
			{ID: 2, Status: domain.FieldStatusFallow, WaterLevel: domain.StartingFieldWater, GrowthStage: 0, Health: domain.StartingFieldHealth},
		},
		Livestock: []domain.LivestockGroup{
			{Type: "Goats", Count: 5, Health: 90, FeedLevel: 0.7},
		},
		Inventory: map[string]int{
			domain.ItemMaizeSeed:      10,
			domain.ItemFertilizer:     5,
			domain.ItemGoatFeed:       20,
			domain.ItemHarvestedMaize: 0,
		},
		ActiveQuests: []domain.Quest{
			{
				ID:            starterQuestID,
				Title:         starterQuestTitle,
				Description:   fmt.Sprintf(starterQuestDescFormat, regionName),
				LearningPoint: fmt.Sprintf(starterQuestLearnedFormat, regionName),
				IsComplete:    false,
			},
		},
		MarketPrices: map[string]int{
			domain.ItemHarvestedMaize: randInt(domain.MarketPriceMin, domain.MarketPriceMax),
		},
	}
}
