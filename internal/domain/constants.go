package domain

// Seed values for a brand-new farm.
const (
	StartingBalance     = 50000
	StartingDay         = 1
	StartingFieldWater  = 0.5
	StartingFieldHealth = 100

	CurrencyTZS = "TZS"
)

// Item names used across inventory and market prices.
const (
	ItemMaizeSeed      = "Maize Seed"
	ItemFertilizer     = "Fertilizer"
	ItemGoatFeed       = "Goat Feed"
	ItemHarvestedMaize = "Harvested Maize"

	CropMaize = "Maize"
)

// Market price bounds, re-rolled per item every simulated day.
const (
	MarketPriceMin = 500
	MarketPriceMax = 800
)

// Day advancement tuning.
const (
	WaterDecayPerDay   = 0.2
	WaterGrowThreshold = 0.4
	WaterPerIrrigation = 0.4
	IrrigationCost     = 100
)

// HarvestedItemName returns the inventory key for a harvested crop.
func HarvestedItemName(crop string) string {
	return "Harvested " + crop
}
