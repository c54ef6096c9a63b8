package domain

// LivestockGroup is a herd of one animal type. No current action
// mutates livestock; the data is carried for the client dashboard.
type LivestockGroup struct {
	Type      string  `json:"type"`
	Count     int     `json:"count"`
	Health    int     `json:"health"`
	FeedLevel float64 `json:"feed_level"`
}

// Quest is an informational objective shown to the player.
type Quest struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	LearningPoint string `json:"learning_point"`
	IsComplete    bool   `json:"is_complete"`
}

// NasaData is one simulated satellite reading. It is transient: the
// stored value is overwritten every time a fresh sample is attached.
type NasaData struct {
	SoilMoisture          float64 `json:"soil_moisture"`
	PrecipitationForecast string  `json:"precipitation_forecast"`
	VegetationIndex       float64 `json:"vegetation_index"`
}

// PlayerState is the full game state for one player. The save store
// owns the canonical copy; services mutate a loaded copy and write the
// whole record back.
type PlayerState struct {
	PlayerName   string           `json:"playerName"`
	Region       string           `json:"region"`
	RegionInfo   *Region          `json:"region_info"`
	Currency     string           `json:"currency"`
	Balance      int              `json:"balance"`
	CurrentDay   int              `json:"current_day"`
	Fields       []Field          `json:"fields"`
	Livestock    []LivestockGroup `json:"livestock"`
	Inventory    map[string]int   `json:"inventory"`
	ActiveQuests []Quest          `json:"active_quests"`
	MarketPrices map[string]int   `json:"market_prices"`
	NasaData     *NasaData        `json:"nasa_data,omitempty"`
}

// Clone returns a deep copy of the state. The save store hands out
// clones so no caller can mutate a stored record in place.
func (s PlayerState) Clone() PlayerState {
	out := s
	out.Fields = append([]Field(nil), s.Fields...)
	out.Livestock = append([]LivestockGroup(nil), s.Livestock...)
	out.ActiveQuests = append([]Quest(nil), s.ActiveQuests...)
	if s.Inventory != nil {
		out.Inventory = make(map[string]int, len(s.Inventory))
		for k, v := range s.Inventory {
			out.Inventory[k] = v
		}
	}
	if s.MarketPrices != nil {
		out.MarketPrices = make(map[string]int, len(s.MarketPrices))
		for k, v := range s.MarketPrices {
			out.MarketPrices[k] = v
		}
	}
	if s.RegionInfo != nil {
		info := *s.RegionInfo
		info.Crops = append([]string(nil), s.RegionInfo.Crops...)
		info.Livestock = append([]string(nil), s.RegionInfo.Livestock...)
		out.RegionInfo = &info
	}
	if s.NasaData != nil {
		data := *s.NasaData
		out.NasaData = &data
	}
	return out
}

// FieldByID returns a pointer into Fields for the matching id, or nil.
func (s *PlayerState) FieldByID(id int) *Field {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i]
		}
	}
	return nil
}
