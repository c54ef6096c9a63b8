package domain

// FieldStatus describes where a field is in the grow cycle.
type FieldStatus string

const (
	FieldStatusFallow  FieldStatus = "Fallow"
	FieldStatusGrowing FieldStatus = "Growing"
	FieldStatusReady   FieldStatus = "Ready to Harvest"
)

// Field is one plot of farmable land. A field holds at most one crop;
// Crop is empty exactly when the field is Fallow.
type Field struct {
	ID          int         `json:"id"`
	Crop        string      `json:"crop"`
	Status      FieldStatus `json:"status"`
	WaterLevel  float64     `json:"water_level"`
	GrowthStage int         `json:"growth_stage"`
	Health      int         `json:"health"`
}

// Reset returns the field to Fallow after a harvest. Water level and
// health are deliberately left where they are.
func (f *Field) Reset() {
	f.Crop = ""
	f.Status = FieldStatusFallow
	f.GrowthStage = 0
}
