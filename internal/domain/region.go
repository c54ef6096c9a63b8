package domain

// Region is a static catalog entry describing one farmable region.
// Regions are configuration, never mutated at runtime.
type Region struct {
	Specialty string   `json:"specialty" yaml:"specialty"`
	Crops     []string `json:"crops" yaml:"crops"`
	Livestock []string `json:"livestock" yaml:"livestock"`
}

// CropDefinition is a static catalog entry for one crop type.
type CropDefinition struct {
	GrowthTime int `json:"growth_time" yaml:"growth_time"`
	Yield      int `json:"yield" yaml:"yield"`
}
