package catalog

import (
	"fmt"
	"sort"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
)

// DefaultRegion is used when a new player does not pick a region.
const DefaultRegion = "Morogoro"

// Catalog holds the static game configuration: which regions exist and
// what each crop needs to grow. Built once at startup, read-only after.
type Catalog struct {
	Regions map[string]domain.Region
	Crops   map[string]domain.CropDefinition
}

// Default returns the compiled-in catalog. A YAML override directory can
// replace it at startup, see Load.
func Default() *Catalog {
	return &Catalog{
		Regions: map[string]domain.Region{
			"Morogoro": {
				Specialty: "Rice and Maize farming.",
				Crops:     []string{"Rice", "Maize", "Sunflower"},
				Livestock: []string{"Cattle", "Goats"},
			},
			"Arusha": {
				Specialty: "Horticulture and Coffee.",
				Crops:     []string{"Coffee", "Tomatoes", "Flowers"},
				Livestock: []string{"Dairy Cattle"},
			},
			"Dodoma": {
				Specialty: "Grape and Sorghum cultivation.",
				Crops:     []string{"Grapes", "Sorghum", "Millet"},
				Livestock: []string{"Goats", "Sheep"},
			},
		},
		Crops: map[string]domain.CropDefinition{
			domain.CropMaize: {GrowthTime: 5, Yield: 10},
		},
	}
}

// Region returns the catalog entry for a region name.
func (c *Catalog) Region(name string) (domain.Region, bool) {
	r, ok := c.Regions[name]
	return r, ok
}

// Crop returns the catalog entry for a crop name.
func (c *Catalog) Crop(name string) (domain.CropDefinition, bool) {
	d, ok := c.Crops[name]
	return d, ok
}

// RegionNames returns all region names in stable order.
func (c *Catalog) RegionNames() []string {
	names := make([]string, 0, len(c.Regions))
	for name := range c.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks internal consistency: every region must exist with a
// specialty, and every crop needs a positive growth time and yield.
func (c *Catalog) Validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("catalog has no regions")
	}
	if _, ok := c.Regions[DefaultRegion]; !ok {
		return fmt.Errorf("catalog is missing the default region %q", DefaultRegion)
	}
	for name, crop := range c.Crops {
		if crop.GrowthTime <= 0 {
			return fmt.Errorf("crop %q has non-positive growth_time %d", name, crop.GrowthTime)
		}
		if crop.Yield <= 0 {
			return fmt.Errorf("crop %q has non-positive yield %d", name, crop.Yield)
		}
	}
	return nil
}
