package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
)

// Config file names expected inside the catalog directory.
const (
	RegionsFileName = "regions.yaml"
	CropsFileName   = "crops.yaml"
)

type regionsFile struct {
	Regions map[string]domain.Region `yaml:"regions"`
}

type cropsFile struct {
	Crops map[string]domain.CropDefinition `yaml:"crops"`
}

// Load reads the catalog from a config directory. Files replace the
// compiled-in defaults wholesale rather than merging, so an operator
// who ships regions.yaml owns the complete region list.
func Load(dir string) (*Catalog, error) {
	c := Default()

	regions, err := loadRegions(filepath.Join(dir, RegionsFileName))
	if err != nil {
		return nil, err
	}
	if regions != nil {
		c.Regions = regions
	}

	crops, err := loadCrops(filepath.Join(dir, CropsFileName))
	if err != nil {
		return nil, err
	}
	if crops != nil {
		c.Crops = crops
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog config in %s: %w", dir, err)
	}
	return c, nil
}

func loadRegions(path string) (map[string]domain.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f regionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f.Regions, nil
}

func loadCrops(path string) (map[string]domain.CropDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f cropsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f.Crops, nil
}
