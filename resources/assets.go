package resources

import (
	"embed"
	"fmt"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultBeverages returns the built-in beverage list as YAML.
func DefaultBeverages() ([]byte, error) {
	data, err := defaultsFS.ReadFile("defaults/beverages.yaml")
	if err != nil {
		return nil, fmt.Errorf("load default beverages: %w", err)
	}
	return data, nil
}
