package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"brewbell/internal/core/model"
	"brewbell/internal/core/shape"
	"brewbell/resources"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const beveragesFileName = "beverages.yaml"

// Format selects the on-disk encoding of a beverage list.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks TOML for .toml files and YAML otherwise.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

type beverageRecord struct {
	Name        string `yaml:"name" toml:"name"`
	BrewSeconds int    `yaml:"brew_seconds" toml:"brew_seconds"`
	Shape       string `yaml:"shape" toml:"shape"`
}

type beverageFile struct {
	Beverages []beverageRecord `yaml:"beverages" toml:"beverages"`
}

// BeveragesPath returns the default location of the beverage list.
func BeveragesPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, beveragesFileName), nil
}

// DefaultBeverages returns the built-in beverage set.
func DefaultBeverages() []model.Beverage {
	data, err := resources.DefaultBeverages()
	if err != nil {
		panic(err)
	}
	beverages, err := Decode(data, FormatYAML)
	if err != nil {
		panic(fmt.Errorf("embedded default beverages: %w", err))
	}
	return beverages
}

// LoadBeverages reads a beverage list. A missing file yields the defaults.
func LoadBeverages(path string) ([]model.Beverage, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultBeverages(), nil
		}
		return nil, fmt.Errorf("read beverages file: %w", err)
	}

	beverages, err := Decode(rawData, FormatForPath(path))
	if err != nil {
		return nil, err
	}
	if beverages == nil {
		return DefaultBeverages(), nil
	}
	return beverages, nil
}

// SaveBeverages writes a beverage list, creating its directory.
func SaveBeverages(path string, beverages []model.Beverage) error {
	serialized, err := Encode(beverages, FormatForPath(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write beverages file: %w", err)
	}
	return nil
}

// Decode parses a beverage list. Records are normalised rather than
// rejected: brew times are clamped, unknown shapes become the default and
// records without a name are skipped. A document without a beverages key
// decodes to nil.
func Decode(data []byte, format Format) ([]model.Beverage, error) {
	var fileData beverageFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &fileData); err != nil {
			return nil, fmt.Errorf("parse beverages toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &fileData); err != nil {
			return nil, fmt.Errorf("parse beverages yaml: %w", err)
		}
	}

	if fileData.Beverages == nil {
		return nil, nil
	}
	beverages := make([]model.Beverage, 0, len(fileData.Beverages))
	for index, record := range fileData.Beverages {
		name := strings.TrimSpace(record.Name)
		if name == "" {
			slog.Warn("skipping unnamed beverage", "index", index)
			continue
		}
		beverages = append(beverages, model.NewBeverage(
			name,
			model.ClampBrewSeconds(record.BrewSeconds),
			shape.ShapeForLabel(record.Shape),
		))
	}
	return beverages, nil
}

// Encode serialises a beverage list as name/time/shape-label triples.
func Encode(beverages []model.Beverage, format Format) ([]byte, error) {
	fileData := beverageFile{Beverages: make([]beverageRecord, 0, len(beverages))}
	for _, beverage := range beverages {
		fileData.Beverages = append(fileData.Beverages, beverageRecord{
			Name:        beverage.Name,
			BrewSeconds: beverage.BrewSeconds,
			Shape:       shape.LabelForShape(beverage.Shape),
		})
	}

	switch format {
	case FormatTOML:
		serialized, err := toml.Marshal(fileData)
		if err != nil {
			return nil, fmt.Errorf("marshal beverages toml: %w", err)
		}
		return serialized, nil
	default:
		serialized, err := yaml.Marshal(fileData)
		if err != nil {
			return nil, fmt.Errorf("marshal beverages yaml: %w", err)
		}
		return serialized, nil
	}
}

// Reconcile carries IDs over from previous to records of loaded with the same
// name, time and shape, so menu items survive a reload of an unchanged file.
// changed reports whether the lists differ in content or order.
func Reconcile(previous, loaded []model.Beverage) (result []model.Beverage, changed bool) {
	type key struct {
		name    string
		seconds int
		shape   shape.Shape
	}
	available := make(map[key][]model.Beverage, len(previous))
	for _, beverage := range previous {
		k := key{beverage.Name, beverage.BrewSeconds, shape.Normalize(beverage.Shape)}
		available[k] = append(available[k], beverage)
	}

	changed = len(previous) != len(loaded)
	result = make([]model.Beverage, 0, len(loaded))
	for index, beverage := range loaded {
		k := key{beverage.Name, beverage.BrewSeconds, shape.Normalize(beverage.Shape)}
		if matches := available[k]; len(matches) > 0 {
			beverage.ID = matches[0].ID
			available[k] = matches[1:]
		}
		if !changed && previous[index].ID != beverage.ID {
			changed = true
		}
		result = append(result, beverage)
	}
	return result, changed
}
