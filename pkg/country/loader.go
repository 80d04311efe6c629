package country

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML or JSON dataset and builds a table from it
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read country dataset: %w", err)
	}

	var countries []Country
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &countries); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidDataset, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &countries); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidDataset, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported dataset format: %s", ErrInvalidDataset, ext)
	}

	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}
	return NewTable(countries), nil
}

func mustDecodeTable(data []byte) *Table {
	var countries []Country
	if err := yaml.Unmarshal(data, &countries); err != nil {
		panic(fmt.Sprintf("country: embedded dataset is corrupt: %v", err))
	}
	return NewTable(countries)
}
