package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/model"
)

// JSON seed files for the dev server. Single file, human-readable, read-only:
// the server never writes changes back.

// Load reads a JSON array of items. A missing file yields an empty list.
func Load(path string) ([]model.Item, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	seen := make(map[model.ID]bool, len(items))
	for i, it := range items {
		if it.ID.IsZero() {
			return nil, fmt.Errorf("item %d: missing id", i)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("item %d: duplicate id %s", i, it.ID)
		}
		seen[it.ID] = true
	}
	return items, nil
}
