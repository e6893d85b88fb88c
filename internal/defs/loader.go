// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnknownTileType — в файле определений встретился тип вне набора A..D.
var ErrUnknownTileType = errors.New("unknown tile type")

// LoadTileDefinitions читает файл с определениями тайлов.
// Отсутствующие в файле типы берутся из встроенной библиотеки.
func LoadTileDefinitions(path string) (TileLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile definitions file: %w", err)
	}
	return ParseTileDefinitions(file)
}

// ParseTileDefinitions разбирает JSON-массив определений.
func ParseTileDefinitions(data []byte) (TileLibrary, error) {
	var tileDefs []TileDefinition
	if err := json.Unmarshal(data, &tileDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tile definitions: %w", err)
	}

	lib := DefaultTileLibrary()
	seen := make(map[string]bool)
	for _, def := range tileDefs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		key := def.Type.String()
		if seen[key] {
			return nil, fmt.Errorf("duplicate definition for tile %v", def.Type)
		}
		seen[key] = true
		lib[def.Type] = def
	}
	return lib, nil
}
