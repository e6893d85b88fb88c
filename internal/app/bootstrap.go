// internal/app/bootstrap.go
package app

import (
	"errors"
	"io/fs"

	"go-hex-ripple/internal/defs"
	"go-hex-ripple/internal/log"
)

// LoadTiles читает определения тайлов. Отсутствующий файл — не ошибка:
// берутся встроенные значения. Битый файл логируется и тоже заменяется встроенными.
func LoadTiles(path string, logger *log.Logger) defs.TileLibrary {
	if path == "" {
		return defs.DefaultTileLibrary()
	}
	lib, err := defs.LoadTileDefinitions(path)
	switch {
	case err == nil:
		logger.Infof("loaded %d tile definitions from %s", len(lib), path)
		return lib
	case errors.Is(err, fs.ErrNotExist):
		logger.Warnf("tile definitions %s not found, using built-in defaults", path)
	default:
		logger.Errorf("tile definitions %s: %v; using built-in defaults", path, err)
	}
	return defs.DefaultTileLibrary()
}
