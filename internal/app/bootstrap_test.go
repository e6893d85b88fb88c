package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-hex-ripple/internal/log"
	"go-hex-ripple/pkg/hexmap"
)

func TestLoadTilesFallbacks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, log.LevelDebug)
	dir := t.TempDir()

	lib := LoadTiles(filepath.Join(dir, "missing.json"), logger)
	if len(lib) != 4 || !strings.Contains(buf.String(), "not found") {
		t.Fatalf("missing file: lib=%d log=%q", len(lib), buf.String())
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	lib = LoadTiles(bad, logger)
	if len(lib) != 4 || !strings.Contains(buf.String(), "ERROR") {
		t.Fatalf("bad file: lib=%d log=%q", len(lib), buf.String())
	}

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`[{"type":"d","name":"Ice","color":"#aaddff","height":0.5,"note_hz":500}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	lib = LoadTiles(good, logger)
	if d, _ := lib.Get(hexmap.TileD); d.Name != "Ice" {
		t.Fatalf("good file: %+v", d)
	}
}
