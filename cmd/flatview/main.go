// cmd/flatview/main.go
package main

import (
	"flag"
	stdlog "log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-hex-ripple/internal/app"
	"go-hex-ripple/internal/audio"
	"go-hex-ripple/internal/audio/ebitenaudio"
	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/log"
	"go-hex-ripple/pkg/hexmap"
	"go-hex-ripple/pkg/render"
)

var tileKeys = map[ebiten.Key]hexmap.TileType{
	ebiten.Key1: hexmap.TileA,
	ebiten.Key2: hexmap.TileB,
	ebiten.Key3: hexmap.TileC,
	ebiten.Key4: hexmap.TileD,
	ebiten.Key0: hexmap.TileEmpty,
}

// AppGame — плоский вид сверху на ebiten.
type AppGame struct {
	scene          *app.Scene
	grid           *render.HexRenderer
	sky            *render.SkyRenderer
	hud            *render.HUD
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleKeys()
	a.handleMouse()
	a.scene.Update(deltaTime)
	return nil
}

func (a *AppGame) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.scene.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.scene.ClearTiles()
	}
	for key, t := range tileKeys {
		if inpututil.IsKeyJustPressed(key) {
			_ = a.scene.SelectTile(t)
		}
	}
}

func (a *AppGame) handleMouse() {
	mx, my := ebiten.CursorPosition()
	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := 1.1
		if wy < 0 {
			factor = 1 / factor
		}
		a.grid.Camera.Zoom(factor, float64(mx), float64(my))
	}

	x, z := a.grid.Camera.ScreenToWorld(float64(mx), float64(my))
	a.scene.PointerMove(x, z)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if a.hud.HandleClick(a.scene, mx, my) {
			return
		}
		a.scene.PointerDown(x, z)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		a.scene.PointerErase(x, z)
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	light := a.scene.Clock.Lighting()
	a.sky.Draw(screen, light, a.scene.Now())
	a.grid.Draw(screen, 0.35+0.65*light.SunIntensity)
	a.hud.Draw(screen, a.scene)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newAudio(settings config.Settings) audio.Driver {
	if !settings.AudioEnabled {
		return audio.Silent{}
	}
	return ebitenaudio.New(eaudio.NewContext(config.AudioSampleHz), settings.Volume)
}

func main() {
	settings := config.LoadSettings()
	settings.BindFlags(flag.CommandLine)
	flag.Parse()
	settings = settings.Normalize()

	logger := log.New(stdlog.Writer(), log.LevelFromString(settings.LogLevel))

	tiles := app.LoadTiles(settings.TilesFile, logger)
	scene, err := app.NewScene(settings, tiles, nil, logger)
	if err != nil {
		stdlog.Fatalf("Failed to create scene: %v", err)
	}
	defer scene.Close()
	if settings.Scatter > 0 {
		scene.ScatterTiles(settings.Seed, settings.Scatter)
	}

	driver := newAudio(settings)
	defer driver.Close()
	audio.NewNoteListener(driver, tiles, time.Duration(config.NoteDuration*float64(time.Second))).Subscribe(scene.EventDispatcher)

	face, err := render.LoadFace(config.HUDFontSize)
	if err != nil {
		stdlog.Fatalf("Failed to load font: %v", err)
	}

	cam := render.NewCamera(config.ScreenWidth, config.ScreenHeight, config.FlatViewScale)
	game := &AppGame{
		scene:          scene,
		grid:           render.NewHexRenderer(scene.Grid, tiles, cam, config.StrokeWidth),
		sky:            render.NewSkyRenderer(scene.Stars),
		hud:            render.NewHUD(scene, face),
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Ripple (flat)")
	if err := ebiten.RunGame(game); err != nil {
		stdlog.Fatal(err)
	}
}
