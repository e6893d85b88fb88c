// cmd/game/main.go
package main

import (
	"flag"
	stdlog "log"
	"net/http"
	_ "net/http/pprof"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/app"
	"go-hex-ripple/internal/assets"
	"go-hex-ripple/internal/audio"
	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/log"
	"go-hex-ripple/internal/state"
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func newAudio(settings config.Settings, logger *log.Logger) audio.Driver {
	if !settings.AudioEnabled {
		return audio.Silent{}
	}
	drv, err := audio.NewBeepDriver(config.AudioSampleHz, settings.Volume)
	if err != nil {
		logger.Warnf("audio disabled: %v", err)
		return audio.Silent{}
	}
	return drv
}

func main() {
	// --- Флаги командной строки ---
	settings := config.LoadSettings()
	settings.BindFlags(flag.CommandLine)
	devMode := flag.Bool("dev", false, "Start directly in the scene, skipping the menu")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()
	settings = settings.Normalize()

	logger := log.New(stdlog.Writer(), log.LevelFromString(settings.LogLevel))

	if *pprofAddr != "" {
		go func() {
			stdlog.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// --- Инициализация Raylib ---
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Hex Ripple")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	font := rl.GetFontDefault()
	tiles := app.LoadTiles(settings.TilesFile, logger)
	models := assets.NewModelManager(tiles, config.HexSize, logger)

	scene, err := app.NewScene(settings, tiles, models, logger)
	if err != nil {
		stdlog.Fatalf("Failed to create scene: %v", err)
	}
	if settings.Scatter > 0 {
		scene.ScatterTiles(settings.Seed, settings.Scatter)
	}

	driver := newAudio(settings, logger)
	defer driver.Close()
	audio.NewNoteListener(driver, tiles, time.Duration(config.NoteDuration*float64(time.Second))).Subscribe(scene.EventDispatcher)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Fovy = config.CameraFovy

	extent := float32(settings.Radius+2) * config.HexSize * 1.8
	isoPos := rl.NewVector3(extent, extent*1.1, extent)
	topDownPos := rl.NewVector3(0, extent*2.4, 0.1)
	target := rl.NewVector3(0, 0, 0)
	cameraAngleT := float32(0.3)
	camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
	camera.Target = target

	sm := state.NewStateMachine()
	newSceneState := func() state.State { return state.NewSceneState(sm, scene, font, &camera) }
	if *devMode {
		logger.Infof("dev mode: starting in the scene")
		sm.SetState(newSceneState())
	} else {
		sm.SetState(state.NewMenuState(sm, font, newSceneState))
	}

	lastUpdateTime := time.Now()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		// --- Управление камерой ---
		if _, inScene := sm.Current().(*state.SceneState); inScene {
			if rl.IsKeyDown(rl.KeyQ) {
				isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -config.CameraOrbit)
			}
			if rl.IsKeyDown(rl.KeyE) {
				isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, config.CameraOrbit)
			}
			if wheel := rl.GetMouseWheelMove(); wheel != 0 {
				cameraAngleT = min(max(cameraAngleT+wheel*config.CameraTiltStep, 0), 0.99)
			}
			camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		}

		sm.Update(deltaTime)
		if menu, ok := sm.Current().(*state.MenuState); ok && menu.ShouldQuit() {
			break
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255))
		sm.DrawBackground()
		rl.BeginMode3D(camera)
		sm.Draw()
		rl.EndMode3D()
		sm.DrawUI()
		rl.DrawFPS(config.ScreenWidth-90, config.ScreenHeight-24)
		rl.EndDrawing()
	}

	scene.Close()
	logger.Infof("models still loaded after close: %d", models.Live())
}
