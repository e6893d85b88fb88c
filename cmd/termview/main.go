// cmd/termview/main.go
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-hex-ripple/internal/app"
	"go-hex-ripple/internal/audio"
	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/log"
	"go-hex-ripple/pkg/termrender"
)

const frameInterval = 33 * time.Millisecond

func main() {
	settings := config.LoadSettings()
	settings.BindFlags(flag.CommandLine)
	logFile := flag.String("logfile", "hexripple-term.log", "log destination; the terminal is taken by the view")
	flag.Parse()
	settings = settings.Normalize()

	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		stdlog.Fatalf("Failed to open log file: %v", err)
	}
	defer out.Close()
	logger := log.New(out, log.LevelFromString(settings.LogLevel))

	if err := run(settings, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(settings config.Settings, logger *log.Logger) error {
	tiles := app.LoadTiles(settings.TilesFile, logger)
	scene, err := app.NewScene(settings, tiles, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	defer scene.Close()
	if settings.Scatter > 0 {
		scene.ScatterTiles(settings.Seed, settings.Scatter)
	}

	var driver audio.Driver = audio.Silent{}
	if settings.AudioEnabled {
		if d, err := audio.NewBeepDriver(config.AudioSampleHz, settings.Volume); err != nil {
			// без звука тоже можно
			logger.Warnf("audio disabled: %v", err)
		} else {
			driver = d
		}
	}
	defer driver.Close()
	audio.NewNoteListener(driver, tiles, time.Duration(config.NoteDuration*float64(time.Second))).Subscribe(scene.EventDispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	view := termrender.NewRenderer(screen, scene)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if view.HandleEvent(ev) {
				logger.Infof("quit after %.1fs", scene.Now())
				return nil
			}
		case now := <-ticker.C:
			scene.Update(now.Sub(last).Seconds())
			last = now
			view.Draw()
		}
	}
}
