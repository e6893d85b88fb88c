// internal/config/config.go
package config

import (
	"flag"
	"image/color"
	"os"
	"strconv"
	"strings"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	HexSize       = 1.0 // мировые единицы
	MapRadius     = 8
	MinMapRadius  = 1
	MaxMapRadius  = 24
	LineScale     = 0.96
	LineLift      = 0.02
	TileScale     = 0.82
	TileBaseLift  = 0.05
	LerpSpeed     = 6.0
	ActiveEpsilon = 0.001
	MaxIntensity  = 2.0 // овердрайв: цель (<=1) + волны (<=1)

	WaveSpeed           = 4.0
	WaveWidth           = 1.5
	WaveMaxDistance     = 6.0
	WaveCap             = 5
	WaveGain            = 2.0
	WaveContributionCap = 1.0

	DayLength     = 240.0 // секунд на полный цикл
	StartDayTime  = 0.15
	NoteDuration  = 0.18
	AudioSampleHz = 44100
	MasterVolume  = 0.4

	// Отрисовка ebiten, пикселей на мировую единицу
	FlatViewScale  = 34.0
	HUDFontSize    = 13
	StrokeWidth    = 2.0
	PaletteX       = 20
	PaletteY       = 60
	PaletteSwatch  = 36.0
	ClockDialX     = ScreenWidth - 70
	ClockDialY     = 70
	ClockDialSize  = 46.0
	PauseButtonX   = ScreenWidth - 150
	PauseButtonY   = 70
	PauseButtonR   = 12.0
	StatsPanelX    = 20
	StatsPanelY    = ScreenHeight - 110
	StarCount      = 160
	CameraFovy     = 45.0
	CameraTiltStep = 0.05
	CameraOrbit    = 0.02

	TilesFile = "assets/data/tiles.json"
)

var (
	BackgroundColor = color.RGBA{10, 10, 20, 255}
	HoverColor      = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PanelColor      = color.RGBA{20, 24, 36, 200}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
)

// Settings — параметры запуска, которые можно переопределить окружением и флагами.
type Settings struct {
	Radius       int
	DayLength    float64
	AudioEnabled bool
	Volume       float64
	LogLevel     string
	TilesFile    string
	Seed         int64
	Scatter      float64 // доля ячеек со стартовыми тайлами
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Radius:       MapRadius,
		DayLength:    DayLength,
		AudioEnabled: true,
		Volume:       MasterVolume,
		LogLevel:     "INFO",
		TilesFile:    TilesFile,
	}
}

// LoadSettings читает переменные окружения HEXRIPPLE_*.
// Некорректные значения молча игнорируются, выход за границы обрезается.
func LoadSettings() Settings {
	return loadSettings(os.Getenv)
}

func loadSettings(getenv func(string) string) Settings {
	s := DefaultSettings()

	if v := getenv("HEXRIPPLE_RADIUS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Radius = n
		}
	}
	if v := getenv("HEXRIPPLE_DAY_LENGTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			s.DayLength = f
		}
	}
	if v := getenv("HEXRIPPLE_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.AudioEnabled = b
		}
	}
	// Громкость 0-100 переводится в 0.0-1.0
	if v := getenv("HEXRIPPLE_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Volume = float64(n) / 100.0
		}
	}
	if v := getenv("HEXRIPPLE_LOG_LEVEL"); v != "" {
		s.LogLevel = strings.ToUpper(v)
	}
	if v := getenv("HEXRIPPLE_TILES"); v != "" {
		s.TilesFile = v
	}
	if v := getenv("HEXRIPPLE_SCATTER"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Scatter = f
		}
	}
	if v := getenv("HEXRIPPLE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = n
		}
	}
	return s.Normalize()
}

// Normalize обрезает значения до допустимых диапазонов.
func (s Settings) Normalize() Settings {
	s.Radius = min(max(s.Radius, MinMapRadius), MaxMapRadius)
	s.Volume = min(max(s.Volume, 0), 1)
	s.Scatter = min(max(s.Scatter, 0), 1)
	if s.DayLength <= 0 {
		s.DayLength = DayLength
	}
	return s
}

// BindFlags регистрирует флаги командной строки поверх уже загруженных настроек.
func (s *Settings) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.Radius, "radius", s.Radius, "grid radius in hexes")
	fs.Float64Var(&s.DayLength, "day", s.DayLength, "seconds per day/night cycle")
	fs.BoolVar(&s.AudioEnabled, "audio", s.AudioEnabled, "play notes on ripples")
	fs.Float64Var(&s.Volume, "volume", s.Volume, "master volume 0..1")
	fs.StringVar(&s.LogLevel, "log", s.LogLevel, "log level: DEBUG, INFO, WARN, ERROR")
	fs.StringVar(&s.TilesFile, "tiles", s.TilesFile, "tile definitions file")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "seed for stars and scattered tiles")
	fs.Float64Var(&s.Scatter, "scatter", s.Scatter, "fraction of cells to pre-fill with tiles")
}
