package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/genricoloni/mediastage/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix = "MEDIASTAGE_"

	defaultFPS           = 60
	defaultHandleSize    = 8.0
	defaultFFprobe       = "ffprobe"
	defaultItemWidth     = 320.0
	defaultItemHeight    = 240.0
	defaultItemX         = 100.0
	defaultItemY         = 100.0
	defaultImageDuration = 5.0
)

// CanvasConfig is the rendered surface size; zero means use the primary display
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ItemConfig is the placement of freshly loaded items
type ItemConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	ImageDuration float64 `yaml:"image_duration"` // Visibility window of still images, in seconds
}

// AppConfig holds application configuration
type AppConfig struct {
	logger *zap.Logger

	FPS        int          `yaml:"fps"`
	Canvas     CanvasConfig `yaml:"canvas"`
	Item       ItemConfig   `yaml:"item"`
	HandleSize float64      `yaml:"handle_size"`
	FFprobe    string       `yaml:"ffprobe"`
	Autoplay   bool         `yaml:"autoplay"`
	MPRIS      bool         `yaml:"mpris"`
}

func defaults() AppConfig {
	return AppConfig{
		FPS: defaultFPS,
		Item: ItemConfig{
			Width:         defaultItemWidth,
			Height:        defaultItemHeight,
			X:             defaultItemX,
			Y:             defaultItemY,
			ImageDuration: defaultImageDuration,
		},
		HandleSize: defaultHandleSize,
		FFprobe:    defaultFFprobe,
		Autoplay:   true,
		MPRIS:      true,
	}
}

// NewAppConfig creates a new application configuration instance.
// Defaults are overlaid by the YAML file named in MEDIASTAGE_CONFIG, then by
// MEDIASTAGE_* environment variables.
func NewAppConfig(logger *zap.Logger) (*AppConfig, error) {
	cfg := defaults()
	cfg.logger = logger

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		path = expandPath(path)
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
		logger.Info("Configuration file loaded", zap.String("path", path))
	}

	cfg.applyEnv()
	cfg.sanitize()

	logger.Info("Configuration loaded",
		zap.Int("fps", cfg.FPS),
		zap.Int("canvasWidth", cfg.Canvas.Width),
		zap.Int("canvasHeight", cfg.Canvas.Height),
		zap.Float64("handleSize", cfg.HandleSize),
		zap.String("ffprobe", cfg.FFprobe),
		zap.Bool("autoplay", cfg.Autoplay),
		zap.Bool("mpris", cfg.MPRIS))

	return &cfg, nil
}

func (c *AppConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from the environment. Unparsable values are logged and skipped.
func (c *AppConfig) applyEnv() {
	if v, ok := c.lookupInt("FPS"); ok {
		c.FPS = v
	}
	if raw := os.Getenv(envPrefix + "CANVAS"); raw != "" {
		w, h, err := parseResolution(raw)
		if err != nil {
			c.logger.Warn("Ignoring invalid canvas size", zap.String("value", raw), zap.Error(err))
		} else {
			c.Canvas = CanvasConfig{Width: w, Height: h}
		}
	}
	if v, ok := c.lookupFloat("HANDLE_SIZE"); ok {
		c.HandleSize = v
	}
	if v, ok := c.lookupFloat("IMAGE_DURATION"); ok {
		c.Item.ImageDuration = v
	}
	if v := os.Getenv(envPrefix + "FFPROBE"); v != "" {
		c.FFprobe = v
	}
	if v, ok := c.lookupBool("AUTOPLAY"); ok {
		c.Autoplay = v
	}
	if v, ok := c.lookupBool("MPRIS"); ok {
		c.MPRIS = v
	}
}

// sanitize falls back to defaults for values the rest of the program cannot use
func (c *AppConfig) sanitize() {
	d := defaults()
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.HandleSize <= 0 {
		c.HandleSize = d.HandleSize
	}
	if c.Item.ImageDuration < 0 {
		c.Item.ImageDuration = d.Item.ImageDuration
	}
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		c.Canvas = CanvasConfig{}
	}
	c.FFprobe = expandPath(c.FFprobe)
}

func (c *AppConfig) lookupInt(key string) (int, bool) {
	raw := os.Getenv(envPrefix + key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.logger.Warn("Ignoring invalid integer", zap.String("key", envPrefix+key), zap.String("value", raw))
		return 0, false
	}
	return v, true
}

func (c *AppConfig) lookupFloat(key string) (float64, bool) {
	raw := os.Getenv(envPrefix + key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.logger.Warn("Ignoring invalid number", zap.String("key", envPrefix+key), zap.String("value", raw))
		return 0, false
	}
	return v, true
}

func (c *AppConfig) lookupBool(key string) (bool, bool) {
	raw := os.Getenv(envPrefix + key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.logger.Warn("Ignoring invalid boolean", zap.String("key", envPrefix+key), zap.String("value", raw))
		return false, false
	}
	return v, true
}

// parseResolution reads "WIDTHxHEIGHT"
func parseResolution(raw string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(raw), "x", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New("expected WIDTHxHEIGHT")
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New("dimensions must be positive")
	}
	return w, h, nil
}

// expandPath expands environment variables and a leading ~
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetFPS returns the frame scheduler rate
func (c *AppConfig) GetFPS() int {
	return c.FPS
}

// GetItemDefaults returns the placement of freshly loaded items
func (c *AppConfig) GetItemDefaults() domain.ItemDefaults {
	return domain.ItemDefaults{
		Size:          domain.Size{Width: c.Item.Width, Height: c.Item.Height},
		Position:      domain.Point{X: c.Item.X, Y: c.Item.Y},
		ImageDuration: c.Item.ImageDuration,
	}
}

// GetCanvasSize returns the configured canvas; zero means detect
func (c *AppConfig) GetCanvasSize() domain.ScreenResolution {
	return domain.ScreenResolution{Width: c.Canvas.Width, Height: c.Canvas.Height}
}

// GetHandleSize returns the half-width of a resize handle hit area
func (c *AppConfig) GetHandleSize() float64 {
	return c.HandleSize
}

// GetFFprobePath returns the ffprobe binary
func (c *AppConfig) GetFFprobePath() string {
	return c.FFprobe
}

// GetAutoplay reports whether video elements accept Play
func (c *AppConfig) GetAutoplay() bool {
	return c.Autoplay
}

// GetMPRISEnabled reports whether the player is published on the session bus
func (c *AppConfig) GetMPRISEnabled() bool {
	return c.MPRIS
}
