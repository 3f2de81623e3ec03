package display

import (
	"image"

	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

var fallbackResolution = domain.ScreenResolution{Width: 1920, Height: 1080}

// display probes, replaced in tests
var (
	numActiveDisplays = screenshot.NumActiveDisplays
	displayBounds     = screenshot.GetDisplayBounds
)

// NewScreenResolution returns the canvas size: the configured one when set,
// otherwise the primary display resolution detected at startup
func NewScreenResolution(logger *zap.Logger, cfg domain.Config) *domain.ScreenResolution {
	if configured := cfg.GetCanvasSize(); configured.Width > 0 && configured.Height > 0 {
		logger.Info("Using configured canvas size",
			zap.Int("width", configured.Width),
			zap.Int("height", configured.Height))
		return &configured
	}

	n := numActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to 1920x1080")
		res := fallbackResolution
		return &res
	}

	// Use primary monitor (index 0)
	res := fromBounds(displayBounds(0))
	if res.Width <= 0 || res.Height <= 0 {
		logger.Warn("Primary display reported an empty area, falling back to 1920x1080")
		res = fallbackResolution
	}

	logger.Info("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return &res
}

func fromBounds(b image.Rectangle) domain.ScreenResolution {
	return domain.ScreenResolution{Width: b.Dx(), Height: b.Dy()}
}
