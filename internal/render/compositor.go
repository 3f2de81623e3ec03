package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/genricoloni/mediastage/internal/viewport"
	"go.uber.org/zap"
)

const progressBarHeight = 6

var (
	backgroundColor  = color.NRGBA{R: 24, G: 24, B: 27, A: 255}
	placeholderColor = color.NRGBA{R: 63, G: 63, B: 70, A: 255}
	progressColor    = color.NRGBA{R: 96, G: 165, B: 250, A: 255}
)

// Compositor renders the canvas surface
type Compositor struct {
	logger *zap.Logger
	res    *domain.ScreenResolution // Injected automatically by Fx
}

// NewCompositor creates a compositor for a canvas of the given resolution
func NewCompositor(logger *zap.Logger, res *domain.ScreenResolution) *Compositor {
	return &Compositor{
		logger: logger,
		res:    res,
	}
}

// Render draws the canvas. A hidden or missing item leaves the background only.
// The item is drawn at its canvas geometry and the whole surface is zoomed about its centre.
func (c *Compositor) Render(state domain.PlaybackState, el domain.MediaElement, view *viewport.Viewport) *image.NRGBA {
	dst := imaging.New(c.res.Width, c.res.Height, backgroundColor)
	if state.Item == nil || !state.Visible {
		return dst
	}

	item := *state.Item
	pos := view.Project(item.Position, *c.res)
	size := view.ProjectSize(item.Size)

	w := int(math.Round(size.Width))
	h := int(math.Round(size.Height))
	if w <= 0 || h <= 0 {
		return dst
	}

	var tile *image.NRGBA
	if fs, ok := el.(domain.FrameSource); ok && fs.Frame() != nil {
		tile = imaging.Resize(fs.Frame(), w, h, imaging.Lanczos)
	} else {
		tile = c.placeholder(item, state.CurrentTime, w, h)
	}

	c.logger.Debug("Compositing item",
		zap.String("item", item.ID),
		zap.Int("x", int(math.Round(pos.X))),
		zap.Int("y", int(math.Round(pos.Y))),
		zap.Int("w", w),
		zap.Int("h", h))

	return imaging.Paste(dst, tile, image.Pt(int(math.Round(pos.X)), int(math.Round(pos.Y))))
}

// placeholder stands in for sources without pixels; playable items get a progress bar
func (c *Compositor) placeholder(item domain.MediaItem, currentTime float64, w, h int) *image.NRGBA {
	tile := imaging.New(w, h, placeholderColor)
	if !item.Playable() || h < progressBarHeight {
		return tile
	}

	span := item.Range.End - item.Range.Start
	if span <= 0 {
		return tile
	}
	progress := math.Min(math.Max((currentTime-item.Range.Start)/span, 0), 1)
	barWidth := int(float64(w) * progress)
	if barWidth == 0 {
		return tile
	}

	bar := imaging.New(barWidth, progressBarHeight, progressColor)
	return imaging.Paste(tile, bar, image.Pt(0, h-progressBarHeight))
}

// Save writes a rendered frame to path; the format follows the extension
func (c *Compositor) Save(img image.Image, path string) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil // Return relative path if abs fails
	}

	c.logger.Info("Snapshot written", zap.String("path", absPath))
	return absPath, nil
}
