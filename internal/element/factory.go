package element

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrReleased is returned by elements used after Release
	ErrReleased = errors.New("element released")
	// ErrAutoplayBlocked is returned by Play when autoplay is disabled
	ErrAutoplayBlocked = errors.New("autoplay blocked")
	// ErrNotPlayable is returned by Play on still images
	ErrNotPlayable = errors.New("element is not playable")
)

// Factory opens decoded-source handles for media items and counts how many are alive
type Factory struct {
	logger   *zap.Logger
	autoplay bool
	now      func() time.Time
	live     atomic.Int64
}

// NewFactory creates an element factory. autoplay controls whether video elements accept Play.
func NewFactory(logger *zap.Logger, cfg domain.Config) *Factory {
	return &Factory{
		logger:   logger,
		autoplay: cfg.GetAutoplay(),
		now:      time.Now,
	}
}

// Live returns the number of handles opened and not yet released
func (f *Factory) Live() int {
	return int(f.live.Load())
}

// Open decodes an image into a still element, or prepares a virtual video element
func (f *Factory) Open(ctx context.Context, item domain.MediaItem) (domain.MediaElement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	handle := uuid.NewString()

	switch item.Kind {
	case domain.KindImage:
		img, err := imaging.Open(item.Source, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		f.acquire(handle, item)
		return &Still{handle: handle, img: img, release: f.release}, nil

	case domain.KindVideo:
		f.acquire(handle, item)
		return &Virtual{
			handle:   handle,
			duration: item.Range.End,
			autoplay: f.autoplay,
			now:      f.now,
			release:  f.release,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported media kind %q", item.Kind)
	}
}

func (f *Factory) acquire(handle string, item domain.MediaItem) {
	n := f.live.Add(1)
	f.logger.Debug("Decoded source acquired",
		zap.String("handle", handle),
		zap.String("source", item.Source),
		zap.Int64("live", n))
	if n > 1 {
		f.logger.Warn("More than one decoded source is alive", zap.Int64("live", n))
	}
}

func (f *Factory) release(handle string) {
	n := f.live.Add(-1)
	f.logger.Debug("Decoded source released", zap.String("handle", handle), zap.Int64("live", n))
}
