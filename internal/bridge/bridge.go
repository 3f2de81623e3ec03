package bridge

import (
	"context"
	"fmt"
	"math"

	"github.com/genricoloni/mediastage/internal/domain"
	"go.uber.org/zap"
)

// DriftThreshold is how far, in seconds, the element may wander from the
// logical clock before the bridge forces a seek.
const DriftThreshold = 0.1

// Bridge reconciles the logical clock with the native element of the current item.
// It exclusively owns the element's decoded-source handle.
type Bridge struct {
	logger  *zap.Logger
	factory domain.ElementFactory
	element domain.MediaElement
	itemID  string
	kind    domain.MediaKind
	playing bool
}

// New creates an unbound bridge
func New(logger *zap.Logger, factory domain.ElementFactory) *Bridge {
	return &Bridge{
		logger:  logger,
		factory: factory,
	}
}

// Element returns the bound element, or nil
func (b *Bridge) Element() domain.MediaElement {
	return b.element
}

// Bind attaches the bridge to item. A new identity tears the old element down
// (pause, then release its handle) before the new one is opened, so two handles
// are never alive at once. Rebinding the same identity is a no-op; nil unbinds.
func (b *Bridge) Bind(ctx context.Context, item *domain.MediaItem) error {
	if item != nil && item.ID == b.itemID {
		return nil
	}

	b.teardown()

	if item == nil {
		return nil
	}

	b.itemID = item.ID
	b.kind = item.Kind

	element, err := b.factory.Open(ctx, *item)
	if err != nil {
		b.logger.Error("Failed to open media element",
			zap.String("item", item.ID),
			zap.String("source", item.Source),
			zap.Error(err))
		return fmt.Errorf("failed to open element for %s: %w", item.Source, err)
	}
	b.element = element

	b.logger.Debug("Media element bound",
		zap.String("item", item.ID),
		zap.String("kind", string(item.Kind)))
	return nil
}

func (b *Bridge) teardown() {
	if b.element != nil {
		b.element.Pause()
		if err := b.element.Release(); err != nil {
			b.logger.Warn("Failed to release media element", zap.String("item", b.itemID), zap.Error(err))
		}
		b.logger.Debug("Media element released", zap.String("item", b.itemID))
	}
	b.element = nil
	b.itemID = ""
	b.kind = ""
	b.playing = false
}

// SetPlaying forwards a clock play/pause transition to the element.
// A rejected Play is logged and swallowed; the element is paused and false is
// returned so the caller can force the clock back to paused.
func (b *Bridge) SetPlaying(ctx context.Context, playing bool) bool {
	if b.kind != domain.KindVideo || playing == b.playing {
		return true
	}

	if !playing {
		b.playing = false
		if b.element != nil {
			b.element.Pause()
		}
		return true
	}

	if b.element == nil {
		// no native surface; the logical clock still runs
		b.playing = true
		return true
	}

	if err := b.element.Play(ctx); err != nil {
		b.logger.Warn("Native playback rejected, staying paused",
			zap.String("item", b.itemID),
			zap.Error(err))
		b.element.Pause()
		b.playing = false
		return false
	}

	b.playing = true
	return true
}

// Sync pushes the logical time into the element when drift exceeds DriftThreshold.
// Returns whether a seek was issued.
func (b *Bridge) Sync(currentTime float64) bool {
	if b.kind != domain.KindVideo || b.element == nil {
		return false
	}

	if math.Abs(b.element.Position()-currentTime) <= DriftThreshold {
		return false
	}

	b.element.SetPosition(currentTime)
	return true
}

// Close releases the bound element
func (b *Bridge) Close() {
	b.teardown()
}
