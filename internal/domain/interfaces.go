package domain

import (
	"context"
	"image"
)

// MediaElement is the native playable surface bound to the current item.
// It owns one decoded-source handle from Open until Release.
//
//go:generate mockgen -destination=mocks/media_element_mock.go -package=mocks github.com/genricoloni/mediastage/internal/domain MediaElement,ElementFactory
type MediaElement interface {
	// Play starts the element's own playback. It may fail (decode or autoplay rejection).
	Play(ctx context.Context) error

	// Pause halts the element's own playback; idempotent
	Pause()

	// Position reports the element's own playback position in seconds
	Position() float64

	// SetPosition seeks the element
	SetPosition(seconds float64)

	// Release frees the decoded-source handle. The element is unusable afterwards.
	Release() error
}

// FrameSource is implemented by elements that can hand out pixels for compositing
type FrameSource interface {
	Frame() image.Image
}

// ElementFactory opens the decoded-source handle for an item
type ElementFactory interface {
	// Open decodes or prepares the item's source and returns its element
	Open(ctx context.Context, item MediaItem) (MediaElement, error)
}

// AssetLoader inspects a user-selected file before it becomes a MediaItem.
// For videos it must resolve the natural duration before returning.
type AssetLoader interface {
	Load(ctx context.Context, path string) (Asset, error)
}

// StatusObserver is notified from the engine loop whenever the player status changes
type StatusObserver interface {
	StatusChanged(status PlayerStatus)
}

// Config defines the interface for application configuration
type Config interface {
	// GetFPS returns the frame scheduler rate
	GetFPS() int

	// GetItemDefaults returns the placement of freshly loaded items
	GetItemDefaults() ItemDefaults

	// GetCanvasSize returns the configured canvas surface; zero means detect
	GetCanvasSize() ScreenResolution

	// GetHandleSize returns the half-width of a corner resize handle
	GetHandleSize() float64

	// GetFFprobePath returns the ffprobe binary used to probe clips
	GetFFprobePath() string

	// GetAutoplay reports whether virtual video elements accept Play
	GetAutoplay() bool

	// GetMPRISEnabled reports whether the session is published on the session bus
	GetMPRISEnabled() bool
}

// FrameScheduler is the cooperative per-frame callback handle.
// Start is idempotent; Stop releases the handle and must be safe to call when stopped.
type FrameScheduler interface {
	Start()
	Stop()
}
