package element

import (
	"context"
	"image"
	"math"
	"sync"
	"time"
)

// Virtual is a headless video element. It keeps its own playback clock,
// independent of the session's logical clock, the way a native player does.
type Virtual struct {
	mu       sync.Mutex
	handle   string
	duration float64
	autoplay bool
	now      func() time.Time
	release  func(string)

	playing   bool
	position  float64   // position at startedAt, or the current position when paused
	startedAt time.Time // wall time of the last Play
	released  bool
}

// Play starts the element's own clock
func (v *Virtual) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.released {
		return ErrReleased
	}
	if !v.autoplay {
		return ErrAutoplayBlocked
	}
	if !v.playing {
		v.playing = true
		v.startedAt = v.now()
	}
	return nil
}

// Pause freezes the element's own clock
func (v *Virtual) Pause() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.playing {
		v.position = v.positionLocked()
		v.playing = false
	}
}

// Position reports where the element thinks it is
func (v *Virtual) Position() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.positionLocked()
}

func (v *Virtual) positionLocked() float64 {
	if !v.playing {
		return v.position
	}
	p := v.position + v.now().Sub(v.startedAt).Seconds()
	if v.duration > 0 {
		p = math.Min(p, v.duration)
	}
	return p
}

// SetPosition seeks the element
func (v *Virtual) SetPosition(seconds float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.released {
		return
	}
	v.position = math.Max(0, seconds)
	if v.playing {
		v.startedAt = v.now()
	}
}

// Playing reports the element's own play state
func (v *Virtual) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

// Release frees the handle; a second call returns ErrReleased
func (v *Virtual) Release() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.released {
		return ErrReleased
	}
	v.released = true
	v.playing = false
	v.release(v.handle)
	return nil
}

// Still holds the decoded pixels of an image item
type Still struct {
	mu       sync.Mutex
	handle   string
	img      image.Image
	release  func(string)
	released bool
}

// Play always fails; images do not play
func (s *Still) Play(context.Context) error {
	return ErrNotPlayable
}

// Pause is a no-op
func (s *Still) Pause() {}

// Position is always zero
func (s *Still) Position() float64 {
	return 0
}

// SetPosition is a no-op
func (s *Still) SetPosition(float64) {}

// Frame returns the decoded image, or nil after Release
func (s *Still) Frame() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// Release drops the decoded pixels
func (s *Still) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return ErrReleased
	}
	s.released = true
	s.img = nil
	s.release(s.handle)
	return nil
}
