// Package session composes the clock, the item store, the gesture controller,
// the viewport and the sync bridge into the single-threaded editing session.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/genricoloni/mediastage/internal/bridge"
	"github.com/genricoloni/mediastage/internal/clock"
	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/genricoloni/mediastage/internal/gesture"
	"github.com/genricoloni/mediastage/internal/store"
	"github.com/genricoloni/mediastage/internal/viewport"
	"go.uber.org/zap"
)

// Session owns the one placed item and every component that reads or edits it.
// It is not safe for concurrent use; the engine loop serializes all calls.
type Session struct {
	logger   *zap.Logger
	defaults domain.ItemDefaults
	now      func() float64

	item   *domain.MediaItem
	clock  *clock.Clock
	ctrl   *gesture.Controller
	view   *viewport.Viewport
	bridge *bridge.Bridge
	frames domain.FrameScheduler
}

// New creates an empty session. frames is the per-frame callback handle the
// session starts while the clock plays and releases otherwise.
func New(logger *zap.Logger, cfg domain.Config, factory domain.ElementFactory, frames domain.FrameScheduler) *Session {
	start := time.Now()
	s := &Session{
		logger:   logger,
		defaults: cfg.GetItemDefaults(),
		now:      func() float64 { return time.Since(start).Seconds() },
		clock:    clock.New(logger),
		view:     viewport.New(),
		bridge:   bridge.New(logger, factory),
		frames:   frames,
	}
	s.ctrl = gesture.NewController(logger, cfg.GetHandleSize(), s.update)
	return s
}

// Load replaces the current item with a fresh one built from asset
func (s *Session) Load(ctx context.Context, asset domain.Asset) (domain.MediaItem, error) {
	item := store.NewItem(asset, s.defaults)
	if err := s.swap(ctx, &item); err != nil {
		return item, err
	}
	s.logger.Info("Item loaded",
		zap.String("item", item.ID),
		zap.String("kind", string(item.Kind)),
		zap.Float64("end", item.Range.End))
	return item, nil
}

// Clear removes the current item
func (s *Session) Clear() {
	if s.item == nil {
		return
	}
	// unbinding never opens a source, so it cannot fail
	_ = s.swap(context.Background(), nil)
	s.logger.Info("Item cleared")
}

// swap replaces the item in a fixed order: gesture, clock, frame handle,
// old decoded source, new item, new decoded source.
func (s *Session) swap(ctx context.Context, next *domain.MediaItem) error {
	s.ctrl.Reset()
	s.clock.Bind(next)
	s.frames.Stop()
	s.bridge.Close()

	s.item = next

	if err := s.bridge.Bind(ctx, next); err != nil {
		return fmt.Errorf("failed to bind item: %w", err)
	}
	return nil
}

// update is the single path through which edited items replace the current one
func (s *Session) update(item domain.MediaItem) {
	if s.item == nil || item.ID != s.item.ID {
		return
	}
	s.item = &item
	s.clock.Bind(s.item)
}

// PointerDown hit-tests p and starts the matching gesture
func (s *Session) PointerDown(p domain.Point) gesture.State {
	target := gesture.Target{Kind: gesture.TargetNone}
	var item domain.MediaItem
	if s.item != nil {
		item = *s.item
		target = s.ctrl.HitTest(item, p)
	}
	s.ctrl.PointerDown(item, p, target)
	return s.ctrl.State()
}

// PointerMove feeds the active gesture
func (s *Session) PointerMove(p domain.Point) {
	if s.item == nil {
		return
	}
	s.ctrl.PointerMove(*s.item, p)
}

// PointerUp ends any gesture
func (s *Session) PointerUp() {
	s.ctrl.PointerUp()
}

// Wheel forwards a wheel event to the viewport. Returns whether the zoom changed.
func (s *Session) Wheel(deltaY float64, modifier bool) bool {
	return s.view.Zoom(deltaY, modifier)
}

// Key runs a keyboard command. Returns whether it was handled.
func (s *Session) Key(ctx context.Context, key domain.Key) bool {
	switch key {
	case domain.KeyToggle:
		s.TogglePlay(ctx)
	case domain.KeyBack:
		s.Nudge(-domain.NudgeStep)
	case domain.KeyForward:
		s.Nudge(domain.NudgeStep)
	default:
		return false
	}
	return true
}

// SetSize applies a numeric width/height edit
func (s *Session) SetSize(patch store.SizePatch) {
	if s.item == nil {
		return
	}
	s.update(store.SetSize(*s.item, patch))
}

// SetTimeRange applies a numeric start/end edit. The clock picks up the new
// range on its next tick or seek.
func (s *Session) SetTimeRange(patch store.RangePatch) {
	if s.item == nil {
		return
	}
	s.update(store.SetTimeRange(*s.item, patch))
}

// SetPosition moves the item
func (s *Session) SetPosition(p domain.Point) {
	if s.item == nil {
		return
	}
	s.update(store.SetPosition(*s.item, p))
}

// TogglePlay flips play/pause for video items
func (s *Session) TogglePlay(ctx context.Context) {
	if s.item == nil || !s.item.Playable() {
		return
	}
	s.clock.Toggle(s.now())
	s.applyPlaying(ctx)
}

// Play starts the clock for video items
func (s *Session) Play(ctx context.Context) {
	if s.clock.Playing() {
		return
	}
	s.clock.Play(s.now())
	s.applyPlaying(ctx)
}

// Pause stops the clock
func (s *Session) Pause(ctx context.Context) {
	s.clock.Pause()
	s.applyPlaying(ctx)
}

// applyPlaying pushes the clock's play state to the element and the frame handle.
// A rejected native Play forces the clock back to paused.
func (s *Session) applyPlaying(ctx context.Context) {
	s.bridge.Sync(s.clock.CurrentTime())

	if !s.bridge.SetPlaying(ctx, s.clock.Playing()) {
		s.clock.Pause()
	}

	if s.clock.Playing() {
		s.frames.Start()
	} else {
		s.frames.Stop()
	}
}

// Seek moves the clock to t, clamped and rounded. Returns the resulting time.
func (s *Session) Seek(t float64) float64 {
	current := s.clock.Seek(t)
	s.bridge.Sync(current)
	return current
}

// Nudge moves the clock by delta seconds
func (s *Session) Nudge(delta float64) float64 {
	current := s.clock.Nudge(delta)
	s.bridge.Sync(current)
	return current
}

// Frame runs one scheduler frame: advance the clock and correct element drift.
// Returns false once the clock has stopped.
func (s *Session) Frame(ctx context.Context) bool {
	if !s.clock.Playing() {
		s.frames.Stop()
		return false
	}

	running := s.clock.Tick(s.now())
	s.bridge.Sync(s.clock.CurrentTime())
	if !running {
		s.bridge.SetPlaying(ctx, false)
		s.frames.Stop()
	}
	return running
}

func (s *Session) visible() bool {
	return s.item != nil && store.IsVisible(*s.item, s.clock.CurrentTime())
}

// Element returns the element bound to the current item, or nil
func (s *Session) Element() domain.MediaElement {
	return s.bridge.Element()
}

// Viewport exposes the rendering transform
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// State returns a snapshot of the session
func (s *Session) State() domain.PlaybackState {
	state := domain.PlaybackState{
		CurrentTime: s.clock.CurrentTime(),
		Playing:     s.clock.Playing(),
		Visible:     s.visible(),
		Zoom:        s.view.Factor(),
		Gesture:     string(s.ctrl.State()),
		Status:      domain.StatusStopped,
	}

	if s.item != nil {
		item := *s.item
		state.Item = &item
		state.Status = domain.StatusPaused
		if state.Playing {
			state.Status = domain.StatusPlaying
		}
	}
	return state
}

// Close stops the frame handle and releases the decoded source
func (s *Session) Close() {
	s.frames.Stop()
	s.clock.Pause()
	s.bridge.Close()
	s.logger.Debug("Session closed")
}

