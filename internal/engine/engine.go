package engine

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/genricoloni/mediastage/internal/render"
	"github.com/genricoloni/mediastage/internal/session"
	"github.com/genricoloni/mediastage/internal/store"
	"go.uber.org/zap"
)

// ErrNotRunning is returned by commands sent while the loop is not running
var ErrNotRunning = errors.New("engine is not running")

// command runs on the loop goroutine with the loop's context
type command func(ctx context.Context)

// Engine owns the editing session on a single goroutine.
// Input adapters, the D-Bus player and the asset probe only send it commands.
type Engine struct {
	logger     *zap.Logger
	loader     domain.AssetLoader
	compositor *render.Compositor
	session    *session.Session
	frames     *frameTicker
	commands   chan command

	// loop-owned
	generation uint64
	lastStatus domain.PlayerStatus

	running atomic.Bool
	cancel  context.CancelFunc
	stopped chan struct{}

	mu        sync.RWMutex
	state     domain.PlaybackState
	observers []domain.StatusObserver
}

// NewEngine creates the engine and its session. The frame ticker runs at the configured FPS.
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	loader domain.AssetLoader,
	factory domain.ElementFactory,
	compositor *render.Compositor,
) *Engine {
	frames := newFrameTicker(cfg.GetFPS())
	return &Engine{
		logger:     logger,
		loader:     loader,
		compositor: compositor,
		session:    session.New(logger, cfg, factory, frames),
		frames:     frames,
		commands:   make(chan command),
		lastStatus: domain.StatusStopped,
		state:      domain.PlaybackState{Zoom: 1, Status: domain.StatusStopped},
		stopped:    make(chan struct{}),
	}
}

// Subscribe registers an observer for player status changes.
// Observers are called on the loop goroutine and must not block.
func (e *Engine) Subscribe(obs domain.StatusObserver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, obs)
}

// Start launches the engine's event processing loop in a goroutine.
// It returns immediately (non-blocking).
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting...")

	loopCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.running.Store(true)

	go e.runLoop(loopCtx)
	return nil
}

// runLoop serializes commands and scheduler frames onto one goroutine
func (e *Engine) runLoop(ctx context.Context) {
	defer close(e.stopped)

	for {
		select {
		case <-ctx.Done():
			e.running.Store(false)
			e.session.Close()
			e.publish()
			e.logger.Info("Engine loop stopped")
			return

		case cmd := <-e.commands:
			cmd(ctx)

		case <-e.frames.C():
			e.session.Frame(ctx)
			e.publish()
		}
	}
}

// publish stores the state snapshot and notifies observers on status change
func (e *Engine) publish() {
	state := e.session.State()

	e.mu.Lock()
	e.state = state
	observers := append([]domain.StatusObserver(nil), e.observers...)
	e.mu.Unlock()

	if state.Status == e.lastStatus {
		return
	}
	e.logger.Debug("Player status changed",
		zap.String("from", string(e.lastStatus)),
		zap.String("to", string(state.Status)))
	e.lastStatus = state.Status
	for _, obs := range observers {
		obs.StatusChanged(state.Status)
	}
}

// call runs fn on the loop and waits for it to finish.
// The state is published before call returns, so State reflects fn.
func (e *Engine) call(fn command) error {
	if !e.running.Load() {
		return ErrNotRunning
	}

	done := make(chan struct{})
	select {
	case e.commands <- func(ctx context.Context) {
		fn(ctx)
		e.publish()
		close(done)
	}:
	case <-e.stopped:
		return ErrNotRunning
	}

	select {
	case <-done:
		return nil
	case <-e.stopped:
		return ErrNotRunning
	}
}

// post queues fn without waiting; dropped once the loop has exited
func (e *Engine) post(fn command) {
	select {
	case e.commands <- func(ctx context.Context) {
		fn(ctx)
		e.publish()
	}:
	case <-e.stopped:
	}
}

// Load clears the current item and probes path in the background.
// The probe result is bound only if no newer Load or Clear happened meanwhile.
func (e *Engine) Load(path string) error {
	return e.call(func(ctx context.Context) {
		e.generation++
		gen := e.generation
		e.session.Clear()

		e.logger.Info("Probing asset", zap.String("path", path), zap.Uint64("generation", gen))
		go e.probe(ctx, gen, path)
	})
}

// probe runs on a worker goroutine and reports back through a one-shot command
func (e *Engine) probe(ctx context.Context, gen uint64, path string) {
	asset, err := e.loader.Load(ctx, path)

	e.post(func(ctx context.Context) {
		if gen != e.generation {
			e.logger.Debug("Dropping stale probe result",
				zap.String("path", path),
				zap.Uint64("generation", gen),
				zap.Uint64("current", e.generation))
			return
		}
		if err != nil {
			e.logger.Error("Failed to load asset", zap.String("path", path), zap.Error(err))
			return
		}
		if _, err := e.session.Load(ctx, asset); err != nil {
			// the item stays loaded; only its native surface is missing
			e.logger.Error("Failed to bind asset", zap.String("path", path), zap.Error(err))
		}
	})
}

// Clear removes the current item and discards any pending probe
func (e *Engine) Clear() error {
	return e.call(func(ctx context.Context) {
		e.generation++
		e.session.Clear()
	})
}

// PointerDown starts a gesture at p
func (e *Engine) PointerDown(p domain.Point) error {
	return e.call(func(ctx context.Context) { e.session.PointerDown(p) })
}

// PointerMove feeds the active gesture
func (e *Engine) PointerMove(p domain.Point) error {
	return e.call(func(ctx context.Context) { e.session.PointerMove(p) })
}

// PointerUp ends any gesture
func (e *Engine) PointerUp() error {
	return e.call(func(ctx context.Context) { e.session.PointerUp() })
}

// Wheel forwards a wheel event to the viewport
func (e *Engine) Wheel(deltaY float64, modifier bool) error {
	return e.call(func(ctx context.Context) { e.session.Wheel(deltaY, modifier) })
}

// Key runs a keyboard command
func (e *Engine) Key(key domain.Key) error {
	return e.call(func(ctx context.Context) { e.session.Key(ctx, key) })
}

// SetSize applies a numeric width/height edit
func (e *Engine) SetSize(patch store.SizePatch) error {
	return e.call(func(ctx context.Context) { e.session.SetSize(patch) })
}

// SetTimeRange applies a numeric start/end edit
func (e *Engine) SetTimeRange(patch store.RangePatch) error {
	return e.call(func(ctx context.Context) { e.session.SetTimeRange(patch) })
}

// SetPosition moves the item
func (e *Engine) SetPosition(p domain.Point) error {
	return e.call(func(ctx context.Context) { e.session.SetPosition(p) })
}

// TogglePlay flips play/pause
func (e *Engine) TogglePlay() error {
	return e.call(func(ctx context.Context) { e.session.TogglePlay(ctx) })
}

// Play starts playback
func (e *Engine) Play() error {
	return e.call(func(ctx context.Context) { e.session.Play(ctx) })
}

// Pause halts playback
func (e *Engine) Pause() error {
	return e.call(func(ctx context.Context) { e.session.Pause(ctx) })
}

// Seek moves the clock to t
func (e *Engine) Seek(t float64) error {
	return e.call(func(ctx context.Context) { e.session.Seek(t) })
}

// Nudge moves the clock by delta seconds
func (e *Engine) Nudge(delta float64) error {
	return e.call(func(ctx context.Context) { e.session.Nudge(delta) })
}

// State returns the last published snapshot; safe from any goroutine
func (e *Engine) State() domain.PlaybackState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Snapshot renders the canvas as it currently looks
func (e *Engine) Snapshot() (image.Image, error) {
	var img image.Image
	err := e.call(func(ctx context.Context) {
		img = e.compositor.Render(e.session.State(), e.session.Element(), e.session.Viewport())
	})
	return img, err
}

// Stop ends the loop, releasing the frame ticker and the decoded source
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")

	if e.cancel == nil {
		return nil
	}
	e.cancel()

	select {
	case <-e.stopped:
		e.logger.Info("Engine stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// frameTicker is the scheduler handle. It is only touched by the loop goroutine.
type frameTicker struct {
	interval time.Duration
	ticker   *time.Ticker
}

func newFrameTicker(fps int) *frameTicker {
	if fps <= 0 {
		fps = 60
	}
	return &frameTicker{interval: time.Second / time.Duration(fps)}
}

// Start creates the ticker if none is running
func (f *frameTicker) Start() {
	if f.ticker == nil {
		f.ticker = time.NewTicker(f.interval)
	}
}

// Stop releases the ticker
func (f *frameTicker) Stop() {
	if f.ticker != nil {
		f.ticker.Stop()
		f.ticker = nil
	}
}

// C returns the tick channel, or nil while stopped so the loop never selects it
func (f *frameTicker) C() <-chan time.Time {
	if f.ticker == nil {
		return nil
	}
	return f.ticker.C
}
