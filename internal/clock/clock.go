package clock

import (
	"math"

	"github.com/genricoloni/mediastage/internal/domain"
	"go.uber.org/zap"
)

// Clock is the logical playback clock.
// It is not safe for concurrent use; the engine loop is its only caller.
type Clock struct {
	logger      *zap.Logger
	itemID      string
	playable    bool
	bounds      *domain.TimeRange
	currentTime float64
	playing     bool
	epoch       float64 // now - currentTime at the last Play
	rebase      bool    // a seek landed while playing; re-anchor on the next Tick
}

// New creates a clock with no item bound
func New(logger *zap.Logger) *Clock {
	return &Clock{logger: logger}
}

// CurrentTime returns the logical time in seconds
func (c *Clock) CurrentTime() float64 {
	return c.currentTime
}

// Playing reports whether the clock advances on Tick
func (c *Clock) Playing() bool {
	return c.playing
}

// Bind points the clock at item. A different item identity resets the clock
// to 0 and stops it; the same identity only refreshes the bounds.
// A nil item unbinds.
func (c *Clock) Bind(item *domain.MediaItem) {
	if item == nil {
		if c.itemID != "" {
			c.logger.Debug("Clock unbound")
		}
		c.itemID = ""
		c.bounds = nil
		c.playable = false
		c.reset()
		return
	}

	r := item.Range
	c.bounds = &r
	c.playable = item.Playable()

	if item.ID != c.itemID {
		c.itemID = item.ID
		c.reset()
		c.logger.Debug("Clock reset for new item", zap.String("item", item.ID))
	}
}

func (c *Clock) reset() {
	c.currentTime = 0
	c.playing = false
	c.epoch = 0
	c.rebase = false
}

// Play starts the clock at now. Only video items play; returns whether it started.
// A time outside the range is brought back in first: below the start it moves
// to the start, at or past the end it rewinds to the start.
func (c *Clock) Play(now float64) bool {
	if c.bounds == nil || !c.playable {
		return false
	}
	if c.currentTime < c.bounds.Start || c.currentTime >= c.bounds.End {
		c.currentTime = c.bounds.Start
	}
	c.playing = true
	c.epoch = now - c.currentTime
	c.rebase = false
	return true
}

// Pause stops the clock; idempotent
func (c *Clock) Pause() {
	c.playing = false
}

// Toggle flips play/pause for video items. Returns the new playing state.
func (c *Clock) Toggle(now float64) bool {
	if c.bounds == nil || !c.playable {
		return false
	}
	if c.playing {
		c.Pause()
		return false
	}
	return c.Play(now)
}

// Tick advances the clock to now. When the range end is reached the clock
// rewinds to the start and stops instead of looping. Returns false once stopped.
func (c *Clock) Tick(now float64) bool {
	if !c.playing || c.bounds == nil {
		return false
	}

	if c.rebase {
		c.epoch = now - c.currentTime
		c.rebase = false
	}

	candidate := now - c.epoch
	if candidate >= c.bounds.End {
		c.currentTime = c.bounds.Start
		c.Pause()
		c.logger.Debug("Reached end of range, rewound and stopped",
			zap.Float64("start", c.bounds.Start),
			zap.Float64("end", c.bounds.End))
		return false
	}

	if candidate < c.bounds.Start {
		// the start moved past the playhead; continue from the new start
		c.currentTime = c.bounds.Start
		c.epoch = now - c.currentTime
		return true
	}

	c.currentTime = math.Min(candidate, c.bounds.End)
	return true
}

// Seek sets the clock from an external source such as a scrub input.
// The value is clamped to the item range and rounded to one decimal.
// Without an item the call is ignored. Returns the resulting time.
func (c *Clock) Seek(t float64) float64 {
	if c.bounds == nil || math.IsNaN(t) {
		return c.currentTime
	}

	// the rounded value is stored as the authoritative time
	rounded := math.Round(c.bounds.Clamp(t)*10) / 10
	c.currentTime = c.bounds.Clamp(rounded)

	if c.playing {
		c.rebase = true
	}
	return c.currentTime
}

// Nudge moves the clock by delta seconds through Seek
func (c *Clock) Nudge(delta float64) float64 {
	return c.Seek(c.currentTime + delta)
}
