package clock

import (
	"math"
	"testing"

	"github.com/genricoloni/mediastage/internal/domain"
	"go.uber.org/zap"
)

func videoItem(id string, start, end float64) *domain.MediaItem {
	return &domain.MediaItem{
		ID:    id,
		Kind:  domain.KindVideo,
		Size:  domain.Size{Width: 320, Height: 240},
		Range: domain.TimeRange{Start: start, End: end},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPlay_OnlyForVideo(t *testing.T) {
	tests := []struct {
		name     string
		item     *domain.MediaItem
		expected bool
	}{
		{"No Item", nil, false},
		{"Image Item", &domain.MediaItem{ID: "img", Kind: domain.KindImage, Range: domain.TimeRange{End: 5}}, false},
		{"Video Item", videoItem("vid", 0, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(zap.NewNop())
			c.Bind(tt.item)
			if got := c.Play(100); got != tt.expected {
				t.Errorf("Play() = %v, want %v", got, tt.expected)
			}
			if c.Playing() != tt.expected {
				t.Errorf("Playing() = %v, want %v", c.Playing(), tt.expected)
			}
		})
	}
}

func TestPlay_StartsInsideRange(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		seek     float64
		expected float64
	}{
		{"Before Start After Edit", 3, 10, -1, 3},
		{"Inside Range", 3, 10, 4.5, 4.5},
		{"At End Rewinds", 3, 10, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(zap.NewNop())
			item := videoItem("vid", 0, tt.end)
			c.Bind(item)
			if tt.seek >= 0 {
				c.Seek(tt.seek)
			}

			// raise the start without touching the clock
			edited := *item
			edited.Range.Start = tt.start
			c.Bind(&edited)

			c.Play(100)
			if c.CurrentTime() != tt.expected {
				t.Errorf("expected play to start at %v, got %v", tt.expected, c.CurrentTime())
			}
			c.Tick(100.5)
			if !approx(c.CurrentTime(), tt.expected+0.5) {
				t.Errorf("expected %v after half a second, got %v", tt.expected+0.5, c.CurrentTime())
			}
		})
	}
}

func TestTick_StartRaisedWhilePlaying(t *testing.T) {
	c := New(zap.NewNop())
	item := videoItem("vid", 0, 10)
	c.Bind(item)
	c.Play(0)
	c.Tick(1)

	edited := *item
	edited.Range.Start = 4
	c.Bind(&edited)

	if !c.Tick(2) {
		t.Fatal("expected clock to keep running")
	}
	if c.CurrentTime() != 4 {
		t.Errorf("expected jump to new start 4, got %v", c.CurrentTime())
	}
	c.Tick(3)
	if !approx(c.CurrentTime(), 5) {
		t.Errorf("expected 5, got %v", c.CurrentTime())
	}
}

func TestTick_AdvancesFromEpoch(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("vid", 0, 10))

	c.Play(100)
	if !c.Tick(101.5) {
		t.Fatal("expected clock to keep running")
	}
	if !approx(c.CurrentTime(), 1.5) {
		t.Errorf("expected 1.5, got %v", c.CurrentTime())
	}

	// pause for a while, resume must not count the paused wall time
	c.Pause()
	c.Play(200)
	c.Tick(201)
	if !approx(c.CurrentTime(), 2.5) {
		t.Errorf("expected drift-free resume at 2.5, got %v", c.CurrentTime())
	}
}

func TestTick_EndRewindsAndStops(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("vid", 2, 4))
	c.Seek(3)
	c.Play(0)

	if c.Tick(5) {
		t.Error("expected Tick to report stop at end of range")
	}
	if c.Playing() {
		t.Error("clock must be paused after reaching the end")
	}
	if c.CurrentTime() != 2 {
		t.Errorf("expected rewind to start 2, got %v", c.CurrentTime())
	}

	// no loop: further ticks change nothing
	c.Tick(50)
	if c.CurrentTime() != 2 || c.Playing() {
		t.Errorf("clock moved after stop: time=%v playing=%v", c.CurrentTime(), c.Playing())
	}
}

func TestTick_IgnoredWhenPaused(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("vid", 0, 10))
	if c.Tick(5) {
		t.Error("paused clock must not tick")
	}
	if c.CurrentTime() != 0 {
		t.Errorf("expected 0, got %v", c.CurrentTime())
	}
}

func TestSeek_ClampsAndRounds(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Below Start", -5, 1},
		{"Far Beyond End", 106.3, 6.3},
		{"Rounded Down", 3.04, 3.0},
		{"Rounded Up", 3.06, 3.1},
		{"Exactly Start", 1, 1},
		{"Exactly End", 6.3, 6.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(zap.NewNop())
			c.Bind(videoItem("vid", 1, 6.3))
			got := c.Seek(tt.input)
			if !approx(got, tt.expected) {
				t.Errorf("Seek(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if got < 1 || got > 6.3 {
				t.Errorf("Seek result %v escaped the range", got)
			}
		})
	}
}

func TestSeek_RoundingNeverLeavesRange(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("vid", 0.04, 0.26))

	for _, in := range []float64{-1, 0, 0.04, 0.05, 0.2, 0.26, 9} {
		got := c.Seek(in)
		if got < 0.04 || got > 0.26 {
			t.Errorf("Seek(%v) = %v escaped [0.04, 0.26]", in, got)
		}
	}
}

func TestSeek_WithoutItemIsNoop(t *testing.T) {
	c := New(zap.NewNop())
	if got := c.Seek(3); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSeek_WhilePlayingContinuesFromTarget(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("vid", 0, 20))
	c.Play(0)
	c.Tick(2)
	c.Seek(8)
	c.Tick(3)
	if !approx(c.CurrentTime(), 8) {
		t.Errorf("expected re-anchor at 8, got %v", c.CurrentTime())
	}
	c.Tick(4)
	if !approx(c.CurrentTime(), 9) {
		t.Errorf("expected 9 one second later, got %v", c.CurrentTime())
	}
}

func TestBind_ItemSwapResets(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("first", 0, 10))
	c.Seek(4)
	c.Play(0)

	c.Bind(videoItem("second", 1, 3))
	if c.Playing() {
		t.Error("swap must stop the clock")
	}
	if c.CurrentTime() != 0 {
		t.Errorf("swap must reset time to 0, got %v", c.CurrentTime())
	}
}

func TestBind_SameItemKeepsState(t *testing.T) {
	c := New(zap.NewNop())
	item := videoItem("same", 0, 10)
	c.Bind(item)
	c.Seek(4)
	c.Play(0)

	edited := *item
	edited.Range.End = 8
	c.Bind(&edited)
	if !c.Playing() || c.CurrentTime() != 4 {
		t.Errorf("edit of the same item must keep clock state, got time=%v playing=%v", c.CurrentTime(), c.Playing())
	}

	// the new end applies on the next tick
	c.Tick(100)
	if c.Playing() || c.CurrentTime() != 0 {
		t.Errorf("expected stop at new end, got time=%v playing=%v", c.CurrentTime(), c.Playing())
	}
}

func TestToggle(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("vid", 1, 5))

	c.Seek(5)
	if !c.Toggle(10) {
		t.Fatal("expected toggle to start playback")
	}
	if c.CurrentTime() != 1 {
		t.Errorf("toggle at end must rewind to start, got %v", c.CurrentTime())
	}
	c.Tick(11)
	if !approx(c.CurrentTime(), 2) {
		t.Errorf("expected 2, got %v", c.CurrentTime())
	}
	if c.Toggle(12) {
		t.Error("second toggle must pause")
	}

	img := New(zap.NewNop())
	img.Bind(&domain.MediaItem{ID: "img", Kind: domain.KindImage, Range: domain.TimeRange{End: 5}})
	if img.Toggle(0) || img.Playing() {
		t.Error("toggle must be a no-op for images")
	}
}

func TestNudge(t *testing.T) {
	c := New(zap.NewNop())
	c.Bind(videoItem("vid", 0, 1))
	c.Nudge(0.1)
	c.Nudge(0.1)
	if !approx(c.CurrentTime(), 0.2) {
		t.Errorf("expected 0.2, got %v", c.CurrentTime())
	}
	c.Nudge(-0.5)
	if c.CurrentTime() != 0 {
		t.Errorf("expected clamp to 0, got %v", c.CurrentTime())
	}
}
