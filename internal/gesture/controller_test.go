package gesture

import (
	"testing"

	"github.com/genricoloni/mediastage/internal/domain"
	"go.uber.org/zap"
)

// recorder keeps the latest item emitted by the controller, mimicking the session's single update path
type recorder struct {
	item    domain.MediaItem
	updates int
}

func (r *recorder) update(item domain.MediaItem) {
	r.item = item
	r.updates++
}

func newFixture(pos domain.Point, size domain.Size) (*Controller, *recorder) {
	rec := &recorder{item: domain.MediaItem{
		ID:       "item",
		Kind:     domain.KindImage,
		Size:     size,
		Position: pos,
		Range:    domain.TimeRange{End: 5},
	}}
	return NewController(zap.NewNop(), 8, rec.update), rec
}

func TestResize_Corners(t *testing.T) {
	tests := []struct {
		name         string
		corner       Corner
		start        domain.Point
		delta        domain.Point
		expectedPos  domain.Point
		expectedSize domain.Size
	}{
		{
			name:         "SE Grows Width Shrinks Height",
			corner:       CornerSE,
			delta:        domain.Point{X: 30, Y: -10},
			expectedPos:  domain.Point{X: 0, Y: 0},
			expectedSize: domain.Size{Width: 130, Height: 90},
		},
		{
			name:         "NW Shrinks Both And Moves Anchor",
			corner:       CornerNW,
			delta:        domain.Point{X: 20, Y: 20},
			expectedPos:  domain.Point{X: 20, Y: 20},
			expectedSize: domain.Size{Width: 80, Height: 80},
		},
		{
			name:         "NE Grows Width Up",
			corner:       CornerNE,
			delta:        domain.Point{X: 15, Y: -25},
			expectedPos:  domain.Point{X: 0, Y: -25},
			expectedSize: domain.Size{Width: 115, Height: 125},
		},
		{
			name:         "SW Grows Width Left",
			corner:       CornerSW,
			delta:        domain.Point{X: -40, Y: 5},
			expectedPos:  domain.Point{X: -40, Y: 0},
			expectedSize: domain.Size{Width: 140, Height: 105},
		},
		{
			name:         "SE Floors At 50",
			corner:       CornerSE,
			delta:        domain.Point{X: -500, Y: -500},
			expectedPos:  domain.Point{X: 0, Y: 0},
			expectedSize: domain.Size{Width: 50, Height: 50},
		},
		{
			name:         "NW Floor Keeps Opposite Edge Anchored",
			corner:       CornerNW,
			delta:        domain.Point{X: 90, Y: 70},
			expectedPos:  domain.Point{X: 50, Y: 50},
			expectedSize: domain.Size{Width: 50, Height: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, rec := newFixture(domain.Point{}, domain.Size{Width: 100, Height: 100})
			down := cornerPoint(rec.item, tt.corner)

			ctrl.PointerDown(rec.item, down, ctrl.HitTest(rec.item, down))
			if ctrl.State() != StateResizing {
				t.Fatalf("expected resizing, got %s", ctrl.State())
			}

			ctrl.PointerMove(rec.item, domain.Point{X: down.X + tt.delta.X, Y: down.Y + tt.delta.Y})
			if rec.item.Position != tt.expectedPos {
				t.Errorf("position: want %+v, got %+v", tt.expectedPos, rec.item.Position)
			}
			if rec.item.Size != tt.expectedSize {
				t.Errorf("size: want %+v, got %+v", tt.expectedSize, rec.item.Size)
			}
		})
	}
}

func TestResize_DeltasAreRelativeToStart(t *testing.T) {
	ctrl, rec := newFixture(domain.Point{}, domain.Size{Width: 100, Height: 100})
	down := domain.Point{X: 100, Y: 100}
	ctrl.PointerDown(rec.item, down, Target{Kind: TargetHandle, Corner: CornerSE})

	// several moves must not accumulate
	ctrl.PointerMove(rec.item, domain.Point{X: 110, Y: 110})
	ctrl.PointerMove(rec.item, domain.Point{X: 120, Y: 120})
	ctrl.PointerMove(rec.item, domain.Point{X: 130, Y: 105})
	if rec.item.Size != (domain.Size{Width: 130, Height: 105}) {
		t.Errorf("expected 130x105, got %+v", rec.item.Size)
	}
}

func TestDrag(t *testing.T) {
	ctrl, rec := newFixture(domain.Point{X: 100, Y: 100}, domain.Size{Width: 320, Height: 240})

	down := domain.Point{X: 150, Y: 130}
	ctrl.PointerDown(rec.item, down, ctrl.HitTest(rec.item, down))
	if ctrl.State() != StateDragging {
		t.Fatalf("expected dragging, got %s", ctrl.State())
	}

	ctrl.PointerMove(rec.item, domain.Point{X: 60, Y: 500})
	if rec.item.Position != (domain.Point{X: 10, Y: 470}) {
		t.Errorf("expected (10, 470), got %+v", rec.item.Position)
	}

	// far off-canvas, no clamp
	ctrl.PointerMove(rec.item, domain.Point{X: -4000, Y: -4000})
	if rec.item.Position != (domain.Point{X: -4050, Y: -4030}) {
		t.Errorf("expected unclamped (-4050, -4030), got %+v", rec.item.Position)
	}
	if rec.item.Size != (domain.Size{Width: 320, Height: 240}) {
		t.Error("drag must not change size")
	}

	ctrl.PointerUp()
	if ctrl.State() != StateIdle {
		t.Errorf("release off-canvas must end the gesture, got %s", ctrl.State())
	}
}

func TestPointerMove_IdleIsNoop(t *testing.T) {
	ctrl, rec := newFixture(domain.Point{}, domain.Size{Width: 100, Height: 100})
	ctrl.PointerMove(rec.item, domain.Point{X: 5, Y: 5})
	if rec.updates != 0 {
		t.Errorf("idle move emitted %d updates", rec.updates)
	}
}

func TestHitTest_HandlePriority(t *testing.T) {
	ctrl, rec := newFixture(domain.Point{X: 10, Y: 10}, domain.Size{Width: 100, Height: 80})

	tests := []struct {
		name     string
		point    domain.Point
		expected Target
	}{
		{"NW Handle Inside Body", domain.Point{X: 12, Y: 12}, Target{Kind: TargetHandle, Corner: CornerNW}},
		{"NE Handle Outside Body", domain.Point{X: 115, Y: 5}, Target{Kind: TargetHandle, Corner: CornerNE}},
		{"SW Handle", domain.Point{X: 10, Y: 90}, Target{Kind: TargetHandle, Corner: CornerSW}},
		{"SE Handle", domain.Point{X: 108, Y: 88}, Target{Kind: TargetHandle, Corner: CornerSE}},
		{"Body Centre", domain.Point{X: 60, Y: 50}, Target{Kind: TargetBody}},
		{"Outside", domain.Point{X: 300, Y: 300}, Target{Kind: TargetNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ctrl.HitTest(rec.item, tt.point); got != tt.expected {
				t.Errorf("want %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestPointerDown_ReplacesActiveGesture(t *testing.T) {
	ctrl, rec := newFixture(domain.Point{}, domain.Size{Width: 100, Height: 100})

	ctrl.PointerDown(rec.item, domain.Point{X: 50, Y: 50}, Target{Kind: TargetBody})
	ctrl.PointerDown(rec.item, domain.Point{X: 100, Y: 100}, Target{Kind: TargetHandle, Corner: CornerSE})
	if ctrl.State() != StateResizing {
		t.Fatalf("expected resize to replace drag, got %s", ctrl.State())
	}

	ctrl.PointerDown(rec.item, domain.Point{X: 500, Y: 500}, Target{Kind: TargetNone})
	if ctrl.State() != StateIdle {
		t.Errorf("down on empty canvas must leave no gesture, got %s", ctrl.State())
	}
}

func TestReset(t *testing.T) {
	ctrl, rec := newFixture(domain.Point{}, domain.Size{Width: 100, Height: 100})
	ctrl.PointerDown(rec.item, domain.Point{X: 50, Y: 50}, Target{Kind: TargetBody})
	ctrl.Reset()
	ctrl.PointerMove(rec.item, domain.Point{X: 70, Y: 70})
	if ctrl.State() != StateIdle || rec.updates != 0 {
		t.Errorf("reset must drop the gesture, state=%s updates=%d", ctrl.State(), rec.updates)
	}
}
