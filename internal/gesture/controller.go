package gesture

import (
	"math"
	"strings"

	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/genricoloni/mediastage/internal/store"
	"go.uber.org/zap"
)

// Corner identifies one of the four resize handles by compass letters
type Corner string

const (
	CornerNW Corner = "nw"
	CornerNE Corner = "ne"
	CornerSW Corner = "sw"
	CornerSE Corner = "se"
)

// Corners lists the handles in hit-test order
var Corners = []Corner{CornerNW, CornerNE, CornerSW, CornerSE}

func (c Corner) has(letter byte) bool {
	return strings.IndexByte(string(c), letter) >= 0
}

// TargetKind says what a pointer-down landed on
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetBody
	TargetHandle
)

// Target is the result of hit-testing a pointer against the item
type Target struct {
	Kind   TargetKind
	Corner Corner
}

// State names the current gesture
type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
	StateResizing State = "resizing"
)

// gesture is the transient capture of an active interaction
type gesture struct {
	state        State
	anchorOffset domain.Point // Dragging: pointer - position at down
	corner       Corner       // Resizing
	startPos     domain.Point
	startSize    domain.Size
	startPointer domain.Point
}

// UpdateFunc receives every item produced by a gesture
type UpdateFunc func(domain.MediaItem)

// Controller is the pointer-gesture state machine for drag and corner resize.
// There is at most one active gesture; it keeps no geometry beyond the gesture's start capture.
type Controller struct {
	logger     *zap.Logger
	handleSize float64
	onUpdate   UpdateFunc
	active     gesture
}

// NewController creates an idle controller. handleSize is the half-width of the
// square hit area centred on each corner.
func NewController(logger *zap.Logger, handleSize float64, onUpdate UpdateFunc) *Controller {
	return &Controller{
		logger:     logger,
		handleSize: handleSize,
		onUpdate:   onUpdate,
		active:     gesture{state: StateIdle},
	}
}

// State returns the current gesture name
func (c *Controller) State() State {
	return c.active.state
}

// HitTest resolves a canvas point against the item. Handles take priority over the body.
func (c *Controller) HitTest(item domain.MediaItem, p domain.Point) Target {
	for _, corner := range Corners {
		cp := cornerPoint(item, corner)
		if math.Abs(p.X-cp.X) <= c.handleSize && math.Abs(p.Y-cp.Y) <= c.handleSize {
			return Target{Kind: TargetHandle, Corner: corner}
		}
	}

	pos, size := item.Bounds()
	if p.X >= pos.X && p.X <= pos.X+size.Width && p.Y >= pos.Y && p.Y <= pos.Y+size.Height {
		return Target{Kind: TargetBody}
	}
	return Target{Kind: TargetNone}
}

func cornerPoint(item domain.MediaItem, corner Corner) domain.Point {
	p := item.Position
	if corner.has('e') {
		p.X += item.Size.Width
	}
	if corner.has('s') {
		p.Y += item.Size.Height
	}
	return p
}

// PointerDown starts a gesture, replacing whatever was active
func (c *Controller) PointerDown(item domain.MediaItem, p domain.Point, target Target) {
	if c.active.state != StateIdle {
		c.logger.Debug("Replacing active gesture", zap.String("previous", string(c.active.state)))
	}

	switch target.Kind {
	case TargetHandle:
		c.active = gesture{
			state:        StateResizing,
			corner:       target.Corner,
			startPos:     item.Position,
			startSize:    item.Size,
			startPointer: p,
		}
	case TargetBody:
		c.active = gesture{
			state:        StateDragging,
			anchorOffset: p.Sub(item.Position),
		}
	default:
		c.active = gesture{state: StateIdle}
	}
}

// PointerMove advances the active gesture and emits the resulting item.
// Positions are never clamped to the canvas.
func (c *Controller) PointerMove(item domain.MediaItem, p domain.Point) {
	switch c.active.state {
	case StateDragging:
		c.emit(store.SetPosition(item, p.Sub(c.active.anchorOffset)))
	case StateResizing:
		pos, size := c.resize(p)
		c.emit(store.SetBounds(item, pos, size))
	}
}

// resize applies the compass rules relative to the start capture:
// e/w drive width (w keeps the east edge fixed), s/n drive height (n keeps the south edge fixed).
func (c *Controller) resize(p domain.Point) (domain.Point, domain.Size) {
	g := c.active
	delta := p.Sub(g.startPointer)
	pos, size := g.startPos, g.startSize

	if g.corner.has('e') {
		size.Width = math.Max(domain.MinDimension, g.startSize.Width+delta.X)
	} else if g.corner.has('w') {
		size.Width = math.Max(domain.MinDimension, g.startSize.Width-delta.X)
		pos.X = g.startPos.X + (g.startSize.Width - size.Width)
	}

	if g.corner.has('s') {
		size.Height = math.Max(domain.MinDimension, g.startSize.Height+delta.Y)
	} else if g.corner.has('n') {
		size.Height = math.Max(domain.MinDimension, g.startSize.Height-delta.Y)
		pos.Y = g.startPos.Y + (g.startSize.Height - size.Height)
	}

	return pos, size
}

// PointerUp ends any gesture, wherever the pointer is
func (c *Controller) PointerUp() {
	c.active = gesture{state: StateIdle}
}

// Reset drops the active gesture; called on item swap
func (c *Controller) Reset() {
	c.PointerUp()
}

func (c *Controller) emit(item domain.MediaItem) {
	if c.onUpdate != nil {
		c.onUpdate(item)
	}
}
