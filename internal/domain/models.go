package domain

// PlayerStatus represents the current state of the playback clock
type PlayerStatus string

const (
	// StatusPlaying indicates the clock is advancing
	StatusPlaying PlayerStatus = "Playing"
	// StatusPaused indicates an item is loaded but the clock is halted
	StatusPaused PlayerStatus = "Paused"
	// StatusStopped indicates no item is loaded
	StatusStopped PlayerStatus = "Stopped"
)

// MediaKind distinguishes still images from playable clips
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// MinDimension is the hard floor for item width and height, in canvas pixels.
const MinDimension = 50.0

// Point is a location in unscaled canvas space
type Point struct {
	X float64
	Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size holds item dimensions in canvas pixels
type Size struct {
	Width  float64
	Height float64
}

// TimeRange is the inclusive window, in seconds, during which an item is visible.
// Invariant: 0 <= Start <= End.
type TimeRange struct {
	Start float64
	End   float64
}

// Contains reports whether t lies in [Start, End]
func (r TimeRange) Contains(t float64) bool {
	return t >= r.Start && t <= r.End
}

// Clamp returns t limited to [Start, End]
func (r TimeRange) Clamp(t float64) float64 {
	if t < r.Start {
		return r.Start
	}
	if t > r.End {
		return r.End
	}
	return t
}

// MediaItem is the single placed item on the canvas.
// It is a value type: every update produces a new MediaItem and leaves the old one untouched.
type MediaItem struct {
	// ID identifies the loaded asset. Geometry and time edits keep it, a new asset gets a new one.
	ID string
	// Kind is image or video
	Kind MediaKind
	// Source is an opaque reference to the asset (a file path); the core never decodes it
	Source string
	// Size is the rendered width and height, each at least MinDimension
	Size Size
	// Position is the top-left anchor, unbounded
	Position Point
	// Range is the visibility window
	Range TimeRange
}

// Playable reports whether the item can be driven by the clock
func (m MediaItem) Playable() bool {
	return m.Kind == KindVideo
}

// Bounds returns the item's rectangle as position and size
func (m MediaItem) Bounds() (Point, Size) {
	return m.Position, m.Size
}

// Asset is what the asset loader reports for a user-selected file
type Asset struct {
	Kind   MediaKind
	Source string
	// NaturalDuration is the probed clip length in seconds; zero for images
	NaturalDuration float64
	// NaturalWidth and NaturalHeight are the decoded pixel dimensions when known
	NaturalWidth  int
	NaturalHeight int
}

// ItemDefaults holds the placement used when an asset becomes a MediaItem
type ItemDefaults struct {
	Size          Size
	Position      Point
	ImageDuration float64
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}

// PlaybackState is a read-only snapshot of the session
type PlaybackState struct {
	Item        *MediaItem
	CurrentTime float64
	Playing     bool
	Visible     bool
	Zoom        float64
	Gesture     string
	Status      PlayerStatus
}

// Key is a logical keyboard command
type Key string

const (
	// KeyToggle plays or pauses the clock
	KeyToggle Key = "toggle"
	// KeyBack nudges the clock backwards
	KeyBack Key = "back"
	// KeyForward nudges the clock forwards
	KeyForward Key = "forward"
)

// NudgeStep is the keyboard scrub increment in seconds
const NudgeStep = 0.1
