// Package store holds the pure update operations for the placed MediaItem.
// Every function takes an item by value and returns a new one; nothing is mutated in place.
package store

import (
	"math"

	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/google/uuid"
)

// SizePatch carries optional width/height edits. Nil fields are left untouched.
type SizePatch struct {
	Width  *float64
	Height *float64
}

// RangePatch carries optional start/end edits. Nil fields are left untouched.
type RangePatch struct {
	Start *float64
	End   *float64
}

// Float is a helper for building patches inline
func Float(v float64) *float64 {
	return &v
}

// NewItem turns a loaded asset into the initial MediaItem
func NewItem(asset domain.Asset, defaults domain.ItemDefaults) domain.MediaItem {
	end := defaults.ImageDuration
	if asset.Kind == domain.KindVideo {
		end = asset.NaturalDuration
	}
	if !finite(end) || end < 0 {
		end = 0
	}

	return domain.MediaItem{
		ID:     uuid.NewString(),
		Kind:   asset.Kind,
		Source: asset.Source,
		Size: domain.Size{
			Width:  floorDimension(defaults.Size.Width),
			Height: floorDimension(defaults.Size.Height),
		},
		Position: defaults.Position,
		Range:    domain.TimeRange{Start: 0, End: end},
	}
}

// SetSize applies a width/height edit. Each present, finite value is floored at MinDimension.
func SetSize(item domain.MediaItem, patch SizePatch) domain.MediaItem {
	next := item
	if patch.Width != nil && finite(*patch.Width) {
		next.Size.Width = floorDimension(*patch.Width)
	}
	if patch.Height != nil && finite(*patch.Height) {
		next.Size.Height = floorDimension(*patch.Height)
	}
	return next
}

// SetTimeRange applies a start/end edit.
// Both fields are clamped against the range as it was before the call:
// start to [0, old end], end to [old start, +inf).
func SetTimeRange(item domain.MediaItem, patch RangePatch) domain.MediaItem {
	prev := item.Range
	next := item

	if patch.Start != nil && finite(*patch.Start) {
		next.Range.Start = math.Max(0, math.Min(*patch.Start, prev.End))
	}
	if patch.End != nil && finite(*patch.End) {
		next.Range.End = math.Max(prev.Start, *patch.End)
	}

	// independent clamps can cross when both move at once
	if next.Range.Start > next.Range.End {
		next.Range.End = next.Range.Start
	}
	return next
}

// SetPosition moves the item's top-left anchor. Positions are not bounded by the canvas.
func SetPosition(item domain.MediaItem, p domain.Point) domain.MediaItem {
	next := item
	if finite(p.X) {
		next.Position.X = p.X
	}
	if finite(p.Y) {
		next.Position.Y = p.Y
	}
	return next
}

// SetBounds applies a position and size together, as a resize gesture does
func SetBounds(item domain.MediaItem, p domain.Point, s domain.Size) domain.MediaItem {
	next := SetPosition(item, p)
	return SetSize(next, SizePatch{Width: &s.Width, Height: &s.Height})
}

// IsVisible reports whether the item is shown at currentTime; both ends are inclusive
func IsVisible(item domain.MediaItem, currentTime float64) bool {
	return item.Range.Contains(currentTime)
}

func floorDimension(v float64) float64 {
	return math.Max(domain.MinDimension, v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
