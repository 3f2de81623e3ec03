package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/genricoloni/mediastage/internal/store"
)

// Editor receives numeric edits
type Editor interface {
	SetSize(patch store.SizePatch) error
	SetTimeRange(patch store.RangePatch) error
	SetPosition(p domain.Point) error
}

// ParseNumber reads a raw panel value. Anything unparsable becomes NaN, which
// every edit path treats as a no-op.
func ParseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Panel is the numeric input panel: one text field per item property
type Panel struct {
	editor Editor
}

// NewPanel creates a panel that forwards edits to editor
func NewPanel(editor Editor) *Panel {
	return &Panel{editor: editor}
}

// Fields lists the editable properties
var Fields = []string{"width", "height", "start", "end", "x", "y"}

// Set applies raw to field
func (p *Panel) Set(field, raw string) error {
	v := ParseNumber(raw)
	nan := math.NaN()

	switch strings.ToLower(field) {
	case "width":
		return p.editor.SetSize(store.SizePatch{Width: &v})
	case "height":
		return p.editor.SetSize(store.SizePatch{Height: &v})
	case "start":
		return p.editor.SetTimeRange(store.RangePatch{Start: &v})
	case "end":
		return p.editor.SetTimeRange(store.RangePatch{End: &v})
	case "x":
		return p.editor.SetPosition(domain.Point{X: v, Y: nan})
	case "y":
		return p.editor.SetPosition(domain.Point{X: nan, Y: v})
	}
	return fmt.Errorf("unknown field %q, expected one of %s", field, strings.Join(Fields, ", "))
}
