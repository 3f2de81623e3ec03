package input

import (
	"strings"

	"github.com/genricoloni/mediastage/internal/domain"
)

// keyNames maps raw key names, in either browser or terminal spelling, to commands
var keyNames = map[string]domain.Key{
	" ":          domain.KeyToggle,
	"space":      domain.KeyToggle,
	"left":       domain.KeyBack,
	"arrowleft":  domain.KeyBack,
	"right":      domain.KeyForward,
	"arrowright": domain.KeyForward,
}

// ParseKey resolves a raw key name. Unknown keys report false.
func ParseKey(name string) (domain.Key, bool) {
	if name != " " {
		name = strings.ToLower(strings.TrimSpace(name))
	}
	k, ok := keyNames[name]
	return k, ok
}
