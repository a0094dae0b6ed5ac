package imop

import (
	"fmt"
	"strings"

	"github.com/lumina-ai/brandgen/utils"
)

// Blend is a separable blend mode mixing a source color with its backdrop.
type Blend int

// Supported blend modes.
const (
	Normal Blend = iota
	Darken
	Lighten
	Multiply
	Screen
	Overlay
	blendCount
)

var blendNames = [blendCount]string{
	Normal:   "normal",
	Darken:   "darken",
	Lighten:  "lighten",
	Multiply: "multiply",
	Screen:   "screen",
	Overlay:  "overlay",
}

func (b Blend) String() string {
	if b < 0 || b >= blendCount {
		return fmt.Sprintf("Blend(%d)", int(b))
	}
	return blendNames[b]
}

// ParseBlend resolves a blend mode by name. The empty string means Normal.
func ParseBlend(s string) (Blend, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Normal, nil
	}
	for b, name := range blendNames {
		if name == s {
			return Blend(b), nil
		}
	}
	return Normal, fmt.Errorf("unsupported blend mode %q", s)
}

// mix applies the blend function to one normalized channel, where cb is the
// backdrop and cs the source value.
func (b Blend) mix(cb, cs float64) float64 {
	switch b {
	case Darken:
		return utils.Min(cb, cs)
	case Lighten:
		return utils.Max(cb, cs)
	case Multiply:
		return cb * cs
	case Screen:
		return 1 - (1-cb)*(1-cs)
	case Overlay:
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	}
	return cs
}
