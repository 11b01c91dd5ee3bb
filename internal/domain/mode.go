package domain

import "strings"

// Mode is the display vocabulary for transport methods. It drives labels,
// icons, colors and price tiers.
type Mode string

const (
	ModeCar   Mode = "car"
	ModeTrain Mode = "train"
	ModeWalk  Mode = "walk"
	ModeBike  Mode = "bike"
	ModePlane Mode = "plane"
	ModeBus   Mode = "bus"
	ModeFerry Mode = "ferry"
)

// Modes lists every supported display mode.
var Modes = []Mode{ModeCar, ModeTrain, ModeWalk, ModeBike, ModePlane, ModeBus, ModeFerry}

// ParseMode normalizes a display mode label. ok is false for labels outside
// the supported vocabulary; the returned Mode still carries the label so
// lookups fall through to their defaults.
func ParseMode(s string) (m Mode, ok bool) {
	m = Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, true
		}
	}
	return m, false
}

// Synthesized reports whether routes of this mode are fabricated locally
// rather than returned by the routing provider.
func (m Mode) Synthesized() bool {
	return m == ModePlane
}

// ProviderMode is the routing provider's vocabulary, used when fetching
// route summaries.
type ProviderMode string

const (
	ProviderDrive   ProviderMode = "drive"
	ProviderTransit ProviderMode = "transit"
	ProviderWalk    ProviderMode = "walk"
	ProviderBicycle ProviderMode = "bicycle"
)

// FetchModes are the provider modes queried for every search.
var FetchModes = []ProviderMode{ProviderDrive, ProviderTransit, ProviderWalk, ProviderBicycle}

// DisplayMode maps a provider mode to its display mode. Unrecognized
// provider modes map to car.
func (p ProviderMode) DisplayMode() Mode {
	switch p {
	case ProviderDrive:
		return ModeCar
	case ProviderTransit:
		return ModeTrain
	case ProviderWalk:
		return ModeWalk
	case ProviderBicycle:
		return ModeBike
	default:
		return ModeCar
	}
}

// ProviderMode maps a display mode back to the routing provider vocabulary.
// Modes without a provider equivalent are approximated; anything else is drive.
func (m Mode) ProviderMode() ProviderMode {
	switch m {
	case ModeCar, ModeBus:
		return ProviderDrive
	case ModeTrain, ModeFerry:
		return ProviderTransit
	case ModeWalk:
		return ProviderWalk
	case ModeBike:
		return ProviderBicycle
	default:
		return ProviderDrive
	}
}

// GeometryMode is the line-geometry provider's vocabulary. It is kept apart
// from ProviderMode because the two providers do not have to agree.
type GeometryMode string

const (
	GeometryDrive   GeometryMode = "drive"
	GeometryTransit GeometryMode = "transit"
	GeometryWalk    GeometryMode = "walk"
	GeometryBicycle GeometryMode = "bicycle"
)

// GeometryMode maps a display mode to the geometry provider vocabulary.
//
// Plane maps to drive because the provider has no air routing; the map
// renderer never requests geometry for synthesized modes, so that entry
// only keeps the table total.
func (m Mode) GeometryMode() GeometryMode {
	switch m {
	case ModeCar, ModeBus, ModePlane:
		return GeometryDrive
	case ModeTrain, ModeFerry:
		return GeometryTransit
	case ModeWalk:
		return GeometryWalk
	case ModeBike:
		return GeometryBicycle
	default:
		return GeometryDrive
	}
}
