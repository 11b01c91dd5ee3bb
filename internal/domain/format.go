package domain

import "fmt"

// FormatDuration renders minutes as "45m", "2h" or "1h 5m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

// FormatDistance renders kilometers with one decimal, e.g. "12.3 km".
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// NeutralColor is used for unknown modes and for straight-line fallbacks.
const NeutralColor = "#777"

// Color returns the map line color for the mode.
func (m Mode) Color() string {
	switch m {
	case ModeTrain:
		return "#0077cc"
	case ModeBus:
		return "#5cb85c"
	case ModeCar:
		return "#f0ad4e"
	case ModePlane:
		return "#d9534f"
	case ModeWalk:
		return "#5bc0de"
	case ModeBike:
		return "#28a745"
	case ModeFerry:
		return "#17a2b8"
	default:
		return NeutralColor
	}
}

// Icon returns the emoji shown next to the mode in result lists.
func (m Mode) Icon() string {
	switch m {
	case ModeTrain:
		return "🚆"
	case ModeBus:
		return "🚌"
	case ModeCar:
		return "🚗"
	case ModePlane:
		return "✈️"
	case ModeFerry:
		return "⛴️"
	case ModeWalk:
		return "🚶"
	case ModeBike:
		return "🚲"
	default:
		return "🚩"
	}
}
