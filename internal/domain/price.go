package domain

import (
	"fmt"
	"math"
)

// EstimatePrice returns a coarse price range for travelling distanceKm by mode.
//
// The coefficients are linear per-mode heuristics, not fare lookups:
//
//	car    €(0.15d)-(0.30d)
//	train  €(0.15d)-(0.40d)
//	walk   Free
//	bike   €(0.05d)-(0.10d) above 20 km, otherwise Free-€5
//	plane  €(50+0.10d)-(100+0.25d)
//	other  €(0.10d)-(0.25d)
func EstimatePrice(mode Mode, distanceKm float64) string {
	switch mode {
	case ModeCar:
		return priceRange(distanceKm*0.15, distanceKm*0.3)
	case ModeTrain:
		return priceRange(distanceKm*0.15, distanceKm*0.4)
	case ModeWalk:
		return "Free"
	case ModeBike:
		if distanceKm > 20 {
			return priceRange(distanceKm*0.05, distanceKm*0.1)
		}
		return "Free-€5"
	case ModePlane:
		return priceRange(50+distanceKm*0.1, 100+distanceKm*0.25)
	default:
		return priceRange(distanceKm*0.1, distanceKm*0.25)
	}
}

func priceRange(lo, hi float64) string {
	return fmt.Sprintf("€%d-%d", int(math.Round(lo)), int(math.Round(hi)))
}
