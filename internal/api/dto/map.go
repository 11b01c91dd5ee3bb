package dto

import "travel-compare-service/internal/domain"

// RouteRef identifies a route to draw. Only the mode drives rendering.
type RouteRef struct {
	ID   string `json:"id"`
	Type string `json:"type" binding:"required"`
}

type RenderRequest struct {
	Origin      *LocationRequest `json:"origin" binding:"required"`
	Destination *LocationRequest `json:"destination" binding:"required"`
	Routes      []RouteRef       `json:"routes" binding:"dive"`
}

// RouteOptions converts the references into route options. Unknown mode
// labels are kept as is; renderers fall back to their defaults for them.
func (r RenderRequest) RouteOptions() []domain.RouteOption {
	out := make([]domain.RouteOption, 0, len(r.Routes))
	for _, ref := range r.Routes {
		mode, _ := domain.ParseMode(ref.Type)
		out = append(out, domain.RouteOption{ID: ref.ID, Mode: mode})
	}
	return out
}
