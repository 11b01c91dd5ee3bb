package dto

import "travel-compare-service/internal/domain"

type SearchRequest struct {
	Origin      *LocationRequest `json:"origin" binding:"required"`
	Destination *LocationRequest `json:"destination" binding:"required"`
}

type SegmentResponse struct {
	Type     string  `json:"type"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Duration int     `json:"duration"`
	Distance float64 `json:"distance"`
}

// RouteResponse is one route option. Duration is in minutes and distance in
// kilometers; the *_label fields are preformatted for display.
type RouteResponse struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Duration      int               `json:"duration"`
	Distance      float64           `json:"distance"`
	Price         string            `json:"price"`
	Segments      []SegmentResponse `json:"segments"`
	DurationLabel string            `json:"duration_label"`
	DistanceLabel string            `json:"distance_label"`
	Icon          string            `json:"icon"`
	Color         string            `json:"color"`
}

type SearchResponse struct {
	Routes []RouteResponse `json:"routes"`
}

func NewSearchResponse(routes []domain.RouteOption) SearchResponse {
	out := SearchResponse{Routes: make([]RouteResponse, 0, len(routes))}
	for _, r := range routes {
		out.Routes = append(out.Routes, NewRouteResponse(r))
	}
	return out
}

func NewRouteResponse(r domain.RouteOption) RouteResponse {
	segments := make([]SegmentResponse, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, SegmentResponse{
			Type:     string(s.Mode),
			From:     s.From,
			To:       s.To,
			Duration: s.DurationMinutes,
			Distance: s.DistanceKm,
		})
	}

	return RouteResponse{
		ID:            r.ID,
		Type:          string(r.Mode),
		Duration:      r.DurationMinutes,
		Distance:      r.DistanceKm,
		Price:         r.Price,
		Segments:      segments,
		DurationLabel: domain.FormatDuration(r.DurationMinutes),
		DistanceLabel: domain.FormatDistance(r.DistanceKm),
		Icon:          r.Mode.Icon(),
		Color:         r.Mode.Color(),
	}
}
