package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"travel-compare-service/internal/domain"
)

// CoordinateValue accepts a latitude or longitude sent either as a JSON
// number or as a numeric string. Parsing happens in LocationRequest.Location
// so malformed values surface as domain.ErrInvalidCoordinates.
type CoordinateValue struct {
	Raw string
}

func (v *CoordinateValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &v.Raw)
	}
	v.Raw = string(b)
	return nil
}

func (v CoordinateValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw)
}

// LocationRequest mirrors the geocoder result shape the UI already holds.
type LocationRequest struct {
	Formatted string           `json:"formatted"`
	Lat       *CoordinateValue `json:"lat" binding:"required"`
	Lon       *CoordinateValue `json:"lon" binding:"required"`
}

func (r LocationRequest) Location() (domain.Location, error) {
	c, err := domain.ParseCoordinates(r.Lat.Raw, r.Lon.Raw)
	if err != nil {
		return domain.Location{}, err
	}
	return domain.Location{Name: strings.TrimSpace(r.Formatted), Coordinates: c}, nil
}

type LocationResponse struct {
	Formatted string  `json:"formatted"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

type GeocodeResponse struct {
	Results []LocationResponse `json:"results"`
}

func NewGeocodeResponse(locs []domain.Location) GeocodeResponse {
	out := GeocodeResponse{Results: make([]LocationResponse, 0, len(locs))}
	for _, l := range locs {
		out.Results = append(out.Results, LocationResponse{Formatted: l.Name, Lat: l.Lat, Lon: l.Lon})
	}
	return out
}
