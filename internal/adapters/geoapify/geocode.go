package geoapify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/platform/obs"
)

const autocompletePath = "/v1/geocode/autocomplete"

type autocompleteResponse struct {
	Results []struct {
		Formatted string   `json:"formatted"`
		Lat       *float64 `json:"lat"`
		Lon       *float64 `json:"lon"`
	} `json:"results"`
}

// Autocomplete resolves free text into candidate locations using Geoapify
// (/v1/geocode/autocomplete). Results without usable coordinates are dropped.
func (g *GeoapifyClient) Autocomplete(
	ctx context.Context,
	text string,
	limit int,
) (_ []domain.Location, err error) {
	defer obs.Time(ctx, g.log, "geoapify.Autocomplete")(&err)

	norm := g.normalize(text)
	if norm == "" {
		return nil, errors.New("autocomplete: text must be non-empty")
	}
	if limit <= 0 {
		limit = 5
	}

	key := "geocode|" + strconv.Itoa(limit) + "|" + norm

	body, ok := g.cached(ctx, key)
	if !ok {
		params := url.Values{}
		params.Set("text", norm)
		params.Set("limit", strconv.Itoa(limit))
		params.Set("format", "json")

		body, err = g.fetch(ctx, "geocode", autocompletePath, params)
		if err != nil {
			return nil, err
		}
	}

	var decoded autocompleteResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	out := make([]domain.Location, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		if r.Lat == nil || r.Lon == nil {
			continue
		}
		loc := domain.Location{
			Name:        r.Formatted,
			Coordinates: domain.Coordinates{Lat: *r.Lat, Lon: *r.Lon},
		}
		if loc.Validate() != nil {
			continue
		}
		out = append(out, loc)
	}

	if !ok {
		g.remember(ctx, key, body)
	}

	return out, nil
}
