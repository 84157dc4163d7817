package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/waypost/api/internal/config"
	"github.com/waypost/api/internal/model"
)

// Geocoder resolves street addresses to coordinates.
//
// Two failure modes are distinguished: ErrAddressNotFound means the provider
// answered but found nothing for the address, ErrGeocodingUnavailable means
// the provider could not be reached or misbehaved. Callers treat the first
// as a client problem and the second as an infrastructure problem.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (model.Location, error)
}

// GoogleGeocoder resolves addresses through the Google Geocoding API
type GoogleGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGoogleGeocoder creates a geocoder from configuration
func NewGoogleGeocoder(cfg config.GeocodingConfig) *GoogleGeocoder {
	return &GoogleGeocoder{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// geocodeResponse is the subset of the provider response we care about
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve resolves an address to coordinates
func (g *GoogleGeocoder) Resolve(ctx context.Context, address string) (model.Location, error) {
	params := url.Values{}
	params.Set("address", address)
	if g.apiKey != "" {
		params.Set("key", g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: %v", ErrGeocodingUnavailable, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: %v", ErrGeocodingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Location{}, fmt.Errorf("%w: provider returned %d", ErrGeocodingUnavailable, resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Location{}, fmt.Errorf("%w: %v", ErrGeocodingUnavailable, err)
	}

	switch body.Status {
	case "OK":
		if len(body.Results) == 0 {
			return model.Location{}, ErrAddressNotFound
		}
		loc := body.Results[0].Geometry.Location
		return model.Location{Lat: loc.Lat, Lng: loc.Lng}, nil
	case "ZERO_RESULTS":
		return model.Location{}, ErrAddressNotFound
	default:
		// OVER_QUERY_LIMIT, REQUEST_DENIED, UNKNOWN_ERROR and friends
		return model.Location{}, fmt.Errorf("%w: provider status %s", ErrGeocodingUnavailable, body.Status)
	}
}
