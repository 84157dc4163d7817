package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/waypost/api/internal/config"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *GoogleGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGoogleGeocoder(config.GeocodingConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestGeocoderResolve(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "20 W 34th St" {
			t.Errorf("address param = %q, want 20 W 34th St", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key param = %q, want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 40.7484, "lng": -73.9857}}}]
		}`))
	})

	loc, err := g.Resolve(context.Background(), "20 W 34th St")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if loc.Lat != 40.7484 || loc.Lng != -73.9857 {
		t.Errorf("location = %+v, want {40.7484 -73.9857}", loc)
	}
}

func TestGeocoderZeroResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := g.Resolve(context.Background(), "garbage address")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Errorf("Resolve() error = %v, want ErrAddressNotFound", err)
	}
}

func TestGeocoderOKWithoutResults(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	_, err := g.Resolve(context.Background(), "odd address")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Errorf("Resolve() error = %v, want ErrAddressNotFound", err)
	}
}

func TestGeocoderProviderError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})

	_, err := g.Resolve(context.Background(), "somewhere")
	if !errors.Is(err, ErrGeocodingUnavailable) {
		t.Errorf("Resolve() error = %v, want ErrGeocodingUnavailable", err)
	}
}

func TestGeocoderHTTPError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := g.Resolve(context.Background(), "somewhere")
	if !errors.Is(err, ErrGeocodingUnavailable) {
		t.Errorf("Resolve() error = %v, want ErrGeocodingUnavailable", err)
	}
}

func TestGeocoderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Connections now refused

	g := NewGoogleGeocoder(config.GeocodingConfig{
		BaseURL: server.URL,
		Timeout: time.Second,
	})

	_, err := g.Resolve(context.Background(), "somewhere")
	if !errors.Is(err, ErrGeocodingUnavailable) {
		t.Errorf("Resolve() error = %v, want ErrGeocodingUnavailable", err)
	}
}
