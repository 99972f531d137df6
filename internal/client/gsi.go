package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jma-area-api/internal/observability"
)

// ReverseGeocoder resolves coordinates to a municipality code using the GSI reverse geocoder.
type ReverseGeocoder struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
}

// NewReverseGeocoder creates a GSI reverse geocoding client.
func NewReverseGeocoder(baseURL string, timeout time.Duration, metrics *observability.Metrics) *ReverseGeocoder {
	return &ReverseGeocoder{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    metrics,
	}
}

// Resolve returns the municipality code at the given coordinates. It returns 0 when
// the service has no match; the error is set only when the call itself failed.
func (g *ReverseGeocoder) Resolve(ctx context.Context, latitude, longitude string) (int, error) {
	start := time.Now()
	code, err := g.resolve(ctx, latitude, longitude)
	g.metrics.GeocodeAPIDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		g.metrics.GeocodeRequests.WithLabelValues("error").Inc()
	case code == 0:
		g.metrics.GeocodeRequests.WithLabelValues("no_match").Inc()
	default:
		g.metrics.GeocodeRequests.WithLabelValues("match").Inc()
	}
	return code, err
}

func (g *ReverseGeocoder) resolve(ctx context.Context, latitude, longitude string) (int, error) {
	params := url.Values{
		"lat": {latitude},
		"lon": {longitude},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("client: create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("client: reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("client: reverse geocoder status %d", resp.StatusCode)
	}

	var body reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("client: decode reverse geocode response: %w", err)
	}

	// No results means the point is outside any municipality, e.g. at sea.
	if body.Results == nil {
		return 0, nil
	}

	code, err := strconv.Atoi(body.Results.MuniCd)
	if err != nil {
		return 0, fmt.Errorf("client: invalid muniCd %q: %w", body.Results.MuniCd, err)
	}
	return code, nil
}

// GSI API response types.

type reverseGeocodeResponse struct {
	Results *reverseGeocodeResult `json:"results"`
}

type reverseGeocodeResult struct {
	MuniCd string `json:"muniCd"`
	Lv01Nm string `json:"lv01Nm"`
}
