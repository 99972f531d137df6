package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jma-area-api/internal/models"
)

// AreaClient downloads the JMA area hierarchy.
type AreaClient struct {
	httpClient *http.Client
	url        string
}

// NewAreaClient creates a client for the area.json document at url.
func NewAreaClient(url string, timeout time.Duration) *AreaClient {
	return &AreaClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// FetchAreas downloads and decodes the area hierarchy.
func (c *AreaClient) FetchAreas(ctx context.Context) (*models.AreaHierarchy, error) {
	body, err := fetch(ctx, c.httpClient, c.url)
	if err != nil {
		return nil, fmt.Errorf("client: failed to download area hierarchy: %w", err)
	}
	return DecodeAreas(bytes.NewReader(body))
}

// DecodeAreas reads an area.json document.
func DecodeAreas(r io.Reader) (*models.AreaHierarchy, error) {
	var areas models.AreaHierarchy
	if err := json.NewDecoder(r).Decode(&areas); err != nil {
		return nil, fmt.Errorf("client: failed to decode area hierarchy: %w", err)
	}
	if len(areas.Class20s) == 0 {
		return nil, fmt.Errorf("client: area hierarchy has no class20s entries")
	}
	return &areas, nil
}
