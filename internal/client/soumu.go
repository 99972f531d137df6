package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// MuniCodeClient downloads the MIC municipality code workbook.
type MuniCodeClient struct {
	httpClient   *http.Client
	url          string
	sheetMarker  string
	defaultSheet string
}

// NewMuniCodeClient creates a client for the workbook at url. The first sheet whose
// name contains sheetMarker is read, or defaultSheet when none matches.
func NewMuniCodeClient(url, sheetMarker, defaultSheet string, timeout time.Duration) *MuniCodeClient {
	return &MuniCodeClient{
		httpClient:   &http.Client{Timeout: timeout},
		url:          url,
		sheetMarker:  sheetMarker,
		defaultSheet: defaultSheet,
	}
}

// FetchRows downloads the workbook and returns every row of the selected sheet, header included.
func (c *MuniCodeClient) FetchRows(ctx context.Context) ([][]string, error) {
	body, err := fetch(ctx, c.httpClient, c.url)
	if err != nil {
		return nil, fmt.Errorf("client: failed to download municipality codes: %w", err)
	}
	return ReadRows(bytes.NewReader(body), c.sheetMarker, c.defaultSheet)
}

// ReadRows parses a workbook and returns the rows of the sheet picked by sheetMarker.
func ReadRows(r io.Reader, sheetMarker, defaultSheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("client: failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := SelectSheet(f.GetSheetList(), sheetMarker, defaultSheet)
	log.Debug().Str("sheet", sheet).Msg("reading municipality code sheet")

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("client: failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// SelectSheet returns the first name containing marker, or fallback.
func SelectSheet(names []string, marker, fallback string) string {
	return lo.FindOrElse(names, fallback, func(name string) bool {
		return strings.Contains(name, marker)
	})
}
