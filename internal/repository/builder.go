package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"jma-area-api/internal/models"

	"github.com/rs/zerolog/log"
)

// BuildStats counts what happened to each spreadsheet row while building a table.
type BuildStats struct {
	Rows      int // data rows read, header excluded
	Kept      int
	Aggregate int // prefecture-level codes ending in 000
	Unmapped  int // missing from the JMA hierarchy
	Malformed int
}

// RowSource provides the raw municipality spreadsheet rows, header first.
type RowSource interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// AreaSource provides the JMA area hierarchy.
type AreaSource interface {
	FetchAreas(ctx context.Context) (*models.AreaHierarchy, error)
}

// Load fetches both sources and builds the code table.
func Load(ctx context.Context, rows RowSource, areas AreaSource) (*CodeTable, BuildStats, error) {
	sheet, err := rows.FetchRows(ctx)
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("repository: failed to load municipality codes: %w", err)
	}

	hierarchy, err := areas.FetchAreas(ctx)
	if err != nil {
		return nil, BuildStats{}, fmt.Errorf("repository: failed to load area hierarchy: %w", err)
	}

	table, stats := BuildCodeTable(sheet, hierarchy)
	return table, stats, nil
}

// BuildCodeTable cross-references the spreadsheet rows with the area hierarchy.
// Row order is preserved. Rows whose municipality cannot be placed in the
// hierarchy are left out of the table.
func BuildCodeTable(rows [][]string, areas *models.AreaHierarchy) (*CodeTable, BuildStats) {
	table := &CodeTable{}
	var stats BuildStats

	for i, row := range rows {
		if i == 0 {
			continue
		}
		stats.Rows++

		if len(row) < 3 || len(row[0]) < 2 {
			stats.Malformed++
			log.Debug().Int("row", i).Strs("cells", row).Msg("skipping short row")
			continue
		}

		// The source code carries a trailing check digit.
		codeStr := row[0][:len(row[0])-1]
		if strings.HasSuffix(codeStr, "000") {
			stats.Aggregate++
			continue
		}

		code, err := strconv.Atoi(codeStr)
		if err != nil {
			stats.Malformed++
			log.Debug().Int("row", i).Str("code", row[0]).Msg("skipping row with non numeric code")
			continue
		}

		class10s, office, ok := resolveAreas(areas, codeStr)
		if !ok {
			stats.Unmapped++
			log.Debug().Int("code", code).Str("city", row[2]).Msg("municipality not in area hierarchy")
			continue
		}

		table.codeInfo = append(table.codeInfo, models.CodeInfo{
			Code:         code,
			Pref:         row[1],
			City:         row[2],
			OfficeCode:   office,
			Class10sCode: class10s,
		})
		table.muniCodes = append(table.muniCodes, code)
		stats.Kept++
	}

	if i := firstUnsorted(table.muniCodes); i >= 0 {
		log.Warn().
			Int("index", i).
			Int("code", table.muniCodes[i]).
			Int("previous", table.muniCodes[i-1]).
			Msg("municipality codes are not ascending, lookups may return wrong entries")
	}

	return table, stats
}

// resolveAreas walks class20s -> class15s -> class10s -> office starting from code+"00".
func resolveAreas(areas *models.AreaHierarchy, code string) (class10s, office int, ok bool) {
	c20, ok := areas.Class20s[code+"00"]
	if !ok {
		return 0, 0, false
	}
	c15, ok := areas.Class15s[c20.Parent]
	if !ok {
		return 0, 0, false
	}
	c10, ok := areas.Class10s[c15.Parent]
	if !ok {
		return 0, 0, false
	}

	class10s, err := strconv.Atoi(c15.Parent)
	if err != nil {
		return 0, 0, false
	}
	office, err = strconv.Atoi(c10.Parent)
	if err != nil {
		return 0, 0, false
	}
	return class10s, office, true
}
