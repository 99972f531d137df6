package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"jma-area-api/internal/client"
	"jma-area-api/internal/config"
	"jma-area-api/internal/logger"
	"jma-area-api/internal/models"
	"jma-area-api/internal/repository"

	"github.com/rs/zerolog/log"
)

// fileRows reads the municipality workbook from disk instead of downloading it.
type fileRows struct {
	path, marker, defaultSheet string
}

func (f fileRows) FetchRows(context.Context) ([][]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()
	return client.ReadRows(file, f.marker, f.defaultSheet)
}

// fileAreas reads area.json from disk.
type fileAreas struct {
	path string
}

func (f fileAreas) FetchAreas(context.Context) (*models.AreaHierarchy, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open area hierarchy: %w", err)
	}
	defer file.Close()
	return client.DecodeAreas(file)
}

func main() {
	configDir := flag.String("config", "configs", "Directory containing app.env")
	xlsxPath := flag.String("xlsx", "", "Local municipality code workbook (downloads when empty)")
	areasPath := flag.String("areas", "", "Local JMA area.json (downloads when empty)")
	out := flag.String("out", "", "Output CSV file (stdout when empty)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, "console")

	var rows repository.RowSource = client.NewMuniCodeClient(cfg.MuniCodesURL, cfg.MuniSheetMarker, cfg.MuniDefaultSheet, cfg.FetchTimeout)
	if *xlsxPath != "" {
		rows = fileRows{path: *xlsxPath, marker: cfg.MuniSheetMarker, defaultSheet: cfg.MuniDefaultSheet}
	}
	var areas repository.AreaSource = client.NewAreaClient(cfg.JMAAreaURL, cfg.FetchTimeout)
	if *areasPath != "" {
		areas = fileAreas{path: *areasPath}
	}

	table, stats, err := repository.Load(context.Background(), rows, areas)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build code table")
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Str("file", *out).Msg("cannot create output file")
		}
		defer file.Close()
		w = file
	}

	if err := writeCSV(w, table); err != nil {
		log.Fatal().Err(err).Msg("cannot write code table")
	}

	fmt.Fprintf(os.Stderr, "Wrote %d entries (%d rows read, %d prefecture aggregates, %d not in area hierarchy, %d malformed)\n",
		table.Len(), stats.Rows, stats.Aggregate, stats.Unmapped, stats.Malformed)
}

func writeCSV(w io.Writer, table *repository.CodeTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "pref", "city", "office_code", "class10s_code"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := 0; i < table.Len(); i++ {
		info := table.At(i)
		record := []string{
			strconv.Itoa(info.Code),
			info.Pref,
			info.City,
			strconv.Itoa(info.OfficeCode),
			strconv.Itoa(info.Class10sCode),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write code %d: %w", info.Code, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
