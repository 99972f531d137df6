package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"jma-area-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const areaJSON = `{
	"offices": {"130000": {"name": "東京都", "parent": "010300"}},
	"class10s": {"131011": {"name": "東京地方", "parent": "130000"}},
	"class15s": {"1310115": {"name": "23区西部", "parent": "131011"}},
	"class20s": {"1310200": {"name": "中央区", "parent": "1310115"}}
}`

func TestLocalSourcesToCSV(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	sheet := "R6.1.1現在の団体"
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	rows := [][]any{
		{"団体コード", "都道府県名（漢字）", "市区町村名（漢字）"},
		{"130001", "東京都", ""},
		{"131024", "東京都", "中央区"},
		{"131032", "東京都", "港区"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	xlsxPath := filepath.Join(dir, "codes.xlsx")
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	areasPath := filepath.Join(dir, "area.json")
	require.NoError(t, os.WriteFile(areasPath, []byte(areaJSON), 0o600))

	table, stats, err := repository.Load(context.Background(),
		fileRows{path: xlsxPath, marker: "現在", defaultSheet: sheet},
		fileAreas{path: areasPath},
	)
	require.NoError(t, err)
	assert.Equal(t, repository.BuildStats{Rows: 3, Kept: 1, Aggregate: 1, Unmapped: 1}, stats)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, table))
	assert.Equal(t, "code,pref,city,office_code,class10s_code\n13102,東京都,中央区,130000,131011\n", buf.String())
}

func TestFileSources_Missing(t *testing.T) {
	_, err := fileRows{path: filepath.Join(t.TempDir(), "missing.xlsx")}.FetchRows(context.Background())
	assert.Error(t, err)

	_, err = fileAreas{path: filepath.Join(t.TempDir(), "missing.json")}.FetchAreas(context.Background())
	assert.Error(t, err)
}
