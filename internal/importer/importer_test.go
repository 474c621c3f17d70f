package importer

import (
	"path/filepath"
	"testing"

	"Flexion/internal/calc/bending"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "experiments.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var header = []any{
	"material_id", "length_cm", "breadth_cm", "thickness_cm",
	"mode", "increment_g", "deflection_1", "deflection_2", "deflection_3",
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		header,
		{"iron", 100, 2, 0.5, 1, 50, 0.1, 0.21, 0.33},
		{"copper", 80, 2.5, 0.4, 2, 25, 0.15},
	})

	experiments, err := Load(path)
	require.NoError(t, err)
	require.Len(t, experiments, 2)

	first := experiments[0]
	assert.Equal(t, "iron", first.MaterialID)
	assert.Equal(t, bending.Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0.5}, first.Input.Geometry)
	assert.Equal(t, bending.ModeUniform, first.Input.Mode)
	require.Len(t, first.Input.Readings, 3)
	// Weights are derived from the increment ladder, never read.
	assert.Equal(t, bending.Reading{Num: 2, WeightG: 100, DepressionCM: 0.21}, first.Input.Readings[1])

	second := experiments[1]
	assert.Equal(t, bending.ModePointLoad, second.Input.Mode)
	require.Len(t, second.Input.Readings, 1)
	assert.Equal(t, 25.0, second.Input.Readings[0].WeightG)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		header,
		{"iron", "not-a-number", 2, 0.5, 1, 50, 0.1},
		{"", 100, 2, 0.5, 1, 50, 0.1},
		{"iron", 100, 2, 0.5, 1, -50, 0.1},
		{"brass", 100, 2, 0.5, 1, 50, 0.1},
	})

	experiments, err := Load(path)
	require.NoError(t, err)
	require.Len(t, experiments, 1)
	assert.Equal(t, "brass", experiments[0].MaterialID)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)

	empty := writeWorkbook(t, [][]any{header})
	_, err = Load(empty)
	require.Error(t, err)
}

func TestLoadCalculatesEndToEnd(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		header,
		{"iron", 100, 2, 0.5, 1, 50, 0.1},
	})

	experiments, err := Load(path)
	require.NoError(t, err)
	require.Len(t, experiments, 1)

	res, err := bending.Calculate(experiments[0].Input)
	require.NoError(t, err)
	assert.InDelta(t, 30.65625, res.AverageGPa, 1e-4)
}
