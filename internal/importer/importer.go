// Package importer loads bending experiments from a spreadsheet for the
// batch binary. Expected layout on the first sheet, one experiment per
// row after a header:
//
//	material_id | length_cm | breadth_cm | thickness_cm | mode | increment_g | deflection_1 [| deflection_2 ...]
//
// Weights are derived from the increment, never listed in the sheet.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"Flexion/internal/calc/bending"

	"github.com/xuri/excelize/v2"
)

type Experiment struct {
	MaterialID string
	Input      bending.Input
}

// Load opens the workbook and parses every data row. Rows that fail to
// parse are skipped; only an unreadable file or an empty sheet is an
// error.
func Load(path string) ([]Experiment, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var out []Experiment
	for i := 1; i < len(rows); i++ {
		exp, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		out = append(out, exp)
	}
	return out, nil
}

func parseRow(row []string) (Experiment, error) {
	if len(row) < 7 {
		return Experiment{}, fmt.Errorf("row too short")
	}
	id := strings.TrimSpace(row[0])
	if id == "" {
		return Experiment{}, fmt.Errorf("missing material id")
	}
	length, err := toFloat(row[1])
	if err != nil {
		return Experiment{}, err
	}
	breadth, err := toFloat(row[2])
	if err != nil {
		return Experiment{}, err
	}
	thickness, err := toFloat(row[3])
	if err != nil {
		return Experiment{}, err
	}
	mode, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return Experiment{}, err
	}
	increment, err := toFloat(row[5])
	if err != nil {
		return Experiment{}, err
	}
	if increment <= 0 {
		return Experiment{}, fmt.Errorf("non-positive weight increment")
	}

	var depressions []float64
	for _, cell := range row[6:] {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		d, err := toFloat(cell)
		if err != nil {
			return Experiment{}, err
		}
		depressions = append(depressions, d)
	}
	if len(depressions) == 0 {
		return Experiment{}, fmt.Errorf("no deflection cells")
	}

	return Experiment{
		MaterialID: id,
		Input: bending.Input{
			Geometry: bending.Geometry{
				LengthCM:    length,
				BreadthCM:   breadth,
				ThicknessCM: thickness,
			},
			Mode:     bending.Mode(mode),
			Readings: bending.BuildReadings(increment, depressions),
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
