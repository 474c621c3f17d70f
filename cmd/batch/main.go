// Command batch runs bending experiments listed in a spreadsheet and
// writes the same plain-text reports the interactive calculator saves.
// Rows are processed in order, one at a time.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"Flexion/internal/calc/bending"
	"Flexion/internal/config"
	"Flexion/internal/importer"
	"Flexion/internal/materials"
	"Flexion/internal/report"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: batch <workbook.xlsx>")
	}
	cfg := config.Load()

	experiments, err := importer.Load(os.Args[1])
	if err != nil {
		log.Fatalf("load workbook: %v", err)
	}

	for i, exp := range experiments {
		entry, ok := materials.ByID(exp.MaterialID)
		if !ok {
			log.Printf("row %d: unknown material %q, skipped", i+1, exp.MaterialID)
			continue
		}
		res, err := bending.Calculate(exp.Input)
		if err != nil {
			log.Printf("row %d: %v, skipped", i+1, err)
			continue
		}

		rep := report.Report{
			Material: entry,
			Geometry: exp.Input.Geometry,
			Mode:     exp.Input.Mode,
			Readings: exp.Input.Readings,
			Result:   res,
		}
		// Row ordinal in the name keeps repeated material/mode pairs
		// from overwriting each other within one run.
		name := fmt.Sprintf("youngs_modulus_%s_%d_row%d.txt", entry.ID, int(exp.Input.Mode), i+1)
		path := filepath.Join(cfg.ReportDir, name)
		if err := writeReport(path, rep); err != nil {
			log.Fatalf("row %d: save report: %v", i+1, err)
		}
		log.Printf("row %d: %s — calculated %.2f GPa (expected %g GPa), saved %s",
			i+1, entry.Name, res.AverageGPa, entry.ModulusGPa, path)
	}
}

func writeReport(path string, rep report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteFile(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
