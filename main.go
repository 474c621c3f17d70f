package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"Flexion/internal/calc/bending"
	"Flexion/internal/config"
	"Flexion/internal/prompt"
	"Flexion/internal/report"
)

func main() {
	cfg := config.Load()
	p := prompt.New(os.Stdin, os.Stdout)

	rule("=", 80)
	fmt.Println("YOUNG'S MODULUS MEASUREMENT SYSTEM")
	fmt.Println("For Thin Sheet-Like Rod Materials")
	rule("=", 80)

	entry, err := p.SelectMaterial()
	if err != nil {
		log.Fatalf("input closed: %v", err)
	}
	geom, err := p.Geometry()
	if err != nil {
		log.Fatalf("input closed: %v", err)
	}
	mode, err := p.BendingMode()
	if err != nil {
		log.Fatalf("input closed: %v", err)
	}
	readings, _, err := p.Readings()
	if err != nil {
		log.Fatalf("input closed: %v", err)
	}

	res, err := bending.Calculate(bending.Input{
		Geometry: geom,
		Mode:     mode,
		Readings: readings,
	})
	if err != nil {
		log.Fatalf("calculation failed: %v", err)
	}

	rep := report.Report{
		Material: entry,
		Geometry: geom,
		Mode:     mode,
		Readings: readings,
		Result:   res,
	}
	report.Render(os.Stdout, rep)

	save, err := p.Confirm("\nWould you like to save these results to a file? (yes/no): ")
	if err != nil {
		log.Fatalf("input closed: %v", err)
	}
	if save {
		path := filepath.Join(cfg.ReportDir, report.Filename(entry.ID, mode))
		if err := writeReport(path, rep); err != nil {
			log.Fatalf("save report: %v", err)
		}
		fmt.Printf("\n✓ Results saved to %s\n", path)
	}

	fmt.Println("\nThank you for using the Young's Modulus Measurement System!")
	rule("=", 80)
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

func rule(ch string, n int) {
	fmt.Println(strings.Repeat(ch, n))
}
