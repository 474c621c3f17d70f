// Package report renders computed results as text: a full console report
// with the readings table and verdict, and an abbreviated file report
// that can be parsed back for the raw weight/deflection pairs.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"Flexion/internal/calc/bending"
	"Flexion/internal/materials"
)

// ConsistencyThreshold is the relative deviation below which a measured
// modulus counts as consistent with the reference value. Exactly at the
// threshold counts as differing.
const ConsistencyThreshold = 0.20

type Report struct {
	Material materials.Entry
	Geometry bending.Geometry
	Mode     bending.Mode
	Readings []bending.Reading
	Result   bending.Result
}

// PercentDiff returns |calc−ref|/ref×100. ok is false when the reference
// is zero and no percentage can be formed.
func PercentDiff(calcGPa, refGPa float64) (float64, bool) {
	if refGPa == 0 {
		return 0, false
	}
	return math.Abs(calcGPa-refGPa) / refGPa * 100, true
}

// Consistent reports whether the measured modulus deviates from the
// reference by strictly less than ConsistencyThreshold.
func Consistent(calcGPa, refGPa float64) bool {
	if refGPa == 0 {
		return false
	}
	return math.Abs(calcGPa-refGPa)/refGPa < ConsistencyThreshold
}

// Filename derives the deterministic report filename from the material id
// and the bending-mode numeral.
func Filename(materialID string, mode bending.Mode) string {
	return fmt.Sprintf("youngs_modulus_%s_%d.txt", materialID, int(mode))
}

// Render writes the full interactive report.
func Render(w io.Writer, r Report) {
	rule(w, "=", 80)
	fmt.Fprintln(w, "YOUNG'S MODULUS CALCULATION RESULTS")
	rule(w, "=", 80)

	fmt.Fprintln(w, "\nMATERIAL INFORMATION:")
	fmt.Fprintf(w, "  Material: %s\n", r.Material.Name)
	fmt.Fprintf(w, "  Expected Young's Modulus: %g GPa\n", r.Material.ModulusGPa)
	fmt.Fprintf(w, "  Density: %g g/cm³\n", r.Material.DensityGPerCM3)

	fmt.Fprintln(w, "\nROD DIMENSIONS:")
	fmt.Fprintf(w, "  Length: %g cm\n", r.Geometry.LengthCM)
	fmt.Fprintf(w, "  Breadth: %g cm\n", r.Geometry.BreadthCM)
	fmt.Fprintf(w, "  Width/Thickness: %g cm\n", r.Geometry.ThicknessCM)

	fmt.Fprintln(w, "\nBENDING TYPE:")
	fmt.Fprintf(w, "  %s\n", r.Mode)

	fmt.Fprintf(w, "\nMOMENT OF INERTIA: %.6f cm⁴\n", r.Result.InertiaCM4)

	fmt.Fprintln(w)
	rule(w, "-", 80)
	fmt.Fprintln(w, "MEASUREMENT READINGS")
	rule(w, "-", 80)
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Reading\tWeight (g)\tDepression (cm)\tIndividual Y (GPa)")
	for i, rd := range r.Readings {
		individual := 0.0
		if i < len(r.Result.PerReadingGPa) {
			individual = r.Result.PerReadingGPa[i]
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%.4f\t%.2f\n", rd.Num, rd.WeightG, rd.DepressionCM, individual)
	}
	tw.Flush()
	rule(w, "-", 80)

	fmt.Fprintln(w)
	rule(w, "=", 80)
	fmt.Fprintln(w, "FINAL YOUNG'S MODULUS (Calculated Average)")
	rule(w, "=", 80)
	fmt.Fprintf(w, "\n  Calculated Young's Modulus: %.2f GPa\n", r.Result.AverageGPa)
	fmt.Fprintf(w, "  Expected Young's Modulus:   %g GPa\n", r.Material.ModulusGPa)
	if diff, ok := PercentDiff(r.Result.AverageGPa, r.Material.ModulusGPa); ok {
		fmt.Fprintf(w, "  Percentage Difference:      %.2f%%\n", diff)
	}

	fmt.Fprintln(w)
	rule(w, "=", 80)
	fmt.Fprintln(w, "\nANALYSIS:")
	if Consistent(r.Result.AverageGPa, r.Material.ModulusGPa) {
		fmt.Fprintln(w, "  ✓ Results are consistent with expected values for this material.")
	} else {
		fmt.Fprintln(w, "  ⚠ Results differ significantly from expected values.")
		fmt.Fprintln(w, "    Possible reasons: measurement errors, material impurities,")
		fmt.Fprintln(w, "    temperature effects, or non-ideal experimental conditions.")
	}
	fmt.Fprintln(w)
	rule(w, "=", 80)
}

// WriteFile writes the abbreviated plain-text report. It omits the
// per-reading modulus and the verdict: only the inputs and the expected
// vs. calculated comparison are persisted.
func WriteFile(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	rule(bw, "=", 80)
	fmt.Fprintln(bw, "YOUNG'S MODULUS CALCULATION RESULTS")
	rule(bw, "=", 80)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Material: %s\n", r.Material.Name)
	fmt.Fprintf(bw, "Expected Young's Modulus: %g GPa\n", r.Material.ModulusGPa)
	fmt.Fprintf(bw, "Calculated Young's Modulus: %.2f GPa\n", r.Result.AverageGPa)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Rod Dimensions: L=%gcm, B=%gcm, W=%gcm\n",
		r.Geometry.LengthCM, r.Geometry.BreadthCM, r.Geometry.ThicknessCM)
	fmt.Fprintf(bw, "Bending Type: %s\n", bendingTypeLabel(r.Mode))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Readings:")
	for _, rd := range r.Readings {
		fmt.Fprintf(bw, "  %d: Weight=%gg, Depression=%gcm\n", rd.Num, rd.WeightG, rd.DepressionCM)
	}

	return bw.Flush()
}

func bendingTypeLabel(m bending.Mode) string {
	if m == bending.ModeUniform {
		return "Uniform"
	}
	return "Non-Uniform"
}

// ParseReadings recovers the weight/deflection pairs from a file report
// produced by WriteFile. The file format is lossy only with respect to
// the per-reading modulus, so the returned readings match the originals
// exactly.
func ParseReadings(r io.Reader) ([]bending.Reading, error) {
	sc := bufio.NewScanner(r)
	inReadings := false
	var out []bending.Reading
	for sc.Scan() {
		line := sc.Text()
		if !inReadings {
			if strings.TrimSpace(line) == "Readings:" {
				inReadings = true
			}
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		rd, err := parseReadingLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !inReadings {
		return nil, fmt.Errorf("no readings section found")
	}
	return out, nil
}

func parseReadingLine(line string) (bending.Reading, error) {
	numPart, rest, ok := strings.Cut(line, ": Weight=")
	if !ok {
		return bending.Reading{}, fmt.Errorf("malformed reading line %q", line)
	}
	weightPart, depPart, ok := strings.Cut(rest, "g, Depression=")
	if !ok || !strings.HasSuffix(depPart, "cm") {
		return bending.Reading{}, fmt.Errorf("malformed reading line %q", line)
	}
	num, err := strconv.Atoi(numPart)
	if err != nil {
		return bending.Reading{}, fmt.Errorf("malformed reading number in %q", line)
	}
	weight, err := strconv.ParseFloat(weightPart, 64)
	if err != nil {
		return bending.Reading{}, fmt.Errorf("malformed weight in %q", line)
	}
	dep, err := strconv.ParseFloat(strings.TrimSuffix(depPart, "cm"), 64)
	if err != nil {
		return bending.Reading{}, fmt.Errorf("malformed depression in %q", line)
	}
	return bending.Reading{Num: num, WeightG: weight, DepressionCM: dep}, nil
}

func rule(w io.Writer, ch string, n int) {
	fmt.Fprintln(w, strings.Repeat(ch, n))
}
