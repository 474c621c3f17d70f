package bending

import (
	"fmt"
	"math"
)

// gravity is the fixed gravitational constant in m/s².
const gravity = 9.81

// Mode selects the bending configuration. The numeric values match the
// menu choices and the report filename suffix.
type Mode int

const (
	ModeUniform   Mode = 1 // load distributed evenly along the rod
	ModePointLoad Mode = 2 // concentrated load at the rod's midpoint
)

func (m Mode) Valid() bool {
	return m == ModeUniform || m == ModePointLoad
}

func (m Mode) String() string {
	switch m {
	case ModeUniform:
		return "Uniform Bending"
	case ModePointLoad:
		return "Non-Uniform Bending (Point Load)"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type Geometry struct {
	LengthCM    float64 `json:"length_cm"`
	BreadthCM   float64 `json:"breadth_cm"`
	ThicknessCM float64 `json:"thickness_cm"`
}

// Reading is one load/deflection measurement. WeightG is always derived
// from the weight increment, never entered directly. DepressionCM keeps
// its sign (positive = depression, negative = elevation).
type Reading struct {
	Num          int     `json:"reading_num"`
	WeightG      float64 `json:"weight_g"`
	DepressionCM float64 `json:"depression_cm"`
}

type Input struct {
	Geometry Geometry  `json:"geometry"`
	Mode     Mode      `json:"mode"`
	Readings []Reading `json:"readings"`
}

type Result struct {
	InertiaCM4    float64   `json:"inertia_cm4"`
	PerReadingGPa []float64 `json:"per_reading_gpa"`
	AverageGPa    float64   `json:"average_gpa"`
}

// MomentOfInertia computes the second moment of area of the rectangular
// cross-section, I = b·t³/12, in cm⁴.
func MomentOfInertia(breadthCM, thicknessCM float64) float64 {
	return breadthCM * math.Pow(thicknessCM, 3) / 12.0
}

// BuildReadings derives the weight ladder from the increment and pairs it
// with the measured deflections.
func BuildReadings(incrementG float64, depressionsCM []float64) []Reading {
	readings := make([]Reading, 0, len(depressionsCM))
	for i, d := range depressionsCM {
		readings = append(readings, Reading{
			Num:          i + 1,
			WeightG:      incrementG * float64(i+1),
			DepressionCM: d,
		})
	}
	return readings
}

// Calculate computes the per-reading Young's modulus and its average for
// the given bending mode. Readings with zero deflection contribute a zero
// entry to PerReadingGPa and are excluded from the average; if every
// reading has zero deflection the average is 0.
func Calculate(in Input) (Result, error) {
	g := in.Geometry
	if g.LengthCM <= 0 || g.BreadthCM <= 0 || g.ThicknessCM <= 0 {
		return Result{}, fmt.Errorf("invalid geometry")
	}
	if !in.Mode.Valid() {
		return Result{}, fmt.Errorf("invalid bending mode %d", int(in.Mode))
	}

	inertia := MomentOfInertia(g.BreadthCM, g.ThicknessCM)

	per := make([]float64, 0, len(in.Readings))
	var sum float64
	var included int
	for _, r := range in.Readings {
		y := modulusGPa(g, in.Mode, inertia, r)
		per = append(per, y)
		if r.DepressionCM != 0 {
			sum += y
			included++
		}
	}

	avg := 0.0
	if included > 0 {
		avg = sum / float64(included)
	}

	return Result{
		InertiaCM4:    inertia,
		PerReadingGPa: per,
		AverageGPa:    avg,
	}, nil
}

// modulusGPa solves the deflection formula for E, in GPa.
// Uniform: δ = 5wL⁴/(384EI) with w = F/L. Point load: δ = FL³/(48EI).
func modulusGPa(g Geometry, mode Mode, inertiaCM4 float64, r Reading) float64 {
	if r.DepressionCM == 0 {
		return 0
	}

	forceN := r.WeightG / 1000.0 * gravity
	lengthM := g.LengthCM / 100.0
	inertiaM4 := inertiaCM4 / 1e8
	depressionM := math.Abs(r.DepressionCM) / 100.0

	var pa float64
	switch mode {
	case ModeUniform:
		w := forceN / lengthM
		pa = 5.0 * w * math.Pow(lengthM, 4) / (384.0 * inertiaM4 * depressionM)
	default:
		pa = forceN * math.Pow(lengthM, 3) / (48.0 * inertiaM4 * depressionM)
	}
	return pa / 1e9
}
