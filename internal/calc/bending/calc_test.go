package bending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentOfInertia(t *testing.T) {
	// I = b·t³/12; b=2cm, t=0.5cm → 2×0.125/12 cm⁴.
	assert.InDelta(t, 0.0208333333, MomentOfInertia(2, 0.5), 1e-9)
	assert.InDelta(t, 1.0/12.0, MomentOfInertia(1, 1), 1e-12)
}

func TestCalculateUniformSingleReading(t *testing.T) {
	// Worked example: L=100cm, b=2cm, t=0.5cm, one 50g reading with
	// 0.1cm depression. F = 0.05×9.81 = 0.4905N, w = F/L = 0.4905N/m,
	// I = 2.0833e-10 m⁴, Y = 5wL⁴/(384·I·δ) = 30.65625 GPa.
	res, err := Calculate(Input{
		Geometry: Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0.5},
		Mode:     ModeUniform,
		Readings: []Reading{{Num: 1, WeightG: 50, DepressionCM: 0.1}},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.0208333333, res.InertiaCM4, 1e-9)
	require.Len(t, res.PerReadingGPa, 1)
	assert.InDelta(t, 30.65625, res.PerReadingGPa[0], 1e-4)
	assert.InDelta(t, 30.65625, res.AverageGPa, 1e-4)
}

func TestCalculatePointLoadSingleReading(t *testing.T) {
	// Y = FL³/(48·I·δ) with the same rod and reading as above:
	// 0.4905×1/(48×2.0833e-10×0.001) Pa = 49.05 GPa.
	res, err := Calculate(Input{
		Geometry: Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0.5},
		Mode:     ModePointLoad,
		Readings: []Reading{{Num: 1, WeightG: 50, DepressionCM: 0.1}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 49.05, res.AverageGPa, 1e-4)
}

func TestDeflectionSignIsIgnored(t *testing.T) {
	geom := Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0.5}
	down, err := Calculate(Input{Geometry: geom, Mode: ModePointLoad,
		Readings: []Reading{{Num: 1, WeightG: 50, DepressionCM: 0.1}}})
	require.NoError(t, err)
	up, err := Calculate(Input{Geometry: geom, Mode: ModePointLoad,
		Readings: []Reading{{Num: 1, WeightG: 50, DepressionCM: -0.1}}})
	require.NoError(t, err)
	assert.Equal(t, down.AverageGPa, up.AverageGPa)
}

func TestZeroDeflectionExcludedFromAverage(t *testing.T) {
	geom := Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0.5}

	single, err := Calculate(Input{Geometry: geom, Mode: ModePointLoad,
		Readings: []Reading{{Num: 1, WeightG: 10, DepressionCM: 0.1}}})
	require.NoError(t, err)

	mixed, err := Calculate(Input{Geometry: geom, Mode: ModePointLoad,
		Readings: []Reading{
			{Num: 1, WeightG: 10, DepressionCM: 0.1},
			{Num: 2, WeightG: 20, DepressionCM: 0},
		}})
	require.NoError(t, err)

	// The zero reading stays in the per-reading sequence as 0 but the
	// average equals the single valid reading's modulus.
	require.Len(t, mixed.PerReadingGPa, 2)
	assert.Equal(t, 0.0, mixed.PerReadingGPa[1])
	assert.Equal(t, single.AverageGPa, mixed.AverageGPa)
}

func TestAllZeroDeflectionsAverageToZero(t *testing.T) {
	res, err := Calculate(Input{
		Geometry: Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0.5},
		Mode:     ModeUniform,
		Readings: []Reading{
			{Num: 1, WeightG: 50, DepressionCM: 0},
			{Num: 2, WeightG: 100, DepressionCM: 0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.AverageGPa)
	assert.Equal(t, []float64{0, 0}, res.PerReadingGPa)
}

func TestAverageOfMultipleReadings(t *testing.T) {
	geom := Geometry{LengthCM: 80, BreadthCM: 2.5, ThicknessCM: 0.4}
	in := Input{
		Geometry: geom,
		Mode:     ModeUniform,
		Readings: BuildReadings(50, []float64{0.12, 0.23, 0.37}),
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, res.PerReadingGPa, 3)
	want := (res.PerReadingGPa[0] + res.PerReadingGPa[1] + res.PerReadingGPa[2]) / 3
	assert.InDelta(t, want, res.AverageGPa, 1e-12)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	good := Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0.5}

	cases := []struct {
		name string
		in   Input
	}{
		{"zero length", Input{Geometry: Geometry{LengthCM: 0, BreadthCM: 2, ThicknessCM: 0.5}, Mode: ModeUniform}},
		{"negative breadth", Input{Geometry: Geometry{LengthCM: 100, BreadthCM: -2, ThicknessCM: 0.5}, Mode: ModeUniform}},
		{"zero thickness", Input{Geometry: Geometry{LengthCM: 100, BreadthCM: 2, ThicknessCM: 0}, Mode: ModeUniform}},
		{"unknown mode", Input{Geometry: good, Mode: Mode(3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.in)
			require.Error(t, err)
		})
	}
}

func TestBuildReadings(t *testing.T) {
	readings := BuildReadings(25, []float64{0.1, 0.2})
	require.Len(t, readings, 2)
	assert.Equal(t, Reading{Num: 1, WeightG: 25, DepressionCM: 0.1}, readings[0])
	assert.Equal(t, Reading{Num: 2, WeightG: 50, DepressionCM: 0.2}, readings[1])
}
