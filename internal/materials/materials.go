package materials

import (
	"errors"
	"fmt"
)

// Entry describes one rod material and its reference properties.
type Entry struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ModulusGPa     float64 `json:"youngs_modulus_gpa"`
	DensityGPerCM3 float64 `json:"density_g_cm3"`
}

var ErrOutOfRange = errors.New("material choice out of range")

// catalog is ordered; the menu numbering in the prompt layer is this order.
var catalog = []Entry{
	{ID: "iron", Name: "Iron", ModulusGPa: 210, DensityGPerCM3: 7.87},
	{ID: "steel", Name: "Steel (Mild)", ModulusGPa: 200, DensityGPerCM3: 7.85},
	{ID: "stainless_steel", Name: "Stainless Steel", ModulusGPa: 190, DensityGPerCM3: 8.00},
	{ID: "aluminum", Name: "Aluminum", ModulusGPa: 69, DensityGPerCM3: 2.70},
	{ID: "copper", Name: "Copper", ModulusGPa: 130, DensityGPerCM3: 8.96},
	{ID: "brass", Name: "Brass", ModulusGPa: 100, DensityGPerCM3: 8.50},
	{ID: "oak_wood", Name: "Oak Wood", ModulusGPa: 11, DensityGPerCM3: 0.75},
	{ID: "pine_wood", Name: "Pine Wood", ModulusGPa: 9, DensityGPerCM3: 0.55},
	{ID: "teak_wood", Name: "Teak Wood", ModulusGPa: 12, DensityGPerCM3: 0.65},
	{ID: "bamboo", Name: "Bamboo", ModulusGPa: 20, DensityGPerCM3: 0.60},
	{ID: "plywood", Name: "Plywood", ModulusGPa: 6, DensityGPerCM3: 0.55},
	{ID: "pvc", Name: "PVC", ModulusGPa: 3, DensityGPerCM3: 1.40},
	{ID: "acrylic", Name: "Acrylic", ModulusGPa: 3.2, DensityGPerCM3: 1.18},
}

// List returns the catalog in display order. Callers get a copy so the
// catalog stays immutable for the life of the process.
func List() []Entry {
	return append([]Entry(nil), catalog...)
}

// Count reports the number of catalog entries.
func Count() int {
	return len(catalog)
}

// Get returns the n-th entry using 1-based menu numbering.
func Get(n int) (Entry, error) {
	if n < 1 || n > len(catalog) {
		return Entry{}, fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, n, len(catalog))
	}
	return catalog[n-1], nil
}

// ByID looks an entry up by its stable identifier.
func ByID(id string) (Entry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
