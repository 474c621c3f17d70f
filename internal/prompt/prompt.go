// Package prompt collects validated experiment inputs from a line-based
// console session. Malformed or out-of-domain input is never an error:
// every question re-asks until the operator answers with something valid.
// The only errors returned are from the input stream itself (EOF or a
// read failure), which ends the session.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Flexion/internal/calc/bending"
	"Flexion/internal/materials"
)

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) line() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) rule(ch string, n int) {
	fmt.Fprintln(p.out, strings.Repeat(ch, n))
}

// SelectMaterial shows the catalog menu and loops until a valid 1-based
// choice is entered.
func (p *Prompter) SelectMaterial() (materials.Entry, error) {
	fmt.Fprintln(p.out)
	p.rule("=", 60)
	fmt.Fprintln(p.out, "AVAILABLE MATERIALS IN DATABASE")
	p.rule("=", 60)
	for i, e := range materials.List() {
		fmt.Fprintf(p.out, "%d. %-20s - Young's Modulus: %g GPa\n", i+1, e.Name, e.ModulusGPa)
	}
	p.rule("=", 60)
	fmt.Fprintln(p.out, "\nEnter the number corresponding to your material:")

	for {
		fmt.Fprint(p.out, "Your choice: ")
		s, err := p.line()
		if err != nil {
			return materials.Entry{}, err
		}
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		entry, getErr := materials.Get(n)
		if getErr != nil {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d\n", materials.Count())
			continue
		}
		return entry, nil
	}
}

// Geometry reads length, breadth and width/thickness as a group. A parse
// failure or a non-positive value rejects the whole triplet and re-asks
// all three fields, not just the offending one.
func (p *Prompter) Geometry() (bending.Geometry, error) {
	fmt.Fprintln(p.out)
	p.rule("=", 60)
	fmt.Fprintln(p.out, "ENTER ROD DIMENSIONS")
	p.rule("=", 60)

	questions := [3]string{
		"Length of rod (in cm): ",
		"Breadth of rod (in cm): ",
		"Width/Thickness of rod (in cm): ",
	}

	for {
		var vals [3]float64
		bad := false
		for i, q := range questions {
			fmt.Fprint(p.out, q)
			s, err := p.line()
			if err != nil {
				return bending.Geometry{}, err
			}
			v, convErr := strconv.ParseFloat(s, 64)
			if convErr != nil {
				fmt.Fprintln(p.out, "Invalid input. Please enter numerical values.")
				bad = true
				break
			}
			vals[i] = v
		}
		if bad {
			continue
		}
		if vals[0] <= 0 || vals[1] <= 0 || vals[2] <= 0 {
			fmt.Fprintln(p.out, "All dimensions must be positive values. Please try again.")
			continue
		}
		return bending.Geometry{
			LengthCM:    vals[0],
			BreadthCM:   vals[1],
			ThicknessCM: vals[2],
		}, nil
	}
}

// BendingMode loops until the operator picks 1 or 2.
func (p *Prompter) BendingMode() (bending.Mode, error) {
	fmt.Fprintln(p.out)
	p.rule("=", 60)
	fmt.Fprintln(p.out, "SELECT BENDING TYPE")
	p.rule("=", 60)
	fmt.Fprintln(p.out, "1. Uniform Bending (Load distributed uniformly)")
	fmt.Fprintln(p.out, "2. Non-Uniform Bending (Point load at center)")

	for {
		fmt.Fprint(p.out, "\nYour choice (1 or 2): ")
		s, err := p.line()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter 1 or 2.")
			continue
		}
		mode := bending.Mode(n)
		if !mode.Valid() {
			fmt.Fprintln(p.out, "Please enter 1 or 2")
			continue
		}
		return mode, nil
	}
}

// Readings asks for the reading count and the per-step weight increment,
// then one deflection per reading. Weights are derived from the
// increment. Unlike Geometry, a bad deflection re-asks only that one
// reading.
func (p *Prompter) Readings() ([]bending.Reading, float64, error) {
	fmt.Fprintln(p.out)
	p.rule("=", 60)
	fmt.Fprintln(p.out, "MEASUREMENT READINGS")
	p.rule("=", 60)

	var count int
	for {
		fmt.Fprint(p.out, "How many readings do you want to take? ")
		s, err := p.line()
		if err != nil {
			return nil, 0, err
		}
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "Please enter a positive number of readings.")
			continue
		}
		count = n
		break
	}

	var increment float64
	for {
		fmt.Fprint(p.out, "Weight added at each reading (in grams): ")
		s, err := p.line()
		if err != nil {
			return nil, 0, err
		}
		v, convErr := strconv.ParseFloat(s, 64)
		if convErr != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a numerical value.")
			continue
		}
		if v <= 0 {
			fmt.Fprintln(p.out, "Weight must be positive.")
			continue
		}
		increment = v
		break
	}

	fmt.Fprintln(p.out, "\nEnter the depression/elevation at each reading (in cm):")
	fmt.Fprintln(p.out, "(Positive for depression/downward, Negative for elevation/upward)")

	readings := make([]bending.Reading, 0, count)
	for i := 1; i <= count; i++ {
		weight := increment * float64(i)
		for {
			fmt.Fprintf(p.out, "Reading %d (Weight: %g g): ", i, weight)
			s, err := p.line()
			if err != nil {
				return nil, 0, err
			}
			d, convErr := strconv.ParseFloat(s, 64)
			if convErr != nil {
				fmt.Fprintln(p.out, "Invalid input. Please enter a numerical value.")
				continue
			}
			readings = append(readings, bending.Reading{Num: i, WeightG: weight, DepressionCM: d})
			break
		}
	}

	return readings, increment, nil
}

// Confirm asks a yes/no question. "yes" and "y" (any case) are
// affirmative; everything else is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	s, err := p.line()
	if err != nil {
		return false, err
	}
	s = strings.ToLower(s)
	return s == "yes" || s == "y", nil
}
