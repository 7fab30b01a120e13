//Package solplot draws the behavior of buffer systems: the
//Henderson-Hasselbalch species distribution against pH, and the buffer
//capacity curve that tells how far from pKa a buffer is still worth using.
package solplot

import (
	"fmt"
	"math"

	"github.com/mferrada/solprep"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//SpeciesFractions evaluates the acid and base form fractions of a conjugate
//pair on an even grid of n pH values between min and max. The two fractions
//sum to 1 at every point.
func SpeciesFractions(pKa, min, max float64, n int) (pH, acid, base []float64) {
	pH = floats.Span(make([]float64, n), min, max)
	acid = make([]float64, n)
	base = make([]float64, n)
	for i, p := range pH {
		ratio := math.Pow(10, p-pKa)
		acid[i] = 1 / (1 + ratio)
		base[i] = 1 - acid[i]
	}
	return pH, acid, base
}

//CapacityCurve evaluates the buffer capacity (mol of strong base per liter
//per pH unit) of a conjugate pair at total concentration total, on an even
//grid of n pH values. The capacity is the derivative of the base species
//concentration with respect to pH, taken numerically; it peaks at pKa.
func CapacityCurve(pKa, total, min, max float64, n int) (pH, beta []float64) {
	pH = floats.Span(make([]float64, n), min, max)
	beta = make([]float64, n)
	baseConc := func(p float64) float64 {
		return total / (1 + math.Pow(10, pKa-p))
	}
	settings := &fd.Settings{Formula: fd.Central}
	for i, p := range pH {
		beta[i] = fd.Derivative(baseConc, p, settings)
	}
	return pH, beta
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func toXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

//FractionPlot writes a PNG named plotname.png with both species fractions of
//sys between pKa-3 and pKa+3.
func FractionPlot(sys *solprep.ConjugateSystem, plotname string) error {
	pH, acid, base := SpeciesFractions(sys.PKa, sys.PKa-3, sys.PKa+3, 121)
	p := basicPlot(fmt.Sprintf("%s species distribution", sys.Name), "pH", "fraction")
	acidLine, err := plotter.NewLine(toXYs(pH, acid))
	if err != nil {
		return err
	}
	baseLine, err := plotter.NewLine(toXYs(pH, base))
	if err != nil {
		return err
	}
	baseLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(acidLine, baseLine)
	p.Legend.Add("acid form", acidLine)
	p.Legend.Add("base form", baseLine)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename)
}

//CapacityPlot writes a PNG named plotname.png with the buffer capacity of
//sys at the given total concentration (in M), between pKa-3 and pKa+3.
func CapacityPlot(sys *solprep.ConjugateSystem, total float64, plotname string) error {
	pH, beta := CapacityCurve(sys.PKa, total, sys.PKa-3, sys.PKa+3, 121)
	p := basicPlot(fmt.Sprintf("%s buffer capacity at %s", sys.Name, solprep.FormatConcentration(total, solprep.Molar)),
		"pH", "capacity (mol/L/pH)")
	line, err := plotter.NewLine(toXYs(pH, beta))
	if err != nil {
		return err
	}
	p.Add(line)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename)
}
