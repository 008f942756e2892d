package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sweep/dsp/conv"
	"github.com/cwbudde/algo-sweep/dsp/core"
)

func newCorrelateCmd(a *app) *cobra.Command {
	var (
		plot bool
		span float64
	)

	cmd := &cobra.Command{
		Use:   "correlate <design.yaml>",
		Short: "autocorrelate a sweep and report its main lobe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sw, err := a.loadSweep(args[0])
			if err != nil {
				return err
			}

			ac, err := sw.Correlate(sw)
			if err != nil {
				return err
			}

			lags := ac.Array()
			y := ac.Y()
			peak, value := conv.FindPeak(y)
			lo, hi := mainLobe(y, peak)
			side := sidelobe(y, lo, hi)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "name:       %s\n", f.Name)
			fmt.Fprintf(w, "lags:       %d (%v)\n", len(y), ac.Axis())
			fmt.Fprintf(w, "peak:       %.6g at lag %.6g s (%d samples)\n", value, lags[peak], conv.LagFromIndex(peak, sw.Size()))
			fmt.Fprintf(w, "main lobe:  %.6g .. %.6g s\n", lags[lo], lags[hi])
			if side > 0 {
				fmt.Fprintf(w, "sidelobe:   %.2f dB below peak\n", core.LinearToDB(value/side))
			} else {
				fmt.Fprintf(w, "sidelobe:   none\n")
			}

			if plot {
				view := ac
				if span > 0 {
					if view, err = ac.SelectData(-span, span); err != nil {
						return err
					}
				}
				a.plot(w, view.Y(), fmt.Sprintf("%s: autocorrelation over %v", f.Name, view.Axis()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plot, "plot", false, "print an ASCII plot of the autocorrelation")
	cmd.Flags().Float64Var(&span, "span", 0.25, "plot lags within +/- span seconds (0 = all)")

	return cmd
}

// mainLobe walks down from peak to the first local minimum of |y| on each
// side.
func mainLobe(y []float64, peak int) (lo, hi int) {
	lo, hi = peak, peak
	for lo > 0 && math.Abs(y[lo-1]) < math.Abs(y[lo]) {
		lo--
	}
	for hi < len(y)-1 && math.Abs(y[hi+1]) < math.Abs(y[hi]) {
		hi++
	}
	return lo, hi
}

// sidelobe returns the largest |y| outside [lo, hi].
func sidelobe(y []float64, lo, hi int) float64 {
	m := 0.0
	for i, v := range y {
		if i >= lo && i <= hi {
			continue
		}
		m = math.Max(m, math.Abs(v))
	}
	return m
}
