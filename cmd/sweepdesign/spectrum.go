package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sweep/stats/frequency"
)

const dbFloor = -120.0

func newSpectrumCmd(a *app) *cobra.Command {
	var (
		plot    bool
		maxFreq float64
	)

	cmd := &cobra.Command{
		Use:   "spectrum <design.yaml>",
		Short: "summarize the amplitude spectrum of a sweep",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sw, err := a.loadSweep(args[0])
			if err != nil {
				return err
			}

			sp, err := sw.Spectrum()
			if err != nil {
				return err
			}
			if maxFreq > 0 {
				if sp, err = sp.SelectData(0, maxFreq); err != nil {
					return err
				}
			}
			st, err := frequency.FromSpectrum(sp)
			if err != nil {
				return err
			}

			a.log.Debug().Int("bins", st.BinCount).Float64("df", sp.Sample()).Msg("spectrum computed")

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "name:       %s\n", f.Name)
			fmt.Fprintf(w, "bins:       %d (df %.6g Hz)\n", st.BinCount, sp.Sample())
			fmt.Fprintf(w, "peak:       %.6g Hz\n", st.PeakFreq)
			fmt.Fprintf(w, "-3 dB band: %.6g .. %.6g Hz\n", st.LowEdge, st.HighEdge)
			fmt.Fprintf(w, "centroid:   %.6g Hz (spread %.6g Hz)\n", st.Centroid, st.Spread)
			fmt.Fprintf(w, "rolloff:    %.6g Hz\n", st.Rolloff)
			fmt.Fprintf(w, "flatness:   %.4f\n", st.Flatness)

			if plot {
				db, err := sp.AmpSpectrumDB(dbFloor)
				if err != nil {
					return err
				}
				a.plot(w, db.Y(), fmt.Sprintf("%s: amplitude spectrum in dB, %.6g .. %.6g Hz", f.Name, db.Start(), db.End()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plot, "plot", false, "print an ASCII plot of the dB spectrum")
	cmd.Flags().Float64Var(&maxFreq, "max-freq", 0, "only consider bins up to this frequency (0 = all)")

	return cmd
}
