package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sweep/dsp/relation"
	timestats "github.com/cwbudde/algo-sweep/stats/time"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		out  string
		plot bool
	)

	cmd := &cobra.Command{
		Use:   "build <design.yaml>",
		Short: "materialize a sweep and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sw, err := a.loadSweep(args[0])
			if err != nil {
				return err
			}

			st, err := timestats.Calculate(sw)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "name:     %s\n", f.Name)
			fmt.Fprintf(w, "axis:     %v\n", sw.Axis())
			fmt.Fprintf(w, "samples:  %d\n", sw.Size())
			fmt.Fprintf(w, "duration: %.6g s\n", f.Duration())
			fmt.Fprintf(w, "peak:     %.6g at %.6g s\n", st.Peak, st.PeakTime)
			fmt.Fprintf(w, "rms:      %.6g (%.2f dB)\n", st.RMS, st.RMS_dB)
			fmt.Fprintf(w, "crest:    %.2f dB\n", st.CrestFactor_dB)
			fmt.Fprintf(w, "energy:   %.6g\n", st.Energy)
			fmt.Fprintf(w, "zero crossings: %d\n", st.ZeroCrossings)

			if out != "" {
				if err := writeCSV(out, sw); err != nil {
					return err
				}
				a.log.Info().Str("path", out).Int("rows", sw.Size()).Msg("sweep written")
			}
			if plot {
				a.plot(w, sw.Y(), fmt.Sprintf("%s: amplitude over %v", f.Name, sw.Axis()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write time,value CSV to this file")
	cmd.Flags().BoolVar(&plot, "plot", false, "print an ASCII preview of the waveform")

	return cmd
}

func writeCSV(path string, s relation.Sampled[float64]) error {
	ts, ys, err := s.Base().Data()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"time", "value"}); err != nil {
		return err
	}
	for i, t := range ts {
		row := []string{
			strconv.FormatFloat(t, 'g', 12, 64),
			strconv.FormatFloat(ys[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}
