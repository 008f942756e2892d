package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sweep/dsp/relation"
	"github.com/cwbudde/algo-sweep/dsp/window"
)

func newSpectrogramCmd(a *app) *cobra.Command {
	var (
		segment int
		overlap int
		winName string
		every   int
	)

	cmd := &cobra.Command{
		Use:   "spectrogram <design.yaml>",
		Short: "track the dominant frequency of a sweep over time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, sw, err := a.loadSweep(args[0])
			if err != nil {
				return err
			}

			wt, err := window.ParseType(winName)
			if err != nil {
				return err
			}
			opts := []relation.STFTOption{relation.WithSegment(segment), relation.WithWindow(wt, window.WithPeriodic())}
			if overlap >= 0 {
				opts = append(opts, relation.WithOverlap(overlap))
			}

			spg, err := relation.STFT(sw, opts...)
			if err != nil {
				return err
			}

			a.log.Debug().
				Int("frames", spg.Time.Size()).
				Int("bins", spg.Frequency.Size()).
				Str("window", wt.String()).
				Msg("spectrogram computed")

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "name:   %s\n", f.Name)
			fmt.Fprintf(w, "frames: %d, bins: %d (df %.6g Hz)\n\n", spg.Time.Size(), spg.Frequency.Size(), spg.Frequency.Sample())

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME [s]\tFREQUENCY [Hz]\tMAGNITUDE")
			times, freqs := spg.Time.Array(), spg.Frequency.Array()
			for frame := 0; frame < len(times); frame += max(every, 1) {
				bin := dominantBin(spg, frame)
				fmt.Fprintf(tw, "%.4f\t%.3f\t%.4g\n", times[frame], freqs[bin], spg.Matrix[bin][frame])
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&segment, "segment", 256, "frame length in samples")
	cmd.Flags().IntVar(&overlap, "overlap", -1, "samples shared by consecutive frames (-1 = segment/8)")
	cmd.Flags().StringVar(&winName, "window", window.TypeHann.String(), "frame window (rectangular, hann, hamming, blackman, tukey)")
	cmd.Flags().IntVar(&every, "every", 1, "print every n-th frame")

	return cmd
}

func dominantBin(spg *relation.Spectrogram, frame int) int {
	best := 0
	for k := range spg.Matrix {
		if spg.Matrix[k][frame] > spg.Matrix[best][frame] {
			best = k
		}
	}
	return best
}
