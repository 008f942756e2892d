package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sweep/dsp/relation"
	"github.com/cwbudde/algo-sweep/internal/design"
)

const envPrefix = "SWEEPDESIGN"

const (
	keyLogLevel   = "log_level"
	keyPlotWidth  = "plot_width"
	keyPlotHeight = "plot_height"
)

// app carries the resolved settings shared by all subcommands.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}
	a.v.SetDefault(keyLogLevel, "info")
	a.v.SetDefault(keyPlotWidth, 80)
	a.v.SetDefault(keyPlotHeight, 15)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "sweepdesign",
		Short:        "design and inspect excitation sweeps",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Int("plot-width", 80, "width of ASCII plots in columns")
	pf.Int("plot-height", 15, "height of ASCII plots in rows")
	_ = a.v.BindPFlag(keyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(keyPlotWidth, pf.Lookup("plot-width"))
	_ = a.v.BindPFlag(keyPlotHeight, pf.Lookup("plot-height"))

	root.AddCommand(
		newBuildCmd(a),
		newSpectrumCmd(a),
		newSpectrogramCmd(a),
		newCorrelateCmd(a),
		newLawsCmd(a),
	)

	return root
}

func (a *app) setup(w io.Writer) error {
	level, err := zerolog.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

// loadSweep reads the design at path and samples it on its own axis.
func (a *app) loadSweep(path string) (*design.File, *relation.Sweep, error) {
	f, err := design.Load(path)
	if err != nil {
		return nil, nil, err
	}
	u, ax, err := f.Build()
	if err != nil {
		return nil, nil, err
	}

	a.log.Debug().
		Str("design", f.Name).
		Str("frequency_law", f.Frequency.Law).
		Str("amplitude_law", f.Amplitude.Law).
		Msg("design loaded")

	sw, err := u.Materialize(nil)
	if err != nil {
		return nil, nil, err
	}

	a.log.Info().
		Str("design", f.Name).
		Int("axis_size", ax.Size()).
		Float64("sample", ax.Sample()).
		Float64("duration", f.Duration()).
		Msg("sweep materialized")

	return f, sw, nil
}

func (a *app) plot(w io.Writer, data []float64, caption string) {
	if len(data) == 0 {
		return
	}
	clean := make([]float64, len(data))
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		clean[i] = v
	}
	fmt.Fprintln(w, asciigraph.Plot(clean,
		asciigraph.Height(a.v.GetInt(keyPlotHeight)),
		asciigraph.Width(a.v.GetInt(keyPlotWidth)),
		asciigraph.Caption(caption),
	))
}
