package relation

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/fourier"
)

// TransformOption configures Signal.Spectrum and Spectrum.Signal.
type TransformOption func(*transformConfig)

type transformConfig struct {
	startZero bool
	timeStart *float64
}

// AssumeStartZero skips the zero padding that moves a signal's time origin
// onto its grid. Samples before zero are still rotated to the end.
func AssumeStartZero() TransformOption {
	return func(c *transformConfig) { c.startZero = true }
}

// WithTimeStart places the reconstructed signal at time t. Samples that
// fall before zero are rotated to the front so that the transform pair is
// inverse when t equals the original start.
func WithTimeStart(t float64) TransformOption {
	return func(c *transformConfig) { c.timeStart = &t }
}

func applyTransformOptions(opts []TransformOption) transformConfig {
	var cfg transformConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Spectrum returns the half spectrum of s.
//
// A signal starting after zero is padded with leading zeros down to t = 0;
// one ending before zero is padded with trailing zeros up to it. The samples
// at t >= 0 then come first, followed by those at t < 0, so the time origin
// sits on the first sample. The frequency step is 1/(n*sample).
func (s *Signal) Spectrum(opts ...TransformOption) (*Spectrum, error) {
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConverting, err)
	}
	cfg := applyTransformOptions(opts)

	x, y := s.x, s.y
	if !cfg.startZero {
		var err error
		if x, y, err = padToOrigin(x, y); err != nil {
			return nil, fmt.Errorf("relation: spectrum: %w: %w", ErrConverting, err)
		}
	}

	k := countNegative(x)
	seq := make([]float64, 0, len(y))
	seq = append(seq, y[k:]...)
	seq = append(seq, y[:k]...)
	if len(seq) < 2 {
		return nil, fmt.Errorf("relation: spectrum of %d samples: %w", len(seq), ErrConverting)
	}

	coeff, err := fourier.Forward(seq)
	if err != nil {
		return nil, fmt.Errorf("relation: spectrum: %w: %w", ErrConverting, err)
	}

	df := fourier.FreqStep(len(seq), x.Sample())
	fx, err := axis.New(0, float64(len(coeff)-1)*df, df)
	if err != nil {
		return nil, fmt.Errorf("relation: spectrum: %w: %w", ErrConverting, err)
	}
	return &Spectrum{Relation: *build(fx, coeff)}, nil
}

// padToOrigin extends the grid with zeros so that it reaches t = 0.
func padToOrigin(x *axis.Axis, y []float64) (*axis.Axis, []float64, error) {
	var (
		ax  *axis.Axis
		err error
	)
	switch {
	case x.Start() > 0:
		ax, err = axis.New(0, x.End(), x.Sample())
	case x.End() < 0:
		ax, err = axis.New(x.Start(), 0, x.Sample())
	default:
		return x, y, nil
	}
	if err != nil {
		return nil, nil, err
	}

	pad := make([]float64, max(ax.Size()-len(y), 0))
	if x.Start() > 0 {
		return ax, append(pad, y...), nil
	}
	return ax, append(slices.Clone(y), pad...), nil
}

// Signal returns the real sequence whose half spectrum is sp. A spectrum of
// m bins gives N = 2(m-1) samples spaced 1/(2*(end-start)) apart, starting
// at zero unless WithTimeStart is given.
func (sp *Spectrum) Signal(opts ...TransformOption) (*Signal, error) {
	if err := sp.check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConverting, err)
	}
	cfg := applyTransformOptions(opts)

	m := len(sp.y)
	span := sp.End() - sp.Start()
	if m < 2 || !(span > 0) {
		return nil, fmt.Errorf("relation: signal from %d bins over %g Hz: %w", m, span, ErrConverting)
	}

	n := 2 * (m - 1)
	seq, err := fourier.Inverse(sp.y, n)
	if err != nil {
		return nil, fmt.Errorf("relation: signal: %w: %w", ErrConverting, err)
	}

	dt := 1 / (2 * span)
	ts := 0.0
	if cfg.timeStart != nil {
		ts = *cfg.timeStart
	}
	x, err := axis.New(ts, ts+float64(n-1)*dt, dt)
	if err != nil {
		return nil, fmt.Errorf("relation: signal: %w: %w", ErrConverting, err)
	}

	if cfg.timeStart != nil {
		if k := countNegative(x); k > 0 {
			rot := make([]float64, 0, n)
			rot = append(rot, seq[n-k:]...)
			seq = append(rot, seq[:n-k]...)
		}
	}
	return &Signal{Relation: *build(x, seq)}, nil
}
