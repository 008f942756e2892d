package relation

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/fourier"
	"github.com/cwbudde/algo-sweep/dsp/window"
)

// Spectrogram is a time-frequency magnitude map. Matrix is indexed
// [frequency bin][time frame].
type Spectrogram struct {
	Time      *axis.Axis
	Frequency *axis.Axis
	Matrix    [][]float64
}

// Validate reports whether the matrix matches both axes.
func (s *Spectrogram) Validate() error {
	if s == nil || s.Time == nil || s.Frequency == nil {
		return fmt.Errorf("relation: spectrogram without axes: %w", ErrBadInput)
	}
	if len(s.Matrix) != s.Frequency.Size() {
		return fmt.Errorf("relation: spectrogram has %d rows for %d frequencies: %w", len(s.Matrix), s.Frequency.Size(), ErrLengthMismatch)
	}
	for i, row := range s.Matrix {
		if len(row) != s.Time.Size() {
			return fmt.Errorf("relation: spectrogram row %d has %d frames, want %d: %w", i, len(row), s.Time.Size(), ErrLengthMismatch)
		}
	}
	return nil
}

// STFTOption configures STFT.
type STFTOption func(*stftConfig)

type stftConfig struct {
	segment    int
	overlap    int
	hasOverlap bool
	window     window.Type
	winOpts    []window.Option
}

// WithSegment sets the frame length in samples. Default 256, capped at the
// signal length.
func WithSegment(n int) STFTOption {
	return func(c *stftConfig) { c.segment = n }
}

// WithOverlap sets how many samples consecutive frames share. Default is an
// eighth of the segment.
func WithOverlap(n int) STFTOption {
	return func(c *stftConfig) { c.overlap, c.hasOverlap = n, true }
}

// WithWindow sets the frame taper. Default is a periodic Tukey window with
// alpha 0.25.
func WithWindow(t window.Type, opts ...window.Option) STFTOption {
	return func(c *stftConfig) { c.window, c.winOpts = t, opts }
}

// STFT returns the short-time Fourier magnitude of sig, normalized by the
// window sum. Frame times are segment centres.
func STFT(sig Sampled[float64], opts ...STFTOption) (*Spectrogram, error) {
	s, err := base(sig)
	if err != nil {
		return nil, err
	}

	cfg := stftConfig{
		segment: 256,
		window:  window.TypeTukey,
		winOpts: []window.Option{window.WithAlpha(0.25), window.WithPeriodic()},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	seg := min(cfg.segment, len(s.y))
	if seg < 2 {
		return nil, fmt.Errorf("relation: stft segment of %d samples: %w", seg, ErrBadInput)
	}
	overlap := seg / 8
	if cfg.hasOverlap {
		overlap = cfg.overlap
	}
	if overlap < 0 || overlap >= seg {
		return nil, fmt.Errorf("relation: stft overlap %d for segment %d: %w", overlap, seg, ErrBadInput)
	}

	norm := floats.Sum(window.Generate(cfg.window, seg, cfg.winOpts...))
	if !(norm > 0) {
		return nil, fmt.Errorf("relation: stft window %v sums to %g: %w", cfg.window, norm, ErrBadInput)
	}

	plan, err := fourier.NewReal(seg)
	if err != nil {
		return nil, fmt.Errorf("relation: stft: %w", err)
	}

	hop := seg - overlap
	frames := (len(s.y)-seg)/hop + 1
	bins := plan.Bins()
	dt := s.x.ActualSample()

	matrix := make([][]float64, bins)
	for i := range matrix {
		matrix[i] = make([]float64, frames)
	}

	frame := make([]float64, seg)
	coeff := make([]complex128, bins)
	for f := range frames {
		copy(frame, s.y[f*hop:f*hop+seg])
		window.Apply(cfg.window, frame, cfg.winOpts...)
		if _, err := plan.Forward(coeff, frame); err != nil {
			return nil, fmt.Errorf("relation: stft: %w", err)
		}
		for k, c := range coeff {
			matrix[k][f] = cmplx.Abs(c) / norm
		}
	}

	t0 := s.Start() + float64(seg-1)/2*dt
	tx, err := axis.New(t0, t0+float64(frames-1)*float64(hop)*dt, float64(hop)*dt)
	if err != nil {
		return nil, fmt.Errorf("relation: stft time axis: %w", err)
	}
	df := fourier.FreqStep(seg, dt)
	fx, err := axis.New(0, float64(bins-1)*df, df)
	if err != nil {
		return nil, fmt.Errorf("relation: stft frequency axis: %w", err)
	}

	return &Spectrogram{Time: tx, Frequency: fx, Matrix: matrix}, nil
}
