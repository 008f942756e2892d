// Package design reads sweep design files.
//
// A design file is YAML describing the time axis and the two laws of a
// sweep:
//
//	name: vibroseis-linear
//	time: {start: 0, end: 12, sample: 0.002}
//	frequency: {law: linear, start: 6, end: 90}
//	amplitude: {law: tukey, taper: 0.5, location: both}
package design

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/sweep"
)

const (
	DefaultStart    = 0.0
	DefaultEnd      = 10.0
	DefaultSample   = 0.002
	DefaultFreqLow  = 5.0
	DefaultFreqHigh = 80.0
	DefaultTaper    = 0.5
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("design: invalid file")

// File is the top-level design document.
type File struct {
	Name      string  `yaml:"name"`
	Time      Time    `yaml:"time"`
	Frequency LawSpec `yaml:"frequency"`
	Amplitude LawSpec `yaml:"amplitude"`
}

// Time describes the sampling axis in seconds.
type Time struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Sample float64 `yaml:"sample"`
}

// LawSpec selects a law by name; which fields apply depends on the kind,
// see Kinds.
type LawSpec struct {
	Law      string    `yaml:"law"`
	Start    float64   `yaml:"start,omitempty"`
	End      float64   `yaml:"end,omitempty"`
	Value    float64   `yaml:"value,omitempty"`
	Taper    float64   `yaml:"taper,omitempty"`
	Location string    `yaml:"location,omitempty"`
	Times    []float64 `yaml:"times,omitempty"`
	Values   []float64 `yaml:"values,omitempty"`
}

// Default returns a 10 s linear 5-80 Hz sweep with half-second tapers.
func Default() *File {
	return &File{
		Name: "default",
		Time: Time{Start: DefaultStart, End: DefaultEnd, Sample: DefaultSample},
		Frequency: LawSpec{
			Law:   KindLinear,
			Start: DefaultFreqLow,
			End:   DefaultFreqHigh,
		},
		Amplitude: LawSpec{
			Law:      KindTukey,
			Taper:    DefaultTaper,
			Location: sweep.Both.String(),
		},
	}
}

// Load reads and validates the design at path. Missing fields keep their
// Default values.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a design document.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Save writes f as YAML.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Axis returns the time axis of the design.
func (f *File) Axis() (*axis.Axis, error) {
	ax, err := axis.New(f.Time.Start, f.Time.End, f.Time.Sample)
	if err != nil {
		return nil, fmt.Errorf("%w: time: %w", ErrInvalid, err)
	}
	return ax, nil
}

// Duration returns end - start of the time axis.
func (f *File) Duration() float64 { return f.Time.End - f.Time.Start }

// Validate checks the axis and both laws without sampling them.
func (f *File) Validate() error {
	ax, err := f.Axis()
	if err != nil {
		return err
	}
	for _, side := range []struct {
		name string
		role Role
		spec LawSpec
	}{
		{"frequency", RoleFrequency, f.Frequency},
		{"amplitude", RoleAmplitude, f.Amplitude},
	} {
		if _, err := side.spec.law(side.role, f.Time); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, side.name, err)
		}
		if side.spec.Law == KindSamples && len(side.spec.Values) != ax.Size() {
			return fmt.Errorf("%w: %s: %d samples for %d time points", ErrInvalid, side.name, len(side.spec.Values), ax.Size())
		}
	}
	return nil
}

// Build returns the deferred sweep and the axis it is meant to be sampled
// on. The axis is also stored as the sweep's default.
func (f *File) Build() (*sweep.Uncalculated, *axis.Axis, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}
	ax, err := f.Axis()
	if err != nil {
		return nil, nil, err
	}
	freq, err := f.Frequency.law(RoleFrequency, f.Time)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: frequency: %w", ErrInvalid, err)
	}
	amp, err := f.Amplitude.law(RoleAmplitude, f.Time)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: amplitude: %w", ErrInvalid, err)
	}
	u, err := sweep.New(ax, freq, amp)
	if err != nil {
		return nil, nil, err
	}
	return u, ax, nil
}
