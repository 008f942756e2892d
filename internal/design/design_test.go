package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f := Default()
	require.NoError(t, f.Validate())

	ax, err := f.Axis()
	require.NoError(t, err)
	assert.Equal(t, 5001, ax.Size())
	assert.InDelta(t, 10.0, f.Duration(), 1e-12)
}

func TestParse(t *testing.T) {
	doc := []byte(`
name: vibroseis
time: {start: 0, end: 2, sample: 0.004}
frequency: {law: log, start: 4, end: 64}
amplitude: {law: tukey, taper: 0.25, location: left}
`)
	f, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "vibroseis", f.Name)
	assert.Equal(t, KindLog, f.Frequency.Law)
	assert.Equal(t, "left", f.Amplitude.Location)

	u, ax, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 501, ax.Size())

	sw, err := u.Materialize(nil)
	require.NoError(t, err)
	assert.Equal(t, ax.Size(), sw.Size())
	assert.InDelta(t, 0, sw.Y()[0], 1e-12)
}

func TestParseKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte("name: short\ntime: {end: 1}\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSample, f.Time.Sample)
	assert.Equal(t, KindLinear, f.Frequency.Law)
	assert.Equal(t, KindTukey, f.Amplitude.Law)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "time: [1, 2"},
		{"zero sample", "time: {start: 0, end: 1, sample: 0}"},
		{"inverted time", "time: {start: 2, end: 1, sample: 0.1}"},
		{"unknown law", "frequency: {law: chirp}"},
		{"tukey frequency", "frequency: {law: tukey, taper: 1}"},
		{"log amplitude", "amplitude: {law: log, start: 1, end: 2}"},
		{"log non-positive", "frequency: {law: log, start: 0, end: 10}"},
		{"bad location", "amplitude: {law: tukey, taper: 1, location: middle}"},
		{"negative taper", "amplitude: {law: tukey, taper: -1}"},
		{"points mismatch", "frequency: {law: points, times: [0, 1], values: [1]}"},
		{"points unordered", "frequency: {law: points, times: [1, 0], values: [1, 2]}"},
		{"samples short", "time: {start: 0, end: 1, sample: 0.5}\namplitude: {law: samples, values: [1, 2]}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestSamplesLaw(t *testing.T) {
	f, err := Parse([]byte(`
time: {start: 0, end: 1, sample: 0.5}
frequency: {law: constant, value: 1}
amplitude: {law: samples, values: [0, 1, 0]}
`))
	require.NoError(t, err)

	u, _, err := f.Build()
	require.NoError(t, err)
	sw, err := u.Materialize(nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, sw.Y(), 1e-9)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	f := Default()
	f.Name = "saved"
	f.Frequency = LawSpec{Law: KindPoints, Times: []float64{0, 5, 10}, Values: []float64{5, 50, 20}}

	require.NoError(t, Save(path, f))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
	assert.Equal(t, f.Time, got.Time)
	assert.Equal(t, f.Amplitude, got.Amplitude)
	assert.Equal(t, KindPoints, got.Frequency.Law)
	assert.Equal(t, f.Frequency.Times, got.Frequency.Times)
	assert.Equal(t, f.Frequency.Values, got.Frequency.Values)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestKinds(t *testing.T) {
	k, ok := LookupKind(KindTukey)
	require.True(t, ok)
	assert.Equal(t, RoleAmplitude, k.Roles)
	assert.Equal(t, "frequency,amplitude", (RoleFrequency | RoleAmplitude).String())

	_, ok = LookupKind("chirp")
	assert.False(t, ok)
}
