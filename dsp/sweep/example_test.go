package sweep_test

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/sweep"
)

func ExampleUncalculated_Materialize() {
	freq, err := sweep.LinearFrequency(0, 2, 1, 10)
	if err != nil {
		panic(err)
	}
	u, err := sweep.New(nil, freq, sweep.TukeyEnvelope(0.25, sweep.Both))
	if err != nil {
		panic(err)
	}

	x, err := axis.New(0, 2, 0.004)
	if err != nil {
		panic(err)
	}
	sw, err := u.Materialize(x)
	if err != nil {
		panic(err)
	}

	fmt.Println(sw.Size(), sw.Axis())

	// Output:
	// 501 [0, 2; 0.004]
}

func ExampleEvaluate() {
	x, err := axis.New(0, 4, 1)
	if err != nil {
		panic(err)
	}
	law := sweep.Interpolated{Times: []float64{1, 3}, Values: []float64{10, 30}}

	v, err := sweep.Evaluate(law, x)
	if err != nil {
		panic(err)
	}

	fmt.Println(v)

	// Output:
	// [10 10 20 30 30]
}
