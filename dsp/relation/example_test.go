package relation_test

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/relation"
)

func ExampleRelation_Integrate() {
	x, err := axis.New(0, 0.5, 0.1)
	if err != nil {
		panic(err)
	}
	r, err := relation.New(x, []float64{10, 20, 30, 40, 50, 60})
	if err != nil {
		panic(err)
	}

	in, err := r.Integrate()
	if err != nil {
		panic(err)
	}

	for _, v := range in.Y() {
		fmt.Printf("%.1f ", v)
	}
	fmt.Println()

	// Output:
	// 1.5 4.0 7.5 12.0 17.5
}

func ExampleRelation_Pow() {
	x, err := axis.New(0, 0.2, 0.1)
	if err != nil {
		panic(err)
	}
	r, err := relation.New(x, []float64{-4, 9, -16})
	if err != nil {
		panic(err)
	}

	root, err := r.Pow(0.5)
	if err != nil {
		panic(err)
	}

	fmt.Println(root.Y())

	// Output:
	// [-2 3 -4]
}

func ExampleSignal_Spectrum() {
	x, err := axis.New(0, 0.7, 0.1)
	if err != nil {
		panic(err)
	}
	sig, err := relation.NewSignal(x, []float64{1, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		panic(err)
	}

	sp, err := sig.Spectrum()
	if err != nil {
		panic(err)
	}
	amp, err := sp.AmpSpectrum()
	if err != nil {
		panic(err)
	}

	fmt.Println(sp.Axis(), amp.Y())

	// Output:
	// [0, 5; 1.25] [1 1 1 1 1]
}
