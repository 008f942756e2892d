package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/dsp/core"
)

func ExampleSignedPow() {
	fmt.Println(core.SignedPow(-4, 0.5))

	// Output:
	// -2
}
