package main

import (
	"fmt"
	"os"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/eval"
	"github.com/rometsch-lab/grotto-dpf/inputs"
	"github.com/rometsch-lab/grotto-dpf/keygen"
	"github.com/rometsch-lab/grotto-dpf/leaf"
)

// go run main.go demo-point
func main() {
	if len(os.Args) > 1 && os.Args[1] == "demo-point" {
		demoPoint()
		return
	}

	// ... other commands:
}

// demoPoint generates a depth-16 point-function key pair secret-sharing
// y=42 at x*=1234, then evaluates both shares at the target and at a
// non-target input to show the combined result is y at x* and zero
// everywhere else.
func demoPoint() {
	prg := block.NewFixedKeyAES()
	depth := 16

	target := inputs.NewBitStringFromUint64(1234, depth)
	outputs := []keygen.OutputSpec[uint32]{{Value: 42}}
	arith := leaf.Integer[uint32]{}

	result, err := keygen.Gen(prg, target, outputs, arith, 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, "keygen:", err)
		os.Exit(1)
	}

	for _, x := range []uint64{1234, 1235} {
		xi := inputs.NewBitStringFromUint64(x, depth)
		a, err := eval.Point(prg, result.Alice, xi, 0, arith, 1, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "eval alice:", err)
			os.Exit(1)
		}
		b, err := eval.Point(prg, result.Bob, xi, 0, arith, 1, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "eval bob:", err)
			os.Exit(1)
		}
		fmt.Printf("f(%d) = %d\n", x, eval.Combine(arith, a, b))
	}
}
