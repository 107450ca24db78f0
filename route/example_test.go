// File: route/example_test.go
package route_test

import (
	"fmt"

	"github.com/katalvlaran/robochain/keypad"
	"github.com/katalvlaran/robochain/route"
)

// ExampleOptimize shows the two phases: base costs from the raw directional
// table, then pruning of the numeric table against them.
func ExampleOptimize() {
	dirRaw, _ := route.Enumerate(keypad.Directional())
	costs, _ := route.BaseCosts(dirRaw)

	numRaw, _ := route.Enumerate(keypad.Numeric())
	num := route.Optimize(numRaw, costs)

	raw, _ := numRaw.Lookup('A', '4')
	kept, _ := num.Lookup('A', '4')
	fmt.Println("raw: ", raw)
	fmt.Println("kept:", kept)

	// Output:
	// raw:  [^^<<A ^<^<A ^<<^A <^^<A <^<^A]
	// kept: [^^<<A ^<<^A]
}
