package chain_test

import (
	"fmt"

	"github.com/katalvlaran/robochain/chain"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolver_Solve prices the example batch through two and through
// twenty-five intermediate robots.
func ExampleSolver_Solve() {
	codes := []string{"029A", "980A", "179A", "456A", "379A"}
	for _, robots := range []int{2, 25} {
		s, err := chain.New(chain.WithRobots(robots))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		total, err := s.Solve(codes)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("robots=%d complexity=%d\n", robots, total)
	}

	// Output:
	// robots=2 complexity=126384
	// robots=25 complexity=154115708116294
}

////////////////////////////////////////////////////////////////////////////////
// Example: Tables
////////////////////////////////////////////////////////////////////////////////

// ExampleSolver_Tables shows how equal-length routes are tie-broken by
// their cost one level up.
func ExampleSolver_Tables() {
	s, _ := chain.New()
	num, dir := s.Tables()

	for _, pair := range [][2]rune{{'<', '^'}, {'>', '^'}, {'A', '<'}} {
		routes, _ := dir.Lookup(pair[0], pair[1])
		fmt.Printf("%c→%c %v\n", pair[0], pair[1], routes)
	}
	routes, _ := num.Lookup('2', '9')
	fmt.Printf("2→9 %v\n", routes)

	// Output:
	// <→^ [>^A]
	// >→^ [<^A]
	// A→< [v<<A]
	// 2→9 [^^>A >^^A]
}
