// Package chain solves the keypad relay: a robot types a code on the door's
// numeric keypad, directed by a robot on a directional keypad, directed by
// another, and so on up to the human at the outermost directional keypad.
//
// What
//
//   - New builds both keypads, enumerates their raw route tables, derives
//     the base directional cost table (phase 1) and prunes both tables
//     against it (phase 2). All of this happens once; the Solver is
//     immutable afterwards except for the per-run memo.
//   - Solve prices a batch of codes: for each code the number of human
//     presses at depth robots+1, times the numeric value of the code,
//     summed into the complexity score.
//
// Usage
//
//	s, err := chain.New(chain.WithRobots(25))
//	if err != nil {
//		// ErrOptionViolation, keypad or route construction errors
//	}
//	total, err := s.Solve([]string{"029A", "980A"})
//
// Options
//
//   - WithRobots(n):               intermediate robots between door and human (default 2).
//   - WithNumericLayout(l):        replace the door keypad.
//   - WithDirectionalLayout(l):    replace the directional keypad.
//   - WithoutPruning():            keep every shortest route (slower, for cross-checks).
//   - WithOnCode(fn):              hook called after each code is priced.
//
// Errors
//
//   - ErrOptionViolation  invalid option value.
//   - ErrBadCode          empty code, code not ending in Activate, or a
//     non-decimal numeric part.
//   - ErrOverflow         the complexity score does not fit in an int.
//   - keypad.ErrKeyNotFound for runes that are not keys of the door keypad.
//
// A Solver is not safe for concurrent use.
package chain
