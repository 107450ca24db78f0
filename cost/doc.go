// Package cost evaluates how many presses the outermost operator needs to
// make a chain of robot arms type a key sequence, without ever building the
// expanded command string.
//
// Model
//
//	Depth counts the indirection levels still to expand. At depth 0 a
//	segment costs its own length. At depth d > 0 every key of the segment is
//	reached by one of the candidate routes of the bottom Table (starting
//	from its Activate key); each candidate is itself a segment on the
//	directional keypad, priced at depth d-1, and the cheapest one wins.
//
// Memoization
//
//	Routes are short and recur across codes and levels, so Evaluator keeps a
//	Memo keyed on (Route, depth). Route is a comparable value, so lookups
//	neither allocate nor hash strings. Memo entries stay valid for as long as
//	the tables they were computed from, which lets one Evaluator price a
//	whole batch of codes.
//
// Concurrency
//
//	An Evaluator mutates its Memo and must not be used from several
//	goroutines at once.
package cost
