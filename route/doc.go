// Package route enumerates and prunes the command sequences a robot arm
// follows to move between two keys of a keypad and press the second one.
//
// What
//
//   - Symbol is one press on a directional keypad: Up, Down, Left, Right or
//     Activate.
//   - Route is a fixed-capacity, comparable sequence of Symbols ending in a
//     single Activate. Being comparable, a Route is usable directly as part
//     of a map key without allocation.
//   - Enumerate runs a breadth-first search from every key of a Layout and
//     keeps every shortest move sequence to every other key (the raw Table).
//   - BaseCosts derives a CostTable from the raw directional Table: the
//     number of moves needed to travel between two directional keys.
//   - Optimize keeps, for every pair, only the candidates whose transition
//     cost one level up is minimal.
//
// Determinism
//
//	Neighbours are expanded in Up, Down, Left, Right order and candidate
//	lists are sorted by Symbol order, so tables are reproducible.
//
// Complexity (K = keys, C = cells)
//
//   - Enumerate: O(K × C) for the searches plus the number of shortest
//     routes emitted.
//   - Optimize:  O(total candidate symbols).
//
// Errors
//
//   - ErrUnreachable     a key cannot be reached from another key.
//   - ErrRouteTooLong    a shortest route does not fit in a Route.
//   - ErrBadSymbol       a rune that is not one of ^ v < > A.
//   - ErrNotDirectional  a layout lacks a key for one of the five symbols.
package route
