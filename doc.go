// Package robochain computes how many buttons a human must press on a
// directional keypad so that a relay of robot arms, each pressing keys on
// the keypad of the arm below, ends up typing a code on a numeric door
// keypad.
//
// Under the hood, everything is organized under four subpackages:
//
//	keypad/ — immutable key grids with one forbidden gap cell
//	route/  — shortest-route enumeration (BFS) and cost-based pruning
//	cost/   — memoized recursive pricing across indirection levels
//	chain/  — the solver tying the keypads, tables and evaluator together
//
// and one command:
//
//	cmd/robochain — reads codes, prints the complexity score
//
// Quick ASCII view of the relay with two intermediate robots:
//
//	human ─▶ [dir pad] ─▶ robot ─▶ [dir pad] ─▶ robot ─▶ [dir pad] ─▶ robot ─▶ [door pad]
//
// Press counts grow exponentially with the number of robots, so the
// expanded command string is never built; only its length is computed.
//
//	go get github.com/katalvlaran/robochain
package robochain
