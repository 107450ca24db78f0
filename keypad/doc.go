// Package keypad describes the fixed key grids a robot arm can press.
//
// What:
//
//   - Layout wraps a rectangular grid of single-rune keys with exactly one
//     forbidden "gap" cell that an arm may never hover over.
//   - Keys are small integer identities (Key) local to one Layout, so
//     sequences of keys compare and hash cheaply.
//   - Numeric() and Directional() return the two concrete layouts:
//
//     7 8 9          . ^ A
//     4 5 6          < v >
//     1 2 3
//     . 0 A
//
// Options:
//
//   - WithGap(r):      rune marking the gap cell (default '.').
//   - WithActivate(r): rune of the activate key every arm starts on (default 'A').
//
// Errors:
//
//   - ErrInvalidLayout: wraps every construction failure below.
//   - ErrEmptyGrid:     no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNoGap / ErrMultipleGaps: the grid must hold exactly one gap.
//   - ErrDuplicateKey:  two cells share a label.
//   - ErrNoActivate:    no cell carries the activate label.
//   - ErrKeyNotFound:   lookup of a label or key absent from the layout.
//
// Layouts are immutable once built and safe to share.
package keypad
