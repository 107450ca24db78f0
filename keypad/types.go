package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for keypad construction and lookup.
var (
	// ErrInvalidLayout is wrapped by every layout construction error.
	ErrInvalidLayout = errors.New("keypad: invalid layout")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidLayout)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidLayout)

	// ErrNoGap indicates the grid has no gap cell.
	ErrNoGap = fmt.Errorf("%w: grid has no gap cell", ErrInvalidLayout)

	// ErrMultipleGaps indicates the grid has more than one gap cell.
	ErrMultipleGaps = fmt.Errorf("%w: grid has more than one gap cell", ErrInvalidLayout)

	// ErrDuplicateKey indicates two cells carry the same label.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key label", ErrInvalidLayout)

	// ErrNoActivate indicates no cell carries the activate label.
	ErrNoActivate = fmt.Errorf("%w: no activate key", ErrInvalidLayout)

	// ErrKeyNotFound indicates a label or key that is not part of the layout.
	ErrKeyNotFound = errors.New("keypad: key not found")
)

// Default labels.
const (
	DefaultGap      = '.'
	DefaultActivate = 'A'
)

// MaxKeys bounds the number of keys per layout so that Key fits in a byte.
const MaxKeys = 255

// Key identifies one key of a Layout. Values are dense, starting at 0 in
// row-major order of the grid, and are meaningless across layouts.
type Key uint8

// Position is a grid cell. Y grows downward, X grows to the right.
type Position struct {
	X, Y int
}

// String renders the position as "x,y".
func (p Position) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Option configures layout construction.
type Option func(*Options)

// Options holds the labels interpreted specially while parsing a grid.
type Options struct {
	// Gap marks the single forbidden cell.
	Gap rune

	// Activate labels the key every arm rests on before typing.
	Activate rune
}

// DefaultOptions returns Options with Gap='.' and Activate='A'.
func DefaultOptions() Options {
	return Options{
		Gap:      DefaultGap,
		Activate: DefaultActivate,
	}
}

// WithGap sets the rune marking the gap cell.
func WithGap(r rune) Option {
	return func(o *Options) { o.Gap = r }
}

// WithActivate sets the label of the activate key.
func WithActivate(r rune) Option {
	return func(o *Options) { o.Activate = r }
}

// Layout is an immutable keypad grid. It is built once by New and never
// mutated afterwards.
type Layout struct {
	width, height int
	cells         []int // row-major; key index or -1 for the gap
	labels        []rune
	positions     []Position
	byLabel       map[rune]Key
	gap           Position
	gapRune       rune
	activate      Key
}
