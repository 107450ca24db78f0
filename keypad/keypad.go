package keypad

import (
	"fmt"
	"strings"
)

// neighborOffsets lists the orthogonal moves in Up, Down, Left, Right order.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// New constructs a Layout from rows of runes, one rune per cell.
// It rejects empty or ragged grids, grids without exactly one gap,
// duplicate labels and grids with no activate key. Every such error
// wraps ErrInvalidLayout.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Layout, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}
	h, w := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	l := &Layout{
		width:   w,
		height:  h,
		cells:   make([]int, w*h),
		byLabel: make(map[rune]Key, w*h),
		gapRune: o.Gap,
	}
	gaps := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := grid[y][x]
			if r == o.Gap {
				gaps++
				if gaps > 1 {
					return nil, fmt.Errorf("%w: second gap at %d,%d", ErrMultipleGaps, x, y)
				}
				l.gap = Position{X: x, Y: y}
				l.cells[l.index(x, y)] = -1
				continue
			}
			if _, dup := l.byLabel[r]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, r)
			}
			if len(l.labels) == MaxKeys {
				return nil, fmt.Errorf("%w: more than %d keys", ErrInvalidLayout, MaxKeys)
			}
			k := Key(len(l.labels))
			l.byLabel[r] = k
			l.labels = append(l.labels, r)
			l.positions = append(l.positions, Position{X: x, Y: y})
			l.cells[l.index(x, y)] = int(k)
		}
	}
	if gaps == 0 {
		return nil, ErrNoGap
	}
	act, ok := l.byLabel[o.Activate]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoActivate, o.Activate)
	}
	l.activate = act

	return l, nil
}

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// Len returns the number of keys (the gap excluded).
func (l *Layout) Len() int { return len(l.labels) }

// Keys returns every key in row-major order.
func (l *Layout) Keys() []Key {
	keys := make([]Key, len(l.labels))
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Activate returns the activate key.
func (l *Layout) Activate() Key { return l.activate }

// Gap returns the position of the forbidden cell.
func (l *Layout) Gap() Position { return l.gap }

// KeyOf returns the key labelled r, or ErrKeyNotFound.
func (l *Layout) KeyOf(r rune) (Key, error) {
	k, ok := l.byLabel[r]
	if !ok {
		return 0, fmt.Errorf("%w: label %q", ErrKeyNotFound, r)
	}
	return k, nil
}

// Label returns the rune printed on k, or 0 if k is not part of the layout.
func (l *Layout) Label(k Key) rune {
	if int(k) >= len(l.labels) {
		return 0
	}
	return l.labels[k]
}

// PositionOf returns the grid cell of k, or ErrKeyNotFound.
func (l *Layout) PositionOf(k Key) (Position, error) {
	if int(k) >= len(l.positions) {
		return Position{}, fmt.Errorf("%w: key %d", ErrKeyNotFound, k)
	}
	return l.positions[k], nil
}

// KeyAt returns the key at p. ok is false for the gap and for cells
// outside the grid.
func (l *Layout) KeyAt(p Position) (k Key, ok bool) {
	if !l.InBounds(p) {
		return 0, false
	}
	c := l.cells[l.index(p.X, p.Y)]
	if c < 0 {
		return 0, false
	}
	return Key(c), true
}

// InBounds reports whether p lies within the grid.
func (l *Layout) InBounds(p Position) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

// Neighbors returns the orthogonal neighbours of p that hold a key, in
// Up, Down, Left, Right order. The gap and out-of-grid cells are never
// returned. dirs[i] is the index into that order for next[i].
func (l *Layout) Neighbors(p Position) (next []Position, dirs []int) {
	next = make([]Position, 0, len(neighborOffsets))
	dirs = make([]int, 0, len(neighborOffsets))
	for d, off := range neighborOffsets {
		q := Position{X: p.X + off[0], Y: p.Y + off[1]}
		if _, ok := l.KeyAt(q); !ok {
			continue
		}
		next = append(next, q)
		dirs = append(dirs, d)
	}
	return next, dirs
}

// ParseCode maps every rune of code to a key of l.
// Returns ErrKeyNotFound for the first rune that is not a label of l.
func ParseCode(l *Layout, code string) ([]Key, error) {
	keys := make([]Key, 0, len(code))
	for _, r := range code {
		k, err := l.KeyOf(r)
		if err != nil {
			return nil, fmt.Errorf("code %q: %w", code, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// FormatKeys renders keys back to their labels.
func (l *Layout) FormatKeys(keys []Key) string {
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteRune(l.Label(k))
	}
	return sb.String()
}

// String draws the grid, one row per line, with the gap drawn as the rune
// the layout was built with.
func (l *Layout) String() string {
	var sb strings.Builder
	for y := 0; y < l.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < l.width; x++ {
			if k, ok := l.KeyAt(Position{X: x, Y: y}); ok {
				sb.WriteRune(l.labels[k])
			} else {
				sb.WriteRune(l.gapRune)
			}
		}
	}
	return sb.String()
}

// index maps (x,y) to a row-major index.
func (l *Layout) index(x, y int) int {
	return y*l.width + x
}
