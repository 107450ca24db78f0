package route

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/robochain/keypad"
)

// step records how a cell was reached: from which cell and by which move.
type step struct {
	prev int
	move Symbol
}

// walker holds the breadth-first state for one start key.
type walker struct {
	layout  *keypad.Layout
	width   int
	dist    []int
	parents [][]step
	queue   []keypad.Position
}

// Enumerate builds the raw Table of l: for every ordered pair of keys,
// every shortest sequence of orthogonal moves that avoids the gap,
// followed by Activate. The pair from==to maps to the single route "A".
// Returns ErrUnreachable or ErrRouteTooLong for degenerate layouts.
func Enumerate(l *keypad.Layout) (*Table, error) {
	t := newTable(l)
	cells := l.Width() * l.Height()
	w := &walker{
		layout:  l,
		width:   l.Width(),
		dist:    make([]int, cells),
		parents: make([][]step, cells),
		queue:   make([]keypad.Position, 0, cells),
	}

	for _, from := range l.Keys() {
		start, err := l.PositionOf(from)
		if err != nil {
			return nil, err
		}
		w.search(start)

		for _, to := range l.Keys() {
			end, _ := l.PositionOf(to)
			d := w.dist[w.index(end)]
			if d < 0 {
				return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, l.Label(to), l.Label(from))
			}
			if d+1 > MaxLen {
				return nil, fmt.Errorf("%w: %q→%q needs %d presses", ErrRouteTooLong, l.Label(from), l.Label(to), d+1)
			}
			routes := w.collect(w.index(end))
			slices.SortFunc(routes, func(a, b Route) int { return a.Compare(b) })
			t.routes[from][to] = routes
		}
	}

	return t, nil
}

// search resets the walker and explores the grid from start, recording
// every predecessor that lies on a shortest path.
func (w *walker) search(start keypad.Position) {
	for i := range w.dist {
		w.dist[i] = -1
		w.parents[i] = w.parents[i][:0]
	}
	w.queue = append(w.queue[:0], start)
	w.dist[w.index(start)] = 0

	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		ui := w.index(u)
		next, dirs := w.layout.Neighbors(u)
		for i, v := range next {
			vi := w.index(v)
			switch {
			case w.dist[vi] < 0:
				w.dist[vi] = w.dist[ui] + 1
				w.parents[vi] = append(w.parents[vi], step{prev: ui, move: Symbol(dirs[i])})
				w.queue = append(w.queue, v)
			case w.dist[vi] == w.dist[ui]+1:
				// another shortest way in
				w.parents[vi] = append(w.parents[vi], step{prev: ui, move: Symbol(dirs[i])})
			}
		}
	}
}

// collect rebuilds every shortest move sequence ending at cell end,
// back to front, and terminates each with Activate.
func (w *walker) collect(end int) []Route {
	var out []Route
	var rec func(cell int, suffix []Symbol)
	rec = func(cell int, suffix []Symbol) {
		if w.dist[cell] == 0 {
			syms := append(slices.Clone(suffix), Activate)
			r, _ := New(syms...)
			out = append(out, r)
			return
		}
		for _, p := range w.parents[cell] {
			rec(p.prev, slices.Insert(slices.Clone(suffix), 0, p.move))
		}
	}
	rec(end, nil)
	return out
}

// index maps a position to its row-major cell index.
func (w *walker) index(p keypad.Position) int {
	return p.Y*w.width + p.X
}
