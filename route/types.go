package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/robochain/keypad"
)

// Sentinel errors for route enumeration and optimization.
var (
	// ErrUnreachable indicates a key that cannot be reached without crossing the gap.
	ErrUnreachable = errors.New("route: key unreachable")

	// ErrRouteTooLong indicates a shortest route longer than MaxLen symbols.
	ErrRouteTooLong = errors.New("route: route exceeds maximum length")

	// ErrBadSymbol indicates a rune outside the directional alphabet.
	ErrBadSymbol = errors.New("route: bad symbol")

	// ErrNotDirectional indicates a layout missing one of the five symbol keys.
	ErrNotDirectional = errors.New("route: layout is not a directional keypad")
)

// MaxLen is the capacity of a Route, Activate included.
const MaxLen = 16

// Route is a sequence of moves followed by one Activate.
// The zero Route is empty and never produced by Enumerate.
type Route struct {
	syms [MaxLen]Symbol
	n    uint8
}

// New builds a Route from syms. It does not append Activate.
func New(syms ...Symbol) (Route, error) {
	var r Route
	if len(syms) > MaxLen {
		return r, fmt.Errorf("%w: %d symbols", ErrRouteTooLong, len(syms))
	}
	for i, s := range syms {
		if s >= NumSymbols {
			return r, fmt.Errorf("%w: %d", ErrBadSymbol, s)
		}
		r.syms[i] = s
	}
	r.n = uint8(len(syms))
	return r, nil
}

// Parse reads a Route from its printed form, e.g. "<^A".
func Parse(s string) (Route, error) {
	syms := make([]Symbol, 0, len(s))
	for _, c := range s {
		sym, err := ParseSymbol(c)
		if err != nil {
			return Route{}, err
		}
		syms = append(syms, sym)
	}
	return New(syms...)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(s string) Route {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of presses, Activate included.
func (r Route) Len() int { return int(r.n) }

// Moves returns the number of direction presses.
func (r Route) Moves() int {
	if r.n == 0 {
		return 0
	}
	return int(r.n) - 1
}

// At returns the i-th symbol.
func (r Route) At(i int) Symbol { return r.syms[i] }

// Symbols returns a copy of the sequence.
func (r Route) Symbols() []Symbol {
	out := make([]Symbol, r.n)
	copy(out, r.syms[:r.n])
	return out
}

// Compare orders routes by length, then by Symbol order.
func (r Route) Compare(o Route) int {
	if r.n != o.n {
		if r.n < o.n {
			return -1
		}
		return 1
	}
	for i := 0; i < int(r.n); i++ {
		if r.syms[i] != o.syms[i] {
			if r.syms[i] < o.syms[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders the route with keypad labels.
func (r Route) String() string {
	var sb strings.Builder
	for i := 0; i < int(r.n); i++ {
		sb.WriteRune(r.syms[i].Rune())
	}
	return sb.String()
}

// Table maps every ordered pair of keys of one Layout to its candidate
// routes. All candidates of a pair share the same length. A Table is
// immutable once built; slices returned by Routes must not be modified.
type Table struct {
	layout *keypad.Layout
	routes [][][]Route // [from][to]
}

func newTable(l *keypad.Layout) *Table {
	n := l.Len()
	t := &Table{layout: l, routes: make([][][]Route, n)}
	for i := range t.routes {
		t.routes[i] = make([][]Route, n)
	}
	return t
}

// Layout returns the keypad the table was built for.
func (t *Table) Layout() *keypad.Layout { return t.layout }

// Routes returns the candidates for from→to, or nil if either key is not
// part of the layout.
func (t *Table) Routes(from, to keypad.Key) []Route {
	if int(from) >= len(t.routes) || int(to) >= len(t.routes) {
		return nil
	}
	return t.routes[from][to]
}

// Lookup is Routes keyed by labels.
func (t *Table) Lookup(from, to rune) ([]Route, error) {
	f, err := t.layout.KeyOf(from)
	if err != nil {
		return nil, err
	}
	k, err := t.layout.KeyOf(to)
	if err != nil {
		return nil, err
	}
	return t.routes[f][k], nil
}

// Strings renders every pair as "from→to" mapped to its printed candidates.
// Handy for diffs in tests and debug output.
func (t *Table) Strings() map[string][]string {
	out := make(map[string][]string, len(t.routes)*len(t.routes))
	for from := range t.routes {
		for to, cands := range t.routes[from] {
			key := string(t.layout.Label(keypad.Key(from))) + "→" + string(t.layout.Label(keypad.Key(to)))
			ss := make([]string, len(cands))
			for i, c := range cands {
				ss[i] = c.String()
			}
			out[key] = ss
		}
	}
	return out
}

// CostTable holds the transition cost between two consecutive symbols one
// indirection level up.
type CostTable [NumSymbols][NumSymbols]int

// At returns the cost of pressing b right after a.
func (c *CostTable) At(a, b Symbol) int { return c[a][b] }
