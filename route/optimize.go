package route

import (
	"fmt"

	"github.com/katalvlaran/robochain/keypad"
)

// SymbolKeys maps every Symbol to the key of l that carries its label.
// Returns ErrNotDirectional if a label is missing.
func SymbolKeys(l *keypad.Layout) ([NumSymbols]keypad.Key, error) {
	var keys [NumSymbols]keypad.Key
	for _, s := range Symbols {
		k, err := l.KeyOf(s.Rune())
		if err != nil {
			return keys, fmt.Errorf("%w: %v", ErrNotDirectional, err)
		}
		keys[s] = k
	}
	return keys, nil
}

// BaseCosts derives the transition costs of the directional keypad from its
// raw Table: moving the arm from the key of a to the key of b costs the
// number of moves between them, since the level above has no further
// indirection. raw must be the Table of a directional layout.
func BaseCosts(raw *Table) (CostTable, error) {
	var costs CostTable
	keys, err := SymbolKeys(raw.Layout())
	if err != nil {
		return costs, err
	}
	for _, a := range Symbols {
		for _, b := range Symbols {
			cands := raw.Routes(keys[a], keys[b])
			if len(cands) == 0 {
				return costs, fmt.Errorf("%w: %v→%v", ErrUnreachable, a, b)
			}
			costs[a][b] = cands[0].Moves()
		}
	}
	return costs, nil
}

// Cost sums costs over consecutive symbol pairs of r. Repeating a symbol
// is free: the arm is already on the key.
func Cost(r Route, costs *CostTable) int {
	total := 0
	for i := 1; i < r.Len(); i++ {
		a, b := r.At(i-1), r.At(i)
		if a != b {
			total += costs.At(a, b)
		}
	}
	return total
}

// Optimize returns a new Table keeping, for every pair of raw, exactly the
// candidates of minimal Cost. raw is not modified.
func Optimize(raw *Table, costs CostTable) *Table {
	t := newTable(raw.layout)
	for from := range raw.routes {
		for to, cands := range raw.routes[from] {
			t.routes[from][to] = argmin(cands, &costs)
		}
	}
	return t
}

func argmin(cands []Route, costs *CostTable) []Route {
	var kept []Route
	best := -1
	for _, r := range cands {
		c := Cost(r, costs)
		switch {
		case best < 0 || c < best:
			best = c
			kept = append(kept[:0], r)
		case c == best:
			kept = append(kept, r)
		}
	}
	return kept
}
