package route

import "fmt"

// Symbol is one press on a directional keypad.
type Symbol uint8

// The five directional keypad symbols. The first four follow the
// neighbour order used by keypad.Layout.Neighbors.
const (
	Up Symbol = iota
	Down
	Left
	Right
	Activate

	// NumSymbols is the size of the alphabet.
	NumSymbols = 5
)

var symbolRunes = [NumSymbols]rune{'^', 'v', '<', '>', 'A'}

// Symbols lists the whole alphabet in Symbol order.
var Symbols = [NumSymbols]Symbol{Up, Down, Left, Right, Activate}

// Rune returns the keypad label of s.
func (s Symbol) Rune() rune {
	if s >= NumSymbols {
		return '?'
	}
	return symbolRunes[s]
}

// String implements fmt.Stringer.
func (s Symbol) String() string { return string(s.Rune()) }

// ParseSymbol maps a keypad label to its Symbol.
func ParseSymbol(r rune) (Symbol, error) {
	for i, sr := range symbolRunes {
		if sr == r {
			return Symbol(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadSymbol, r)
}
