package cost

import (
	"fmt"

	"github.com/katalvlaran/robochain/keypad"
	"github.com/katalvlaran/robochain/route"
)

// Evaluator prices key sequences typed through a chain of directional
// keypads. It is not safe for concurrent use.
type Evaluator struct {
	bottom      *route.Table
	directional *route.Table
	symbolKeys  [route.NumSymbols]keypad.Key
	memo        *Memo
}

// NewEvaluator prepares an Evaluator for segments on bottom's layout,
// driven through copies of the directional keypad described by
// directional. Returns route.ErrNotDirectional if directional's layout
// lacks one of the five symbol keys.
func NewEvaluator(bottom, directional *route.Table) (*Evaluator, error) {
	keys, err := route.SymbolKeys(directional.Layout())
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		bottom:      bottom,
		directional: directional,
		symbolKeys:  keys,
		memo:        NewMemo(),
	}, nil
}

// Memo exposes the cache for inspection.
func (e *Evaluator) Memo() *Memo { return e.memo }

// Score returns the minimal number of presses at the outermost level
// needed to type segment on the bottom keypad through depth levels of
// indirection. The bottom arm starts on its Activate key.
// Returns ErrNegativeDepth, or keypad.ErrKeyNotFound for keys outside the
// bottom layout.
func (e *Evaluator) Score(segment []keypad.Key, depth int) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	l := e.bottom.Layout()
	for _, k := range segment {
		if int(k) >= l.Len() {
			return 0, fmt.Errorf("%w: key %d", keypad.ErrKeyNotFound, k)
		}
	}
	if depth == 0 {
		return len(segment), nil
	}

	total := 0
	cursor := l.Activate()
	for _, k := range segment {
		total += e.cheapest(e.bottom.Routes(cursor, k), depth-1)
		cursor = k
	}
	return total, nil
}

// Press returns the price of typing r on the directional keypad through
// depth further levels. A depth of 0 or less prices r at its own length.
func (e *Evaluator) Press(r route.Route, depth int) int {
	if depth <= 0 {
		return r.Len()
	}
	key := memoKey{r: r, depth: depth}
	if v, ok := e.memo.load(key); ok {
		return v
	}

	total := 0
	cursor := e.symbolKeys[route.Activate]
	for i := 0; i < r.Len(); i++ {
		k := e.symbolKeys[r.At(i)]
		total += e.cheapest(e.directional.Routes(cursor, k), depth-1)
		cursor = k
	}
	e.memo.store(key, total)
	return total
}

// cheapest returns the minimal Press over candidates.
func (e *Evaluator) cheapest(candidates []route.Route, depth int) int {
	best := -1
	for _, r := range candidates {
		if v := e.Press(r, depth); best < 0 || v < best {
			best = v
		}
	}
	return best
}
