package chain

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/katalvlaran/robochain/cost"
	"github.com/katalvlaran/robochain/keypad"
	"github.com/katalvlaran/robochain/route"
)

// Solver holds the route tables of one keypad relay.
type Solver struct {
	opts        Options
	numeric     *route.Table
	directional *route.Table
	eval        *cost.Evaluator
}

// New builds the keypads and route tables for a relay configured by opts.
// Returns ErrOptionViolation for bad options, or any error from route
// enumeration (e.g. route.ErrNotDirectional for a directional layout
// lacking a symbol key).
func New(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	numRaw, err := route.Enumerate(o.Numeric)
	if err != nil {
		return nil, fmt.Errorf("chain: numeric keypad: %w", err)
	}
	dirRaw, err := route.Enumerate(o.Directional)
	if err != nil {
		return nil, fmt.Errorf("chain: directional keypad: %w", err)
	}

	// phase 1: base costs from raw move counts
	costs, err := route.BaseCosts(dirRaw)
	if err != nil {
		return nil, fmt.Errorf("chain: directional keypad: %w", err)
	}

	// phase 2: prune both tables against the same base costs
	s := &Solver{opts: o, numeric: numRaw, directional: dirRaw}
	if o.Prune {
		s.directional = route.Optimize(dirRaw, costs)
		s.numeric = route.Optimize(numRaw, costs)
	}
	if s.eval, err = cost.NewEvaluator(s.numeric, s.directional); err != nil {
		return nil, err
	}

	return s, nil
}

// Robots returns the configured number of intermediate robots.
func (s *Solver) Robots() int { return s.opts.Robots }

// Depth returns the number of indirection levels evaluated per code.
func (s *Solver) Depth() int { return s.opts.Robots + 1 }

// Tables returns the numeric and directional route tables in use.
func (s *Solver) Tables() (numeric, directional *route.Table) {
	return s.numeric, s.directional
}

// Solve returns the complexity score of codes: the sum over codes of
// Length(code) × Value(code). Each call starts from an empty memo, which
// is shared by every code of the batch.
func (s *Solver) Solve(codes []string) (int, error) {
	s.eval.Memo().Reset()

	total := 0
	for _, code := range codes {
		value, err := s.Value(code)
		if err != nil {
			return 0, err
		}
		length, err := s.Length(code)
		if err != nil {
			return 0, err
		}
		s.opts.OnCode(code, length, value)
		if total, err = addProduct(total, length, value); err != nil {
			return 0, fmt.Errorf("%w: code %q", err, code)
		}
	}
	return total, nil
}

// addProduct returns total + length×value, or ErrOverflow if either the
// product or the sum leaves the non-negative int range. All operands are
// non-negative.
func addProduct(total, length, value int) (int, error) {
	hi, lo := bits.Mul64(uint64(length), uint64(value))
	if hi != 0 || lo > math.MaxInt {
		return 0, ErrOverflow
	}
	sum, carry := bits.Add64(uint64(total), lo, 0)
	if carry != 0 || sum > math.MaxInt {
		return 0, ErrOverflow
	}
	return int(sum), nil
}

// Length returns the minimal number of human presses needed for the door
// robot to type code.
func (s *Solver) Length(code string) (int, error) {
	keys, err := keypad.ParseCode(s.numeric.Layout(), code)
	if err != nil {
		return 0, err
	}
	return s.eval.Score(keys, s.Depth())
}

// Value returns the number spelled by every key of code but the last,
// which must be the Activate key.
func (s *Solver) Value(code string) (int, error) {
	runes := []rune(code)
	if len(runes) == 0 {
		return 0, fmt.Errorf("%w: empty code", ErrBadCode)
	}
	l := s.numeric.Layout()
	if last := runes[len(runes)-1]; last != l.Label(l.Activate()) {
		return 0, fmt.Errorf("%w: %q does not end in %q", ErrBadCode, code, l.Label(l.Activate()))
	}
	digits := string(runes[:len(runes)-1])
	if digits == "" {
		return 0, nil
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q has non-digit %q", ErrBadCode, code, r)
		}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadCode, code, err)
	}
	return v, nil
}

// MemoSize returns the number of cached entries after the last Solve.
func (s *Solver) MemoSize() int { return s.eval.Memo().Len() }
