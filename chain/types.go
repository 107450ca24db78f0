package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/robochain/keypad"
)

// Sentinel errors for the solver.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")

	// ErrBadCode is returned for codes whose shape or numeric part is malformed.
	ErrBadCode = errors.New("chain: malformed code")

	// ErrOverflow is returned when a complexity score does not fit in an int.
	ErrOverflow = errors.New("chain: complexity overflows int")
)

// DefaultRobots is the number of intermediate robots in the basic relay.
const DefaultRobots = 2

// MaxRobots bounds the chain so that a single code's press count stays
// within int64. Complexity scores can still overflow below this bound and
// are reported as ErrOverflow.
const MaxRobots = 40

// Option configures a Solver.
type Option func(*Options)

// Options holds the Solver configuration.
type Options struct {
	// Robots is the number of directional-keypad robots between the door
	// robot and the human. The evaluated depth is Robots+1.
	Robots int

	// Numeric is the keypad the innermost robot types codes on.
	Numeric *keypad.Layout

	// Directional is the keypad every other level types on.
	Directional *keypad.Layout

	// Prune enables pruning of candidate routes by their cost one level up.
	Prune bool

	// OnCode is called after each code of a Solve is priced.
	OnCode func(code string, length, value int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with two robots, the standard keypads,
// pruning enabled and a no-op OnCode hook.
func DefaultOptions() Options {
	return Options{
		Robots:      DefaultRobots,
		Numeric:     keypad.Numeric(),
		Directional: keypad.Directional(),
		Prune:       true,
		OnCode:      func(string, int, int) {},
	}
}

// WithRobots sets the number of intermediate robots.
//
//	0 <= n <= MaxRobots: accepted
//	otherwise:           ErrOptionViolation
func WithRobots(n int) Option {
	return func(o *Options) {
		if n < 0 || n > MaxRobots {
			o.err = fmt.Errorf("%w: robots must be in [0,%d] (%d)", ErrOptionViolation, MaxRobots, n)
			return
		}
		o.Robots = n
	}
}

// WithNumericLayout replaces the door keypad. A nil layout is a violation.
func WithNumericLayout(l *keypad.Layout) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil numeric layout", ErrOptionViolation)
			return
		}
		o.Numeric = l
	}
}

// WithDirectionalLayout replaces the directional keypad. A nil layout is a violation.
func WithDirectionalLayout(l *keypad.Layout) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil directional layout", ErrOptionViolation)
			return
		}
		o.Directional = l
	}
}

// WithoutPruning keeps every shortest route as a candidate.
func WithoutPruning() Option {
	return func(o *Options) { o.Prune = false }
}

// WithOnCode registers a hook called after each code is priced.
func WithOnCode(fn func(code string, length, value int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCode = fn
		}
	}
}
