package route_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robochain/keypad"
	"github.com/katalvlaran/robochain/route"
)

// strs prints a candidate list for comparisons.
func strs(rs []route.Route) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}

//----------------------------------------------------------------------------//
// Route Tests
//----------------------------------------------------------------------------//

// TestParse_RoundTrip checks Parse/String and the accessors.
func TestParse_RoundTrip(t *testing.T) {
	r, err := route.Parse("<v<A")
	require.NoError(t, err)
	assert.Equal(t, "<v<A", r.String())
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 3, r.Moves())
	assert.Equal(t, route.Left, r.At(0))
	assert.Equal(t, []route.Symbol{route.Left, route.Down, route.Left, route.Activate}, r.Symbols())
	assert.Equal(t, route.MustParse("<v<A"), r, "routes are comparable values")
}

// TestParse_Errors covers bad runes and overlong input.
func TestParse_Errors(t *testing.T) {
	_, err := route.Parse("^x")
	assert.ErrorIs(t, err, route.ErrBadSymbol)

	_, err = route.Parse("<<<<<<<<<<<<<<<<A")
	assert.ErrorIs(t, err, route.ErrRouteTooLong)

	_, err = route.New(route.Symbol(9))
	assert.ErrorIs(t, err, route.ErrBadSymbol)
}

// TestCompare orders by length, then symbol order.
func TestCompare(t *testing.T) {
	assert.Equal(t, -1, route.MustParse("A").Compare(route.MustParse("^A")))
	assert.Equal(t, 1, route.MustParse(">^A").Compare(route.MustParse("^>A")))
	assert.Equal(t, 0, route.MustParse("v<A").Compare(route.MustParse("v<A")))
}

//----------------------------------------------------------------------------//
// Enumerate Tests
//----------------------------------------------------------------------------//

// TestEnumerate_SmallLayout pins the raw table of a 2×2 pad:
//
//	1 2
//	. A
func TestEnumerate_SmallLayout(t *testing.T) {
	l, err := keypad.New([]string{"12", ".A"})
	require.NoError(t, err)
	raw, err := route.Enumerate(l)
	require.NoError(t, err)

	want := map[string][]string{
		"1→1": {"A"}, "1→2": {">A"}, "1→A": {">vA"},
		"2→1": {"<A"}, "2→2": {"A"}, "2→A": {"vA"},
		"A→1": {"^<A"}, "A→2": {"^A"}, "A→A": {"A"},
	}
	if diff := cmp.Diff(want, raw.Strings()); diff != "" {
		t.Errorf("raw table mismatch (-want +got):\n%s", diff)
	}
}

// TestEnumerate_Directional checks all shortest routes are kept, zigzags included.
func TestEnumerate_Directional(t *testing.T) {
	raw, err := route.Enumerate(keypad.Directional())
	require.NoError(t, err)

	got, err := raw.Lookup('A', '<')
	require.NoError(t, err)
	assert.Equal(t, []string{"v<<A", "<v<A"}, strs(got))

	got, err = raw.Lookup('<', '^')
	require.NoError(t, err)
	assert.Equal(t, []string{">^A"}, strs(got))

	_, err = raw.Lookup('7', '^')
	assert.ErrorIs(t, err, keypad.ErrKeyNotFound)
}

// TestEnumerate_Properties verifies, for both keypads and every pair, that
// candidates share the BFS length and never cross the gap.
func TestEnumerate_Properties(t *testing.T) {
	for name, l := range map[string]*keypad.Layout{
		"numeric":     keypad.Numeric(),
		"directional": keypad.Directional(),
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := route.Enumerate(l)
			require.NoError(t, err)
			for _, from := range l.Keys() {
				for _, to := range l.Keys() {
					cands := raw.Routes(from, to)
					require.NotEmpty(t, cands)
					p0, _ := l.PositionOf(from)
					p1, _ := l.PositionOf(to)
					// On these layouts the gap sits in a corner, so the
					// shortest distance is always the Manhattan distance.
					dist := abs(p0.X-p1.X) + abs(p0.Y-p1.Y)
					for _, r := range cands {
						assert.Equal(t, dist+1, r.Len(), "%c→%c %v", l.Label(from), l.Label(to), r)
						assert.Equal(t, route.Activate, r.At(r.Len()-1))
						assertAvoidsGap(t, l, p0, r)
					}
				}
			}
		})
	}
}

// TestEnumerate_Unreachable rejects a pad split in two by its gap.
func TestEnumerate_Unreachable(t *testing.T) {
	l, err := keypad.New([]string{"1.A"})
	require.NoError(t, err)
	_, err = route.Enumerate(l)
	assert.ErrorIs(t, err, route.ErrUnreachable)
}

// TestEnumerate_TooLong rejects layouts whose routes exceed MaxLen.
func TestEnumerate_TooLong(t *testing.T) {
	l, err := keypad.New([]string{"A0123456789bcdefghij."})
	require.NoError(t, err)
	_, err = route.Enumerate(l)
	assert.ErrorIs(t, err, route.ErrRouteTooLong)
}

func assertAvoidsGap(t *testing.T, l *keypad.Layout, p keypad.Position, r route.Route) {
	t.Helper()
	for i := 0; i < r.Len()-1; i++ {
		switch r.At(i) {
		case route.Up:
			p.Y--
		case route.Down:
			p.Y++
		case route.Left:
			p.X--
		case route.Right:
			p.X++
		}
		_, ok := l.KeyAt(p)
		assert.True(t, ok, "route %v leaves the keys at %v", r, p)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
