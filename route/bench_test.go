package route_test

import (
	"testing"

	"github.com/katalvlaran/robochain/keypad"
	"github.com/katalvlaran/robochain/route"
)

// BenchmarkEnumerate_Numeric measures the raw table build of the door keypad.
func BenchmarkEnumerate_Numeric(b *testing.B) {
	l := keypad.Numeric()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = route.Enumerate(l)
	}
}

// BenchmarkOptimize_Numeric measures pruning of the raw door keypad table.
func BenchmarkOptimize_Numeric(b *testing.B) {
	dirRaw, _ := route.Enumerate(keypad.Directional())
	costs, _ := route.BaseCosts(dirRaw)
	numRaw, _ := route.Enumerate(keypad.Numeric())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = route.Optimize(numRaw, costs)
	}
}
