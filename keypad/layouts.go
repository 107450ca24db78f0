package keypad

// Rows of the two concrete keypads. '.' is the gap.
var (
	numericRows     = [...]string{"789", "456", "123", ".0A"}
	directionalRows = [...]string{".^A", "<v>"}
)

// NumericRows returns a copy of the door keypad rows.
func NumericRows() []string { return append([]string(nil), numericRows[:]...) }

// DirectionalRows returns a copy of the directional keypad rows.
func DirectionalRows() []string { return append([]string(nil), directionalRows[:]...) }

// Numeric returns the door keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	. 0 A
func Numeric() *Layout { return mustNew(numericRows[:]) }

// Directional returns the robot control keypad:
//
//	. ^ A
//	< v >
func Directional() *Layout { return mustNew(directionalRows[:]) }

func mustNew(rows []string) *Layout {
	l, err := New(rows)
	if err != nil {
		panic(err)
	}
	return l
}
