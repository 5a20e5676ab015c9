package engine

import "fmt"

const (
	BoardSize  = 10
	BoardCells = BoardSize * BoardSize
	RunLength  = 5 // chips in a completed line
)

// Corner cell indices. Corners carry no card and count as any team's chip
// for line-completion purposes.
const (
	CornerTopLeft     uint8 = 0
	CornerTopRight    uint8 = 9
	CornerBottomLeft  uint8 = 90
	CornerBottomRight uint8 = 99
)

// IsCorner reports whether pos is one of the four wildcard corner cells.
func IsCorner(pos uint8) bool {
	return pos == CornerTopLeft || pos == CornerTopRight ||
		pos == CornerBottomLeft || pos == CornerBottomRight
}

// CellIndex converts row/col coordinates to a flat cell index.
func CellIndex(row, col uint8) uint8 { return row*BoardSize + col }

// RowCol converts a flat cell index to row/col coordinates.
func RowCol(pos uint8) (row, col uint8) { return pos / BoardSize, pos % BoardSize }

// Direction identifies one of the four line axes.
type Direction uint8

const (
	DirHorizontal Direction = iota // →
	DirVertical                    // ↓
	DirDiagDown                    // ↘
	DirDiagUp                      // ↗
)

func (d Direction) String() string {
	switch d {
	case DirHorizontal:
		return "horizontal"
	case DirVertical:
		return "vertical"
	case DirDiagDown:
		return "diag-down"
	case DirDiagUp:
		return "diag-up"
	}
	return "unknown"
}

// BoardLayout is a fixed assignment of cards to the 100 board cells.
// Corner cells hold EmptyCard. Every non-corner cell holds a non-Jack
// card, and every such card value appears in exactly two distinct cells.
type BoardLayout struct {
	Name  string
	Cells [BoardCells]Card
}

// CardAt returns the fixed card printed at pos, or EmptyCard for corners.
func (l *BoardLayout) CardAt(pos uint8) Card { return l.Cells[pos] }

// Occurrences returns the (exactly two) cell indices carrying card c.
// For Jacks and EmptyCard the second result is false.
func (l *BoardLayout) Occurrences(c Card) ([2]uint8, bool) {
	var out [2]uint8
	if c == EmptyCard || c.IsJack() {
		return out, false
	}
	n := 0
	for pos := uint8(0); pos < BoardCells; pos++ {
		if l.Cells[pos] == c {
			if n < 2 {
				out[n] = pos
			}
			n++
		}
	}
	return out, n == 2
}

// Validate checks the static layout invariant: exactly the four geometric
// corners are cardless, no Jacks appear, and every other card value appears
// exactly twice. A violation is a defect in the layout data, not a runtime
// condition, so this runs once at load.
func (l *BoardLayout) Validate() error {
	var counts [64]uint8
	for pos := uint8(0); pos < BoardCells; pos++ {
		c := l.Cells[pos]
		if IsCorner(pos) {
			if c != EmptyCard {
				return fmt.Errorf("layout %s: corner cell %d holds %s", l.Name, pos, c)
			}
			continue
		}
		if c == EmptyCard {
			return fmt.Errorf("layout %s: non-corner cell %d is cardless", l.Name, pos)
		}
		if c.IsJack() {
			return fmt.Errorf("layout %s: cell %d holds a Jack (%s)", l.Name, pos, c)
		}
		counts[c]++
	}
	for suit := uint8(0); suit <= SuitSpades; suit++ {
		for rank := uint8(0); rank <= RankKing; rank++ {
			if rank == RankJack {
				continue
			}
			if n := counts[NewCard(suit, rank)]; n != 2 {
				return fmt.Errorf("layout %s: card %s appears %d times, want 2",
					l.Name, NewCard(suit, rank), n)
			}
		}
	}
	return nil
}

// mustParseLayout builds a BoardLayout from a 100-entry code table and
// panics on malformed or invariant-violating data. Layout tables are
// compile-time constants, so a failure here is a build defect.
func mustParseLayout(name string, codes [BoardCells]string) *BoardLayout {
	l := &BoardLayout{Name: name}
	for i, code := range codes {
		c, ok := ParseCard(code)
		if !ok {
			panic(fmt.Sprintf("layout %s: bad card code %q at cell %d", name, code, i))
		}
		l.Cells[i] = c
	}
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return l
}

// LayoutClassic mirrors the physical board: the first deck's 48 card values
// laid twice along a clockwise inward spiral of the 96 non-corner cells.
var LayoutClassic = mustParseLayout("classic", [BoardCells]string{
	"--", "AS", "2S", "3S", "4S", "5S", "6S", "7S", "8S", "--",
	"8C", "9C", "TC", "QC", "KC", "AD", "2D", "3D", "4D", "9S",
	"7C", "KS", "AH", "2H", "3H", "4H", "5H", "6H", "5D", "TS",
	"6C", "QS", "8C", "9C", "TC", "QC", "KC", "7H", "6D", "QS",
	"5C", "TS", "7C", "8D", "9D", "TD", "AD", "8H", "7D", "KS",
	"4C", "9S", "6C", "7D", "KD", "QD", "2D", "9H", "8D", "AH",
	"3C", "8S", "5C", "6D", "5D", "4D", "3D", "TH", "9D", "2H",
	"2C", "7S", "4C", "3C", "2C", "AC", "KH", "QH", "TD", "3H",
	"AC", "6S", "5S", "4S", "3S", "2S", "AS", "KD", "QD", "4H",
	"--", "KH", "QH", "TH", "9H", "8H", "7H", "6H", "5H", "--",
})

// LayoutScan is the scan-friendly skin: cards in suit/rank order row-major,
// with each value's second copy offset 48 non-corner cells after the first.
var LayoutScan = mustParseLayout("scan", [BoardCells]string{
	"--", "AS", "2S", "3S", "4S", "5S", "6S", "7S", "8S", "--",
	"9S", "TS", "QS", "KS", "AH", "2H", "3H", "4H", "5H", "6H",
	"7H", "8H", "9H", "TH", "QH", "KH", "AC", "2C", "3C", "4C",
	"5C", "6C", "7C", "8C", "9C", "TC", "QC", "KC", "AD", "2D",
	"3D", "4D", "5D", "6D", "7D", "8D", "9D", "TD", "QD", "KD",
	"AS", "2S", "3S", "4S", "5S", "6S", "7S", "8S", "9S", "TS",
	"QS", "KS", "AH", "2H", "3H", "4H", "5H", "6H", "7H", "8H",
	"9H", "TH", "QH", "KH", "AC", "2C", "3C", "4C", "5C", "6C",
	"7C", "8C", "9C", "TC", "QC", "KC", "AD", "2D", "3D", "4D",
	"--", "5D", "6D", "7D", "8D", "9D", "TD", "QD", "KD", "--",
})
