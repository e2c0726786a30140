package blockfall

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Shape is a piece's cell pattern: true marks an occupied cell.
// Rows are top to bottom; every row has the same length.
type Shape [][]bool

// parseShape builds a shape from rows where '#' is occupied.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns a quarter-turned copy: the transpose with its row order
// reversed. A R x C shape becomes C x R.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		row := make([]bool, h)
		for r := 0; r < h; r++ {
			row[r] = s[r][i]
		}
		out[w-1-i] = row
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = append([]bool(nil), s[r]...)
	}
	return out
}

// String renders the shape with '#' and '.', one row per line.
func (s Shape) String() string {
	var sb strings.Builder
	for r, row := range s {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Kind identifies one of the seven pieces.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindZ
	KindS
	KindT
	KindL
	KindJ
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 7

// PieceSpec is the catalog record for a piece kind.
type PieceSpec struct {
	Kind  Kind
	Name  string
	Shape Shape
	Color core.Color
}

var catalog = [KindCount]PieceSpec{
	{KindI, "I", parseShape("####"), core.ColorCyan},
	{KindO, "O", parseShape("##", "##"), core.ColorBlue},
	{KindZ, "Z", parseShape(".##", "##."), core.ColorOrange},
	{KindS, "S", parseShape("##.", ".##"), core.ColorYellow},
	{KindT, "T", parseShape("###", ".#."), core.ColorGreen},
	{KindL, "L", parseShape("###", "#.."), core.ColorPurple},
	{KindJ, "J", parseShape("###", "..#"), core.ColorRed},
}

// Spec returns the catalog record for k. The returned shape is a copy.
func Spec(k Kind) PieceSpec {
	spec := catalog[k]
	spec.Shape = spec.Shape.Clone()
	return spec
}

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// String returns the piece letter.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return catalog[k].Name
}

// CellValue is the value a locked cell of this kind holds on the board.
func (k Kind) CellValue() int {
	return int(k) + 1
}

// KindOfCell maps a board cell value back to its kind.
// Returns false for empty or unknown values.
func KindOfCell(v int) (Kind, bool) {
	k := Kind(v - 1)
	return k, v != 0 && k.Valid()
}

// DefaultPalette returns the built-in piece colors in catalog order.
func DefaultPalette() []core.Color {
	out := make([]core.Color, KindCount)
	for i, spec := range catalog {
		out[i] = spec.Color
	}
	return out
}
