package tetris

import (
	"time"

	"github.com/MrBanana2045/Teteis/internal/core"
)

// Spawn anchor for new pieces.
const (
	SpawnX = 4
	SpawnY = 0
)

// Shape is a rectangular 0/1 matrix stored row-major.
type Shape struct {
	H, W  int
	Cells []uint8
}

// NewShape builds a shape from rows of equal length.
func NewShape(rows ...[]uint8) Shape {
	s := Shape{H: len(rows)}
	if s.H > 0 {
		s.W = len(rows[0])
	}
	s.Cells = make([]uint8, 0, s.H*s.W)
	for _, row := range rows {
		s.Cells = append(s.Cells, row...)
	}
	return s
}

// At reports the cell at row y, column x.
func (s Shape) At(x, y int) uint8 {
	return s.Cells[y*s.W+x]
}

// Filled reports whether the cell at row y, column x is part of the shape.
func (s Shape) Filled(x, y int) bool {
	return s.At(x, y) == 1
}

// Clone returns a copy that shares no storage with s.
func (s Shape) Clone() Shape {
	c := Shape{H: s.H, W: s.W, Cells: make([]uint8, len(s.Cells))}
	copy(c.Cells, s.Cells)
	return c
}

// Equal compares dimensions and every cell.
func (s Shape) Equal(o Shape) bool {
	if s.H != o.H || s.W != o.W || len(s.Cells) != len(o.Cells) {
		return false
	}
	for i := range s.Cells {
		if s.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// Rotated returns the shape turned 90 degrees clockwise.
// An H×W shape becomes W×H with new[x][H-1-y] = old[y][x].
func (s Shape) Rotated() Shape {
	r := Shape{H: s.W, W: s.H, Cells: make([]uint8, len(s.Cells))}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			r.Cells[x*r.W+(s.H-1-y)] = s.At(x, y)
		}
	}
	return r
}

// String renders the shape with '#' and '.' rows, for debugging and tests.
func (s Shape) String() string {
	buf := make([]byte, 0, s.H*(s.W+1))
	for y := 0; y < s.H; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < s.W; x++ {
			if s.Filled(x, y) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

// Template is a named, immutable tetromino definition.
type Template struct {
	Name  string
	shape Shape
}

// Shape returns a private copy of the template shape.
func (t Template) Shape() Shape {
	return t.shape.Clone()
}

// Templates is the fixed piece table, indexed by the RNG draw.
// T and L carry the same cells (a J outline) and J carries an L outline; the
// table is kept as-is so seeded sessions replay identically.
var Templates = [...]Template{
	{Name: "O", shape: NewShape(
		[]uint8{1, 1},
		[]uint8{1, 1},
	)},
	{Name: "I", shape: NewShape(
		[]uint8{1, 1, 1, 1},
	)},
	{Name: "T", shape: NewShape(
		[]uint8{1, 0, 0},
		[]uint8{1, 1, 1},
	)},
	{Name: "L", shape: NewShape(
		[]uint8{1, 0, 0},
		[]uint8{1, 1, 1},
	)},
	{Name: "J", shape: NewShape(
		[]uint8{0, 0, 1},
		[]uint8{1, 1, 1},
	)},
	{Name: "S", shape: NewShape(
		[]uint8{0, 0, 1},
		[]uint8{1, 1, 0},
	)},
	{Name: "Z", shape: NewShape(
		[]uint8{1, 1, 0},
		[]uint8{0, 1, 1},
	)},
}

// Palette is the fixed set of piece colors, indexed by the RNG draw.
var Palette = [...]core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorPink,
	core.ColorPurple,
	core.ColorSkyBlue,
}

// Piece is the active falling tetromino.
type Piece struct {
	Shape Shape
	X, Y  int           // Top-left anchor in grid cells
	Timer time.Duration // Time since the last forced descent
	Color core.Color
}

// NewPiece draws a template and then a color from rng and places the piece
// at the spawn anchor.
func NewPiece(rng *RNG) Piece {
	tmpl := Templates[rng.Range(0, len(Templates))]
	color := Palette[rng.Range(0, len(Palette))]

	return Piece{
		Shape: tmpl.Shape(),
		X:     SpawnX,
		Y:     SpawnY,
		Color: color,
	}
}

// Clone returns a deep copy, safe to rotate or move speculatively.
func (p Piece) Clone() Piece {
	c := p
	c.Shape = p.Shape.Clone()
	return c
}

// Rotate replaces the piece's shape with its clockwise rotation.
// Validate a rotated clone with Collide before rotating the live piece.
func Rotate(p *Piece) {
	p.Shape = p.Shape.Rotated()
}

// cells calls fn with the grid coordinates of every filled cell after
// applying the offset (dx, dy). Iteration stops when fn returns false.
func (p Piece) cells(dx, dy int, fn func(col, row int) bool) {
	for y := 0; y < p.Shape.H; y++ {
		for x := 0; x < p.Shape.W; x++ {
			if !p.Shape.Filled(x, y) {
				continue
			}
			if !fn(p.X+x+dx, p.Y+y+dy) {
				return
			}
		}
	}
}
