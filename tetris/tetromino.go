package tetris

import "math/rand/v2"

type Shape string

const (
	I Shape = "I"
	J Shape = "J"
	L Shape = "L"
	O Shape = "O"
	S Shape = "S"
	T Shape = "T"
	Z Shape = "Z"
)

// Shapes lists every shape the Catalog can draw.
var Shapes = []Shape{I, J, L, O, S, T, Z}

// Offset is the position of a block relative to the tetromino's pivot,
// measured in half cells. Blocks sit at cell centers so both values are odd.
type Offset struct {
	DX, DY int
}

// Cell is a position on the stack. Col grows to the right and Row grows up,
// row 0 being the floor.
type Cell struct {
	Col, Row int
}

type Tetromino struct {
	Shape  Shape
	Blocks [4]Offset

	// X and Y locate the pivot in half cells. The pivot always sits on a grid
	// corner so both values are even.
	X, Y int

	// GhostY is the number of rows the tetromino can still fall.
	GhostY int
}

// The pivot spawns on the corner between columns 5 and 6, rows 17 and 18.
// Tall shapes reach row 19 and the I reaches down to row 16.
const (
	spawnX = Width
	spawnY = 2 * (Height - 2)
)

/*
Shapes drawn on columns -1 and 0, rows 1 to -2. The pivot is the corner
shared by cells (-1,-1), (0,-1), (-1,0) and (0,0).

.	row		I		J		L		O		S		T		Z

.	1		X O		X O		O X		X X		O X		O X		X O
.	0		X O		X O		O X		O O		O O		O O		O O
.	-1		X O		O O		O O		O O		X O		O X		O X
.	-2		X O
*/
var shapeMap = map[Shape][4]Offset{
	I: {{1, 1}, {1, 3}, {1, -1}, {1, -3}},
	J: {{-1, -1}, {1, 3}, {1, -1}, {1, 1}},
	L: {{1, -1}, {-1, 3}, {-1, -1}, {-1, 1}},
	O: {{-1, 1}, {-1, -1}, {1, -1}, {1, 1}},
	S: {{1, 1}, {-1, 1}, {1, -1}, {-1, 3}},
	T: {{1, 1}, {-1, 1}, {-1, -1}, {-1, 3}},
	Z: {{1, 1}, {-1, 1}, {1, 3}, {-1, -1}},
}

func newTetromino(s Shape) *Tetromino {
	return &Tetromino{
		Shape:  s,
		Blocks: shapeMap[s],
		X:      spawnX,
		Y:      spawnY,
	}
}

// Cells returns the stack cells covered by the tetromino.
func (t *Tetromino) Cells() [4]Cell {
	var cells [4]Cell
	for i, b := range t.Blocks {
		cells[i] = Cell{
			Col: (t.X + b.DX - 1) / 2,
			Row: (t.Y + b.DY - 1) / 2,
		}
	}
	return cells
}

// moved returns a copy of the tetromino shifted by whole cells.
func (t *Tetromino) moved(col, row int) *Tetromino {
	m := *t
	m.X += 2 * col
	m.Y += 2 * row
	return &m
}

// rotated returns a copy of the tetromino turned a quarter around its pivot.
// Each block goes from (dx, dy) to (-dy, dx): counter-clockwise with rows
// growing upwards. Four turns give back the starting blocks.
func (t *Tetromino) rotated() *Tetromino {
	r := *t
	for i, b := range t.Blocks {
		r.Blocks[i] = Offset{DX: -b.DY, DY: b.DX}
	}
	return &r
}

func (t *Tetromino) copy() *Tetromino {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Catalog draws tetrominoes uniformly at random.
type Catalog struct {
	rng *rand.Rand
}

// NewCatalog returns a Catalog whose draws are fully determined by seed.
func NewCatalog(seed uint64) *Catalog {
	return &Catalog{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Generate returns a new tetromino at the spawn location.
func (c *Catalog) Generate() *Tetromino {
	return newTetromino(Shapes[c.rng.IntN(len(Shapes))])
}
