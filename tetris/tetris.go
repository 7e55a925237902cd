// Package tetris contains the logic of the game.
// The rules are deterministic: nothing here reads the clock or blocks, the
// caller decides when gravity, input and checks run.
package tetris

import (
	"fmt"
	"sync"
)

type Action string

const (
	MoveLeft    Action = "left"   // Moves the Tetromino one step to the left.
	MoveRight   Action = "right"  // Moves the Tetromino one step to the right.
	MoveDown    Action = "down"   // Moves the Tetromino one step down without locking it.
	DropDown    Action = "drop"   // Drops the Tetromino down the stack and locks it.
	Rotate      Action = "rotate" // Rotates the Tetromino a quarter around its pivot.
	PauseToggle Action = "pause"  // Pauses or resumes the game.
	Restart     Action = "restart"
)

type RunState int

const (
	Running RunState = iota
	// Locking covers lock, line clear and respawn. It never outlives the
	// call that entered it.
	Locking
	GameOver
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Locking:
		return "locking"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

type Tetris struct {
	Stack        *Board
	Tetromino    *Tetromino
	NexTetromino *Tetromino
	Score        int
	Level        int
	LinesClear   int
	State        RunState
	Paused       bool

	// Finished counts the runs that reached GameOver and FinalScore is the
	// score the latest of them ended with. Restart keeps both.
	Finished   int
	FinalScore int

	catalog *Catalog
	mu      sync.RWMutex
}

// New returns a running game with its first tetromino already spawned.
func New(seed uint64) *Tetris {
	t := &Tetris{catalog: NewCatalog(seed)}
	t.reset()
	return t
}

func (t *Tetris) reset() {
	t.Stack = NewBoard()
	t.Score = 0
	t.Level = 1
	t.LinesClear = 0
	t.Paused = false
	t.State = Running
	t.NexTetromino = t.catalog.Generate()
	t.setTetromino()
}

// Gravity moves the Tetromino one row down. When it can't move it is
// locked into the stack, complete lines are cleared and the next
// Tetromino spawns.
func (t *Tetris) Gravity() {
	if t.Paused || t.State != Running || t.Tetromino == nil {
		return
	}
	if t.isCollision(0, -1, t.Tetromino) {
		t.next()
		return
	}
	t.Tetromino.Y -= 2
	t.Tetromino.GhostY--
}

// Action applies a player's input. Moves that collide are ignored.
func (t *Tetris) Action(a Action) {
	switch a {
	case PauseToggle:
		if t.State != GameOver {
			t.Paused = !t.Paused
		}
		return
	case Restart:
		t.reset()
		return
	}
	if t.Paused || t.State != Running || t.Tetromino == nil {
		return
	}
	switch a {
	case MoveLeft:
		t.move(-1, 0)
	case MoveRight:
		t.move(1, 0)
	case MoveDown:
		t.move(0, -1)
	case DropDown:
		t.drop()
	case Rotate:
		t.rotate()
	}
}

// Check ends the game when the stack reaches the danger row. It returns
// true when the state changed.
func (t *Tetris) Check() bool {
	if t.Paused || t.State == GameOver {
		return false
	}
	if t.overlaps() {
		panic(fmt.Sprintf("tetris: %s tetromino at %v overlaps the stack", t.Tetromino.Shape, t.Tetromino.Cells()))
	}
	if t.isGameOver() {
		t.end()
		return true
	}
	return false
}

func (t *Tetris) move(col, row int) {
	if t.isCollision(col, row, t.Tetromino) {
		return
	}
	t.Tetromino = t.Tetromino.moved(col, row)
	t.Tetromino.GhostY = t.dropDownDelta()
}

func (t *Tetris) drop() {
	t.Tetromino = t.Tetromino.moved(0, -t.dropDownDelta())
	t.next()
}

// rotate turns the Tetromino around its pivot. There are no wall kicks:
// a rotation that collides leaves the Tetromino as it was.
func (t *Tetris) rotate() {
	r := t.Tetromino.rotated()
	if !t.Stack.fits(r) {
		return
	}
	t.Tetromino = r
	t.Tetromino.GhostY = t.dropDownDelta()
}

// isCollision receives the desired row and col offsets and reports whether
// the Tetromino would leave the board or overlap the stack there.
func (t *Tetris) isCollision(col, row int, tm *Tetromino) bool {
	return !t.Stack.fits(tm.moved(col, row))
}

func (t *Tetris) dropDownDelta() int {
	var delta int
	for !t.isCollision(0, -(delta + 1), t.Tetromino) {
		delta++
	}
	return delta
}

// next locks the Tetromino, clears lines and spawns the following one.
func (t *Tetris) next() {
	t.State = Locking
	t.toStack()
	t.clearLines()
	t.setLevel()
	if t.isGameOver() {
		t.end()
		return
	}
	t.setTetromino()
}

func (t *Tetris) toStack() {
	t.Stack.Lock(t.Tetromino.Cells(), t.Tetromino.Shape)
	t.Tetromino = nil
}

// clearLines removes full rows from the bottom up and returns how many
// were removed.
func (t *Tetris) clearLines() int {
	var cleared int
	for row := 0; row < Height; {
		if t.Stack.RowCount(row) == Width {
			t.Stack.RemoveRow(row)
			cleared++
			continue
		}
		row++
	}
	t.Score += scoreDelta(cleared)
	t.LinesClear += cleared
	return cleared
}

// scoreDelta grows with the square of the lines cleared at once.
func scoreDelta(lines int) int {
	cells := lines * Width
	return cells * cells / (Width * Width)
}

func (t *Tetris) setLevel() {
	t.Level = t.LinesClear/10 + 1
}

func (t *Tetris) end() {
	t.State = GameOver
	t.Finished++
	t.FinalScore = t.Score
}

func (t *Tetris) isGameOver() bool {
	return t.Stack.topRow() >= DangerRow
}

// setTetromino spawns the next Tetromino and drafts a new one. A spawn
// that overlaps the stack ends the game.
func (t *Tetris) setTetromino() {
	t.Tetromino = t.NexTetromino
	t.NexTetromino = t.catalog.Generate()
	if !t.Stack.fits(t.Tetromino) {
		t.Tetromino = nil
		t.end()
		return
	}
	t.State = Running
	t.Tetromino.GhostY = t.dropDownDelta()
}

// overlaps reports whether the Tetromino shares a cell with the stack or
// sits outside the board.
func (t *Tetris) overlaps() bool {
	return t.Tetromino != nil && !t.Stack.fits(t.Tetromino)
}

func (t *Tetris) copy() *Tetris {
	return &Tetris{
		Stack:        t.Stack.copy(),
		Tetromino:    t.Tetromino.copy(),
		NexTetromino: t.NexTetromino.copy(),
		Score:        t.Score,
		Level:        t.Level,
		LinesClear:   t.LinesClear,
		State:        t.State,
		Paused:       t.Paused,
		Finished:     t.Finished,
		FinalScore:   t.FinalScore,
	}
}
