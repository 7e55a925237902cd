package tetris

import (
	"sync"
	"time"
)

// MockTicker is a mock implementation of the ticker interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	last        time.Duration
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}

func (m *MockTicker) Reset(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
	m.last = d
}

func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}

func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// LastReset returns the duration of the latest Reset call.
func (m *MockTicker) LastReset() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// NewTestGame creates a game around a specific TestTetris and returns the
// game with manual gravity, input and check tickers.
func NewTestGame(t *Tetris) (*Game, *MockTicker, *MockTicker, *MockTicker) {
	gravity, input, check := NewMockTicker(), NewMockTicker(), NewMockTicker()
	return NewConfigurableGame(t, gravity, input, check), gravity, input, check
}

// NewTestTetris creates a new Tetris with an empty stack where both the
// current and the next tetromino have the given shape.
func NewTestTetris(shape Shape) *Tetris {
	t := &Tetris{
		Stack:        NewBoard(),
		Tetromino:    newTetromino(shape),
		NexTetromino: newTetromino(shape),
		Level:        1,
		catalog:      NewCatalog(1),
	}
	t.Tetromino.GhostY = t.dropDownDelta()
	return t
}
