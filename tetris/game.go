package tetris

import (
	"math"
	"sync"
	"time"
)

const (
	InputInterval = time.Second / 16
	CheckInterval = time.Second / 60
)

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Game runs a Tetris on three tickers: gravity, input polling and checks.
// Every mutation happens on the listen goroutine so ticks never interleave.
type Game struct {
	updateCh chan *Tetris
	actionCh chan Action
	doneCh   chan struct{}
	tetris   *Tetris

	gravity, input, check Ticker

	pending  []Action
	level    int
	stopOnce sync.Once
}

func NewGame(seed uint64) *Game {
	return NewConfigurableGame(
		New(seed),
		newWrappedTicker(setTime(1)),
		newWrappedTicker(InputInterval),
		newWrappedTicker(CheckInterval),
	)
}

func NewConfigurableGame(t *Tetris, gravity, input, check Ticker) *Game {
	return &Game{
		updateCh: make(chan *Tetris, 1),
		actionCh: make(chan Action),
		doneCh:   make(chan struct{}),
		tetris:   t,
		gravity:  gravity,
		input:    input,
		check:    check,
	}
}

func (g *Game) Start() {
	g.level = g.tetris.Level
	g.gravity.Reset(setTime(g.level))
	g.publish()
	go g.listen()
}

// Stop halts the tickers and the listen loop. Calling it again is a no-op.
func (g *Game) Stop() {
	g.stopOnce.Do(func() {
		g.gravity.Stop()
		g.input.Stop()
		g.check.Stop()
		close(g.doneCh)
	})
}

// Action queues a player's input for the next input tick.
func (g *Game) Action(a Action) {
	select {
	case g.actionCh <- a:
	case <-g.doneCh:
	}
}

// GetUpdate returns the channel snapshots are published on. Only the
// latest snapshot is kept, a slow reader never holds the game back.
func (g *Game) GetUpdate() <-chan *Tetris {
	return g.updateCh
}

// Read returns a copy of the current Tetris status that's safe to read concurrently.
func (g *Game) Read() *Tetris {
	g.tetris.mu.RLock()
	defer g.tetris.mu.RUnlock()
	return g.tetris.copy()
}

func (g *Game) listen() {
	for {
		var changed bool
		select {
		case <-g.gravity.C():
			g.tetris.mu.Lock()
			g.tetris.Gravity()
			g.tetris.mu.Unlock()
			changed = true
		case <-g.input.C():
			if len(g.pending) == 0 {
				continue
			}
			g.tetris.mu.Lock()
			for _, a := range g.pending {
				g.tetris.Action(a)
			}
			g.tetris.mu.Unlock()
			g.pending = g.pending[:0]
			changed = true
		case <-g.check.C():
			g.tetris.mu.Lock()
			changed = g.tetris.Check()
			g.tetris.mu.Unlock()
		case a := <-g.actionCh:
			g.pending = append(g.pending, a)
		case <-g.doneCh:
			return
		}
		if changed {
			g.setTimer()
			g.publish()
		}
	}
}

// setTimer speeds gravity up when the level changes.
func (g *Game) setTimer() {
	if g.tetris.Level == g.level {
		return
	}
	g.level = g.tetris.Level
	g.gravity.Reset(setTime(g.level))
}

func (g *Game) publish() {
	s := g.Read()
	select {
	case g.updateCh <- s:
		return
	default:
	}
	// drop the stale snapshot nobody picked up yet.
	select {
	case <-g.updateCh:
	default:
	}
	select {
	case g.updateCh <- s:
	default:
	}
}

func setTime(level int) time.Duration {
	// setTime() sets the duration for the ticker that will progress the
	// tetromino further down the stack. Based on https://tetris.wiki/Marathon
	//
	// Time = (0.8-((Level-1)*0.007))^(Level-1)
	switch {
	case level < 1:
		level = 1
	case level > 20:
		level = 20
	}
	seconds := math.Pow(0.8-float64(level-1)*0.007, float64(level-1))

	return time.Duration(seconds * float64(time.Second))
}
