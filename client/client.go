package client

import (
	"fmt"
	"log/slog"
	"rblock/tetris"
	"time"

	"github.com/eiannone/keyboard"
)

type tetrisGame interface {
	Start()
	GetUpdate() <-chan *tetris.Tetris
	Action(tetris.Action)
	Stop()
}

type renderer interface {
	draw(*tetris.Tetris, Standing)
}

type ranker interface {
	Submit(score uint32)
	Standing() Standing
	Updated() <-chan struct{}
	Close()
}

type Client struct {
	tetris tetrisGame
	render renderer
	ranker ranker
	logger *slog.Logger
	kbCh   <-chan keyboard.KeyEvent

	last     *tetris.Tetris
	finished int
}

type Options struct {
	NoGhost bool
	Address string
	TopK    uint32
	Seed    uint64
	Timeout time.Duration
}

func New(l *slog.Logger, o *Options) (*Client, error) {
	rc, err := NewRemoteClient(l, o.Address, o.TopK, o.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create leaderboard client: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		tetris: tetris.NewGame(o.Seed),
		render: newRender(l, o.NoGhost),
		ranker: rc,
		logger: l,
		kbCh:   kb,
	}, nil
}

// Start runs the game until the player quits. Keyboard input, game
// snapshots and leaderboard answers are all handled on this goroutine.
func (c *Client) Start() {
	c.tetris.Start()
	defer func() {
		c.tetris.Stop()
		c.ranker.Close()
	}()

	for {
		select {
		case event, ok := <-c.kbCh:
			if !ok {
				c.logger.Error("Keyboard events channel closed unexpectedly")
				return
			}
			if event.Err != nil {
				c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
				return
			}
			if isQuit(event) {
				return
			}
			if a, ok := actionFor(event); ok {
				c.tetris.Action(a)
			}
		case u := <-c.tetris.GetUpdate():
			c.update(u)
		case <-c.ranker.Updated():
			c.render.draw(c.last, c.ranker.Standing())
		}
	}
}

// update draws a snapshot and submits the final score of every run that
// ended since the previous one. Snapshots are latest-wins, so the GameOver
// frame itself may have been replaced by a restarted run.
func (c *Client) update(u *tetris.Tetris) {
	if u.Finished > c.finished {
		c.logger.Info("game over",
			slog.Int("score", u.FinalScore),
			slog.Int("runs", u.Finished),
		)
		c.ranker.Submit(uint32(u.FinalScore)) //nolint:gosec
		c.finished = u.Finished
	}
	c.last = u
	c.render.draw(u, c.ranker.Standing())
}

func isQuit(e keyboard.KeyEvent) bool {
	return e.Key == keyboard.KeyCtrlC || e.Key == keyboard.KeyEsc || e.Rune == 'q'
}

func actionFor(e keyboard.KeyEvent) (tetris.Action, bool) {
	switch {
	case e.Key == keyboard.KeyArrowDown || e.Rune == 's':
		return tetris.MoveDown, true
	case e.Key == keyboard.KeyArrowLeft || e.Rune == 'a':
		return tetris.MoveLeft, true
	case e.Key == keyboard.KeyArrowRight || e.Rune == 'd':
		return tetris.MoveRight, true
	case e.Key == keyboard.KeyArrowUp || e.Rune == 'w' || e.Rune == 'e':
		return tetris.Rotate, true
	case e.Key == keyboard.KeySpace:
		return tetris.DropDown, true
	case e.Rune == 'p':
		return tetris.PauseToggle, true
	case e.Key == keyboard.KeyEnter:
		return tetris.Restart, true
	}
	return "", false
}
