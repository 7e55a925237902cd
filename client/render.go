package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"rblock/tetris"
	"strings"
	"text/template"
)

const (
	// ASCII colors.
	Cyan    = "36"
	Blue    = "34"
	Orange  = "38;5;214"
	Yellow  = "33"
	Green   = "32"
	Red     = "31"
	Magenta = "35"

	resetPos  = "\033[H" // Reset cursor position to 0,0
	clearLine = "\033[K" // Erase to the end of the line

	maxTopLines = 6
)

//go:embed "layout.tmpl"
var layout string

var colorMap = map[tetris.Shape]string{
	tetris.I: Cyan,
	tetris.J: Blue,
	tetris.L: Orange,
	tetris.O: Yellow,
	tetris.S: Green,
	tetris.Z: Red,
	tetris.T: Magenta,
}

type templateData struct {
	Local    *tetris.Tetris
	Standing Standing
	NoGhost  bool
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(l *slog.Logger, noGhost bool) *render {
	return &render{
		writer:       os.Stdout,
		logger:       l,
		template:     loadTemplate(),
		templateData: &templateData{NoGhost: noGhost},
	}
}

// draw repaints the whole screen. Every side panel line ends with an erase
// so text from a previous frame, like the game over banner, never lingers.
func (r *render) draw(t *tetris.Tetris, s Standing) {
	r.templateData.Local = t
	r.templateData.Standing = s
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in draw()", slog.String("error", err.Error()))
	}
}

func loadTemplate() *template.Template {
	funcMap := template.FuncMap{
		"localStack": localStack,
		"side":       side,
		"footer":     footer,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	l = strings.ReplaceAll(l, "rblock", "\033[1mrblock\033[0m")
	return template.Must(template.New("layout").Funcs(funcMap).Parse(l))
}

func block(s tetris.Shape) string {
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", colorMap[s])
}

func localStack(t *templateData) [tetris.Height][tetris.Width]string {
	rendered := [tetris.Height][tetris.Width]string{}
	for y := range tetris.Height {
		for x := range tetris.Width {
			rendered[y][x] = "  "
		}
	}
	if t == nil || t.Local == nil {
		return rendered
	}

	// the template ranges from the top of the screen down, rows in the
	// stack grow upwards so every row is flipped.
	flip := func(row int) int { return tetris.Height - 1 - row }

	for y, row := range t.Local.Stack.Grid() {
		for x, s := range row {
			if s != "" {
				rendered[flip(y)][x] = block(s)
			}
		}
	}

	if tm := t.Local.Tetromino; tm != nil {
		if !t.NoGhost {
			for _, c := range tm.Cells() {
				rendered[flip(c.Row-tm.GhostY)][c.Col] = "[]"
			}
		}
		for _, c := range tm.Cells() {
			rendered[flip(c.Row)][c.Col] = block(tm.Shape)
		}
	}
	return rendered
}

// nextPiece draws the spawn orientation of the next tetromino in a grid two
// cells wide and four rows high.
func nextPiece(t *templateData) []string {
	rendered := []string{"    ", "    ", "    ", "    "}
	if t == nil || t.Local == nil || t.Local.NexTetromino == nil {
		return rendered
	}
	grid := [4][2]bool{}
	for _, b := range t.Local.NexTetromino.Blocks {
		col := (b.DX + 1) / 2
		row := (3 - b.DY) / 2
		if col < 0 || col > 1 || row < 0 || row > 3 {
			continue
		}
		grid[row][col] = true
	}
	for i, r := range grid {
		var sb strings.Builder
		for _, v := range r {
			if v {
				sb.WriteString(block(t.Local.NexTetromino.Shape))
				continue
			}
			sb.WriteString("  ")
		}
		rendered[i] = sb.String()
	}
	return rendered
}

func rankLine(s Standing) string {
	if !s.Known {
		return " Rank: ?"
	}
	return fmt.Sprintf(" Rank: #%d (score %d)", s.Rank+1, s.Score)
}

func statusLine(t *tetris.Tetris) string {
	switch {
	case t == nil:
		return ""
	case t.State == tetris.GameOver:
		return " \033[1mGAME OVER\033[0m  enter to restart"
	case t.Paused:
		return " \033[1mPAUSED\033[0m"
	}
	return ""
}

// side returns the text right of the board for the screen row i.
func side(t *templateData, i int) string {
	var out string
	switch {
	case t.Local == nil:
	case i == 0:
		out = fmt.Sprintf(" Score: %d", t.Local.Score)
	case i == 1:
		out = fmt.Sprintf(" Level: %d", t.Local.Level)
	case i == 2:
		out = fmt.Sprintf(" Lines: %d", t.Local.LinesClear)
	case i == 4:
		out = " Next:"
	case i >= 5 && i <= 8:
		out = "   " + nextPiece(t)[i-5]
	case i == 10:
		out = rankLine(t.Standing)
	case i == 11 && len(t.Standing.Top) > 0:
		out = " Top:"
	case i >= 12 && i < 12+maxTopLines && i-12 < len(t.Standing.Top):
		out = fmt.Sprintf("  %d. %d", i-11, t.Standing.Top[i-12])
	case i == tetris.Height-1:
		out = statusLine(t.Local)
	}
	return out + clearLine
}

func footer() string {
	return " ←→ move  ↑ rotate  ↓ down  space drop  p pause  enter restart  q quit" + clearLine
}
