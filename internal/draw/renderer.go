package draw

import (
	"io"

	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/render"
)

// Fallback size when the terminal cannot report one.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// Terminal renders frames to an ANSI terminal. The arena is letterboxed to
// keep its aspect ratio and framed by a border when the terminal is larger.
type Terminal struct {
	out      *Frame
	canvas   *Canvas
	sizeFunc TermSizeFunc

	sheet  object.Sheet
	width  float64 // Arena size in logical units
	height float64
	stars  map[object.Sprite][]render.Star

	score  string
	banner []string

	cols, rows int // Terminal size at the last resize
}

var _ object.Renderer = (*Terminal)(nil)

// NewTerminal creates a renderer writing to w. sizeFunc reports the terminal
// size; nil uses the process's stdout.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc, t config.Tuning) *Terminal {
	if sizeFunc == nil {
		sizeFunc = StdoutSize
	}
	width, height := t.Arena.Width, t.Arena.Height
	stars := make(map[object.Sprite][]render.Star)
	for _, id := range []object.Sprite{object.SpriteStarsNear, object.SpriteStarsMid, object.SpriteStarsFar} {
		stars[id] = render.Starfield(id, width, height)
	}
	return &Terminal{
		out:      NewFrame(w),
		canvas:   NewCanvas(fallbackCols, fallbackRows, width, height),
		sizeFunc: sizeFunc,
		sheet:    object.NewSheet(t),
		width:    width,
		height:   height,
		stars:    stars,
	}
}

// Begin prepares the terminal for drawing.
func (t *Terminal) Begin() error {
	t.out.Escape(seqHideCursor + seqClearScreen)
	t.canvas.ForceRedraw()
	return t.out.Flush()
}

// End clears the screen and restores the cursor.
func (t *Terminal) End() error {
	t.out.Escape(seqClearScreen + seqShowCursor)
	return t.out.Flush()
}

// Clear starts a new frame, picking up terminal resizes.
func (t *Terminal) Clear() {
	t.resize()
	t.canvas.Clear()
	t.score = ""
	t.banner = t.banner[:0]
}

func (t *Terminal) resize() {
	cols, rows, err := t.sizeFunc()
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = fallbackCols, fallbackRows
	}
	if cols == t.cols && rows == t.rows {
		return
	}
	t.cols, t.rows = cols, rows

	w, h, offCol, offRow := fitArena(cols, rows, t.width, t.height)
	t.canvas.Resize(w, h)
	t.canvas.SetOffset(offCol, offRow)
	t.canvas.ForceRedraw()

	t.out.Escape(seqClearScreen)
	t.canvas.RenderBorder(t.out)
}

// fitArena returns the largest canvas with the arena's proportions that fits
// the terminal, leaving room for a border when letterboxed, and its offsets.
// Half-block pixels are square, so a cell is one pixel wide and two tall.
func fitArena(cols, rows int, arenaW, arenaH float64) (w, h, offCol, offRow int) {
	widthFor := func(rows int) int { return int(float64(rows*2) * arenaW / arenaH) }
	heightFor := func(cols int) int { return int(float64(cols) * arenaH / arenaW / 2) }

	w, h = cols, rows
	if cols > widthFor(rows) {
		w = widthFor(rows)
		if cols-w < 2 && rows > 2 {
			h = rows - 2
			w = widthFor(h)
		}
	} else {
		h = heightFor(cols)
		if rows-h < 2 && cols > 2 {
			w = cols - 2
			h = heightFor(w)
		}
	}
	w, h = max(w, 1), max(h, 1)
	return w, h, (cols - w) / 2, (rows - h) / 2
}

// DrawSprite draws a sprite with its top-left corner at (x, y).
func (t *Terminal) DrawSprite(id object.Sprite, x, y float64) {
	size := t.sheet[id]

	switch id {
	case object.SpriteBackdrop, object.SpriteNebula:
		// Solid fills have no monochrome rendition
	case object.SpriteStarsNear, object.SpriteStarsMid, object.SpriteStarsFar:
		for _, s := range t.stars[id] {
			t.canvas.SetFloat(x+s.X, y+s.Y)
		}
	case object.SpritePlayerProjectile, object.SpriteEnemyProjectile:
		bx, by, bw, bh := render.Bolt()
		t.canvas.FillRect(x+bx*size.W, y+by*size.H, bw*size.W, bh*size.H)
	default:
		shape := render.Shape(id)
		if shape == nil {
			t.canvas.FillRect(x, y, size.W, size.H)
			return
		}
		points := t.canvas.Points(len(shape))
		for i, p := range shape {
			points[i] = render.Vec{X: x + p.X*size.W, Y: y + p.Y*size.H}
		}
		t.canvas.FillPolygon(points)
	}
}

// DrawScore queues the score readout for the top-right corner.
func (t *Terminal) DrawScore(score int) {
	t.score = render.ScoreText(score)
}

// DrawBanner queues lines of text centered over the arena.
func (t *Terminal) DrawBanner(lines ...string) {
	t.banner = append(t.banner[:0], lines...)
}

// Flush renders the canvas and text overlays and writes the frame.
func (t *Terminal) Flush() error {
	t.canvas.Render(t.out)

	cols := t.canvas.Cols()
	if t.score != "" {
		t.writeText(cols-len(t.score), 1, t.score)
	}

	top := (t.canvas.Rows()-len(t.banner))/2 + 1
	for i, line := range t.banner {
		if line == "" {
			continue
		}
		t.writeText((cols-len(line))/2+1, top+i, line)
	}

	return t.out.Flush()
}

// writeText writes an overlay at canvas cell (col, row) and marks the cells
// beneath it for repaint.
func (t *Terminal) writeText(col, row int, s string) {
	col = max(col, 1)
	if len(s) > t.canvas.Cols()-col+1 {
		s = s[:max(t.canvas.Cols()-col+1, 0)]
	}
	if s == "" || row < 1 || row > t.canvas.Rows() {
		return
	}
	t.out.Text(col+t.canvas.offCol, row+t.canvas.offRow, s)
	t.canvas.Invalidate(col, row, len(s))
}
