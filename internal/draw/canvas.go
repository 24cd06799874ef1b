package draw

import (
	"math"
	"slices"
	"strings"

	"github.com/tomz197/shmup/internal/render"
)

// Canvas is a monochrome pixel buffer shown with half-block characters, so
// every terminal cell holds two vertically stacked pixels. Drawing happens in
// arena units which the canvas scales to its pixel grid. Render only repaints
// the cells that changed since the previous Render.
type Canvas struct {
	cols, rows int
	pixels     []bool // cols × rows*2, row-major
	shown      []rune // Cell contents on screen; 0 when unknown

	arenaW, arenaH float64
	sx, sy         float64 // Pixels per arena unit

	offCol, offRow int // Cells between the terminal edge and the canvas

	crossings []float64 // Scanline scratch
	points    []render.Vec
}

// NewCanvas creates a cols × rows canvas showing an arena of the given size.
func NewCanvas(cols, rows int, arenaW, arenaH float64) *Canvas {
	c := &Canvas{arenaW: arenaW, arenaH: arenaH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas's cell size. The arena size stays the same.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols, c.rows = cols, rows
		c.pixels = make([]bool, cols*rows*2)
		c.shown = make([]rune, cols*rows)
	}
	c.sx = float64(cols) / c.arenaW
	c.sy = float64(rows*2) / c.arenaH
}

// SetOffset places the canvas's top-left cell at (col+1, row+1). Moving the
// canvas repaints it.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offCol || row != c.offRow {
		c.ForceRedraw()
	}
	c.offCol, c.offRow = col, row
}

// Clear unsets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw forgets what is on screen so the next Render repaints every cell.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// Invalidate marks n cells from (col, row), 1-based, as overwritten by
// something else, such as a text overlay.
func (c *Canvas) Invalidate(col, row, n int) {
	if row < 1 || row > c.rows {
		return
	}
	line := c.shown[(row-1)*c.cols : row*c.cols]
	for x := max(col-1, 0); x < min(col-1+n, c.cols); x++ {
		line[x] = 0
	}
}

func (c *Canvas) plot(px, py int) {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 {
		return
	}
	c.pixels[py*c.cols+px] = true
}

// SetFloat sets the pixel under the arena point (x, y).
func (c *Canvas) SetFloat(x, y float64) {
	c.plot(int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy)))
}

// FillRect fills an arena rectangle. It always covers at least one pixel so
// small sprites stay visible on small terminals.
func (c *Canvas) FillRect(x, y, w, h float64) {
	left, top := int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy))
	right := max(int(math.Ceil((x+w)*c.sx)), left+1)
	bottom := max(int(math.Ceil((y+h)*c.sy)), top+1)

	left, top = max(left, 0), max(top, 0)
	right, bottom = min(right, c.cols), min(bottom, c.rows*2)
	for py := top; py < bottom; py++ {
		for px := left; px < right; px++ {
			c.pixels[py*c.cols+px] = true
		}
	}
}

// DrawLine plots the segment from a to b, stepping once per pixel along its
// longer axis.
func (c *Canvas) DrawLine(a, b render.Vec) {
	ax, ay := a.X*c.sx, a.Y*c.sy
	dx, dy := b.X*c.sx-ax, b.Y*c.sy-ay
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.plot(int(ax), int(ay))
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(int(math.Round(ax+dx*t)), int(math.Round(ay+dy*t)))
	}
}

// FillPolygon fills the polygon with an even-odd scanline pass and then traces
// its outline so thin shapes keep their edges.
func (c *Canvas) FillPolygon(points []render.Vec) {
	if len(points) < 3 {
		return
	}

	top, bottom := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		top, bottom = min(top, p.Y), max(bottom, p.Y)
	}
	first := max(int(math.Floor(top*c.sy)), 0)
	last := min(int(math.Ceil(bottom*c.sy)), c.rows*2-1)

	for py := first; py <= last; py++ {
		// Scanline through the pixel centers, back in arena units
		y := (float64(py) + 0.5) / c.sy

		c.crossings = c.crossings[:0]
		prev := points[len(points)-1]
		for _, p := range points {
			if (prev.Y <= y) != (p.Y <= y) {
				x := prev.X + (y-prev.Y)/(p.Y-prev.Y)*(p.X-prev.X)
				c.crossings = append(c.crossings, x*c.sx)
			}
			prev = p
		}
		slices.Sort(c.crossings)

		for i := 0; i+1 < len(c.crossings); i += 2 {
			for px := int(math.Ceil(c.crossings[i])); px <= int(math.Floor(c.crossings[i+1])); px++ {
				c.plot(px, py)
			}
		}
	}

	prev := points[len(points)-1]
	for _, p := range points {
		c.DrawLine(prev, p)
		prev = p
	}
}

// Points returns a scratch slice of n points, valid until the next call.
func (c *Canvas) Points(n int) []render.Vec {
	if cap(c.points) < n {
		c.points = make([]render.Vec, n)
	}
	return c.points[:n]
}

// cell returns the character for the cell at 0-based (col, row).
func (c *Canvas) cell(col, row int) rune {
	var bits int
	if c.pixels[row*2*c.cols+col] {
		bits |= 2
	}
	if c.pixels[(row*2+1)*c.cols+col] {
		bits |= 1
	}
	return halfBlocks[bits]
}

// Render writes the changed cells to f. Runs of adjacent changes share one
// cursor move.
func (c *Canvas) Render(f *Frame) {
	for row := range c.rows {
		next := -1 // Column the cursor will print at, if known
		for col := range c.cols {
			ch := c.cell(col, row)
			i := row*c.cols + col
			if c.shown[i] == ch {
				continue
			}
			c.shown[i] = ch
			if next != col {
				f.Goto(col+1+c.offCol, row+1+c.offRow)
			}
			f.WriteRune(ch)
			next = col + 1
		}
	}
}

// RenderBorder frames the canvas in the letterbox margins. Only the sides
// that have a margin get a line, and corners need margins on both axes.
func (c *Canvas) RenderBorder(f *Frame) {
	left, right := c.offCol, c.offCol+c.cols+1
	top, bottom := c.offRow, c.offRow+c.rows+1
	sides, caps := left >= 1, top >= 1

	if caps {
		bar := strings.Repeat("─", c.cols)
		if sides {
			f.Text(left, top, "┌"+bar+"┐")
			f.Text(left, bottom, "└"+bar+"┘")
		} else {
			f.Text(left+1, top, bar)
			f.Text(left+1, bottom, bar)
		}
	}
	if sides {
		for row := top + 1; row < bottom; row++ {
			f.Text(left, row, "│")
			f.Text(right, row, "│")
		}
	}
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }
