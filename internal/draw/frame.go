package draw

import (
	"bytes"
	"io"
	"strconv"
)

// maxChunkSize caps a single write so SSH channels see packet-sized writes
// instead of one large burst per frame.
const maxChunkSize = 1400

// Frame collects one frame of terminal output and writes it out in chunks.
// Cursor positions are 1-based terminal coordinates.
type Frame struct {
	out io.Writer
	buf bytes.Buffer
	num []byte // Scratch space for formatting coordinates
}

var _ io.Writer = (*Frame)(nil)

// NewFrame creates a frame that flushes to out.
func NewFrame(out io.Writer) *Frame {
	return &Frame{out: out, num: make([]byte, 0, 8)}
}

// Goto moves the cursor.
func (f *Frame) Goto(col, row int) {
	f.buf.WriteString("\033[")
	f.num = strconv.AppendInt(f.num[:0], int64(row), 10)
	f.buf.Write(f.num)
	f.buf.WriteByte(';')
	f.num = strconv.AppendInt(f.num[:0], int64(col), 10)
	f.buf.Write(f.num)
	f.buf.WriteByte('H')
}

// Text writes s starting at (col, row).
func (f *Frame) Text(col, row int, s string) {
	f.Goto(col, row)
	f.buf.WriteString(s)
}

// Escape appends a raw escape sequence.
func (f *Frame) Escape(seq string) {
	f.buf.WriteString(seq)
}

// WriteRune appends r at the cursor.
func (f *Frame) WriteRune(r rune) {
	f.buf.WriteRune(r)
}

// Write appends p at the cursor.
func (f *Frame) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// Flush writes the collected output in chunks of at most maxChunkSize bytes
// and empties the frame. Unwritten output is discarded on error.
func (f *Frame) Flush() error {
	defer f.buf.Reset()
	for f.buf.Len() > 0 {
		if _, err := f.out.Write(f.buf.Next(maxChunkSize)); err != nil {
			return err
		}
	}
	return nil
}
