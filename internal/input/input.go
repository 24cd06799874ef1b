// Package input decodes raw terminal bytes into held game controls.
package input

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/shmup/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals only report key repeats, so a held key is a stream of presses.
const keyHoldDuration = 100 * time.Millisecond

type key int

const (
	keyLeft key = iota
	keyRight
	keyUp
	keyDown
	keyFire
	keyQuit
	numKeys
)

// Stream delivers input bytes via a channel and tracks key state so that
// simultaneous keys combine.
type Stream struct {
	ch     chan byte
	held   [numKeys]time.Time // Last time each key was seen
	closed bool
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains pending input and returns the current controls.
func (s *Stream) Poll() object.Controls {
	return ReadInput(s)
}

// Reset forgets every held key.
func (s *Stream) Reset() {
	s.held = [numKeys]time.Time{}
}

// ReadInput drains all available bytes from the stream (non-blocking),
// decodes them and returns the keys held within the hold window.
func ReadInput(s *Stream) object.Controls {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	return s.snapshot(now)
}

// apply decodes bytes and updates key timestamps. Unrecognized bytes are ignored.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI (ESC [) and SS3 (ESC O) arrow sequences
		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			if k, ok := arrowKey(buf[i+2]); ok {
				s.held[k] = now
				i += 2
				continue
			}
		}

		if k, ok := byteKey(b); ok {
			s.held[k] = now
		}
	}
}

// snapshot builds controls from key state. A closed stream always quits.
func (s *Stream) snapshot(now time.Time) object.Controls {
	held := func(k key) bool {
		return !s.held[k].IsZero() && now.Sub(s.held[k]) < keyHoldDuration
	}
	return object.Controls{
		Left:  held(keyLeft),
		Right: held(keyRight),
		Up:    held(keyUp),
		Down:  held(keyDown),
		Fire:  held(keyFire),
		Quit:  s.closed || held(keyQuit),
	}
}

func arrowKey(b byte) (key, bool) {
	switch b {
	case 'A':
		return keyUp, true
	case 'B':
		return keyDown, true
	case 'C':
		return keyRight, true
	case 'D':
		return keyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (key, bool) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return keyQuit, true
	case 'a', 'A', 'j', 'J':
		return keyLeft, true
	case 'd', 'D', 'l', 'L':
		return keyRight, true
	case 'w', 'W', 'i', 'I':
		return keyUp, true
	case 's', 'S', 'k', 'K':
		return keyDown, true
	case ' ', 'f', 'F':
		return keyFire, true
	}
	return 0, false
}
