package input

import (
	"io"
	"testing"
	"time"

	"github.com/tomz197/shmup/internal/object"
)

func newTestStream() *Stream {
	return &Stream{ch: make(chan byte, 128), now: time.Now}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  object.Controls
	}{
		{"empty", "", object.Controls{}},
		{"arrow up", "\x1b[A", object.Controls{Up: true}},
		{"arrow down", "\x1b[B", object.Controls{Down: true}},
		{"arrow right", "\x1b[C", object.Controls{Right: true}},
		{"arrow left ss3", "\x1bOD", object.Controls{Left: true}},
		{"wasd", "wasd", object.Controls{Up: true, Left: true, Down: true, Right: true}},
		{"jl", "jl", object.Controls{Left: true, Right: true}},
		{"space fires", " ", object.Controls{Fire: true}},
		{"f fires", "F", object.Controls{Fire: true}},
		{"q quits", "q", object.Controls{Quit: true}},
		{"ctrl-c quits", "\x03", object.Controls{Quit: true}},
		{"unknown bytes ignored", "xz9\t", object.Controls{}},
		{"incomplete escape ignored", "\x1b[", object.Controls{}},
		{"unknown sequence ignored", "\x1b[Z", object.Controls{}},
		{"combined", "\x1b[A \x1b[C", object.Controls{Up: true, Right: true, Fire: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			now := time.Now()
			s.apply([]byte(tt.input), now)
			if got := s.snapshot(now); got != tt.want {
				t.Errorf("controls = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHoldWindow(t *testing.T) {
	s := newTestStream()
	pressed := time.Now()
	s.apply([]byte("d"), pressed)

	if !s.snapshot(pressed.Add(keyHoldDuration / 2)).Right {
		t.Error("key should be held inside the hold window")
	}
	if s.snapshot(pressed.Add(keyHoldDuration)).Right {
		t.Error("key should be released after the hold window")
	}
}

func TestReset(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	s.apply([]byte(" d"), now)
	s.Reset()

	if got := s.snapshot(now); got.Any() {
		t.Errorf("controls after Reset = %+v, want none", got)
	}
}

func TestReadInput_DrainsChannel(t *testing.T) {
	s := newTestStream()
	for _, b := range []byte("\x1b[Bf") {
		s.ch <- b
	}

	got := ReadInput(s)
	if !got.Down || !got.Fire || got.Quit {
		t.Errorf("controls = %+v, want down and fire", got)
	}
	if len(s.ch) != 0 {
		t.Errorf("%d bytes left in the channel", len(s.ch))
	}
}

func TestStream_ClosedReaderQuits(t *testing.T) {
	pr, pw := io.Pipe()
	s := StartStream(pr)

	if _, err := pw.Write([]byte("a")); err != nil {
		t.Fatal(err)
	}
	pw.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Poll().Quit {
			// Stays quit without spinning on the closed channel
			if !s.Poll().Quit {
				t.Error("closed stream stopped reporting quit")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("closed stream never reported quit")
}
