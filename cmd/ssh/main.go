package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/input"
	"github.com/tomz197/shmup/internal/loop"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	tuning, err := config.Load(config.GetEnv("SHMUP_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	games := &gameHandler{tuning: tuning, logger: logger}
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting SSH server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// gameHandler runs an independent game for every SSH session.
type gameHandler struct {
	tuning config.Tuning
	logger *log.Logger
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := h.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		size := newWindowSize(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.set(win.Width, win.Height)
			}
		}()

		if err := h.play(sess, size, logger); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

func (h *gameHandler) play(sess ssh.Session, size *windowSize, logger *log.Logger) error {
	screen := draw.NewTerminal(sess, size.get, h.tuning)
	if err := screen.Begin(); err != nil {
		return err
	}

	seed := rand.Uint64()
	driver := loop.New(input.StartStream(sess), screen, loop.NewPacer(h.tuning.TickRate), loop.Options{
		Tuning:         h.tuning,
		Rand:           rand.New(rand.NewPCG(seed, seed)),
		Logger:         logger,
		IdleWarn:       loop.DefaultIdleWarn,
		IdleDisconnect: loop.DefaultIdleDisconnect,
	})
	err := driver.Run(sess.Context())
	_ = screen.End()

	logger.Info("game finished", "ticks", driver.Ticks(), "score", driver.Arena().Score())
	if errors.Is(err, loop.ErrIdle) {
		fmt.Fprintln(sess, "Disconnected due to inactivity.")
		return nil
	}
	return err
}

// windowSize holds the latest PTY size reported by the client, packed as
// cols<<32 | rows so the renderer can read it without locking.
type windowSize struct {
	packed atomic.Uint64
}

func newWindowSize(cols, rows int) *windowSize {
	w := &windowSize{}
	w.set(cols, rows)
	return w
}

func (w *windowSize) set(cols, rows int) {
	w.packed.Store(uint64(uint32(cols))<<32 | uint64(uint32(rows)))
}

func (w *windowSize) get() (int, int, error) {
	v := w.packed.Load()
	return int(v >> 32), int(uint32(v)), nil
}

var _ draw.TermSizeFunc = (*windowSize)(nil).get
