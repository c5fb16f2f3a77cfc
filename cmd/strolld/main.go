package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/lowfold/stroll/internal/engine"
	"github.com/lowfold/stroll/internal/ui"
)

// sessionGate caps how many walkers a single address may have wandering at
// once. Each session holds one slot for its whole lifetime.
type sessionGate struct {
	mu    sync.Mutex
	slots map[string]int
	limit int
}

func newSessionGate(limit int) *sessionGate {
	return &sessionGate{slots: make(map[string]int), limit: limit}
}

func (g *sessionGate) acquire(addr string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.slots[addr] >= g.limit {
		return false
	}
	g.slots[addr]++
	return true
}

func (g *sessionGate) release(addr string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.slots[addr]--
	if g.slots[addr] <= 0 {
		delete(g.slots, addr)
	}
}

func (g *sessionGate) middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		addr := sessionAddr(s)
		if !g.acquire(addr) {
			log.Warn("session refused, walker limit reached", "addr", addr, "limit", g.limit)
			fmt.Fprintf(s, "All %d walker slots for your address are in use. Come back later.\r\n", g.limit)
			s.Close()
			return
		}
		log.Info("walker connected", "addr", addr)

		next(s)

		g.release(addr)
		log.Info("walker left", "addr", addr)
	}
}

func sessionAddr(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

func main() {
	addr := flag.String("addr", "0.0.0.0:2322", "address to listen on")
	keyPath := flag.String("hostkey", os.Getenv("STROLL_PRIVATE_KEY_PATH"), "ssh host key path")
	walkersPerAddr := flag.Int("walkers-per-addr", 2, "concurrent sessions allowed per address")
	flag.Parse()

	log.SetLevel(log.DebugLevel)

	gate := newSessionGate(*walkersPerAddr)

	sshServer, err := wish.NewServer(
		wish.WithAddress(*addr),
		wish.WithHostKeyPath(*keyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler),
			logging.Middleware(),
			activeterm.Middleware(),
			gate.middleware,
		),
	)
	if err != nil {
		log.Fatal("could not configure ssh server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("serving walks over ssh", "addr", *addr)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("listen failed", "error", err)
			done <- nil
		}
	}()

	<-done

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("shutdown failed", "error", err)
	}
}

// sessionHandler spins up one world per SSH session. Sessions never share
// state; each walker wanders its own copy of the map.
func sessionHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	cfg := engine.DefaultConfig()
	sessionLogger := log.With("session", sshSession.Context().SessionID())

	controllerModel := ui.NewControllerModel(cfg, sessionLogger, pty.Window.Width, pty.Window.Height)

	return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
}
