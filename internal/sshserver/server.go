// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"

	"radix-cli/internal/convert"
	"radix-cli/internal/session"
)

const (
	// StateCreated indicates the server has been created but not started.
	StateCreated ServerState = iota
	// StateStarting indicates the server is in the process of starting.
	StateStarting
	// StateRunning indicates the server is running and accepting connections.
	StateRunning
	// StateStopping indicates the server is shutting down.
	StateStopping
	// StateStopped indicates the server has stopped (terminal state).
	StateStopped
	// StateFailed indicates the server failed to start or encountered a
	// fatal error (terminal state).
	StateFailed
)

// ErrAlreadyStarted is returned when Start is called on a server that has
// left the created state.
var ErrAlreadyStarted = errors.New("server already started")

type (
	// ServerState represents the lifecycle state of the server.
	ServerState int32

	// Server serves conversion sessions over SSH.
	// A Server instance is single-use: once stopped or failed, create a
	// new instance.
	Server struct {
		// Immutable configuration (set at creation, never modified)
		cfg    Config
		engine convert.Engine
		logger *log.Logger

		// State management (atomic for lock-free reads)
		state atomic.Int32

		// Initialized during Start() - protected by mu for writes
		mu       sync.Mutex
		srv      *ssh.Server
		listener net.Listener
		addr     string // Actual bound address (including resolved port)
		lastErr  error

		// Closed when the serve goroutine exits.
		served chan struct{}
	}
)

// String returns a human-readable state name.
func (s ServerState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// New creates a server from a validated config. engine selects the
// conversion engine used by every session; logger may be nil for a
// default stderr logger.
func New(cfg Config, engine convert.Engine, logger *log.Logger) (*Server, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "radix-ssh"})
	}
	return &Server{
		cfg:    cfg,
		engine: engine,
		logger: logger,
		served: make(chan struct{}),
	}, nil
}

// State returns the server's current lifecycle state.
func (s *Server) State() ServerState {
	return ServerState(s.state.Load())
}

// Addr returns the actual bound address after a successful Start,
// including the kernel-resolved port when Port was 0.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Err returns the fatal error recorded when the server entered StateFailed.
func (s *Server) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Start binds the listener and begins accepting connections. It returns
// once the server is accepting, or with the failure that prevented it.
// Start can be called at most once.
func (s *Server) Start(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateStarting)) {
		return fmt.Errorf("%w: state is %s", ErrAlreadyStarted, s.State())
	}

	startupCtx, cancel := context.WithTimeout(ctx, s.cfg.StartupTimeout)
	defer cancel()

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var lc net.ListenConfig
	listener, err := lc.Listen(startupCtx, "tcp", addr)
	if err != nil {
		return s.fail(fmt.Errorf("failed to listen on %s: %w", addr, err))
	}

	srv, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(s.cfg.HostKeyPath),
		wish.WithMiddleware(
			activeterm.Middleware(),
			s.sessionMiddleware(),
		),
	)
	if err != nil {
		_ = listener.Close() // Best-effort cleanup on error
		return s.fail(fmt.Errorf("failed to create SSH server: %w", err))
	}

	s.mu.Lock()
	s.srv = srv
	s.listener = listener
	s.addr = listener.Addr().String()
	s.mu.Unlock()

	go s.serve()

	s.state.Store(int32(StateRunning))
	s.logger.Info("SSH server started", "address", s.addr)
	return nil
}

// Stop gracefully stops the server, waiting up to ShutdownTimeout for
// open sessions to drain. Safe to call multiple times; subsequent calls
// are no-ops.
func (s *Server) Stop() error {
	if !s.state.CompareAndSwap(int32(StateRunning), int32(StateStopping)) {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		s.logger.Warn("SSH server shutdown", "error", err)
	}

	<-s.served
	s.state.Store(int32(StateStopped))
	s.logger.Info("SSH server stopped")
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// serve runs the accept loop until shutdown.
func (s *Server) serve() {
	defer close(s.served)

	s.mu.Lock()
	srv, listener := s.srv, s.listener
	s.mu.Unlock()

	if err := srv.Serve(listener); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		s.state.Store(int32(StateFailed))
		s.logger.Error("SSH server failed", "error", err)
	}
}

// fail records err and moves the server to StateFailed.
func (s *Server) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	s.state.Store(int32(StateFailed))
	return err
}

// sessionMiddleware runs one conversion session per connection. Sessions
// share nothing: each gets its own converter and renderer.
func (s *Server) sessionMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			s.logger.Info("session opened", "user", sess.User(), "remote", sess.RemoteAddr())

			conv := convert.New(s.engine, s.cfg.NativeWordBits)
			renderer := session.NewRenderer(session.DefaultStyles())
			run := session.New(sess, sess, conv, renderer)

			if err := run.Run(sess.Context()); !session.ErrClosed(err) {
				s.logger.Warn("session ended with error", "user", sess.User(), "error", err)
			} else {
				s.logger.Info("session closed", "user", sess.User())
			}

			next(sess)
		}
	}
}
