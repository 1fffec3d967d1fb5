package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/turtleshell/internal/config"
	"github.com/vovakirdan/turtleshell/internal/scene"
	"github.com/vovakirdan/turtleshell/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.turtleshell/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Params drives scene generation for every session.
	Params scene.Params

	// ReferenceWidth is the terminal width at which shapes have scale 1.
	ReferenceWidth int

	// Resume starts returning users where they left off.
	Resume bool
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:        ":23235",
		IdleTimeout:    30 * time.Minute,
		Params:         scene.DefaultParams(),
		ReferenceWidth: 80,
		Resume:         true,
	}
}

// SSHServer wraps a Wish SSH server that serves the browser.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	gen    *scene.Generator
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. The store may be nil, in which case
// sessions run without history.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "turtleshell-ssh",
		})
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		gen:    scene.NewGenerator(cfg.Params),
		store:  store,
		logger: logger,
	}

	hostKeyPath, err := HostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// HostKeyPath resolves the configured host key location. Empty means
// ~/.turtleshell/host_key; a leading "~" is the user's home directory.
func HostKeyPath(configured string) (string, error) {
	if configured == "" {
		configured = filepath.Join("~", ".turtleshell", "host_key")
	}
	path, err := config.ExpandHome(configured)
	if err != nil {
		return "", fmt.Errorf("cannot resolve host key path: %w", err)
	}
	return path, nil
}

// teaHandler creates a browser for each SSH session, sized to its PTY.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	user := sshSession.User()
	opts := Options{
		Generator:      s.gen,
		Renderer:       bubbletea.MakeRenderer(sshSession),
		Viewer:         user,
		Width:          pty.Window.Width,
		Height:         pty.Window.Height,
		ReferenceWidth: s.config.ReferenceWidth,
	}
	if s.store != nil {
		opts.Visits = s.store
		if s.config.Resume {
			opts.Start = s.resumeIndex(user)
		}
	}

	return NewModel(opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// resumeIndex looks up where a user left off, defaulting to home.
func (s *SSHServer) resumeIndex(user string) int {
	index, ok, err := s.store.LastVisited(user)
	if err != nil {
		s.logger.Warn("could not load history", "user", user, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	s.logger.Debug("resuming", "user", user, "heuristic", index)
	return index
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}
}

// Shutdown gracefully stops the server. The store is owned by the caller.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
