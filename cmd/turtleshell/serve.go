package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtleshell/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagNoResume    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the turtleshell SSH server",
	Long: `Start an SSH server that lets users browse heuristics remotely.

Each SSH connection gets its own browser sized to the client's terminal.
Visits are recorded per SSH user, and returning users continue where they
left off.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.turtleshell/host_key

Examples:
  turtleshell serve                           # Listen on the configured address
  turtleshell serve --ssh :2222               # Listen on port 2222
  turtleshell serve --host-key ./my_host_key  # Use specific host key
  turtleshell serve --db ./visits.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config, auto-generated if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().BoolVar(&flagNoResume, "no-resume", false, "Always start sessions at home")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srvCfg := tui.SSHServerConfig{
		Address:        cfg.SSH.Address,
		HostKeyPath:    cfg.SSH.HostKey,
		IdleTimeout:    cfg.SSH.IdleTimeout(),
		Params:         cfg.Scene.Params(),
		ReferenceWidth: cfg.Scene.ReferenceWidth,
		Resume:         !flagNoResume,
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting turtleshell SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
