package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/scores"
	"github.com/vovakirdan/tui-tetris/internal/server"
)

var (
	flagHTTPAddr    string
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the score API server",
	Long: `Start the HTTP score API and, when --ssh is given, an SSH server that
lets users play remotely. Both share one score store.

Endpoints:
  GET  /api/scores   - Top 10 scores, highest first
  POST /api/scores   - Submit {"name": "...", "score": 123}

The HTTP address defaults to :3000, or :$PORT when PORT is set.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetris/host_key

Examples:
  tetris serve                             # HTTP on :3000
  tetris serve --http :8080                # HTTP on port 8080
  tetris serve --ssh :23234                # Also serve SSH play
  tetris serve --store sqlite              # Keep scores in SQLite

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP address (host:port, default :3000 or :$PORT)")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH play address (host:port, disabled when empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})

	store, err := openStore(logger)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer store.Close()

	backend := scores.NewService(store)

	httpCfg := server.DefaultConfig()
	if flagHTTPAddr != "" {
		httpCfg.Address = flagHTTPAddr
	}
	httpServer := server.New(httpCfg, backend, logger.WithPrefix("tetris-http"))

	var sshServer *tui.SSHServer
	if flagSSHAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = flagSSHAddr
		sshCfg.HostKeyPath = flagHostKey
		sshCfg.GameID = tetris.ID
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

		sshServer, err = tui.NewSSHServer(sshCfg, backend, logger.WithPrefix("tetris-ssh"))
		if err != nil {
			return fmt.Errorf("create SSH server: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.ListenAndServe(ctx)
	})
	if sshServer != nil {
		g.Go(func() error {
			return sshServer.ListenAndServe(ctx)
		})
		if _, port, splitErr := net.SplitHostPort(sshServer.Addr()); splitErr == nil {
			logger.Info("connect with", "command", "ssh localhost -p "+port)
		}
	}

	return g.Wait()
}
