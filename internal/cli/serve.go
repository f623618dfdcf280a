package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/radii/internal/api"
	"github.com/matzehuels/radii/pkg/session"
)

const (
	shutdownTimeout = 5 * time.Second
	cleanupInterval = time.Minute
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr       string
	sessionTTL time.Duration
}

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor over HTTP",
		Long: `Serve the editor as a JSON API. Every client creates its own session
(POST /api/sessions) and edits it through the returned id. Session state is
written to the configured store backend under "session-<id>", so with a
redis or mongo backend several instances can share sessions.`,
		Example: `  radii serve
  radii serve --addr :9000 --session-ttl 2h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Serve
			if cmd.Flags().Changed("addr") {
				cfg.Addr = opts.addr
			}
			if cmd.Flags().Changed("session-ttl") {
				cfg.SessionTTL = opts.sessionTTL
			}
			return c.serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().DurationVar(&opts.sessionTTL, "session-ttl", session.DefaultTTL, "idle time before a session is evicted from memory")

	return cmd
}

func (c *CLI) serve(ctx context.Context, cfg ServeConfig) error {
	ropts, err := c.config.Render.options()
	if err != nil {
		return err
	}

	s, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	sessions := session.NewManager(s,
		session.WithTTL(cfg.SessionTTL),
		session.WithTimeout(c.config.Store.OpTimeout()),
		session.WithLogger(c.Logger),
	)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.New(sessions, api.WithRenderOptions(ropts), api.WithLogger(c.Logger)).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go c.evictSessions(ctx, sessions)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printSuccess("Listening on %s", StyleLink.Render("http://"+displayAddr(cfg.Addr)))
	printDetail("Backend: %s", c.backendName())
	printNextStep("Create a session", "curl -X POST http://"+displayAddr(cfg.Addr)+"/api/sessions")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// evictSessions drops idle sessions from memory until ctx ends.
func (c *CLI) evictSessions(ctx context.Context, m *session.Manager) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Cleanup(); n > 0 {
				c.Logger.Debug("evicted idle sessions", "count", n, "live", m.Len())
			}
		}
	}
}

// displayAddr turns ":8080" into "localhost:8080" for printing.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
