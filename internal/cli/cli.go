// Package cli implements the radii command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/radii/pkg/buildinfo"
	"github.com/matzehuels/radii/pkg/editor"
	"github.com/matzehuels/radii/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "radii"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config; empty means the XDG default
	key        string // --key overrides [store] key
	noPersist  bool   // --no-persist discards writes
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "radii",
		Short: "Radii edits CSS border-radius values",
		Long: `Radii is a border-radius editor for the terminal. It keeps one radius state
(per-corner values in px and %, a symmetry mode and a preview shape), prints the
shortest CSS shorthand for it and renders annotated previews.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.loadConfig() },
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/radii/config.toml)")
	root.PersistentFlags().StringVar(&c.key, "key", "", "state key (default "+store.DefaultKey+")")
	root.PersistentFlags().BoolVar(&c.noPersist, "no-persist", false, "do not read or write saved state")

	// Register all subcommands
	root.AddCommand(c.cssCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.unitCommand())
	root.AddCommand(c.linkCommand())
	root.AddCommand(c.modeCommand())
	root.AddCommand(c.shapeCommand())
	root.AddCommand(c.presetCommand())
	root.AddCommand(c.stateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return nil
		}
		path = p
	}

	cfg, undecoded, err := readConfig(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, key := range undecoded {
		c.Logger.Warn("Unknown config key", "key", key, "file", path)
	}
	if c.key != "" {
		cfg.Store.Key = c.key
	}
	if cfg.Store.Dir == "" {
		if dir, err := stateDir(); err == nil {
			cfg.Store.Dir = dir
		}
	}
	if c.noPersist {
		cfg.Store.Backend = store.BackendNone
	}
	c.config = cfg

	installLogHooks(c.Logger)
	return nil
}

// =============================================================================
// Editor Factory
// =============================================================================

// openStore connects the configured backend. Remote backends get a spinner
// while connecting.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	cfg := c.config.Store
	switch cfg.Backend {
	case store.BackendRedis, store.BackendMongo:
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Connecting to %s...", cfg.Backend))
		spinner.Start()
		s, err := store.Open(ctx, cfg)
		if err != nil {
			if spinner.Cancelled() {
				spinner.Stop()
				return nil, ctx.Err()
			}
			spinner.StopWithError(fmt.Sprintf("Could not connect to %s", cfg.Backend))
			return nil, err
		}
		spinner.StopWithSuccess(fmt.Sprintf("Connected to %s", cfg.Backend))
		return s, nil
	}
	return store.Open(ctx, cfg)
}

// openEditor opens the store and loads the saved state into an editor.
// The returned store must be closed by the caller.
func (c *CLI) openEditor(ctx context.Context) (*editor.Editor, store.Store, error) {
	s, err := c.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	ed := editor.Open(ctx, s,
		editor.WithKey(c.config.Store.StateKey()),
		editor.WithTimeout(c.config.Store.OpTimeout()),
		editor.WithLogger(c.Logger),
	)
	return ed, s, nil
}

// fileStoreOf returns the FileStore behind s, looking through wrappers.
func fileStoreOf(s store.Store) (*store.FileStore, bool) {
	for {
		switch v := s.(type) {
		case *store.FileStore:
			return v, true
		case interface{ Unwrap() store.Store }:
			s = v.Unwrap()
		default:
			return nil, false
		}
	}
}
