package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/radii/pkg/render"
	"github.com/matzehuels/radii/pkg/render/sink"
	"github.com/matzehuels/radii/pkg/session"
	"github.com/matzehuels/radii/pkg/store"
)

// Config is the on-disk configuration (config.toml).
//
//	[store]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[render]
//	theme = "dark"
//	overlay = true
//
//	[serve]
//	addr = ":8080"
//	session_ttl = "2h"
type Config struct {
	Store  store.Config `toml:"store"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig holds preview defaults shared by render, serve and edit.
type RenderConfig struct {
	Scale      float64 `toml:"scale"`
	Theme      string  `toml:"theme"`
	Background string  `toml:"background"` // overrides the theme background
	Overlay    bool    `toml:"overlay"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr       string        `toml:"addr"`
	SessionTTL time.Duration `toml:"session_ttl"`
}

const (
	defaultScale = 2.0
	defaultAddr  = "127.0.0.1:8080"
)

func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Scale: defaultScale},
		Serve:  ServeConfig{Addr: defaultAddr, SessionTTL: session.DefaultTTL},
	}
}

// readConfig decodes path over the defaults. A missing file is not an error.
// Keys the file sets that Config does not know are returned for warning.
func readConfig(path string) (Config, []string, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil, nil
	}
	if err != nil {
		return Config{}, nil, err
	}

	var undecoded []string
	for _, k := range md.Undecoded() {
		undecoded = append(undecoded, k.String())
	}
	return cfg, undecoded, nil
}

// options converts the render section into render.Options.
func (r RenderConfig) options() (render.Options, error) {
	theme, err := sink.ThemeByName(r.Theme)
	if err != nil {
		return render.Options{}, err
	}
	if r.Background != "" {
		theme.Background = r.Background
	}
	return render.Options{Overlay: r.Overlay, Scale: r.Scale, Theme: theme}, nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/radii/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the config file path inside configDir.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// stateDir returns where the file backend keeps state blobs.
func stateDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state"), nil
}
