//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ConfigOption tweaks the [slider] table of a generated config
type ConfigOption func(*configFixture)

type configFixture struct {
	visible  int
	infinite bool
	autoPlay bool
	interval int
	items    int
}

// WithVisible sets how many cards share the track
func WithVisible(n int) ConfigOption {
	return func(c *configFixture) { c.visible = n }
}

// WithInfinite turns wraparound on
func WithInfinite() ConfigOption {
	return func(c *configFixture) { c.infinite = true }
}

// WithAutoPlay turns auto-advance on with the given period
func WithAutoPlay(intervalMS int) ConfigOption {
	return func(c *configFixture) {
		c.autoPlay = true
		c.interval = intervalMS
	}
}

// WithItems sets the number of generated cards
func WithItems(n int) ConfigOption {
	return func(c *configFixture) { c.items = n }
}

// WriteConfig writes a .spinslider.toml into the workspace
func (tf *TUITestFramework) WriteConfig(options ...ConfigOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	return writeConfigFile(filepath.Join(tf.workspace, ".spinslider.toml"), options...)
}

// WriteUserConfig writes the per-user config the app falls back to when the
// workspace has none. The app runs with HOME and XDG_CONFIG_HOME inside the
// workspace.
func (tf *TUITestFramework) WriteUserConfig(options ...ConfigOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	dir := filepath.Join(tf.workspace, ".config")
	if runtime.GOOS == "darwin" {
		dir = filepath.Join(tf.workspace, "Library", "Application Support")
	}
	path := filepath.Join(dir, "spinslider", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return writeConfigFile(path, options...)
}

func writeConfigFile(path string, options ...ConfigOption) (string, error) {

	c := configFixture{visible: 1, interval: 3000, items: 5}
	for _, opt := range options {
		opt(&c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "version = 1\n\n[slider]\n")
	fmt.Fprintf(&b, "visible_count = %d\n", c.visible)
	fmt.Fprintf(&b, "infinite = %t\n", c.infinite)
	fmt.Fprintf(&b, "auto_play = %t\n", c.autoPlay)
	fmt.Fprintf(&b, "auto_play_interval_ms = %d\n", c.interval)
	fmt.Fprintf(&b, "\n[ui]\ntitle = \"E2E Deck\"\n")
	for i := 1; i <= c.items; i++ {
		fmt.Fprintf(&b, "\n[[items]]\nid = %d\ntitle = \"Card %d\"\ndescription = \"Card number %d\"\ncategory = \"Design\"\n", i, i, i)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}
