// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"jvmlaunch/internal/config"
)

func newConfigApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	stdout := &bytes.Buffer{}
	app := NewApp(Dependencies{
		Config: config.NewProvider(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	})
	return app, stdout
}

func TestSetConfigValue_RoundTrip(t *testing.T) {
	// Overrides the config directory; not parallel.
	app, stdout := newConfigApp(t)
	ctx := context.Background()

	if err := setConfigValue(ctx, app, "default_max_memory_mb", "768"); err != nil {
		t.Fatalf("setConfigValue() error = %v, want nil", err)
	}
	if !strings.Contains(stdout.String(), "default_max_memory_mb") {
		t.Errorf("stdout = %q, want confirmation message", stdout.String())
	}

	cfg, err := app.loadConfig(ctx)
	if err != nil {
		t.Fatalf("loadConfig() after set error = %v", err)
	}
	if cfg.DefaultMaxMemoryMB != 768 {
		t.Errorf("DefaultMaxMemoryMB = %d, want 768", cfg.DefaultMaxMemoryMB)
	}
}

func TestSetConfigValue_Invalid(t *testing.T) {
	app, _ := newConfigApp(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown key", key: "heap", value: "1"},
		{name: "negative memory", key: "default_max_memory_mb", value: "-5"},
		{name: "non-numeric memory", key: "default_max_memory_mb", value: "lots"},
		{name: "bad color scheme", key: "ui.color_scheme", value: "sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := setConfigValue(ctx, app, tt.key, tt.value); err == nil {
				t.Error("setConfigValue() error = nil, want non-nil")
			}
		})
	}
}

func TestShowConfig_UsesDefaultsWhenNoFile(t *testing.T) {
	app, stdout := newConfigApp(t)

	if err := showConfig(context.Background(), app); err != nil {
		t.Fatalf("showConfig() error = %v, want nil", err)
	}

	out := stdout.String()
	for _, want := range []string{"java_home", "default_max_memory_mb", "color_scheme"} {
		if !strings.Contains(out, want) {
			t.Errorf("showConfig() output missing %q:\n%s", want, out)
		}
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	app, stdout := newConfigApp(t)

	if err := initConfig(app); err != nil {
		t.Fatalf("initConfig() error = %v, want nil", err)
	}
	if !strings.Contains(stdout.String(), "config.cue") {
		t.Errorf("stdout = %q, want created-file message", stdout.String())
	}
}
