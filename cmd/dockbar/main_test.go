package main

import (
	"context"
	"errors"
	"testing"

	"github.com/five82/dockbar/internal/app"
)

func TestRootCmd_PassesFlags(t *testing.T) {
	var got app.Options
	cmd := newRootCmd(func(ctx context.Context, opts app.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{"--config", "/tmp/dock.yaml", "--prefs", "/tmp/prefs.toml", "--debug", "--dev"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	want := app.Options{ConfigPath: "/tmp/dock.yaml", PrefsPath: "/tmp/prefs.toml", Debug: true, Dev: true}
	if got != want {
		t.Fatalf("options = %+v, want %+v", got, want)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(func(context.Context, app.Options) error { return nil })
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() with a positional arg succeeded")
	}
}

func TestRootCmd_ReturnsRunError(t *testing.T) {
	boom := errors.New("boom")
	cmd := newRootCmd(func(context.Context, app.Options) error { return boom })
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); !errors.Is(err, boom) {
		t.Fatalf("Execute() = %v, want %v", err, boom)
	}
}
