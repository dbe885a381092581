package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/five82/dockbar/internal/config"
	"github.com/five82/dockbar/internal/dock"
)

func TestWire_DocksEveryConfiguredItem(t *testing.T) {
	cfg := config.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := wire(t.Context(), cfg, Options{Dev: true}, logger)

	order := c.engine.Order()
	if len(order) != len(cfg.Items) {
		t.Fatalf("order has %d items, want %d", len(order), len(cfg.Items))
	}
	for i, id := range order {
		if got := c.engine.Icon(id).Label; got != cfg.Items[i].Name {
			t.Errorf("slot %d label = %q, want %q", i, got, cfg.Items[i].Name)
		}
	}
	if c.engine.Anchors() != cfg.Anchors {
		t.Fatalf("Anchors() = %d, want %d", c.engine.Anchors(), cfg.Anchors)
	}
}

func TestWire_DevModeIsStrict(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	strict := wire(context.Background(), config.Default(), Options{Dev: true}, logger)
	if err := strict.engine.Drop(); err == nil {
		t.Fatal("Drop without a drag succeeded in dev mode")
	}

	lax := wire(context.Background(), config.Default(), Options{}, logger)
	if err := lax.engine.Drop(); err != nil {
		t.Fatalf("Drop without a drag = %v, want nil outside dev mode", err)
	}
	if err := lax.engine.BeginDrag(dock.ItemID("missing"), dock.Pointer{}); err != nil {
		t.Fatalf("BeginDrag(unknown) = %v, want nil outside dev mode", err)
	}
}
