// Package apps is the dock's shell: it knows what every item looks like and
// how to launch it.
package apps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/five82/dockbar/internal/config"
	"github.com/five82/dockbar/internal/dock"
	"github.com/five82/dockbar/internal/state"
)

// Entry is a launchable item.
type Entry struct {
	ID      dock.ItemID
	Name    string
	Icon    string
	Command string
}

// Options configure a Catalog.
type Options struct {
	// Context bounds launched commands; cancelling it kills them.
	Context context.Context
	Store   *state.Store
	Logger  *slog.Logger
	// Shell runs commands, "sh" when empty.
	Shell string
}

// Catalog implements dock.Shell over the configured items.
type Catalog struct {
	ctx   context.Context
	store *state.Store
	log   *slog.Logger
	shell string

	entries []Entry
	byID    map[dock.ItemID]Entry
	wg      sync.WaitGroup

	mu     sync.Mutex
	notify func(dock.ItemID)
}

// New assigns every item a fresh id.
func New(items []config.Item, opts Options) *Catalog {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Store == nil {
		opts.Store = &state.Store{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Shell == "" {
		opts.Shell = "sh"
	}
	c := &Catalog{
		ctx:   opts.Context,
		store: opts.Store,
		log:   opts.Logger.With("component", "apps"),
		shell: opts.Shell,
		byID:  make(map[dock.ItemID]Entry, len(items)),
	}
	for _, item := range items {
		e := Entry{ID: dock.NewItemID(), Name: item.Name, Icon: item.Icon, Command: item.Command}
		c.entries = append(c.entries, e)
		c.byID[e.ID] = e
	}
	return c
}

// IDs returns every item id in config order.
func (c *Catalog) IDs() []dock.ItemID {
	ids := make([]dock.ItemID, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Entry returns the item behind id.
func (c *Catalog) Entry(id dock.ItemID) (Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Lookup finds an item by name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Snapshot returns the current launch state.
func (c *Catalog) Snapshot() state.Snapshot {
	return c.store.Snapshot()
}

// Notify registers fn to be called, from any goroutine, whenever an item's
// running state changes.
func (c *Catalog) Notify(fn func(dock.ItemID)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = fn
}

// ResolveIcon implements dock.Shell.
func (c *Catalog) ResolveIcon(id dock.ItemID) dock.Icon {
	e, ok := c.byID[id]
	if !ok {
		return dock.Icon{Label: string(id)}
	}
	return dock.Icon{
		Image:   e.Icon,
		Label:   e.Name,
		Running: c.store.Snapshot().IsRunning(e.Name),
	}
}

// Launch implements dock.Shell. Items without a command stay marked running
// until dockbar exits; items that are already running are left alone.
func (c *Catalog) Launch(id dock.ItemID) {
	e, ok := c.byID[id]
	if !ok {
		c.log.Warn("launch of unknown item", "item", id)
		return
	}
	if c.store.Snapshot().IsRunning(e.Name) {
		c.log.Debug("already running", "item", e.Name)
		return
	}
	if e.Command == "" {
		c.store.Started(e.Name, 0)
		c.changed(id)
		return
	}

	cmd := exec.CommandContext(c.ctx, c.shell, "-c", e.Command)
	if err := cmd.Start(); err != nil {
		err = fmt.Errorf("start %s: %w", e.Name, err)
		c.log.Error("launch failed", "item", e.Name, "err", err)
		c.store.Exited(e.Name, err)
		c.changed(id)
		return
	}
	c.store.Started(e.Name, cmd.Process.Pid)
	c.log.Info("process started", "item", e.Name, "pid", cmd.Process.Pid)
	c.changed(id)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := cmd.Wait()
		if err != nil {
			err = fmt.Errorf("%s: %w", e.Name, err)
			c.log.Warn("process exited", "item", e.Name, "err", err)
		} else {
			c.log.Info("process exited", "item", e.Name)
		}
		c.store.Exited(e.Name, err)
		c.changed(id)
	}()
}

// Wait blocks until every launched command has exited.
func (c *Catalog) Wait() {
	c.wg.Wait()
}

func (c *Catalog) changed(id dock.ItemID) {
	c.mu.Lock()
	fn := c.notify
	c.mu.Unlock()
	if fn != nil {
		fn(id)
	}
}
