package manager

import (
	"context"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/spweights/registry"
)

// Apply updates the visible list from one registry event. Internal-use
// entries never become visible.
func (c *Controller) Apply(ev registry.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case registry.EventAdd:
		if c.reg.IsInternalUse(ev.ID) || indexOf(c.visible, ev.ID) >= 0 {
			return
		}
		c.visible = append(c.visible, ev.ID)
	case registry.EventRemove:
		if i := indexOf(c.visible, ev.ID); i >= 0 {
			c.visible = append(c.visible[:i], c.visible[i+1:]...)
		}
	case registry.EventDefault:
		c.def = ev.ID
	case registry.EventRename:
		klog.V(2).Infof("manager: %s renamed to %q", ev.ID, c.reg.Title(ev.ID))
	}
}

// Run applies events until ctx is done or events is closed. It returns
// ctx.Err() in the first case and nil in the second.
func (c *Controller) Run(ctx context.Context, events <-chan registry.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.Apply(ev)
		}
	}
}

// Visible returns the ids a weights list should show, in arrival order.
func (c *Controller) Visible() []uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]uuid.UUID(nil), c.visible...)
}

// Default returns the default entry as last seen in the event stream.
func (c *Controller) Default() uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.def
}

func indexOf(ids []uuid.UUID, id uuid.UUID) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}

	return -1
}
