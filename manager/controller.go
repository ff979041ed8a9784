// SPDX-License-Identifier: MIT
//
// File: controller.go
// Role: selection → algebra → registry flow for the weights manager.
// Policy:
//   - Operands are always fetched from the registry by id.
//   - A result is registered, associated and made default, or nothing happens.

package manager

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/spweights/algebra"
	"github.com/katalvlaran/spweights/registry"
	"github.com/katalvlaran/spweights/weights"
)

// Option configures a Controller.
type Option func(*Controller)

// WithTitlePrefix prepends prefix to the title of every result entry.
func WithTitlePrefix(prefix string) Option {
	return func(c *Controller) {
		c.titlePrefix = prefix
	}
}

// Actions reports which operations are enabled for a selection.
type Actions struct {
	Union        bool
	Intersection bool
	Symmetrize   bool
}

// Controller runs algebra operations on registry entries and tracks the
// entries a weights list should show.
//
// mu guards visible and def.
type Controller struct {
	reg         *registry.Manager
	titlePrefix string

	mu      sync.RWMutex
	visible []uuid.UUID
	def     uuid.UUID
}

// New returns a Controller over reg. The visible list starts with every
// associated, non-internal entry already in reg.
func New(reg *registry.Manager, opts ...Option) *Controller {
	c := &Controller{reg: reg}
	for _, opt := range opts {
		opt(c)
	}
	for _, id := range reg.IDs() {
		if _, err := reg.GetGraph(id); err == nil && !reg.IsInternalUse(id) {
			c.visible = append(c.visible, id)
		}
	}
	c.def = reg.Default()

	return c
}

// Union registers the union of the selected entries and returns its id.
//
// Errors: algebra.ErrEmptyOperandList for no ids, registry.ErrNotFound /
// registry.ErrNotAssociated for unusable ids, ErrInvalidSelection when the
// graphs differ in id variable or node count.
func (c *Controller) Union(ids []uuid.UUID) (uuid.UUID, error) {
	klog.V(1).Infof("manager: union of %d weights", len(ids))

	return c.combine("union", ids, algebra.Union)
}

// Intersection registers the intersection of the selected entries and
// returns its id. Errors: as Union.
func (c *Controller) Intersection(ids []uuid.UUID) (uuid.UUID, error) {
	klog.V(1).Infof("manager: intersection of %d weights", len(ids))

	return c.combine("intersection", ids, algebra.Intersection)
}

// Symmetrize registers the symmetric version of entry id (mutual keeps
// only reciprocated edges) and returns the new id.
func (c *Controller) Symmetrize(id uuid.UUID, mutual bool) (uuid.UUID, error) {
	klog.V(1).Infof("manager: symmetrize %s (mutual=%v)", id, mutual)

	op := "symmetric"
	if mutual {
		op = "mutual symmetric"
	}
	graphs, err := c.operands([]uuid.UUID{id})
	if err != nil {
		klog.Errorf("manager: %s: %v", op, err)
		return uuid.Nil, err
	}
	out, err := algebra.Symmetrize(graphs[0], mutual)
	if err != nil {
		klog.Errorf("manager: %s: %v", op, err)
		return uuid.Nil, errors.Wrap(err, "manager")
	}

	return c.register(op, []uuid.UUID{id}, out)
}

// Details returns the display rows of entry id.
func (c *Controller) Details(id uuid.UUID) ([]registry.Property, error) {
	meta, err := c.reg.MetaInfo(id)
	if err != nil {
		return nil, err
	}

	return registry.Describe(meta), nil
}

// Actions reports which operations a selection of the given size enables:
// union and intersection need at least two entries, symmetrize exactly one.
func (c *Controller) Actions(selected int) Actions {
	return Actions{
		Union:        selected >= 2,
		Intersection: selected >= 2,
		Symmetrize:   selected == 1,
	}
}

func (c *Controller) combine(
	op string,
	ids []uuid.UUID,
	fn func(...*weights.NeighborGraph) (*weights.NeighborGraph, error),
) (uuid.UUID, error) {
	if len(ids) == 0 {
		return uuid.Nil, errors.Wrapf(algebra.ErrEmptyOperandList, "manager: %s", op)
	}
	graphs, err := c.operands(ids)
	if err != nil {
		klog.Errorf("manager: %s: %v", op, err)
		return uuid.Nil, err
	}

	sel, ok := algebra.Partition(graphs)
	if !ok {
		klog.Errorf("manager: %s: %d of %d weights do not match id variable %q",
			op, len(sel.Invalid), len(graphs), sel.IDVariable)
		return uuid.Nil, errors.Wrapf(ErrInvalidSelection,
			"selected weights are not valid for %s, e.g. weights have different ID variable", op)
	}

	out, err := fn(sel.Valid...)
	if err != nil {
		klog.Errorf("manager: %s: %v", op, err)
		return uuid.Nil, errors.Wrap(err, "manager")
	}

	return c.register(op, ids, out)
}

// operands resolves ids to their graphs, in order.
func (c *Controller) operands(ids []uuid.UUID) ([]*weights.NeighborGraph, error) {
	graphs := make([]*weights.NeighborGraph, len(ids))
	for i, id := range ids {
		g, err := c.reg.GetGraph(id)
		if err != nil {
			return nil, errors.Wrap(err, "manager: operand")
		}
		graphs[i] = g
	}

	return graphs, nil
}

// register stores out as a new custom entry and makes it the default.
// A failed step removes the reserved entry again.
func (c *Controller) register(op string, from []uuid.UUID, out *weights.NeighborGraph) (uuid.UUID, error) {
	meta := registry.NewMetaInfo(registry.Custom{Source: op}, out.IDVariable())
	meta.Title = c.title(op, from)

	id, err := c.reg.RequestNewEntry(meta)
	if err != nil {
		klog.Errorf("manager: %s: register result: %v", op, err)
		return uuid.Nil, errors.Wrap(err, "manager: register result")
	}
	err = c.reg.AssociateGraph(id, out)
	if err == nil {
		err = c.reg.MakeDefault(id)
	}
	if err != nil {
		klog.Errorf("manager: %s: register result: %v", op, err)
		if rmErr := c.reg.Remove(id); rmErr != nil {
			klog.Errorf("manager: %s: drop entry %s: %v", op, id, rmErr)
		}
		return uuid.Nil, errors.Wrap(err, "manager: register result")
	}
	klog.V(1).Infof("manager: %s -> %s %q (%d edges)", op, id, meta.Title, out.EdgeCount())

	return id, nil
}

// title names a result after its operation and operands, e.g.
// "union(queen, knn 6)".
func (c *Controller) title(op string, from []uuid.UUID) string {
	names := make([]string, len(from))
	for i, id := range from {
		names[i] = c.reg.Title(id)
	}

	return fmt.Sprintf("%s%s(%s)", c.titlePrefix, op, strings.Join(names, ", "))
}
