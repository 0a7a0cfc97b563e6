// Package picker holds the category and query state behind the symbol picker.
//
// A Controller starts Uninitialized with a fallback selection. The first
// Appear restores the persisted category and moves it to Ready; only then do
// selection changes get persisted. The controller has a single owner (the UI
// event loop) and does no locking.
package picker

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"textmathkb/internal/catalog"
	"textmathkb/internal/logging"
	"textmathkb/internal/matcher"
)

// State is the controller lifecycle state.
type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// SelectionStore persists the last selected category.
// Implementations swallow their own failures.
type SelectionStore interface {
	Load(ctx context.Context) (string, bool)
	Save(ctx context.Context, id string)
}

// Controller is the picker state machine.
type Controller struct {
	id      uuid.UUID
	catalog *catalog.Catalog
	matcher *matcher.Matcher
	store   SelectionStore
	locale  language.Tag

	state    State
	selected string
	query    string
}

// New builds an Uninitialized controller. The selection starts at
// defaultCategory when it is selectable, else at the first selectable
// category, else empty.
func New(cat *catalog.Catalog, m *matcher.Matcher, store SelectionStore, locale language.Tag, defaultCategory string) *Controller {
	c := &Controller{
		id:      uuid.New(),
		catalog: cat,
		matcher: m,
		store:   store,
		locale:  locale,
	}
	c.selected = c.fallback(defaultCategory)
	c.log().Debug("picker created",
		zap.String("selected", c.selected),
		zap.String("locale", locale.String()))
	return c
}

func (c *Controller) fallback(preferred string) string {
	if c.catalog.IsSelectable(preferred) {
		return preferred
	}
	if cats := c.catalog.NonEmpty(); len(cats) > 0 {
		return cats[0].ID
	}
	return ""
}

func (c *Controller) log() *zap.Logger {
	return logging.Get(logging.CategoryPicker).With(zap.Stringer("picker", c.id))
}

// ID identifies this controller instance in logs.
func (c *Controller) ID() uuid.UUID { return c.id }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Locale returns the matching locale.
func (c *Controller) Locale() language.Tag { return c.locale }

// Appear handles the first-appearance signal. Only the first call has an
// effect: it restores the persisted category, if still valid, and moves the
// controller to Ready.
func (c *Controller) Appear(ctx context.Context) {
	if c.state == Ready {
		return
	}
	if id, ok := c.store.Load(ctx); ok && c.catalog.IsSelectable(id) {
		c.selected = id
	} else {
		c.log().Debug("keeping fallback category", zap.String("selected", c.selected))
	}
	c.state = Ready
	c.log().Info("picker ready", zap.String("selected", c.selected))
}

// Select makes id the current category and reports whether the selection
// changed. Unknown and empty categories are ignored. Changes are persisted
// only once the controller is Ready.
func (c *Controller) Select(ctx context.Context, id string) bool {
	if !c.catalog.IsSelectable(id) {
		c.log().Debug("ignoring unselectable category", zap.String("category", id))
		return false
	}
	if id == c.selected {
		return false
	}
	c.selected = id
	if c.state == Ready {
		c.store.Save(ctx, id)
	}
	return true
}

// SelectNext moves to the next category in tab order, wrapping around.
func (c *Controller) SelectNext(ctx context.Context) bool {
	return c.step(ctx, 1)
}

// SelectPrevious moves to the previous category in tab order, wrapping around.
func (c *Controller) SelectPrevious(ctx context.Context) bool {
	return c.step(ctx, -1)
}

func (c *Controller) step(ctx context.Context, delta int) bool {
	cats := c.catalog.NonEmpty()
	n := len(cats)
	if n == 0 {
		return false
	}
	cur := 0
	for i, cat := range cats {
		if cat.ID == c.selected {
			cur = i
			break
		}
	}
	next := ((cur+delta)%n + n) % n
	return c.Select(ctx, cats[next].ID)
}

// Selection returns the current category identifier, or "" when the catalog
// has no selectable category.
func (c *Controller) Selection() string { return c.selected }

// Title returns the display title of the current category.
func (c *Controller) Title() string {
	cat, ok := c.catalog.Lookup(c.selected)
	if !ok {
		return ""
	}
	return cat.Title
}

// SetQuery replaces the search query. The selection is untouched.
func (c *Controller) SetQuery(q string) { c.query = q }

// Query returns the current search query as typed.
func (c *Controller) Query() string { return c.query }

// Categories returns the selectable categories in tab order.
func (c *Controller) Categories() []catalog.Category {
	return c.catalog.NonEmpty()
}

// Results returns the entries of the current category that are available in
// the controller's locale and match the query.
func (c *Controller) Results() []catalog.Entry {
	cat, ok := c.catalog.Lookup(c.selected)
	if !ok {
		return nil
	}
	return c.matcher.Filter(cat.EntriesFor(c.locale), c.query, c.locale)
}
