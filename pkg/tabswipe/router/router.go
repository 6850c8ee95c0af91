package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
)

var (
	// ErrUnknownRoute indicates a navigation target that is not one of the tabs.
	ErrUnknownRoute = errors.New("router: unknown route")

	// ErrEmptyHistory indicates Back was called with nothing to go back to.
	ErrEmptyHistory = errors.New("router: history is empty")
)

// Route describes one tab destination.
type Route struct {
	ID    tabswipe.RouteID
	Title string // Display name, also the default indicator label
	Icon  string // Icon name understood by the view layer
}

// TransitionFunc is called after every tab switch with the previous and new
// route and the history stack.
type TransitionFunc func(from, to tabswipe.RouteID, stack *Stack)

// Tabs is a fixed, ordered set of tab routes with one active tab.
type Tabs struct {
	routes     []Route
	order      []tabswipe.RouteID
	indexOf    map[tabswipe.RouteID]int
	current    int
	stack      *Stack
	transition TransitionFunc
	logger     *slog.Logger
}

var _ tabswipe.NavigationBridge = (*Tabs)(nil)

// NewTabs creates a router over routes with the first route active.
func NewTabs(routes ...Route) (*Tabs, error) {
	if len(routes) == 0 {
		return nil, fmt.Errorf("router: %w", tabswipe.ErrNoRoutes)
	}

	t := &Tabs{
		routes:  make([]Route, len(routes)),
		order:   make([]tabswipe.RouteID, len(routes)),
		indexOf: make(map[tabswipe.RouteID]int, len(routes)),
		stack:   NewStack(DefaultHistoryLimit),
		logger:  internal.GetInternalLogger(),
	}
	for i, r := range routes {
		if r.ID == "" {
			return nil, fmt.Errorf("router: route %d has an empty id", i)
		}
		if _, dup := t.indexOf[r.ID]; dup {
			return nil, fmt.Errorf("router: %w: %q", tabswipe.ErrDuplicateRoute, r.ID)
		}
		if r.Title == "" {
			r.Title = string(r.ID)
		}
		t.routes[i] = r
		t.order[i] = r.ID
		t.indexOf[r.ID] = i
	}
	return t, nil
}

// OnTransition sets the listener called after each tab switch.
func (t *Tabs) OnTransition(fn TransitionFunc) *Tabs {
	t.transition = fn
	return t
}

// RouteOrder returns the tab ids in navigation order.
func (t *Tabs) RouteOrder() []tabswipe.RouteID {
	out := make([]tabswipe.RouteID, len(t.order))
	copy(out, t.order)
	return out
}

// CurrentIndex returns the index of the active tab.
func (t *Tabs) CurrentIndex() int {
	return t.current
}

// Current returns the active tab.
func (t *Tabs) Current() Route {
	return t.routes[t.current]
}

// Route returns the tab with the given id.
func (t *Tabs) Route(id tabswipe.RouteID) (Route, bool) {
	i, ok := t.indexOf[id]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns all tabs in order.
func (t *Tabs) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Navigate switches to route. Unknown routes are logged and ignored.
func (t *Tabs) Navigate(route tabswipe.RouteID) {
	if err := t.Go(route); err != nil {
		t.logger.Warn("Navigation failed", "target", string(route), "error", err)
	}
}

// Go switches to route, pushing the current tab onto the history stack.
// Switching to the active tab is a no-op.
func (t *Tabs) Go(route tabswipe.RouteID) error {
	next, ok := t.indexOf[route]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	if next == t.current {
		return nil
	}

	from := t.routes[t.current].ID
	t.stack.Push(from, t.current)
	t.switchTo(from, next)
	return nil
}

// Back returns to the previously active tab without recording history.
func (t *Tabs) Back() error {
	entry, ok := t.stack.Pop()
	if !ok {
		return ErrEmptyHistory
	}
	t.switchTo(t.routes[t.current].ID, entry.Index)
	return nil
}

func (t *Tabs) switchTo(from tabswipe.RouteID, next int) {
	t.current = next
	to := t.routes[next].ID
	t.logger.Debug("Tab switched", "from", string(from), "to", string(to), "history", t.stack.Len())
	if t.transition != nil {
		t.transition(from, to, t.stack)
	}
}

// Stack returns the navigation history.
func (t *Tabs) Stack() *Stack {
	return t.stack
}
