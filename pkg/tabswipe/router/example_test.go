package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/router"
)

// Route identifiers - use typed constants so navigation targets are checked in one place
const (
	RouteMonitoring tabswipe.RouteID = "Monitoring"
	RouteControl    tabswipe.RouteID = "Control"
	RouteProfile    tabswipe.RouteID = "Profile"
)

// Example demonstrates tab switching with a single transition listener.
func Example() {
	tabs, err := router.NewTabs(
		router.Route{ID: RouteMonitoring, Icon: "analytics"},
		router.Route{ID: RouteControl, Icon: "options"},
		router.Route{ID: RouteProfile, Icon: "person"},
	)
	if err != nil {
		panic(err)
	}

	// All switches are observed in one place
	tabs.OnTransition(func(from, to tabswipe.RouteID, stack *router.Stack) {
		fmt.Printf("%s -> %s (history %d)\n", from, to, stack.Len())
	})

	tabs.Navigate(RouteControl)
	tabs.Navigate(RouteProfile)
	fmt.Println("active index:", tabs.CurrentIndex())

	// Output:
	// Monitoring -> Control (history 1)
	// Control -> Profile (history 2)
	// active index: 2
}

// Example_backNavigation demonstrates returning through the tab history.
func Example_backNavigation() {
	tabs, err := router.NewTabs(
		router.Route{ID: RouteMonitoring},
		router.Route{ID: RouteControl},
		router.Route{ID: RouteProfile},
	)
	if err != nil {
		panic(err)
	}

	_ = tabs.Go(RouteProfile)
	_ = tabs.Go(RouteControl)

	for !tabs.Stack().IsEmpty() {
		_ = tabs.Back()
		fmt.Println("back to", tabs.Current().ID)
	}

	// Output:
	// back to Profile
	// back to Monitoring
}
