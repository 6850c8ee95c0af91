// Package router provides a tab router that satisfies tabswipe.NavigationBridge.
//
// Tabs keeps a fixed, ordered list of routes and the active index. Every
// switch pushes the previous tab onto a history Stack so Back can return to
// it, and a single transition listener observes all switches in one place.
//
// # Basic Usage
//
//	tabs, err := router.NewTabs(
//	    router.Route{ID: "Monitoring", Title: "Monitoring", Icon: "analytics"},
//	    router.Route{ID: "Control", Title: "Control", Icon: "options"},
//	    router.Route{ID: "Profile", Title: "Profile", Icon: "person"},
//	)
//	if err != nil {
//	    return err
//	}
//
//	tabs.OnTransition(func(from, to tabswipe.RouteID, stack *router.Stack) {
//	    log.Printf("%s -> %s (history %d)", from, to, stack.Len())
//	})
//
//	ctrl, err := tabswipe.New(tabs, tabswipe.Options{ViewportWidth: 390})
//
// # Failure Handling
//
// Navigate is fire-and-forget, as the controller expects. Unknown targets are
// logged and ignored; use Go to get the error instead.
package router
