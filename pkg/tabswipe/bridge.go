package tabswipe

// RouteID identifies one of the fixed tab destinations.
type RouteID string

// NavigationBridge is the router capability the controller drives. Any
// router that can report its ordered routes and active index and switch to a
// route satisfies it.
//
// Navigate is fire-and-forget. It is expected to update CurrentIndex before
// the next gesture starts; failures are the bridge's concern.
type NavigationBridge interface {
	RouteOrder() []RouteID
	CurrentIndex() int
	Navigate(route RouteID)
}

// GestureHandler receives gesture callbacks from a platform input layer.
// Callbacks must be delivered serially on the UI loop.
type GestureHandler interface {
	OnGestureStart()
	OnGestureUpdate(sample GestureSample)
	OnGestureEnd(sample GestureSample)
}
