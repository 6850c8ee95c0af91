package tabswipe

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
	"go.uber.org/atomic"
)

// Options configures a Controller.
type Options struct {
	Config        Config              // Gesture tuning; zero value means DefaultConfig()
	ViewportWidth float64             // Width of the swipeable area in pixels
	OnChange      func(FeedbackState) // Called on the UI loop whenever the feedback state changes
	OnDecision    func(Decision)      // Called on the UI loop once per released gesture
	Logger        *slog.Logger        // Defaults to the internal logger
}

// Controller turns gesture callbacks into tab navigation. It implements
// GestureHandler and must be driven from a single UI loop: gesture callbacks
// and Advance are never called concurrently.
type Controller struct {
	bridge NavigationBridge
	routes []RouteID

	cfg      Config
	viewport float64

	classifier DirectionClassifier
	decision   CommitDecision
	feedback   *FeedbackController

	session  *GestureSession
	nextID   uint64
	last     Decision
	lastSent FeedbackState

	snapshot   *atomic.Pointer[FeedbackState]
	onChange   func(FeedbackState)
	onDecision func(Decision)
	logger     *slog.Logger
}

var _ GestureHandler = (*Controller)(nil)

// New validates the configuration and the bridge's route order and returns
// an idle Controller.
func New(bridge NavigationBridge, opts Options) (*Controller, error) {
	if bridge == nil {
		return nil, ErrNilBridge
	}

	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateViewport(opts.ViewportWidth); err != nil {
		return nil, err
	}

	routes, err := snapshotRoutes(bridge)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	idle := IdleFeedback()
	c := &Controller{
		bridge:     bridge,
		routes:     routes,
		cfg:        cfg,
		viewport:   opts.ViewportWidth,
		classifier: NewDirectionClassifier(cfg),
		decision:   NewCommitDecision(cfg),
		feedback:   NewFeedbackController(cfg, opts.ViewportWidth),
		lastSent:   idle,
		snapshot:   atomic.NewPointer(&idle),
		onChange:   opts.OnChange,
		onDecision: opts.OnDecision,
		logger:     logger,
	}
	return c, nil
}

func snapshotRoutes(bridge NavigationBridge) ([]RouteID, error) {
	order := bridge.RouteOrder()
	if len(order) == 0 {
		return nil, ErrNoRoutes
	}

	seen := make(map[RouteID]struct{}, len(order))
	routes := make([]RouteID, len(order))
	for i, r := range order {
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, r)
		}
		seen[r] = struct{}{}
		routes[i] = r
	}

	if idx := bridge.CurrentIndex(); idx < 0 || idx >= len(routes) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(routes))
	}
	return routes, nil
}

func validateViewport(width float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return &ConfigError{Field: "ViewportWidth", Value: width, Reason: "must be a positive number"}
	}
	return nil
}

// SetViewportWidth updates the swipeable width, e.g. after a window resize.
// It takes effect for the next gesture; a running one keeps its bounds.
func (c *Controller) SetViewportWidth(width float64) error {
	if err := validateViewport(width); err != nil {
		return err
	}
	c.viewport = width
	if c.feedback.Phase() == PhaseIdle {
		c.feedback.setViewport(width)
	}
	return nil
}

// RouteOrder returns a copy of the route order captured at construction.
func (c *Controller) RouteOrder() []RouteID {
	out := make([]RouteID, len(c.routes))
	copy(out, c.routes)
	return out
}

// Config returns the validated configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// OnGestureStart begins a new session. Any session still animating is
// preempted first: its visuals snap back to rest, and a pending commit
// navigates immediately when Config.CommitOnPreempt is set.
func (c *Controller) OnGestureStart() {
	c.preempt()

	c.feedback.setViewport(c.viewport)
	c.nextID++
	c.session = newSession(c.nextID, c.bridge.CurrentIndex(), c.viewport)
	c.feedback.Begin()

	c.logger.Debug("Gesture started", "session", c.session.ID, "index", c.session.StartIndex)
	c.publish()
}

func (c *Controller) preempt() {
	if c.feedback.Phase() == PhaseIdle {
		return
	}

	phase, pending := c.feedback.Preempt()
	var id uint64
	if c.session != nil {
		id = c.session.ID
	}
	c.session = nil

	runPending := phase == PhaseCommitting && c.cfg.CommitOnPreempt && pending != nil
	c.logger.Debug("Gesture preempted", "session", id, "phase", phase.String(), "commit_flushed", runPending)

	if runPending {
		pending()
	}
	c.publish()
}

// OnGestureUpdate feeds one sample into the active session. Samples outside
// a tracking session are dropped.
func (c *Controller) OnGestureUpdate(sample GestureSample) {
	s := c.session
	if s == nil || s.Phase != PhaseTracking {
		c.logger.Debug("Dropping gesture update outside a session")
		return
	}

	c.apply(s, sample.sanitized())
	c.publish()
}

func (c *Controller) apply(s *GestureSession, sample GestureSample) {
	s.record(sample)

	if !c.classifier.Classify(s, sample) {
		if s.LockedAxis == AxisVertical {
			s.Displacement = 0
			c.feedback.Track(0, constants.DirectionNone, "")
		}
		return
	}

	policy := c.policy(s)
	s.Displacement = policy.ComputeDisplacement(sample.TranslationX, s.Direction)

	target, ok := policy.Target(s.Direction)
	if !ok {
		c.feedback.Track(s.Displacement, constants.DirectionNone, "")
		return
	}
	c.feedback.Track(s.Displacement, s.Direction.Opposite(), target)
}

// policy uses the session's viewport so a resize never changes the bounds
// of a gesture already in progress.
func (c *Controller) policy(s *GestureSession) BoundaryPolicy {
	return NewBoundaryPolicy(c.routes, c.bridge.CurrentIndex(), s.Viewport*c.cfg.MaxTranslateFraction, c.cfg)
}

// OnGestureEnd applies the final sample, decides the outcome and starts the
// matching exit animation. Navigation happens later, from Advance, once the
// content has left the screen.
func (c *Controller) OnGestureEnd(sample GestureSample) {
	s := c.session
	if s == nil || s.Phase != PhaseTracking {
		c.logger.Debug("Dropping gesture end outside a session")
		return
	}

	final := sample.sanitized()
	c.apply(s, final)

	var d Decision
	if s.LockedAxis == AxisHorizontal {
		d = c.decision.Decide(final, c.policy(s))
	} else {
		d = Decision{Outcome: OutcomeIgnore}
	}
	c.last = d

	c.logger.Debug("Gesture ended",
		"session", s.ID,
		"outcome", d.Outcome.String(),
		"direction", d.Direction.String(),
		"target", string(d.Target),
		"translation_x", final.TranslationX,
		"velocity_x", final.VelocityX,
		"axis", s.LockedAxis.String(),
	)

	id := s.ID
	switch d.Outcome {
	case OutcomeCommit:
		s.Phase = PhaseCommitting
		target := d.Target
		c.feedback.Commit(d.Direction, func() {
			c.finish(id)
			c.logger.Debug("Navigating", "session", id, "target", string(target))
			c.bridge.Navigate(target)
		})
	default:
		s.Phase = PhaseCancelling
		velocity := final.VelocityX
		if d.Outcome == OutcomeIgnore {
			// a scroll released fast must not kick the content sideways
			velocity = 0
		}
		c.feedback.Cancel(velocity, func() {
			c.finish(id)
		})
	}

	if c.onDecision != nil {
		c.onDecision(d)
	}
	c.publish()
}

func (c *Controller) finish(id uint64) {
	if c.session != nil && c.session.ID == id {
		c.session = nil
	}
}

// Advance moves animations forward by dt. Call it once per frame from the UI
// loop; completed commits navigate from inside this call.
func (c *Controller) Advance(dt time.Duration) {
	if c.feedback.Phase() == PhaseIdle {
		return
	}
	c.feedback.Advance(dt)
	c.publish()
}

// State returns the current feedback state.
func (c *Controller) State() FeedbackState {
	return c.feedback.State()
}

// Snapshot returns the most recently published feedback state. Unlike State
// it is safe to call from another goroutine, such as a render thread.
func (c *Controller) Snapshot() FeedbackState {
	return *c.snapshot.Load()
}

// Session returns a copy of the active session, if any.
func (c *Controller) Session() (GestureSession, bool) {
	if c.session == nil {
		return GestureSession{}, false
	}
	return *c.session, true
}

// LastDecision returns the decision made for the most recently released gesture.
func (c *Controller) LastDecision() Decision {
	return c.last
}

func (c *Controller) publish() {
	st := c.feedback.State()
	if st == c.lastSent {
		return
	}
	c.lastSent = st
	c.snapshot.Store(&st)
	if c.onChange != nil {
		c.onChange(st)
	}
}
