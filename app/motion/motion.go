package motion

import (
	"fmt"
	"math"
	"time"
)

type Trigger int

const (
	TriggerMount Trigger = iota
	TriggerInViewOnce
	TriggerHover
	TriggerPress
	TriggerLoop
)

func (t Trigger) String() string {
	switch t {
	case TriggerMount:
		return "mount"
	case TriggerInViewOnce:
		return "in-view-once"
	case TriggerHover:
		return "hover"
	case TriggerPress:
		return "press"
	case TriggerLoop:
		return "loop"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// State is a visual state. Y is a vertical offset in px, Rotate in degrees.
type State struct {
	Opacity float64
	Y       float64
	Scale   float64
	Rotate  float64
}

var Rest = State{Opacity: 1, Scale: 1}

type CubicBezier [4]float64

var (
	EaseOutExpo = CubicBezier{0.22, 1, 0.36, 1}
	EaseOut     = CubicBezier{0, 0, 0.58, 1}
	EaseInOut   = CubicBezier{0.42, 0, 0.58, 1}
	Overshoot   = CubicBezier{0.34, 1.56, 0.64, 1}
)

func (b CubicBezier) CSS() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", num(b[0]), num(b[1]), num(b[2]), num(b[3]))
}

type Kind int

const (
	KindTween Kind = iota
	KindSpring
)

type Transition struct {
	Kind      Kind
	Duration  time.Duration
	Ease      CubicBezier
	Stiffness float64
	Damping   float64
	Mass      float64
	Delay     time.Duration
	Repeat    bool
}

func Tween(d time.Duration, ease CubicBezier) Transition {
	return Transition{Kind: KindTween, Duration: d, Ease: ease}
}

func Spring(stiffness, damping float64) Transition {
	return Transition{Kind: KindSpring, Stiffness: stiffness, Damping: damping, Mass: 1}
}

func (t Transition) WithDelay(d time.Duration) Transition {
	t.Delay = d
	return t
}

func (t Transition) Looping() Transition {
	t.Repeat = true
	return t
}

// DampingRatio is zeta for a spring transition and 1 for tweens.
func (t Transition) DampingRatio() float64 {
	if t.Kind != KindSpring || t.Stiffness <= 0 {
		return 1
	}
	return t.Damping / (2 * math.Sqrt(t.Stiffness*t.mass()))
}

// Settle is the time the transition needs to come to rest, excluding Delay.
// Springs use the 2% envelope 4/(zeta*omega).
func (t Transition) Settle() time.Duration {
	if t.Kind != KindSpring {
		return t.Duration
	}
	if t.Stiffness <= 0 || t.Damping <= 0 {
		return 0
	}
	omega := math.Sqrt(t.Stiffness / t.mass())
	seconds := 4 / (t.DampingRatio() * omega)
	return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond)
}

// Curve is the easing used when the transition is played by a host without a spring solver.
func (t Transition) Curve() CubicBezier {
	if t.Kind != KindSpring {
		return t.Ease
	}
	if t.DampingRatio() < 1 {
		return Overshoot
	}
	return EaseOut
}

func (t Transition) mass() float64 {
	if t.Mass <= 0 {
		return 1
	}
	return t.Mass
}

type Spec struct {
	Initial    State
	Target     State
	Transition Transition
	Trigger    Trigger
}

// Keyframes is a looping path through Target and back to Initial.
func (s Spec) Keyframes() []State {
	if !s.Transition.Repeat {
		return []State{s.Initial, s.Target}
	}
	return []State{s.Initial, s.Target, s.Initial}
}

// Progress is the normalized completion of s after elapsed time on the frame clock.
// Looping specs wrap around their settle time.
func Progress(s Spec, elapsed time.Duration) float64 {
	t := elapsed - s.Transition.Delay
	if t <= 0 {
		return 0
	}
	settle := s.Transition.Settle()
	if settle <= 0 {
		return 1
	}
	if s.Transition.Repeat {
		t %= settle
	}
	if t >= settle {
		return 1
	}
	return float64(t) / float64(settle)
}

// Done reports whether a non-looping spec has reached its target.
func Done(s Spec, elapsed time.Duration) bool {
	return !s.Transition.Repeat && Progress(s, elapsed) >= 1
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
