package motion

import "time"

const (
	CardStep       = 60 * time.Millisecond
	RowLead        = 80 * time.Millisecond
	RowStep        = 60 * time.Millisecond
	EntranceOffset = 24
)

var (
	CardStagger = Stagger{Step: CardStep}
	RowStagger  = Stagger{Lead: RowLead, Step: RowStep}
	CardRows    = Nested{Outer: CardStagger, Inner: RowStagger}
)

func FadeInUp(delay time.Duration, trigger Trigger) Spec {
	return Spec{
		Initial:    State{Opacity: 0, Y: EntranceOffset, Scale: 1},
		Target:     Rest,
		Transition: Tween(600*time.Millisecond, EaseOutExpo).WithDelay(delay),
		Trigger:    trigger,
	}
}

func Lift() Spec {
	return Spec{
		Initial:    Rest,
		Target:     State{Opacity: 1, Y: -6, Scale: 1.02},
		Transition: Tween(300*time.Millisecond, EaseOut),
		Trigger:    TriggerHover,
	}
}

func Nudge() Spec {
	return Spec{
		Initial:    Rest,
		Target:     State{Opacity: 1, Y: -4, Scale: 1},
		Transition: Tween(300*time.Millisecond, EaseOut),
		Trigger:    TriggerHover,
	}
}

func Press() Spec {
	return Spec{
		Initial:    Rest,
		Target:     State{Opacity: 1, Scale: 0.995},
		Transition: Tween(150*time.Millisecond, EaseOut),
		Trigger:    TriggerPress,
	}
}

func RibbonDrop() Spec {
	return Spec{
		Initial:    State{Opacity: 0, Y: -8, Scale: 1, Rotate: 6},
		Target:     State{Opacity: 1, Scale: 1, Rotate: 3},
		Transition: Spring(200, 18),
		Trigger:    TriggerMount,
	}
}

func IconPop() Spec {
	return Spec{
		Initial:    State{Opacity: 0, Scale: 0.9, Rotate: -8},
		Target:     Rest,
		Transition: Spring(260, 18),
		Trigger:    TriggerInViewOnce,
	}
}

func BadgeIn() Spec {
	return Spec{
		Initial:    State{Opacity: 0, Scale: 0.9},
		Target:     Rest,
		Transition: Tween(400*time.Millisecond, EaseOut),
		Trigger:    TriggerInViewOnce,
	}
}

// Drift is an endless vertical float used by background shapes.
func Drift(dy float64, period time.Duration) Spec {
	return Spec{
		Initial:    Rest,
		Target:     State{Opacity: 1, Y: dy, Scale: 1},
		Transition: Tween(period, EaseInOut).Looping(),
		Trigger:    TriggerLoop,
	}
}
