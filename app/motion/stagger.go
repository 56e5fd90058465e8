package motion

import "time"

// Stagger delays successive items linearly. The delay is not normalized by group size.
type Stagger struct {
	Lead time.Duration
	Step time.Duration
}

func (s Stagger) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return s.Lead + time.Duration(i)*s.Step
}

// Nested composes a group-level stagger with a list-level one. Row j of item i starts at
// Outer.Delay(i) + Inner.Delay(j).
type Nested struct {
	Outer Stagger
	Inner Stagger
}

func (n Nested) Delay(i, j int) time.Duration {
	return n.Outer.Delay(i) + n.Inner.Delay(j)
}
