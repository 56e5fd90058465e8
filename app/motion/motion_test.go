package motion

import (
	"testing"
	"time"
)

func TestStaggerIsLinearAndMonotonic(t *testing.T) {
	prev := time.Duration(-1)
	for i := 0; i < 50; i++ {
		d := CardStagger.Delay(i)
		if d < prev {
			t.Fatalf("expected non-decreasing delay at %d, got %v after %v", i, d, prev)
		}
		if d != time.Duration(i)*CardStep {
			t.Fatalf("expected %v at %d, got %v", time.Duration(i)*CardStep, i, d)
		}
		prev = d
	}
	if CardStagger.Delay(-3) != 0 {
		t.Fatalf("expected negative index to clamp, got %v", CardStagger.Delay(-3))
	}
}

func TestNestedDelayIsAdditive(t *testing.T) {
	got := CardRows.Delay(2, 3)
	want := 2*CardStep + RowLead + 3*RowStep
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSpringSettleAndCurve(t *testing.T) {
	ribbon := RibbonDrop().Transition
	if z := ribbon.DampingRatio(); z <= 0.6 || z >= 0.7 {
		t.Fatalf("unexpected damping ratio %v", z)
	}
	if got := ribbon.Settle(); got != 444*time.Millisecond {
		t.Fatalf("expected 444ms settle, got %v", got)
	}
	if ribbon.Curve() != Overshoot {
		t.Fatalf("expected overshoot curve for underdamped spring, got %v", ribbon.Curve())
	}

	stiff := Spring(100, 40)
	if stiff.Curve() != EaseOut {
		t.Fatalf("expected ease-out for overdamped spring, got %v", stiff.Curve())
	}

	tween := FadeInUp(0, TriggerMount).Transition
	if tween.Settle() != 600*time.Millisecond || tween.Curve() != EaseOutExpo {
		t.Fatalf("unexpected tween: %+v", tween)
	}
}

func TestProgress(t *testing.T) {
	spec := FadeInUp(100*time.Millisecond, TriggerInViewOnce)
	cases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{100 * time.Millisecond, 0},
		{400 * time.Millisecond, 0.5},
		{700 * time.Millisecond, 1},
		{time.Hour, 1},
	}
	for _, tc := range cases {
		if got := Progress(spec, tc.elapsed); got != tc.want {
			t.Fatalf("progress at %v: expected %v, got %v", tc.elapsed, tc.want, got)
		}
	}
	if !Done(spec, 700*time.Millisecond) {
		t.Fatal("expected spec to be done")
	}
}

func TestLoopingProgressWraps(t *testing.T) {
	spec := Drift(-20, 14*time.Second)
	if Done(spec, time.Hour) {
		t.Fatal("looping spec must never be done")
	}
	if got := Progress(spec, 21*time.Second); got != 0.5 {
		t.Fatalf("expected wrapped progress 0.5, got %v", got)
	}
	if frames := spec.Keyframes(); len(frames) != 3 || frames[1].Y != -20 || frames[2] != frames[0] {
		t.Fatalf("unexpected keyframes: %+v", frames)
	}
}

func TestCubicBezierCSS(t *testing.T) {
	if got := EaseOutExpo.CSS(); got != "cubic-bezier(0.22, 1, 0.36, 1)" {
		t.Fatalf("unexpected css: %s", got)
	}
}
