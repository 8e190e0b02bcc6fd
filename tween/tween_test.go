package tween

import "testing"

type recorder struct {
	steps     []float64
	completes []float64
}

func (r *recorder) Step(v float64)       { r.steps = append(r.steps, v) }
func (r *recorder) Complete(end float64) { r.completes = append(r.completes, end) }

func TestTweenSteps(t *testing.T) {
	var tw Tween
	r := &recorder{}
	tw.Begin(1000, 2, 16, 140)
	for _, now := range []float64{1000, 1035, 1070, 1105} {
		tw.Step(now, r)
	}
	want := []float64{2, 6, 9, 13}
	if len(r.steps) != len(want) {
		t.Fatalf("steps %v, want %v", r.steps, want)
	}
	for i := range want {
		if r.steps[i] != want[i] {
			t.Fatalf("steps %v, want %v", r.steps, want)
		}
	}
	tw.Step(1140, r)
	if len(r.completes) != 1 || r.completes[0] != 16 {
		t.Fatalf("completes %v", r.completes)
	}
	if tw.InProgress {
		t.Fatalf("tween still running after completion")
	}
	if tw.Step(2000, r) {
		t.Fatalf("stopped tween stepped")
	}
	if len(r.completes) != 1 {
		t.Fatalf("completed twice")
	}
}

func TestTweenOvershootClamped(t *testing.T) {
	var tw Tween
	tw.Begin(0, 100, 84, 200)
	v, done := tw.Sample(10000)
	if !done || v != 84 {
		t.Fatalf("Sample = %v,%v want 84,true", v, done)
	}
	v, done = tw.Sample(-50)
	if done || v != 100 {
		t.Fatalf("Sample before start = %v,%v want 100,false", v, done)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	var tw Tween
	r := &recorder{}
	tw.Begin(0, 0, 16, 0)
	tw.Step(0, r)
	if len(r.completes) != 1 || len(r.steps) != 0 {
		t.Fatalf("zero duration: steps=%v completes=%v", r.steps, r.completes)
	}
}

func TestTweenPreempt(t *testing.T) {
	var tw Tween
	r := &recorder{}
	tw.Begin(0, 0, 16, 100)
	tw.Step(50, r)
	tw.Begin(60, 100, 116, 100)
	tw.Step(160, r)
	if len(r.completes) != 1 || r.completes[0] != 116 {
		t.Fatalf("completes %v, want only the second run", r.completes)
	}
}

func TestRound(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{2.5, 3}, {-2.5, -2}, {2.49, 2}, {-2.51, -3}, {0, 0},
	}
	for _, c := range cases {
		if got := Round(c.in); got != c.want {
			t.Errorf("Round(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
