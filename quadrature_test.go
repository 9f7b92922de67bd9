package quadbez

import (
	"math"
	"testing"
)

func TestLengthStraightLine(t *testing.T) {
	c := New(Pt(0.0, 0.0), Pt(50.0, 0.0), Pt(100.0, 0.0))
	if got := c.TotalLength(); math.Abs(got-100.0) > 1e-9 {
		t.Errorf("TotalLength = %v, want 100", got)
	}
	if got := c.LengthAt(0.25); math.Abs(got-25.0) > 1e-9 {
		t.Errorf("LengthAt(0.25) = %v, want 25", got)
	}
}

func TestLengthAnalytic(t *testing.T) {
	// ∫₀¹ ‖B′‖ for this segment has a closed form.
	c := New(Pt(0.0, 0.0), Pt(0.0, 0.5), Pt(1.0, 1.0))
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	if got := c.TotalLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalLength = %v, want %v", got, want)
	}
}

func TestLengthQuadratureOrders(t *testing.T) {
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for _, order := range []int{3, 5, 8} {
		c := NewWithOptions(
			Pt(0.0, 0.0), Pt(0.0, 0.5), Pt(1.0, 1.0),
			Options{QuadratureOrder: order},
		)
		if got := c.TotalLength(); math.Abs(got-want) > 1e-7 {
			t.Errorf("order %d: TotalLength = %v, want %v", order, got, want)
		}
	}
}

func TestLengthMonotone(t *testing.T) {
	c := New(Pt(0.0, 0.0), Pt(10.0, 80.0), Pt(100.0, 0.0))
	prev := c.LengthAt(0.0)
	if prev != 0.0 {
		t.Fatalf("LengthAt(0) = %v, want 0", prev)
	}
	for i := 1; i <= 40; i++ {
		ts := float64(i) / 40.0
		got := c.LengthAt(ts)
		if got < prev {
			t.Fatalf("LengthAt(%v) = %v < LengthAt(%v) = %v", ts, got, ts-0.025, prev)
		}
		prev = got
	}
}

func TestLengthNegativeParameter(t *testing.T) {
	c := New(Pt(0.0, 0.0), Pt(10.0, 80.0), Pt(100.0, 0.0))
	if got := c.LengthAt(-0.5); got != 0.0 {
		t.Errorf("LengthAt(-0.5) = %v, want 0", got)
	}
}

func TestLengthAdditive(t *testing.T) {
	c := New(Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8))
	whole := c.LengthAt(0.6)
	part := c.Subsegment(0.0, 0.6).TotalLength()
	if math.Abs(whole-part) > 1e-8 {
		t.Errorf("LengthAt(0.6) = %v, Subsegment(0, 0.6).TotalLength() = %v", whole, part)
	}
}
