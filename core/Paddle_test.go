package core

import "testing"

func TestNewPaddleStartPositions(t *testing.T) {
	field := DefaultPlayfield()

	one := NewPaddle(field, PlayerOne)
	if !approx(one.X, 7.8) || one.Y != 76 {
		t.Errorf("player one at (%v, %v), want (7.8, 76)", one.X, one.Y)
	}
	if !approx(one.FrontEdge(), 10.8) {
		t.Errorf("player one front edge = %v, want 10.8", one.FrontEdge())
	}

	two := NewPaddle(field, PlayerTwo)
	if !approx(two.X, 243.2) || two.Y != 76 {
		t.Errorf("player two at (%v, %v), want (243.2, 76)", two.X, two.Y)
	}
	if !approx(two.FrontEdge(), 240.2) {
		t.Errorf("player two front edge = %v, want 240.2", two.FrontEdge())
	}

	if one.Width != 3 || one.Height != 20 {
		t.Errorf("paddle size = %vx%v, want 3x20", one.Width, one.Height)
	}
}

func TestPaddleValidRange(t *testing.T) {
	p := NewPaddle(DefaultPlayfield(), PlayerOne)
	cases := map[float64]bool{
		-1:    false,
		0:     false,
		0.5:   true,
		76:    true,
		171.9: true,
		172:   false,
		200:   false,
	}
	for y, want := range cases {
		if got := p.ValidRange(y); got != want {
			t.Errorf("ValidRange(%v) = %v, want %v", y, got, want)
		}
	}
}

func TestPaddleMoveStaysInRange(t *testing.T) {
	p := NewPaddle(DefaultPlayfield(), PlayerTwo)

	for i := 0; i < 100; i++ {
		p.Move(true, false)
		if !(0 < p.Y && p.Y < 172) {
			t.Fatalf("move %d left range: y = %v", i, p.Y)
		}
	}
	if p.Y != 1 {
		t.Errorf("top stop = %v, want 1", p.Y)
	}

	for i := 0; i < 100; i++ {
		p.Move(false, true)
		if !(0 < p.Y && p.Y < 172) {
			t.Fatalf("move %d left range: y = %v", i, p.Y)
		}
	}
	if p.Y != 169 {
		t.Errorf("bottom stop = %v, want 169", p.Y)
	}
}

func TestPaddleMoveAppliesUpThenDown(t *testing.T) {
	p := NewPaddle(DefaultPlayfield(), PlayerOne)

	p.Move(true, true)
	if p.Y != 76 {
		t.Errorf("both pressed mid field: y = %v, want 76", p.Y)
	}

	p.Y = 1
	p.Move(true, true)
	if p.Y != 4 {
		t.Errorf("both pressed at top: y = %v, want 4 (up rejected, down applied)", p.Y)
	}

	p.Y = 169
	p.Move(true, true)
	if p.Y != 169 {
		t.Errorf("both pressed at bottom: y = %v, want 169", p.Y)
	}

	x := p.X
	p.Move(false, false)
	if p.Y != 169 || p.X != x {
		t.Errorf("no input moved paddle to (%v, %v)", p.X, p.Y)
	}
}
