package piet

import "testing"

func TestFindBlockSize(t *testing.T) {
	red := NewColor(HueRed, LightNormal)
	g := NewGrid([][]Color{
		{red, red, White},
		{red, White, White},
		{White, White, Black},
	})

	b := FindBlock(g, 0, 0)
	if b.Size() != 3 {
		t.Errorf("Size() = %d, want 3", b.Size())
	}
	if b.Color != red {
		t.Errorf("Color = %s, want %s", b.Color, red)
	}
}

func TestExitCodelSelection(t *testing.T) {
	red := NewColor(HueRed, LightNormal)
	// A 2x2 block of red at (0,0)-(1,1).
	g := NewGrid([][]Color{
		{red, red},
		{red, red},
	})
	b := FindBlock(g, 0, 0)

	cases := []struct {
		dp   Direction
		cc   Chooser
		want Point
	}{
		{Right, CCLeft, Point{1, 0}},
		{Right, CCRight, Point{1, 1}},
		{Down, CCLeft, Point{1, 1}},
		{Down, CCRight, Point{0, 1}},
		{Left, CCLeft, Point{0, 1}},
		{Left, CCRight, Point{0, 0}},
		{Up, CCLeft, Point{0, 0}},
		{Up, CCRight, Point{1, 0}},
	}

	for i, tc := range cases {
		if got := b.ExitCodel(tc.dp, tc.cc); got != tc.want {
			t.Errorf("%d: ExitCodel(%s, %s) = %v, want %v", i, tc.dp, tc.cc, got, tc.want)
		}
	}
}

func TestExitCodelDeterministic(t *testing.T) {
	red := NewColor(HueRed, LightNormal)
	g := NewGrid([][]Color{
		{red, red, red},
		{White, White, red},
	})
	b := FindBlock(g, 0, 0)
	first := b.ExitCodel(Right, CCLeft)
	for i := 0; i < 10; i++ {
		if got := b.ExitCodel(Right, CCLeft); got != first {
			t.Errorf("ExitCodel nondeterministic: got %v, first was %v", got, first)
		}
	}
}
