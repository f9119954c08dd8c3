package scene

import "testing"

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value float64
		step  int
		want  float64
	}{
		{0, 20, 0},
		{9, 20, 0},
		{10, 20, 20}, // tie rounds away from zero
		{11, 20, 20},
		{29, 20, 20},
		{30, 20, 40},
		{-10, 20, -20},
		{-9, 20, 0},
		{7.4, 0, 7},
		{7.5, 0, 8},
		{123, 10, 120},
		{125, 10, 130},
	}
	for _, tt := range tests {
		if got := RoundTo(tt.value, tt.step); got != tt.want {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.value, tt.step, got, tt.want)
		}
	}
}

func TestTextSize(t *testing.T) {
	w, h := TextSize("Sign in", 16)
	if w < 24 || w > 2400 {
		t.Errorf("width %v out of clamp range", w)
	}
	// 7 chars * 16 * 0.62 = 69.44 -> truncated
	if w != 69 {
		t.Errorf("width = %v, want 69", w)
	}
	if h != 24 {
		t.Errorf("height = %v, want 24", h)
	}

	// Multi-line: tallest dimension follows line count.
	_, h2 := TextSize("a\nb\nc", 16)
	if h2 != 64 { // 3 * 16 * 1.35 = 64.8 -> 64
		t.Errorf("multi-line height = %v, want 64", h2)
	}

	// Empty text hits the floors.
	w3, h3 := TextSize("", 16)
	if w3 != 24 || h3 != 24 {
		t.Errorf("empty text size = (%v, %v), want (24, 24)", w3, h3)
	}
}

func TestLabelWidth(t *testing.T) {
	// "Continue": 8 * 16 * 0.6 + 20 = 96.8 -> 100
	if got := LabelWidth("Continue", 16); got != 100 {
		t.Errorf("LabelWidth = %v, want 100", got)
	}
}

func TestGroupBBox(t *testing.T) {
	group := []Element{
		{"x": 10.0, "y": 20.0, "width": 100.0, "height": 40.0},
		{"x": 50.0, "y": 0.0, "width": 30.0, "height": 90.0},
	}
	x0, y0, x1, y1 := GroupBBox(group)
	if x0 != 10 || y0 != 0 || x1 != 110 || y1 != 90 {
		t.Errorf("GroupBBox = (%v,%v,%v,%v)", x0, y0, x1, y1)
	}
}

func TestBBox_NegativeDelta(t *testing.T) {
	// Lines can carry negative width/height deltas.
	el := Element{"x": 100.0, "y": 100.0, "width": -40.0, "height": -20.0}
	x0, y0, x1, y1 := BBox(el)
	if x0 != 60 || y0 != 80 || x1 != 100 || y1 != 100 {
		t.Errorf("BBox = (%v,%v,%v,%v)", x0, y0, x1, y1)
	}
}

func TestOffsetGroup(t *testing.T) {
	group := []Element{{"x": 10.0, "y": 20.0}}
	OffsetGroup(group, 5, -5)
	if group[0].X() != 15 || group[0].Y() != 15 {
		t.Errorf("offset = (%v, %v)", group[0].X(), group[0].Y())
	}

	// Elements without coordinates are left alone.
	noPos := []Element{{"type": "frame"}}
	OffsetGroup(noPos, 5, 5)
	if _, ok := noPos[0]["x"]; ok {
		t.Error("OffsetGroup should not invent coordinates")
	}
}
