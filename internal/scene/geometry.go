package scene

import "math"

// RoundTo rounds value to the nearest multiple of step. Ties round away
// from zero, matching the grid-snap contract. A step <= 0 rounds to the
// nearest integer.
func RoundTo(value float64, step int) float64 {
	if step <= 0 {
		return math.Round(value)
	}
	s := float64(step)
	return math.Round(value/s) * s
}

// TextSize estimates a text element's width and height without rendering.
// The diagram tool recalculates real metrics on open; this stays
// conservative so captions never clip.
func TextSize(text string, fontSize float64) (w, h float64) {
	lines := splitLines(text)
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	w = math.Max(24, math.Min(2400, float64(maxLen)*fontSize*0.62))
	h = math.Max(fontSize+8, float64(len(lines))*fontSize*1.35)
	return math.Trunc(w), math.Trunc(h)
}

// LabelWidth estimates a caption width: (len × fontSize × 0.6) + 20,
// rounded to 10px.
func LabelWidth(text string, fontSize float64) float64 {
	return RoundTo(float64(len([]rune(text)))*fontSize*0.6+20, 10)
}

func splitLines(text string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	if len(lines) == 1 && lines[0] == "" {
		return []string{""}
	}
	return lines
}

// BBox returns an element's bounding box, tolerating negative sizes the
// way hand-authored line deltas produce them.
func BBox(el Element) (x0, y0, x1, y1 float64) {
	x := el.X()
	y := el.Y()
	w := el.Width()
	h := el.Height()
	x0 = math.Min(x, x+w)
	x1 = math.Max(x, x+w)
	y0 = math.Min(y, y+h)
	y1 = math.Max(y, y+h)
	return
}

// GroupBBox returns the union bounding box of a group of elements.
func GroupBBox(group []Element) (x0, y0, x1, y1 float64) {
	if len(group) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0, x1, y1 = BBox(group[0])
	for _, el := range group[1:] {
		ex0, ey0, ex1, ey1 := BBox(el)
		x0 = math.Min(x0, ex0)
		y0 = math.Min(y0, ey0)
		x1 = math.Max(x1, ex1)
		y1 = math.Max(y1, ey1)
	}
	return
}

// OffsetGroup translates every element in a group by (dx, dy).
func OffsetGroup(group []Element, dx, dy float64) {
	if len(group) == 0 || (dx == 0 && dy == 0) {
		return
	}
	for _, el := range group {
		if _, ok := el["x"]; ok {
			el.SetX(el.X() + dx)
		}
		if _, ok := el["y"]; ok {
			el.SetY(el.Y() + dy)
		}
	}
}
