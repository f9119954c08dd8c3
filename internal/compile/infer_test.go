package compile

import "testing"

func TestInferPreset(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"a mobile login screen", "mobile"},
		{"desktop dashboard with sidebar", "desktop"},
		{"tablet reading mode", "tablet"},
		{"an iphone settings page", "mobile"},
		{"web admin panel", "desktop"},
		{"just a login form", "mobile"},
	}
	for _, tt := range tests {
		if got := InferPreset(tt.text); got.Name != tt.want {
			t.Errorf("InferPreset(%q) = %s, want %s", tt.text, got.Name, tt.want)
		}
	}
}

func TestInferPreset_WordBoundary(t *testing.T) {
	// "tabletop" must not trip the tablet word rule.
	if got := InferPreset("tabletop game tracker for desktop"); got.Name != "desktop" {
		t.Errorf("preset = %s, want desktop", got.Name)
	}
}

func TestInferSize(t *testing.T) {
	w, h, ok := InferSize("dashboard at 1280x720 please")
	if !ok || w != 1280 || h != 720 {
		t.Errorf("InferSize = %d, %d, %v", w, h, ok)
	}
	if _, _, ok := InferSize("a 12x34 grid of cards"); ok {
		t.Error("tiny dimensions should not count as a canvas size")
	}
	if _, _, ok := InferSize("no size here"); ok {
		t.Error("expected no match")
	}
}

func TestInferSize_UnicodeTimes(t *testing.T) {
	w, h, ok := InferSize("make it 800×600")
	if !ok || w != 800 || h != 600 {
		t.Errorf("InferSize = %d, %d, %v", w, h, ok)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Login Screen", "login-screen"},
		{"  My App!  ", "my-app"},
		{"v1.2_beta", "v1.2_beta"},
		{"!!!", "wireframe"},
		{"", "wireframe"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStableSeed(t *testing.T) {
	a := StableSeed("login", "mobile", "", "classic", "low")
	b := StableSeed("login", "mobile", "", "classic", "low")
	if a != b {
		t.Fatalf("seed not stable: %d vs %d", a, b)
	}
	if a < 0 || a > 0x7FFFFFFF {
		t.Errorf("seed %d outside 31-bit range", a)
	}
	if c := StableSeed("login", "mobile", "", "classic", "high"); c == a {
		t.Error("different inputs produced the same seed")
	}
	// Field boundaries matter: ("ab","c") and ("a","bc") must differ.
	if StableSeed("ab", "c") == StableSeed("a", "bc") {
		t.Error("seed ignores field boundaries")
	}
}
