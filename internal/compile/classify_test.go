package compile

import "testing"

func TestClassify_PrefixGrammar(t *testing.T) {
	tests := []struct {
		phrase string
		typ    ComponentType
		value  string
	}{
		{"header: Sign in", TypeHeader, "Sign in"},
		{"Button: Continue", TypeButton, "Continue"},
		{"INPUT- Email", TypeInput, "Email"},
		{"screen: Home", TypeScreen, "Home"},
		{"tabs: A | B | C", TypeTabs, "A | B | C"},
		{"divider:", TypeDivider, ""},
		{"lib: chips | Trending", TypeLib, "chips | Trending"},
		{"library: navigation bar", TypeLibrary, "navigation bar"},
		{"toggle: Dark mode (on)", TypeToggle, "Dark mode (on)"},
	}
	for _, tt := range tests {
		c := Classify(tt.phrase)
		if c.Type != tt.typ || c.Value != tt.value {
			t.Errorf("Classify(%q) = (%s, %q), want (%s, %q)", tt.phrase, c.Type, c.Value, tt.typ, tt.value)
		}
	}
}

func TestClassify_AddCreateHeuristic(t *testing.T) {
	c := Classify("Add a welcome message")
	if c.Type != TypeText || c.Value != "a welcome message" {
		t.Errorf("Classify = (%s, %q)", c.Type, c.Value)
	}
	c = Classify("create profile summary")
	if c.Type != TypeText || c.Value != "profile summary" {
		t.Errorf("Classify = (%s, %q)", c.Type, c.Value)
	}
}

func TestClassify_ButtonHeuristic(t *testing.T) {
	c := Classify("a big Submit button")
	if c.Type != TypeButton {
		t.Fatalf("type = %s, want button", c.Type)
	}
	if c.Value != "a big Submit" {
		t.Errorf("value = %q", c.Value)
	}
}

func TestClassify_TextFallback(t *testing.T) {
	c := Classify("Welcome back!")
	if c.Type != TypeText || c.Value != "Welcome back!" {
		t.Errorf("Classify = (%s, %q)", c.Type, c.Value)
	}
}

func TestClassify_Total(t *testing.T) {
	// Every phrase classifies; no phrase panics or misses.
	phrases := []string{"", "   ", ":", "-", "button", "screen:", "¯\\_(ツ)_/¯"}
	for _, p := range phrases {
		c := Classify(p)
		if c.Type == "" {
			t.Errorf("Classify(%q) produced empty type", p)
		}
	}
}
