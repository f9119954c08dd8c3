package compile

import (
	"fmt"
	"strings"
)

// ScreenSpec is one named screen and the ordered phrases belonging to it.
// Created here, consumed once by the layout engine, never mutated after.
type ScreenSpec struct {
	Name    string
	Phrases []string
}

// GroupScreens partitions classified phrases into screens. Each "screen"
// phrase starts a new ScreenSpec and names it; phrases before the first
// marker (or all phrases, if no marker exists) form an implicit screen.
func GroupScreens(phrases []string) []ScreenSpec {
	var screens []ScreenSpec
	var currentName *string
	current := []string{}

	flush := func() {
		name := fmt.Sprintf("Screen %d", len(screens)+1)
		if currentName != nil && *currentName != "" {
			name = *currentName
		}
		screens = append(screens, ScreenSpec{Name: name, Phrases: current})
	}

	for _, phrase := range phrases {
		c := Classify(phrase)
		if c.Type == TypeScreen {
			if currentName != nil || len(current) > 0 {
				flush()
			}
			name := strings.TrimSpace(c.Value)
			if name == "" {
				name = fmt.Sprintf("Screen %d", len(screens)+1)
			}
			currentName = &name
			current = []string{}
			continue
		}
		current = append(current, phrase)
	}

	if currentName != nil || len(current) > 0 {
		flush()
	}

	if len(screens) == 0 {
		return []ScreenSpec{{Name: "Screen", Phrases: phrases}}
	}
	return screens
}
