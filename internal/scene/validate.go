package scene

import (
	"fmt"
	"math"

	"github.com/hpungsan/seer/internal/errors"
)

// Validate checks global invariants over a finished element collection:
// scene-unique non-empty identifiers, no tombstones, text/container
// binding symmetry, and grid snapping for every element that did not come
// out of a library fragment (fragment anchors were snapped; internal
// offsets intentionally are not).
func Validate(elements []Element, grid int) error {
	byID := make(map[string]Element, len(elements))
	for _, el := range elements {
		id := el.ID()
		if id == "" {
			return errors.NewValidationFailed("element missing id", "")
		}
		if _, dup := byID[id]; dup {
			return errors.NewValidationFailed(fmt.Sprintf("duplicate element id: %s", id), id)
		}
		if el.IsDeleted() {
			return errors.NewValidationFailed(fmt.Sprintf("isDeleted element present: %s", id), id)
		}
		byID[id] = el
	}

	for _, el := range elements {
		if el.Type() != "text" {
			continue
		}
		containerID := el.ContainerID()
		if containerID == "" {
			continue
		}
		container, ok := byID[containerID]
		if !ok {
			return errors.NewValidationFailed(
				fmt.Sprintf("text %s references missing containerId %s", el.ID(), containerID), el.ID())
		}
		if !equalStrings(el.GroupIDs(), container.GroupIDs()) {
			return errors.NewValidationFailed(
				fmt.Sprintf("text/container groupIds mismatch for %s -> %s", el.ID(), containerID), el.ID())
		}
		if !boundToText(container, el.ID()) {
			return errors.NewValidationFailed(
				fmt.Sprintf("container %s missing boundElements reference to text %s", containerID, el.ID()), containerID)
		}
	}

	for _, el := range elements {
		if el.Source() == "library" {
			continue
		}
		for _, key := range []string{"x", "y"} {
			v, present := el[key]
			if !present {
				continue
			}
			if !onGrid(v, grid) {
				return errors.NewValidationFailed(
					fmt.Sprintf("element %s not snapped to grid (%s=%v)", el.ID(), key, v), el.ID())
			}
		}
	}
	return nil
}

func boundToText(container Element, textID string) bool {
	for _, b := range container.BoundElements() {
		t, _ := b["type"].(string)
		id, _ := b["id"].(string)
		if t == "text" && id == textID {
			return true
		}
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// onGrid tolerates non-numeric values: a malformed coordinate already
// degraded the element's appearance and is not a structural violation.
func onGrid(v any, grid int) bool {
	f := Float(v, math.NaN())
	if math.IsNaN(f) {
		return true
	}
	g := float64(grid)
	return math.Abs(f-math.Round(f/g)*g) < 1e-6
}
