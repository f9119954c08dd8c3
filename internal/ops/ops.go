// Package ops implements the operations shared by the CLI and the MCP
// server: compiling a prompt into an Excalidraw document and querying
// recorded runs. Each operation takes an Input struct and returns an
// Output struct so both surfaces marshal the same shapes.
package ops

import (
	"strings"

	"github.com/hpungsan/seer/internal/errors"
	"github.com/hpungsan/seer/internal/scene"
)

// Listing limits
const (
	DefaultRunsLimit = 20
	MaxRunsLimit     = 200
)

// ResolveTheme validates a theme name, defaulting to classic.
func ResolveTheme(name string) (scene.Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "classic"
	}
	theme, ok := scene.Themes[name]
	if !ok {
		return scene.Theme{}, errors.NewInvalidRequest(
			"unknown theme " + name + " (known: " + strings.Join(scene.ThemeNames(), ", ") + ")")
	}
	return theme, nil
}

// ResolveFidelity validates a fidelity level, defaulting to medium.
func ResolveFidelity(name string) (scene.Fidelity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = string(scene.FidelityMedium)
	}
	f := scene.Fidelity(name)
	if !scene.ValidFidelity(f) {
		return "", errors.NewInvalidRequest("unknown fidelity " + name + " (known: low, medium, high)")
	}
	return f, nil
}

// ResolvePreset validates a preset name. An empty name returns ok=false
// so the caller can fall back to inference from the prompt text.
func ResolvePreset(name string) (scene.CanvasPreset, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return scene.CanvasPreset{}, false, nil
	}
	preset, ok := scene.Presets[name]
	if !ok {
		return scene.CanvasPreset{}, false, errors.NewInvalidRequest(
			"unknown preset " + name + " (known: " + strings.Join(scene.PresetNames(), ", ") + ")")
	}
	return preset, true, nil
}
