package scene

import "sort"

// CanvasPreset is a named canvas size with its snapping grid.
type CanvasPreset struct {
	Name     string
	Width    int
	Height   int
	GridSize int
}

// Presets maps preset names to canvas dimensions.
var Presets = map[string]CanvasPreset{
	"mobile":  {Name: "mobile", Width: 390, Height: 844, GridSize: 20},
	"desktop": {Name: "desktop", Width: 1440, Height: 900, GridSize: 20},
	"tablet":  {Name: "tablet", Width: 834, Height: 1194, GridSize: 20},
}

// PresetNames returns the known preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fidelity selects stroke width, fill style and roughness for primitives.
type Fidelity string

const (
	FidelityLow    Fidelity = "low"
	FidelityMedium Fidelity = "medium"
	FidelityHigh   Fidelity = "high"
)

// ValidFidelity reports whether f is a known fidelity level.
func ValidFidelity(f Fidelity) bool {
	return f == FidelityLow || f == FidelityMedium || f == FidelityHigh
}

// Theme is a named five-color palette.
type Theme struct {
	Name       string
	Background string
	Container  string
	Border     string
	Text       string
	MutedText  string
}

// Themes maps theme names to palettes.
var Themes = map[string]Theme{
	"classic": {
		Name:       "classic",
		Background: "#ffffff",
		Container:  "#f5f5f5",
		Border:     "#9e9e9e",
		Text:       "#424242",
		MutedText:  "#666666",
	},
	"high_contrast": {
		Name:       "high_contrast",
		Background: "#ffffff",
		Container:  "#eeeeee",
		Border:     "#212121",
		Text:       "#000000",
		MutedText:  "#333333",
	},
	"blueprint": {
		Name:       "blueprint",
		Background: "#1a237e",
		Container:  "#3949ab",
		Border:     "#7986cb",
		Text:       "#ffffff",
		MutedText:  "#c5cae9",
	},
}

// ThemeNames returns the known theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
