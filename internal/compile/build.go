package compile

import (
	"fmt"

	"github.com/hpungsan/seer/internal/library"
	"github.com/hpungsan/seer/internal/scene"
)

// BuildInput carries everything one build needs. Given equal inputs, two
// builds produce byte-identical documents.
type BuildInput struct {
	Text          string
	Preset        scene.CanvasPreset
	Width         int // explicit size override; 0 uses the preset
	Height        int
	Theme         scene.Theme
	Fidelity      scene.Fidelity
	Seed          int64
	Strict        bool
	Catalog       *library.Catalog // nil disables library layout
	PreferLibrary bool
	ShowLabels    bool // caption each screen boundary with its name
}

// ScreenMeta summarizes one laid-out screen.
type ScreenMeta struct {
	Name        string `json:"name"`
	PhraseCount int    `json:"count_phrases"`
}

// LibraryUsage counts library-sourced elements in the built scene.
type LibraryUsage struct {
	Loaded        bool           `json:"loaded"`
	PreferLibrary bool           `json:"prefer_library"`
	ElementsTotal int            `json:"elements_total"`
	ByComponent   map[string]int `json:"by_component"`
}

// LayoutMeta records the computed canvas geometry.
type LayoutMeta struct {
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
}

// Meta is the read-only summary of a finished build.
type Meta struct {
	Preset      string         `json:"preset"`
	Theme       string         `json:"theme"`
	Fidelity    scene.Fidelity `json:"fidelity"`
	Grid        int            `json:"grid"`
	Seed        int64          `json:"seed"`
	LibraryUsed LibraryUsage   `json:"library_used"`
	Screens     []ScreenMeta   `json:"screens"`
	Layout      LayoutMeta     `json:"layout"`
}

// SeedLabel formats an explicit size for seed derivation ("" when unset).
func SeedLabel(width, height int) string {
	if width == 0 || height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", width, height)
}

// DeriveSeed hashes the normalized build inputs into a seed, used when
// the caller supplies none.
func DeriveSeed(text string, preset scene.CanvasPreset, width, height int, theme scene.Theme, fidelity scene.Fidelity) int64 {
	return StableSeed(text, preset.Name, SeedLabel(width, height), theme.Name, string(fidelity))
}

// Build compiles input text into a validated scene document plus run
// metadata. The builder, its random source and its simulated clock live
// only for this call.
func Build(in BuildInput) (*scene.Document, *Meta, error) {
	b := scene.NewBuilder(in.Seed, in.Preset.GridSize, in.Theme, in.Fidelity)

	screenW, screenH := in.Preset.Width, in.Preset.Height
	if in.Width > 0 && in.Height > 0 {
		screenW, screenH = in.Width, in.Height
	}

	phrases := ExtractPhrases(in.Text)
	screens := GroupScreens(phrases)

	g := b.Grid()
	outer := g * 2
	hgap := g * 4

	canvasW := outer*2 + screenW*len(screens) + hgap*max(0, len(screens)-1)
	canvasH := outer*2 + screenH

	var elements []scene.Element
	for idx, screen := range screens {
		sx := b.Snap(float64(outer + idx*(screenW+hgap)))
		elements = append(elements, layoutScreen(b, screenParams{
			x:             sx,
			y:             float64(outer),
			w:             float64(screenW),
			h:             float64(screenH),
			name:          screen.Name,
			phrases:       screen.Phrases,
			catalog:       in.Catalog,
			preferLibrary: in.PreferLibrary,
			showLabel:     in.ShowLabels,
		})...)
	}

	doc := scene.NewDocument(elements, in.Preset.GridSize, in.Theme.Background, len(screens))

	if in.Strict {
		if err := scene.Validate(elements, in.Preset.GridSize); err != nil {
			return nil, nil, err
		}
	}

	usage := LibraryUsage{
		Loaded:        in.Catalog != nil,
		PreferLibrary: in.PreferLibrary,
		ByComponent:   map[string]int{},
	}
	for _, el := range elements {
		if el.Source() != "library" {
			continue
		}
		usage.ElementsTotal++
		label := el.Label()
		if label == "" {
			label = "unknown"
		}
		usage.ByComponent[label]++
	}

	meta := &Meta{
		Preset:      in.Preset.Name,
		Theme:       in.Theme.Name,
		Fidelity:    in.Fidelity,
		Grid:        in.Preset.GridSize,
		Seed:        in.Seed,
		LibraryUsed: usage,
		Screens:     make([]ScreenMeta, 0, len(screens)),
		Layout: LayoutMeta{
			CanvasWidth:  canvasW,
			CanvasHeight: canvasH,
			ScreenWidth:  screenW,
			ScreenHeight: screenH,
		},
	}
	for _, s := range screens {
		meta.Screens = append(meta.Screens, ScreenMeta{Name: s.Name, PhraseCount: len(s.Phrases)})
	}
	return doc, meta, nil
}
