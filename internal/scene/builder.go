package scene

import (
	"math"
	"math/rand"

	"github.com/oklog/ulid/v2"
)

// fixedEpochMS anchors every element's "updated" stamp so builds are
// reproducible. The seed is folded in so distinct runs stay distinct.
const fixedEpochMS int64 = 1_700_000_000_000

// Builder constructs primitive scene elements. Every positional field is
// snapped to the active grid at construction time, and LabeledRect is the
// single path that establishes the text/container binding invariant.
//
// A Builder is scoped to one build: its random source, identifier entropy
// and simulated clock are created at build start and discarded with it.
type Builder struct {
	rng      *rand.Rand
	entropy  *ulid.MonotonicEntropy
	now      int64
	grid     int
	theme    Theme
	fidelity Fidelity
}

// NewBuilder creates a build-scoped Builder. The same seed always yields
// the same identifier and seed-stamp sequences.
func NewBuilder(seed int64, grid int, theme Theme, fidelity Fidelity) *Builder {
	if grid < 1 {
		grid = 1
	}
	idSource := rand.New(rand.NewSource(seed ^ 0x5EED5EED))
	return &Builder{
		rng:      rand.New(rand.NewSource(seed)),
		entropy:  ulid.Monotonic(idSource, 0),
		now:      fixedEpochMS + seed,
		grid:     grid,
		theme:    theme,
		fidelity: fidelity,
	}
}

// Grid returns the active grid size in pixels.
func (b *Builder) Grid() int { return b.grid }

// Theme returns the active theme.
func (b *Builder) Theme() Theme { return b.theme }

// Fidelity returns the active fidelity level.
func (b *Builder) Fidelity() Fidelity { return b.fidelity }

// Now returns the fixed per-build timestamp in milliseconds.
func (b *Builder) Now() int64 { return b.now }

// NewID generates a fresh scene-unique identifier.
func (b *Builder) NewID() string {
	return ulid.MustNew(uint64(b.now), b.entropy).String()
}

// SeedStamp draws a seed/versionNonce value in [1, 2^31).
func (b *Builder) SeedStamp() int64 {
	return b.rng.Int63n(1<<31-1) + 1
}

// Snap rounds a coordinate to the nearest grid multiple.
func (b *Builder) Snap(v float64) float64 {
	return RoundTo(v, b.grid)
}

// StrokeWidth returns the stroke width for the active fidelity.
func (b *Builder) StrokeWidth() float64 {
	if b.fidelity == FidelityLow {
		return 1
	}
	return 2
}

type shapeStyle struct {
	strokeColor     string
	backgroundColor string
	fillStyle       string
	strokeWidth     float64
	roughness       float64
}

func (b *Builder) shapeStyle() shapeStyle {
	switch b.fidelity {
	case FidelityLow:
		return shapeStyle{
			strokeColor:     b.theme.Border,
			backgroundColor: "transparent",
			fillStyle:       "hachure",
			strokeWidth:     1,
			roughness:       1,
		}
	default:
		// medium and high share solid fills; high keeps roughness at 0 too.
		return shapeStyle{
			strokeColor:     b.theme.Border,
			backgroundColor: b.theme.Container,
			fillStyle:       "solid",
			strokeWidth:     2,
			roughness:       0,
		}
	}
}

// RectOpts carries optional rectangle settings.
type RectOpts struct {
	Roundness  *int           // nil for sharp corners
	SeerLabel  string         // provenance component label
	CustomData map[string]any // extra provenance fields
}

// Roundness returns a *int for use in RectOpts.
func Roundness(v int) *int { return &v }

// Rect creates a rectangle styled per the active theme and fidelity, with
// x/y/width/height snapped to the grid.
func (b *Builder) Rect(x, y, w, h float64, opts RectOpts) Element {
	style := b.shapeStyle()
	var roundness any
	if opts.Roundness != nil {
		roundness = map[string]any{"type": 3, "value": *opts.Roundness}
	}
	el := Element{
		"id":              b.NewID(),
		"type":            "rectangle",
		"x":               b.Snap(x),
		"y":               b.Snap(y),
		"width":           b.Snap(w),
		"height":          b.Snap(h),
		"angle":           0,
		"strokeColor":     style.strokeColor,
		"backgroundColor": style.backgroundColor,
		"fillStyle":       style.fillStyle,
		"strokeWidth":     style.strokeWidth,
		"strokeStyle":     "solid",
		"roughness":       style.roughness,
		"opacity":         100,
		"groupIds":        []string{},
		"roundness":       roundness,
		"seed":            b.SeedStamp(),
		"version":         1,
		"versionNonce":    b.SeedStamp(),
		"isDeleted":       false,
		"boundElements":   nil,
		"updated":         b.now,
		"link":            nil,
		"locked":          false,
	}
	if opts.SeerLabel != "" {
		el["customData"] = map[string]any{"seerLabel": opts.SeerLabel}
	}
	if len(opts.CustomData) > 0 {
		custom := el.CustomData()
		for k, v := range opts.CustomData {
			custom[k] = v
		}
	}
	return el
}

// TextOpts carries optional text settings.
type TextOpts struct {
	FontSize    float64 // 0 means 16
	Color       string  // "" means theme text color
	Align       string  // "" means "left"
	VAlign      string  // "" means "top"
	ContainerID string
	GroupIDs    []string
	Width       float64 // 0 means estimate from content
	Height      float64 // 0 means estimate from content
}

// Text creates a text element. Width/height default to the non-rendering
// size estimate of TextSize.
func (b *Builder) Text(x, y float64, text string, opts TextOpts) Element {
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 16
	}
	color := opts.Color
	if color == "" {
		color = b.theme.Text
	}
	align := opts.Align
	if align == "" {
		align = "left"
	}
	valign := opts.VAlign
	if valign == "" {
		valign = "top"
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		w0, h0 := TextSize(text, fontSize)
		if width <= 0 {
			width = w0
		}
		if height <= 0 {
			height = h0
		}
	}
	groupIDs := opts.GroupIDs
	if groupIDs == nil {
		groupIDs = []string{}
	}
	var containerID any
	if opts.ContainerID != "" {
		containerID = opts.ContainerID
	}
	return Element{
		"id":              b.NewID(),
		"type":            "text",
		"x":               b.Snap(x),
		"y":               b.Snap(y),
		"width":           RoundTo(width, 10),
		"height":          RoundTo(height, 10),
		"angle":           0,
		"strokeColor":     color,
		"backgroundColor": "transparent",
		"fillStyle":       "hachure",
		"strokeWidth":     1,
		"strokeStyle":     "solid",
		"roughness":       0,
		"opacity":         100,
		"groupIds":        groupIDs,
		"roundness":       nil,
		"seed":            b.SeedStamp(),
		"version":         1,
		"versionNonce":    b.SeedStamp(),
		"isDeleted":       false,
		"boundElements":   nil,
		"updated":         b.now,
		"link":            nil,
		"locked":          false,
		"text":            text,
		"fontSize":        fontSize,
		"fontFamily":      1,
		"textAlign":       align,
		"verticalAlign":   valign,
		"baseline":        math.Trunc(fontSize * 1.2),
		"containerId":     containerID,
		"originalText":    text,
		"lineHeight":      1.25,
	}
}

// Line creates a line from (x, y) to (x2, y2). The start point is the
// element origin; the delta is stored as width/height plus an explicit
// two-point path.
func (b *Builder) Line(x, y, x2, y2 float64) Element {
	x0 := b.Snap(x)
	y0 := b.Snap(y)
	x1 := b.Snap(x2)
	y1 := b.Snap(y2)
	return Element{
		"id":                 b.NewID(),
		"type":               "line",
		"x":                  x0,
		"y":                  y0,
		"width":              x1 - x0,
		"height":             y1 - y0,
		"angle":              0,
		"strokeColor":        b.theme.Border,
		"backgroundColor":    "transparent",
		"fillStyle":          "hachure",
		"strokeWidth":        1,
		"strokeStyle":        "solid",
		"roughness":          0,
		"opacity":            100,
		"groupIds":           []string{},
		"roundness":          nil,
		"seed":               b.SeedStamp(),
		"version":            1,
		"versionNonce":       b.SeedStamp(),
		"isDeleted":          false,
		"boundElements":      nil,
		"updated":            b.now,
		"link":               nil,
		"locked":             false,
		"points":             []any{[]any{0.0, 0.0}, []any{x1 - x0, y1 - y0}},
		"lastCommittedPoint": nil,
		"startBinding":       nil,
		"endBinding":         nil,
		"startArrowhead":     nil,
		"endArrowhead":       nil,
	}
}

// LabeledRectOpts carries optional settings for LabeledRect.
type LabeledRectOpts struct {
	FontSize   float64 // 0 means 16
	LabelColor string  // "" means theme text color
	Roundness  *int
	SeerLabel  string
}

// LabeledRect creates the "box with a centered caption" composite: a
// rectangle and a text element sharing one fresh group id, with the text
// bound to the rectangle via containerId and the rectangle back-linked via
// boundElements. This is the constructor that guarantees the binding
// invariant holds for every primitive composite.
func (b *Builder) LabeledRect(x, y, w, h float64, text string, opts LabeledRectOpts) (Element, Element) {
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 16
	}
	groupID := b.NewID()
	rect := b.Rect(x, y, w, h, RectOpts{Roundness: opts.Roundness, SeerLabel: opts.SeerLabel})
	rect.SetGroupIDs([]string{groupID})

	labelColor := opts.LabelColor
	if labelColor == "" {
		labelColor = b.theme.Text
	}
	labelWidth := LabelWidth(text, fontSize)
	labelHeight := RoundTo(fontSize*1.6, 10)

	rx := rect.X()
	ry := rect.Y()
	rw := rect.Width()
	rh := rect.Height()

	txt := b.Text(rx+(rw-labelWidth)/2, ry+(rh-labelHeight)/2, text, TextOpts{
		FontSize:    fontSize,
		Color:       labelColor,
		Align:       "center",
		VAlign:      "middle",
		ContainerID: rect.ID(),
		GroupIDs:    []string{groupID},
		Width:       labelWidth,
		Height:      labelHeight,
	})
	rect["boundElements"] = []map[string]any{{"type": "text", "id": txt.ID()}}
	return rect, txt
}
