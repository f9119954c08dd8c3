package compile

import (
	"math"
	"regexp"
	"strings"

	"github.com/hpungsan/seer/internal/library"
	"github.com/hpungsan/seer/internal/scene"
)

// heightByType fixes the primitive fallback height per component type.
var heightByType = map[ComponentType]float64{
	TypeHeader:   60,
	TypeTabs:     48,
	TypeInput:    52,
	TypeButton:   52,
	TypeDropdown: 52,
	TypeTextarea: 120,
	TypeCheckbox: 40,
	TypeRadio:    40,
	TypeToggle:   40,
	TypeCard:     140,
	TypeList:     160,
	TypeImage:    160,
	TypeFooter:   80,
}

const defaultComponentHeight = 80

var (
	pipeSplitRe  = regexp.MustCompile(`\s*\|\s*`)
	stateHintRe  = regexp.MustCompile(`(?i)\((on|off|true|false|enabled|disabled|checked|unchecked)\)`)
	stateWordRe  = regexp.MustCompile(`(?i)\b(on|off|true|false|enabled|disabled|checked|unchecked)\b`)
	sectionLimit = 28.0
)

type screenParams struct {
	x, y          float64
	w, h          float64
	name          string
	phrases       []string
	catalog       *library.Catalog
	preferLibrary bool
	showLabel     bool
}

// layoutScreen walks one screen's phrases top to bottom, emitting either
// a library-backed fragment or a primitive fallback per component and
// advancing a vertical cursor. When the cursor would pass the bottom
// margin, a "(more omitted…)" caption is emitted and the rest of the
// screen's phrases are dropped.
func layoutScreen(b *scene.Builder, p screenParams) []scene.Element {
	g := float64(b.Grid())
	margin := g
	gap := g
	pad := g

	var elements []scene.Element

	// Screen boundary stays transparent so it frames without overwhelming.
	boundary := b.Rect(p.x, p.y, p.w, p.h, scene.RectOpts{Roundness: scene.Roundness(8), SeerLabel: "screen"})
	boundary["backgroundColor"] = "transparent"
	boundary["fillStyle"] = "hachure"
	elements = append(elements, boundary)
	if p.showLabel {
		labelY := math.Max(0, p.y-g)
		elements = append(elements, b.Text(p.x, labelY, p.name, scene.TextOpts{FontSize: 12, Color: b.Theme().MutedText}))
	}

	contentX := p.x + margin
	contentW := p.w - margin*2
	y := p.y + margin

	for _, phrase := range p.phrases {
		c := Classify(phrase)
		switch c.Type {
		case TypeScreen:
			continue

		case TypeDivider:
			elements = append(elements, b.Line(contentX, y, contentX+contentW, y))
			y += gap / 2
			continue

		case TypeSection:
			label := c.Value
			if label == "" {
				label = "Section"
			}
			used := false
			if p.preferLibrary && p.catalog != nil {
				if item := p.catalog.Find("section title"); item != nil {
					group := library.Instantiate(b, item, contentX, y, "", "section")
					fitGroupToBounds(group, contentW, sectionLimit)
					library.RewriteSectionTitle(b, group, label)
					elements = append(elements, group...)
					_, _, _, by1 := scene.GroupBBox(group)
					y = b.Snap(by1 + g)
					used = true
				}
			}
			if !used {
				elements = append(elements, b.Text(contentX+pad, y, strings.ToUpper(label),
					scene.TextOpts{FontSize: 12, Color: b.Theme().MutedText}))
				y = b.Snap(y + g)
			}
			elements = append(elements, b.Line(contentX, y, contentX+contentW, y))
			y = b.Snap(y + g)
			continue

		case TypeText:
			label := c.Value
			if label == "" {
				label = phrase
			}
			elements = append(elements, b.Text(contentX, y, label, scene.TextOpts{FontSize: 16}))
			y += 32
			continue

		case TypeChips:
			items := SplitItems(c.Value)
			if p.preferLibrary && p.catalog != nil && len(items) > 0 {
				if chip := p.catalog.Find("chips"); chip != nil {
					xCursor := contentX
					y0 := y
					maxY1 := y
					for _, itemLabel := range capItems(items, 8) {
						group := library.Instantiate(b, chip, xCursor, y0, itemLabel, "chips")
						elements = append(elements, group...)
						_, _, gx1, gy1 := scene.GroupBBox(group)
						xCursor = b.Snap(gx1 + g)
						maxY1 = math.Max(maxY1, gy1)
					}
					y = b.Snap(maxY1 + gap)
					continue
				}
			}
			caption := strings.Join(items, ", ")
			if caption == "" {
				caption = "chips"
			}
			elements = append(elements, b.Text(contentX, y, caption,
				scene.TextOpts{FontSize: 16, Color: b.Theme().MutedText}))
			y += 32
			continue

		case TypeLib, TypeLibrary:
			// Syntax: "lib: <name>" or "lib: <name> | <label override>".
			parts := strings.SplitN(c.Value, "|", 2)
			itemName := strings.TrimSpace(parts[0])
			labelOverride := ""
			if len(parts) > 1 {
				labelOverride = strings.TrimSpace(parts[1])
			}
			if p.catalog != nil && itemName != "" {
				if item := p.catalog.Find(itemName); item != nil {
					group := library.Instantiate(b, item, contentX, y, labelOverride, "lib")
					elements = append(elements, group...)
					_, _, _, by1 := scene.GroupBBox(group)
					y = b.Snap(by1 + gap)
					continue
				}
			}
			elements = append(elements, b.Text(contentX, y, "lib: "+c.Value,
				scene.TextOpts{FontSize: 16, Color: b.Theme().MutedText}))
			y += 32
			continue
		}

		h := heightByType[c.Type]
		if h == 0 {
			h = defaultComponentHeight
		}
		label := strings.TrimSpace(c.Value)
		if label == "" {
			label = titleCase(string(c.Type))
		}

		if p.preferLibrary && p.catalog != nil {
			if _, known := library.DefaultComponentQueries[string(c.Type)]; known {
				if group, ok := layoutLibraryComponent(b, p.catalog, c.Type, label, contentX, y, contentW, h); ok {
					elements = append(elements, group...)
					_, _, _, gy1 := scene.GroupBBox(group)
					y = b.Snap(gy1 + gap)
					continue
				}
			}
		}

		switch c.Type {
		case TypeHeader:
			rect, txt := b.LabeledRect(contentX, y, contentW, h, label,
				scene.LabeledRectOpts{FontSize: 18, Roundness: scene.Roundness(8), SeerLabel: "header"})
			elements = append(elements, rect, txt)

		case TypeButton:
			// Buttons center in the content column, same as library-backed ones.
			bw := math.Min(contentW, 320)
			rect, txt := b.LabeledRect(contentX+(contentW-bw)/2, y, bw, h, label,
				scene.LabeledRectOpts{FontSize: 18, Roundness: scene.Roundness(6), SeerLabel: "button"})
			elements = append(elements, rect, txt)

		case TypeTabs:
			elements = append(elements, primitiveTabs(b, contentX, y, contentW, h, label)...)

		case TypeInput:
			rect, txt := b.LabeledRect(contentX, y, math.Min(contentW, 520), h, label,
				scene.LabeledRectOpts{FontSize: 16, Roundness: scene.Roundness(6), SeerLabel: "input"})
			txt["strokeColor"] = b.Theme().MutedText
			elements = append(elements, rect, txt)

		case TypeImage:
			rect := b.Rect(contentX, y, contentW, h, scene.RectOpts{Roundness: scene.Roundness(8), SeerLabel: "image"})
			rect["fillStyle"] = "cross-hatch"
			elements = append(elements, rect)
			elements = append(elements, b.Text(contentX+pad, y+pad, label,
				scene.TextOpts{FontSize: 16, Color: b.Theme().MutedText}))

		case TypeList:
			listEls, listH := primitiveList(b, contentX, y, contentW, pad, label)
			elements = append(elements, listEls...)
			h = listH

		default:
			rect, txt := b.LabeledRect(contentX, y, contentW, h, label,
				scene.LabeledRectOpts{FontSize: 16, Roundness: scene.Roundness(8), SeerLabel: string(c.Type)})
			elements = append(elements, rect, txt)
		}

		y += h + gap
		if y > p.y+p.h-margin {
			elements = append(elements, b.Text(contentX, p.y+p.h-margin, "(more omitted…)",
				scene.TextOpts{FontSize: 14, Color: b.Theme().MutedText}))
			break
		}
	}

	return elements
}
