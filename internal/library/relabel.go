package library

import (
	"math"
	"sort"
	"strings"

	"github.com/hpungsan/seer/internal/scene"
)

// preferredCaptions are placeholder texts that mark a fragment's main
// caption slot.
var preferredCaptions = map[string]bool{
	"button":      true,
	"search":      true,
	"placeholder": true,
	"text":        true,
	"title":       true,
	"label":       true,
	"name":        true,
}

func textElements(group []scene.Element) []scene.Element {
	var texts []scene.Element
	for _, el := range group {
		if el.Type() == "text" {
			if _, ok := el["text"].(string); ok {
				texts = append(texts, el)
			}
		}
	}
	return texts
}

func elementsByID(group []scene.Element) map[string]scene.Element {
	byID := make(map[string]scene.Element, len(group))
	for _, el := range group {
		if id := el.ID(); id != "" {
			byID[id] = el
		}
	}
	return byID
}

// SetText rewrites one caption in place, recomputing its width from the
// new label length. Container-bound captions are re-centered (or
// left-inset) inside their container; free-standing captions get a fresh
// width/height so the new label never clips. Library internals are
// rounded to 1px, never grid-snapped, to avoid distorting hand-authored
// layouts.
func SetText(b *scene.Builder, group []scene.Element, target scene.Element, newText string) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return
	}
	target.SetText(newText)

	fontSize := target.FontSize(16)
	grid := float64(b.Grid())

	if cid := target.ContainerID(); cid != "" {
		container, ok := elementsByID(group)[cid]
		if !ok {
			return
		}
		cw := container.Width()
		cx := container.X()
		ch := container.Height()
		cy := container.Y()

		newW := math.Min(cw-grid*2, scene.LabelWidth(newText, fontSize))
		newW = math.Max(24, newW)
		target["width"] = scene.RoundTo(newW, 10)

		if align, _ := target["textAlign"].(string); align == "center" {
			th := scene.Float(target["height"], 20)
			target.SetX(cx + (cw-target.Width())/2)
			target.SetY(cy + (ch-th)/2)
		} else {
			target.SetX(cx + grid)
		}
		return
	}

	target["width"] = scene.RoundTo(scene.LabelWidth(newText, fontSize), 10)
	target["height"] = scene.RoundTo(math.Max(target.Height(), fontSize*1.6), 10)
}

// RewriteLabel rewrites a fragment's most plausible caption: known
// placeholder texts score highest, container-bound captions next, widest
// wins ties.
func RewriteLabel(b *scene.Builder, group []scene.Element, newText string) {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return
	}
	texts := textElements(group)
	if len(texts) == 0 {
		return
	}

	score := func(el scene.Element) (int, float64) {
		s := 0
		if preferredCaptions[strings.ToLower(strings.TrimSpace(el.Text()))] {
			s += 2
		}
		if el.ContainerID() != "" {
			s++
		}
		return s, el.Width()
	}
	sort.SliceStable(texts, func(i, j int) bool {
		si, wi := score(texts[i])
		sj, wj := score(texts[j])
		if si != sj {
			return si > sj
		}
		return wi > wj
	})
	SetText(b, group, texts[0], newText)
}

// RewriteTabsLabels reassigns a tabs fragment's captions left-to-right
// from the given label list. Extra fragment captions keep their text.
func RewriteTabsLabels(b *scene.Builder, group []scene.Element, labels []string) {
	labels = cleanLabels(labels)
	if len(labels) == 0 {
		return
	}
	texts := textElements(group)
	if len(texts) == 0 {
		return
	}
	sort.SliceStable(texts, func(i, j int) bool { return texts[i].X() < texts[j].X() })
	for i, el := range texts {
		if i >= len(labels) {
			break
		}
		SetText(b, group, el, labels[i])
	}
}

// RewriteSectionTitle upper-cases the fragment's first caption (lowest Y,
// then lowest X) as the section title and hides the optional trailing
// action caption ("View All >" style) if present.
func RewriteSectionTitle(b *scene.Builder, group []scene.Element, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	texts := textElements(group)
	if len(texts) == 0 {
		return
	}
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y() != texts[j].Y() {
			return texts[i].Y() < texts[j].Y()
		}
		return texts[i].X() < texts[j].X()
	})
	SetText(b, group, texts[0], strings.ToUpper(title))
	if len(texts) > 1 {
		texts[1].Hide()
	}
}

// RewriteFooterLabels assigns labels left-to-right across a footer
// fragment's captions, keeping each caption centered on its slot.
// Unlabeled slots are hidden, not removed, so the fragment's grouping
// stays intact.
func RewriteFooterLabels(b *scene.Builder, group []scene.Element, labels []string) {
	labels = cleanLabels(labels)
	if len(labels) == 0 {
		return
	}
	texts := textElements(group)
	if len(texts) == 0 {
		return
	}
	sort.SliceStable(texts, func(i, j int) bool { return texts[i].X() < texts[j].X() })
	for idx, el := range texts {
		if idx >= len(labels) {
			el.Hide()
			continue
		}
		newText := labels[idx]
		centerX := el.X() + el.Width()/2
		fontSize := el.FontSize(12)
		newW := scene.RoundTo(scene.LabelWidth(newText, fontSize), 10)
		el.SetText(newText)
		el["width"] = newW
		el["height"] = scene.RoundTo(math.Max(el.Height(), fontSize*1.6), 10)
		el.SetX(centerX - newW/2)
	}
}

// RewriteLabelAndPlaceholder updates an input-style fragment: the label
// goes to the top-most free-standing caption (hidden entirely when no
// label is wanted), the placeholder to the widest container-bound one.
func RewriteLabelAndPlaceholder(b *scene.Builder, group []scene.Element, label, placeholder string) {
	label = strings.TrimSpace(label)
	placeholder = strings.TrimSpace(placeholder)
	if label == "" && placeholder == "" {
		return
	}
	texts := textElements(group)
	if len(texts) == 0 {
		return
	}

	var labelTargets, placeholderTargets []scene.Element
	for _, el := range texts {
		if el.ContainerID() == "" {
			labelTargets = append(labelTargets, el)
		} else {
			placeholderTargets = append(placeholderTargets, el)
		}
	}

	if label != "" && len(labelTargets) > 0 {
		sort.SliceStable(labelTargets, func(i, j int) bool {
			if labelTargets[i].Y() != labelTargets[j].Y() {
				return labelTargets[i].Y() < labelTargets[j].Y()
			}
			return labelTargets[i].Width() > labelTargets[j].Width()
		})
		SetText(b, group, labelTargets[0], label)
	} else if len(labelTargets) > 0 {
		for _, el := range labelTargets {
			el.Hide()
		}
	}

	if placeholder != "" && len(placeholderTargets) > 0 {
		sort.SliceStable(placeholderTargets, func(i, j int) bool {
			return placeholderTargets[i].Width() > placeholderTargets[j].Width()
		})
		SetText(b, group, placeholderTargets[0], placeholder)
	}
}

func cleanLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
