package compile

import (
	"math"
	"strings"

	"github.com/hpungsan/seer/internal/library"
	"github.com/hpungsan/seer/internal/scene"
)

// layoutLibraryComponent instantiates the best-matching fragment for a
// typed component, fits it to the content column and its height budget,
// recolors it for the active theme, runs type-specific normalization, and
// relabels its captions. Returns ok=false when no fragment matches, in
// which case the caller falls back to a primitive.
func layoutLibraryComponent(b *scene.Builder, catalog *library.Catalog, compType ComponentType,
	label string, contentX, y, contentW, h float64) ([]scene.Element, bool) {
	item := library.PickForComponent(catalog, string(compType), label)
	if item == nil {
		return nil, false
	}

	x0, _, x1, _ := scene.GroupBBox(item.Elements)
	itemW := x1 - x0
	placeX := contentX
	if compType == TypeButton && itemW > 0 && itemW < contentW {
		placeX = contentX + (contentW-itemW)/2
	}

	// Labels are rewritten below with type-specific rules; the generic
	// override would fight them.
	group := library.Instantiate(b, item, placeX, y, "", string(compType))

	maxH := 0.0
	switch compType {
	case TypeHeader, TypeFooter, TypeTabs, TypeCard, TypeImage,
		TypeInput, TypeDropdown, TypeTextarea:
		maxH = h
	}
	fitGroupToBounds(group, contentW, maxH)

	if compType == TypeHeader {
		group = simplifyHeader(group, false)
		hasRect := false
		for _, el := range group {
			if el.Type() == "rectangle" {
				hasRect = true
				break
			}
		}
		if !hasRect {
			bg := b.Rect(contentX, y, contentW, h, scene.RectOpts{Roundness: scene.Roundness(8), SeerLabel: "header"})
			bg.SetBounds(contentX, y, contentW, h)
			group = append([]scene.Element{bg}, group...)
		}
	}

	if maxH > 0 {
		_, gy0, _, gy1 := scene.GroupBBox(group)
		groupH := gy1 - gy0
		if groupH > 0 && maxH > groupH {
			scene.OffsetGroup(group, 0, (maxH-groupH)/2)
		}
	}

	applyThemeToGroup(b, group)

	switch compType {
	case TypeInput:
		normalizeInputGroup(b, group, contentX, y, contentW, h)
	case TypeCard:
		normalizeCardGroup(b, group, contentX, y, contentW, h)
	case TypeHeader:
		normalizeHeaderGroup(b, group, contentX, y, contentW, h)
	}

	switch compType {
	case TypeButton, TypeTabs, TypeFooter:
		gx0, _, gx1, _ := scene.GroupBBox(group)
		groupW := gx1 - gx0
		if groupW > 0 && groupW < contentW {
			scene.OffsetGroup(group, (contentW-groupW)/2, 0)
		}
	}

	switch compType {
	case TypeTabs:
		library.RewriteTabsLabels(b, group, splitLabels(label, "Tab"))
	case TypeButton, TypeHeader, TypeCard:
		if label != "" {
			library.RewriteLabel(b, group, label)
		}
	case TypeFooter:
		if labels := splitLabels(label, ""); len(labels) > 0 {
			library.RewriteFooterLabels(b, group, labels)
		}
	case TypeInput:
		placeholder := label
		if placeholder == "" {
			placeholder = "Input"
		}
		library.RewriteLabelAndPlaceholder(b, group, "", placeholder)
	case TypeDropdown:
		library.RewriteLabelAndPlaceholder(b, group, label, "Select…")
	case TypeTextarea:
		library.RewriteLabelAndPlaceholder(b, group, label, "Enter text…")
	case TypeCheckbox, TypeRadio, TypeToggle:
		cleaned := strings.TrimSpace(stateHintRe.ReplaceAllString(label, ""))
		cleaned = strings.TrimSpace(stateWordRe.ReplaceAllString(cleaned, ""))
		if cleaned != "" {
			library.RewriteLabel(b, group, cleaned)
		}
	}

	return group, true
}

// splitLabels splits a tabs/footer label on pipes, falling back to the
// comma-aware item splitter and finally to def (when non-empty).
func splitLabels(label, def string) []string {
	var labels []string
	for _, l := range pipeSplitRe.Split(label, -1) {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	if len(labels) <= 1 {
		labels = SplitItems(label)
	}
	if len(labels) == 0 {
		if label != "" {
			return []string{label}
		}
		if def != "" {
			return []string{def}
		}
	}
	return labels
}

// fitGroupToBounds uniformly scales a group down (preserving aspect,
// anchored at its top-left) when it exceeds maxW or maxH. Zero bounds
// mean unconstrained. Returns the applied scale.
func fitGroupToBounds(group []scene.Element, maxW, maxH float64) float64 {
	if len(group) == 0 {
		return 1
	}
	gx0, gy0, gx1, gy1 := scene.GroupBBox(group)
	w := gx1 - gx0
	h := gy1 - gy0
	if w <= 0 || h <= 0 {
		return 1
	}

	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = math.Min(scale, maxW/w)
	}
	if maxH > 0 && h > maxH {
		scale = math.Min(scale, maxH/h)
	}
	if scale >= 0.999 {
		return 1
	}

	for _, el := range group {
		if _, ok := el["x"]; ok {
			el.SetX(gx0 + (el.X()-gx0)*scale)
		}
		if _, ok := el["y"]; ok {
			el.SetY(gy0 + (el.Y()-gy0)*scale)
		}
		if _, ok := el["width"]; ok {
			el.SetWidth(el.Width() * scale)
		}
		if _, ok := el["height"]; ok {
			el.SetHeight(el.Height() * scale)
		}
		if pts, ok := el["points"].([]any); ok {
			scaled := make([]any, len(pts))
			for i, p := range pts {
				pair, ok := p.([]any)
				if !ok || len(pair) < 2 {
					scaled[i] = p
					continue
				}
				scaled[i] = []any{
					scene.RoundTo(scene.Float(pair[0], 0)*scale, 1),
					scene.RoundTo(scene.Float(pair[1], 0)*scale, 1),
				}
			}
			el["points"] = scaled
		}
		if el.Type() == "text" {
			if fs, ok := el["fontSize"]; ok {
				el["fontSize"] = scene.Float(fs, 16) * scale
			}
			if bl, ok := el["baseline"]; ok {
				el["baseline"] = scene.Float(bl, 0) * scale
			}
		}
		if sw, ok := el["strokeWidth"]; ok && sw != nil {
			el["strokeWidth"] = math.Max(1, scene.Float(sw, 1)*scale)
		}
	}
	return scale
}

// simplifyHeader drops decoration shapes on the right side of a header
// fragment (action icons, avatars) so the relabeled title reads clean.
func simplifyHeader(group []scene.Element, keepActions bool) []scene.Element {
	if len(group) == 0 || keepActions {
		return group
	}
	gx0, _, gx1, _ := scene.GroupBBox(group)
	cutoff := gx0 + (gx1-gx0)*0.65
	out := group[:0]
	for _, el := range group {
		switch el.Type() {
		case "line", "ellipse", "diamond", "rectangle":
			if el.X() > cutoff {
				continue
			}
		}
		out = append(out, el)
	}
	return out
}

// applyThemeToGroup recolors a fragment instance for the active theme.
// Buttons get a solid dark fill with a white caption; card and image
// backgrounds pick up the container color.
func applyThemeToGroup(b *scene.Builder, group []scene.Element) {
	if len(group) == 0 {
		return
	}
	stroke := b.Theme().Border
	textColor := b.Theme().Text
	strokeWidth := b.StrokeWidth()

	groupLabel := ""
	for _, el := range group {
		if l := el.Label(); l != "" {
			groupLabel = l
			break
		}
	}
	isButton := groupLabel == "button"

	for _, el := range group {
		switch el.Type() {
		case "text":
			if isButton {
				el["strokeColor"] = "#ffffff"
			} else {
				el["strokeColor"] = textColor
			}
		case "rectangle", "ellipse", "diamond", "line", "arrow":
			el["strokeColor"] = stroke
			if sw, ok := el["strokeWidth"]; ok && sw != nil {
				el["strokeWidth"] = strokeWidth
			}
			if isButton && el.Type() == "rectangle" {
				bg, _ := el["backgroundColor"].(string)
				if bg == "" || bg == "transparent" {
					el["backgroundColor"] = "#1e1e1e"
				}
				el["fillStyle"] = "solid"
			}
			if el.Type() == "rectangle" {
				if l := el.Label(); l == "card" || l == "image" {
					el["backgroundColor"] = b.Theme().Container
					el["fillStyle"] = "solid"
					el["roundness"] = map[string]any{"type": 3, "value": 8}
				}
			}
		}
	}
}

// rectWithBoundText finds the fragment's background shape: the first
// rectangle carrying boundElements.
func rectWithBoundText(group []scene.Element) scene.Element {
	for _, el := range group {
		if el.Type() == "rectangle" && len(el.BoundElements()) > 0 {
			return el
		}
	}
	return nil
}

// normalizeInputGroup stretches an input fragment's background to the
// exact target bounds and re-insets its placeholder text.
func normalizeInputGroup(b *scene.Builder, group []scene.Element, x, y, w, h float64) {
	rect := rectWithBoundText(group)
	if rect == nil {
		return
	}
	rect.SetBounds(x, y, w, h)

	byID := map[string]scene.Element{}
	for _, el := range group {
		if id := el.ID(); id != "" {
			byID[id] = el
		}
	}
	grid := float64(b.Grid())
	for _, ref := range rect.BoundElements() {
		tid, _ := ref["id"].(string)
		textEl, ok := byID[tid]
		if !ok {
			continue
		}
		newText := strings.TrimSpace(textEl.Text())
		if newText == "" {
			continue
		}
		fontSize := textEl.FontSize(14)
		newW := math.Max(24, math.Min(w-grid*2, scene.LabelWidth(newText, fontSize)))
		textEl["width"] = scene.RoundTo(newW, 10)
		textEl["height"] = scene.RoundTo(math.Max(textEl.Height(), fontSize*1.6), 10)
		textEl.SetX(x + grid)
		textEl.SetY(y + (h-textEl.Height())/2)
	}
}

// normalizeCardGroup stretches a card fragment's background to the target
// bounds and re-centers its bound caption.
func normalizeCardGroup(b *scene.Builder, group []scene.Element, x, y, w, h float64) {
	rect := rectWithBoundText(group)
	if rect == nil {
		return
	}
	rect.SetBounds(x, y, w, h)

	byID := map[string]scene.Element{}
	for _, el := range group {
		if id := el.ID(); id != "" {
			byID[id] = el
		}
	}
	for _, ref := range rect.BoundElements() {
		tid, _ := ref["id"].(string)
		if textEl, ok := byID[tid]; ok {
			library.SetText(b, group, textEl, textEl.Text())
		}
	}
}

// normalizeHeaderGroup pins the header background to the target bounds,
// left-aligns the title inside it, vertically centers icon glyphs, and
// nudges a leading icon cluster to a fixed inset.
func normalizeHeaderGroup(b *scene.Builder, group []scene.Element, x, y, w, h float64) {
	var rect scene.Element
	for _, el := range group {
		if el.Type() != "rectangle" {
			continue
		}
		if el.Label() == "header" {
			rect = el
			break
		}
		if rect == nil {
			rect = el
		}
	}
	if rect == nil {
		return
	}
	rect.SetBounds(x, y, w, h)

	var texts []scene.Element
	for _, el := range group {
		if el.Type() == "text" {
			if _, ok := el["text"].(string); ok {
				texts = append(texts, el)
			}
		}
	}
	if len(texts) == 0 {
		return
	}
	target := texts[0]
	for _, el := range texts[1:] {
		if el.Y() < target.Y() || (el.Y() == target.Y() && el.X() < target.X()) {
			target = el
		}
	}
	newText := strings.TrimSpace(target.Text())
	if newText == "" {
		return
	}
	grid := float64(b.Grid())
	fontSize := target.FontSize(16)
	newW := math.Max(24, math.Min(w-grid*2, scene.LabelWidth(newText, fontSize)))
	target["width"] = scene.RoundTo(newW, 10)
	target["height"] = scene.RoundTo(math.Max(target.Height(), fontSize*1.6), 10)
	target["textAlign"] = "left"
	target.SetX(x + grid)
	target.SetY(y + (h-target.Height())/2)

	var icons []scene.Element
	for _, el := range group {
		switch el.Type() {
		case "line", "ellipse", "diamond", "arrow":
			icons = append(icons, el)
		}
	}
	if len(icons) == 0 {
		return
	}
	_, iy0, _, iy1 := scene.GroupBBox(icons)
	iconCenter := (iy0 + iy1) / 2
	rectCenter := rect.Y() + rect.Height()/2
	if dy := rectCenter - iconCenter; math.Abs(dy) >= 1 {
		scene.OffsetGroup(icons, 0, dy)
	}

	var leftCluster []scene.Element
	for _, el := range icons {
		if el.X() <= rect.X()+rect.Width()*0.4 {
			leftCluster = append(leftCluster, el)
		}
	}
	if len(leftCluster) == 0 {
		return
	}
	lx0, _, lx1, _ := scene.GroupBBox(leftCluster)
	desiredLeft := rect.X() + grid/2
	dx := desiredLeft - lx0
	if math.Abs(dx) >= 1 {
		scene.OffsetGroup(leftCluster, dx, 0)
	}
	minTextX := lx1 + grid*0.5 + dx
	if target.X() < minTextX {
		target.SetX(minTextX)
	}
}

// primitiveTabs renders a segmented tab strip without library support:
// a transparent outline, separator lines, and one centered caption per
// segment (up to 6).
func primitiveTabs(b *scene.Builder, x, y, w, h float64, label string) []scene.Element {
	labels := splitLabels(label, "Tab")

	rect := b.Rect(x, y, w, h, scene.RectOpts{Roundness: scene.Roundness(6), SeerLabel: "tabs"})
	rect["backgroundColor"] = "transparent"
	rect["fillStyle"] = "hachure"
	elements := []scene.Element{rect}

	n := len(labels)
	if n < 1 {
		n = 1
	}
	if n > 6 {
		n = 6
	}
	segW := w / float64(n)
	for i := 0; i < n; i++ {
		if i > 0 {
			sepX := x + segW*float64(i)
			elements = append(elements, b.Line(sepX, y, sepX, y+h))
		}
		t := "Tab"
		if i < len(labels) {
			t = labels[i]
		}
		labelW := scene.LabelWidth(t, 14)
		labelH := scene.RoundTo(14*1.6, 10)
		tx := x + segW*float64(i) + (segW-labelW)/2
		ty := y + (h-labelH)/2
		elements = append(elements, b.Text(tx, ty, t, scene.TextOpts{
			FontSize: 14, Align: "center", VAlign: "middle", Width: labelW, Height: labelH,
		}))
	}
	return elements
}

// primitiveList renders a bordered list sized to its items (up to 7
// rows), each row a caption with a separating rule above it.
func primitiveList(b *scene.Builder, x, y, w, pad float64, label string) ([]scene.Element, float64) {
	items := SplitItems(label)
	grid := float64(b.Grid())
	rowH := math.Max(grid*2, 32)
	rows := float64(len(items))
	if rows < 1 {
		rows = 1
	}
	listH := grid*2 + rowH*rows

	rect := b.Rect(x, y, w, listH, scene.RectOpts{Roundness: scene.Roundness(8), SeerLabel: "list"})
	rect.SetBounds(x, y, w, listH)
	elements := []scene.Element{rect}

	rowY := y + grid
	for idx, item := range capItems(items, 7) {
		if idx > 0 {
			elements = append(elements, b.Line(x+8, rowY, x+w-8, rowY))
		}
		fontSize := 14.0
		tW, tH := scene.TextSize(item, fontSize)
		baseline := math.Trunc(fontSize * 1.2)
		textY := rowY + rowH/2 - baseline
		elements = append(elements, b.Text(x+pad, textY, item, scene.TextOpts{
			FontSize: fontSize, Width: tW, Height: tH,
		}))
		rowY += rowH
	}
	return elements, listH
}

func capItems(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
