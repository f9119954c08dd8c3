package scene

// Element is one atomic scene unit. Elements are open records: primitives
// built here carry a known field set, while library copies round-trip
// whatever fields the catalog authored. Accessors coerce defensively so a
// single malformed field degrades one component instead of aborting a run.
type Element map[string]any

// Float coerces any JSON-decoded numeric value, returning def on failure.
func Float(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}
	return def
}

// ID returns the element identifier, or "" when missing.
func (e Element) ID() string {
	s, _ := e["id"].(string)
	return s
}

// Type returns the element type tag ("rectangle", "text", "line", ...).
func (e Element) Type() string {
	s, _ := e["type"].(string)
	return s
}

// X returns the element x coordinate.
func (e Element) X() float64 { return Float(e["x"], 0) }

// Y returns the element y coordinate.
func (e Element) Y() float64 { return Float(e["y"], 0) }

// Width returns the element width.
func (e Element) Width() float64 { return Float(e["width"], 0) }

// Height returns the element height.
func (e Element) Height() float64 { return Float(e["height"], 0) }

// SetX stores a rounded x coordinate.
func (e Element) SetX(v float64) { e["x"] = RoundTo(v, 1) }

// SetY stores a rounded y coordinate.
func (e Element) SetY(v float64) { e["y"] = RoundTo(v, 1) }

// SetWidth stores a rounded width.
func (e Element) SetWidth(v float64) { e["width"] = RoundTo(v, 1) }

// SetHeight stores a rounded height.
func (e Element) SetHeight(v float64) { e["height"] = RoundTo(v, 1) }

// SetBounds stores x/y/width/height in one call.
func (e Element) SetBounds(x, y, w, h float64) {
	e.SetX(x)
	e.SetY(y)
	e.SetWidth(w)
	e.SetHeight(h)
}

// Text returns the text content for text elements.
func (e Element) Text() string {
	s, _ := e["text"].(string)
	return s
}

// SetText updates text and originalText together.
func (e Element) SetText(s string) {
	e["text"] = s
	e["originalText"] = s
}

// FontSize returns the font size, defaulting when absent or malformed.
func (e Element) FontSize(def float64) float64 { return Float(e["fontSize"], def) }

// ContainerID returns the bound container id for text elements, or "".
func (e Element) ContainerID() string {
	s, _ := e["containerId"].(string)
	return s
}

// GroupIDs returns the group identifier set, dropping non-string entries.
func (e Element) GroupIDs() []string {
	raw, ok := e["groupIds"].([]any)
	if !ok {
		if gids, ok := e["groupIds"].([]string); ok {
			return gids
		}
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, g := range raw {
		if s, ok := g.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SetGroupIDs replaces the group identifier set.
func (e Element) SetGroupIDs(gids []string) {
	e["groupIds"] = gids
}

// BoundElements returns the container back-reference list.
func (e Element) BoundElements() []map[string]any {
	var out []map[string]any
	switch raw := e["boundElements"].(type) {
	case []any:
		for _, b := range raw {
			if m, ok := b.(map[string]any); ok {
				out = append(out, m)
			}
		}
	case []map[string]any:
		out = raw
	}
	return out
}

// BindText appends a boundElements entry pointing at a text element,
// unless one is already present.
func (e Element) BindText(textID string) {
	bound := e.BoundElements()
	for _, b := range bound {
		if t, _ := b["type"].(string); t == "text" {
			if id, _ := b["id"].(string); id == textID {
				return
			}
		}
	}
	bound = append(bound, map[string]any{"type": "text", "id": textID})
	e["boundElements"] = bound
}

// IsDeleted reports whether the tombstone flag is set.
func (e Element) IsDeleted() bool {
	b, _ := e["isDeleted"].(bool)
	return b
}

// CustomData returns the provenance metadata map, creating it on demand.
func (e Element) CustomData() map[string]any {
	if m, ok := e["customData"].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	e["customData"] = m
	return m
}

// Source returns the provenance source tag ("library" for fragment copies).
func (e Element) Source() string {
	m, ok := e["customData"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m["seerSource"].(string)
	return s
}

// Label returns the semantic component label from provenance metadata.
func (e Element) Label() string {
	m, ok := e["customData"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m["seerLabel"].(string)
	return s
}

// Opacity returns element opacity (0-100), defaulting to 100.
func (e Element) Opacity() float64 { return Float(e["opacity"], 100) }

// Hide sets opacity to zero. Hidden slots stay in the scene so fragment
// structure (groups, bindings) is preserved.
func (e Element) Hide() { e["opacity"] = 0 }

// Clone deep-copies the element, including nested maps, slices and points.
func (e Element) Clone() Element {
	return Element(cloneMap(e))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneMap(item)
		}
		return out
	default:
		return val
	}
}
