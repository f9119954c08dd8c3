package library

import (
	"regexp"
	"strings"
)

// DefaultComponentQueries lists catalog names to try per component type,
// in preference order. Kept conservative: only fragments whose captions
// can be relabeled reliably.
var DefaultComponentQueries = map[string][]string{
	"header":   {"navigation bar"},
	"button":   {"button", "Filled button (text only)", "Outlined button (text only)"},
	"input":    {"textfield", "Text field with placeholder", "Text field with text", "search", "Search field"},
	"tabs":     {"tabs"},
	"dropdown": {"dropdown", "select"},
	"textarea": {"textarea"},
	"checkbox": {"checkbox-off", "checkbox-on", "Checkbox Unchecked", "Checkbox Checked"},
	"radio":    {"radiobutton-off"},
	"toggle":   {"toggle-off"},
	"chips":    {"chips"},
	"card":     {"banner", "carousel banner"},
	"image":    {"product image", "gallery-3-a", "gallery-3-b", "Image placeholder", "Image placeholder (simple)"},
	"footer":   {"tab bar"},
}

var (
	truthyRe = regexp.MustCompile(`\b(on|yes|true|enabled|checked|selected)\b`)
	falsyRe  = regexp.MustCompile(`\b(off|no|false|disabled|unchecked|unselected)\b`)
)

func looksTruthy(s string) bool { return truthyRe.MatchString(s) }
func looksFalsy(s string) bool  { return falsyRe.MatchString(s) }

func (c *Catalog) findFirst(queries ...string) *Item {
	for _, q := range queries {
		if it := c.Find(q); it != nil {
			return it
		}
	}
	return nil
}

// PickForComponent resolves the best fragment for a component type,
// steered by label heuristics: boolean-looking labels select the
// "checked/on" variants, search inputs prefer search fields.
func PickForComponent(c *Catalog, componentType, label string) *Item {
	label = strings.ToLower(strings.TrimSpace(label))

	switch componentType {
	case "input":
		if label != "" {
			if it := c.findFirst("textfield", "Text field with placeholder", "Text field with text"); it != nil {
				return it
			}
			if strings.Contains(label, "search") {
				if it := c.findFirst("search", "Search field", "Search Input"); it != nil {
					return it
				}
			}
		}
	case "header":
		if it := c.Find("navigation bar"); it != nil {
			return it
		}
	case "button":
		if it := c.findFirst("button", "Filled button (text only)", "Outlined button (text only)"); it != nil {
			return it
		}
	case "dropdown":
		if it := c.findFirst("dropdown", "select"); it != nil {
			return it
		}
	case "textarea":
		if it := c.Find("textarea"); it != nil {
			return it
		}
	case "checkbox":
		if label != "" && looksTruthy(label) && !looksFalsy(label) {
			if it := c.findFirst("checkbox-on", "Checkbox Checked"); it != nil {
				return it
			}
		}
		if it := c.findFirst("checkbox-off", "Checkbox Unchecked"); it != nil {
			return it
		}
	case "radio":
		if label != "" && looksTruthy(label) && !looksFalsy(label) {
			if it := c.Find("radiobutton-on"); it != nil {
				return it
			}
		}
		if it := c.Find("radiobutton-off"); it != nil {
			return it
		}
	case "toggle":
		if label != "" && looksTruthy(label) && !looksFalsy(label) {
			if it := c.Find("toggle-on"); it != nil {
				return it
			}
		}
		if it := c.Find("toggle-off"); it != nil {
			return it
		}
	case "chips":
		if it := c.Find("chips"); it != nil {
			return it
		}
	case "card":
		if it := c.findFirst("banner", "carousel banner"); it != nil {
			return it
		}
	case "tabs":
		if it := c.findFirst("tabs", "tab bar"); it != nil {
			return it
		}
	case "image":
		if it := c.findFirst("product image", "gallery-3-a", "gallery-3-b", "Image placeholder"); it != nil {
			return it
		}
	case "footer":
		if it := c.Find("tab bar"); it != nil {
			return it
		}
	}

	for _, q := range DefaultComponentQueries[componentType] {
		if it := c.Find(q); it != nil {
			return it
		}
	}
	return nil
}
