package compile

import (
	"regexp"
	"strings"
)

// ComponentType enumerates the closed set of typed UI components.
type ComponentType string

const (
	TypeScreen   ComponentType = "screen"
	TypeHeader   ComponentType = "header"
	TypeTabs     ComponentType = "tabs"
	TypeSection  ComponentType = "section"
	TypeText     ComponentType = "text"
	TypeInput    ComponentType = "input"
	TypeButton   ComponentType = "button"
	TypeDropdown ComponentType = "dropdown"
	TypeTextarea ComponentType = "textarea"
	TypeCheckbox ComponentType = "checkbox"
	TypeRadio    ComponentType = "radio"
	TypeToggle   ComponentType = "toggle"
	TypeChips    ComponentType = "chips"
	TypeCard     ComponentType = "card"
	TypeList     ComponentType = "list"
	TypeImage    ComponentType = "image"
	TypeDivider  ComponentType = "divider"
	TypeFooter   ComponentType = "footer"
	TypeLib      ComponentType = "lib"
	TypeLibrary  ComponentType = "library"
)

// componentTypes is the prefix grammar vocabulary, in declaration order.
var componentTypes = []ComponentType{
	TypeScreen, TypeHeader, TypeTabs, TypeSection, TypeText, TypeInput,
	TypeButton, TypeDropdown, TypeTextarea, TypeCheckbox, TypeRadio,
	TypeToggle, TypeChips, TypeCard, TypeList, TypeImage, TypeDivider,
	TypeFooter, TypeLib, TypeLibrary,
}

// Component is one classified phrase: a typed tag plus its free-form
// value. Produced once by Classify and never re-interpreted downstream.
type Component struct {
	Type  ComponentType
	Value string
}

var (
	prefixRe    = buildPrefixRe()
	addCreateRe = regexp.MustCompile(`(?i)^\s*(add|create)\s+`)
	buttonRe    = regexp.MustCompile(`(?i)\bbutton\b`)
)

func buildPrefixRe() *regexp.Regexp {
	names := make([]string, len(componentTypes))
	for i, t := range componentTypes {
		names[i] = regexp.QuoteMeta(string(t))
	}
	return regexp.MustCompile(`(?i)^\s*(` + strings.Join(names, "|") + `)\s*[:\-]\s*(.*)$`)
}

// classifyRule is one ordered classification attempt. New component
// grammars are added by appending a rule, not by editing control flow.
type classifyRule func(phrase string) (Component, bool)

var classifyRules = []classifyRule{
	// Typed prefix grammar: "<type>: value" or "<type>- value".
	func(phrase string) (Component, bool) {
		m := prefixRe.FindStringSubmatch(phrase)
		if m == nil {
			return Component{}, false
		}
		return Component{
			Type:  ComponentType(strings.ToLower(m[1])),
			Value: strings.TrimSpace(m[2]),
		}, true
	},
	// "add ..." / "create ..." become plain captions.
	func(phrase string) (Component, bool) {
		if !addCreateRe.MatchString(phrase) {
			return Component{}, false
		}
		return Component{
			Type:  TypeText,
			Value: strings.TrimSpace(addCreateRe.ReplaceAllString(phrase, "")),
		}, true
	},
	// A phrase mentioning "button" is a button; the word itself drops out
	// of the label.
	func(phrase string) (Component, bool) {
		if !buttonRe.MatchString(phrase) {
			return Component{}, false
		}
		label := strings.Trim(buttonRe.ReplaceAllString(phrase, ""), " :,-")
		if label == "" {
			label = phrase
		}
		return Component{Type: TypeButton, Value: label}, true
	},
}

// Classify maps one phrase to a typed component. This is a total
// function: the final fallback classifies anything as plain text.
func Classify(phrase string) Component {
	for _, rule := range classifyRules {
		if c, ok := rule(phrase); ok {
			return c
		}
	}
	return Component{Type: TypeText, Value: phrase}
}
