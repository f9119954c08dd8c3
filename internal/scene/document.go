package scene

import (
	"bytes"
	"encoding/json"
)

// Zoom is the initial zoom hint stored in appState.
type Zoom struct {
	Value float64 `json:"value"`
}

// AppState carries viewer settings for the emitted document.
type AppState struct {
	GridSize            int     `json:"gridSize"`
	ViewBackgroundColor string  `json:"viewBackgroundColor"`
	Zoom                Zoom    `json:"zoom"`
	ScrollX             float64 `json:"scrollX"`
	ScrollY             float64 `json:"scrollY"`
}

// Document is the scene envelope written to disk. Built once by the
// canvas composer and immutable once validated.
type Document struct {
	Type     string         `json:"type"`
	Version  int            `json:"version"`
	Source   string         `json:"source"`
	Elements []Element      `json:"elements"`
	AppState AppState       `json:"appState"`
	Files    map[string]any `json:"files"`
}

// NewDocument assembles the document envelope. The zoom hint shrinks when
// more than one screen is present to improve initial framing.
func NewDocument(elements []Element, gridSize int, background string, screenCount int) *Document {
	zoom := 1.0
	if screenCount > 1 {
		zoom = 0.8
	}
	if elements == nil {
		elements = []Element{}
	}
	return &Document{
		Type:     "excalidraw",
		Version:  2,
		Source:   "https://excalidraw.com",
		Elements: elements,
		AppState: AppState{
			GridSize:            gridSize,
			ViewBackgroundColor: background,
			Zoom:                Zoom{Value: zoom},
		},
		Files: map[string]any{},
	}
}

// Marshal serializes the document with two-space indentation and a
// trailing newline. Map keys marshal in sorted order, so output is
// byte-stable for a fixed element list.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
