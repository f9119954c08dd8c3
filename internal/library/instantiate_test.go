package library

import (
	"testing"

	"github.com/hpungsan/seer/internal/scene"
)

func testBuilder() *scene.Builder {
	return scene.NewBuilder(42, 20, scene.Themes["classic"], scene.FidelityMedium)
}

func TestInstantiate_FreshIdentifiers(t *testing.T) {
	cat := loadSample(t)
	b := testBuilder()
	item := cat.Find("chips")

	first := Instantiate(b, item, 100, 200, "", "chips")
	second := Instantiate(b, item, 300, 200, "", "chips")

	ids := map[string]bool{}
	groups := map[string]bool{}
	for _, el := range first {
		ids[el.ID()] = true
		for _, g := range el.GroupIDs() {
			groups[g] = true
		}
	}
	for _, el := range second {
		if ids[el.ID()] {
			t.Errorf("instance shares element id %s", el.ID())
		}
		for _, g := range el.GroupIDs() {
			if groups[g] {
				t.Errorf("instance shares group id %s", g)
			}
		}
		if el.ID() == "c1" || el.ID() == "c2" {
			t.Error("catalog identifiers must be remapped")
		}
	}

	// Source item untouched.
	if item.Elements[0].ID() != "c1" {
		t.Error("instantiation mutated the catalog item")
	}
}

func TestInstantiate_AnchorSnapPreservesOffsets(t *testing.T) {
	cat := loadSample(t)
	b := testBuilder()
	item := cat.Find("chips")

	// Fragment top-left is (3, 7); anchor (105, 203) snaps to (100, 200).
	group := Instantiate(b, item, 105, 203, "", "chips")
	x0, y0, _, _ := scene.GroupBBox(group)
	if x0 != 100 || y0 != 200 {
		t.Fatalf("anchored bbox = (%v, %v), want (100, 200)", x0, y0)
	}

	// Internal offset between rect and text is preserved exactly.
	var rect, txt scene.Element
	for _, el := range group {
		switch el.Type() {
		case "rectangle":
			rect = el
		case "text":
			txt = el
		}
	}
	if dx := txt.X() - rect.X(); dx != 12 {
		t.Errorf("internal x offset = %v, want 12", dx)
	}
	if dy := txt.Y() - rect.Y(); dy != 4 {
		t.Errorf("internal y offset = %v, want 4", dy)
	}
}

func TestInstantiate_ProvenanceAndStamps(t *testing.T) {
	cat := loadSample(t)
	b := testBuilder()
	group := Instantiate(b, cat.Find("chips"), 0, 0, "", "chips")
	for _, el := range group {
		if el.Source() != "library" {
			t.Errorf("seerSource = %q, want library", el.Source())
		}
		if el.Label() != "chips" {
			t.Errorf("seerLabel = %q, want chips", el.Label())
		}
		if el.IsDeleted() {
			t.Error("copied element must clear isDeleted")
		}
		if scene.Float(el["seed"], 0) <= 0 || scene.Float(el["versionNonce"], 0) <= 0 {
			t.Error("copied element missing seed stamps")
		}
		if scene.Float(el["updated"], 0) != float64(b.Now()) {
			t.Error("copied element missing fixed updated stamp")
		}
	}
}

func TestInstantiate_BindingRepair(t *testing.T) {
	cat := loadSample(t)
	b := testBuilder()
	group := Instantiate(b, cat.Find("Filled button (text only)"), 40, 40, "", "button")
	if err := scene.Validate(group, b.Grid()); err != nil {
		t.Fatalf("instantiated fragment must satisfy binding invariant: %v", err)
	}
}

func TestInstantiate_LabelOverride(t *testing.T) {
	cat := loadSample(t)
	b := testBuilder()
	group := Instantiate(b, cat.Find("Filled button (text only)"), 40, 40, "Sign up", "button")

	var txt scene.Element
	for _, el := range group {
		if el.Type() == "text" {
			txt = el
		}
	}
	if txt == nil {
		t.Fatal("no text element in instance")
	}
	if txt.Text() != "Sign up" || txt["originalText"] != "Sign up" {
		t.Errorf("label = %q, want Sign up", txt.Text())
	}
}

func TestPickForComponent_BooleanVariants(t *testing.T) {
	onFrag := `{"libraryItems": [
	  {"id": "a", "name": "checkbox-off", "elements": [{"id": "x1", "type": "rectangle", "x": 0, "y": 0, "width": 20, "height": 20}]},
	  {"id": "b", "name": "checkbox-on", "elements": [{"id": "x2", "type": "rectangle", "x": 0, "y": 0, "width": 20, "height": 20}]}
	]}`
	cat, err := Load(writeCatalog(t, onFrag))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if it := PickForComponent(cat, "checkbox", "Remember me (checked)"); it == nil || it.Name != "checkbox-on" {
		t.Errorf("checked label picked %v, want checkbox-on", it)
	}
	if it := PickForComponent(cat, "checkbox", "Remember me"); it == nil || it.Name != "checkbox-off" {
		t.Errorf("plain label picked %v, want checkbox-off", it)
	}
	// "unchecked" contains no bare truthy word, and falsy wins anyway.
	if it := PickForComponent(cat, "checkbox", "Terms (unchecked)"); it == nil || it.Name != "checkbox-off" {
		t.Errorf("unchecked label picked %v, want checkbox-off", it)
	}
}

func TestPickForComponent_Unknown(t *testing.T) {
	cat := loadSample(t)
	if it := PickForComponent(cat, "divider", ""); it != nil {
		t.Errorf("divider picked %v, want nil", it)
	}
}
