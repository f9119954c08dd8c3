package library

import (
	"os"
	"path/filepath"
	"testing"

	seererrors "github.com/hpungsan/seer/internal/errors"
)

const sampleCatalog = `{
  "type": "excalidrawlib",
  "version": 2,
  "libraryItems": [
    {
      "id": "btn-1",
      "name": "Filled button (text only)",
      "elements": [
        {"id": "r1", "type": "rectangle", "x": 0, "y": 0, "width": 160, "height": 48,
         "groupIds": ["g1"], "boundElements": [{"type": "text", "id": "t1"}]},
        {"id": "t1", "type": "text", "x": 40, "y": 12, "width": 80, "height": 24,
         "text": "Button", "originalText": "Button", "fontSize": 16,
         "textAlign": "center", "containerId": "r1", "groupIds": ["g1"]}
      ]
    },
    {
      "id": "empty-1",
      "name": "Broken fragment",
      "elements": []
    },
    {
      "id": "chip-1",
      "name": "chips",
      "elements": [
        {"id": "c1", "type": "rectangle", "x": 3, "y": 7, "width": 72, "height": 28,
         "groupIds": ["g2"], "boundElements": [{"type": "text", "id": "c2"}]},
        {"id": "c2", "type": "text", "x": 15, "y": 11, "width": 48, "height": 20,
         "text": "Chip", "originalText": "Chip", "fontSize": 13,
         "textAlign": "center", "containerId": "c1", "groupIds": ["g2"]}
      ]
    }
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kit.excalidrawlib")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func loadSample(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return cat
}

func TestLoad_DiscardsEmptyFragments(t *testing.T) {
	cat := loadSample(t)
	if cat.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (empty fragment discarded)", cat.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.excalidrawlib"))
	if !seererrors.Is(err, seererrors.ErrCatalogUnreadable) {
		t.Fatalf("err = %v, want CATALOG_UNREADABLE", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	_, err := Load(writeCatalog(t, "{not json"))
	if !seererrors.Is(err, seererrors.ErrCatalogUnreadable) {
		t.Fatalf("err = %v, want CATALOG_UNREADABLE", err)
	}
}

func TestFind_ExactCaseInsensitive(t *testing.T) {
	cat := loadSample(t)
	it := cat.Find("CHIPS")
	if it == nil || it.Name != "chips" {
		t.Fatalf("Find(CHIPS) = %v", it)
	}
}

func TestFind_Substring(t *testing.T) {
	cat := loadSample(t)
	it := cat.Find("filled button")
	if it == nil || it.Name != "Filled button (text only)" {
		t.Fatalf("Find(filled button) = %v", it)
	}
}

func TestFind_NoMatch(t *testing.T) {
	cat := loadSample(t)
	if it := cat.Find("carousel"); it != nil {
		t.Fatalf("Find(carousel) = %v, want nil", it)
	}
	if it := cat.Find("   "); it != nil {
		t.Fatalf("Find(blank) = %v, want nil", it)
	}
}

func TestLoad_LegacyLibraryKey(t *testing.T) {
	legacy := `{"library": [{"id": "a", "name": "divider",
	  "elements": [{"id": "l1", "type": "line", "x": 0, "y": 0, "width": 100, "height": 0}]}]}`
	cat, err := Load(writeCatalog(t, legacy))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cat.Find("divider") == nil {
		t.Fatal("legacy library key not honored")
	}
}
