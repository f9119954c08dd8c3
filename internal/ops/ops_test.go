package ops

import (
	"testing"

	"github.com/hpungsan/seer/internal/errors"
	"github.com/hpungsan/seer/internal/scene"
)

func TestResolveTheme_Default(t *testing.T) {
	theme, err := ResolveTheme("")
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}
	if theme != scene.Themes["classic"] {
		t.Errorf("default theme = %+v, want classic", theme)
	}
}

func TestResolveFidelity_Default(t *testing.T) {
	f, err := ResolveFidelity("")
	if err != nil {
		t.Fatalf("ResolveFidelity() error = %v", err)
	}
	if f != scene.FidelityMedium {
		t.Errorf("default fidelity = %q, want medium", f)
	}
}

func TestResolveFidelity_Unknown(t *testing.T) {
	if _, err := ResolveFidelity("ultra"); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("error = %v, want INVALID_REQUEST", err)
	}
}

func TestResolvePreset_EmptyDefersToInference(t *testing.T) {
	_, explicit, err := ResolvePreset("")
	if err != nil {
		t.Fatalf("ResolvePreset() error = %v", err)
	}
	if explicit {
		t.Error("empty preset must defer to inference")
	}
}
