package compile

import (
	"crypto/sha256"
	"encoding/binary"
	"regexp"
	"strings"

	"github.com/hpungsan/seer/internal/scene"
)

var (
	sizeRe       = regexp.MustCompile(`(\d{2,5})\s*[x×]\s*(\d{2,5})`)
	slugSpaceRe  = regexp.MustCompile(`\s+`)
	slugStripRe  = regexp.MustCompile(`[^a-z0-9._-]+`)
	presetOrder  = []string{"mobile", "desktop", "tablet"}
	presetWordRe = map[string]*regexp.Regexp{
		"mobile":  regexp.MustCompile(`\bmobile\b`),
		"desktop": regexp.MustCompile(`\bdesktop\b`),
		"tablet":  regexp.MustCompile(`\btablet\b`),
	}
)

// InferPreset guesses a canvas preset from prompt wording, defaulting to
// mobile.
func InferPreset(text string) scene.CanvasPreset {
	lowered := strings.ToLower(text)
	for _, key := range presetOrder {
		if presetWordRe[key].MatchString(lowered) {
			return scene.Presets[key]
		}
	}
	if strings.Contains(lowered, "iphone") || strings.Contains(lowered, "ios") ||
		strings.Contains(lowered, "android") || strings.Contains(lowered, "mobile") {
		return scene.Presets["mobile"]
	}
	if strings.Contains(lowered, "desktop") || strings.Contains(lowered, "web") {
		return scene.Presets["desktop"]
	}
	return scene.Presets["mobile"]
}

// InferSize extracts an explicit "WxH" canvas size from text. Both
// dimensions must be at least 100 to count.
func InferSize(text string) (w, h int, ok bool) {
	m := sizeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	w = atoiOrZero(m[1])
	h = atoiOrZero(m[2])
	if w < 100 || h < 100 {
		return 0, 0, false
	}
	return w, h, true
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// Slugify reduces a run name to a filesystem-safe slug, defaulting to
// "wireframe".
func Slugify(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	slug = slugStripRe.ReplaceAllString(slug, "")
	if slug == "" {
		return "wireframe"
	}
	return slug
}

// StableSeed derives a deterministic 31-bit seed from the normalized
// build inputs, so repeated identical invocations reproduce the same
// document without caller bookkeeping.
func StableSeed(parts ...string) int64 {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint32(sum[:4]) & 0x7FFFFFFF)
}
