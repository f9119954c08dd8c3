// Package compile turns loosely structured text descriptions of
// application screens into a validated scene document.
package compile

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bulletRe   = regexp.MustCompile(`^[-*•]\s*`)
	sentenceRe = regexp.MustCompile(`\.\s+`)
	splitRe    = regexp.MustCompile(`[;|]+`)
	quotedRe   = regexp.MustCompile(`"[^"]+"|'[^']+'`)
	itemSepRe  = regexp.MustCompile(`[,\n]+`)
	quoteRefRe = regexp.MustCompile(`__Q(\d+)__`)
)

// ExtractPhrases splits raw input text into an ordered phrase sequence.
// Multi-line input yields one phrase per non-blank line (bullet markers
// stripped); single-line input splits on ';'/'|', falling back to
// sentence boundaries when that yields a single phrase.
func ExtractPhrases(text string) []string {
	var rawLines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			rawLines = append(rawLines, ln)
		}
	}
	if len(rawLines) >= 2 {
		out := make([]string, 0, len(rawLines))
		for _, ln := range rawLines {
			if p := strings.TrimSpace(bulletRe.ReplaceAllString(ln, "")); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	parts := nonBlank(splitRe.Split(text, -1))
	if len(parts) == 1 {
		parts = nonBlank(sentenceRe.Split(text, -1))
	}
	return parts
}

// SplitItems splits a comma/newline-separated value into items, keeping
// quoted spans (single or double) intact.
func SplitItems(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var quoted []string
	tmp := quotedRe.ReplaceAllStringFunc(text, func(m string) string {
		quoted = append(quoted, m[1:len(m)-1])
		return "__Q" + strconv.Itoa(len(quoted)-1) + "__"
	})

	var out []string
	for _, p := range itemSepRe.Split(tmp, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = quoteRefRe.ReplaceAllStringFunc(p, func(m string) string {
			idx, err := strconv.Atoi(quoteRefRe.FindStringSubmatch(m)[1])
			if err != nil || idx >= len(quoted) {
				return m
			}
			return quoted[idx]
		})
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func nonBlank(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
