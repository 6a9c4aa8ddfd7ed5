package util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

// BulletMarker prefixes every line of a normalized description.
const BulletMarker = "• "

var (
	descriptionSplitter = regexp.MustCompile(`\r?\n|•|-\s+`)
	lineSplitter        = regexp.MustCompile(`\r?\n+`)
	leadingMarker       = regexp.MustCompile(`^[-•*·]+\s*`)
)

// NormalizeDescription turns a free-form experience description into one
// bullet per line. Text that yields a single sentence is returned without a
// marker.
func NormalizeDescription(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	lines := nonEmpty(descriptionSplitter.Split(text, -1))
	bullets := lines
	if len(lines) == 1 {
		bullets = SplitSentences(lines[0], ".!?")
	}

	switch len(bullets) {
	case 0:
		return text
	case 1:
		return bullets[0]
	}
	return BulletMarker + strings.Join(bullets, "\n"+BulletMarker)
}

// CountBullets returns the number of non-empty lines in a description.
func CountBullets(description string) int {
	return len(nonEmpty(lineSplitter.Split(description, -1)))
}

// DescriptionBullets returns the description's lines with their markers
// removed.
func DescriptionBullets(description string) []string {
	return cleanBullets(lineSplitter.Split(description, -1))
}

// NormalizeBullets accepts the model's "bullets" value as either an array or
// a single string and returns clean, marker-free bullet text.
func NormalizeBullets(v gjson.Result) []string {
	var raw []string
	switch {
	case v.IsArray():
		for _, item := range v.Array() {
			raw = append(raw, Stringify(item))
		}
	case v.Type == gjson.String:
		raw = []string{v.String()}
	default:
		return []string{}
	}

	var split []string
	for _, item := range raw {
		split = append(split, lineSplitter.Split(item, -1)...)
	}
	return cleanBullets(split)
}

// ReconcileBullets forces bullets to exactly target elements. A single bullet
// is first split into sentences; shortfalls repeat the last bullet and
// overflow is cut.
func ReconcileBullets(bullets []string, target int) []string {
	if target < 1 {
		target = 1
	}
	out := make([]string, len(bullets))
	copy(out, bullets)

	if len(out) == target {
		return out
	}
	if len(out) == 1 && target > 1 {
		if sentences := SplitSentences(out[0], ".;!?"); len(sentences) >= target {
			return sentences[:target]
		}
	}
	if len(out) > target {
		return out[:target]
	}

	last := ""
	if len(out) > 0 {
		last = out[len(out)-1]
	}
	for len(out) < target {
		out = append(out, last)
	}
	return out
}

// SplitSentences splits text after any rune in terminators that is followed
// by whitespace. The terminator stays with its sentence.
func SplitSentences(text, terminators string) []string {
	runes := []rune(text)
	var parts []string
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if strings.ContainsRune(terminators, runes[i]) && unicode.IsSpace(runes[i+1]) {
			parts = append(parts, string(runes[start:i+1]))
			start = i + 1
		}
	}
	parts = append(parts, string(runes[start:]))
	return nonEmpty(parts)
}

func cleanBullets(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(leadingMarker.ReplaceAllString(strings.TrimSpace(item), ""))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
