package resolver

import (
	"regexp"
	"strings"
)

var (
	typeSuffix    = regexp.MustCompile(`_type_[^_]+$`)
	variantSuffix = regexp.MustCompile(`_variant_[^_]+$`)
	underscoreRun = regexp.MustCompile(`_{2,}`)
)

// NormalizeLabel canonicalizes a raw detection label into the grouping key
// used by the cart mutator. Variant suffixes are stripped so visually
// distinct crops of the same conceptual product land on one cart line.
func NormalizeLabel(label string) string {
	n := strings.ToLower(strings.TrimSpace(label))
	n = strings.ReplaceAll(n, " ", "_")
	n = underscoreRun.ReplaceAllString(n, "_")

	for {
		stripped := typeSuffix.ReplaceAllString(n, "")
		stripped = variantSuffix.ReplaceAllString(stripped, "")
		if stripped == n {
			break
		}
		n = stripped
	}

	return strings.Trim(n, "_")
}

// TitleLabel turns a raw label into a display name for the no-resolution
// fallback, e.g. "red_apple" -> "Red Apple".
func TitleLabel(label string) string {
	words := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
