package analysis

import (
	"math"
	"regexp"
	"strings"
)

// colorFamilies groups common color synonyms so "charcoal" still matches
// "black" at reduced weight.
var colorFamilies = [][]string{
	{"black", "charcoal", "ebony", "jet"},
	{"white", "ivory", "cream", "offwhite", "eggshell"},
	{"red", "crimson", "scarlet", "burgundy", "maroon"},
	{"blue", "navy", "cobalt", "azure", "sapphire"},
	{"green", "emerald", "olive", "sage", "lime"},
	{"yellow", "gold", "golden", "mustard", "amber"},
	{"pink", "rose", "blush", "magenta", "fuchsia"},
	{"purple", "violet", "lavender", "plum", "mauve"},
	{"brown", "tan", "beige", "taupe", "khaki"},
	{"gray", "grey", "silver", "slate", "charcoal"},
	{"orange", "coral", "peach", "rust", "terracotta"},
}

// patternFamilies groups pattern names that describe the same visual style.
var patternFamilies = [][]string{
	{"solid", "plain", "single color", "onecolor"},
	{"striped", "stripes", "stripy", "lined"},
	{"floral", "flower", "flowers", "botanical"},
	{"geometric", "shapes", "angular", "abstract"},
	{"polka-dot", "polkadot", "dots", "spotted"},
	{"checkered", "checked", "plaid", "gingham"},
	{"printed", "print", "graphic"},
	{"paisley", "paisley print"},
	{"embroidered", "embroidery"},
	{"lace", "lacework"},
}

var colorSeparators = regexp.MustCompile(`[\s-]+`)

func normalizeColor(color string) string {
	return colorSeparators.ReplaceAllString(strings.ToLower(color), "")
}

// ColorSimilarity scores how similar two sets of color names are, 0-100.
// Exact matches count fully, substring matches partially, and same-family
// matches (navy vs blue) at half weight.
func ColorSimilarity(colors1, colors2 []string) int {
	if len(colors1) == 0 || len(colors2) == 0 {
		return 0
	}

	matches := 0.0
	for _, raw1 := range colors1 {
		c1 := normalizeColor(raw1)
		for _, raw2 := range colors2 {
			c2 := normalizeColor(raw2)

			if c1 == c2 {
				matches += 1
				continue
			}
			if strings.Contains(c1, c2) || strings.Contains(c2, c1) {
				matches += 0.7
				continue
			}
			for _, family := range colorFamilies {
				in1 := inFamily(family, c1)
				in2 := inFamily(family, c2)
				if in1 && in2 {
					matches += 0.5
					break
				}
			}
		}
	}

	denom := len(colors1)
	if len(colors2) > denom {
		denom = len(colors2)
	}
	similarity := int(math.Round(matches / float64(denom) * 100))
	if similarity > 100 {
		similarity = 100
	}
	return similarity
}

func inFamily(family []string, color string) bool {
	for _, f := range family {
		if strings.Contains(color, f) || strings.Contains(f, color) {
			return true
		}
	}
	return false
}

// PatternSimilarity scores how similar two patterns are, 0-100. Identical
// pattern types score 100; same-family patterns score 80-100 depending on
// how much the detail descriptions overlap; a pattern keyword appearing in
// the other's detail text scores 50.
func PatternSimilarity(pattern1, details1, pattern2, details2 string) int {
	p1 := strings.ToLower(strings.TrimSpace(pattern1))
	p2 := strings.ToLower(strings.TrimSpace(pattern2))
	d1 := strings.ToLower(strings.TrimSpace(details1))
	d2 := strings.ToLower(strings.TrimSpace(details2))

	if p1 == p2 {
		return 100
	}

	for _, family := range patternFamilies {
		in1 := inFamily(family, p1)
		in2 := inFamily(family, p2)
		if !in1 || !in2 {
			continue
		}

		words1 := strings.Fields(d1)
		words2 := strings.Fields(d2)
		common := 0
		for _, w1 := range words1 {
			if len(w1) < 3 {
				continue
			}
			for _, w2 := range words2 {
				if strings.Contains(w1, w2) || strings.Contains(w2, w1) {
					common++
					break
				}
			}
		}

		denom := len(words1)
		if len(words2) > denom {
			denom = len(words2)
		}
		detailSimilarity := 0.0
		if denom > 0 {
			detailSimilarity = float64(common) / float64(denom) * 100
		}
		score := int(math.Round(80 + detailSimilarity*0.2))
		if score > 100 {
			score = 100
		}
		return score
	}

	if p1 != "" && p2 != "" && (strings.Contains(d1, p2) || strings.Contains(d2, p1)) {
		return 50
	}
	return 0
}
