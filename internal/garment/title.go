package garment

import "strings"

// Scoring weights for the title taxonomy. Exclude hits outweigh include hits
// by a wide margin so a title naming keywords from two slots ("shirt and
// pant set") scores non-positive everywhere and is discarded rather than
// mis-slotted.
const (
	includeWeight = 10
	excludeWeight = 50
)

// slotKeywords holds the include/exclude vocabulary for one slot.
type slotKeywords struct {
	include []string
	exclude []string
}

var titleTaxonomy = map[Slot]slotKeywords{
	SlotUpper: {
		include: []string{"shirt", "top", "blouse", "t-shirt", "kurti", "kurta", "tunic", "sweater", "hoodie", "jacket", "coat", "dress", "saree", "cardigan"},
		exclude: []string{"pant", "trouser", "jean", "skirt", "legging", "palazzo", "shoe", "sneaker", "heel", "sandal", "bag", "watch", "belt"},
	},
	SlotLower: {
		include: []string{"pant", "trouser", "jeans", "skirt", "legging", "palazzo", "jogger", "salwar", "dhoti", "culotte", "shorts"},
		exclude: []string{"shirt", "top", "blouse", "kurti", "dress", "saree", "shoe", "sneaker", "heel", "bag", "watch"},
	},
	SlotFootwear: {
		include: []string{"shoe", "sneaker", "boot", "sandal", "heel", "slipper", "loafer", "flats", "mule", "jutti", "flip flop"},
		exclude: []string{"shirt", "pant", "dress", "kurti", "bag", "watch", "sock"},
	},
	SlotAccessories: {
		include: []string{"bag", "handbag", "purse", "clutch", "watch", "belt", "scarf", "sunglasses", "hat", "cap", "jewellery", "jewelry", "necklace", "earring", "bracelet"},
		exclude: []string{"shirt", "pant", "dress", "kurti", "shoe", "sneaker", "heel"},
	},
}

// TitleClassifier classifies free-text product titles with a scored
// include/exclude taxonomy. Used on the fallback path, where the only
// signal is the title returned by the shopping search.
type TitleClassifier struct{}

var _ Classifier = TitleClassifier{}

// Classify scores the title against every slot (+10 per include keyword hit,
// -50 per exclude hit) and returns the slot with the strictly highest
// positive score. Titles with no positive score, or with two slots tied at
// the top, are unclassifiable.
func (TitleClassifier) Classify(title string) (Slot, bool) {
	lower := strings.ToLower(title)

	var best Slot
	bestScore := 0
	tied := false

	for _, slot := range Slots() {
		kw := titleTaxonomy[slot]
		score := 0
		for _, inc := range kw.include {
			if strings.Contains(lower, inc) {
				score += includeWeight
			}
		}
		for _, exc := range kw.exclude {
			if strings.Contains(lower, exc) {
				score -= excludeWeight
			}
		}

		if score <= 0 {
			continue
		}
		switch {
		case score > bestScore:
			best, bestScore, tied = slot, score, false
		case score == bestScore:
			tied = true
		}
	}

	if bestScore <= 0 || tied {
		return "", false
	}
	return best, true
}
