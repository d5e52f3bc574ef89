package garment

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// directLabels maps known detector class names to slots. Checked before the
// generic keyword fallback so the detector's own vocabulary always wins.
// Order matters: earlier entries take precedence.
var directLabels = []struct {
	substr string
	slot   Slot
}{
	{"upper body", SlotUpper},
	{"lower body", SlotLower},
	{"shoes", SlotFootwear},
	{"jewelleries", SlotAccessories},
	{"jewellery", SlotAccessories},
	{"bags", SlotAccessories},
	{"watches", SlotAccessories},
}

// genericLabels is the keyword fallback for detector models with a flat
// per-garment vocabulary (shirt, jeans, heels, ...).
var genericLabels = []struct {
	slot     Slot
	keywords []string
}{
	{SlotUpper, []string{"shirt", "top", "blouse", "jacket", "coat", "sweater", "hoodie", "dress", "kurti", "saree"}},
	{SlotLower, []string{"pant", "trouser", "jeans", "short", "skirt", "legging", "salwar", "dhoti"}},
	{SlotFootwear, []string{"shoe", "sneaker", "boot", "sandal", "heel", "slipper"}},
	{SlotAccessories, []string{"bag", "purse", "hat", "cap", "sunglasses", "watch", "scarf", "belt", "jewelry"}},
}

// LabelClassifier classifies detector class labels.
type LabelClassifier struct{}

var _ Classifier = LabelClassifier{}

// Classify maps a detector class label to a slot. Labels outside both the
// direct mapping and the keyword fallback are reported unmatched and the
// caller drops the detection.
func (LabelClassifier) Classify(label string) (Slot, bool) {
	lower := strings.ToLower(label)

	for _, d := range directLabels {
		if strings.Contains(lower, d.substr) {
			return d.slot, true
		}
	}

	for _, g := range genericLabels {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.slot, true
			}
		}
	}

	log.Debug().Str("class", label).Msg("Detector label matched no garment slot")
	return "", false
}
