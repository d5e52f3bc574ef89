// Package garment buckets clothing items into the four slots every search
// result is organised by: upper, lower, footwear, and accessories.
//
// Two classification strategies share the Classifier interface. The detector
// path classifies short model class labels ("upper body clothes", "shoes");
// the fallback path classifies free-text product titles, which are noisier
// and need a scored taxonomy that suppresses ambiguous items ("shirt and
// pant set") instead of guessing a slot for them.
package garment

// Slot is one of the four garment categories.
type Slot string

const (
	SlotUpper       Slot = "upper"
	SlotLower       Slot = "lower"
	SlotFootwear    Slot = "footwear"
	SlotAccessories Slot = "accessories"
)

// Slots returns all slots in their canonical order. The order is stable so
// fallback query fan-out and response assembly are deterministic.
func Slots() []Slot {
	return []Slot{SlotUpper, SlotLower, SlotFootwear, SlotAccessories}
}

// Classifier maps a free-text garment description to a slot.
// The second return is false when the text matches no slot; such items are
// dropped by the caller rather than forced into a bucket.
type Classifier interface {
	Classify(text string) (Slot, bool)
}
