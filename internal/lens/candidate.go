package lens

import (
	"encoding/json"
	"strings"
)

// Candidate is one item returned by the search provider. All fields are
// untrusted: titles and prices are free text, links may point anywhere, and
// any field may be absent. Candidates must pass the marketplace filter
// before they reach a response.
type Candidate struct {
	Title     string  `json:"title"`
	Price     string  `json:"price"`
	Source    string  `json:"source"`
	Link      string  `json:"link"`
	Thumbnail string  `json:"thumbnail"`
	Rating    float64 `json:"rating,omitempty"`
	Reviews   int     `json:"reviews,omitempty"`
}

// priceField coerces the provider's two price encodings to a string. Shopping
// results send `"price": "₹1,299"`; visual matches send
// `"price": {"value": "₹1,299", "currency": "INR", ...}`.
type priceField string

func (p *priceField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*p = ""
		return nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			// Malformed price objects degrade to an empty price; the
			// pipeline substitutes a placeholder.
			*p = ""
			return nil
		}
		*p = priceField(obj.Value)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*p = ""
		return nil
	}
	*p = priceField(s)
	return nil
}

// rawResult is the provider's per-item shape, shared by the visual-match and
// shopping-result arrays apart from the price encoding.
type rawResult struct {
	Title     string     `json:"title"`
	Price     priceField `json:"price"`
	Source    string     `json:"source"`
	Link      string     `json:"link"`
	Thumbnail string     `json:"thumbnail"`
	Rating    float64    `json:"rating"`
	Reviews   int        `json:"reviews"`
}

func (r rawResult) candidate() Candidate {
	return Candidate{
		Title:     r.Title,
		Price:     string(r.Price),
		Source:    r.Source,
		Link:      r.Link,
		Thumbnail: r.Thumbnail,
		Rating:    r.Rating,
		Reviews:   r.Reviews,
	}
}
