// Package pipeline orchestrates the visual product search: detect garments
// in a style's reference photo, crop each region, run a reverse-image
// search per garment, and return marketplace-filtered matches grouped into
// the four garment slots. When detection fails or finds nothing, the
// pipeline falls back to four full-image category searches.
package pipeline

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nkapoor/stylematch/internal/detect"
	"github.com/nkapoor/stylematch/internal/garment"
	"github.com/nkapoor/stylematch/internal/imagecrop"
	"github.com/nkapoor/stylematch/internal/lens"
	"github.com/nkapoor/stylematch/internal/marketplace"
)

// DefaultTimeout bounds one full pipeline run. A slow detector or search
// provider cancels the whole request rather than hanging the caller.
const DefaultTimeout = 90 * time.Second

// maxPerSlot caps how many products each slot carries in the response.
const maxPerSlot = 10

// Placeholder values for fields the search provider omitted. The response
// schema is always fully populated.
const (
	placeholderTitle  = "Matching product"
	placeholderPrice  = "Price unavailable"
	placeholderSource = "Online store"
	placeholderLink   = "#"
)

// fallbackQueries are the canned full-image category searches, one per
// slot, scoped to the target market.
var fallbackQueries = map[garment.Slot]string{
	garment.SlotUpper:       "trendy shirts and tops online india",
	garment.SlotLower:       "jeans trousers and pants online india",
	garment.SlotFootwear:    "shoes and footwear online india",
	garment.SlotAccessories: "watches bags and jewellery online india",
}

// Detector finds garments in a remote image.
type Detector interface {
	Detect(ctx context.Context, imageURL string) (*detect.Result, error)
}

// Searcher runs reverse-image and shopping searches against the visual
// search provider.
type Searcher interface {
	SearchByImageBytes(ctx context.Context, imageData []byte) ([]lens.Candidate, error)
	SearchShopping(ctx context.Context, query string) ([]lens.Candidate, error)
}

// SearchedProduct is one shoppable match in the response.
type SearchedProduct struct {
	Title           string       `json:"title"`
	Price           string       `json:"price"`
	Source          string       `json:"source"`
	Link            string       `json:"link"`
	Thumbnail       string       `json:"thumbnail"`
	Category        garment.Slot `json:"category"`
	Rating          float64      `json:"rating,omitempty"`
	Reviews         int          `json:"reviews,omitempty"`
	MatchPercentage int          `json:"matchPercentage"`
}

// Response maps each garment slot to its ranked products. All four keys
// are always present; a slot with no matches is an empty list, never null.
type Response struct {
	Upper       []SearchedProduct `json:"upper"`
	Lower       []SearchedProduct `json:"lower"`
	Footwear    []SearchedProduct `json:"footwear"`
	Accessories []SearchedProduct `json:"accessories"`
}

// Pipeline wires the detector, search provider, classifiers, and
// marketplace filter into one run-per-request orchestrator.
type Pipeline struct {
	Detector   Detector
	Searcher   Searcher
	HTTPClient *http.Client

	Labels garment.LabelClassifier
	Titles garment.TitleClassifier
	Filter *marketplace.Filter

	// Timeout bounds one SearchProducts call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// New creates a Pipeline with the default classifiers, marketplace filter,
// and HTTP client.
func New(detector Detector, searcher Searcher) *Pipeline {
	return &Pipeline{
		Detector:   detector,
		Searcher:   searcher,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Filter:     marketplace.NewFilter(),
	}
}

// SearchProducts runs the full pipeline for one reference image.
func (p *Pipeline) SearchProducts(ctx context.Context, imageURL string) (*Response, error) {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slots := p.detectAndSearch(ctx, imageURL)
	if slots == nil {
		var err error
		slots, err = p.fallbackSearch(ctx, imageURL)
		if err != nil {
			return nil, err
		}
	}
	return merge(slots), nil
}

// detectAndSearch runs the primary per-garment path. It returns nil when
// the run should fall back to full-image search: detector error, zero
// detections, or no garment could be prepared for searching.
func (p *Pipeline) detectAndSearch(ctx context.Context, imageURL string) map[garment.Slot][]lens.Candidate {
	result, err := p.Detector.Detect(ctx, imageURL)
	if err != nil {
		log.Warn().Err(err).Msg("Garment detection failed, falling back to category search")
		return nil
	}
	if len(result.Detections) == 0 {
		log.Info().Str("image_url", imageURL).Msg("No garments detected, falling back to category search")
		return nil
	}

	data, err := imagecrop.Download(ctx, p.HTTPClient, imageURL)
	if err != nil {
		log.Warn().Err(err).Msg("Source image download failed, falling back to category search")
		return nil
	}
	src, err := imagecrop.Decode(data)
	if err != nil {
		log.Warn().Err(err).Msg("Source image decode failed, falling back to category search")
		return nil
	}

	slots := make(map[garment.Slot][]lens.Candidate)
	searched := 0

	// Garments are searched one at a time. The search provider tolerates
	// far less concurrency than the coarse fallback queries.
	for _, d := range result.Detections {
		slot, ok := p.Labels.Classify(d.Class)
		if !ok {
			continue
		}
		region, err := imagecrop.RegionFor(d, result.ImageWidth, result.ImageHeight)
		if err != nil {
			log.Warn().Err(err).Str("class", d.Class).Msg("Skipping garment with degenerate region")
			continue
		}
		cropped, err := imagecrop.Crop(src, region)
		if err != nil {
			log.Warn().Err(err).Str("class", d.Class).Msg("Skipping garment that failed to crop")
			continue
		}

		candidates, err := p.Searcher.SearchByImageBytes(ctx, cropped)
		if err != nil {
			log.Warn().Err(err).Str("class", d.Class).Msg("Visual search failed for garment")
			continue
		}
		searched++

		kept := 0
		for _, c := range candidates {
			if !p.allowed(c) {
				continue
			}
			slots[slot] = append(slots[slot], c)
			kept++
		}
		log.Debug().
			Str("class", d.Class).
			Str("slot", string(slot)).
			Int("candidates", len(candidates)).
			Int("kept", kept).
			Msg("Garment search complete")
	}

	if searched == 0 {
		log.Info().Msg("No garment produced a search, falling back to category search")
		return nil
	}
	return slots
}

// fallbackSearch issues the four canned category queries in parallel and
// classifies the surviving results by title.
func (p *Pipeline) fallbackSearch(ctx context.Context, imageURL string) (map[garment.Slot][]lens.Candidate, error) {
	order := garment.Slots()
	results := make([][]lens.Candidate, len(order))
	errs := make([]error, len(order))

	var wg sync.WaitGroup
	for i, slot := range order {
		wg.Add(1)
		go func(i int, slot garment.Slot) {
			defer wg.Done()
			results[i], errs[i] = p.Searcher.SearchShopping(ctx, fallbackQueries[slot])
		}(i, slot)
	}
	wg.Wait()

	slots := make(map[garment.Slot][]lens.Candidate)
	var firstErr error
	failed := 0
	for i, slot := range order {
		if errs[i] != nil {
			log.Warn().Err(errs[i]).Str("slot", string(slot)).Msg("Fallback category search failed")
			failed++
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		for _, c := range results[i] {
			if !p.allowed(c) {
				continue
			}
			classified, ok := p.Titles.Classify(c.Title)
			if !ok {
				continue
			}
			slots[classified] = append(slots[classified], c)
		}
	}
	if failed == len(order) {
		return nil, firstErr
	}

	log.Info().Str("image_url", imageURL).Msg("Fallback category search complete")
	return slots, nil
}

// allowed reports whether a candidate belongs to an allow-listed
// marketplace. Shopping results identify the store by name; visual
// matches are judged by their link host when no name is present.
func (p *Pipeline) allowed(c lens.Candidate) bool {
	if c.Source != "" {
		return p.Filter.AllowedMerchant(c.Source)
	}
	return p.Filter.AllowedLink(c.Link)
}

// merge caps each slot, assigns rank-derived match percentages, and fills
// placeholder values for anything the provider left blank.
func merge(slots map[garment.Slot][]lens.Candidate) *Response {
	resp := &Response{
		Upper:       []SearchedProduct{},
		Lower:       []SearchedProduct{},
		Footwear:    []SearchedProduct{},
		Accessories: []SearchedProduct{},
	}
	for _, slot := range garment.Slots() {
		candidates := slots[slot]
		if len(candidates) > maxPerSlot {
			candidates = candidates[:maxPerSlot]
		}
		products := make([]SearchedProduct, 0, len(candidates))
		for i, c := range candidates {
			products = append(products, SearchedProduct{
				Title:           defaulted(c.Title, placeholderTitle),
				Price:           defaulted(c.Price, placeholderPrice),
				Source:          defaulted(c.Source, placeholderSource),
				Link:            defaulted(c.Link, placeholderLink),
				Thumbnail:       c.Thumbnail,
				Category:        slot,
				Rating:          c.Rating,
				Reviews:         c.Reviews,
				MatchPercentage: 98 - 3*i,
			})
		}
		switch slot {
		case garment.SlotUpper:
			resp.Upper = products
		case garment.SlotLower:
			resp.Lower = products
		case garment.SlotFootwear:
			resp.Footwear = products
		case garment.SlotAccessories:
			resp.Accessories = products
		}
	}
	return resp
}

func defaulted(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
