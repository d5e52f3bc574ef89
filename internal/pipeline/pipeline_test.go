package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/nkapoor/stylematch/internal/detect"
	"github.com/nkapoor/stylematch/internal/garment"
	"github.com/nkapoor/stylematch/internal/lens"
	"github.com/nkapoor/stylematch/internal/marketplace"
)

type fakeDetector struct {
	result *detect.Result
	err    error
}

func (d *fakeDetector) Detect(_ context.Context, _ string) (*detect.Result, error) {
	return d.result, d.err
}

type fakeSearcher struct {
	mu sync.Mutex

	imageResults [][]lens.Candidate
	imageCalls   int
	imageErr     error

	shoppingResults map[string][]lens.Candidate
	shoppingQueries []string
	shoppingErr     error
}

func (s *fakeSearcher) SearchByImageBytes(_ context.Context, _ []byte) ([]lens.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageErr != nil {
		return nil, s.imageErr
	}
	if s.imageCalls >= len(s.imageResults) {
		return nil, nil
	}
	result := s.imageResults[s.imageCalls]
	s.imageCalls++
	return result, nil
}

func (s *fakeSearcher) SearchShopping(_ context.Context, query string) ([]lens.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shoppingQueries = append(s.shoppingQueries, query)
	if s.shoppingErr != nil {
		return nil, s.shoppingErr
	}
	return s.shoppingResults[query], nil
}

// imageServer serves one blank PNG of the given size for the crop stage.
func imageServer(t *testing.T, width, height int) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestPipeline(d Detector, s Searcher) *Pipeline {
	p := New(d, s)
	p.Filter = marketplace.NewFilter()
	return p
}

func TestSearchProductsPrimaryPath(t *testing.T) {
	srv := imageServer(t, 100, 80)

	detector := &fakeDetector{result: &detect.Result{
		ImageWidth:  100,
		ImageHeight: 80,
		Detections: []detect.Detection{
			{Class: "upper body clothes", Confidence: 0.9, X: 50, Y: 20, Width: 40, Height: 30},
			{Class: "shoes", Confidence: 0.8, X: 50, Y: 60, Width: 30, Height: 20},
		},
	}}
	searcher := &fakeSearcher{imageResults: [][]lens.Candidate{
		{
			{Title: "Cotton Shirt", Price: "₹999", Source: "Myntra", Link: "https://www.myntra.com/shirt"},
			{Title: "Linen Shirt", Price: "₹1,499", Source: "Flipkart", Link: "https://www.flipkart.com/shirt"},
			{Title: "Oxford Shirt", Price: "$49", Source: "Macy's", Link: "https://www.macys.com/shirt"},
		},
		{
			{Title: "Running Shoes", Price: "₹2,199", Source: "Amazon.in", Link: "https://www.amazon.in/shoes"},
		},
	}}

	p := newTestPipeline(detector, searcher)
	p.HTTPClient = srv.Client()

	resp, err := p.SearchProducts(context.Background(), srv.URL+"/style.png")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}

	if len(resp.Upper) != 2 {
		t.Fatalf("got %d upper products, want 2", len(resp.Upper))
	}
	for i, want := range []int{98, 95} {
		if got := resp.Upper[i].MatchPercentage; got != want {
			t.Errorf("upper[%d].MatchPercentage = %d, want %d", i, got, want)
		}
	}
	if len(resp.Footwear) != 1 || resp.Footwear[0].MatchPercentage != 98 {
		t.Errorf("footwear = %+v, want one product at 98", resp.Footwear)
	}
	if len(resp.Lower) != 0 || len(resp.Accessories) != 0 {
		t.Errorf("lower/accessories not empty: %d/%d", len(resp.Lower), len(resp.Accessories))
	}
	if searcher.imageCalls != 2 {
		t.Errorf("got %d image searches, want 2", searcher.imageCalls)
	}
	if got := resp.Upper[0].Category; got != "upper" {
		t.Errorf("upper[0].Category = %q, want upper", got)
	}
}

func TestSearchProductsSlotCap(t *testing.T) {
	srv := imageServer(t, 100, 80)

	var many []lens.Candidate
	for i := 0; i < 15; i++ {
		many = append(many, lens.Candidate{Title: "Shirt", Source: "Myntra", Link: "https://www.myntra.com/s"})
	}
	detector := &fakeDetector{result: &detect.Result{
		ImageWidth: 100, ImageHeight: 80,
		Detections: []detect.Detection{
			{Class: "upper body clothes", Confidence: 0.9, X: 50, Y: 40, Width: 60, Height: 60},
		},
	}}
	searcher := &fakeSearcher{imageResults: [][]lens.Candidate{many}}

	p := newTestPipeline(detector, searcher)
	p.HTTPClient = srv.Client()

	resp, err := p.SearchProducts(context.Background(), srv.URL+"/style.png")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(resp.Upper) != 10 {
		t.Fatalf("got %d upper products, want cap of 10", len(resp.Upper))
	}
	for i, product := range resp.Upper {
		if want := 98 - 3*i; product.MatchPercentage != want {
			t.Errorf("upper[%d].MatchPercentage = %d, want %d", i, product.MatchPercentage, want)
		}
	}
}

func TestSearchProductsFallbackOnDetectorError(t *testing.T) {
	searcher := &fakeSearcher{shoppingResults: map[string][]lens.Candidate{
		fallbackQueries["upper"]: {
			{Title: "Printed Cotton Shirt", Price: "₹799", Source: "Ajio", Link: "https://www.ajio.com/s"},
			{Title: "Leather Handbag", Price: "₹499", Source: "Ajio", Link: "https://www.ajio.com/w"},
		},
		fallbackQueries["footwear"]: {
			{Title: "Canvas Sneakers", Price: "₹1,299", Source: "Flipkart", Link: "https://www.flipkart.com/s"},
			{Title: "Nice Sneakers", Price: "$59", Source: "Macy's", Link: "https://www.macys.com/s"},
		},
	}}
	detector := &fakeDetector{err: errors.New("detector unavailable")}

	p := newTestPipeline(detector, searcher)

	resp, err := p.SearchProducts(context.Background(), "https://images.example.com/style.jpg")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}

	if len(searcher.shoppingQueries) != 4 {
		t.Fatalf("got %d fallback queries, want 4", len(searcher.shoppingQueries))
	}
	seen := make(map[string]bool)
	for _, q := range searcher.shoppingQueries {
		seen[q] = true
	}
	for slot, query := range fallbackQueries {
		if !seen[query] {
			t.Errorf("fallback query for slot %s never issued", slot)
		}
	}

	// "Printed Cotton Shirt" classifies as upper; "Leather Handbag" as
	// accessories; the Macy's sneaker is not allow-listed.
	if len(resp.Upper) != 1 || resp.Upper[0].Title != "Printed Cotton Shirt" {
		t.Errorf("upper = %+v, want the shirt only", resp.Upper)
	}
	if len(resp.Accessories) != 1 || resp.Accessories[0].Title != "Leather Handbag" {
		t.Errorf("accessories = %+v, want the wallet only", resp.Accessories)
	}
	if len(resp.Footwear) != 1 || resp.Footwear[0].Title != "Canvas Sneakers" {
		t.Errorf("footwear = %+v, want the allow-listed sneakers only", resp.Footwear)
	}
	if searcher.imageCalls != 0 {
		t.Errorf("image search called %d times on fallback path, want 0", searcher.imageCalls)
	}
}

func TestSearchProductsFallbackOnZeroDetections(t *testing.T) {
	detector := &fakeDetector{result: &detect.Result{ImageWidth: 100, ImageHeight: 80}}
	searcher := &fakeSearcher{}

	p := newTestPipeline(detector, searcher)

	if _, err := p.SearchProducts(context.Background(), "https://images.example.com/style.jpg"); err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(searcher.shoppingQueries) != 4 {
		t.Errorf("got %d fallback queries, want 4", len(searcher.shoppingQueries))
	}
}

func TestSearchProductsFallbackAllQueriesFail(t *testing.T) {
	detector := &fakeDetector{err: errors.New("detector unavailable")}
	searcher := &fakeSearcher{shoppingErr: errors.New("quota exceeded")}

	p := newTestPipeline(detector, searcher)

	if _, err := p.SearchProducts(context.Background(), "https://images.example.com/style.jpg"); err == nil {
		t.Fatal("expected error when every fallback query fails")
	}
}

func TestResponseAlwaysHasFourKeys(t *testing.T) {
	resp := merge(nil)

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"upper":[]`, `"lower":[]`, `"footwear":[]`, `"accessories":[]`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("response JSON missing %s: %s", key, data)
		}
	}
}

func TestMergeFillsPlaceholders(t *testing.T) {
	resp := merge(map[garment.Slot][]lens.Candidate{
		garment.SlotUpper: {{Thumbnail: "https://t.example.com/1.jpg"}},
	})

	got := resp.Upper[0]
	if got.Title != placeholderTitle {
		t.Errorf("Title = %q, want placeholder", got.Title)
	}
	if got.Price != placeholderPrice {
		t.Errorf("Price = %q, want placeholder", got.Price)
	}
	if got.Source != placeholderSource {
		t.Errorf("Source = %q, want placeholder", got.Source)
	}
	if got.Link != placeholderLink {
		t.Errorf("Link = %q, want placeholder", got.Link)
	}
	if got.Thumbnail != "https://t.example.com/1.jpg" {
		t.Errorf("Thumbnail = %q, want passthrough", got.Thumbnail)
	}
}
