// Package lens wraps the SerpAPI reverse-image and shopping search engines.
//
// Three entry points cover the pipeline's needs: visual search by remote
// URL, visual search by inline crop bytes (crops have no public URL), and a
// text shopping query for the fallback path. Region and language are pinned
// to the Indian market on every call so results are shoppable there.
package lens

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the SerpAPI search endpoint.
const DefaultEndpoint = "https://serpapi.com/search"

// Fixed locale parameters for every search.
const (
	countryCode  = "in"
	languageCode = "en"
)

// Client calls the search provider.
type Client struct {
	HTTPClient *http.Client
	Endpoint   string

	// Key resolves the API key at call time.
	Key func(context.Context) (string, error)
}

// NewClient creates a search client.
func NewClient(key func(context.Context) (string, error)) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 45 * time.Second},
		Endpoint:   DefaultEndpoint,
		Key:        key,
	}
}

// searchResponse covers both engines; only one result array is populated per
// call.
type searchResponse struct {
	VisualMatches   []rawResult `json:"visual_matches"`
	ShoppingResults []rawResult `json:"shopping_results"`
	Error           string      `json:"error"`
}

// SearchByImageURL runs a visual search for products similar to the image at
// the given public URL.
func (c *Client) SearchByImageURL(ctx context.Context, imageURL string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("engine", "google_lens")
	params.Set("url", imageURL)
	return c.search(ctx, params, nil)
}

// SearchByImageBytes runs a visual search for an image that has no public
// URL, inlining the encoded bytes. Used for per-garment crops.
func (c *Client) SearchByImageBytes(ctx context.Context, imageData []byte) ([]Candidate, error) {
	params := url.Values{}
	params.Set("engine", "google_lens")

	form := url.Values{}
	form.Set("image_base64", base64.StdEncoding.EncodeToString(imageData))
	return c.search(ctx, params, strings.NewReader(form.Encode()))
}

// SearchShopping runs a text query against the shopping engine.
func (c *Client) SearchShopping(ctx context.Context, query string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("engine", "google_shopping")
	params.Set("q", query)
	return c.search(ctx, params, nil)
}

func (c *Client) search(ctx context.Context, params url.Values, body io.Reader) ([]Candidate, error) {
	apiKey, err := c.Key(ctx)
	if err != nil {
		return nil, err
	}
	params.Set("api_key", apiKey)
	params.Set("gl", countryCode)
	params.Set("hl", languageCode)

	method := http.MethodGet
	if body != nil {
		method = http.MethodPost
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Endpoint+"?"+params.Encode(), body)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("search provider error: %s", decoded.Error)
	}

	results := decoded.VisualMatches
	if len(results) == 0 {
		results = decoded.ShoppingResults
	}

	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, r.candidate())
	}

	log.Debug().
		Str("engine", params.Get("engine")).
		Int("candidates", len(candidates)).
		Msg("Search complete")
	return candidates, nil
}
