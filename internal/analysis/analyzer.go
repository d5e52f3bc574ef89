// Package analysis extracts color and pattern information from style photos
// using Gemini, and scores catalog products against that analysis. The
// product-search pipeline does not depend on it; it backs the style
// analysis endpoint.
package analysis

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta/imagetype"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/nkapoor/stylematch/internal/jsonutil"
)

// modelName is the Gemini model used for image analysis. Flash is enough:
// the task is structured extraction, not reasoning.
const modelName = "gemini-2.5-flash"

// maxConcurrent caps simultaneous analysis calls.
const maxConcurrent = 3

// ImageAnalysis is the structured result of analyzing one garment photo.
type ImageAnalysis struct {
	DominantColors []string `json:"dominantColors"`
	ColorHexCodes  []string `json:"colorHexCodes"`
	Pattern        string   `json:"pattern"`
	PatternDetails string   `json:"patternDetails"`
	GarmentType    string   `json:"garmentType"`
}

const analysisPrompt = `Analyze this fashion/clothing image and provide detailed color and pattern information.

Extract the following in JSON format:
{
  "dominantColors": ["color1", "color2", "color3"],
  "colorHexCodes": ["#000000", "#FF0000", "#FFD700"],
  "pattern": "pattern_type",
  "patternDetails": "description",
  "garmentType": "type"
}

dominantColors: top 3-5 most prominent color names (e.g. "black", "navy blue", "golden yellow").
colorHexCodes: approximate hex codes for the dominant colors.
pattern: one of solid, striped, floral, geometric, polka-dot, abstract, checkered, printed, paisley, embroidered, lace.
patternDetails: detailed description of the pattern (type, size, arrangement).
garmentType: what clothing item this is (e.g. "dress", "kurti", "shirt", "jeans", "shoes", "necklace").

Be precise with colors - prefer "burgundy" or "navy blue" over plain "red" or "blue".`

// NewGeminiClient creates a Gemini client for the given API key.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return client, nil
}

// Analyzer runs Gemini image analysis. Safe for concurrent use.
type Analyzer struct {
	client     *genai.Client
	httpClient *http.Client
	sem        chan struct{}
}

// NewAnalyzer creates an Analyzer around an initialized Gemini client.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{
		client:     client,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sem:        make(chan struct{}, maxConcurrent),
	}
}

// AnalyzeImage downloads the image and asks Gemini for its colors, pattern,
// and garment type.
func (a *Analyzer) AnalyzeImage(ctx context.Context, imageURL string) (*ImageAnalysis, error) {
	select {
	case a.sem <- struct{}{}:
		defer func() { <-a.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	log.Debug().Str("image", imageURL).Msg("Analyzing style image")

	data, mimeType, err := a.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		{Text: analysisPrompt},
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	callStart := time.Now()
	resp, err := a.client.Models.GenerateContent(ctx, modelName, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate analysis: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var result ImageAnalysis
	if err := jsonutil.ParseInto(resp.Text(), &result); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	log.Info().
		Strs("colors", result.DominantColors).
		Str("pattern", result.Pattern).
		Str("garment", result.GarmentType).
		Dur("duration", time.Since(callStart)).
		Msg("Image analysis complete")
	return &result, nil
}

// fetchImage downloads the image bytes and determines their MIME type from
// the content itself; the Content-Type header on CDN-hosted style photos is
// unreliable.
func (a *Analyzer) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build image request: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, "", fmt.Errorf("read image body: %w", err)
	}

	mimeType := "image/jpeg"
	if it, err := imagetype.Scan(bytes.NewReader(data)); err == nil && it != imagetype.ImageUnknown {
		mimeType = it.String()
	} else if ct := http.DetectContentType(data); strings.HasPrefix(ct, "image/") {
		mimeType = ct
	}
	return data, mimeType, nil
}
