// Package detect wraps the Roboflow clothing-detection API.
//
// Detect returns bounding boxes in the source image's pixel space, with the
// box expressed as a center point plus width/height — the convention the
// detection model uses. Any upstream failure is returned to the caller
// unretried; the pipeline decides whether to fall back.
package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the hosted clothing-detection model.
const DefaultEndpoint = "https://detect.roboflow.com/clothing-detection-s4ioc/4"

// Thresholds passed to the detection model on every call.
const (
	confidenceThreshold = 30 // minimum confidence, percent
	overlapThreshold    = 30 // IoU suppression threshold, percent
)

// DefaultMaxConcurrent is the process-wide admission cap for outstanding
// detector calls. Callers beyond the cap block until a slot frees.
const DefaultMaxConcurrent = 3

// Detection is one detected garment instance.
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	// Center coordinates and box size, in source-image pixels.
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Result is the detector's output for one source image.
type Result struct {
	Detections  []Detection
	ImageWidth  int
	ImageHeight int
}

// Client calls the detection API. The admission semaphore is owned by the
// client instance, so the cap is configurable per instance and testable.
type Client struct {
	HTTPClient *http.Client
	Endpoint   string

	// Key resolves the API key at call time. A resolution failure is a
	// configuration error surfaced to the caller.
	Key func(context.Context) (string, error)

	sem chan struct{}
}

// NewClient creates a detector client. maxConcurrent <= 0 uses
// DefaultMaxConcurrent.
func NewClient(key func(context.Context) (string, error), maxConcurrent int) *Client {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Endpoint:   DefaultEndpoint,
		Key:        key,
		sem:        make(chan struct{}, maxConcurrent),
	}
}

// roboflowResponse is the upstream JSON shape. Unknown or missing fields
// decode to zero values, matching the loose upstream contract.
type roboflowResponse struct {
	Predictions []Detection `json:"predictions"`
	Image       struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"image"`
}

// Detect runs clothing detection on a publicly fetchable image URL.
func (c *Client) Detect(ctx context.Context, imageURL string) (*Result, error) {
	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	apiKey, err := c.Key(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("image", imageURL).Msg("Detecting clothing items")

	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("confidence", strconv.Itoa(confidenceThreshold))
	params.Set("overlap", strconv.Itoa(overlapThreshold))
	params.Set("image", imageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build detector request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detector request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read detector response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var decoded roboflowResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode detector response: %w", err)
	}

	log.Info().
		Int("detections", len(decoded.Predictions)).
		Int("width", decoded.Image.Width).
		Int("height", decoded.Image.Height).
		Msg("Clothing detection complete")

	return &Result{
		Detections:  decoded.Predictions,
		ImageWidth:  decoded.Image.Width,
		ImageHeight: decoded.Image.Height,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
