// Package imagecrop turns detector bounding boxes into standalone image
// buffers. The source image is downloaded and decoded once per pipeline run;
// every detection is cropped from that one decoded image.
package imagecrop

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math"
	"net/http"

	// Style photos arrive as JPEG, PNG, or WebP depending on where the
	// catalog sourced them.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	"github.com/nkapoor/stylematch/internal/detect"
)

// jpegQuality for re-encoded crops sent to the visual search provider.
const jpegQuality = 90

// maxImageBytes caps the source image download.
const maxImageBytes = 20 << 20

// Region is a top-left-origin crop rectangle in source-image pixels.
type Region struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Download fetches the source image. client may be nil to use the default.
func Download(ctx context.Context, client *http.Client, imageURL string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}

// Decode decodes downloaded image bytes.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	log.Debug().Str("format", format).Int("bytes", len(data)).Msg("Source image decoded")
	return img, nil
}

// RegionFor converts a center+size bounding box into a top-left rectangle
// clamped to the reported image bounds. Returns an error when the clamped
// region has no area, which callers treat as a skippable per-garment failure.
func RegionFor(d detect.Detection, imageWidth, imageHeight int) (Region, error) {
	left := int(math.Max(0, math.Round(d.X-d.Width/2)))
	top := int(math.Max(0, math.Round(d.Y-d.Height/2)))
	width := int(math.Round(d.Width))
	height := int(math.Round(d.Height))
	if width > imageWidth-left {
		width = imageWidth - left
	}
	if height > imageHeight-top {
		height = imageHeight - top
	}

	if width <= 0 || height <= 0 {
		return Region{}, fmt.Errorf("region for %q resolves to %dx%d", d.Class, width, height)
	}
	return Region{Left: left, Top: top, Width: width, Height: height}, nil
}

// Crop extracts the region from the decoded source image and re-encodes it
// as JPEG. The region is additionally intersected with the actual decoded
// bounds; the detector reports its own dimensions and the two can disagree.
func Crop(src image.Image, r Region) ([]byte, error) {
	rect := image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("crop rect %v outside image bounds %v", r, src.Bounds())
	}

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(out, image.Point{}, src, rect, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode crop: %w", err)
	}
	return buf.Bytes(), nil
}
