// Package imageref resolves the image references stored on styles into
// URLs that the detector and search providers can fetch. Catalog entries
// may carry an absolute URL, a server-relative path, or an s3:// object
// reference that needs a pre-signed GET URL.
package imageref

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultPresignExpiry bounds how long a presigned image URL stays
// fetchable by the upstream vision providers.
const DefaultPresignExpiry = 15 * time.Minute

// Resolver turns stored image references into fetchable URLs.
type Resolver struct {
	// Presign generates GET URLs for s3:// references. When nil, s3://
	// references are rejected.
	Presign *s3.PresignClient

	// Expiry for presigned URLs. Zero means DefaultPresignExpiry.
	Expiry time.Duration
}

// Resolve returns a URL the vision providers can fetch for ref.
// Absolute http(s) URLs pass through unchanged. Server-relative paths
// ("/images/x.jpg") are rooted at the requesting host. s3://bucket/key
// references are presigned.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request, ref string) (string, error) {
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref, nil

	case strings.HasPrefix(ref, "s3://"):
		bucket, key, err := splitS3(ref)
		if err != nil {
			return "", err
		}
		if r.Presign == nil {
			return "", fmt.Errorf("s3 reference %q but no presign client configured", ref)
		}
		expiry := r.Expiry
		if expiry == 0 {
			expiry = DefaultPresignExpiry
		}
		result, err := r.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: &bucket, Key: &key,
		}, func(opts *s3.PresignOptions) {
			opts.Expires = expiry
		})
		if err != nil {
			return "", fmt.Errorf("presign GetObject s3://%s/%s: %w", bucket, key, err)
		}
		return result.URL, nil

	case strings.HasPrefix(ref, "/"):
		if req == nil {
			return "", fmt.Errorf("relative image reference %q outside a request", ref)
		}
		return requestOrigin(req) + ref, nil

	default:
		return "", fmt.Errorf("unsupported image reference %q", ref)
	}
}

// splitS3 parses s3://bucket/key into its parts.
func splitS3(ref string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(ref, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed s3 reference %q", ref)
	}
	return bucket, key, nil
}

// requestOrigin reconstructs scheme://host for the incoming request,
// honoring X-Forwarded-Proto set by API Gateway and load balancers.
func requestOrigin(req *http.Request) string {
	scheme := req.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		if req.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}
	return scheme + "://" + req.Host
}
