// Package api exposes the HTTP surface: visual product search for a style,
// Gemini style analysis, and the catalog/user/wishlist plumbing the web
// client needs. The same handler tree serves both the local web server and
// the Lambda entry point.
package api

import (
	"context"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/nkapoor/stylematch/internal/analysis"
	"github.com/nkapoor/stylematch/internal/catalog"
	"github.com/nkapoor/stylematch/internal/imageref"
	"github.com/nkapoor/stylematch/internal/pipeline"
)

// ProductSearcher runs the visual product-matching pipeline for one image.
type ProductSearcher interface {
	SearchProducts(ctx context.Context, imageURL string) (*pipeline.Response, error)
}

// StyleAnalyzer extracts colors and pattern from a style photo.
type StyleAnalyzer interface {
	AnalyzeImage(ctx context.Context, imageURL string) (*analysis.ImageAnalysis, error)
}

// Server holds the handler dependencies.
type Server struct {
	Store    catalog.Store
	Pipeline ProductSearcher

	// Analyzer is optional; when nil the analyze-style endpoint reports
	// the feature as unavailable.
	Analyzer StyleAnalyzer

	Resolver *imageref.Resolver
}

// Routes builds the full handler tree with logging, CORS, and response
// compression applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/search-products", s.handleSearchProducts)
	mux.HandleFunc("POST /api/analyze-style", s.handleAnalyzeStyle)
	mux.HandleFunc("GET /api/styles", s.handleGetStyles)
	mux.HandleFunc("GET /api/products", s.handleGetProducts)
	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.HandleFunc("GET /api/wishlist", s.handleGetWishlist)
	mux.HandleFunc("POST /api/wishlist", s.handleAddToWishlist)
	mux.HandleFunc("DELETE /api/wishlist/{id}", s.handleRemoveFromWishlist)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return withLogging(withCORS(gzhttp.GzipHandler(mux)))
}

// resolveImage turns a style's stored image reference into a fetchable URL.
func (s *Server) resolveImage(ctx context.Context, r *http.Request, ref string) (string, error) {
	if s.Resolver == nil {
		return ref, nil
	}
	return s.Resolver.Resolve(ctx, r, ref)
}
