package api

import (
	"errors"
	"net/http"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/nkapoor/stylematch/internal/analysis"
	"github.com/nkapoor/stylematch/internal/catalog"
	"github.com/nkapoor/stylematch/internal/secrets"
)

// defaultUserID is used for wishlist requests issued before onboarding
// completes.
const defaultUserID = "default-user"

type styleRequest struct {
	StyleID string `json:"styleId"`
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	var req styleRequest
	if err := decodeBody(r, &req); err != nil || req.StyleID == "" {
		httpError(w, http.StatusBadRequest, "styleId is required")
		return
	}

	style, err := s.Store.GetStyle(r.Context(), req.StyleID)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to load style", err.Error())
		return
	}
	if style == nil {
		httpError(w, http.StatusNotFound, "style not found")
		return
	}

	imageURL, err := s.resolveImage(r.Context(), r, style.Image)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to resolve style image", err.Error())
		return
	}

	resp, err := s.Pipeline.SearchProducts(r.Context(), imageURL)
	if err != nil {
		if errors.Is(err, secrets.ErrNotConfigured) {
			httpError(w, http.StatusInternalServerError, "search provider is not configured", err.Error())
			return
		}
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Debug().
		Str("style_id", req.StyleID).
		Int("upper", len(resp.Upper)).
		Int("lower", len(resp.Lower)).
		Int("footwear", len(resp.Footwear)).
		Int("accessories", len(resp.Accessories)).
		Msg("Product search complete")
	respondJSON(w, http.StatusOK, resp)
}

// rankedProduct is a catalog product scored against a style's analysis.
type rankedProduct struct {
	catalog.Product
	SimilarityScore int `json:"similarityScore"`
}

type analyzeStyleResponse struct {
	Analysis *analysis.ImageAnalysis `json:"analysis"`
	Products []rankedProduct         `json:"products"`
}

func (s *Server) handleAnalyzeStyle(w http.ResponseWriter, r *http.Request) {
	if s.Analyzer == nil {
		httpError(w, http.StatusServiceUnavailable, "style analysis is not configured")
		return
	}

	var req styleRequest
	if err := decodeBody(r, &req); err != nil || req.StyleID == "" {
		httpError(w, http.StatusBadRequest, "styleId is required")
		return
	}

	style, err := s.Store.GetStyle(r.Context(), req.StyleID)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to load style", err.Error())
		return
	}
	if style == nil {
		httpError(w, http.StatusNotFound, "style not found")
		return
	}

	imageURL, err := s.resolveImage(r.Context(), r, style.Image)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to resolve style image", err.Error())
		return
	}

	result, err := s.Analyzer.AnalyzeImage(r.Context(), imageURL)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "style analysis failed", err.Error())
		return
	}

	products, err := s.Store.GetProducts(r.Context(), "")
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to load products", err.Error())
		return
	}

	ranked := rankProducts(result, products)
	respondJSON(w, http.StatusOK, analyzeStyleResponse{Analysis: result, Products: ranked})
}

// rankProducts scores catalog products against the analyzed style, color
// weighted over pattern, and sorts them best match first.
func rankProducts(a *analysis.ImageAnalysis, products []catalog.Product) []rankedProduct {
	ranked := make([]rankedProduct, 0, len(products))
	for _, p := range products {
		colorScore := analysis.ColorSimilarity(a.DominantColors, p.Colors)
		patternScore := analysis.PatternSimilarity(a.Pattern, a.PatternDetails, p.Pattern, "")
		score := (colorScore*60 + patternScore*40) / 100
		ranked = append(ranked, rankedProduct{Product: p, SimilarityScore: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SimilarityScore > ranked[j].SimilarityScore
	})
	return ranked
}

func (s *Server) handleGetStyles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	styles, err := s.Store.GetStyles(r.Context(), q.Get("gender"), q.Get("bodyType"), q.Get("occasion"))
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to load styles", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, styles)
}

func (s *Server) handleGetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.GetProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to load products", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user catalog.User
	if err := decodeBody(r, &user); err != nil {
		httpError(w, http.StatusBadRequest, "invalid user payload")
		return
	}
	if user.Username == "" {
		httpError(w, http.StatusBadRequest, "username is required")
		return
	}

	created, err := s.Store.CreateUser(r.Context(), &user)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, created)
}

func (s *Server) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = defaultUserID
	}
	items, err := s.Store.GetWishlist(r.Context(), userID)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to load wishlist", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddToWishlist(w http.ResponseWriter, r *http.Request) {
	var item catalog.WishlistItem
	if err := decodeBody(r, &item); err != nil {
		httpError(w, http.StatusBadRequest, "invalid wishlist payload")
		return
	}
	if item.ItemType == "" || item.ItemID == "" {
		httpError(w, http.StatusBadRequest, "itemType and itemId are required")
		return
	}
	if item.UserID == "" {
		item.UserID = defaultUserID
	}

	// Adding an already-saved item returns the existing record.
	existing, err := s.Store.GetWishlistItem(r.Context(), item.UserID, item.ItemType, item.ItemID)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to check wishlist", err.Error())
		return
	}
	if existing != nil {
		respondJSON(w, http.StatusOK, existing)
		return
	}

	created, err := s.Store.AddToWishlist(r.Context(), &item)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed to save wishlist item", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, created)
}

func (s *Server) handleRemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = defaultUserID
	}
	if err := s.Store.RemoveFromWishlist(r.Context(), userID, r.PathValue("id")); err != nil {
		httpError(w, http.StatusInternalServerError, "failed to remove wishlist item", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
