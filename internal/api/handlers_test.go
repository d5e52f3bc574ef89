package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nkapoor/stylematch/internal/catalog"
	"github.com/nkapoor/stylematch/internal/pipeline"
	"github.com/nkapoor/stylematch/internal/secrets"
)

type fakePipeline struct {
	resp     *pipeline.Response
	err      error
	imageURL string
}

func (p *fakePipeline) SearchProducts(_ context.Context, imageURL string) (*pipeline.Response, error) {
	p.imageURL = imageURL
	return p.resp, p.err
}

func newTestServer(p ProductSearcher) *Server {
	return &Server{Store: catalog.NewSeededMemoryStore(), Pipeline: p}
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return body["message"]
}

func TestSearchProductsMissingStyleID(t *testing.T) {
	srv := newTestServer(&fakePipeline{})
	handler := srv.Routes()

	for _, body := range []string{`{}`, `{"styleId":""}`, `not json`} {
		rec := postJSON(t, handler, "/api/search-products", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: got status %d, want 400", body, rec.Code)
		}
		if msg := errorMessage(t, rec); msg != "styleId is required" {
			t.Errorf("body %q: got message %q", body, msg)
		}
	}
}

func TestSearchProductsUnknownStyle(t *testing.T) {
	srv := newTestServer(&fakePipeline{})

	rec := postJSON(t, srv.Routes(), "/api/search-products", `{"styleId":"style-404"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "style not found" {
		t.Errorf("got message %q", msg)
	}
}

func TestSearchProductsSuccess(t *testing.T) {
	fake := &fakePipeline{resp: &pipeline.Response{
		Upper:       []pipeline.SearchedProduct{{Title: "Shirt", MatchPercentage: 98, Category: "upper"}},
		Lower:       []pipeline.SearchedProduct{},
		Footwear:    []pipeline.SearchedProduct{},
		Accessories: []pipeline.SearchedProduct{},
	}}
	srv := newTestServer(fake)

	rec := postJSON(t, srv.Routes(), "/api/search-products", `{"styleId":"style-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body)
	}
	if fake.imageURL == "" {
		t.Error("pipeline never received the style image URL")
	}

	var resp pipeline.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Upper) != 1 || resp.Upper[0].Title != "Shirt" {
		t.Errorf("upper = %+v", resp.Upper)
	}
	for _, key := range []string{`"upper"`, `"lower"`, `"footwear"`, `"accessories"`} {
		if !strings.Contains(rec.Body.String(), key) {
			t.Errorf("response missing slot key %s", key)
		}
	}
}

func TestSearchProductsNotConfigured(t *testing.T) {
	srv := newTestServer(&fakePipeline{err: secrets.ErrNotConfigured})

	rec := postJSON(t, srv.Routes(), "/api/search-products", `{"styleId":"style-1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "search provider is not configured" {
		t.Errorf("got message %q", msg)
	}
}

func TestSearchProductsPipelineError(t *testing.T) {
	srv := newTestServer(&fakePipeline{err: errors.New("upstream exploded")})

	rec := postJSON(t, srv.Routes(), "/api/search-products", `{"styleId":"style-1"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "upstream exploded" {
		t.Errorf("got message %q", msg)
	}
}

func TestAnalyzeStyleUnavailable(t *testing.T) {
	srv := newTestServer(&fakePipeline{})

	rec := postJSON(t, srv.Routes(), "/api/analyze-style", `{"styleId":"style-1"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want 503", rec.Code)
	}
}

func TestGetStylesFiltered(t *testing.T) {
	srv := newTestServer(&fakePipeline{})

	req := httptest.NewRequest(http.MethodGet, "/api/styles?gender=male", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var styles []catalog.Style
	if err := json.Unmarshal(rec.Body.Bytes(), &styles); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(styles) == 0 {
		t.Fatal("expected seeded male styles")
	}
	for _, s := range styles {
		if s.Gender != "male" {
			t.Errorf("style %s: gender %q, want male", s.ID, s.Gender)
		}
	}
}

func TestCreateUserValidation(t *testing.T) {
	srv := newTestServer(&fakePipeline{})

	rec := postJSON(t, srv.Routes(), "/api/users", `{"gender":"female"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}

	rec = postJSON(t, srv.Routes(), "/api/users", `{"username":"asha","gender":"female","bodyType":"pear"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body)
	}
	var user catalog.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if user.ID == "" {
		t.Error("created user has no ID")
	}
}

func TestWishlistIdempotentAdd(t *testing.T) {
	srv := newTestServer(&fakePipeline{})
	handler := srv.Routes()

	first := postJSON(t, handler, "/api/wishlist", `{"itemType":"style","itemId":"style-1"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first add: status %d", first.Code)
	}
	second := postJSON(t, handler, "/api/wishlist", `{"itemType":"style","itemId":"style-1"}`)
	if second.Code != http.StatusOK {
		t.Fatalf("second add: status %d", second.Code)
	}

	var a, b catalog.WishlistItem
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("unmarshal first: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("unmarshal second: %v", err)
	}
	if a.ID != b.ID {
		t.Errorf("duplicate add created a new item: %s vs %s", a.ID, b.ID)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/wishlist/"+a.ID, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	var items []catalog.WishlistItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal wishlist: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("wishlist has %d items after delete, want 0", len(items))
	}
}
