package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	imagepkg "github.com/youruser/featuregen/internal/image"
	"github.com/youruser/featuregen/internal/storage"
	"github.com/youruser/featuregen/internal/templates"
	"go.uber.org/zap"
)

// stubRenderer returns err when set, otherwise a fixed result.
type stubRenderer struct {
	err   error
	calls int
}

func (s *stubRenderer) Render(ctx context.Context, req imagepkg.Request) (*imagepkg.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &imagepkg.Result{
		Filename:   fmt.Sprintf("featured-image-%d.jpg", s.calls),
		Bytes:      []byte("jpeg"),
		TemplateID: "classic",
		Width:      1200,
		Height:     630,
	}, nil
}

func newTestServer(t *testing.T, r Renderer) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	catalog, err := templates.Default(t.TempDir())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	dir := t.TempDir()
	store, err := storage.New(dir, imagepkg.FilenamePrefix, nil)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	engine := gin.New()
	NewServer(r, catalog, store, zap.NewNop(), "https://blog.example.com").RegisterRoutes(engine)
	return engine, dir
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t, &stubRenderer{})
	w := do(r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK || decode(t, w)["status"] != "ok" {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}
}

func TestListTemplates(t *testing.T) {
	r, _ := newTestServer(t, &stubRenderer{})
	w := do(r, http.MethodGet, "/api/templates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body struct {
		Templates []templates.Summary `json:"templates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Templates) != len(templates.Builtin()) || body.Templates[0].ID != templates.DefaultID {
		t.Fatalf("templates = %+v", body.Templates)
	}
}

func TestGenerateSavesAndReturnsURL(t *testing.T) {
	r, dir := newTestServer(t, &stubRenderer{})
	w := do(r, http.MethodPost, "/api/generate", imagepkg.Request{MainText: "Hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["success"] != true || body["filename"] != "featured-image-1.jpg" || body["url"] != "/generated/featured-image-1.jpg" {
		t.Fatalf("body = %v", body)
	}
	if _, err := os.Stat(filepath.Join(dir, "featured-image-1.jpg")); err != nil {
		t.Fatalf("file not saved: %v", err)
	}

	// the saved file is served statically
	w = do(r, http.MethodGet, "/generated/featured-image-1.jpg", nil)
	if w.Code != http.StatusOK || w.Body.String() != "jpeg" {
		t.Fatalf("static: %d %q", w.Code, w.Body.String())
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{fmt.Errorf("%w: mainText is required", imagepkg.ErrValidation), http.StatusBadRequest, imagepkg.KindValidation},
		{fmt.Errorf("%w: HTTP 404", imagepkg.ErrBackgroundFetch), http.StatusUnprocessableEntity, imagepkg.KindBackgroundFetch},
		{errors.New("encode jpeg: boom"), http.StatusInternalServerError, imagepkg.KindInternal},
	}
	for _, tc := range cases {
		r, dir := newTestServer(t, &stubRenderer{err: tc.err})
		w := do(r, http.MethodPost, "/api/generate", imagepkg.Request{MainText: "x"})
		if w.Code != tc.status {
			t.Fatalf("%v: status %d, want %d", tc.err, w.Code, tc.status)
		}
		body := decode(t, w)
		if body["success"] != false || body["kind"] != tc.kind || body["error"] != tc.err.Error() {
			t.Fatalf("%v: body = %v", tc.err, body)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Fatalf("%v: files written on failure: %v", tc.err, entries)
		}
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	stub := &stubRenderer{}
	r, _ := newTestServer(t, stub)
	w := do(r, http.MethodPost, "/api/generate", "{not json")
	if w.Code != http.StatusBadRequest || decode(t, w)["kind"] != imagepkg.KindValidation {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}
	if stub.calls != 0 {
		t.Fatal("renderer called for a malformed body")
	}
}

func TestCORS(t *testing.T) {
	r, _ := newTestServer(t, &stubRenderer{})

	w := do(r, http.MethodOptions, "/api/generate", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://blog.example.com" {
		t.Fatalf("allow origin = %q", got)
	}

	w = do(r, http.MethodGet, "/api/health", nil)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://blog.example.com" {
		t.Fatalf("allow origin on GET = %q", got)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	catalog, err := templates.Default(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fonts, err := imagepkg.NewFontSet()
	if err != nil {
		t.Fatal(err)
	}
	node, err := snowflake.NewNode(3)
	if err != nil {
		t.Fatal(err)
	}
	renderer := imagepkg.NewRenderer(catalog, fonts, nil, node, zap.NewNop())

	r, dir := newTestServer(t, renderer)
	w := do(r, http.MethodPost, "/api/generate", map[string]any{
		"templateId":    "modern",
		"mainText":      "Release notes for March",
		"categoryText":  "product",
		"bannerOpacity": 0.7,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	name, _ := body["filename"].(string)
	if body["template"] != "modern" || name == "" {
		t.Fatalf("body = %v", body)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil || len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Fatalf("saved file is not a jpeg: %v", err)
	}
}

func TestGenerateRejectsOversizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog, err := templates.Default(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store, err := storage.New(t.TempDir(), imagepkg.FilenamePrefix, nil)
	if err != nil {
		t.Fatal(err)
	}
	stub := &stubRenderer{}
	srv := NewServer(stub, catalog, store, zap.NewNop(), "")
	srv.maxBody = 1024
	r := gin.New()
	srv.RegisterRoutes(r)

	body := fmt.Sprintf(`{"mainText":"x","bgImageBase64":%q}`, strings.Repeat("A", 4096))
	w := do(r, http.MethodPost, "/api/generate", body)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["kind"] != imagepkg.KindValidation {
		t.Fatalf("body = %s", w.Body.String())
	}
	if stub.calls != 0 {
		t.Fatal("renderer called for an oversized body")
	}
}
