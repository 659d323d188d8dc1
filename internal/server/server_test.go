package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ventspec/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{UploadsDir: t.TempDir(), ResultsDir: t.TempDir()}
	return New(cfg, nil, nil, nil, nil)
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestExtractRequiresFile(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/extract", nil)
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExtractRejectsNonPDF(t *testing.T) {
	srv := testServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte("plain text"))
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/extract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "expected a PDF") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestLooksLikePDF(t *testing.T) {
	cases := []struct {
		filename    string
		contentType string
		want        bool
	}{
		{"drawing.pdf", "", true},
		{"DRAWING.PDF", "", true},
		{"upload", "application/pdf", true},
		{"upload", "application/octet-stream", false},
		{"notes.txt", "text/plain", false},
	}
	for _, tc := range cases {
		if got := looksLikePDF(tc.filename, tc.contentType); got != tc.want {
			t.Fatalf("looksLikePDF(%q, %q) = %v, want %v", tc.filename, tc.contentType, got, tc.want)
		}
	}
}
