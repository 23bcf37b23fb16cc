package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foliohub/foliohub/internal/app/features/home"
	"github.com/foliohub/foliohub/internal/testutil"
	"go.uber.org/zap"
)

func TestServe(t *testing.T) {
	handler := home.NewHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	testutil.DecodeBody(t, rec, &resp)
	if resp.Message != "Portfolio API running" {
		t.Errorf("message: got %q", resp.Message)
	}
}
