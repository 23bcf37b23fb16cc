package blogs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foliohub/foliohub/internal/app/features/blogs"
	blogstore "github.com/foliohub/foliohub/internal/app/store/blogs"
	"github.com/foliohub/foliohub/internal/domain/models"
	"github.com/foliohub/foliohub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*blogs.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return blogs.NewHandler(db, zap.NewNop()), db
}

func createBlog(t *testing.T, handler *blogs.Handler, username string, payload map[string]any) string {
	t.Helper()
	req := testutil.JSONRequest(t, "POST", "/profiles/"+username+"/blogs", payload)
	req = testutil.WithChiURLParam(req, "username", username)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("blog create failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	testutil.DecodeBody(t, rec, &resp)
	return resp.ID
}

// Draft first, then a published post: the default list shows only the
// published one, and the draft read back has no published_at.
func TestDraftThenPublishedFlow(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	createBlog(t, handler, "maya", map[string]any{
		"slug":    "hello",
		"title":   "Hello",
		"content": "draft words",
	})
	createBlog(t, handler, "maya", map[string]any{
		"slug":      "world",
		"title":     "World",
		"content":   "published words",
		"published": true,
	})

	draft, err := blogstore.New(db).GetBySlug(ctx, "maya", "hello")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if draft.PublishedAt != nil {
		t.Errorf("draft has published_at: %v", draft.PublishedAt)
	}

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/profiles/maya/blogs", nil), "username", "maya")
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var listed []models.Blog
	testutil.DecodeBody(t, rec, &listed)
	if len(listed) != 1 || listed[0].Slug != "world" {
		t.Errorf("default list should hold only the published post, got %+v", listed)
	}
	if listed[0].PublishedAt == nil {
		t.Error("published post missing published_at")
	}
}

func TestHandleList_IncludeDrafts(t *testing.T) {
	handler, _ := newTestHandler(t)

	createBlog(t, handler, "maya", map[string]any{"slug": "draft", "title": "D", "content": "c"})
	createBlog(t, handler, "maya", map[string]any{"slug": "live", "title": "L", "content": "c", "published": true})

	req := httptest.NewRequest("GET", "/profiles/maya/blogs?published_only=false", nil)
	req = testutil.WithChiURLParam(req, "username", "maya")
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	var listed []models.Blog
	testutil.DecodeBody(t, rec, &listed)
	if len(listed) != 2 {
		t.Fatalf("expected both posts, got %d", len(listed))
	}
	// Draft sorts last: no published_at.
	if listed[0].Slug != "live" || listed[1].Slug != "draft" {
		t.Errorf("order: got %q then %q", listed[0].Slug, listed[1].Slug)
	}
}

func TestHandleList_FalsySpellings(t *testing.T) {
	handler, _ := newTestHandler(t)

	createBlog(t, handler, "maya", map[string]any{"slug": "draft", "title": "D", "content": "c"})
	createBlog(t, handler, "maya", map[string]any{"slug": "live", "title": "L", "content": "c", "published": true})

	// Browser form clients spell false loosely; all of these include drafts.
	for _, v := range []string{"false", "False", "FALSE", "0", "no", "off", "f", "n"} {
		req := httptest.NewRequest("GET", "/profiles/maya/blogs?published_only="+v, nil)
		req = testutil.WithChiURLParam(req, "username", "maya")
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		var listed []models.Blog
		testutil.DecodeBody(t, rec, &listed)
		if len(listed) != 2 {
			t.Errorf("published_only=%s: expected both posts, got %d", v, len(listed))
		}
	}

	// Anything else, truthy or garbage, keeps the published-only default.
	for _, v := range []string{"true", "1", "maybe", ""} {
		req := httptest.NewRequest("GET", "/profiles/maya/blogs?published_only="+v, nil)
		req = testutil.WithChiURLParam(req, "username", "maya")
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		var listed []models.Blog
		testutil.DecodeBody(t, rec, &listed)
		if len(listed) != 1 || listed[0].Slug != "live" {
			t.Errorf("published_only=%q: expected only the published post, got %+v", v, listed)
		}
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	handler, _ := newTestHandler(t)

	for name, payload := range map[string]map[string]any{
		"missing slug":    {"title": "T", "content": "c"},
		"missing title":   {"slug": "s", "content": "c"},
		"missing content": {"slug": "s", "title": "T"},
	} {
		t.Run(name, func(t *testing.T) {
			req := testutil.JSONRequest(t, "POST", "/profiles/maya/blogs", payload)
			req = testutil.WithChiURLParam(req, "username", "maya")
			rec := httptest.NewRecorder()
			handler.HandleCreate(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestHandleCreate_SanitizesContent(t *testing.T) {
	handler, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	createBlog(t, handler, "maya", map[string]any{
		"slug":    "xss",
		"title":   "XSS",
		"content": "<p>fine</p><script>alert('x')</script>",
	})

	saved, err := blogstore.New(db).GetBySlug(ctx, "maya", "xss")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if saved.Content != "<p>fine</p>" {
		t.Errorf("script survived sanitation: %q", saved.Content)
	}
}

func TestHandleGet(t *testing.T) {
	handler, _ := newTestHandler(t)

	createBlog(t, handler, "maya", map[string]any{"slug": "hello", "title": "Hello", "content": "c"})

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/profiles/maya/blogs/hello", nil), "username", "maya")
	req = testutil.WithChiURLParam(req, "slug", "hello")
	rec := httptest.NewRecorder()
	handler.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var resp models.Blog
	testutil.DecodeBody(t, rec, &resp)
	if resp.Slug != "hello" {
		t.Errorf("slug: got %q", resp.Slug)
	}
	if resp.ID.IsZero() {
		t.Error("expected the public id to round-trip")
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/profiles/maya/blogs/nope", nil), "username", "maya")
	req = testutil.WithChiURLParam(req, "slug", "nope")
	rec := httptest.NewRecorder()
	handler.HandleGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
