package profilestore_test

import (
	"errors"
	"testing"

	profilestore "github.com/foliohub/foliohub/internal/app/store/profiles"
	"github.com/foliohub/foliohub/internal/domain/models"
	"github.com/foliohub/foliohub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func strptr(s string) *string { return &s }

func TestStore_Create_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "maya")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Headline != "" || created.About != "" {
		t.Error("expected blank headline and about")
	}
	if len(created.Socials) != 0 {
		t.Errorf("expected empty socials, got %v", created.Socials)
	}
	if created.Theme != models.DefaultTheme {
		t.Errorf("theme: got %q, want %q", created.Theme, models.DefaultTheme)
	}
	if created.UpdatedAt != nil {
		t.Error("expected no updated_at on a fresh profile")
	}
}

func TestStore_GetByUsername_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByUsername(ctx, "nobody"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_Update_MergePatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "maya"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.Update(ctx, "maya", profilestore.Patch{
		Headline: strptr("Systems tinkerer"),
		Socials:  &map[string]string{"github": "https://github.com/maya"},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Headline != "Systems tinkerer" {
		t.Errorf("headline: got %q", updated.Headline)
	}
	if updated.Socials["github"] != "https://github.com/maya" {
		t.Errorf("socials: got %v", updated.Socials)
	}
	if updated.About != "" {
		t.Errorf("about should be untouched, got %q", updated.About)
	}
	if updated.Theme != models.DefaultTheme {
		t.Errorf("theme should be untouched, got %q", updated.Theme)
	}
	if updated.UpdatedAt == nil {
		t.Error("expected updated_at to be stamped")
	}

	// A second patch overwrites only what it supplies.
	updated, err = store.Update(ctx, "maya", profilestore.Patch{About: strptr("I build things.")})
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if updated.Headline != "Systems tinkerer" {
		t.Errorf("headline lost on second patch: got %q", updated.Headline)
	}
	if updated.About != "I build things." {
		t.Errorf("about: got %q", updated.About)
	}
}

func TestStore_Update_EmptyPatchIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "maya"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	before, err := store.Update(ctx, "maya", profilestore.Patch{Headline: strptr("hello")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	after, err := store.Update(ctx, "maya", profilestore.Patch{})
	if err != nil {
		t.Fatalf("empty Update failed: %v", err)
	}

	if after.Headline != "hello" {
		t.Errorf("headline changed by empty patch: got %q", after.Headline)
	}
	if after.UpdatedAt == nil || !after.UpdatedAt.Equal(*before.UpdatedAt) {
		t.Errorf("updated_at changed by empty patch: got %v, want %v", after.UpdatedAt, before.UpdatedAt)
	}
}

func TestStore_Update_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Update(ctx, "nobody", profilestore.Patch{Headline: strptr("x")})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_Update_ClearsWithEmptyString(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "maya"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Update(ctx, "maya", profilestore.Patch{Headline: strptr("to be cleared")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := store.Update(ctx, "maya", profilestore.Patch{Headline: strptr("")})
	if err != nil {
		t.Fatalf("clearing Update failed: %v", err)
	}
	if updated.Headline != "" {
		t.Errorf("supplied empty string should overwrite, got %q", updated.Headline)
	}
}
