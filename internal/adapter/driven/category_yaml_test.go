package driven

import (
	"context"
	"testing"

	"github.com/spf13/afero"
)

func TestCategoryYAMLSource_LoadCategories(t *testing.T) {
	t.Run("reads overrides", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		content := `categories:
  "ESPN HD": Sports
  "Local 4 SD": Local
`
		if err := afero.WriteFile(fsys, "categories.yaml", []byte(content), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		source := NewCategoryYAMLSource(fsys, "categories.yaml")

		got, err := source.LoadCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got["ESPN HD"] != "Sports" || got["Local 4 SD"] != "Local" {
			t.Errorf("unexpected overrides %v", got)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		got, err := NewCategoryYAMLSource(afero.NewMemMapFs(), "").LoadCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no overrides, got %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		got, err := NewCategoryYAMLSource(afero.NewMemMapFs(), "nope.yaml").LoadCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no overrides, got %v", got)
		}
	})

	t.Run("file without categories key", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		if err := afero.WriteFile(fsys, "categories.yaml", []byte("other: true\n"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		got, err := NewCategoryYAMLSource(fsys, "categories.yaml").LoadCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		if err := afero.WriteFile(fsys, "categories.yaml", []byte("categories: [unclosed"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		if _, err := NewCategoryYAMLSource(fsys, "categories.yaml").LoadCategories(context.Background()); err == nil {
			t.Error("expected parse error")
		}
	})
}
