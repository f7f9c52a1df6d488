package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/svgforge/svgforge/pkg/errors"
)

func TestResolveInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte("width = 1.0\nheight = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolveInput(path)
	if err != nil {
		t.Fatalf("resolveInput: %v", err)
	}
	if got != path {
		t.Errorf("got %q, want %q", got, path)
	}
}

func TestResolveInputMissing(t *testing.T) {
	_, err := resolveInput("does-not-exist.toml")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing input should map to FILE_NOT_FOUND: %v", err)
	}
}

func TestRenderCacheDisabled(t *testing.T) {
	ctx := context.Background()

	// --no-cache always disables caching.
	store, key := renderCache(ctx, []byte("x"), &renderOpts{format: "png", noCache: true})
	if key != "" {
		t.Errorf("no-cache must produce an empty key, got %q", key)
	}
	if _, hit, _ := store.Get(ctx, "anything"); hit {
		t.Error("no-cache store must always miss")
	}

	// Plain SVG output skips the cache as well.
	if _, key := renderCache(ctx, []byte("x"), &renderOpts{format: "svg"}); key != "" {
		t.Errorf("svg format must produce an empty key, got %q", key)
	}
}

func TestRenderCacheKeyVariesWithScale(t *testing.T) {
	ctx := context.Background()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	_, k1 := renderCache(ctx, []byte("manifest"), &renderOpts{format: "png", scale: 1})
	_, k2 := renderCache(ctx, []byte("manifest"), &renderOpts{format: "png", scale: 2})
	if k1 == "" || k2 == "" {
		t.Fatal("expected cache keys")
	}
	if k1 == k2 {
		t.Error("scale must affect the cache key")
	}
}
