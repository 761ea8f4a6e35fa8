package infrastructure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssetResolverPassesAbsoluteURLs(t *testing.T) {
	r := NewAssetResolver("", "", "")
	got, err := r.Resolve("https://res.example.com/photo.jpg")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "https://res.example.com/photo.jpg" {
		t.Fatalf("absolute URL changed: %q", got)
	}
}

func TestAssetResolverStaticAndMediaOnDisk(t *testing.T) {
	static := t.TempDir()
	media := t.TempDir()
	if err := os.MkdirAll(filepath.Join(media, "profiles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(static, "logo.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(media, "profiles", "me.jpg"), []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewAssetResolver(static, media, "")

	got, err := r.Resolve("/static/logo.png")
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	if !strings.HasPrefix(got, "file://") || !strings.HasSuffix(got, "/logo.png") {
		t.Fatalf("static resolved to %q", got)
	}

	for _, ref := range []string{"/media/profiles/me.jpg", "profiles/me.jpg"} {
		got, err := r.Resolve(ref)
		if err != nil {
			t.Fatalf("media %q: %v", ref, err)
		}
		if !strings.HasSuffix(got, "/profiles/me.jpg") {
			t.Fatalf("media %q resolved to %q", ref, got)
		}
	}
}

func TestAssetResolverMissingLocalAssetFails(t *testing.T) {
	r := NewAssetResolver(t.TempDir(), t.TempDir(), "")
	if _, err := r.Resolve("/static/missing.css"); err == nil {
		t.Fatalf("expected error for missing static asset")
	}
	if _, err := r.Resolve("profiles/missing.jpg"); err == nil {
		t.Fatalf("expected error for missing media asset")
	}
	if _, err := r.Resolve(""); err == nil {
		t.Fatalf("expected error for empty reference")
	}
}

func TestAssetResolverRemoteMediaRoot(t *testing.T) {
	r := NewAssetResolver("", "", "https://cdn.example.com/cv/")
	got, err := r.Resolve("/media/certificates/../certificates/go.pdf")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "https://cdn.example.com/cv/certificates/go.pdf" {
		t.Fatalf("remote media resolved to %q", got)
	}
}

func TestAssetResolverDoesNotEscapeRoot(t *testing.T) {
	parent := t.TempDir()
	media := filepath.Join(parent, "media")
	if err := os.MkdirAll(media, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewAssetResolver("", media, "")
	if _, err := r.Resolve("../secret.txt"); err == nil {
		t.Fatalf("expected traversal outside the media root to fail")
	}
}

func TestPublicAssetsResolve(t *testing.T) {
	local := PublicAssets{NewAssetResolver("static", "media", "")}
	cases := map[string]string{
		"https://x.example.com/a.png": "https://x.example.com/a.png",
		"/static/css/site.css":        "/static/css/site.css",
		"/media/profiles/me.jpg":      "/media/profiles/me.jpg",
		"reports/courses.pdf":         "/media/reports/courses.pdf",
		"../../etc/passwd":            "/media/etc/passwd",
	}
	for in, want := range cases {
		got, err := local.Resolve(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %q want %q", in, got, want)
		}
	}

	remote := PublicAssets{NewAssetResolver("static", "media", "https://cdn.example.com")}
	got, err := remote.Resolve("reports/courses.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if got != "https://cdn.example.com/reports/courses.pdf" {
		t.Fatalf("remote: %q", got)
	}
}
