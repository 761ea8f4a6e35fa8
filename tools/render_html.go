package main

import (
	"context"
	"fmt"
	"os"

	"cv-composer/internal/adapter/repository"
	"cv-composer/internal/usecase"
	infra "cv-composer/pkg/infrastructure"
)

// Renders the CV body HTML for a fixture so template changes can be checked
// in a browser without Chrome or a database.
//
//	go run ./tools/render_html.go fixtures/sample_profile.json > cv.html
func main() {
	in := "fixtures/sample_profile.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	store, err := repository.LoadFixtureFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}
	ctx := context.Background()
	profile, err := usecase.NewStoreProfileProvider(store).ActiveProfile(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", err)
		os.Exit(2)
	}
	sel, err := usecase.NewResolver(store).Resolve(ctx, profile, usecase.FullMask())
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve: %v\n", err)
		os.Exit(2)
	}
	assets := infra.PublicAssets{AssetResolver: infra.NewAssetResolver("static", "media", "")}
	body, err := usecase.NewBodyRenderer(nil, assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse templates: %v\n", err)
		os.Exit(2)
	}
	html, err := body.RenderHTML(usecase.BuildDocument(sel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	fmt.Print(html)
}
