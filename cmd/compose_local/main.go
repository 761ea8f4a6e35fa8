package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cv-composer/internal/adapter/repository"
	"cv-composer/internal/usecase"
	infra "cv-composer/pkg/infrastructure"
	"cv-composer/pkg/logger"
)

// compose_local runs a full composition against a JSON fixture instead of
// the database and writes the result to disk.
func main() {
	fixture := flag.String("fixture", filepath.Join("fixtures", "sample_profile.json"), "profile fixture")
	out := flag.String("out", "", "output file (default CV_<surname>.pdf)")
	sections := flag.String("sections", "exp,cur,rec,pa,pl,gar", "comma separated section flags")
	static := flag.String("static", "static", "static asset root")
	media := flag.String("media", "media", "media root")
	chrome := flag.String("chrome", os.Getenv("CHROME_PATH"), "chrome binary")
	flag.Parse()

	log, err := logger.New("dev")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store, err := repository.LoadFixtureFile(*fixture)
	if err != nil {
		log.Fatal("load fixture", "error", err)
	}

	assets := infra.NewAssetResolver(*static, *media, "")
	pdf := infra.NewPDFCPUMerger()
	body, err := usecase.NewBodyRenderer(infra.NewChromedpRenderer(*chrome, 60*time.Second), assets)
	if err != nil {
		log.Fatal("templates", "error", err)
	}
	merger := usecase.NewAttachmentMerger(infra.NewHTTPFetcher(12*time.Second), assets, pdf, body, log, 4, 12*time.Second)
	composer := usecase.NewComposer(usecase.NewStoreProfileProvider(store), usecase.NewResolver(store), body, merger, pdf, log)

	on := map[string]bool{}
	for _, k := range strings.Split(*sections, ",") {
		on[strings.TrimSpace(k)] = true
	}
	mask := usecase.ParseSelectionMask(func(k string) string {
		if on[k] {
			return "on"
		}
		return ""
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := composer.Compose(ctx, mask)
	if err != nil {
		log.Fatal("compose failed", "error", err)
	}
	path := *out
	if path == "" {
		path = res.Filename
	}
	if err := os.WriteFile(path, res.PDF, 0o644); err != nil {
		log.Fatal("write pdf", "error", err)
	}
	log.Info("wrote composite", "path", path, "bytes", len(res.PDF),
		"dividers", res.Report.Dividers, "appended", len(res.Report.Appended), "skipped", len(res.Report.Skipped))
}
