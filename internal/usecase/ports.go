package usecase

import (
	"context"

	"cv-composer/internal/domain"
)

// ProfileStore is the data-access collaborator. Record queries take the
// owning profile id; publishedOnly applies the per-record publish flag.
type ProfileStore interface {
	FirstActiveProfile(ctx context.Context) (*domain.Profile, error)
	FirstProfile(ctx context.Context) (*domain.Profile, error)

	Experiences(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Experience, error)
	Courses(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Course, error)
	Recognitions(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Recognition, error)
	AcademicProducts(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.AcademicProduct, error)
	WorkProducts(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.WorkProduct, error)
	MarketplaceItems(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.MarketplaceItem, error)

	UnifiedReport(ctx context.Context, section domain.Section) (*domain.UnifiedReport, error)
}

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// AssetResolver turns stored asset references into URLs readable at render
// or fetch time.
type AssetResolver interface {
	Resolve(ref string) (string, error)
}

type CertificateFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type PDFMerger interface {
	PageCount(doc []byte) (int, error)
	Merge(docs [][]byte) ([]byte, error)
}
