package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"cv-composer/internal/domain"

	"github.com/pkg/errors"
)

// Fixture is the on-disk JSON shape read by FixtureStore.
type Fixture struct {
	Profiles         []domain.Profile         `json:"profiles"`
	Experiences      []domain.Experience      `json:"experiences"`
	Courses          []domain.Course          `json:"courses"`
	Recognitions     []domain.Recognition     `json:"recognitions"`
	AcademicProducts []domain.AcademicProduct `json:"academic_products"`
	WorkProducts     []domain.WorkProduct     `json:"work_products"`
	MarketplaceItems []domain.MarketplaceItem `json:"marketplace_items"`
	UnifiedReports   []domain.UnifiedReport   `json:"unified_reports"`
}

// FixtureStore serves a Fixture from memory. It backs the local tools and
// tests where no database is available. Records are returned in fixture
// order; ordering is the resolver's job.
type FixtureStore struct {
	data Fixture
}

func NewFixtureStore(f Fixture) *FixtureStore {
	profiles := append([]domain.Profile(nil), f.Profiles...)
	sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	f.Profiles = profiles
	return &FixtureStore{data: f}
}

func LoadFixtureFile(path string) (*FixtureStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read fixture")
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "decode fixture")
	}
	return NewFixtureStore(f), nil
}

func (s *FixtureStore) FirstActiveProfile(ctx context.Context) (*domain.Profile, error) {
	for i := range s.data.Profiles {
		if s.data.Profiles[i].Active {
			p := s.data.Profiles[i]
			return &p, nil
		}
	}
	return nil, domain.NotFoundError{Resource: "profile"}
}

func (s *FixtureStore) FirstProfile(ctx context.Context) (*domain.Profile, error) {
	if len(s.data.Profiles) == 0 {
		return nil, domain.NotFoundError{Resource: "profile"}
	}
	p := s.data.Profiles[0]
	return &p, nil
}

func filterRows[T any](rows []T, profileID int64, publishedOnly bool, owner func(T) int64, published func(T) bool) []T {
	var out []T
	for _, r := range rows {
		if owner(r) != profileID {
			continue
		}
		if publishedOnly && !published(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *FixtureStore) Experiences(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Experience, error) {
	return filterRows(s.data.Experiences, profileID, publishedOnly,
		func(e domain.Experience) int64 { return e.ProfileID },
		func(e domain.Experience) bool { return e.Published }), nil
}

func (s *FixtureStore) Courses(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Course, error) {
	return filterRows(s.data.Courses, profileID, publishedOnly,
		func(c domain.Course) int64 { return c.ProfileID },
		func(c domain.Course) bool { return c.Published }), nil
}

func (s *FixtureStore) Recognitions(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.Recognition, error) {
	return filterRows(s.data.Recognitions, profileID, publishedOnly,
		func(r domain.Recognition) int64 { return r.ProfileID },
		func(r domain.Recognition) bool { return r.Published }), nil
}

func (s *FixtureStore) AcademicProducts(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.AcademicProduct, error) {
	return filterRows(s.data.AcademicProducts, profileID, publishedOnly,
		func(a domain.AcademicProduct) int64 { return a.ProfileID },
		func(a domain.AcademicProduct) bool { return a.Published }), nil
}

func (s *FixtureStore) WorkProducts(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.WorkProduct, error) {
	return filterRows(s.data.WorkProducts, profileID, publishedOnly,
		func(w domain.WorkProduct) int64 { return w.ProfileID },
		func(w domain.WorkProduct) bool { return w.Published }), nil
}

func (s *FixtureStore) MarketplaceItems(ctx context.Context, profileID int64, publishedOnly bool) ([]domain.MarketplaceItem, error) {
	return filterRows(s.data.MarketplaceItems, profileID, publishedOnly,
		func(m domain.MarketplaceItem) int64 { return m.ProfileID },
		func(m domain.MarketplaceItem) bool { return m.Published }), nil
}

func (s *FixtureStore) UnifiedReport(ctx context.Context, section domain.Section) (*domain.UnifiedReport, error) {
	for _, r := range s.data.UnifiedReports {
		if r.Section == section {
			rep := r
			return &rep, nil
		}
	}
	return nil, domain.NotFoundError{Resource: "unified report"}
}
