package usecase

import (
	"context"
	"sort"

	"cv-composer/internal/domain"

	"github.com/pkg/errors"
)

const maskOn = "on"

// SelectionMask is the per-request choice of sections. Absent means not
// included.
type SelectionMask map[domain.Section]bool

// ParseSelectionMask reads one flag per section through get (typically a
// query-string lookup). Only the literal "on" sets a bit.
func ParseSelectionMask(get func(key string) string) SelectionMask {
	m := SelectionMask{}
	for _, s := range domain.AllSections {
		if get(s.QueryKey()) == maskOn {
			m[s] = true
		}
	}
	return m
}

// FullMask includes every section. Web pages render with it.
func FullMask() SelectionMask {
	m := SelectionMask{}
	for _, s := range domain.AllSections {
		m[s] = true
	}
	return m
}

func (m SelectionMask) Has(s domain.Section) bool { return m[s] }

// Selection is the resolved content of one rendering: which sections appear
// and, for each, its records in output order.
type Selection struct {
	Profile  *domain.Profile
	Included map[domain.Section]bool

	Experiences      []domain.Experience
	Courses          []domain.Course
	Recognitions     []domain.Recognition
	AcademicProducts []domain.AcademicProduct
	WorkProducts     []domain.WorkProduct
	MarketplaceItems []domain.MarketplaceItem
}

func (s *Selection) IsIncluded(sec domain.Section) bool { return s.Included[sec] }

// Resolver applies mask AND profile switch AND record publish flag.
type Resolver struct {
	store ProfileStore
}

func NewResolver(store ProfileStore) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Resolve(ctx context.Context, profile *domain.Profile, mask SelectionMask) (*Selection, error) {
	if profile == nil {
		return nil, domain.ErrNoProfile
	}
	sel := &Selection{Profile: profile, Included: map[domain.Section]bool{}}
	for _, s := range domain.AllSections {
		if !mask.Has(s) || !profile.Switches.Enabled(s) {
			continue
		}
		sel.Included[s] = true
		if err := r.load(ctx, sel, s); err != nil {
			return nil, errors.Wrapf(err, "load %s", s)
		}
	}
	return sel, nil
}

func (r *Resolver) load(ctx context.Context, sel *Selection, s domain.Section) error {
	pid := sel.Profile.ID
	switch s {
	case domain.SectionExperience:
		rows, err := r.store.Experiences(ctx, pid, true)
		if err != nil {
			return err
		}
		rows = published(rows, func(e domain.Experience) bool { return e.Published })
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].StartDate.After(rows[j].StartDate) })
		sel.Experiences = rows
	case domain.SectionCourses:
		rows, err := r.store.Courses(ctx, pid, true)
		if err != nil {
			return err
		}
		rows = published(rows, func(c domain.Course) bool { return c.Published })
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].EndDate.After(rows[j].EndDate) })
		sel.Courses = rows
	case domain.SectionRecognitions:
		rows, err := r.store.Recognitions(ctx, pid, true)
		if err != nil {
			return err
		}
		rows = published(rows, func(rc domain.Recognition) bool { return rc.Published })
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
		sel.Recognitions = rows
	case domain.SectionAcademicProducts:
		rows, err := r.store.AcademicProducts(ctx, pid, true)
		if err != nil {
			return err
		}
		rows = published(rows, func(a domain.AcademicProduct) bool { return a.Published })
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
		sel.AcademicProducts = rows
	case domain.SectionWorkProducts:
		rows, err := r.store.WorkProducts(ctx, pid, true)
		if err != nil {
			return err
		}
		rows = published(rows, func(w domain.WorkProduct) bool { return w.Published })
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
		sel.WorkProducts = rows
	case domain.SectionMarketplace:
		rows, err := r.store.MarketplaceItems(ctx, pid, true)
		if err != nil {
			return err
		}
		rows = published(rows, func(m domain.MarketplaceItem) bool { return m.Published })
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].PublishedAt.After(rows[j].PublishedAt) })
		sel.MarketplaceItems = rows
	}
	return nil
}

// published drops unpublished rows even if the store ignored the predicate.
func published[T any](rows []T, ok func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if ok(r) {
			out = append(out, r)
		}
	}
	return out
}
