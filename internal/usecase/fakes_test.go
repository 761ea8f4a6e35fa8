package usecase

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"cv-composer/internal/adapter/repository"
	"cv-composer/internal/domain"
	"cv-composer/pkg/logger"

	"github.com/pkg/errors"
)

// fakeRenderer "prints" html by prefixing it with a PDF header.
type fakeRenderer struct {
	mu    sync.Mutex
	calls []string
	err   error
	raw   []byte
}

func (r *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, html)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.raw != nil {
		return r.raw, nil
	}
	return []byte("%PDF-fake\n" + html), nil
}

type identityAssets struct{}

func (identityAssets) Resolve(ref string) (string, error) {
	if strings.HasPrefix(ref, "missing/") {
		return "", errors.Errorf("asset %q not found", ref)
	}
	return "mem://" + ref, nil
}

type fetchReply struct {
	data  []byte
	err   error
	delay time.Duration
	block bool
}

type fakeFetcher struct {
	mu      sync.Mutex
	replies map[string]fetchReply
	seen    []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.seen = append(f.seen, url)
	r, ok := f.replies[url]
	f.mu.Unlock()
	if !ok {
		return nil, errors.Errorf("no such document %s", url)
	}
	if r.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return r.data, r.err
}

// fakePDF accepts anything starting with %PDF and joins merged documents
// with a separator so tests can inspect order.
type fakePDF struct {
	mu       sync.Mutex
	merged   [][]byte
	mergeErr error
	// reject makes any merge that includes this exact document fail.
	reject []byte
}

var partSep = []byte("\n--part--\n")

func (p *fakePDF) PageCount(doc []byte) (int, error) {
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		return 0, errors.New("not a pdf")
	}
	return 1, nil
}

func (p *fakePDF) Merge(docs [][]byte) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.merged = append([][]byte(nil), docs...)
	if p.mergeErr != nil {
		return nil, p.mergeErr
	}
	for _, d := range docs {
		if p.reject != nil && bytes.Equal(d, p.reject) {
			return nil, errors.New("malformed object stream")
		}
	}
	return bytes.Join(docs, partSep), nil
}

type failingStore struct {
	ProfileStore
	err error
}

func (s failingStore) FirstActiveProfile(ctx context.Context) (*domain.Profile, error) {
	return nil, s.err
}

func (s failingStore) FirstProfile(ctx context.Context) (*domain.Profile, error) {
	return nil, s.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProfile() domain.Profile {
	return domain.Profile{
		ID:         1,
		Active:     true,
		Surnames:   "Torres",
		FirstNames: "Ana",
		Email:      "ana@example.com",
		Switches:   domain.AllSwitchesOn(),
	}
}

// twoCourses is one course with an uploaded certificate and one without.
func twoCourses() repository.Fixture {
	return repository.Fixture{
		Profiles: []domain.Profile{testProfile()},
		Experiences: []domain.Experience{
			{ID: 1, ProfileID: 1, Position: "Developer", Company: "Acme", StartDate: date(2020, 1, 1), Published: true},
		},
		Courses: []domain.Course{
			{ID: 1, ProfileID: 1, Name: "Go", StartDate: date(2023, 1, 1), EndDate: date(2023, 2, 1), TotalHours: 40,
				Published: true, Certificate: domain.Certificate{File: "certs/go.pdf"}},
			{ID: 2, ProfileID: 1, Name: "SQL", StartDate: date(2022, 1, 1), EndDate: date(2022, 2, 1), TotalHours: 20,
				Published: true},
		},
	}
}

type harness struct {
	store    *repository.FixtureStore
	renderer *fakeRenderer
	fetcher  *fakeFetcher
	pdf      *fakePDF
	composer *Composer
	merger   *AttachmentMerger
}

func newHarness(t *testing.T, fx repository.Fixture, replies map[string]fetchReply) *harness {
	h := &harness{
		store:    repository.NewFixtureStore(fx),
		renderer: &fakeRenderer{},
		fetcher:  &fakeFetcher{replies: replies},
		pdf:      &fakePDF{},
	}
	body, err := NewBodyRenderer(h.renderer, identityAssets{})
	if err != nil {
		t.Fatalf("body renderer: %v", err)
	}
	log := logger.Nop()
	h.merger = NewAttachmentMerger(h.fetcher, identityAssets{}, h.pdf, body, log, 4, 200*time.Millisecond)
	h.composer = NewComposer(NewStoreProfileProvider(h.store), NewResolver(h.store), body, h.merger, h.pdf, log)
	return h
}

func pdfOf(s string) []byte { return []byte("%PDF-cert " + s) }
