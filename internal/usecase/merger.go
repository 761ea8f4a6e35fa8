package usecase

import (
	"context"
	"fmt"
	"time"

	"cv-composer/internal/domain"
	"cv-composer/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type DividerRenderer interface {
	RenderDivider(ctx context.Context, title string) ([]byte, error)
}

// AttachmentRef identifies one certificate to append.
type AttachmentRef struct {
	Section  domain.Section
	RecordID int64
	Label    string
	Ref      string
}

type MergeReport struct {
	Dividers int
	Appended []AttachmentRef
	Skipped  []*domain.AttachmentError
	// Dropped lists parts that fetched and parsed but could not be merged.
	Dropped []string
}

type attachmentGroup struct {
	section domain.Section
	refs    []AttachmentRef
}

type fetchResult struct {
	data []byte
	err  error
}

// AttachmentMerger appends divider pages and certificate files for the
// certificate-bearing sections. Nothing it does fails the composition.
type AttachmentMerger struct {
	fetcher     CertificateFetcher
	assets      AssetResolver
	pdf         PDFMerger
	dividers    DividerRenderer
	log         *logger.Logger
	concurrency int
	timeout     time.Duration
}

func NewAttachmentMerger(f CertificateFetcher, assets AssetResolver, pdf PDFMerger, d DividerRenderer, log *logger.Logger, concurrency int, timeout time.Duration) *AttachmentMerger {
	if concurrency < 1 {
		concurrency = 1
	}
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &AttachmentMerger{
		fetcher:     f,
		assets:      assets,
		pdf:         pdf,
		dividers:    d,
		log:         log,
		concurrency: concurrency,
		timeout:     timeout,
	}
}

// attachmentGroups lists, in document order, the sections that get a divider:
// included and holding at least one record with an uploaded certificate.
func attachmentGroups(sel *Selection) []attachmentGroup {
	var groups []attachmentGroup
	if sel.IsIncluded(domain.SectionCourses) {
		g := attachmentGroup{section: domain.SectionCourses}
		for _, c := range sel.Courses {
			if c.Certificate.Fetchable() {
				g.refs = append(g.refs, AttachmentRef{Section: g.section, RecordID: c.ID, Label: c.Name, Ref: c.Certificate.File})
			}
		}
		if len(g.refs) > 0 {
			groups = append(groups, g)
		}
	}
	if sel.IsIncluded(domain.SectionRecognitions) {
		g := attachmentGroup{section: domain.SectionRecognitions}
		for _, r := range sel.Recognitions {
			if r.Certificate.Fetchable() {
				g.refs = append(g.refs, AttachmentRef{Section: g.section, RecordID: r.ID, Label: r.Description, Ref: r.Certificate.File})
			}
		}
		if len(g.refs) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Append adds dividers and certificates for sel to asm.
func (m *AttachmentMerger) Append(ctx context.Context, sel *Selection, asm *DocumentAssembler) MergeReport {
	var report MergeReport
	groups := attachmentGroups(sel)
	if len(groups) == 0 {
		return report
	}

	var refs []AttachmentRef
	for _, g := range groups {
		refs = append(refs, g.refs...)
	}
	results := m.fetchAll(ctx, refs)

	i := 0
	for _, g := range groups {
		divider, err := m.dividers.RenderDivider(ctx, g.section.Title())
		if err != nil {
			m.log.Warn("divider page skipped", "section", g.section, "error", err)
		} else {
			asm.AddDivider(g.section.Title(), divider)
			report.Dividers++
		}
		for _, ref := range g.refs {
			res := results[i]
			i++
			if res.err != nil {
				aerr := &domain.AttachmentError{Section: ref.Section, RecordID: ref.RecordID, Ref: ref.Ref, Err: res.err}
				m.log.Info("certificate skipped", "section", ref.Section, "record", ref.RecordID, "ref", ref.Ref, "error", res.err)
				report.Skipped = append(report.Skipped, aerr)
				continue
			}
			asm.AddAttachment(fmt.Sprintf("%s#%d", ref.Section, ref.RecordID), res.data)
			report.Appended = append(report.Appended, ref)
		}
	}
	return report
}

// fetchAll downloads every ref with bounded parallelism. results[i] belongs
// to refs[i] regardless of completion order.
func (m *AttachmentMerger) fetchAll(ctx context.Context, refs []AttachmentRef) []fetchResult {
	results := make([]fetchResult, len(refs))
	var g errgroup.Group
	g.SetLimit(m.concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			data, err := m.fetchOne(ctx, ref)
			results[i] = fetchResult{data: data, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (m *AttachmentMerger) fetchOne(ctx context.Context, ref AttachmentRef) ([]byte, error) {
	u, err := m.assets.Resolve(ref.Ref)
	if err != nil {
		return nil, err
	}
	fctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	data, err := m.fetcher.Fetch(fctx, u)
	if err != nil {
		return nil, err
	}
	if _, err := m.pdf.PageCount(data); err != nil {
		return nil, err
	}
	return data, nil
}
