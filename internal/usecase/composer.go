package usecase

import (
	"context"
	"strings"

	"cv-composer/internal/domain"
	"cv-composer/pkg/logger"

	"github.com/google/uuid"
)

type State string

const (
	StateResolving State = "RESOLVING"
	StateRendering State = "RENDERING"
	StateMerging   State = "MERGING"
	StateDone      State = "DONE"
	StateFailed    State = "FAILED"
)

type Result struct {
	ID       uuid.UUID
	Filename string
	PDF      []byte
	State    State
	Report   MergeReport
}

// Composer drives one composition request through
// RESOLVING -> RENDERING -> MERGING -> DONE. Only resolving and rendering
// can fail; merging always completes.
type Composer struct {
	profiles ActiveProfileProvider
	resolver *Resolver
	body     *BodyRenderer
	merger   *AttachmentMerger
	pdf      PDFMerger
	log      *logger.Logger
}

func NewComposer(profiles ActiveProfileProvider, resolver *Resolver, body *BodyRenderer, merger *AttachmentMerger, pdf PDFMerger, log *logger.Logger) *Composer {
	return &Composer{profiles: profiles, resolver: resolver, body: body, merger: merger, pdf: pdf, log: log}
}

type composition struct {
	id    uuid.UUID
	state State
	log   *logger.Logger
}

func (c *composition) enter(s State) {
	c.log.Debug("composition state", "from", c.state, "to", s)
	c.state = s
}

func (c *composition) fail(err error) (*Result, error) {
	c.log.Warn("composition failed", "state", c.state, "error", err)
	c.state = StateFailed
	return &Result{ID: c.id, State: StateFailed}, err
}

// Compose builds the composite PDF for the active profile. Errors are
// domain.ErrNoProfile (a NotFoundError), *domain.RenderError, or store
// failures during resolution.
func (c *Composer) Compose(ctx context.Context, mask SelectionMask) (*Result, error) {
	id := uuid.New()
	run := &composition{id: id, log: c.log.With("composition", id.String())}

	run.enter(StateResolving)
	profile, err := c.profiles.ActiveProfile(ctx)
	if err != nil {
		return run.fail(err)
	}
	sel, err := c.resolver.Resolve(ctx, profile, mask)
	if err != nil {
		return run.fail(err)
	}

	run.enter(StateRendering)
	body, err := c.body.Render(ctx, sel)
	if err != nil {
		return run.fail(err)
	}

	run.enter(StateMerging)
	asm := NewDocumentAssembler(c.pdf)
	defer asm.Release()
	asm.AddBody(body)
	report := c.merger.Append(ctx, sel, asm)

	out, dropped, err := asm.Flush()
	if err != nil {
		run.log.Warn("merge failed, returning body only", "error", err)
		out = body
	}
	if len(dropped) > 0 {
		run.log.Warn("parts left out of the merge", "parts", dropped)
		report.Dropped = dropped
	}

	run.enter(StateDone)
	run.log.Info("composition done", "bytes", len(out), "dividers", report.Dividers,
		"appended", len(report.Appended), "skipped", len(report.Skipped))
	return &Result{
		ID:       id,
		Filename: Filename(profile),
		PDF:      out,
		State:    StateDone,
		Report:   report,
	}, nil
}

// Filename is CV_<surname>.pdf with characters unsafe in a header dropped.
func Filename(p *domain.Profile) string {
	var b strings.Builder
	for _, r := range p.Surnames {
		switch {
		case r == '"' || r == '\\' || r == '/' || r < 0x20:
			continue
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = "profile"
	}
	return "CV_" + name + ".pdf"
}
