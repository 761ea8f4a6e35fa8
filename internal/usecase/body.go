package usecase

import (
	"bytes"
	"context"
	"html/template"

	"cv-composer/internal/domain"
	"cv-composer/internal/model"
	"cv-composer/templates"

	"github.com/pkg/errors"
)

// assetFuncs exposes the resolver to templates. Failing resolution aborts
// template execution.
func assetFuncs(assets AssetResolver) template.FuncMap {
	return template.FuncMap{
		"asset": func(ref string) (template.URL, error) {
			u, err := assets.Resolve(ref)
			if err != nil {
				return "", err
			}
			return template.URL(u), nil
		},
	}
}

// BodyRenderer produces the base CV document.
type BodyRenderer struct {
	renderer Renderer
	cv       *template.Template
	divider  *template.Template
}

func NewBodyRenderer(r Renderer, assets AssetResolver) (*BodyRenderer, error) {
	cv, err := template.New(templates.CV).Funcs(assetFuncs(assets)).ParseFS(templates.FS, templates.CV)
	if err != nil {
		return nil, errors.Wrap(err, "parse cv template")
	}
	divider, err := template.New(templates.Divider).ParseFS(templates.FS, templates.Divider)
	if err != nil {
		return nil, errors.Wrap(err, "parse divider template")
	}
	return &BodyRenderer{renderer: r, cv: cv, divider: divider}, nil
}

// RenderHTML validates the document and executes the CV template.
func (b *BodyRenderer) RenderHTML(doc model.CVDocument) (string, error) {
	if err := model.ValidateDocument(doc); err != nil {
		return "", &domain.RenderError{Stage: "validate", Err: err}
	}
	var buf bytes.Buffer
	if err := b.cv.Execute(&buf, doc); err != nil {
		return "", &domain.RenderError{Stage: "template", Err: err}
	}
	return buf.String(), nil
}

// Render returns the base PDF for sel. All failures are *domain.RenderError.
func (b *BodyRenderer) Render(ctx context.Context, sel *Selection) ([]byte, error) {
	html, err := b.RenderHTML(BuildDocument(sel))
	if err != nil {
		return nil, err
	}
	return b.rasterize(ctx, "pdf", html)
}

// RenderDivider produces a single page carrying only title.
func (b *BodyRenderer) RenderDivider(ctx context.Context, title string) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.divider.Execute(&buf, map[string]string{"Title": title}); err != nil {
		return nil, &domain.RenderError{Stage: "divider template", Err: err}
	}
	return b.rasterize(ctx, "divider", buf.String())
}

func (b *BodyRenderer) rasterize(ctx context.Context, stage, html string) ([]byte, error) {
	pdf, err := b.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, &domain.RenderError{Stage: stage, Err: err}
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		return nil, &domain.RenderError{Stage: stage, Err: errors.Errorf("invalid PDF output (len=%d)", len(pdf))}
	}
	return pdf, nil
}
