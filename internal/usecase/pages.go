package usecase

import (
	"bytes"
	"context"
	"html/template"

	"cv-composer/internal/domain"
	"cv-composer/internal/model"
	"cv-composer/pkg/logger"
	"cv-composer/templates"

	"github.com/pkg/errors"
)

// NavItem links one section page and names its PDF selection flag.
type NavItem struct {
	Section  domain.Section
	Title    string
	Path     string
	QueryKey string
}

// SectionPaths maps sections to their web page routes.
var SectionPaths = map[domain.Section]string{
	domain.SectionExperience:       "/experience",
	domain.SectionCourses:          "/courses",
	domain.SectionRecognitions:     "/recognitions",
	domain.SectionAcademicProducts: "/academic-products",
	domain.SectionWorkProducts:     "/work-products",
	domain.SectionMarketplace:      "/marketplace",
}

type homeData struct {
	Profile *model.ProfileView
	Nav     []NavItem
}

type sectionData struct {
	Title   string
	Enabled bool
	Report  template.URL
	Entries []model.Entry
}

// Pages renders the public web pages. They apply the same three-way rule as
// the PDF, with every section selected.
type Pages struct {
	profiles ActiveProfileProvider
	resolver *Resolver
	store    ProfileStore
	assets   AssetResolver
	home     *template.Template
	section  *template.Template
	log      *logger.Logger
}

func NewPages(profiles ActiveProfileProvider, resolver *Resolver, store ProfileStore, assets AssetResolver, log *logger.Logger) (*Pages, error) {
	funcs := assetFuncs(assets)
	home, err := template.New(templates.Home).Funcs(funcs).ParseFS(templates.FS, templates.Home)
	if err != nil {
		return nil, errors.Wrap(err, "parse home template")
	}
	section, err := template.New(templates.Section).Funcs(funcs).ParseFS(templates.FS, templates.Section)
	if err != nil {
		return nil, errors.Wrap(err, "parse section template")
	}
	return &Pages{profiles: profiles, resolver: resolver, store: store, assets: assets, home: home, section: section, log: log}, nil
}

func navFor(p *domain.Profile) []NavItem {
	var nav []NavItem
	for _, s := range domain.AllSections {
		if !p.Switches.Enabled(s) {
			continue
		}
		nav = append(nav, NavItem{Section: s, Title: s.Title(), Path: SectionPaths[s], QueryKey: s.QueryKey()})
	}
	return nav
}

// Home renders the landing page, or a placeholder when there is no profile.
func (p *Pages) Home(ctx context.Context) ([]byte, error) {
	data := homeData{}
	prof, err := p.profiles.ActiveProfile(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		v := model.NewProfileView(prof)
		data.Profile = &v
		data.Nav = navFor(prof)
	}
	var buf bytes.Buffer
	if err := p.home.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "render home")
	}
	return buf.Bytes(), nil
}

// Section renders one section listing. A section switched off renders a
// placeholder. No profile yields domain.ErrNoProfile.
func (p *Pages) Section(ctx context.Context, s domain.Section) ([]byte, error) {
	prof, err := p.profiles.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	sel, err := p.resolver.Resolve(ctx, prof, SelectionMask{s: true})
	if err != nil {
		return nil, err
	}
	data := sectionData{Title: s.Title(), Enabled: sel.IsIncluded(s), Entries: SectionEntries(sel, s)}
	if data.Enabled && s.HasCertificates() {
		rep, err := p.store.UnifiedReport(ctx, s)
		switch {
		case err == nil && rep != nil:
			if u, err := p.assets.Resolve(rep.File); err == nil {
				data.Report = template.URL(u)
			} else {
				p.log.Warn("unified report unreadable", "section", s, "error", err)
			}
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			p.log.Warn("unified report lookup failed", "section", s, "error", err)
		}
	}
	var buf bytes.Buffer
	if err := p.section.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "render section")
	}
	return buf.Bytes(), nil
}
