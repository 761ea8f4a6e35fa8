package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"cv-composer/internal/domain"
	"cv-composer/internal/usecase"
	"cv-composer/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type stubPages struct {
	err     error
	section domain.Section
}

func (s *stubPages) Home(ctx context.Context) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("<h1>home</h1>"), nil
}

func (s *stubPages) Section(ctx context.Context, sec domain.Section) ([]byte, error) {
	s.section = sec
	if s.err != nil {
		return nil, s.err
	}
	return []byte("<h1>" + sec.Title() + "</h1>"), nil
}

type stubComposer struct {
	mask usecase.SelectionMask
	res  *usecase.Result
	err  error
}

func (s *stubComposer) Compose(ctx context.Context, mask usecase.SelectionMask) (*usecase.Result, error) {
	s.mask = mask
	return s.res, s.err
}

func newTestApp(p *stubPages, c *stubComposer) *fiber.App {
	app := fiber.New()
	NewHandler(p, c, logger.Nop()).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, target string) (int, string, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request %s: %v", target, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	headers := map[string]string{
		"Content-Type":        resp.Header.Get("Content-Type"),
		"Content-Disposition": resp.Header.Get("Content-Disposition"),
	}
	return resp.StatusCode, string(b), headers
}

func TestCVReturnsInlinePDF(t *testing.T) {
	c := &stubComposer{res: &usecase.Result{Filename: "CV_Torres.pdf", PDF: []byte("%PDF-1.7 body"), State: usecase.StateDone}}
	app := newTestApp(&stubPages{}, c)

	code, body, h := do(t, app, "/cv.pdf?exp=on&cur=on&rec=off&pa=1")
	if code != fiber.StatusOK {
		t.Fatalf("status %d", code)
	}
	if h["Content-Type"] != "application/pdf" {
		t.Fatalf("content type %q", h["Content-Type"])
	}
	if h["Content-Disposition"] != `inline; filename="CV_Torres.pdf"; filename*=UTF-8''CV_Torres.pdf` {
		t.Fatalf("content disposition %q", h["Content-Disposition"])
	}
	if body != "%PDF-1.7 body" {
		t.Fatalf("body %q", body)
	}
	if !c.mask.Has(domain.SectionExperience) || !c.mask.Has(domain.SectionCourses) {
		t.Fatalf("mask missing selected sections: %v", c.mask)
	}
	if c.mask.Has(domain.SectionRecognitions) || c.mask.Has(domain.SectionAcademicProducts) {
		t.Fatalf("only \"on\" selects a section: %v", c.mask)
	}
}

func TestCVNonASCIIFilename(t *testing.T) {
	c := &stubComposer{res: &usecase.Result{Filename: "CV_Delgado_Núñez.pdf", PDF: []byte("%PDF-1.7"), State: usecase.StateDone}}
	_, _, h := do(t, newTestApp(&stubPages{}, c), "/cv.pdf?exp=on")
	want := `inline; filename="CV_Delgado_Nunez.pdf"; filename*=UTF-8''CV_Delgado_N%C3%BA%C3%B1ez.pdf`
	if h["Content-Disposition"] != want {
		t.Fatalf("content disposition %q, want %q", h["Content-Disposition"], want)
	}
}

func TestASCIIFilenameReplacesUntransliterable(t *testing.T) {
	if got := asciiFilename("CV_Øster_李.pdf"); got != "CV__ster__.pdf" {
		t.Fatalf("got %q", got)
	}
}

func TestCVWithoutProfileIsNotFound(t *testing.T) {
	app := newTestApp(&stubPages{}, &stubComposer{err: domain.ErrNoProfile})
	code, body, _ := do(t, app, "/cv.pdf")
	if code != fiber.StatusNotFound {
		t.Fatalf("status %d", code)
	}
	if !strings.Contains(body, "No profile") {
		t.Fatalf("body %q", body)
	}
}

func TestCVRenderErrorIsServerError(t *testing.T) {
	err := &domain.RenderError{Stage: "pdf", Err: errors.New("chrome crashed")}
	app := newTestApp(&stubPages{}, &stubComposer{err: err})
	code, body, h := do(t, app, "/cv.pdf?exp=on")
	if code != fiber.StatusInternalServerError {
		t.Fatalf("status %d", code)
	}
	if strings.HasPrefix(h["Content-Type"], "application/pdf") || strings.Contains(body, "chrome") {
		t.Fatalf("render failure leaked: %q %q", h["Content-Type"], body)
	}
}

func TestHomeAndSectionRoutes(t *testing.T) {
	p := &stubPages{}
	app := newTestApp(p, &stubComposer{})

	code, body, h := do(t, app, "/")
	if code != fiber.StatusOK || body != "<h1>home</h1>" || !strings.HasPrefix(h["Content-Type"], "text/html") {
		t.Fatalf("home: %d %q %q", code, body, h["Content-Type"])
	}
	code, body, _ = do(t, app, "/academic-products")
	if code != fiber.StatusOK || p.section != domain.SectionAcademicProducts || body != "<h1>Academic Products</h1>" {
		t.Fatalf("section: %d %q %s", code, body, p.section)
	}
	code, _, _ = do(t, app, "/marketplace")
	if code != fiber.StatusOK || p.section != domain.SectionMarketplace {
		t.Fatalf("marketplace: %d %s", code, p.section)
	}
}

func TestSectionWithoutProfileIsNotFound(t *testing.T) {
	app := newTestApp(&stubPages{err: domain.ErrNoProfile}, &stubComposer{})
	code, _, _ := do(t, app, "/courses")
	if code != fiber.StatusNotFound {
		t.Fatalf("status %d", code)
	}
}

func TestStoreFailureIsServerError(t *testing.T) {
	app := newTestApp(&stubPages{err: errors.New("connection reset")}, &stubComposer{})
	code, body, _ := do(t, app, "/")
	if code != fiber.StatusInternalServerError || strings.Contains(body, "connection") {
		t.Fatalf("status %d body %q", code, body)
	}
}

func TestHealth(t *testing.T) {
	code, body, _ := do(t, newTestApp(&stubPages{}, &stubComposer{}), "/healthz")
	if code != fiber.StatusOK || !strings.Contains(body, `"ok"`) {
		t.Fatalf("health: %d %q", code, body)
	}
}
