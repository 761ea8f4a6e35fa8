package http

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"cv-composer/internal/domain"
	"cv-composer/internal/usecase"
	"cv-composer/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const placeholderNoProfile = "No profile has been published yet."

// PageRenderer is satisfied by *usecase.Pages.
type PageRenderer interface {
	Home(ctx context.Context) ([]byte, error)
	Section(ctx context.Context, s domain.Section) ([]byte, error)
}

// DocumentComposer is satisfied by *usecase.Composer.
type DocumentComposer interface {
	Compose(ctx context.Context, mask usecase.SelectionMask) (*usecase.Result, error)
}

type Handler struct {
	pages    PageRenderer
	composer DocumentComposer
	log      *logger.Logger
}

func NewHandler(p PageRenderer, c DocumentComposer, log *logger.Logger) *Handler {
	return &Handler{pages: p, composer: c, log: log}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Home)
	for _, s := range domain.AllSections {
		app.Get(usecase.SectionPaths[s], h.Section(s))
	}
	app.Get("/cv.pdf", h.CV)
	app.Get("/healthz", h.Health)
}

func (h *Handler) Home(c *fiber.Ctx) error {
	body, err := h.pages.Home(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return sendHTML(c, body)
}

func (h *Handler) Section(s domain.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := h.pages.Section(c.UserContext(), s)
		if err != nil {
			return h.fail(c, err)
		}
		return sendHTML(c, body)
	}
}

// CV composes the PDF for the sections flagged "on" in the query string.
func (h *Handler) CV(c *fiber.Ctx) error {
	mask := usecase.ParseSelectionMask(func(k string) string { return c.Query(k) })
	res, err := h.composer.Compose(c.UserContext(), mask)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set("X-Composition-Id", res.ID.String())
	c.Set(fiber.HeaderContentDisposition, contentDisposition(res.Filename))
	return c.Send(res.PDF)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func sendHTML(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}

// fail maps errors to plain-text responses: a missing profile is a 404,
// everything else a 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).SendString(placeholderNoProfile)
	}
	var rerr *domain.RenderError
	if errors.As(err, &rerr) {
		h.log.Error("render failed", "path", c.Path(), "stage", rerr.Stage, "error", rerr.Err)
		return c.Status(fiber.StatusInternalServerError).SendString("The document could not be generated.")
	}
	h.log.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).SendString("Internal server error.")
}

// contentDisposition carries an ASCII filename for old clients and the exact
// UTF-8 name in filename* (RFC 6266).
func contentDisposition(name string) string {
	return fmt.Sprintf("inline; filename=%q; filename*=UTF-8''%s", asciiFilename(name), encodeExtValue(name))
}

// asciiFilename strips diacritics ("Núñez" -> "Nunez") and replaces anything
// still outside printable ASCII with '_'.
func asciiFilename(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, plain)
}

func encodeExtValue(s string) string {
	const attrChars = "!#$&+-.^_`|~"
	var b strings.Builder
	for _, c := range []byte(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', strings.IndexByte(attrChars, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
