package api

import (
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardforge/internal/artifacts"
	"github.com/youruser/cardforge/internal/batch"
	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/config"
	"github.com/youruser/cardforge/internal/domain"
	"github.com/youruser/cardforge/internal/export"
	"github.com/youruser/cardforge/internal/generator"
	imagepkg "github.com/youruser/cardforge/internal/image"
	"github.com/youruser/cardforge/internal/layout"
	"github.com/youruser/cardforge/internal/logging"
	"github.com/youruser/cardforge/internal/style"
)

// ArtifactHeader names the stored copy of a generated file.
const ArtifactHeader = "X-Artifact-Name"

var errBadForm = errors.New("malformed form")

// Handler serves the card endpoints.
type Handler struct {
	gen    *generator.Generator
	driver *batch.Driver
	store  artifacts.Store
	render config.RenderConfig
	limits config.LimitsConfig
}

func NewHandler(gen *generator.Generator, driver *batch.Driver, store artifacts.Store, cfg config.Config) *Handler {
	return &Handler{gen: gen, driver: driver, store: store, render: cfg.Render, limits: cfg.Limits}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// catalog lists everything a client can choose from.
func (h *Handler) catalog(c *gin.Context) {
	cat := h.gen.Catalog()

	palettes := make([]gin.H, 0)
	for _, id := range cat.PaletteIDs() {
		p, _ := cat.Palette(id)
		colors := gin.H{}
		for _, r := range style.Roles() {
			colors[r.String()] = p.Hex(r)
		}
		palettes = append(palettes, gin.H{"id": id, "colors": colors})
	}
	fonts := make([]gin.H, 0)
	for _, r := range style.FontRoles() {
		fonts = append(fonts, gin.H{"id": r, "source": cat.FontSource(r)})
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": layout.Templates(),
		"palettes":  palettes,
		"fonts":     fonts,
		"formats":   export.Formats(),
		"defaults": gin.H{
			"template":     h.render.DefaultTemplate,
			"color_scheme": h.render.DefaultPalette,
			"font_family":  h.render.DefaultFont,
			"format":       h.render.DefaultFormat,
		},
	})
}

// qr endpoint returns a PNG of a QR for "text", or for the vCard built from
// the contact query params when text is absent.
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = imagepkg.VCard(contactFrom(c.Query))
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2000 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func csvTemplateHandler(c *gin.Context) {
	c.Header("Content-Disposition", attachment(cards.TemplateFilename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := cards.WriteTemplate(c.Writer); err != nil {
		logging.Error("csv template", "error", err)
	}
}

// cardHandler renders one card from form fields. The logo comes only from
// the "logo" file part; the server never fetches client-supplied URLs.
func (h *Handler) cardHandler(c *gin.Context) {
	if err := h.readForm(c); err != nil {
		writeError(c, err)
		return
	}

	req := generator.Request{
		Contact: contactFrom(c.PostForm),
		Style:   h.styleFrom(c),
		Format:  c.Param("format"),
	}
	if fh, err := c.FormFile("logo"); err == nil {
		logo, err := decodeUpload(fh)
		if err != nil {
			logging.Warn("logo upload skipped", "request_id", c.GetString("request_id"), "error", err)
		} else {
			req.Logo = logo
		}
	}

	art, err := h.gen.Generate(req)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := artifacts.SaveArtifact(c.Request.Context(), h.store, art); err != nil {
		logging.Warn("artifact not stored", "name", art.Filename, "error", err)
	} else {
		c.Header(ArtifactHeader, art.Filename)
	}
	c.Header("Content-Disposition", attachment(art.Filename))
	c.Data(http.StatusOK, art.ContentType, art.Data)
}

// batchHandler renders every row of the uploaded "csv_file" into one zip.
func (h *Handler) batchHandler(c *gin.Context) {
	if err := h.readForm(c); err != nil {
		writeError(c, err)
		return
	}

	fh, err := c.FormFile("csv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "csv_file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	rows, err := cards.ReadRows(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if limit := h.limits.MaxBatchRecords; limit > 0 && len(rows) > limit {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("too many records: %d > %d", len(rows), limit)})
		return
	}

	format := formOr(c, "format", h.render.DefaultFormat)
	res, err := h.driver.Render(c.Request.Context(), rows, h.styleFrom(c), format)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.store.Save(c.Request.Context(), res.Filename, res.Archive, h.render.ArtifactTTL); err != nil {
		logging.Warn("artifact not stored", "name", res.Filename, "error", err)
	} else {
		c.Header(ArtifactHeader, res.Filename)
	}
	c.Header("X-Batch-Failures", strconv.Itoa(len(res.Failures)))
	c.Header("Content-Disposition", attachment(res.Filename))
	c.Data(http.StatusOK, "application/zip", res.Archive)
}

func (h *Handler) artifactHandler(c *gin.Context) {
	a, err := h.store.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", attachment(a.Name))
	c.Data(http.StatusOK, a.ContentType, a.Data)
}

// readForm parses the body once, capped at MaxUploadBytes, so the field and
// file lookups that follow never see a half-read form.
func (h *Handler) readForm(c *gin.Context) error {
	limit := h.limits.MaxUploadBytes
	if c.Request.ContentLength > limit {
		return &http.MaxBytesError{Limit: limit}
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	err := c.Request.ParseMultipartForm(limit)
	var maxErr *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, http.ErrNotMultipart):
		return nil
	case errors.As(err, &maxErr):
		return err
	}
	return fmt.Errorf("%w: %w", errBadForm, err)
}

func (h *Handler) styleFrom(c *gin.Context) cards.Style {
	return cards.Style{
		Template:  formOr(c, "template", h.render.DefaultTemplate),
		Palette:   formOr(c, "color_scheme", h.render.DefaultPalette),
		Font:      formOr(c, "font_family", h.render.DefaultFont),
		IncludeQR: truthy(c.PostForm("include_qr")),
	}
}

// formOr treats a blank field like a missing one.
func formOr(c *gin.Context, key, def string) string {
	if v := strings.TrimSpace(c.PostForm(key)); v != "" {
		return v
	}
	return def
}

func contactFrom(get func(string) string) cards.Contact {
	v := func(k string) string { return strings.TrimSpace(get(k)) }
	return cards.Contact{
		Name:     v("name"),
		JobTitle: v("job_title"),
		Company:  v("company"),
		Email:    v("email"),
		Phone:    v("phone"),
		Website:  v("website"),
		Address:  v("address"),
	}
}

func decodeUpload(fh *multipart.FileHeader) (image.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imagepkg.DecodeLogo(f)
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

func attachment(name string) string {
	return `attachment; filename="` + name + `"`
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrConfiguration),
		errors.Is(err, artifacts.ErrInvalidName),
		errors.Is(err, batch.ErrNoRecords),
		errors.Is(err, errBadForm):
		status = http.StatusBadRequest
	case errors.Is(err, artifacts.ErrNotFound):
		status = http.StatusNotFound
	}
	if status >= 500 {
		logging.Error("request failed", "request_id", c.GetString("request_id"), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
