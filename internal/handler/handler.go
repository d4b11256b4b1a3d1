package handler

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"certify/internal/cache"
	"certify/internal/config"
	"certify/internal/linkedin"
	"certify/internal/model"
	"certify/internal/renderer"
	"certify/internal/store"
)

const recentLimit = 10

// Handler serves the certificate pages and images.
type Handler struct {
	store    *store.Store
	renderer *renderer.Renderer
	cache    cache.Cache
	cfg      config.App
}

// New creates a handler. The cache is injected so its lifetime and backend
// are decided at startup, not buried in the render path.
func New(st *store.Store, r *renderer.Renderer, c cache.Cache, cfg config.App) *Handler {
	return &Handler{store: st, renderer: r, cache: c, cfg: cfg}
}

// Register attaches all routes to the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/healthz", h.Healthz)
	r.GET("/cert/:id", h.CertificatePage)
	r.GET("/cert/:id/image", h.CertificateImage)
}

// Index lists the most recently imported participants, newest first.
func (h *Handler) Index(c *gin.Context) {
	participants, err := h.store.Load()
	if err != nil {
		log.Printf("store load failed: %v", err)
		c.String(http.StatusInternalServerError, "Error loading participants")
		return
	}

	var b strings.Builder
	if len(participants) == 0 {
		b.WriteString(`<p class="empty">No certificates yet. Import participants to get started.</p>`)
	} else {
		start := len(participants) - recentLimit
		if start < 0 {
			start = 0
		}
		b.WriteString("<ul>")
		for i := len(participants) - 1; i >= start; i-- {
			p := participants[i]
			fmt.Fprintf(&b, "<li><a href=\"/cert/%s\">%s</a> — %s</li>\n",
				p.ID, html.EscapeString(p.Name), renderer.FormatDate(p.Date))
		}
		b.WriteString("</ul>")
	}

	page := fmt.Sprintf(indexPage, b.String())
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// CertificatePage serves the shareable certificate page for one participant.
func (h *Handler) CertificatePage(c *gin.Context) {
	p, err := h.lookup(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading participants")
		return
	}
	if p == nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage))
		return
	}

	tmpl, err := os.ReadFile(h.cfg.PageTemplate)
	if err != nil {
		log.Printf("page template read failed: %v", err)
		c.String(http.StatusInternalServerError, "Error rendering certificate page")
		return
	}

	certURL := h.cfg.BaseURL + "/cert/" + p.ID
	page := RenderPage(string(tmpl), PageData{
		Name:            p.Name,
		Date:            renderer.FormatDate(p.Date),
		Program:         p.ProgramName(),
		CertURL:         certURL,
		ImageURL:        certURL + "/image",
		CertID:          p.ID,
		AddToProfileURL: linkedin.AddToProfileURL(*p, h.cfg.BaseURL, h.cfg.OrgName),
		ShareURL:        linkedin.ShareURL(*p, h.cfg.BaseURL),
		OrgName:         linkedin.DisplayOrgName(h.cfg.OrgName),
	})
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// CertificateImage serves the rendered PNG, memoized per participant id.
func (h *Handler) CertificateImage(c *gin.Context) {
	p, err := h.lookup(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading participants")
		return
	}
	if p == nil {
		c.String(http.StatusNotFound, "Certificate not found")
		return
	}

	ctx := c.Request.Context()
	img, ok := h.cache.Get(ctx, p.ID)
	if !ok {
		img, err = h.renderer.Render(*p)
		if err != nil {
			log.Printf("image generation failed for %s: %v", p.ID, err)
			c.String(http.StatusInternalServerError, "Error generating certificate image")
			return
		}
		h.cache.Set(ctx, p.ID, img)
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", img)
}

// Healthz reports whether the pieces a request needs are in place.
func (h *Handler) Healthz(c *gin.Context) {
	templateOK := fileExists(h.cfg.TemplatePath)
	pageOK := fileExists(h.cfg.PageTemplate)

	// The data file may legitimately not exist before the first import.
	dataOK := true
	if _, err := h.store.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		dataOK = false
	}

	cacheOK := true
	if rc, ok := h.cache.(*cache.Redis); ok {
		cacheOK = rc.Healthy(c.Request.Context())
	}

	status := http.StatusOK
	if !templateOK || !pageOK || !dataOK || !cacheOK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":   statusWord(status),
		"template": templateOK,
		"page":     pageOK,
		"data":     dataOK,
		"cache":    cacheOK,
	})
}

func (h *Handler) lookup(c *gin.Context) (*model.Participant, error) {
	p, err := h.store.Find(c.Param("id"))
	if err != nil {
		log.Printf("store lookup failed: %v", err)
		return nil, err
	}
	return p, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
