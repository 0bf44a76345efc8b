package api

import (
	"bytes"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"freetoolz-blueprint/internal/blueprint"
	"freetoolz-blueprint/internal/models"
	"freetoolz-blueprint/internal/sitemap"
	"freetoolz-blueprint/pkg/logger"
)

// MaxIdentifiers caps a single POST /blueprint request.
const MaxIdentifiers = 5000

type Options struct {
	StaticPages  []sitemap.StaticPage
	RobotsPolicy sitemap.RobotsPolicy
}

// Handler serves the current blueprint. Replace swaps the record set in one
// step, so readers never see a partial run.
type Handler struct {
	gen  *blueprint.Generator
	log  *logger.Logger
	opts Options

	mu        sync.RWMutex
	records   []models.ContentRecord
	bySlug    map[string]int
	generated time.Time
}

type blueprintReq struct {
	Identifiers []string `json:"identifiers" binding:"required"`
}

type blueprintResp struct {
	Records []models.ContentRecord `json:"records"`
	Report  blueprint.Report       `json:"report"`
}

type categoryResp struct {
	models.CategoryProfile
	Tools int `json:"tools"`
}

func New(gen *blueprint.Generator, l *logger.Logger, opts Options) *Handler {
	return &Handler{
		gen:     gen,
		log:     l,
		opts:    opts,
		records: []models.ContentRecord{},
		bySlug:  map[string]int{},
	}
}

// Replace makes records the served set. The slice must not be modified
// afterwards.
func (h *Handler) Replace(records []models.ContentRecord) {
	idx := make(map[string]int, len(records))
	for i, r := range records {
		if _, seen := idx[r.Slug]; !seen {
			idx[r.Slug] = i
		}
	}
	h.mu.Lock()
	h.records = records
	h.bySlug = idx
	h.generated = time.Now()
	h.mu.Unlock()
}

func (h *Handler) snapshot() ([]models.ContentRecord, map[string]int, time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.records, h.bySlug, h.generated
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logRequest(h.log))

	r.GET("/health", h.health)
	r.GET("/tools", h.listTools)
	r.GET("/tools/:slug", h.getTool)
	r.GET("/tools/:slug/schema", h.getSchema)
	r.GET("/categories", h.listCategories)
	r.POST("/blueprint", h.generate)
	r.GET("/sitemap.xml", h.sitemap)
	r.GET("/robots.txt", h.robots)
	return r
}

func (h *Handler) health(c *gin.Context) {
	records, _, generated := h.snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"tools":     len(records),
		"generated": generated,
	})
}

func (h *Handler) listTools(c *gin.Context) {
	records, _, _ := h.snapshot()
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusOK, records)
		return
	}
	out := []models.ContentRecord{}
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) lookup(c *gin.Context) (models.ContentRecord, bool) {
	records, idx, _ := h.snapshot()
	i, ok := idx[c.Param("slug")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tool not found"})
		return models.ContentRecord{}, false
	}
	return records[i], true
}

func (h *Handler) getTool(c *gin.Context) {
	if rec, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, rec)
	}
}

func (h *Handler) getSchema(c *gin.Context) {
	if rec, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, rec.Schema)
	}
}

func (h *Handler) listCategories(c *gin.Context) {
	records, _, _ := h.snapshot()
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Category]++
	}
	profiles := h.gen.Catalog().Categories
	out := make([]categoryResp, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, categoryResp{CategoryProfile: p, Tools: counts[p.Name]})
	}
	c.JSON(http.StatusOK, out)
}

// generate builds records for the posted identifiers without touching the
// served set.
func (h *Handler) generate(c *gin.Context) {
	var req blueprintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(req.Identifiers) > MaxIdentifiers {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too many identifiers"})
		return
	}
	records, report, err := h.gen.Build(req.Identifiers)
	if err != nil {
		if errors.Is(err, blueprint.ErrUnknownCategory) {
			h.log.Errorf("catalog error: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blueprintResp{Records: records, Report: report})
}

func (h *Handler) sitemap(c *gin.Context) {
	records, _, generated := h.snapshot()
	site := h.gen.Site()
	var buf bytes.Buffer
	if err := sitemap.Build(records, h.opts.StaticPages, site.BaseURL, dateOf(generated)).Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

func (h *Handler) robots(c *gin.Context) {
	_, _, generated := h.snapshot()
	site := h.gen.Site()
	var buf bytes.Buffer
	if err := sitemap.WriteRobots(&buf, site.BaseURL, site.Brand, dateOf(generated), h.opts.RobotsPolicy); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func dateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

func logRequest(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
