package changelog

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/markdown"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

type createDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

type entryView struct {
	*store.ChangelogEntry
	ContentHTML string `json:"content_html"`
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/changelog", h.list)

	a := rg.Group("/admin/changelog", authMW)
	a.POST("", h.create)
	a.DELETE("/:id", h.delete)
}

// GET /changelog?limit=
func (h *Handler) list(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	entries := h.store.ChangelogEntries(limit)
	out := make([]entryView, len(entries))
	for i, e := range entries {
		out[i] = entryView{ChangelogEntry: e, ContentHTML: markdown.Render(e.Content)}
	}
	response.OK(c, gin.H{"changelog": out})
}

// POST /admin/changelog
func (h *Handler) create(c *gin.Context) {
	var dto createDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	if strings.TrimSpace(dto.Title) == "" {
		response.BadRequest(c, "Title is required.")
		return
	}
	entry := h.store.AddChangelogEntry(dto.Title, dto.Content, dto.Type)
	response.OK(c, gin.H{"entry": entry})
}

// DELETE /admin/changelog/:id
func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	if !h.store.DeleteChangelogEntry(id) {
		response.NotFound(c)
		return
	}
	response.OK(c, nil)
}
