package blog

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/markdown"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

type createDTO struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// postView adds rendered HTML to public reads; raw markdown stays available
// for the editor.
type postView struct {
	*store.BlogPost
	ContentHTML string `json:"content_html"`
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/blog", h.list)

	a := rg.Group("/admin/blog", authMW)
	a.POST("", h.create)
	a.DELETE("/:id", h.delete)
}

// GET /blog?limit=
func (h *Handler) list(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	posts := h.store.BlogPosts(limit)
	out := make([]postView, len(posts))
	for i, p := range posts {
		out[i] = postView{BlogPost: p, ContentHTML: markdown.Render(p.Content)}
	}
	response.OK(c, gin.H{"posts": out})
}

// POST /admin/blog
func (h *Handler) create(c *gin.Context) {
	var dto createDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	if strings.TrimSpace(dto.Title) == "" || strings.TrimSpace(dto.Content) == "" {
		response.BadRequest(c, "Title and content are required.")
		return
	}
	post := h.store.AddBlogPost(dto.Title, dto.Content, dto.Tags)
	response.OK(c, gin.H{"post": post})
}

// DELETE /admin/blog/:id
func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	if !h.store.DeleteBlogPost(id) {
		response.NotFound(c)
		return
	}
	response.OK(c, nil)
}
