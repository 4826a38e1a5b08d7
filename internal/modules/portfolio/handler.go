package portfolio

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

type createDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/portfolio", h.list)

	a := rg.Group("/admin/portfolio", authMW)
	a.POST("", h.create)
	a.DELETE("/:id", h.delete)
}

// GET /portfolio
func (h *Handler) list(c *gin.Context) {
	response.OK(c, gin.H{"portfolio": h.store.PortfolioItems()})
}

// POST /admin/portfolio
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
	item := h.store.AddPortfolioItem(dto.Title, dto.Description, dto.ImageURL, dto.Tags)
	response.OK(c, gin.H{"item": item})
}

// DELETE /admin/portfolio/:id
func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	if !h.store.DeletePortfolioItem(id) {
		response.NotFound(c)
		return
	}
	response.OK(c, nil)
}
