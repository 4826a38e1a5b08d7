package review

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

const (
	maxNameLen = 100
	maxTextLen = 1000
)

type submitDTO struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
	Service string `json:"service"`
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/reviews", h.listApproved)
	rg.POST("/reviews", h.submit)

	a := rg.Group("/admin/reviews", authMW)
	a.GET("", h.listAll)
	a.POST("/:id/approve", h.approve)
	a.DELETE("/:id", h.delete)
}

// GET /reviews
func (h *Handler) listApproved(c *gin.Context) {
	response.OK(c, gin.H{"reviews": h.store.Reviews(true)})
}

// POST /reviews
func (h *Handler) submit(c *gin.Context) {
	var dto submitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	name := strings.TrimSpace(dto.Name)
	text := strings.TrimSpace(dto.Text)
	if name == "" || text == "" {
		response.BadRequest(c, "Name and review text are required.")
		return
	}
	if len(name) > maxNameLen || len(text) > maxTextLen {
		response.BadRequest(c, "Input too long.")
		return
	}
	if dto.Rating < 1 || dto.Rating > 5 {
		response.BadRequest(c, "Rating must be between 1 and 5.")
		return
	}

	r := h.store.AddReview(name, dto.Rating, text, strings.TrimSpace(dto.Service))
	response.OK(c, gin.H{"review": r, "message": "Thanks! Your review will appear once approved."})
}

// GET /admin/reviews
func (h *Handler) listAll(c *gin.Context) {
	response.OK(c, gin.H{"reviews": h.store.Reviews(false)})
}

// POST /admin/reviews/:id/approve
func (h *Handler) approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	r := h.store.ApproveReview(id)
	if r == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"review": r})
}

// DELETE /admin/reviews/:id
func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	if !h.store.DeleteReview(id) {
		response.NotFound(c)
		return
	}
	response.OK(c, nil)
}
