package stats

import (
	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

// Handler serves the admin dashboard aggregations. Everything here is
// read-only and recomputed per request.
type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/admin", authMW)
	a.GET("/stats", h.stats)
	a.GET("/analytics", h.analytics)
}

// GET /admin/stats
func (h *Handler) stats(c *gin.Context) {
	response.OK(c, gin.H{"stats": h.store.Stats()})
}

// GET /admin/analytics
func (h *Handler) analytics(c *gin.Context) {
	response.OK(c, gin.H{"analytics": h.store.Analytics()})
}
