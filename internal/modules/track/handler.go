package track

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

type trackDTO struct {
	Page         string `json:"page"`
	Referrer     string `json:"referrer"`
	ReferralCode string `json:"referral_code"`
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/track", h.track)
}

// POST /track
func (h *Handler) track(c *gin.Context) {
	var dto trackDTO
	// A malformed body still counts as a view of "/": tracking is lossy by
	// design and never errors toward the client.
	_ = c.ShouldBindJSON(&dto)

	page := strings.TrimSpace(dto.Page)
	if page == "" {
		page = "/"
	}

	h.store.AddPageView(store.PageView{
		Page:         page,
		Referrer:     strings.TrimSpace(dto.Referrer),
		ReferralCode: strings.TrimSpace(dto.ReferralCode),
		UserAgent:    c.GetHeader("User-Agent"),
		IPAddress:    c.ClientIP(),
	})

	response.OK(c, nil)
}
