package coupon

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

type codeDTO struct {
	Code string `json:"code"`
}

type createDTO struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	MaxUses         int    `json:"max_uses"`
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/coupons/validate", h.validate)
	rg.POST("/coupons/redeem", h.redeem)

	a := rg.Group("/admin/coupons", authMW)
	a.GET("", h.list)
	a.POST("", h.create)
	a.POST("/:id/toggle", h.toggle)
	a.DELETE("/:id", h.delete)
}

// POST /coupons/validate
func (h *Handler) validate(c *gin.Context) {
	var dto codeDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Code) == "" {
		response.BadRequest(c, "Coupon code is required.")
		return
	}
	coupon := h.store.ValidateCoupon(dto.Code)
	if coupon == nil {
		response.BadRequest(c, "Invalid or expired coupon.")
		return
	}
	response.OK(c, gin.H{"coupon": gin.H{
		"code":             coupon.Code,
		"discount_percent": coupon.DiscountPercent,
	}})
}

// POST /coupons/redeem
func (h *Handler) redeem(c *gin.Context) {
	var dto codeDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Code) == "" {
		response.BadRequest(c, "Coupon code is required.")
		return
	}
	coupon := h.store.UseCoupon(dto.Code)
	if coupon == nil {
		response.BadRequest(c, "Invalid or expired coupon.")
		return
	}
	response.OK(c, gin.H{"coupon": gin.H{
		"code":             coupon.Code,
		"discount_percent": coupon.DiscountPercent,
	}})
}

// GET /admin/coupons
func (h *Handler) list(c *gin.Context) {
	response.OK(c, gin.H{"coupons": h.store.Coupons()})
}

// POST /admin/coupons
func (h *Handler) create(c *gin.Context) {
	var dto createDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	if strings.TrimSpace(dto.Code) == "" {
		response.BadRequest(c, "Coupon code is required.")
		return
	}
	if dto.DiscountPercent < 0 || dto.DiscountPercent > 100 {
		response.BadRequest(c, "Discount must be between 0 and 100.")
		return
	}
	if dto.MaxUses < 0 {
		response.BadRequest(c, "Max uses cannot be negative.")
		return
	}
	coupon := h.store.AddCoupon(dto.Code, dto.DiscountPercent, dto.MaxUses)
	response.OK(c, gin.H{"coupon": coupon})
}

// POST /admin/coupons/:id/toggle
func (h *Handler) toggle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	coupon := h.store.ToggleCoupon(id)
	if coupon == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"coupon": coupon})
}

// DELETE /admin/coupons/:id
func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	if !h.store.DeleteCoupon(id) {
		response.NotFound(c)
		return
	}
	response.OK(c, nil)
}
