package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/config"
	"github.com/jazeyttv/jazey-dev/internal/middleware"
	"github.com/jazeyttv/jazey-dev/internal/pkg/jwt"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"go.uber.org/zap"
)

const tokenTTL = 12 * time.Hour

type loginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Handler struct {
	admin config.AdminConfig
	log   *zap.Logger
}

func NewHandler(admin config.AdminConfig, log *zap.Logger) *Handler {
	return &Handler{admin: admin, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limitMW gin.HandlerFunc) {
	rg.POST("/admin/login", limitMW, h.login)
}

// POST /admin/login
func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	if !middleware.CheckCredentials(h.admin, dto.Username, dto.Password) {
		h.log.Warn("failed admin login", zap.String("ip", c.ClientIP()))
		response.UnauthorizedMsg(c, "Invalid credentials.")
		return
	}

	token, err := jwt.Sign(dto.Username, tokenTTL)
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"token": token})
}
