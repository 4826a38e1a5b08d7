package widget

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler proxies the community widget status endpoint (a Discord guild
// widget JSON) so the browser never talks to the third party directly.
// Upstream failures surface as a plain failure response, never as internals.
type Handler struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

func NewHandler(url string, log *zap.Logger) *Handler {
	return &Handler{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/widget/status", h.status)
}

// GET /widget/status
func (h *Handler) status(c *gin.Context) {
	if h.url == "" {
		response.OK(c, gin.H{"enabled": false})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, h.url, nil)
	if err != nil {
		response.InternalError(c, "Widget unavailable.")
		return
	}
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warn("widget fetch failed", zap.Error(err))
		response.InternalError(c, "Widget unavailable.")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.log.Warn("widget upstream error", zap.Int("status", resp.StatusCode))
		response.InternalError(c, "Widget unavailable.")
		return
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		response.InternalError(c, "Widget unavailable.")
		return
	}
	var widget json.RawMessage
	if err := json.Unmarshal(body, &widget); err != nil {
		response.InternalError(c, "Widget unavailable.")
		return
	}
	response.OK(c, gin.H{"enabled": true, "widget": widget})
}
