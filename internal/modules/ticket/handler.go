package ticket

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/discord"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
)

const maxChatLen = 2000

// ticketView is the public-safe projection of a submission: no internal
// notes, no raw inquiry message, no discord handle, no ip address.
type ticketView struct {
	ID            int                  `json:"id"`
	Service       string               `json:"service"`
	Status        string               `json:"status"`
	Priority      bool                 `json:"priority"`
	ClientMessage string               `json:"client_message,omitempty"`
	StatusHistory []store.StatusChange `json:"status_history"`
	Files         []string             `json:"files"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at,omitempty"`
}

type messageDTO struct {
	Text string `json:"text"`
}

type Handler struct {
	store    *store.Store
	notifier *discord.Notifier
}

func NewHandler(st *store.Store, notifier *discord.Notifier) *Handler {
	return &Handler{store: st, notifier: notifier}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/ticket")
	g.GET("/:id", h.get)
	g.GET("/:id/messages", h.listMessages)
	g.POST("/:id/messages", h.postMessage)
}

// parseID coerces the path param; anything non-numeric is "not found".
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return 0, false
	}
	return id, true
}

// GET /ticket/:id
func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sub := h.store.GetSubmission(id)
	if sub == nil {
		response.NotFound(c)
		return
	}

	view := ticketView{
		ID:            sub.ID,
		Service:       sub.Service,
		Status:        sub.Status,
		Priority:      sub.Priority,
		ClientMessage: sub.ClientMessage,
		StatusHistory: sub.StatusHistory,
		Files:         sub.Files,
		CreatedAt:     sub.CreatedAt,
		UpdatedAt:     sub.UpdatedAt,
	}
	if view.StatusHistory == nil {
		view.StatusHistory = []store.StatusChange{}
	}
	if view.Files == nil {
		view.Files = []string{}
	}
	response.OK(c, gin.H{"ticket": view})
}

// GET /ticket/:id/messages
func (h *Handler) listMessages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	msgs := h.store.Messages(id)
	if msgs == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"messages": msgs})
}

// POST /ticket/:id/messages
func (h *Handler) postMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto messageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}
	text := strings.TrimSpace(dto.Text)
	if text == "" {
		response.BadRequest(c, "Message text is required.")
		return
	}
	if len(text) > maxChatLen {
		response.BadRequest(c, "Message too long.")
		return
	}

	msg := h.store.AddMessage(id, store.SenderClient, text)
	if msg == nil {
		response.NotFound(c)
		return
	}

	go h.notifier.ChatMessage(id, store.SenderClient, text)

	response.OK(c, gin.H{"message": msg})
}
