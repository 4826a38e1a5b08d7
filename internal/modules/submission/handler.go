package submission

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/modules/contact"
	"github.com/jazeyttv/jazey-dev/internal/pkg/discord"
	"github.com/jazeyttv/jazey-dev/internal/pkg/mail"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
	"go.uber.org/zap"
)

type updateDTO struct {
	Status        *string  `json:"status"`
	Notes         *string  `json:"notes"`
	ClientMessage *string  `json:"client_message"`
	Priority      *bool    `json:"priority"`
	Files         []string `json:"files"`
}

type messageDTO struct {
	Text string `json:"text"`
}

// Handler serves the admin side of the submission workflow.
type Handler struct {
	store    *store.Store
	notifier *discord.Notifier
	mailer   *mail.Sender
	log      *zap.Logger
}

func NewHandler(st *store.Store, notifier *discord.Notifier, mailer *mail.Sender, log *zap.Logger) *Handler {
	return &Handler{store: st, notifier: notifier, mailer: mailer, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/admin/submissions", authMW)
	g.GET("", h.list)
	g.GET("/export", h.exportCSV)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.POST("/:id/messages", h.postMessage)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return 0, false
	}
	return id, true
}

// GET /admin/submissions?status=&search=&limit=&offset=
func (h *Handler) list(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	subs, total := h.store.ListSubmissions(store.SubmissionFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	response.OK(c, gin.H{"submissions": subs, "total": total})
}

// GET /admin/submissions/:id
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
	response.OK(c, gin.H{"submission": sub})
}

// PATCH /admin/submissions/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto updateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	prev := h.store.GetSubmission(id)
	if prev == nil {
		response.NotFound(c)
		return
	}
	oldStatus := prev.Status

	sub := h.store.UpdateSubmission(id, store.SubmissionUpdate{
		Status:        dto.Status,
		Notes:         dto.Notes,
		ClientMessage: dto.ClientMessage,
		Priority:      dto.Priority,
		Files:         dto.Files,
	})
	if sub == nil {
		response.NotFound(c)
		return
	}

	if dto.Status != nil && *dto.Status != oldStatus {
		go h.notifyStatusChange(sub, oldStatus)
	}

	response.OK(c, gin.H{"submission": sub})
}

// DELETE /admin/submissions/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteSubmission(id) {
		response.NotFound(c)
		return
	}
	response.OK(c, nil)
}

// POST /admin/submissions/:id/messages
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

	msg := h.store.AddMessage(id, store.SenderAdmin, text)
	if msg == nil {
		response.NotFound(c)
		return
	}

	go h.notifier.ChatMessage(id, store.SenderAdmin, text)

	response.OK(c, gin.H{"message": msg})
}

// GET /admin/submissions/export
func (h *Handler) exportCSV(c *gin.Context) {
	subs := h.store.AllSubmissions()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="submissions.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"id", "name", "discord", "service", "message", "coupon", "referral",
		"priority", "status", "notes", "ip_address", "created_at", "updated_at",
	})
	for _, s := range subs {
		coupon := ""
		if s.Coupon != nil {
			coupon = *s.Coupon
		}
		referral := ""
		if s.Referral != nil {
			referral = *s.Referral
		}
		_ = w.Write([]string{
			strconv.Itoa(s.ID), s.Name, s.Discord, s.Service, s.Message,
			coupon, referral, strconv.FormatBool(s.Priority), s.Status,
			s.Notes, s.IPAddress, s.CreatedAt, s.UpdatedAt,
		})
	}
	w.Flush()
}

func (h *Handler) notifyStatusChange(sub *store.Submission, oldStatus string) {
	to := h.mailer.NotifyAddress()
	if to == "" {
		return
	}
	err := h.mailer.Send(mail.Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Ticket #%d moved to %s", sub.ID, sub.Status),
		HTML: fmt.Sprintf(
			"<p>Ticket <strong>#%d</strong> (%s, %s) changed status: %s → %s.</p>",
			sub.ID, sub.Name, contact.ServiceName(sub.Service), oldStatus, sub.Status,
		),
	})
	if err != nil {
		h.log.Warn("status change mail failed", zap.Int("id", sub.ID), zap.Error(err))
	}
}
