package contact

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/discord"
	"github.com/jazeyttv/jazey-dev/internal/pkg/mail"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
	"github.com/jazeyttv/jazey-dev/internal/store"
	"go.uber.org/zap"
)

const (
	maxNameLen    = 100
	maxDiscordLen = 100
	maxMessageLen = 2000
)

// ServiceNames maps service tags to their display names.
var ServiceNames = map[string]string{
	"server-build":  "Full Server Build",
	"custom-script": "Custom Script",
	"ui-design":     "UI/UX Design",
	"optimization":  "Performance Optimization",
	"security":      "Anti-Cheat & Security",
	"other":         "Other",
}

// ServiceName resolves a tag to its display name, falling back to the tag.
func ServiceName(tag string) string {
	if name, ok := ServiceNames[tag]; ok {
		return name
	}
	return tag
}

type submitDTO struct {
	Name     string `json:"name"`
	Discord  string `json:"discord"`
	Service  string `json:"service"`
	Message  string `json:"message"`
	Coupon   string `json:"coupon"`
	Referral string `json:"referral"`
}

type Handler struct {
	store    *store.Store
	notifier *discord.Notifier
	mailer   *mail.Sender
	log      *zap.Logger
}

func NewHandler(st *store.Store, notifier *discord.Notifier, mailer *mail.Sender, log *zap.Logger) *Handler {
	return &Handler{store: st, notifier: notifier, mailer: mailer, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limitMW gin.HandlerFunc) {
	rg.POST("/contact", limitMW, h.submit)
}

// POST /contact
func (h *Handler) submit(c *gin.Context) {
	var dto submitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	name := strings.TrimSpace(dto.Name)
	discordHandle := strings.TrimSpace(dto.Discord)
	service := strings.TrimSpace(dto.Service)
	message := strings.TrimSpace(dto.Message)

	if name == "" || discordHandle == "" || service == "" || message == "" {
		response.BadRequest(c, "All fields are required.")
		return
	}
	if len(name) > maxNameLen || len(discordHandle) > maxDiscordLen || len(message) > maxMessageLen {
		response.BadRequest(c, "Input too long.")
		return
	}

	in := store.NewSubmission{
		Name:      name,
		Discord:   discordHandle,
		Service:   service,
		Message:   message,
		IPAddress: c.ClientIP(),
	}

	// Redeem the coupon with the submission. An invalid or exhausted code
	// does not fail the submit; the submission simply carries no coupon.
	if code := strings.TrimSpace(dto.Coupon); code != "" {
		if used := h.store.UseCoupon(code); used != nil {
			in.Coupon = &used.Code
		} else {
			h.log.Info("coupon rejected on submit", zap.String("code", code))
		}
	}
	if ref := strings.TrimSpace(dto.Referral); ref != "" {
		in.Referral = &ref
	}

	entry := h.store.AddSubmission(in)

	go h.notifier.SubmissionReceived(entry.ID, name, discordHandle, ServiceName(service), message)
	go h.notifyMail(entry)

	h.log.Info("new submission",
		zap.Int("id", entry.ID),
		zap.String("name", name),
		zap.String("service", ServiceName(service)),
	)

	response.OK(c, gin.H{
		"id":      entry.ID,
		"message": "Your message has been sent! We'll get back to you soon.",
	})
}

func (h *Handler) notifyMail(sub *store.Submission) {
	to := h.mailer.NotifyAddress()
	if to == "" {
		return
	}
	err := h.mailer.Send(mail.Message{
		To:      []string{to},
		Subject: fmt.Sprintf("New inquiry #%d from %s", sub.ID, sub.Name),
		HTML: fmt.Sprintf(
			"<p><strong>%s</strong> (%s) requested <strong>%s</strong>.</p><p>%s</p><p>Ticket #%d</p>",
			sub.Name, sub.Discord, ServiceName(sub.Service), sub.Message, sub.ID,
		),
	})
	if err != nil {
		h.log.Warn("submission mail failed", zap.Int("id", sub.ID), zap.Error(err))
	}
}
