// Package discord posts embeds to a Discord webhook URL. Deliveries are
// best-effort: callers fire them on a goroutine and failures are logged only.
package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Embed field colors.
const colorOrange = 0xFF6B35

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Timestamp string       `json:"timestamp"`
	Footer    struct {
		Text string `json:"text"`
	} `json:"footer"`
}

type webhookPayload struct {
	Username  string  `json:"username"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []embed `json:"embeds"`
}

// Notifier delivers webhook embeds. A Notifier with an empty URL is a no-op.
type Notifier struct {
	url    string
	site   string
	client *http.Client
	log    *zap.Logger
}

func New(url, site string, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		url:    url,
		site:   site,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// Enabled reports whether a webhook URL is configured.
func (n *Notifier) Enabled() bool { return n.url != "" }

// SubmissionReceived announces a new contact-form submission.
func (n *Notifier) SubmissionReceived(id int, name, discord, service, message string) {
	if len(message) > 1024 {
		message = message[:1024]
	}
	n.send("New Project Inquiry", []embedField{
		{Name: "Name", Value: name, Inline: true},
		{Name: "Discord", Value: discord, Inline: true},
		{Name: "Service", Value: service, Inline: true},
		{Name: "Message", Value: message},
		{Name: "Ticket", Value: fmt.Sprintf("#%d", id), Inline: true},
	})
}

// ChatMessage announces a new client chat message on a ticket.
func (n *Notifier) ChatMessage(ticketID int, sender, text string) {
	if len(text) > 1024 {
		text = text[:1024]
	}
	n.send("New Ticket Message", []embedField{
		{Name: "Ticket", Value: fmt.Sprintf("#%d", ticketID), Inline: true},
		{Name: "From", Value: sender, Inline: true},
		{Name: "Message", Value: text},
	})
}

func (n *Notifier) send(title string, fields []embedField) {
	if n.url == "" {
		return
	}

	e := embed{
		Title:     title,
		Color:     colorOrange,
		Fields:    fields,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	e.Footer.Text = n.site

	body, err := json.Marshal(webhookPayload{Username: "JAZEY Bot", Embeds: []embed{e}})
	if err != nil {
		n.log.Error("discord payload marshal failed", zap.Error(err))
		return
	}

	deliveryID := uuid.NewString()
	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.log.Error("discord webhook request failed", zap.String("delivery", deliveryID), zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-Id", deliveryID)

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Warn("discord webhook delivery failed", zap.String("delivery", deliveryID), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.log.Warn("discord webhook rejected",
			zap.String("delivery", deliveryID),
			zap.Int("status", resp.StatusCode))
		return
	}
	n.log.Info("discord webhook sent", zap.String("delivery", deliveryID), zap.String("title", title))
}
