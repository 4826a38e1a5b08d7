package store

import "strings"

// NewSubmission carries the fields a contact-form submit provides.
type NewSubmission struct {
	Name      string
	Discord   string
	Service   string
	Message   string
	Coupon    *string
	Referral  *string
	Priority  bool
	Files     []string
	IPAddress string
}

// SubmissionUpdate applies only the fields that are non-nil.
type SubmissionUpdate struct {
	Status        *string
	Notes         *string
	ClientMessage *string
	Priority      *bool
	Files         []string
}

// SubmissionFilter selects and pages the submission list.
type SubmissionFilter struct {
	Status string // "" or "all" means no filter
	Search string // case-insensitive substring over name/discord/message
	Limit  int
	Offset int
}

// AddSubmission assigns the next id, defaults workflow fields, and prepends
// the record (most recent first).
func (s *Store) AddSubmission(in NewSubmission) *Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Submission{
		ID:            s.doc.NextID,
		Name:          in.Name,
		Discord:       in.Discord,
		Service:       in.Service,
		Message:       in.Message,
		Coupon:        in.Coupon,
		Referral:      in.Referral,
		Priority:      in.Priority,
		Files:         in.Files,
		Status:        StatusNew,
		Notes:         "",
		StatusHistory: []StatusChange{},
		Messages:      []ChatMessage{},
		IPAddress:     in.IPAddress,
		CreatedAt:     s.nowISO(),
	}
	if sub.Files == nil {
		sub.Files = []string{}
	}
	s.doc.NextID++
	s.doc.Submissions = append([]*Submission{sub}, s.doc.Submissions...)
	s.save()
	return sub.clone()
}

// ListSubmissions filters, counts, then pages. Total is the filtered count,
// independent of the pagination window.
func (s *Store) ListSubmissions(f SubmissionFilter) ([]*Submission, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*Submission, 0, len(s.doc.Submissions))
	q := strings.ToLower(f.Search)
	for _, sub := range s.doc.Submissions {
		if f.Status != "" && f.Status != "all" && sub.Status != f.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(sub.Name), q) &&
			!strings.Contains(strings.ToLower(sub.Discord), q) &&
			!strings.Contains(strings.ToLower(sub.Message), q) {
			continue
		}
		results = append(results, sub)
	}

	total := len(results)
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return cloneSubmissions(results[offset:end]), total
}

// AllSubmissions returns the full collection in current order.
func (s *Store) AllSubmissions() []*Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSubmissions(s.doc.Submissions)
}

// GetSubmission returns nil when the id does not exist.
func (s *Store) GetSubmission(id int) *Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := s.findSubmission(id)
	if sub == nil {
		return nil
	}
	return sub.clone()
}

func (s *Store) findSubmission(id int) *Submission {
	for _, sub := range s.doc.Submissions {
		if sub.ID == id {
			return sub
		}
	}
	return nil
}

// UpdateSubmission applies present fields and stamps updated_at. A status
// history entry is appended only when the status actually changes; its
// message is the client-facing message supplied with the same update.
func (s *Store) UpdateSubmission(id int, up SubmissionUpdate) *Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.findSubmission(id)
	if sub == nil {
		return nil
	}
	oldStatus := sub.Status

	if up.Status != nil {
		sub.Status = *up.Status
	}
	if up.Notes != nil {
		sub.Notes = *up.Notes
	}
	if up.ClientMessage != nil {
		sub.ClientMessage = *up.ClientMessage
	}
	if up.Priority != nil {
		sub.Priority = *up.Priority
	}
	if up.Files != nil {
		sub.Files = up.Files
	}
	sub.UpdatedAt = s.nowISO()

	if sub.StatusHistory == nil {
		sub.StatusHistory = []StatusChange{}
	}
	if up.Status != nil && *up.Status != oldStatus {
		// An empty client message is recorded as null, not "".
		historyMsg := up.ClientMessage
		if historyMsg != nil && *historyMsg == "" {
			historyMsg = nil
		}
		sub.StatusHistory = append(sub.StatusHistory, StatusChange{
			Status:    *up.Status,
			Timestamp: s.nowISO(),
			Message:   historyMsg,
		})
	}

	s.save()
	return sub.clone()
}

// DeleteSubmission reports whether a record was found and removed.
func (s *Store) DeleteSubmission(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.doc.Submissions {
		if sub.ID == id {
			s.doc.Submissions = append(s.doc.Submissions[:i], s.doc.Submissions[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

// AddMessage appends a chat message to a submission's thread. Message ids
// are sequential within the thread only. Returns nil for an unknown ticket.
func (s *Store) AddMessage(id int, sender, text string) *ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.findSubmission(id)
	if sub == nil {
		return nil
	}
	if sub.Messages == nil {
		sub.Messages = []ChatMessage{}
	}
	msg := ChatMessage{
		ID:        len(sub.Messages) + 1,
		Sender:    sender,
		Text:      strings.TrimSpace(text),
		Timestamp: s.nowISO(),
	}
	sub.Messages = append(sub.Messages, msg)
	sub.UpdatedAt = s.nowISO()
	s.save()
	return &msg
}

// Messages returns a ticket's chat thread, or nil for an unknown id. An
// existing ticket with no messages yields an empty slice, not nil.
func (s *Store) Messages(id int) []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.findSubmission(id)
	if sub == nil {
		return nil
	}
	if sub.Messages == nil {
		return []ChatMessage{}
	}
	out := make([]ChatMessage, len(sub.Messages))
	copy(out, sub.Messages)
	return out
}
