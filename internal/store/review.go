package store

import "sort"

// AddReview records a public review. It always lands unapproved.
func (s *Store) AddReview(name string, rating int, text, service string) *Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &Review{
		ID:        s.doc.NextReviewID,
		Name:      name,
		Rating:    rating,
		Text:      text,
		Service:   service,
		Approved:  false,
		CreatedAt: s.nowISO(),
	}
	s.doc.NextReviewID++
	s.doc.Reviews = append([]*Review{r}, s.doc.Reviews...)
	s.save()
	return r.clone()
}

// Reviews returns reviews sorted most recent first. With approvedOnly set,
// unapproved reviews are excluded (the public listing).
func (s *Store) Reviews(approvedOnly bool) []*Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Review, 0, len(s.doc.Reviews))
	for _, r := range s.doc.Reviews {
		if approvedOnly && !r.Approved {
			continue
		}
		out = append(out, r.clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// ApproveReview returns nil for an unknown id.
func (s *Store) ApproveReview(id int) *Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.doc.Reviews {
		if r.ID == id {
			r.Approved = true
			s.save()
			return r.clone()
		}
	}
	return nil
}

func (s *Store) DeleteReview(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.doc.Reviews {
		if r.ID == id {
			s.doc.Reviews = append(s.doc.Reviews[:i], s.doc.Reviews[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}
