package store

// AddPageView appends a view in arrival order and evicts the oldest entries
// once the collection exceeds its cap, keeping the most recent 10000.
func (s *Store) AddPageView(v PageView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.CreatedAt = s.nowISO()
	s.doc.PageViews = append(s.doc.PageViews, &v)
	if n := len(s.doc.PageViews); n > maxPageViews {
		s.doc.PageViews = s.doc.PageViews[n-maxPageViews:]
	}
	s.save()
}

// PageViewCount reports the current collection length.
func (s *Store) PageViewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.doc.PageViews)
}
