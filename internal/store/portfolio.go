package store

// AddPortfolioItem prepends an admin-managed showcase entry.
func (s *Store) AddPortfolioItem(title, description, imageURL string, tags []string) *PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tags == nil {
		tags = []string{}
	}
	item := &PortfolioItem{
		ID:          s.doc.NextPortfolioID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Tags:        tags,
		CreatedAt:   s.nowISO(),
	}
	s.doc.NextPortfolioID++
	s.doc.Portfolio = append([]*PortfolioItem{item}, s.doc.Portfolio...)
	s.save()
	return item.clone()
}

func (s *Store) PortfolioItems() []*PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*PortfolioItem, len(s.doc.Portfolio))
	for i, item := range s.doc.Portfolio {
		out[i] = item.clone()
	}
	return out
}

func (s *Store) DeletePortfolioItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.doc.Portfolio {
		if item.ID == id {
			s.doc.Portfolio = append(s.doc.Portfolio[:i], s.doc.Portfolio[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}
