package store

import "sort"

// AddChangelogEntry prepends a release note. Unknown types fall back to
// "improvement".
func (s *Store) AddChangelogEntry(title, content, typ string) *ChangelogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if typ != ChangeFeature && typ != ChangeImprovement && typ != ChangeFix {
		typ = ChangeImprovement
	}
	e := &ChangelogEntry{
		ID:        s.doc.NextChangelogID,
		Title:     title,
		Content:   content,
		Type:      typ,
		CreatedAt: s.nowISO(),
	}
	s.doc.NextChangelogID++
	s.doc.Changelog = append([]*ChangelogEntry{e}, s.doc.Changelog...)
	s.save()
	return e.clone()
}

// ChangelogEntries returns up to limit entries, most recent first.
func (s *Store) ChangelogEntries(limit int) []*ChangelogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*ChangelogEntry, len(s.doc.Changelog))
	for i, e := range s.doc.Changelog {
		out[i] = e.clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *Store) DeleteChangelogEntry(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.doc.Changelog {
		if e.ID == id {
			s.doc.Changelog = append(s.doc.Changelog[:i], s.doc.Changelog[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}
