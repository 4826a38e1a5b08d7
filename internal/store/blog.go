package store

import "strings"

// AddBlogPost trims title and content and prepends the post.
func (s *Store) AddBlogPost(title, content string, tags []string) *BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tags == nil {
		tags = []string{}
	}
	post := &BlogPost{
		ID:        s.doc.NextBlogID,
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		Tags:      tags,
		CreatedAt: s.nowISO(),
	}
	s.doc.NextBlogID++
	s.doc.BlogPosts = append([]*BlogPost{post}, s.doc.BlogPosts...)
	s.save()
	return post.clone()
}

// BlogPosts returns up to limit posts, most recent first.
func (s *Store) BlogPosts(limit int) []*BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.doc.BlogPosts) {
		limit = len(s.doc.BlogPosts)
	}
	out := make([]*BlogPost, limit)
	for i, p := range s.doc.BlogPosts[:limit] {
		out[i] = p.clone()
	}
	return out
}

func (s *Store) DeleteBlogPost(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.doc.BlogPosts {
		if p.ID == id {
			s.doc.BlogPosts = append(s.doc.BlogPosts[:i], s.doc.BlogPosts[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}
