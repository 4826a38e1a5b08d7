package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store owns the JSON document. Every read and mutation goes through a
// single mutex, preserving the single-writer model; every mutation rewrites
// the whole file. A failed write is logged and swallowed so the in-memory
// document stays the source of truth until the next successful save.
type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
	doc  *Document

	now func() time.Time
}

// Open loads the document at path, creating a fresh one if the file is
// missing or unreadable. It never fails the process over a bad data file.
func Open(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{path: path, log: log, doc: newDocument(), now: time.Now}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("failed to load database, starting fresh", zap.Error(err))
		}
		s.save()
		return
	}

	doc := newDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		s.log.Error("failed to parse database, starting fresh", zap.Error(err))
		s.doc = newDocument()
		s.save()
		return
	}
	migrate(doc)
	s.doc = doc
}

// migrate backfills collections and counters added after a file was written,
// so older documents remain loadable. Existing collections are untouched.
func migrate(doc *Document) {
	if doc.Submissions == nil {
		doc.Submissions = []*Submission{}
	}
	if doc.PageViews == nil {
		doc.PageViews = []*PageView{}
	}
	if doc.NextID == 0 {
		doc.NextID = 1
	}
	if doc.BlogPosts == nil {
		doc.BlogPosts = []*BlogPost{}
	}
	if doc.NextBlogID == 0 {
		doc.NextBlogID = 1
	}
	if doc.Reviews == nil {
		doc.Reviews = []*Review{}
	}
	if doc.NextReviewID == 0 {
		doc.NextReviewID = 1
	}
	if doc.Portfolio == nil {
		doc.Portfolio = []*PortfolioItem{}
	}
	if doc.NextPortfolioID == 0 {
		doc.NextPortfolioID = 1
	}
	if doc.Coupons == nil {
		doc.Coupons = []*Coupon{}
	}
	if doc.NextCouponID == 0 {
		doc.NextCouponID = 1
	}
	if doc.Changelog == nil {
		doc.Changelog = []*ChangelogEntry{}
	}
	if doc.NextChangelogID == 0 {
		doc.NextChangelogID = 1
	}
}

// save serializes the whole document over the previous file. Callers must
// hold s.mu. Write failures are logged, never returned.
func (s *Store) save() {
	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.log.Error("failed to create data directory", zap.Error(err))
			return
		}
	}
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		s.log.Error("failed to serialize database", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.log.Error("failed to save database", zap.Error(err))
	}
}

// nowISO is the timestamp format stored in the document: UTC with
// millisecond precision, matching what previous versions wrote.
func (s *Store) nowISO() string {
	return s.now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func (s *Store) today() string {
	return s.now().UTC().Format("2006-01-02")
}
