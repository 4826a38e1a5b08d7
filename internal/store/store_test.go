package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "data", "jazey.json"), zap.NewNop())
}

func TestOpenCreatesFreshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "jazey.json")
	s := Open(path, zap.NewNop())

	require.NotNil(t, s)
	_, err := os.Stat(path)
	require.NoError(t, err, "a fresh document should be written immediately")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, 1, doc.NextID)
	assert.Empty(t, doc.Submissions)
}

func TestOpenCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jazey.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path, zap.NewNop())
	require.NotNil(t, s)
	assert.Equal(t, 1, s.doc.NextID)

	// The broken file was overwritten with a valid empty document.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))
}

func TestRoundTripPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jazey.json")
	s := Open(path, zap.NewNop())

	coupon := "LAUNCH20"
	sub := s.AddSubmission(NewSubmission{
		Name: "Ann", Discord: "ann#1", Service: "custom-script", Message: "Hi",
		Coupon: &coupon, IPAddress: "10.0.0.1",
	})
	s.AddMessage(sub.ID, SenderClient, "  hello  ")
	st := StatusReviewing
	msg := "We are on it"
	s.UpdateSubmission(sub.ID, SubmissionUpdate{Status: &st, ClientMessage: &msg})
	s.AddBlogPost("Post", "body", []string{"news"})
	s.AddReview("Bob", 5, "great", "ui-design")
	s.AddPortfolioItem("Hud", "custom hud", "https://img", nil)
	s.AddCoupon("WELCOME", 10, 5)
	s.AddChangelogEntry("v2", "rewrite", ChangeFeature)
	s.AddPageView(PageView{Page: "/", Referrer: "google.com", UserAgent: "Mozilla"})

	reopened := Open(path, zap.NewNop())
	assert.Equal(t, s.doc, reopened.doc, "reload must reproduce an equal document")
}

func TestMigrationBackfill(t *testing.T) {
	// An old-format document: submissions and page views only.
	legacy := map[string]interface{}{
		"submissions": []map[string]interface{}{
			{"id": 7, "name": "Old", "discord": "old#1", "service": "other", "message": "hey", "status": "new", "created_at": "2024-01-01T00:00:00.000Z"},
		},
		"pageViews": []map[string]interface{}{},
		"nextId":    8,
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jazey.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	s := Open(path, zap.NewNop())

	assert.Equal(t, 8, s.doc.NextID, "existing counter must be kept")
	require.Len(t, s.doc.Submissions, 1, "existing collections must be untouched")
	assert.Equal(t, "Old", s.doc.Submissions[0].Name)

	assert.NotNil(t, s.doc.BlogPosts)
	assert.Empty(t, s.doc.BlogPosts)
	assert.Equal(t, 1, s.doc.NextBlogID)
	assert.NotNil(t, s.doc.Reviews)
	assert.Equal(t, 1, s.doc.NextReviewID)
	assert.NotNil(t, s.doc.Portfolio)
	assert.Equal(t, 1, s.doc.NextPortfolioID)
	assert.NotNil(t, s.doc.Coupons)
	assert.Equal(t, 1, s.doc.NextCouponID)
	assert.NotNil(t, s.doc.Changelog)
	assert.Equal(t, 1, s.doc.NextChangelogID)
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jazey.json")
	s := Open(path, zap.NewNop())

	// Replace the data file with a directory so writes fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	sub := s.AddSubmission(NewSubmission{Name: "Ann", Discord: "a#1", Service: "other", Message: "hi"})
	require.NotNil(t, sub, "a failed save must not fail the mutation")
	assert.NotNil(t, s.GetSubmission(sub.ID), "memory stays the source of truth")
}
