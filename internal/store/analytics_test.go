package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHourBuckets(t *testing.T) {
	s := testStore(t)

	at := func(hour int) time.Time {
		return time.Date(2025, 6, 15, hour, 30, 0, 0, time.UTC)
	}
	for _, h := range []int{9, 9, 14} {
		ts := at(h)
		s.now = func() time.Time { return ts }
		s.AddPageView(PageView{Page: "/"})
	}

	// Buckets use the server's local hour, like the dashboard always has.
	idx9 := at(9).Local().Hour()
	idx14 := at(14).Local().Hour()

	hourly := s.Analytics().HourlyTraffic
	assert.Equal(t, 2, hourly[idx9])
	assert.Equal(t, 1, hourly[idx14])
	total := 0
	for _, n := range hourly {
		total += n
	}
	assert.Equal(t, 3, total, "no other bucket is touched")
}

func TestAnalyticsReferrerBreakdown(t *testing.T) {
	s := testStore(t)
	s.AddPageView(PageView{Referrer: "google.com"})
	s.AddPageView(PageView{Referrer: "google.com"})
	s.AddPageView(PageView{Referrer: "google.com"})
	s.AddPageView(PageView{ReferralCode: "partner-7"})
	s.AddPageView(PageView{Referrer: "   "})
	s.AddPageView(PageView{})

	got := s.Analytics().ReferrerBreakdown
	require.Len(t, got, 3)
	assert.Equal(t, ReferrerCount{Referrer: "google.com", Count: 3}, got[0])
	assert.Contains(t, got, ReferrerCount{Referrer: "partner-7", Count: 1}, "referral code backs up a blank referrer")
	assert.Contains(t, got, ReferrerCount{Referrer: "direct", Count: 2}, "blank referrer and code fall back to direct")
}

func TestAnalyticsWhitespaceReferrerStaysDirect(t *testing.T) {
	s := testStore(t)
	// A whitespace-only referrer is still "a referrer": it wins over the
	// referral code and then trims away to direct.
	s.AddPageView(PageView{Referrer: "   ", ReferralCode: "partner-7"})

	got := s.Analytics().ReferrerBreakdown
	require.Len(t, got, 1)
	assert.Equal(t, ReferrerCount{Referrer: "direct", Count: 1}, got[0])
}

func TestAnalyticsReferrerTopTen(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 15; i++ {
		s.AddPageView(PageView{Referrer: fmt.Sprintf("site-%d.com", i)})
	}
	assert.Len(t, s.Analytics().ReferrerBreakdown, 10)
}

func TestAnalyticsBrowserClassification(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		browser string
	}{
		{"edge chromium", "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 Edg/120.0", "Edge"},
		{"legacy edge", "Mozilla/5.0 (Windows NT 10.0) Edge/18.18363", "Edge"},
		{"chrome", "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", "Chrome"},
		{"firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox"},
		{"firefox ios", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) FxiOS/121.0 Mobile/15E148", "Firefox"},
		{"safari", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Version/17.0 Safari/605.1.15", "Safari"},
		{"other", "curl/8.4.0", "Other"},
		{"empty", "", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			s.AddPageView(PageView{UserAgent: tt.ua})

			for _, row := range s.Analytics().BrowserBreakdown {
				want := 0
				if row.Browser == tt.browser {
					want = 1
				}
				assert.Equal(t, want, row.Count, row.Browser)
			}
		})
	}
}

func TestAnalyticsDeviceClassification(t *testing.T) {
	s := testStore(t)
	s.AddPageView(PageView{UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile/15E148 Safari/604.1"})
	s.AddPageView(PageView{UserAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) Chrome/120.0 Mobile"})
	s.AddPageView(PageView{UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Safari/605.1.15"})

	devices := s.Analytics().DeviceBreakdown
	require.Len(t, devices, 2)
	assert.Equal(t, DeviceCount{Device: "mobile", Count: 2}, devices[0])
	assert.Equal(t, DeviceCount{Device: "desktop", Count: 1}, devices[1])
}

func TestAnalyticsViewsByDay(t *testing.T) {
	s := testStore(t)
	s.AddPageView(PageView{Page: "/"})
	s.AddPageView(PageView{Page: "/pricing"})

	days := s.Analytics().ViewsByDay
	require.Len(t, days, 30, "trailing 30 days, zero-count days included")
	assert.Equal(t, 2, days[29].Count, "today is the last bucket")
	for _, d := range days[:29] {
		assert.Equal(t, 0, d.Count)
	}
	assert.Equal(t, s.today(), days[29].Date)
}

func TestAnalyticsEmptyStore(t *testing.T) {
	s := testStore(t)
	a := s.Analytics()
	assert.Empty(t, a.ReferrerBreakdown)
	require.Len(t, a.BrowserBreakdown, 5)
	for _, b := range a.BrowserBreakdown {
		assert.Equal(t, 0, b.Count)
	}
	assert.Len(t, a.ViewsByDay, 30)
}
