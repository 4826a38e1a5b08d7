package store

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// ReferrerCount is one row of the top-referrer breakdown.
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int    `json:"count"`
}

// BrowserCount is one row of the browser breakdown.
type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int    `json:"count"`
}

// DeviceCount is one row of the mobile/desktop breakdown.
type DeviceCount struct {
	Device string `json:"device"`
	Count  int    `json:"count"`
}

// Analytics is the traffic analytics payload.
type Analytics struct {
	ReferrerBreakdown []ReferrerCount `json:"referrerBreakdown"`
	BrowserBreakdown  []BrowserCount  `json:"browserBreakdown"`
	DeviceBreakdown   []DeviceCount   `json:"deviceBreakdown"`
	HourlyTraffic     [24]int         `json:"hourlyTraffic"`
	ViewsByDay        []DayCount      `json:"viewsByDay"`
}

var mobileUA = regexp.MustCompile(`android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini|mobile`)

// browserOrder fixes the emitted row order regardless of counts.
var browserOrder = []string{"Chrome", "Firefox", "Safari", "Edge", "Other"}

// Analytics builds all five breakdowns from the page-view collection in one
// pass set. Every breakdown is recomputed per call, no caching.
func (s *Store) Analytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := s.doc.PageViews
	var out Analytics

	// Top-10 referrers. A non-empty referrer is chosen before the referral
	// code even when it trims to nothing, so a whitespace referrer counts
	// as "direct" rather than falling through to the code.
	referrerCounts := map[string]int{}
	for _, v := range views {
		key := v.Referrer
		if key == "" {
			key = v.ReferralCode
		}
		key = strings.TrimSpace(key)
		if key == "" {
			key = "direct"
		}
		referrerCounts[key]++
	}
	for referrer, count := range referrerCounts {
		out.ReferrerBreakdown = append(out.ReferrerBreakdown, ReferrerCount{Referrer: referrer, Count: count})
	}
	sort.Slice(out.ReferrerBreakdown, func(i, j int) bool {
		if out.ReferrerBreakdown[i].Count != out.ReferrerBreakdown[j].Count {
			return out.ReferrerBreakdown[i].Count > out.ReferrerBreakdown[j].Count
		}
		return out.ReferrerBreakdown[i].Referrer < out.ReferrerBreakdown[j].Referrer
	})
	if len(out.ReferrerBreakdown) > 10 {
		out.ReferrerBreakdown = out.ReferrerBreakdown[:10]
	}

	// Browser classification. The precedence order matters: Edge markers
	// first, then Chrome excluding Edge, Firefox, then Safari excluding
	// Chrome. Reordering changes outcomes for ambiguous UA strings.
	browserCounts := map[string]int{}
	deviceCounts := map[string]int{"mobile": 0, "desktop": 0}
	for _, v := range views {
		ua := strings.ToLower(v.UserAgent)
		switch {
		case strings.Contains(ua, "edg/") || strings.Contains(ua, "edge"):
			browserCounts["Edge"]++
		case strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg"):
			browserCounts["Chrome"]++
		case strings.Contains(ua, "firefox") || strings.Contains(ua, "fxios"):
			browserCounts["Firefox"]++
		case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
			browserCounts["Safari"]++
		default:
			browserCounts["Other"]++
		}

		if mobileUA.MatchString(ua) {
			deviceCounts["mobile"]++
		} else {
			deviceCounts["desktop"]++
		}
	}
	for _, name := range browserOrder {
		out.BrowserBreakdown = append(out.BrowserBreakdown, BrowserCount{Browser: name, Count: browserCounts[name]})
	}
	out.DeviceBreakdown = []DeviceCount{
		{Device: "mobile", Count: deviceCounts["mobile"]},
		{Device: "desktop", Count: deviceCounts["desktop"]},
	}

	// Hour-of-day buckets use the server's local hour.
	for _, v := range views {
		if t, err := time.Parse(time.RFC3339, v.CreatedAt); err == nil {
			out.HourlyTraffic[t.Local().Hour()]++
		}
	}

	// Trailing 30 calendar days, zero-count days included.
	out.ViewsByDay = make([]DayCount, 0, 30)
	for i := 29; i >= 0; i-- {
		date := s.now().UTC().AddDate(0, 0, -i).Format("2006-01-02")
		count := 0
		for _, v := range views {
			if hasDatePrefix(v.CreatedAt, date) {
				count++
			}
		}
		out.ViewsByDay = append(out.ViewsByDay, DayCount{Date: date, Count: count})
	}

	return out
}
