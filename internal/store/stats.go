package store

import "sort"

// ServiceCount is one row of the submissions-by-service breakdown.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

// DayCount is one calendar-day bucket.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats is the admin dashboard payload.
type Stats struct {
	TotalSubmissions int            `json:"totalSubmissions"`
	NewSubmissions   int            `json:"newSubmissions"`
	Reviewing        int            `json:"reviewing"`
	InProgress       int            `json:"inProgress"`
	Testing          int            `json:"testing"`
	Completed        int            `json:"completed"`
	TodayViews       int            `json:"todayViews"`
	TotalViews       int            `json:"totalViews"`
	RecentSubmissions []*Submission `json:"recentSubmissions"`
	ByService        []ServiceCount `json:"byService"`
	DailySubmissions []DayCount     `json:"dailySubmissions"`
	TotalReviews     int            `json:"totalReviews"`
	TotalPortfolio   int            `json:"totalPortfolio"`
	ActiveCoupons    int            `json:"activeCoupons"`
	TotalChangelog   int            `json:"totalChangelog"`
}

// Stats recomputes the dashboard view from scratch on every call. Acceptable
// while page views are capped at 10000 and submissions stay in the low
// thousands; past that, incremental counters would be needed.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.doc.Submissions
	today := s.today()

	todayViews := 0
	for _, v := range s.doc.PageViews {
		if hasDatePrefix(v.CreatedAt, today) {
			todayViews++
		}
	}

	byStatus := map[string]int{}
	serviceCounts := map[string]int{}
	for _, sub := range subs {
		byStatus[sub.Status]++
		serviceCounts[sub.Service]++
	}

	byService := make([]ServiceCount, 0, len(serviceCounts))
	for service, count := range serviceCounts {
		byService = append(byService, ServiceCount{Service: service, Count: count})
	}
	sort.Slice(byService, func(i, j int) bool {
		if byService[i].Count != byService[j].Count {
			return byService[i].Count > byService[j].Count
		}
		return byService[i].Service < byService[j].Service
	})

	// Trailing 7 calendar days, zero-count days included.
	daily := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		date := s.now().UTC().AddDate(0, 0, -i).Format("2006-01-02")
		count := 0
		for _, sub := range subs {
			if hasDatePrefix(sub.CreatedAt, date) {
				count++
			}
		}
		daily = append(daily, DayCount{Date: date, Count: count})
	}

	recent := subs
	if len(recent) > 5 {
		recent = recent[:5]
	}
	recentCopy := cloneSubmissions(recent)

	activeCoupons := 0
	for _, c := range s.doc.Coupons {
		if c.Active {
			activeCoupons++
		}
	}

	return Stats{
		TotalSubmissions:  len(subs),
		NewSubmissions:    byStatus[StatusNew],
		Reviewing:         byStatus[StatusReviewing],
		InProgress:        byStatus[StatusInProgress],
		Testing:           byStatus[StatusTesting],
		Completed:         byStatus[StatusCompleted],
		TodayViews:        todayViews,
		TotalViews:        len(s.doc.PageViews),
		RecentSubmissions: recentCopy,
		ByService:         byService,
		DailySubmissions:  daily,
		TotalReviews:      len(s.doc.Reviews),
		TotalPortfolio:    len(s.doc.Portfolio),
		ActiveCoupons:     activeCoupons,
		TotalChangelog:    len(s.doc.Changelog),
	}
}

func hasDatePrefix(ts, date string) bool {
	return len(ts) >= len(date) && ts[:len(date)] == date
}
