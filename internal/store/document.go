package store

// Submission status workflow values. Updates accept other values too; the
// original dashboard treats anything else as "other".
const (
	StatusNew        = "new"
	StatusReviewing  = "reviewing"
	StatusInProgress = "in-progress"
	StatusTesting    = "testing"
	StatusCompleted  = "completed"
)

// Chat message senders.
const (
	SenderClient = "client"
	SenderAdmin  = "admin"
)

// Changelog entry types.
const (
	ChangeFeature     = "feature"
	ChangeImprovement = "improvement"
	ChangeFix         = "fix"
)

// maxPageViews caps the pageViews collection; oldest entries are evicted.
const maxPageViews = 10000

// StatusChange is one entry of a submission's status timeline.
type StatusChange struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Message   *string `json:"message"`
}

// ChatMessage is a single ticket chat message. IDs are sequential within one
// submission's thread, not globally unique.
type ChatMessage struct {
	ID        int    `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Submission is a contact-form request with its ticket workflow state.
type Submission struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Discord       string         `json:"discord"`
	Service       string         `json:"service"`
	Message       string         `json:"message"`
	Coupon        *string        `json:"coupon"`
	Referral      *string        `json:"referral"`
	Priority      bool           `json:"priority"`
	Files         []string       `json:"files"`
	Status        string         `json:"status"`
	Notes         string         `json:"notes"`
	ClientMessage string         `json:"client_message,omitempty"`
	StatusHistory []StatusChange `json:"status_history"`
	Messages      []ChatMessage  `json:"messages"`
	IPAddress     string         `json:"ip_address,omitempty"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at,omitempty"`
}

// PageView is one tracked page load.
type PageView struct {
	Page         string `json:"page"`
	Referrer     string `json:"referrer"`
	ReferralCode string `json:"referral_code,omitempty"`
	UserAgent    string `json:"user_agent"`
	IPAddress    string `json:"ip_address,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// BlogPost is an admin-authored post; content is markdown.
type BlogPost struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

// Review is a public-submitted rating, hidden until approved.
type Review struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Service   string `json:"service"`
	Approved  bool   `json:"approved"`
	CreatedAt string `json:"created_at"`
}

// PortfolioItem is an admin-managed showcase entry.
type PortfolioItem struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
}

// Coupon is a discount code with a use limit. A coupon validates only
// while active and uses < max_uses, so max_uses of 0 never validates.
type Coupon struct {
	ID              int    `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	MaxUses         int    `json:"max_uses"`
	Uses            int    `json:"uses"`
	Active          bool   `json:"active"`
	CreatedAt       string `json:"created_at"`
}

// ChangelogEntry is one public release note.
type ChangelogEntry struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// Document is the whole persisted state. Field names match the JSON data
// file written by earlier versions of this service, so existing files load
// without conversion.
type Document struct {
	Submissions     []*Submission     `json:"submissions"`
	PageViews       []*PageView       `json:"pageViews"`
	BlogPosts       []*BlogPost       `json:"blogPosts"`
	NextID          int               `json:"nextId"`
	NextBlogID      int               `json:"nextBlogId"`
	Reviews         []*Review         `json:"reviews"`
	NextReviewID    int               `json:"nextReviewId"`
	Portfolio       []*PortfolioItem  `json:"portfolio"`
	NextPortfolioID int               `json:"nextPortfolioId"`
	Coupons         []*Coupon         `json:"coupons"`
	NextCouponID    int               `json:"nextCouponId"`
	Changelog       []*ChangelogEntry `json:"changelog"`
	NextChangelogID int               `json:"nextChangelogId"`
}

func newDocument() *Document {
	return &Document{
		Submissions:     []*Submission{},
		PageViews:       []*PageView{},
		BlogPosts:       []*BlogPost{},
		NextID:          1,
		NextBlogID:      1,
		Reviews:         []*Review{},
		NextReviewID:    1,
		Portfolio:       []*PortfolioItem{},
		NextPortfolioID: 1,
		Coupons:         []*Coupon{},
		NextCouponID:    1,
		Changelog:       []*ChangelogEntry{},
		NextChangelogID: 1,
	}
}
