package store

// Accessors hand records to handlers that marshal them after the store lock
// is released, so everything returned must be a copy, never an alias into
// the live document. Aliases would race with writers appending to the same
// record's slices.

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneSlice preserves nil-ness so the persisted JSON shape (null vs [])
// survives a round trip through an accessor.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (sub *Submission) clone() *Submission {
	out := *sub
	out.Coupon = clonePtr(sub.Coupon)
	out.Referral = clonePtr(sub.Referral)
	out.Files = cloneSlice(sub.Files)
	out.Messages = cloneSlice(sub.Messages)
	out.StatusHistory = cloneSlice(sub.StatusHistory)
	for i := range out.StatusHistory {
		out.StatusHistory[i].Message = clonePtr(out.StatusHistory[i].Message)
	}
	return &out
}

func cloneSubmissions(in []*Submission) []*Submission {
	out := make([]*Submission, len(in))
	for i, sub := range in {
		out[i] = sub.clone()
	}
	return out
}

func (p *BlogPost) clone() *BlogPost {
	out := *p
	out.Tags = cloneSlice(p.Tags)
	return &out
}

func (r *Review) clone() *Review {
	out := *r
	return &out
}

func (p *PortfolioItem) clone() *PortfolioItem {
	out := *p
	out.Tags = cloneSlice(p.Tags)
	return &out
}

func (c *Coupon) clone() *Coupon {
	out := *c
	return &out
}

func (e *ChangelogEntry) clone() *ChangelogEntry {
	out := *e
	return &out
}
