package store

import "strings"

// AddCoupon appends a coupon (the one collection kept in insertion order).
func (s *Store) AddCoupon(code string, discountPercent, maxUses int) *Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &Coupon{
		ID:              s.doc.NextCouponID,
		Code:            strings.TrimSpace(code),
		DiscountPercent: discountPercent,
		MaxUses:         maxUses,
		Uses:            0,
		Active:          true,
		CreatedAt:       s.nowISO(),
	}
	s.doc.NextCouponID++
	s.doc.Coupons = append(s.doc.Coupons, c)
	s.save()
	return c.clone()
}

func (s *Store) Coupons() []*Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Coupon, len(s.doc.Coupons))
	for i, c := range s.doc.Coupons {
		out[i] = c.clone()
	}
	return out
}

// ValidateCoupon matches codes case-insensitively after trimming. A coupon
// is usable only while active with uses < max_uses, which leaves a
// max_uses of 0 never usable.
func (s *Store) ValidateCoupon(code string) *Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.matchCoupon(code)
	if c == nil {
		return nil
	}
	return c.clone()
}

func (s *Store) matchCoupon(code string) *Coupon {
	q := strings.ToLower(strings.TrimSpace(code))
	for _, c := range s.doc.Coupons {
		if strings.ToLower(c.Code) == q && c.Active && c.Uses < c.MaxUses {
			return c
		}
	}
	return nil
}

// UseCoupon re-validates under the store lock and increments uses only when
// still valid, so a max_uses limit cannot be overspent within one process.
func (s *Store) UseCoupon(code string) *Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.matchCoupon(code)
	if c == nil {
		return nil
	}
	c.Uses++
	s.save()
	return c.clone()
}

// ToggleCoupon flips the active flag; nil for an unknown id.
func (s *Store) ToggleCoupon(id int) *Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.doc.Coupons {
		if c.ID == id {
			c.Active = !c.Active
			s.save()
			return c.clone()
		}
	}
	return nil
}

func (s *Store) DeleteCoupon(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.doc.Coupons {
		if c.ID == id {
			s.doc.Coupons = append(s.doc.Coupons[:i], s.doc.Coupons[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}
