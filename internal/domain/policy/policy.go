package policy

import "strings"

// DiscountPolicy is the owner-controlled flag gating whether cashiers may
// apply ad-hoc discounts. It persists until explicitly toggled.
type DiscountPolicy string

const (
	Locked   DiscountPolicy = "LOCKED"
	Unlocked DiscountPolicy = "UNLOCKED"
)

// Parse is lenient by design: an absent or unreadable config cell means
// Unlocked, the documented default.
func Parse(raw string) DiscountPolicy {
	if strings.EqualFold(strings.TrimSpace(raw), string(Locked)) {
		return Locked
	}
	return Unlocked
}

func (p DiscountPolicy) String() string {
	return string(p)
}

func (p DiscountPolicy) AllowsDiscount() bool {
	return p != Locked
}
