package models

// NoDiscount is the sentinel discount id stored in a history entry when
// no discount was applied.
const NoDiscount = -1

// Discount represents a percentage discount offer.
type Discount struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Note    string  `json:"note"`
}

// DiscountUpdate describes a partial update to a discount.
// Nil fields keep the stored value; an explicit zero percent is honored.
type DiscountUpdate struct {
	Name    *string  `json:"name,omitempty"`
	Percent *float64 `json:"percent,omitempty"`
	Note    *string  `json:"note,omitempty"`
}

// Apply overwrites the discount's fields with the supplied values.
func (u DiscountUpdate) Apply(d *Discount) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Percent != nil {
		d.Percent = *u.Percent
	}
	if u.Note != nil {
		d.Note = *u.Note
	}
}
