package models

// ServiceItem represents a service offered by the garage.
type ServiceItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"` // in rupees
}

// ServiceUpdate describes a partial update to a service item.
// Nil fields keep the stored value; an explicit zero price is honored.
type ServiceUpdate struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

// Apply overwrites the service item's fields with the supplied values.
func (u ServiceUpdate) Apply(s *ServiceItem) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
}
