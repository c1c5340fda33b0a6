package models

// Vehicle represents a vehicle registered to a customer. CustomerID is a
// reference by value; it is not checked against the customer catalog at
// save time.
type Vehicle struct {
	ID         int    `json:"id"`
	CustomerID int    `json:"customer_id"`
	RegNo      string `json:"reg_no"`
	Model      string `json:"model"`
	Color      string `json:"color"`
}

// VehicleUpdate describes a partial update to a vehicle.
// Nil fields keep the stored value.
type VehicleUpdate struct {
	RegNo *string `json:"reg_no,omitempty"`
	Model *string `json:"model,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Apply overwrites the vehicle's fields with the supplied values.
func (u VehicleUpdate) Apply(v *Vehicle) {
	if u.RegNo != nil {
		v.RegNo = *u.RegNo
	}
	if u.Model != nil {
		v.Model = *u.Model
	}
	if u.Color != nil {
		v.Color = *u.Color
	}
}
