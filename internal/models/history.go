package models

// Status represents the lifecycle state of a service history entry.
// Entries are created Pending and only ever move to Completed.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ServiceHistory represents one booking transaction: a customer, a
// vehicle, the selected services and an optional discount, with the
// totals frozen at booking time.
type ServiceHistory struct {
	HistoryID       int     `json:"history_id"`
	CustomerID      int     `json:"customer_id"`
	VehicleID       int     `json:"vehicle_id"`
	ServiceIDs      []int   `json:"service_ids"` // selection order
	DateTime        string  `json:"date_time"`   // "YYYY-MM-DD HH:MM:SS", set at creation
	Subtotal        float64 `json:"subtotal"`
	DiscountID      int     `json:"discount_id"` // NoDiscount when none applied
	DiscountPercent float64 `json:"discount_percent"`
	Total           float64 `json:"total"`
	Status          Status  `json:"status"`
}
