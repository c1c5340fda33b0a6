// Package store provides the per-entity catalogs backed by flat files:
// customers, vehicles, services, discounts and service history.
package store

import (
	"time"

	"github.com/ukydev/garage-service/internal/models"
)

// Customers defines the customer catalog operations the booking engine
// depends on.
type Customers interface {
	FindByID(id int) (*models.Customer, error)
	Delete(id int) (bool, error)
}

// Vehicles defines the vehicle catalog operations the booking engine
// depends on.
type Vehicles interface {
	FindOwned(vehicleID, customerID int) (*models.Vehicle, error)
	DeleteByOwner(customerID int) (int, error)
}

// Services defines the service catalog lookup used for booking and
// bill itemization.
type Services interface {
	FindByID(id int) (*models.ServiceItem, error)
}

// Discounts defines the discount catalog lookup used for booking.
type Discounts interface {
	FindByID(id int) (*models.Discount, error)
}

// Histories defines the service history operations the booking engine
// depends on.
type Histories interface {
	NextID() (int, error)
	Append(entry models.ServiceHistory) error
	FindByID(id int) (*models.ServiceHistory, error)
	CompletePending(customerID int) (int, error)
}

// Timestamp returns the local wall clock as "YYYY-MM-DD HH:MM:SS". It is
// captured once when a booking is created and never recomputed.
func Timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
