// Package booking composes the catalogs into booking transactions and
// bills: it is the only consumer of more than one store at a time.
package booking

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/store"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVehicleNotFound  = errors.New("vehicle not found or not owned by customer")
	ErrNoServices       = errors.New("no services selected")
	ErrServiceNotFound  = errors.New("service not found")
	ErrHistoryNotFound  = errors.New("history entry not found")
)

// Engine runs the booking, billing and completion workflows over the
// catalog stores.
type Engine struct {
	customers store.Customers
	vehicles  store.Vehicles
	services  store.Services
	discounts store.Discounts
	history   store.Histories

	now func() string
}

// NewEngine returns an engine over the given stores.
func NewEngine(customers store.Customers, vehicles store.Vehicles, services store.Services, discounts store.Discounts, history store.Histories) *Engine {
	return &Engine{
		customers: customers,
		vehicles:  vehicles,
		services:  services,
		discounts: discounts,
		history:   history,
		now:       store.Timestamp,
	}
}

// BookService creates a Pending history entry for the given customer,
// vehicle and services. The vehicle must belong to the customer and every
// service id must resolve. A discountID of zero or below, or one that
// does not resolve, books without a discount (stored id -1, percent 0).
// On any precondition failure no file is touched.
func (e *Engine) BookService(customerID, vehicleID int, serviceIDs []int, discountID int) (*models.ServiceHistory, error) {
	customer, err := e.customers.FindByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	vehicle, err := e.vehicles.FindOwned(vehicleID, customerID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	if len(serviceIDs) == 0 {
		return nil, ErrNoServices
	}
	subtotal := 0.0
	for _, id := range serviceIDs {
		item, err := e.services.FindByID(id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, id)
		}
		subtotal += item.Price
	}

	percent := 0.0
	appliedID := models.NoDiscount
	if discountID > 0 {
		discount, err := e.discounts.FindByID(discountID)
		if err != nil {
			return nil, err
		}
		if discount != nil {
			appliedID = discount.ID
			percent = discount.Percent
		}
	}
	total := subtotal - subtotal*(percent/100)

	id, err := e.history.NextID()
	if err != nil {
		return nil, err
	}
	entry := models.ServiceHistory{
		HistoryID:       id,
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		ServiceIDs:      serviceIDs,
		DateTime:        e.now(),
		Subtotal:        subtotal,
		DiscountID:      appliedID,
		DiscountPercent: percent,
		Total:           total,
		Status:          models.StatusPending,
	}
	if err := e.history.Append(entry); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"history_id":  entry.HistoryID,
		"customer_id": customerID,
		"total":       total,
	}).Info("booking saved")
	return &entry, nil
}
