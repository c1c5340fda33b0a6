package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/models"
)

var defaultServices = []models.ServiceItem{
	{ID: 1, Name: "Oil Change", Price: 1200},
	{ID: 2, Name: "Brake Inspection", Price: 800},
	{ID: 3, Name: "Wheel Alignment", Price: 600},
	{ID: 4, Name: "Car Wash", Price: 500},
	{ID: 5, Name: "Engine Tune-up", Price: 2000},
	{ID: 6, Name: "General Service", Price: 1500},
}

var defaultDiscounts = []models.Discount{
	{ID: 1, Name: "New Year Offer", Percent: 10, Note: "New Year 10% off"},
	{ID: 2, Name: "Diwali Special", Percent: 15, Note: "Festival offer"},
	{ID: 3, Name: "Summer Sale", Percent: 5, Note: "Flat 5% summer discount"},
}

// EnsureDefaults seeds the service catalog with the standard offerings
// when it is empty. A non-empty catalog is left untouched.
func (s *ServiceStore) EnsureDefaults() error {
	list, err := s.Load()
	if err != nil {
		return err
	}
	if len(list) > 0 {
		return nil
	}
	log.Info("seeding default services")
	return s.Save(defaultServices)
}

// EnsureDefaults seeds the discount catalog with the standard offers when
// it is empty. A non-empty catalog is left untouched.
func (s *DiscountStore) EnsureDefaults() error {
	list, err := s.Load()
	if err != nil {
		return err
	}
	if len(list) > 0 {
		return nil
	}
	log.Info("seeding default discounts")
	return s.Save(defaultDiscounts)
}
