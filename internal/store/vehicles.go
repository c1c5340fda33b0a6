package store

import (
	"github.com/ukydev/garage-service/internal/flatfile"
	"github.com/ukydev/garage-service/internal/models"
)

type vehicleCodec struct{}

func (vehicleCodec) ID(v models.Vehicle) int { return v.ID }

func (vehicleCodec) Parse(fields []string) (models.Vehicle, bool) {
	id, ok := flatfile.ParseInt(flatfile.Field(fields, 0))
	if !ok {
		return models.Vehicle{}, false
	}
	customerID, ok := flatfile.ParseInt(flatfile.Field(fields, 1))
	if !ok {
		return models.Vehicle{}, false
	}
	return models.Vehicle{
		ID:         id,
		CustomerID: customerID,
		RegNo:      flatfile.Field(fields, 2),
		Model:      flatfile.Field(fields, 3),
		Color:      flatfile.Field(fields, 4),
	}, true
}

func (vehicleCodec) Encode(v models.Vehicle) []string {
	return []string{
		flatfile.FormatInt(v.ID),
		flatfile.FormatInt(v.CustomerID),
		v.RegNo,
		v.Model,
		v.Color,
	}
}

// VehicleStore is the flat-file vehicle catalog. Duplicate registration
// numbers are allowed; only the id is unique.
type VehicleStore struct {
	file *flatfile.Store[models.Vehicle]
}

// NewVehicleStore returns a vehicle catalog backed by the file at path.
func NewVehicleStore(path string) *VehicleStore {
	return &VehicleStore{file: flatfile.New(path, "vehicle", vehicleCodec{})}
}

// Load returns every vehicle on disk.
func (s *VehicleStore) Load() ([]models.Vehicle, error) { return s.file.Load() }

// Save rewrites the catalog with the given vehicles.
func (s *VehicleStore) Save(list []models.Vehicle) error { return s.file.Save(list) }

// NextID returns the next free vehicle id.
func (s *VehicleStore) NextID() (int, error) { return s.file.NextID() }

// Add assigns the next free id to the vehicle and persists it. The owner
// id is stored as given; it is not validated against the customer catalog.
func (s *VehicleStore) Add(v models.Vehicle) (models.Vehicle, error) {
	list, err := s.Load()
	if err != nil {
		return models.Vehicle{}, err
	}
	id, err := s.NextID()
	if err != nil {
		return models.Vehicle{}, err
	}
	v.ID = id
	return v, s.Save(append(list, v))
}

// FindByID returns the vehicle with the given id, or nil when absent.
func (s *VehicleStore) FindByID(id int) (*models.Vehicle, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// FindOwned returns the vehicle with the given id only when it belongs to
// the given customer; otherwise nil.
func (s *VehicleStore) FindOwned(vehicleID, customerID int) (*models.Vehicle, error) {
	v, err := s.FindByID(vehicleID)
	if err != nil || v == nil {
		return nil, err
	}
	if v.CustomerID != customerID {
		return nil, nil
	}
	return v, nil
}

// FindByOwner returns every vehicle registered to the given customer.
func (s *VehicleStore) FindByOwner(customerID int) ([]models.Vehicle, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	var owned []models.Vehicle
	for _, v := range list {
		if v.CustomerID == customerID {
			owned = append(owned, v)
		}
	}
	return owned, nil
}

// Update applies a partial update to the vehicle with the given id. It
// reports false when no such vehicle exists.
func (s *VehicleStore) Update(id int, upd models.VehicleUpdate) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	for i := range list {
		if list[i].ID == id {
			upd.Apply(&list[i])
			return true, s.Save(list)
		}
	}
	return false, nil
}

// Delete removes the vehicle with the given id. It reports false when no
// such vehicle exists.
func (s *VehicleStore) Delete(id int) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	kept := list[:0]
	for _, v := range list {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	return true, s.Save(kept)
}

// DeleteByOwner removes every vehicle registered to the given customer and
// returns how many were removed.
func (s *VehicleStore) DeleteByOwner(customerID int) (int, error) {
	list, err := s.Load()
	if err != nil {
		return 0, err
	}
	kept := list[:0]
	for _, v := range list {
		if v.CustomerID != customerID {
			kept = append(kept, v)
		}
	}
	removed := len(list) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.Save(kept)
}
