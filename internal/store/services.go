package store

import (
	"github.com/ukydev/garage-service/internal/flatfile"
	"github.com/ukydev/garage-service/internal/models"
)

type serviceCodec struct{}

func (serviceCodec) ID(s models.ServiceItem) int { return s.ID }

func (serviceCodec) Parse(fields []string) (models.ServiceItem, bool) {
	id, ok := flatfile.ParseInt(flatfile.Field(fields, 0))
	if !ok {
		return models.ServiceItem{}, false
	}
	price, ok := flatfile.ParseFloat(flatfile.Field(fields, 2))
	if !ok {
		return models.ServiceItem{}, false
	}
	return models.ServiceItem{
		ID:    id,
		Name:  flatfile.Field(fields, 1),
		Price: price,
	}, true
}

func (serviceCodec) Encode(s models.ServiceItem) []string {
	return []string{flatfile.FormatInt(s.ID), s.Name, flatfile.FormatFloat(s.Price)}
}

// ServiceStore is the flat-file service catalog.
type ServiceStore struct {
	file *flatfile.Store[models.ServiceItem]
}

// NewServiceStore returns a service catalog backed by the file at path.
func NewServiceStore(path string) *ServiceStore {
	return &ServiceStore{file: flatfile.New(path, "service", serviceCodec{})}
}

// Load returns every service on disk.
func (s *ServiceStore) Load() ([]models.ServiceItem, error) { return s.file.Load() }

// Save rewrites the catalog with the given services.
func (s *ServiceStore) Save(list []models.ServiceItem) error { return s.file.Save(list) }

// NextID returns the next free service id.
func (s *ServiceStore) NextID() (int, error) { return s.file.NextID() }

// Add assigns the next free id to the service and persists it.
func (s *ServiceStore) Add(item models.ServiceItem) (models.ServiceItem, error) {
	list, err := s.Load()
	if err != nil {
		return models.ServiceItem{}, err
	}
	id, err := s.NextID()
	if err != nil {
		return models.ServiceItem{}, err
	}
	item.ID = id
	return item, s.Save(append(list, item))
}

// FindByID returns the service with the given id, or nil when absent.
func (s *ServiceStore) FindByID(id int) (*models.ServiceItem, error) {
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

// Update applies a partial update to the service with the given id. It
// reports false when no such service exists.
func (s *ServiceStore) Update(id int, upd models.ServiceUpdate) (bool, error) {
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

// Delete removes the service with the given id. It reports false when no
// such service exists.
func (s *ServiceStore) Delete(id int) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	kept := list[:0]
	for _, item := range list {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	return true, s.Save(kept)
}
