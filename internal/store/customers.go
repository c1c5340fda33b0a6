package store

import (
	"github.com/ukydev/garage-service/internal/flatfile"
	"github.com/ukydev/garage-service/internal/models"
)

type customerCodec struct{}

func (customerCodec) ID(c models.Customer) int { return c.ID }

func (customerCodec) Parse(fields []string) (models.Customer, bool) {
	id, ok := flatfile.ParseInt(flatfile.Field(fields, 0))
	if !ok {
		return models.Customer{}, false
	}
	return models.Customer{
		ID:    id,
		Name:  flatfile.Field(fields, 1),
		Phone: flatfile.Field(fields, 2),
		Email: flatfile.Field(fields, 3),
	}, true
}

func (customerCodec) Encode(c models.Customer) []string {
	return []string{flatfile.FormatInt(c.ID), c.Name, c.Phone, c.Email}
}

// CustomerStore is the flat-file customer catalog.
type CustomerStore struct {
	file *flatfile.Store[models.Customer]
}

// NewCustomerStore returns a customer catalog backed by the file at path.
func NewCustomerStore(path string) *CustomerStore {
	return &CustomerStore{file: flatfile.New(path, "customer", customerCodec{})}
}

// Load returns every customer on disk.
func (s *CustomerStore) Load() ([]models.Customer, error) { return s.file.Load() }

// Save rewrites the catalog with the given customers.
func (s *CustomerStore) Save(list []models.Customer) error { return s.file.Save(list) }

// NextID returns the next free customer id.
func (s *CustomerStore) NextID() (int, error) { return s.file.NextID() }

// Add assigns the next free id to the customer and persists it.
func (s *CustomerStore) Add(c models.Customer) (models.Customer, error) {
	list, err := s.Load()
	if err != nil {
		return models.Customer{}, err
	}
	id, err := s.NextID()
	if err != nil {
		return models.Customer{}, err
	}
	c.ID = id
	return c, s.Save(append(list, c))
}

// FindByID returns the customer with the given id, or nil when absent.
// Absence is a normal outcome, not an error.
func (s *CustomerStore) FindByID(id int) (*models.Customer, error) {
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

// Update applies a partial update to the customer with the given id. It
// reports false when no such customer exists.
func (s *CustomerStore) Update(id int, upd models.CustomerUpdate) (bool, error) {
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

// Delete removes the customer with the given id. It reports false when no
// such customer exists.
func (s *CustomerStore) Delete(id int) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	kept := list[:0]
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	return true, s.Save(kept)
}
