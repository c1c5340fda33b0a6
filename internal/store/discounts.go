package store

import (
	"github.com/ukydev/garage-service/internal/flatfile"
	"github.com/ukydev/garage-service/internal/models"
)

type discountCodec struct{}

func (discountCodec) ID(d models.Discount) int { return d.ID }

func (discountCodec) Parse(fields []string) (models.Discount, bool) {
	id, ok := flatfile.ParseInt(flatfile.Field(fields, 0))
	if !ok {
		return models.Discount{}, false
	}
	percent, ok := flatfile.ParseFloat(flatfile.Field(fields, 2))
	if !ok {
		return models.Discount{}, false
	}
	return models.Discount{
		ID:      id,
		Name:    flatfile.Field(fields, 1),
		Percent: percent,
		Note:    flatfile.Field(fields, 3),
	}, true
}

func (discountCodec) Encode(d models.Discount) []string {
	return []string{
		flatfile.FormatInt(d.ID),
		d.Name,
		flatfile.FormatFloat(d.Percent),
		d.Note,
	}
}

// DiscountStore is the flat-file discount catalog.
type DiscountStore struct {
	file *flatfile.Store[models.Discount]
}

// NewDiscountStore returns a discount catalog backed by the file at path.
func NewDiscountStore(path string) *DiscountStore {
	return &DiscountStore{file: flatfile.New(path, "discount", discountCodec{})}
}

// Load returns every discount on disk.
func (s *DiscountStore) Load() ([]models.Discount, error) { return s.file.Load() }

// Save rewrites the catalog with the given discounts.
func (s *DiscountStore) Save(list []models.Discount) error { return s.file.Save(list) }

// NextID returns the next free discount id.
func (s *DiscountStore) NextID() (int, error) { return s.file.NextID() }

// Add assigns the next free id to the discount and persists it.
func (s *DiscountStore) Add(d models.Discount) (models.Discount, error) {
	list, err := s.Load()
	if err != nil {
		return models.Discount{}, err
	}
	id, err := s.NextID()
	if err != nil {
		return models.Discount{}, err
	}
	d.ID = id
	return d, s.Save(append(list, d))
}

// FindByID returns the discount with the given id, or nil when absent.
func (s *DiscountStore) FindByID(id int) (*models.Discount, error) {
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

// Update applies a partial update to the discount with the given id. It
// reports false when no such discount exists.
func (s *DiscountStore) Update(id int, upd models.DiscountUpdate) (bool, error) {
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

// Delete removes the discount with the given id. It reports false when no
// such discount exists.
func (s *DiscountStore) Delete(id int) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	kept := list[:0]
	for _, d := range list {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	return true, s.Save(kept)
}
