package store

import (
	"strings"

	"github.com/ukydev/garage-service/internal/flatfile"
	"github.com/ukydev/garage-service/internal/models"
)

type historyCodec struct{}

func (historyCodec) ID(h models.ServiceHistory) int { return h.HistoryID }

func (historyCodec) Parse(fields []string) (models.ServiceHistory, bool) {
	historyID, ok := flatfile.ParseInt(flatfile.Field(fields, 0))
	if !ok {
		return models.ServiceHistory{}, false
	}
	customerID, ok := flatfile.ParseInt(flatfile.Field(fields, 1))
	if !ok {
		return models.ServiceHistory{}, false
	}
	vehicleID, ok := flatfile.ParseInt(flatfile.Field(fields, 2))
	if !ok {
		return models.ServiceHistory{}, false
	}
	serviceIDs, ok := parseServiceIDs(flatfile.Field(fields, 3))
	if !ok {
		return models.ServiceHistory{}, false
	}
	subtotal, ok := flatfile.ParseFloat(flatfile.Field(fields, 5))
	if !ok {
		return models.ServiceHistory{}, false
	}
	discountID, ok := flatfile.ParseInt(flatfile.Field(fields, 6))
	if !ok {
		return models.ServiceHistory{}, false
	}
	discountPercent, ok := flatfile.ParseFloat(flatfile.Field(fields, 7))
	if !ok {
		return models.ServiceHistory{}, false
	}
	total, ok := flatfile.ParseFloat(flatfile.Field(fields, 8))
	if !ok {
		return models.ServiceHistory{}, false
	}
	return models.ServiceHistory{
		HistoryID:       historyID,
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		ServiceIDs:      serviceIDs,
		DateTime:        flatfile.Field(fields, 4),
		Subtotal:        subtotal,
		DiscountID:      discountID,
		DiscountPercent: discountPercent,
		Total:           total,
		Status:          models.Status(flatfile.Field(fields, 9)),
	}, true
}

func (historyCodec) Encode(h models.ServiceHistory) []string {
	ids := make([]string, len(h.ServiceIDs))
	for i, id := range h.ServiceIDs {
		ids[i] = flatfile.FormatInt(id)
	}
	return []string{
		flatfile.FormatInt(h.HistoryID),
		flatfile.FormatInt(h.CustomerID),
		flatfile.FormatInt(h.VehicleID),
		strings.Join(ids, ","),
		h.DateTime,
		flatfile.FormatFloat(h.Subtotal),
		flatfile.FormatInt(h.DiscountID),
		flatfile.FormatFloat(h.DiscountPercent),
		flatfile.FormatFloat(h.Total),
		string(h.Status),
	}
}

// parseServiceIDs decodes the comma-joined sub-list inside the history
// record. An empty field is an empty list; empty tokens are ignored; a
// non-numeric token invalidates the whole line.
func parseServiceIDs(field string) ([]int, bool) {
	var ids []int
	for _, token := range strings.Split(field, ",") {
		if token == "" {
			continue
		}
		id, ok := flatfile.ParseInt(token)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// HistoryStore is the flat-file service history. Entries are appended by
// convention and mutated only to flip their status to Completed.
type HistoryStore struct {
	file *flatfile.Store[models.ServiceHistory]
}

// NewHistoryStore returns a history store backed by the file at path.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{file: flatfile.New(path, "history", historyCodec{})}
}

// Load returns every history entry on disk.
func (s *HistoryStore) Load() ([]models.ServiceHistory, error) { return s.file.Load() }

// Save rewrites the history with the given entries.
func (s *HistoryStore) Save(list []models.ServiceHistory) error { return s.file.Save(list) }

// NextID returns the next free history id.
func (s *HistoryStore) NextID() (int, error) { return s.file.NextID() }

// Append adds one entry to the history. Load, push, save; not atomic
// against concurrent writers.
func (s *HistoryStore) Append(entry models.ServiceHistory) error {
	list, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(list, entry))
}

// FindByID returns the history entry with the given id, or nil when
// absent.
func (s *HistoryStore) FindByID(id int) (*models.ServiceHistory, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].HistoryID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// MarkCompleted flips the entry with the given id to Completed. It
// reports false when no such entry exists.
func (s *HistoryStore) MarkCompleted(id int) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	for i := range list {
		if list[i].HistoryID == id {
			list[i].Status = models.StatusCompleted
			return true, s.Save(list)
		}
	}
	return false, nil
}

// CompletePending flips every Pending entry for the given customer to
// Completed and returns how many were changed. Nothing is written when
// there were none.
func (s *HistoryStore) CompletePending(customerID int) (int, error) {
	list, err := s.Load()
	if err != nil {
		return 0, err
	}
	changed := 0
	for i := range list {
		if list[i].CustomerID == customerID && list[i].Status == models.StatusPending {
			list[i].Status = models.StatusCompleted
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, s.Save(list)
}
