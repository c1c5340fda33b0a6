package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/garage-service/internal/models"
)

func newTestHistoryStore(t *testing.T) *HistoryStore {
	t.Helper()
	return NewHistoryStore(filepath.Join(t.TempDir(), "service_history.txt"))
}

func TestHistoryLineParsing(t *testing.T) {
	s := newTestHistoryStore(t)
	raw := "1|1|1|1,2|2023-10-10 10:00:00|2000|-1|0|2000|Pending\n"
	require.NoError(t, os.WriteFile(s.file.Path(), []byte(raw), 0o644))

	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list, 1)

	h := list[0]
	assert.Equal(t, 1, h.HistoryID)
	assert.Equal(t, []int{1, 2}, h.ServiceIDs)
	assert.Equal(t, "2023-10-10 10:00:00", h.DateTime)
	assert.Equal(t, 2000.0, h.Subtotal)
	assert.Equal(t, models.NoDiscount, h.DiscountID)
	assert.Equal(t, 0.0, h.DiscountPercent)
	assert.Equal(t, 2000.0, h.Total)
	assert.Equal(t, models.StatusPending, h.Status)
}

func TestHistoryRoundTrip(t *testing.T) {
	s := newTestHistoryStore(t)
	entry := models.ServiceHistory{
		HistoryID:       1,
		CustomerID:      2,
		VehicleID:       3,
		ServiceIDs:      []int{1, 2},
		DateTime:        "2023-10-10 10:00:00",
		Subtotal:        2000,
		DiscountID:      1,
		DiscountPercent: 10,
		Total:           1800,
		Status:          models.StatusPending,
	}
	require.NoError(t, s.Append(entry))

	data, err := os.ReadFile(s.file.Path())
	require.NoError(t, err)
	assert.Equal(t, "1|2|3|1,2|2023-10-10 10:00:00|2000|1|10|1800|Pending\n", string(data))

	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entry, list[0])
}

func TestHistoryEmptyServiceListEncodesEmptyField(t *testing.T) {
	s := newTestHistoryStore(t)
	entry := models.ServiceHistory{
		HistoryID: 1,
		DateTime:  "2023-10-10 10:00:00",
		Status:    models.StatusPending,
	}
	require.NoError(t, s.Append(entry))

	data, err := os.ReadFile(s.file.Path())
	require.NoError(t, err)
	assert.Equal(t, "1|0|0||2023-10-10 10:00:00|0|0|0|0|Pending\n", string(data))

	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].ServiceIDs)
}

func TestHistorySkipsBadServiceIDToken(t *testing.T) {
	s := newTestHistoryStore(t)
	raw := "1|1|1|1,x|2023-10-10 10:00:00|2000|-1|0|2000|Pending\n" +
		"2|1|1|3|2023-10-11 09:00:00|600|-1|0|600|Pending\n"
	require.NoError(t, os.WriteFile(s.file.Path(), []byte(raw), 0o644))

	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].HistoryID)
}

func TestHistoryMarkCompleted(t *testing.T) {
	s := newTestHistoryStore(t)
	require.NoError(t, s.Append(models.ServiceHistory{
		HistoryID: 1, CustomerID: 1, VehicleID: 1,
		ServiceIDs: []int{1}, DateTime: "2023-10-10 10:00:00",
		Subtotal: 1200, DiscountID: models.NoDiscount, Total: 1200,
		Status: models.StatusPending,
	}))

	found, err := s.MarkCompleted(1)
	require.NoError(t, err)
	assert.True(t, found)

	entry, err := s.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.StatusCompleted, entry.Status)

	found, err = s.MarkCompleted(99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHistoryCompletePending(t *testing.T) {
	s := newTestHistoryStore(t)
	entries := []models.ServiceHistory{
		{HistoryID: 1, CustomerID: 1, ServiceIDs: []int{1}, DateTime: "d", DiscountID: models.NoDiscount, Status: models.StatusPending},
		{HistoryID: 2, CustomerID: 1, ServiceIDs: []int{2}, DateTime: "d", DiscountID: models.NoDiscount, Status: models.StatusCompleted},
		{HistoryID: 3, CustomerID: 2, ServiceIDs: []int{3}, DateTime: "d", DiscountID: models.NoDiscount, Status: models.StatusPending},
	}
	for _, e := range entries {
		require.NoError(t, s.Append(e))
	}

	changed, err := s.CompletePending(1)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, models.StatusCompleted, list[0].Status)
	assert.Equal(t, models.StatusCompleted, list[1].Status)
	assert.Equal(t, models.StatusPending, list[2].Status, "other customers' entries stay pending")

	changed, err = s.CompletePending(1)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp()
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, ts)
}
