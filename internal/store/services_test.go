package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/garage-service/internal/models"
)

func newTestServiceStore(t *testing.T) *ServiceStore {
	t.Helper()
	return NewServiceStore(filepath.Join(t.TempDir(), "services.txt"))
}

func TestEnsureDefaultServices(t *testing.T) {
	s := newTestServiceStore(t)
	require.NoError(t, s.EnsureDefaults())

	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, models.ServiceItem{ID: 1, Name: "Oil Change", Price: 1200}, list[0])
	assert.Equal(t, models.ServiceItem{ID: 6, Name: "General Service", Price: 1500}, list[5])
}

func TestEnsureDefaultServicesIdempotent(t *testing.T) {
	s := newTestServiceStore(t)
	require.NoError(t, s.EnsureDefaults())
	require.NoError(t, s.EnsureDefaults())

	list, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, list, 6)
}

func TestEnsureDefaultsLeavesNonEmptyCatalog(t *testing.T) {
	s := newTestServiceStore(t)
	require.NoError(t, s.Save([]models.ServiceItem{{ID: 9, Name: "Detailing", Price: 3000}}))
	require.NoError(t, s.EnsureDefaults())

	list, err := s.Load()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Detailing", list[0].Name)
}

func TestServiceAddAssignsSequentialIDs(t *testing.T) {
	s := newTestServiceStore(t)

	first, err := s.Add(models.ServiceItem{Name: "Polish", Price: 700})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := s.Add(models.ServiceItem{Name: "Wax", Price: 900})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestServiceUpdatePartial(t *testing.T) {
	s := newTestServiceStore(t)
	require.NoError(t, s.EnsureDefaults())

	newName := "Premium Oil Change"
	found, err := s.Update(1, models.ServiceUpdate{Name: &newName})
	require.NoError(t, err)
	require.True(t, found)

	item, err := s.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Premium Oil Change", item.Name)
	assert.Equal(t, 1200.0, item.Price, "nil price must keep the stored value")
}

func TestServiceUpdateExplicitZeroPrice(t *testing.T) {
	s := newTestServiceStore(t)
	require.NoError(t, s.EnsureDefaults())

	zero := 0.0
	found, err := s.Update(4, models.ServiceUpdate{Price: &zero})
	require.NoError(t, err)
	require.True(t, found)

	item, err := s.FindByID(4)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 0.0, item.Price)
}

func TestServiceUpdateNotFound(t *testing.T) {
	s := newTestServiceStore(t)
	found, err := s.Update(42, models.ServiceUpdate{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestServiceDelete(t *testing.T) {
	s := newTestServiceStore(t)
	require.NoError(t, s.EnsureDefaults())

	found, err := s.Delete(3)
	require.NoError(t, err)
	assert.True(t, found)

	item, err := s.FindByID(3)
	require.NoError(t, err)
	assert.Nil(t, item)

	// Next id still follows the on-disk max, not the record count.
	id, err := s.NextID()
	require.NoError(t, err)
	assert.Equal(t, 7, id)
}
