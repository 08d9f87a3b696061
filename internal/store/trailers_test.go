package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

func TestTrailerCRUD(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTrailer("TRAILER-001", "flatbed")
	require.NoError(t, err)

	trailers, err := s.ListTrailers()
	require.NoError(t, err)
	require.Len(t, trailers, 1)
	assert.Equal(t, id, trailers[0].ID)

	require.NoError(t, s.UpdateTrailer(id, "TRAILER-002", "repainted"))
	got, err := s.GetTrailer(id)
	require.NoError(t, err)
	assert.Equal(t, "TRAILER-002", got.Plate)
	assert.Equal(t, "repainted", got.Note)

	require.NoError(t, s.DeleteTrailer(id))
	trailers, err = s.ListTrailers()
	require.NoError(t, err)
	assert.Empty(t, trailers)
}

func TestCreateTrailerValidation(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTrailer("", "")
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = s.CreateTrailer("   ", "")
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestCreateTrailerDuplicatePlate(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTrailer("DUP-001", "")
	require.NoError(t, err)

	_, err = s.CreateTrailer("DUP-001", "")
	assert.ErrorIs(t, err, types.ErrConstraint)
}

func TestDeleteTrailerCascades(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTrailer("CASCADE-001", "")
	require.NoError(t, err)

	_, err = s.AddTireEvent(types.KindTrailer, id, "R5", "2024-03-01", 500, "", "", "")
	require.NoError(t, err)
	_, err = s.AddMaintenanceRecord(types.KindTrailer, id, "service", "2024-03-02", 500, "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTrailer(id))

	assert.Equal(t, 0, countRows(t, s, "tire_events"))
	assert.Equal(t, 0, countRows(t, s, "maintenance_records"))
}

func TestTrailerNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetTrailer(7)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, s.UpdateTrailer(7, "ANY-001", ""), types.ErrNotFound)
	assert.ErrorIs(t, s.DeleteTrailer(7), types.ErrNotFound)
}
