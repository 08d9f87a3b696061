package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/truckcare/pkg/types"
)

func TestAddTireEventValidation(t *testing.T) {
	s := setupStore(t)

	tractorID, err := s.CreateTractor("TIRE-001", 0, "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		kind     types.VehicleKind
		position string
		date     string
		mileage  int64
	}{
		{name: "unknown position", kind: types.KindTractor, position: "X9", date: "2024-01-01", mileage: 0},
		{name: "trailer position on tractor", kind: types.KindTractor, position: "R1", date: "2024-01-01", mileage: 0},
		{name: "position out of range", kind: types.KindTractor, position: "F9", date: "2024-01-01", mileage: 0},
		{name: "negative mileage", kind: types.KindTractor, position: "F1", date: "2024-01-01", mileage: -5},
		{name: "malformed date", kind: types.KindTractor, position: "F1", date: "01/02/2024", mileage: 0},
		{name: "unknown kind", kind: "bus", position: "F1", date: "2024-01-01", mileage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddTireEvent(tt.kind, tractorID, tt.position, tt.date, tt.mileage, "", "", "")
			assert.ErrorIs(t, err, types.ErrValidation)
			// Failed validation leaves the event table unchanged.
			assert.Equal(t, 0, countRows(t, s, "tire_events"))
		})
	}
}

func TestAddTireEventVehicleNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.AddTireEvent(types.KindTractor, 99, "F1", "2024-01-01", 0, "", "", "")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, 0, countRows(t, s, "tire_events"))
}

func TestTrailerPositionsAccepted(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTrailer("TIRE-TL-001", "")
	require.NoError(t, err)

	for _, pos := range types.TrailerPositions {
		_, err := s.AddTireEvent(types.KindTrailer, id, pos, "2024-01-01", 0, "", "", "")
		require.NoError(t, err, "position %s", pos)
	}

	// Tractor positions are rejected on a trailer.
	_, err = s.AddTireEvent(types.KindTrailer, id, "F1", "2024-01-01", 0, "", "", "")
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestListTireEventsOrdering(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTractor("ORDER-001", 0, "")
	require.NoError(t, err)

	// Insert out of date order across two positions.
	_, err = s.AddTireEvent(types.KindTractor, id, "F1", "2024-02-01", 200, "", "", "")
	require.NoError(t, err)
	_, err = s.AddTireEvent(types.KindTractor, id, "F2", "2024-01-01", 100, "", "", "")
	require.NoError(t, err)
	_, err = s.AddTireEvent(types.KindTractor, id, "F1", "2024-03-01", 300, "", "", "")
	require.NoError(t, err)

	events, err := s.ListTireEvents(types.KindTractor, id, "")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "2024-03-01", events[0].ChangeDate)
	assert.Equal(t, "2024-02-01", events[1].ChangeDate)
	assert.Equal(t, "2024-01-01", events[2].ChangeDate)

	// Position filter narrows to that position's history.
	f1, err := s.ListTireEvents(types.KindTractor, id, "F1")
	require.NoError(t, err)
	require.Len(t, f1, 2)
	assert.Equal(t, "F1", f1[0].Position)
	assert.Equal(t, "F1", f1[1].Position)

	// An invalid filter position is a validation error.
	_, err = s.ListTireEvents(types.KindTractor, id, "R1")
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestCurrentTiresLatestPerPosition(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTractor("CURR-001", 0, "")
	require.NoError(t, err)

	_, err = s.AddTireEvent(types.KindTractor, id, "F1", "2024-01-01", 100, "OldBrand", "", "")
	require.NoError(t, err)
	newest, err := s.AddTireEvent(types.KindTractor, id, "F1", "2024-06-01", 600, "NewBrand", "", "")
	require.NoError(t, err)
	f3, err := s.AddTireEvent(types.KindTractor, id, "F3", "2024-03-01", 300, "", "", "")
	require.NoError(t, err)

	current, err := s.CurrentTires(types.KindTractor, id)
	require.NoError(t, err)

	// Exactly the positions with events appear; F2 and the rest are absent.
	require.Len(t, current, 2)
	assert.Equal(t, newest, current["F1"].ID)
	assert.Equal(t, "NewBrand", current["F1"].Brand)
	assert.Equal(t, f3, current["F3"].ID)
	_, ok := current["F2"]
	assert.False(t, ok)
}

func TestCurrentTiresSameDateTieBreaksOnID(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTractor("TIE-001", 0, "")
	require.NoError(t, err)

	_, err = s.AddTireEvent(types.KindTractor, id, "F4", "2024-05-05", 100, "First", "", "")
	require.NoError(t, err)
	second, err := s.AddTireEvent(types.KindTractor, id, "F4", "2024-05-05", 100, "Second", "", "")
	require.NoError(t, err)

	current, err := s.CurrentTires(types.KindTractor, id)
	require.NoError(t, err)
	require.Contains(t, current, "F4")
	assert.Equal(t, second, current["F4"].ID)
	assert.Equal(t, "Second", current["F4"].Brand)
}

func TestCurrentTiresScenario(t *testing.T) {
	// Tractor TC-001 with changes at F1 (2024-01-01) and F2 (2024-02-01):
	// each position reports its own single event, F2's being the latest
	// overall.
	s := setupStore(t)

	id, err := s.CreateTractor("TC-001", 0, "")
	require.NoError(t, err)

	f1, err := s.AddTireEvent(types.KindTractor, id, "F1", "2024-01-01", 100, "", "", "")
	require.NoError(t, err)
	f2, err := s.AddTireEvent(types.KindTractor, id, "F2", "2024-02-01", 200, "", "", "")
	require.NoError(t, err)

	current, err := s.CurrentTires(types.KindTractor, id)
	require.NoError(t, err)
	require.Len(t, current, 2)
	assert.Equal(t, f1, current["F1"].ID)
	assert.Equal(t, f2, current["F2"].ID)

	// The full history lists F2's event first as the most recent.
	events, err := s.ListTireEvents(types.KindTractor, id, "")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, f2, events[0].ID)
}

func TestUpdateTireEvent(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTractor("UPD-001", 0, "")
	require.NoError(t, err)
	eventID, err := s.AddTireEvent(types.KindTractor, id, "F1", "2024-01-01", 100, "Brand", "Model", "")
	require.NoError(t, err)

	require.NoError(t, s.UpdateTireEvent(eventID, "F2", "2024-01-02", 150, "Brand2", "Model2", "rotated"))

	events, err := s.ListTireEvents(types.KindTractor, id, "F2")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Brand2", events[0].Brand)
	assert.Equal(t, "2024-01-02", events[0].ChangeDate)

	// The vehicle kind still constrains the position on update.
	err = s.UpdateTireEvent(eventID, "R1", "2024-01-02", 150, "", "", "")
	assert.ErrorIs(t, err, types.ErrValidation)

	err = s.UpdateTireEvent(999, "F1", "2024-01-02", 150, "", "", "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteTireEvent(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTractor("DEL-001", 0, "")
	require.NoError(t, err)
	eventID, err := s.AddTireEvent(types.KindTractor, id, "F1", "2024-01-01", 100, "", "", "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTireEvent(eventID))
	assert.ErrorIs(t, s.DeleteTireEvent(eventID), types.ErrNotFound)
}
