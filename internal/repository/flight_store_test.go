package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/airlinehq/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlightStore(t *testing.T) (FlightStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.json")
	return NewFlightStore(path), path
}

func testFlight(number string, seats int) models.Flight {
	return models.Flight{
		FlightNumber:  number,
		Origin:        "Cairo",
		Destination:   "London",
		DepartureTime: "2026-09-01 08:30",
		ArrivalTime:   "2026-09-01 13:10",
		AircraftType:  "A320",
		TotalSeats:    seats,
		Status:        "On Time",
		Price:         "450.00",
	}
}

func TestFlightStore_LoadAllMissingFile(t *testing.T) {
	store, _ := newTestFlightStore(t)

	flights, err := store.LoadAll()

	assert.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlightStore_MalformedJSON(t *testing.T) {
	store, path := newTestFlightStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`[{"flightNumber"`), 0o644))

	_, err := store.LoadAll()

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFlightStore_UpsertInsertsAndFinds(t *testing.T) {
	store, _ := newTestFlightStore(t)
	flight := testFlight("AA100", 150)

	assert.NoError(t, store.Upsert(flight))

	found, err := store.FindByNumber("AA100")
	assert.NoError(t, err)
	assert.Equal(t, flight, found)

	_, err = store.FindByNumber("ZZ999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlightStore_UpsertReplacesByNumber(t *testing.T) {
	store, _ := newTestFlightStore(t)
	assert.NoError(t, store.Upsert(testFlight("AA100", 150)))

	updated := testFlight("AA100", 150)
	updated.Status = "Delayed"
	assert.NoError(t, store.Upsert(updated))

	flights, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, "Delayed", flights[0].Status)
}
