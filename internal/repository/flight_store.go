package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/airlinehq/reservation-service/internal/models"
)

// FlightDirectory resolves flight records by number. The reservation core
// only ever reads it; the record collection is owned by the ops system and
// kept current by the flight-sync consumer.
type FlightDirectory interface {
	LoadAll() ([]models.Flight, error)
	FindByNumber(flightNumber string) (models.Flight, error)
}

// FlightStore adds the sync side of the directory: Upsert is used only by
// the flight consumer to land records pushed over the broker.
type FlightStore interface {
	FlightDirectory
	Upsert(flight models.Flight) error
}

type fileFlightStore struct {
	mu   sync.Mutex
	path string
}

// NewFlightStore returns a directory backed by a flat JSON array file.
func NewFlightStore(path string) FlightStore {
	return &fileFlightStore{path: path}
}

func (s *fileFlightStore) LoadAll() ([]models.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *fileFlightStore) FindByNumber(flightNumber string) (models.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights, err := s.load()
	if err != nil {
		return models.Flight{}, err
	}
	for _, fl := range flights {
		if fl.FlightNumber == flightNumber {
			return fl, nil
		}
	}
	return models.Flight{}, ErrNotFound
}

// Upsert replaces the record with the same flight number or appends a new
// one, then rewrites the file in full.
func (s *fileFlightStore) Upsert(flight models.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i, fl := range flights {
		if fl.FlightNumber == flight.FlightNumber {
			flights[i] = flight
			replaced = true
			break
		}
	}
	if !replaced {
		flights = append(flights, flight)
	}

	data, err := json.MarshalIndent(flights, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal flights: %w", err)
	}
	return atomicWrite(s.path, data)
}

func (s *fileFlightStore) load() ([]models.Flight, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Printf("[FlightStore] no flight data at %s, starting fresh", s.path)
		return []models.Flight{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}
	flights := []models.Flight{}
	if len(data) == 0 {
		return flights, nil
	}
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return flights, nil
}
