package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/airlinehq/reservation-service/internal/models"
)

// ReservationStore is a file-backed collection of reservations keyed by
// passenger name. Two instances run side by side: the general store holds
// every reservation, the agent store mirrors only bookings made through a
// booking agent.
type ReservationStore interface {
	Load() (map[string][]models.Reservation, error)
	Save(reservations []models.Reservation) error
	FindByID(id string) (models.Reservation, error)
	UpdateByID(res models.Reservation) error
	RemoveByID(id string) error
}

type fileReservationStore struct {
	mu   sync.Mutex
	path string
}

// NewReservationStore returns a store backed by the JSON file at path.
// The file does not need to exist yet. The mutex serializes every
// read-modify-write cycle within this process; two separate processes
// sharing the file can still race between their own load and save.
func NewReservationStore(path string) ReservationStore {
	return &fileReservationStore{path: path}
}

// Load reads the whole backing file. A missing file is a fresh store, not
// an error.
func (s *fileReservationStore) Load() (map[string][]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *fileReservationStore) load() (map[string][]models.Reservation, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Printf("[ReservationStore] no data at %s, starting fresh", s.path)
		return map[string][]models.Reservation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}
	byPassenger := map[string][]models.Reservation{}
	if len(data) == 0 {
		return byPassenger, nil
	}
	if err := json.Unmarshal(data, &byPassenger); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return byPassenger, nil
}

// Save merges the given reservations into the on-disk mapping. A
// reservation is appended under its passenger key only when no entry with
// the same ID already exists there; existing entries are never rewritten.
// Re-saving a list that contains an already-stored reservation is a no-op
// for that entry, which makes repeated saves of one session's bookings
// idempotent. Field changes must go through UpdateByID.
func (s *fileReservationStore) Save(reservations []models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byPassenger, err := s.load()
	if err != nil {
		return err
	}
	for _, res := range reservations {
		existing := byPassenger[res.PassengerName]
		dup := false
		for _, e := range existing {
			if e.ReservationID == res.ReservationID {
				dup = true
				break
			}
		}
		if !dup {
			byPassenger[res.PassengerName] = append(existing, res)
		}
	}
	return s.write(byPassenger)
}

func (s *fileReservationStore) FindByID(id string) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byPassenger, err := s.load()
	if err != nil {
		return models.Reservation{}, err
	}
	for _, list := range byPassenger {
		for _, res := range list {
			if res.ReservationID == id {
				return res, nil
			}
		}
	}
	return models.Reservation{}, ErrNotFound
}

// UpdateByID replaces the stored record carrying the same reservation ID.
// This is the only write path that changes an existing entry; Save
// deliberately refuses to.
func (s *fileReservationStore) UpdateByID(res models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byPassenger, err := s.load()
	if err != nil {
		return err
	}
	for name, list := range byPassenger {
		for i, existing := range list {
			if existing.ReservationID == res.ReservationID {
				byPassenger[name][i] = res
				return s.write(byPassenger)
			}
		}
	}
	return ErrNotFound
}

// RemoveByID filters the reservation out of every passenger key and
// rewrites the file. When no entry matches, the file is left untouched.
func (s *fileReservationStore) RemoveByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byPassenger, err := s.load()
	if err != nil {
		return err
	}
	for name, list := range byPassenger {
		for i, res := range list {
			if res.ReservationID == id {
				updated := append(list[:i:i], list[i+1:]...)
				if len(updated) == 0 {
					delete(byPassenger, name)
				} else {
					byPassenger[name] = updated
				}
				return s.write(byPassenger)
			}
		}
	}
	return ErrNotFound
}

// write rewrites the whole file through a temp file and rename so a crash
// mid-write cannot truncate the store.
func (s *fileReservationStore) write(byPassenger map[string][]models.Reservation) error {
	data, err := json.MarshalIndent(byPassenger, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal reservations: %w", err)
	}
	return atomicWrite(s.path, data)
}

func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".store-*.json")
	if err != nil {
		return fmt.Errorf("%w: temp file for %s: %v", ErrStoreUnavailable, path, err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrStoreUnavailable, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", ErrStoreUnavailable, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename into %s: %v", ErrStoreUnavailable, path, err)
	}
	return nil
}
