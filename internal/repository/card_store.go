package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/airlinehq/reservation-service/internal/models"
)

// CardStore keeps one saved card per passenger, keyed by username.
// Put overwrites any previous record; there is no history.
type CardStore interface {
	Get(username string) (models.Card, error)
	Put(username string, card models.Card) error
}

type fileCardStore struct {
	mu   sync.Mutex
	path string
}

func NewCardStore(path string) CardStore {
	return &fileCardStore{path: path}
}

func (s *fileCardStore) Get(username string) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allCards, err := s.load()
	if err != nil {
		return models.Card{}, err
	}
	card, ok := allCards[username]
	if !ok {
		return models.Card{}, ErrNotFound
	}
	return card, nil
}

func (s *fileCardStore) Put(username string, card models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	allCards, err := s.load()
	if err != nil {
		return err
	}
	allCards[username] = card

	data, err := json.MarshalIndent(allCards, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}
	return atomicWrite(s.path, data)
}

func (s *fileCardStore) load() (map[string]models.Card, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]models.Card{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}
	allCards := map[string]models.Card{}
	if len(data) == 0 {
		return allCards, nil
	}
	if err := json.Unmarshal(data, &allCards); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return allCards, nil
}
