// Package favorites provides the saved-recipe collection: persisted
// through storage, observable through in-process subscriptions, and
// announced to other instances through a best-effort broadcast.
package favorites

import (
	"encoding/json"
	"sync"

	"github.com/greenplate/sustainabite/pkg/logger"
	"github.com/greenplate/sustainabite/pkg/models"
	"github.com/greenplate/sustainabite/pkg/storage"
)

// storageKey is the single key holding the JSON-encoded favorites array.
const storageKey = "favoriteRecipes"

// Callback receives the current number of favorites after every change.
type Callback func(count int)

type subscriber struct {
	fn Callback
}

// Service owns the persisted favorites collection and the subscriber
// registry. Construct one per process with New and pass it wherever
// favorites are read or mutated.
type Service struct {
	store       *storage.Store
	broadcaster Broadcaster
	logger      *logger.Logger

	mu          sync.Mutex
	subscribers []*subscriber
}

// New creates a favorites service backed by the given store. A nil
// broadcaster disables cross-instance announcements.
func New(store *storage.Store, broadcaster Broadcaster) *Service {
	if broadcaster == nil {
		broadcaster = NoopBroadcaster{}
	}
	return &Service{
		store:       store,
		broadcaster: broadcaster,
		logger:      logger.New("favorites"),
	}
}

// Favorites returns the persisted collection in insertion order. An
// absent key or a value that fails to decode yields an empty slice,
// never an error.
func (s *Service) Favorites() []models.Recipe {
	data, err := s.store.GetRaw(storageKey)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.logger.Warn("Failed to read favorites, treating as empty: %v", err)
		}
		return []models.Recipe{}
	}

	var favs []models.Recipe
	if err := json.Unmarshal(data, &favs); err != nil {
		s.logger.Warn("Corrupt favorites value, treating as empty: %v", err)
		return []models.Recipe{}
	}
	if favs == nil {
		return []models.Recipe{}
	}
	return favs
}

// IsFavorite reports whether a recipe with the given id is saved.
func (s *Service) IsFavorite(id int) bool {
	for _, r := range s.Favorites() {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Count returns the number of saved recipes.
func (s *Service) Count() int {
	return len(s.Favorites())
}

// Toggle removes the recipe if it is already saved, otherwise appends a
// snapshot of it. The updated collection is persisted before any
// subscriber runs, so reads from inside a callback see the new state.
func (s *Service) Toggle(recipe models.Recipe) error {
	s.mu.Lock()

	favs := s.Favorites()
	updated := make([]models.Recipe, 0, len(favs)+1)
	removed := false
	for _, r := range favs {
		if r.ID == recipe.ID {
			removed = true
			continue
		}
		updated = append(updated, r)
	}
	if !removed {
		updated = append(updated, recipe)
	}

	if err := s.store.Set(storageKey, updated); err != nil {
		s.mu.Unlock()
		return err
	}

	// Snapshot the registry and release the lock before fan-out, so a
	// callback may toggle, subscribe or unsubscribe without deadlocking.
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	s.notify(subs, len(updated))
	return nil
}

// Subscribe registers a callback and immediately invokes it once with
// the current count, so subscribers don't need a separate initial
// fetch. The returned function deregisters the callback.
func (s *Service) Subscribe(fn Callback) func() {
	sub := &subscriber{fn: fn}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	count := len(s.Favorites())
	s.mu.Unlock()

	s.invoke(sub, count)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subscribers {
			if candidate == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// notify runs the snapshotted subscribers synchronously in registration
// order and then makes a single best-effort broadcast attempt.
func (s *Service) notify(subs []*subscriber, count int) {
	for _, sub := range subs {
		s.invoke(sub, count)
	}

	if err := s.broadcaster.Broadcast(count); err != nil {
		s.logger.Warn("Favorites broadcast failed: %v", err)
	}
}

// invoke calls one subscriber, isolating a panicking callback so the
// remaining subscribers still run.
func (s *Service) invoke(sub *subscriber, count int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Favorites subscriber panicked: %v", r)
		}
	}()
	sub.fn(count)
}
