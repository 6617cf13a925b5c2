package devserver

import (
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/Makepad-fr/tada/internal/model"
)

// memStore keeps items in insertion order behind a mutex.
type memStore struct {
	mu     sync.RWMutex
	items  []model.Item
	nextID int64
	now    func() time.Time
}

func newMemStore(seed []model.Item) *memStore {
	s := &memStore{items: slices.Clone(seed), nextID: 1, now: time.Now}
	for _, it := range seed {
		if n, err := strconv.ParseInt(it.ID.String(), 10, 64); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

func (s *memStore) list() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *memStore) create(title string) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	it := model.Item{ID: model.NumericID(s.nextID), Title: title, CreatedAt: &now}
	s.nextID++
	s.items = append(s.items, it)
	return it
}

// update replaces title and completion; id and createdAt are kept.
func (s *memStore) update(id string, in model.Item) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	s.items[i].Title = in.Title
	s.items[i].IsCompleted = in.IsCompleted
	return s.items[i], true
}

func (s *memStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// index matches on the textual id so /items/7 finds a numeric 7.
func (s *memStore) index(id string) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID.String() == id })
}
