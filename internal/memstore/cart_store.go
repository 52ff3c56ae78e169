// Package memstore provides the process-local store for per-identity cart
// lines and checkout flags. State is intentionally volatile: carts do not
// survive a restart and are not shared across instances. One coarse mutex
// guards both maps; operations are short and never block on I/O, so finer
// locking buys nothing here.
package memstore

import (
	"sync"

	"github.com/minimart/storefront/internal/core/domain"
)

type CartStore struct {
	mu         sync.Mutex
	carts      map[string][]domain.CartLine
	checkedOut map[string]bool
}

func NewCartStore() *CartStore {
	return &CartStore{
		carts:      make(map[string][]domain.CartLine),
		checkedOut: make(map[string]bool),
	}
}

func (s *CartStore) Append(username string, line domain.CartLine) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[username] = append(s.carts[username], line)
	return cloneLines(s.carts[username])
}

func (s *CartStore) Lines(username string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.carts[username])
}

func (s *CartStore) RemoveFirst(username string, itemID int) (domain.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[username]
	for i, line := range lines {
		if line.ItemID == itemID {
			s.carts[username] = append(lines[:i:i], lines[i+1:]...)
			return line, true
		}
	}
	return domain.CartLine{}, false
}

func (s *CartStore) Drain(username string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.carts[username]
	delete(s.carts, username)
	return cloneLines(drained)
}

func (s *CartStore) SetCheckedOut(username string, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if done {
		s.checkedOut[username] = true
	} else {
		delete(s.checkedOut, username)
	}
}

func (s *CartStore) CheckedOut(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkedOut[username]
}

// cloneLines copies so callers never alias the map's backing array. Always
// returns a non-nil slice: an absent cart is an empty cart.
func cloneLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
