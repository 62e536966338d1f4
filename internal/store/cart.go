package store

import (
	"fmt"
	"sync"

	"voltline/internal/domain"
)

// CartLine is a priced cart entry. Prices here are only a display
// convenience; the authoritative snapshot is taken server-side when the
// order is placed.
type CartLine struct {
	ProductID string
	Name      string
	Reference string
	Image     string
	Price     float64
	Quantity  int
}

// CartStore holds the checkout-in-progress state for one session. It is
// an explicit state object handed to its consumers rather than a
// module-level singleton; UI layers react through Subscribe.
type CartStore struct {
	mu    sync.Mutex
	lines []CartLine
	subs  map[int]func()
	next  int
}

func NewCartStore() *CartStore {
	return &CartStore{subs: make(map[int]func())}
}

// Subscribe registers a callback invoked after every mutation. The
// returned function removes the subscription.
func (s *CartStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// AddItem puts a product in the cart, merging quantities when the
// product is already present. Products without a public price cannot be
// carted.
func (s *CartStore) AddItem(p domain.Product, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if !p.Orderable() {
		return fmt.Errorf("product %s cannot be ordered", p.ID)
	}

	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Reference: p.Reference,
			Image:     p.FirstImage(),
			Price:     *p.Price,
			Quantity:  quantity,
		})
	}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
	return nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	if quantity <= 0 {
		s.removeLocked(productID)
	} else {
		for i := range s.lines {
			if s.lines[i].ProductID == productID {
				s.lines[i].Quantity = quantity
				break
			}
		}
	}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

func (s *CartStore) RemoveItem(productID string) {
	s.mu.Lock()
	s.removeLocked(productID)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

func (s *CartStore) removeLocked(productID string) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	s.lines = nil
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs)
}

// Lines returns a copy of the cart in insertion order.
func (s *CartStore) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subtotal float64
	for _, l := range s.lines {
		subtotal += l.Price * float64(l.Quantity)
	}
	return subtotal
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// snapshotSubs must be called with the lock held; callbacks run after
// it is released so a subscriber may call back into the store.
func (s *CartStore) snapshotSubs() []func() {
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
