package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store owns the in-process cart state, one cart per session. Every
// mutation goes through it; the mutex serializes concurrent handlers
// even though each session has a single logical writer.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore builds an empty session cart registry.
func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

func (s *Store) cart(sessionID string) *Cart {
	if existing, ok := s.carts[sessionID]; ok {
		return existing
	}
	created := &Cart{}
	s.carts[sessionID] = created
	return created
}

// AddLine merges the quantity into the session's existing line for the
// product, or appends a new line at the end. Insertion order is kept.
func (s *Store) AddLine(sessionID string, productID uuid.UUID, qty int) Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += qty
			return c.Lines[i]
		}
	}

	line := Line{ID: uuid.New(), ProductID: productID, Quantity: qty}
	c.Lines = append(c.Lines, line)
	return line
}

// UpdateLine sets the quantity on the line with the given id. It
// reports whether the line exists; the caller validates the quantity
// before calling, so the store never sees one below 1.
func (s *Store) UpdateLine(sessionID string, lineID uuid.UUID, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity = qty
			return true
		}
	}
	return false
}

// RemoveLine deletes the line with the given id, reporting whether a
// line was removed. A missing id leaves the cart untouched.
func (s *Store) RemoveLine(sessionID string, lineID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the session's lines. Idempotent. Coupon state is kept:
// it is only ever mutated by a successful validation, and a zero
// subtotal makes its discount zero anyway.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(sessionID).Lines = nil
}

// SetCoupon records a successfully validated coupon for the session.
func (s *Store) SetCoupon(sessionID, code string, rate decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.Coupon = CouponState{Applied: true, Code: code, Rate: rate}
}

// Get returns a copy of the session's cart, safe to read without the
// store lock.
func (s *Store) Get(sessionID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	copied := Cart{Coupon: c.Coupon}
	if len(c.Lines) > 0 {
		copied.Lines = make([]Line, len(c.Lines))
		copy(copied.Lines, c.Lines)
	}
	return copied
}
