package services

import (
	"log"
	"sync"

	"storefront/models"
	"storefront/repositories"
)

// CartStore holds one cart per owner: a mapping from product id to a line
// item plus the derived total. Every mutation recomputes the total from the
// line items before persisting. Persistence failures are logged and the
// in-memory cart keeps working; a lost record only costs the next reload.
type CartStore struct {
	mu    sync.Mutex
	repo  repositories.CartRepository
	carts map[string]models.CartState
}

func NewCartStore(repo repositories.CartRepository) *CartStore {
	return &CartStore{
		repo:  repo,
		carts: map[string]models.CartState{},
	}
}

// load returns the owner's cart, reading the persisted record on first
// access. Callers must hold the lock.
func (s *CartStore) load(owner string) models.CartState {
	if state, ok := s.carts[owner]; ok {
		return state
	}
	state, _ := s.repo.Load(owner)
	s.carts[owner] = state
	return state
}

func (s *CartStore) commit(owner string, state models.CartState) models.CartState {
	state.Total = state.ComputeTotal()
	s.carts[owner] = state
	if err := s.repo.Save(owner, state); err != nil {
		log.Printf("Failed to persist cart for %s: %v", owner, err)
	}
	return state.Clone()
}

// AddItem merges the product into the cart: an existing line item has its
// quantity increased, otherwise a new line item is appended. Quantity is
// validated at the API boundary.
func (s *CartStore) AddItem(owner string, product models.Product, quantity int) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load(owner)
	for i := range state.CartItems {
		if state.CartItems[i].Product.ID == product.ID {
			state.CartItems[i].Quantity += quantity
			return s.commit(owner, state)
		}
	}

	state.CartItems = append(state.CartItems, models.CartItem{Product: product, Quantity: quantity})
	return s.commit(owner, state)
}

// RemoveItem deletes the line item for the product id. Removing an absent
// product is a no-op, not an error.
func (s *CartStore) RemoveItem(owner, productID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load(owner)
	items := []models.CartItem{}
	for _, item := range state.CartItems {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	state.CartItems = items
	return s.commit(owner, state)
}

func (s *CartStore) IncrementQuantity(owner, productID string) models.CartState {
	return s.adjustQuantity(owner, productID, 1)
}

// DecrementQuantity lowers the quantity by one but never below 1; removing
// the last unit is an explicit RemoveItem.
func (s *CartStore) DecrementQuantity(owner, productID string) models.CartState {
	return s.adjustQuantity(owner, productID, -1)
}

func (s *CartStore) adjustQuantity(owner, productID string, delta int) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load(owner)
	for i := range state.CartItems {
		if state.CartItems[i].Product.ID == productID {
			quantity := state.CartItems[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			state.CartItems[i].Quantity = quantity
			return s.commit(owner, state)
		}
	}
	return state.Clone()
}

// Clear empties the cart and removes the persisted record entirely, so a
// later reload starts from the repository's missing-record path.
func (s *CartStore) Clear(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[owner] = models.EmptyCart()
	if err := s.repo.Delete(owner); err != nil {
		log.Printf("Failed to delete cart record for %s: %v", owner, err)
	}
}

// Snapshot returns an immutable copy of the current cart.
func (s *CartStore) Snapshot(owner string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(owner).Clone()
}
