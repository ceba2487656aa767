/*
Package fleet owns the scooter inventory: which scooters exist, what they
charge per minute, and whether they are currently rented out.

PURPOSE:
  The rental core never touches the scooter list directly. It resolves
  scooters through the Directory interface and toggles their rented flag;
  inventory bookkeeping (add, remove, uniqueness) stays here.

INVARIANTS:
  - Scooter ids are unique and non-blank.
  - Price per minute is strictly positive, validated at creation, so every
    rental captured from a scooter carries a positive rate.
  - A scooter cannot be removed while rented out.

CONCURRENCY:
  The Rented flag is owned by the inventory and only changes through
  SetRented, under the same lock that guards Remove's rented check and
  every read. Lookups return detached copies, so no caller ever holds a
  pointer into the guarded state.

SEE ALSO:
  - rental/company.go: the only caller of SetRented
*/
package fleet

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Scooter is a rentable unit. The Rented flag mirrors the rental ledger:
// it is true iff an open rental record exists for this scooter.
type Scooter struct {
	ID             string
	PricePerMinute decimal.Decimal
	Rented         bool
}

// Directory is the lookup contract the rental core depends on.
type Directory interface {
	// ByID resolves a scooter. Fails with ErrInvalidID for blank ids
	// (checked before existence) and ErrScooterNotFound for unknown ids.
	ByID(id string) (*Scooter, error)

	// Available returns every scooter not currently rented out.
	// Fails with ErrNoScootersAvailable when the set is empty.
	Available() ([]*Scooter, error)

	// SetRented flips a scooter's rented flag.
	// Fails with ErrScooterNotFound for unknown ids.
	SetRented(id string, rented bool) error
}

// =============================================================================
// INVENTORY - In-memory Directory with full CRUD
// =============================================================================

// Inventory is the in-memory Directory implementation.
type Inventory struct {
	mu       sync.RWMutex
	scooters []*Scooter
}

// NewInventory creates an inventory, optionally seeded with existing scooters.
// Seed scooters are copied in.
func NewInventory(seed ...*Scooter) *Inventory {
	inv := &Inventory{}
	for _, s := range seed {
		cp := *s
		inv.scooters = append(inv.scooters, &cp)
	}
	return inv
}

// Add registers a new scooter.
func (v *Inventory) Add(id string, pricePerMinute decimal.Decimal) error {
	if err := validateID(id); err != nil {
		return err
	}
	if !pricePerMinute.IsPositive() {
		return &InvalidPriceError{Price: pricePerMinute}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.findLocked(id) != nil {
		return &DuplicateIDError{ID: id}
	}
	v.scooters = append(v.scooters, &Scooter{ID: id, PricePerMinute: pricePerMinute})
	return nil
}

// Remove deletes a scooter. Rented scooters cannot be removed.
func (v *Inventory) Remove(id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for i, s := range v.scooters {
		if s.ID != id {
			continue
		}
		if s.Rented {
			return &RentedOutError{ID: id}
		}
		v.scooters = append(v.scooters[:i], v.scooters[i+1:]...)
		return nil
	}
	return &NotFoundError{ID: id}
}

// SetRented flips the rented flag of an existing scooter.
func (v *Inventory) SetRented(id string, rented bool) error {
	if err := validateID(id); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.findLocked(id)
	if s == nil {
		return &NotFoundError{ID: id}
	}
	s.Rented = rented
	return nil
}

// ByID resolves a scooter by id. The returned scooter is a copy.
func (v *Inventory) ByID(id string) (*Scooter, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	if s := v.findLocked(id); s != nil {
		cp := *s
		return &cp, nil
	}
	return nil, &NotFoundError{ID: id}
}

// Available returns copies of all scooters whose Rented flag is false.
func (v *Inventory) Available() ([]*Scooter, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var available []*Scooter
	for _, s := range v.scooters {
		if !s.Rented {
			cp := *s
			available = append(available, &cp)
		}
	}
	if len(available) == 0 {
		return nil, ErrNoScootersAvailable
	}
	return available, nil
}

// All returns copies of every scooter, rented or not, in insertion order.
func (v *Inventory) All() []*Scooter {
	v.mu.RLock()
	defer v.mu.RUnlock()

	all := make([]*Scooter, len(v.scooters))
	for i, s := range v.scooters {
		cp := *s
		all[i] = &cp
	}
	return all
}

func (v *Inventory) findLocked(id string) *Scooter {
	for _, s := range v.scooters {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	return nil
}
