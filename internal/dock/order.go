package dock

import "github.com/google/uuid"

// ItemID identifies one dock entry for its whole lifetime.
type ItemID string

// NewItemID mints a fresh identifier. Identifiers are never reused.
func NewItemID() ItemID {
	return ItemID(uuid.NewString())
}

// Order is the canonical left-to-right sequence of dock items.
// It never holds the same identifier twice.
type Order struct {
	ids []ItemID
}

// NewOrder builds an Order from ids, dropping repeats (first occurrence wins).
func NewOrder(ids []ItemID) *Order {
	o := &Order{ids: make([]ItemID, 0, len(ids))}
	seen := make(map[ItemID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		o.ids = append(o.ids, id)
	}
	return o
}

// Len returns the number of items.
func (o *Order) Len() int {
	return len(o.ids)
}

// IDs returns a copy of the current order.
func (o *Order) IDs() []ItemID {
	out := make([]ItemID, len(o.ids))
	copy(out, o.ids)
	return out
}

// At returns the id at idx.
func (o *Order) At(idx int) (ItemID, bool) {
	if idx < 0 || idx >= len(o.ids) {
		return "", false
	}
	return o.ids[idx], true
}

// Index returns the position of id, or -1.
func (o *Order) Index(id ItemID) int {
	for i, existing := range o.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is in the order.
func (o *Order) Contains(id ItemID) bool {
	return o.Index(id) >= 0
}

// Swap exchanges the items at i and j. Out of range indices are ignored.
func (o *Order) Swap(i, j int) bool {
	if i < 0 || j < 0 || i >= len(o.ids) || j >= len(o.ids) || i == j {
		return false
	}
	o.ids[i], o.ids[j] = o.ids[j], o.ids[i]
	return true
}

// Insert places id at idx. An id already present is removed from its old
// position first; idx is interpreted against the list after that removal and
// clamped to [0, Len()].
func (o *Order) Insert(idx int, id ItemID) {
	o.Remove(id)
	if idx < 0 {
		idx = 0
	}
	if idx > len(o.ids) {
		idx = len(o.ids)
	}
	o.ids = append(o.ids, "")
	copy(o.ids[idx+1:], o.ids[idx:])
	o.ids[idx] = id
}

// Remove deletes id and reports whether it was present.
func (o *Order) Remove(id ItemID) bool {
	idx := o.Index(id)
	if idx < 0 {
		return false
	}
	o.ids = append(o.ids[:idx], o.ids[idx+1:]...)
	return true
}
