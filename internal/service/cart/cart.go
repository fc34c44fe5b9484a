package cart

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
)

// Cart is the ordered collection of entries for one session.
// It starts Empty, becomes NonEmpty on Add and returns to Empty on Checkout.
type Cart struct {
	mu      sync.Mutex
	entries []domain.CartEntry
	now     func() time.Time
}

// Receipt summarizes a completed checkout.
type Receipt struct {
	Items       int             `json:"items"`
	Total       decimal.Decimal `json:"total"`
	CompletedAt time.Time       `json:"completedAt"`
}

// Snapshot is the cart contents and total read under a single lock.
type Snapshot struct {
	Entries []domain.CartEntry
	Total   decimal.Decimal
}

// New returns an empty cart. now stamps entries and receipts; nil means time.Now.
func New(now func() time.Time) *Cart {
	if now == nil {
		now = time.Now
	}
	return &Cart{now: now}
}

// Add appends a copy of listing. Duplicates are kept as separate entries.
func (c *Cart) Add(listing domain.GameListing) domain.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := domain.CartEntry{Listing: listing, AddedAt: c.now().UTC()}
	c.entries = append(c.entries, entry)
	return entry
}

// Total sums the effective prices of all entries on every call.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sum(c.entries)
}

// Checkout clears the cart and reports what was purchased. Checking out an
// empty cart succeeds with a zero receipt.
func (c *Cart) Checkout() Receipt {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := Receipt{
		Items:       len(c.entries),
		Total:       sum(c.entries),
		CompletedAt: c.now().UTC(),
	}
	c.entries = nil
	return r
}

// Snapshot returns a copy of the entries together with their total, so callers
// never see a total that disagrees with the entries.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]domain.CartEntry, len(c.entries))
	copy(entries, c.entries)
	return Snapshot{Entries: entries, Total: sum(c.entries)}
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// Len is the number of entries, duplicates included.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Entries returns a copy of the entries in insertion order.
func (c *Cart) Entries() []domain.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func sum(entries []domain.CartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Listing.EffectivePrice())
	}
	return total
}
