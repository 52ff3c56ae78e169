package memstore

import (
	"sync"
	"testing"

	"github.com/minimart/storefront/internal/core/domain"
)

func TestCartStore_AppendPreservesOrderAndDuplicates(t *testing.T) {
	s := NewCartStore()

	s.Append("alice", domain.CartLine{ItemID: 1, Quantity: 2})
	s.Append("alice", domain.CartLine{ItemID: 3, Quantity: 1})
	cart := s.Append("alice", domain.CartLine{ItemID: 1, Quantity: 5})

	if len(cart) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(cart))
	}
	if cart[0] != (domain.CartLine{ItemID: 1, Quantity: 2}) ||
		cart[1] != (domain.CartLine{ItemID: 3, Quantity: 1}) ||
		cart[2] != (domain.CartLine{ItemID: 1, Quantity: 5}) {
		t.Fatalf("unexpected cart contents: %+v", cart)
	}
}

func TestCartStore_LinesEmptyIsNotNil(t *testing.T) {
	s := NewCartStore()
	lines := s.Lines("nobody")
	if lines == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestCartStore_LinesReturnsCopy(t *testing.T) {
	s := NewCartStore()
	s.Append("alice", domain.CartLine{ItemID: 1, Quantity: 1})

	lines := s.Lines("alice")
	lines[0].Quantity = 99

	if got := s.Lines("alice")[0].Quantity; got != 1 {
		t.Fatalf("mutating the returned slice leaked into the store: quantity=%d", got)
	}
}

func TestCartStore_RemoveFirstMatchOnly(t *testing.T) {
	s := NewCartStore()
	s.Append("alice", domain.CartLine{ItemID: 1, Quantity: 2})
	s.Append("alice", domain.CartLine{ItemID: 2, Quantity: 1})
	s.Append("alice", domain.CartLine{ItemID: 1, Quantity: 5})

	removed, ok := s.RemoveFirst("alice", 1)
	if !ok {
		t.Fatalf("expected a removal")
	}
	if removed.Quantity != 2 {
		t.Fatalf("expected first matching line removed, got %+v", removed)
	}

	rest := s.Lines("alice")
	if len(rest) != 2 || rest[0].ItemID != 2 || rest[1].ItemID != 1 {
		t.Fatalf("unexpected remainder: %+v", rest)
	}
}

func TestCartStore_RemoveFirstNoMatch(t *testing.T) {
	s := NewCartStore()
	s.Append("alice", domain.CartLine{ItemID: 1, Quantity: 2})

	if _, ok := s.RemoveFirst("alice", 42); ok {
		t.Fatalf("removal reported for absent item")
	}
	if _, ok := s.RemoveFirst("nobody", 1); ok {
		t.Fatalf("removal reported for absent identity")
	}
	if len(s.Lines("alice")) != 1 {
		t.Fatalf("failed removal mutated the cart")
	}
}

func TestCartStore_Drain(t *testing.T) {
	s := NewCartStore()
	s.Append("alice", domain.CartLine{ItemID: 1, Quantity: 2})
	s.Append("alice", domain.CartLine{ItemID: 2, Quantity: 3})

	drained := s.Drain("alice")
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained lines, got %d", len(drained))
	}
	if len(s.Lines("alice")) != 0 {
		t.Fatalf("cart not empty after drain")
	}
	if len(s.Drain("alice")) != 0 {
		t.Fatalf("second drain returned lines")
	}
}

func TestCartStore_CheckedOutFlag(t *testing.T) {
	s := NewCartStore()
	if s.CheckedOut("alice") {
		t.Fatalf("fresh identity reported checked out")
	}
	s.SetCheckedOut("alice", true)
	if !s.CheckedOut("alice") {
		t.Fatalf("flag not set")
	}
	if s.CheckedOut("bob") {
		t.Fatalf("flag leaked across identities")
	}
	s.SetCheckedOut("alice", false)
	if s.CheckedOut("alice") {
		t.Fatalf("flag not cleared")
	}
}

func TestCartStore_ConcurrentIdentitiesDoNotInterleave(t *testing.T) {
	s := NewCartStore()
	const perUser = 200

	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			id := 1
			if user == "bob" {
				id = 2
			}
			for i := 0; i < perUser; i++ {
				s.Append(user, domain.CartLine{ItemID: id, Quantity: i + 1})
			}
		}(user)
	}
	wg.Wait()

	for user, id := range map[string]int{"alice": 1, "bob": 2} {
		lines := s.Lines(user)
		if len(lines) != perUser {
			t.Fatalf("%s: expected %d lines, got %d", user, perUser, len(lines))
		}
		for i, line := range lines {
			if line.ItemID != id {
				t.Fatalf("%s: foreign line %+v at index %d", user, line, i)
			}
			if line.Quantity != i+1 {
				t.Fatalf("%s: order lost at index %d: %+v", user, i, line)
			}
		}
	}
}

func TestCartStore_ConcurrentSameIdentityKeepsStructure(t *testing.T) {
	s := NewCartStore()
	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Append("alice", domain.CartLine{ItemID: w + 1, Quantity: 1})
				s.Lines("alice")
			}
		}(w)
	}
	wg.Wait()

	lines := s.Lines("alice")
	if len(lines) != writers*perWriter {
		t.Fatalf("expected %d lines, got %d", writers*perWriter, len(lines))
	}
	for _, line := range lines {
		if line.ItemID < 1 || line.ItemID > writers || line.Quantity != 1 {
			t.Fatalf("corrupted line: %+v", line)
		}
	}
}
