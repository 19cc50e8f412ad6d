package selector

import (
	"testing"

	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
)

func testItem(id string, domain itembank.Domain, a, b float64) itembank.Item {
	return itembank.Item{
		ID:          id,
		Domain:      domain,
		Prompt:      "?",
		Options:     []string{"w", "x", "y", "z"},
		AnswerIndex: 0,
		Params:      irt.Params{Discrimination: a, Difficulty: b, Guessing: 0.25},
	}
}

func mustBank(t *testing.T, items ...itembank.Item) *itembank.Bank {
	t.Helper()
	bank, err := itembank.NewBank(items)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	return bank
}

func TestNextItem_MaxInformation(t *testing.T) {
	// At theta=0 the item with difficulty nearest 0 (and equal a) carries
	// the most information.
	bank := mustBank(t,
		testItem("easy", itembank.DomainArithmetic, 1.5, -2),
		testItem("mid", itembank.DomainArithmetic, 1.5, 0.1),
		testItem("hard", itembank.DomainArithmetic, 1.5, 2.5),
	)

	got, ok := NextItem(bank, Request{Theta: 0})
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.ID != "mid" {
		t.Errorf("selected %s, want mid", got.ID)
	}

	// At high theta the hard item becomes the informative one.
	got, _ = NextItem(bank, Request{Theta: 2.5})
	if got.ID != "hard" {
		t.Errorf("selected %s at theta=2.5, want hard", got.ID)
	}
}

func TestNextItem_Deterministic(t *testing.T) {
	bank := mustBank(t,
		testItem("a-1", itembank.DomainArithmetic, 1.2, 0.3),
		testItem("a-2", itembank.DomainFractions, 1.2, -0.4),
		testItem("a-3", itembank.DomainGeometry, 0.9, 0.1),
	)
	req := Request{Theta: 0.2}

	first, ok := NextItem(bank, req)
	if !ok {
		t.Fatal("expected a selection")
	}
	for i := 0; i < 10; i++ {
		again, _ := NextItem(bank, req)
		if again.ID != first.ID {
			t.Fatalf("selection not deterministic: %s then %s", first.ID, again.ID)
		}
	}
}

func TestNextItem_TieBreak(t *testing.T) {
	// Identical parameters: identical information at any theta. Higher
	// discrimination wins; with that equal too, the lower id wins.
	bank := mustBank(t,
		testItem("b-item", itembank.DomainData, 1.5, 0),
		testItem("a-item", itembank.DomainData, 1.5, 0),
	)
	got, _ := NextItem(bank, Request{Theta: 0})
	if got.ID != "a-item" {
		t.Errorf("tie broke to %s, want a-item (lowest id)", got.ID)
	}

	bank = mustBank(t,
		testItem("a-weak", itembank.DomainData, 1.0, 1),
		testItem("b-sharp", itembank.DomainData, 1.8, -1),
	)
	got, _ = NextItem(bank, Request{Theta: -1})
	if got.ID != "b-sharp" {
		t.Errorf("selected %s at theta=-1, want b-sharp (peaked at its difficulty)", got.ID)
	}
}

func TestNextItem_ExcludesAdministered(t *testing.T) {
	bank := mustBank(t,
		testItem("one", itembank.DomainData, 1.5, 0),
		testItem("two", itembank.DomainData, 1.2, 0),
		testItem("three", itembank.DomainData, 0.9, 0),
	)

	exclude := make(map[string]bool)
	var order []string
	for {
		it, ok := NextItem(bank, Request{Exclude: exclude, Theta: 0})
		if !ok {
			break
		}
		if exclude[it.ID] {
			t.Fatalf("item %s selected twice", it.ID)
		}
		exclude[it.ID] = true
		order = append(order, it.ID)
	}

	if len(order) != 3 {
		t.Fatalf("administered %d items, want 3 then exhaustion", len(order))
	}
}

func TestNextItem_ExhaustionReturnsFalse(t *testing.T) {
	bank := mustBank(t, testItem("only", itembank.DomainData, 1.5, 0))
	_, ok := NextItem(bank, Request{Exclude: map[string]bool{"only": true}, Theta: 0})
	if ok {
		t.Error("expected exhaustion, got a selection")
	}
}

func TestNextItem_SkipsInvalidParameters(t *testing.T) {
	broken := testItem("broken", itembank.DomainData, -1, 0) // a < 0
	fine := testItem("fine", itembank.DomainData, 0.8, 0)
	bank := mustBank(t, broken, fine)

	got, ok := NextItem(bank, Request{Theta: 0})
	if !ok || got.ID != "fine" {
		t.Errorf("selected %v (ok=%v), want fine", got.ID, ok)
	}

	bank = mustBank(t, broken)
	if _, ok := NextItem(bank, Request{Theta: 0}); ok {
		t.Error("bank with only invalid items must report exhaustion")
	}
}

func TestNextItem_QuotasRestrictFirst(t *testing.T) {
	bank := mustBank(t,
		testItem("arith-1", itembank.DomainArithmetic, 2.0, 0),
		testItem("frac-1", itembank.DomainFractions, 1.0, 0),
		testItem("frac-2", itembank.DomainFractions, 0.8, 0.5),
	)

	quotas := map[itembank.Domain]int{itembank.DomainFractions: 1}

	// Fractions quota unmet: the stronger arithmetic item must wait.
	got, _ := NextItem(bank, Request{
		Theta:  0,
		Quotas: quotas,
		Counts: map[itembank.Domain]int{},
	})
	if got.Domain != itembank.DomainFractions {
		t.Errorf("selected domain %s, want fractions while quota unmet", got.Domain)
	}

	// Quota met: selection frees up and information wins.
	got, _ = NextItem(bank, Request{
		Theta:  0,
		Quotas: quotas,
		Counts: map[itembank.Domain]int{itembank.DomainFractions: 1},
	})
	if got.ID != "arith-1" {
		t.Errorf("selected %s after quota met, want arith-1", got.ID)
	}
}

func TestNextItem_QuotaDomainExhaustedFallsBack(t *testing.T) {
	bank := mustBank(t,
		testItem("arith-1", itembank.DomainArithmetic, 1.0, 0),
	)

	// Fractions quota can never be met: the bank has no fractions items.
	got, ok := NextItem(bank, Request{
		Theta:  0,
		Quotas: map[itembank.Domain]int{itembank.DomainFractions: 2},
		Counts: map[itembank.Domain]int{},
	})
	if !ok {
		t.Fatal("expected fallback to free pool, got exhaustion")
	}
	if got.ID != "arith-1" {
		t.Errorf("selected %s, want arith-1", got.ID)
	}
}

func TestFirstItem_NeutralPriorAndSeedDomain(t *testing.T) {
	bank := mustBank(t,
		testItem("arith-mid", itembank.DomainArithmetic, 1.5, 0),
		testItem("geo-mid", itembank.DomainGeometry, 1.4, 0),
	)

	got, ok := FirstItem(bank, nil, "")
	if !ok || got.ID != "arith-mid" {
		t.Errorf("first item = %v, want arith-mid (max info at theta=0)", got.ID)
	}

	got, ok = FirstItem(bank, nil, itembank.DomainGeometry)
	if !ok || got.ID != "geo-mid" {
		t.Errorf("seeded first item = %v, want geo-mid", got.ID)
	}
}
