package itembank

import (
	"strings"
	"testing"

	"github.com/abhisek/gauge/internal/irt"
)

func validItem(id string, domain Domain) Item {
	return Item{
		ID:          id,
		Domain:      domain,
		Prompt:      "What is 2 + 2?",
		Options:     []string{"3", "4", "5", "6"},
		AnswerIndex: 1,
		Params:      irt.Params{Discrimination: 1, Difficulty: 0, Guessing: 0.25},
	}
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Item)
		wantErr string
	}{
		{"valid", func(it *Item) {}, ""},
		{"empty id", func(it *Item) { it.ID = "" }, "empty id"},
		{"bad domain", func(it *Item) { it.Domain = "history" }, "unknown domain"},
		{"empty prompt", func(it *Item) { it.Prompt = "" }, "empty prompt"},
		{"one option", func(it *Item) { it.Options = []string{"4"} }, "at least 2 options"},
		{"answer out of range", func(it *Item) { it.AnswerIndex = 4 }, "out of range"},
		{"negative answer index", func(it *Item) { it.AnswerIndex = -1 }, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validItem("a-1", DomainArithmetic)
			tt.mutate(&it)
			err := it.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestItem_Eligible_InvalidParams(t *testing.T) {
	it := validItem("a-1", DomainArithmetic)
	it.Params.Discrimination = -1
	if it.Eligible() {
		t.Error("item with negative discrimination must not be eligible")
	}
	if it.Validate() != nil {
		t.Error("content should still validate; only parameters are broken")
	}
}

func TestNewBank_RejectsDuplicates(t *testing.T) {
	_, err := NewBank([]Item{
		validItem("a-1", DomainArithmetic),
		validItem("a-1", DomainFractions),
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("err = %v, want duplicate id error", err)
	}
}

func TestBank_DeterministicOrder(t *testing.T) {
	bank, err := NewBank([]Item{
		validItem("c-3", DomainData),
		validItem("a-1", DomainArithmetic),
		validItem("b-2", DomainFractions),
	})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	got := bank.Items()
	want := []string{"a-1", "b-2", "c-3"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Items()[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSeedBank(t *testing.T) {
	bank, err := SeedBank()
	if err != nil {
		t.Fatalf("SeedBank: %v", err)
	}

	counts := bank.DomainCounts()
	for _, d := range AllDomains() {
		if counts[d] < 2 {
			t.Errorf("domain %s has %d eligible items, want >= 2", d, counts[d])
		}
	}

	for _, it := range bank.Items() {
		if !it.Eligible() {
			t.Errorf("seed item %s is not eligible", it.ID)
		}
		if it.Calibration.Source != SourceEmpirical || it.Calibration.SampleSize == 0 {
			t.Errorf("seed item %s missing calibration metadata", it.ID)
		}
	}
}

func TestParseBank_SchemaRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not an object", `[1, 2]`},
		{"missing items", `{}`},
		{"unknown domain", `{"items":[{"id":"x","domain":"chemistry","prompt":"?","options":["a","b"],"answer_index":0}]}`},
		{"missing prompt", `{"items":[{"id":"x","domain":"data","options":["a","b"],"answer_index":0}]}`},
		{"single option", `{"items":[{"id":"x","domain":"data","prompt":"?","options":["a"],"answer_index":0}]}`},
		{"extra field", `{"items":[{"id":"x","domain":"data","prompt":"?","options":["a","b"],"answer_index":0,"hint":"no"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBank([]byte(tt.raw)); err == nil {
				t.Error("ParseBank accepted malformed input")
			}
		})
	}
}

func TestParseBank_UncalibratedItem(t *testing.T) {
	raw := `{"items":[{"id":"x","domain":"data","prompt":"?","options":["a","b","c","d"],"answer_index":3}]}`
	bank, err := ParseBank([]byte(raw))
	if err != nil {
		t.Fatalf("ParseBank: %v", err)
	}

	it, ok := bank.Get("x")
	if !ok {
		t.Fatal("item x not found")
	}
	if it.Calibration.Source != SourceDefault {
		t.Errorf("source = %s, want %s", it.Calibration.Source, SourceDefault)
	}
	if it.Params.Valid() {
		t.Error("uncalibrated item should carry invalid (zero) parameters until resolved")
	}
}
