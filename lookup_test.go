package handranks

import (
	"os"
	"strings"
	"testing"
)

// TestLookupScenarios builds both tables from scratch (tens of
// millions of rows) and exercises the library's public entry point
// end to end. Expensive -- skipped unless $TESTS contains "e2e" or
// "all", the same convention the other exhaustive tests in this
// package are gated with.
func TestLookupScenarios(t *testing.T) {
	if s := os.Getenv("TESTS"); !strings.Contains(s, "e2e") && !strings.Contains(s, "all") {
		t.Skip("skipping: $TESTS does not contain 'e2e' or 'all'")
	}
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	tests := []struct {
		hand string
		cat  uint32
	}{
		{"3c5c8cTcJsKsAs", 1},  // high card
		{"6h7hXc9hTh2dQh", 9},  // joker fills 8h: straight flush
		{"JhJcJdJsXh2dQh", 10}, // five of a kind
		{"XcXdXhXs2s5h", 10},   // four jokers promote a pair
		{"Xc7s8s9cTd2d9h", 5},  // joker fills 6 or J: straight
		{"Xc3d8h5cAd9sJh", 2},  // joker pairs the ace: one pair
	}
	for _, test := range tests {
		cards, err := StrToCards(test.hand)
		if err != nil {
			t.Fatalf("%s: StrToCards: %v", test.hand, err)
		}
		code, err := Lookup(cards)
		if err != nil {
			t.Fatalf("%s: Lookup: %v", test.hand, err)
		}
		if got := ToHand(code); got != test.cat {
			t.Errorf("%s: category = %d (%s), want %d", test.hand, got, CategoryName(code), test.cat)
		}
	}
}

func TestLookupRejectsBadHandSize(t *testing.T) {
	cards, err := StrToCards("2s5h9d")
	if err != nil {
		t.Fatalf("StrToCards: %v", err)
	}
	if _, err := Lookup(cards); err == nil {
		t.Error("Lookup with 3 cards: expected error, got nil")
	}
}

func TestToHandAndCategoryName(t *testing.T) {
	code := tableCode(StraightFlush)
	if ToHand(code) != 9 {
		t.Errorf("ToHand = %d, want 9", ToHand(code))
	}
	if name := CategoryName(code); name != "StraightFlush" {
		t.Errorf("CategoryName = %q, want StraightFlush", name)
	}
}
