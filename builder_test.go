package handranks

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestTableCodeCategoryBoundaries(t *testing.T) {
	tests := []struct {
		rank EvalRank
		cat  uint32
	}{
		{1, 9},            // best possible: royal flush
		{StraightFlush, 9}, // worst straight flush
		{StraightFlush + 1, 8},
		{FourOfAKind, 8},
		{FourOfAKind + 1, 7},
		{FullHouse, 7},
		{FullHouse + 1, 6},
		{Flush, 6},
		{Flush + 1, 5},
		{Straight, 5},
		{Straight + 1, 4},
		{ThreeOfAKind, 4},
		{ThreeOfAKind + 1, 3},
		{TwoPair, 3},
		{TwoPair + 1, 2},
		{Pair, 2},
		{Pair + 1, 1},
		{Nothing, 1}, // worst possible: seven-high
	}
	for _, test := range tests {
		code := tableCode(test.rank)
		if got := ToHand(code); got != test.cat {
			t.Errorf("tableCode(%d): category = %d, want %d", test.rank, got, test.cat)
		}
	}
}

func TestTableCodeOrdinalAscendsWithQuality(t *testing.T) {
	// Within a category, a better (lower EvalRank) hand must get a
	// higher ordinal, since the table defines "better" as "larger
	// code" for a fixed category.
	worst := tableCode(FourOfAKind)
	best := tableCode(StraightFlush + 1) // best four-of-a-kind
	if best <= worst {
		t.Errorf("tableCode ordinal: best=%d, worst=%d, want best > worst", best, worst)
	}
}

func TestCategoryNumberMatchesFixed(t *testing.T) {
	for _, fixed := range []EvalRank{StraightFlush, FourOfAKind, FullHouse, Flush, Straight, ThreeOfAKind, TwoPair, Pair, Nothing} {
		n := categoryNumber(fixed)
		if n < 1 || n > 9 {
			t.Errorf("categoryNumber(%v) = %d, out of [1,9]", fixed, n)
		}
	}
}

func TestNewBuilderSizesByDeck(t *testing.T) {
	std := NewBuilder(zerolog.Nop(), StandardDeckSize, StandardTerminal)
	if len(std.tbl) != standardTableCount {
		t.Errorf("standard builder table size = %d, want %d", len(std.tbl), standardTableCount)
	}
	jkr := NewBuilder(zerolog.Nop(), JokerDeckSize, StandardTerminal)
	if len(jkr.tbl) != jokerTableCount {
		t.Errorf("joker builder table size = %d, want %d", len(jkr.tbl), jokerTableCount)
	}
}
