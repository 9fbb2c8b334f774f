package handranks

import "fmt"

// Lookup is the package's single entry point: it classifies a 5, 6 or
// 7 card hand (which may include jokers) and returns its rank code.
// The code's top bits are its category (see [ToHand]); within a
// category, a higher code is a better hand. [Init] must have run
// first (directly, or via [Standard]/[WithJokers]) -- Lookup does not
// build tables on demand, since doing so from an arbitrary goroutine
// the first time a hand happens to need one is a poor way to absorb a
// multi-minute build.
func Lookup(cards []Card) (uint32, error) {
	switch n := len(cards); n {
	case 5, 6, 7:
	default:
		return 0, fmt.Errorf("%w: %d cards", ErrInvalidHandSize, n)
	}
	hasJoker := false
	for _, c := range cards {
		if c.IsJoker() {
			hasJoker = true
			break
		}
	}
	if hasJoker {
		if withJokers == nil {
			return 0, fmt.Errorf("%w: joker table not initialized", ErrInternalImpossible)
		}
		return withJokers.Lookup(cards), nil
	}
	if standard == nil {
		return 0, fmt.Errorf("%w: standard table not initialized", ErrInternalImpossible)
	}
	return standard.Lookup(cards), nil
}

// ToHand returns the hand category (1 high card through 9 straight
// flush, 10 for a joker-made five of a kind) encoded in a rank code
// returned by [Lookup].
func ToHand(rankCode uint32) uint32 {
	return rankCode >> 12
}

// Category names, indexed by [ToHand]'s return value (index 0 unused).
var categoryNames = [...]string{
	"", "HighCard", "Pair", "TwoPair", "ThreeOfAKind", "Straight",
	"Flush", "FullHouse", "FourOfAKind", "StraightFlush", "FiveOfAKind",
}

// CategoryName names the hand category a [Lookup] rank code falls
// into, e.g. "StraightFlush".
func CategoryName(rankCode uint32) string {
	if cat := ToHand(rankCode); int(cat) < len(categoryNames) {
		return categoryNames[cat]
	}
	return "Unknown"
}
