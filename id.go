package handranks

// packCard packs a concrete (non-joker or joker) card into the single
// byte the canonical ID uses for it: the top nibble is rank+1 (1-14,
// so 0 stays free to mean "no card"), the bottom nibble is suit+1
// (1-4) until suit erasure (in [extendID]) zeroes it.
func packCard(c Card) uint32 {
	r, s := c.RankSuit()
	return ((uint32(r) + 1) << 4) + uint32(s) + 1
}

// extendID folds a new card into a partial-hand ID, returning the
// number of cards now encoded and the new canonical ID. The returned
// ID is 0 (with n still correctly reported) if card exactly matches a
// packed card already in id (a card whose suit was erased in id no
// longer matches), or if the resulting hand would hold more than four
// cards of one rank with five or more cards total -- both signal a
// combination that cannot occur in a real hand, not an error.
//
// id packs up to seven cards, one per byte, highest card in the lowest
// byte, with a guaranteed zero byte past the last real card. Folding
// in a card re-derives the full set from scratch (id plus the new
// card), re-applies suit erasure, and re-sorts -- so the same set of
// cards always canonicalizes to the same id regardless of the order
// they were dealt in.
//
// Suit erasure: with n cards total and j of them jokers, a card's suit
// is erased (its suit nibble zeroed) iff any of:
//  1. the card is itself a joker -- a joker's own suit marking never
//     affects the hand's value, since jokers are wild;
//  2. s[suit]+j < n-2, where s[suit] counts the *non-joker* cards
//     sharing this suit -- jokers count toward every suit's flush
//     potential (they can complete a flush in any suit), so a suit
//     can only matter while its real cards plus the wild cards in
//     hand number at least n-2 (with 7-n cards still to come, that
//     is what a five-card flush needs by the seventh card);
//  3. j = 4 -- four jokers alone can complete a flush in any suit, so
//     no real card's suit can possibly matter.
// Any two hands differing only in suits that don't matter by this
// rule fold to the same id.
func extendID(id int64, card Card) (int, int64) {
	var v [8]uint32 // v[7] is a guaranteed zero: the counting loop below stops on it.
	v[0] = packCard(card)
	for i := 0; i < 6; i++ {
		v[i+1] = uint32((id >> (8 * i)) & 0xff)
	}

	var ranks [16]int
	var suits [5]int
	var jokers int
	var n int
	var dupe bool
	for n = 0; v[n] != 0; n++ {
		rank := (v[n] >> 4) & 0xf
		ranks[rank]++
		if rank == 14 {
			jokers++
		} else {
			suits[v[n]&0xf]++
		}
		if n != 0 && v[0] == v[n] {
			dupe = true
		}
	}
	if dupe {
		return n, 0
	}
	if n > 4 {
		for rank := 1; rank < 16; rank++ {
			if ranks[rank] > 4 {
				return n, 0
			}
		}
	}

	for i := 0; i < n; i++ {
		rank := (v[i] >> 4) & 0xf
		if rank == 14 {
			v[i] &= 0xf0
			continue
		}
		if suit := v[i] & 0xf; jokers == 4 || suits[suit]+jokers < n-2 {
			v[i] &= 0xf0
		}
	}

	// Bose-Nelson sort network for 7 elements, descending by value.
	swap := func(i, j int) {
		if v[i] < v[j] {
			v[i], v[j] = v[j], v[i]
		}
	}
	swap(0, 4)
	swap(1, 5)
	swap(2, 6)
	swap(0, 2)
	swap(1, 3)
	swap(4, 6)
	swap(2, 4)
	swap(3, 5)
	swap(0, 1)
	swap(2, 3)
	swap(4, 5)
	swap(1, 4)
	swap(3, 6)
	swap(1, 2)
	swap(3, 4)
	swap(5, 6)

	return n, int64(v[0]) |
		int64(v[1])<<8 |
		int64(v[2])<<16 |
		int64(v[3])<<24 |
		int64(v[4])<<32 |
		int64(v[5])<<40 |
		int64(v[6])<<48
}

// CanonicalID folds cards one at a time into a canonical partial-hand
// id, applying the same suit erasure and sorting [Lookup] relies on.
// It is exposed for diagnostics (see cmd/handranks's find subcommand);
// normal lookups never need it directly.
func CanonicalID(cards []Card) (id int64, n int) {
	for _, c := range cards {
		n, id = extendID(id, c)
	}
	return id, n
}

// idCards unpacks id's packed card bytes, in canonical (sorted) order,
// returning the count of cards it encodes (0 for the empty id). A
// suit-erased card unpacks with a zero suit nibble -- its true suit is
// unrecoverable by design; callers that need a concrete, flush-safe
// suit assignment use [reconcileSuits] instead.
func idCards(id int64) (cards [7]uint32, n int) {
	for ; n < 7; n++ {
		b := uint32((id >> (8 * n)) & 0xff)
		if b == 0 {
			break
		}
		cards[n] = b
	}
	return cards, n
}
