package handranks

// EvalRank is a Cactus-Kev rank code for a 5-card hand: 1 is the best
// possible hand (royal flush), 7462 is the worst (seven-high).
//
// See: https://archive.is/G6GZg
type EvalRank uint16

// Eval ranks. Each constant is the rank code of the worst hand in its
// category; a hand's category is the smallest of these constants not
// less than its rank code.
const (
	StraightFlush EvalRank = 10
	FourOfAKind   EvalRank = 166
	FullHouse     EvalRank = 322
	Flush         EvalRank = 1599
	Straight      EvalRank = 1609
	ThreeOfAKind  EvalRank = 2467
	TwoPair       EvalRank = 3325
	Pair          EvalRank = 6185
	Nothing       EvalRank = 7462
	HighCard      EvalRank = Nothing
	// Invalid is returned for a card combination [Cactus5] cannot
	// classify (should not occur for five distinct concrete cards).
	Invalid EvalRank = ^EvalRank(0)
)

// Fixed converts a rank code to the worst-in-category constant naming
// its hand category.
func (r EvalRank) Fixed() EvalRank {
	switch {
	case r <= StraightFlush:
		return StraightFlush
	case r <= FourOfAKind:
		return FourOfAKind
	case r <= FullHouse:
		return FullHouse
	case r <= Flush:
		return Flush
	case r <= Straight:
		return Straight
	case r <= ThreeOfAKind:
		return ThreeOfAKind
	case r <= TwoPair:
		return TwoPair
	case r <= Pair:
		return Pair
	}
	return Nothing
}

// String satisfies the [fmt.Stringer] interface, naming r's category.
func (r EvalRank) String() string {
	switch r.Fixed() {
	case StraightFlush:
		return "StraightFlush"
	case FourOfAKind:
		return "FourOfAKind"
	case FullHouse:
		return "FullHouse"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case TwoPair:
		return "TwoPair"
	case Pair:
		return "Pair"
	}
	return "HighCard"
}

func init() {
	flushes, unique5 = cactusMaps()
}

// flushes maps a rank-bit prime product (all five cards share a suit)
// to its rank code.
var flushes map[uint32]EvalRank

// unique5 maps a five-card prime product to its rank code, for hands
// that are not a flush.
var unique5 map[uint32]EvalRank

// Cactus5 classifies five distinct, concrete (non-joker) cards and
// returns their rank code.
func Cactus5(c0, c1, c2, c3, c4 Card) EvalRank {
	k0, k1, k2, k3, k4 := c0.Kev(), c1.Kev(), c2.Kev(), c3.Kev(), c4.Kev()
	if k0&k1&k2&k3&k4&0xf000 != 0 {
		if r, ok := flushes[primeProductBits(uint32(k0|k1|k2|k3|k4)>>16)]; ok {
			return r
		}
		return Invalid
	}
	if r, ok := unique5[primeProduct(k0, k1, k2, k3, k4)]; ok {
		return r
	}
	return Invalid
}

// cactusMaps builds the flush and unique5 maps that classify any
// 5-card combination. The literal Cactus-Kev/Senzee constant arrays
// (flushes[8192], unique5[8192], hash_adjust[512], hash_values[4888])
// are not reproduced here; this builds an equivalent classification by
// enumerating the same rank-bit permutations the original generator
// used to populate them, keyed by prime product instead of by perfect
// hash.
func cactusMaps() (map[uint32]EvalRank, map[uint32]EvalRank) {
	flushes, unique5 := make(map[uint32]EvalRank), make(map[uint32]EvalRank)
	// rank-bit orders for the ten straights, ace-high down to the wheel.
	orders := [10]uint32{
		0x1f00, // ace-high (royal)
		0x0f80, // king-high
		0x07c0, // queen-high
		0x03e0, // jack-high
		0x01f0, // ten-high
		0x00f8, // nine-high
		0x007c, // eight-high
		0x003e, // seven-high
		0x001f, // six-high
		0x100f, // five-high (wheel)
	}
	var r []uint32
	for i, n := 0, uint32(0x1f); i < 1286; i++ { // C(13,5) - 1: every mask after the starting 0x1f
		n = nextBitPermutation(n)
		var straight bool
		for _, j := range orders {
			if n^j == 0 {
				straight = true
				break
			}
		}
		if !straight {
			r = append(r, n)
		}
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	for i := 0; i < len(orders); i++ {
		flushes[primeProductBits(orders[i])] = 1 + EvalRank(i)
		unique5[primeProductBits(orders[i])] = 1 + Flush + EvalRank(i)
	}
	for i := 0; i < len(r); i++ {
		flushes[primeProductBits(r[i])] = 1 + FullHouse + EvalRank(i)
		unique5[primeProductBits(r[i])] = 1 + Pair + EvalRank(i)
	}
	v := [13]int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	kickers := func(z []int, n int) []int {
		k := make([]int, len(z))
		copy(k, z)
		for i := 0; i < len(k); i++ {
			if k[i] == v[n] {
				k = append(k[:i], k[i+1:]...)
				break
			}
		}
		return k
	}
	for i, r3, r2, r1 := 0, 1+Straight, 1+ThreeOfAKind, 1+TwoPair; i < 13; i++ {
		k := kickers(v[:], i)
		for j, n := range k {
			unique5[primes[v[i]]*primes[v[i]]*primes[v[i]]*primes[v[i]]*primes[n]] = 1 + StraightFlush + EvalRank(i*len(k)+j)
			unique5[primes[v[i]]*primes[v[i]]*primes[v[i]]*primes[n]*primes[n]] = 1 + FourOfAKind + EvalRank(i*len(k)+j)
		}
		for j := 0; j < len(k)-1; j++ {
			for l := j + 1; l < len(k); l++ {
				unique5[primes[v[i]]*primes[v[i]]*primes[v[i]]*primes[k[j]]*primes[k[l]]] = r3
				r3++
			}
		}
		for j := i + 1; j < 13; j++ {
			for _, n := range kickers(k, j) {
				unique5[primes[v[i]]*primes[v[i]]*primes[v[j]]*primes[v[j]]*primes[n]] = r2
				r2++
			}
		}
		for l := 0; l < len(k)-2; l++ {
			for m := l + 1; m < len(k)-1; m++ {
				for n := m + 1; n < len(k); n++ {
					unique5[primes[v[i]]*primes[v[i]]*primes[k[l]]*primes[k[m]]*primes[k[n]]] = r1
					r1++
				}
			}
		}
	}
	return flushes, unique5
}

// nextBitPermutation calculates the lexicographical next bit permutation.
//
// See: https://graphics.stanford.edu/~seander/bithacks.html#NextBitPermutation.
func nextBitPermutation(bits uint32) uint32 {
	i := (bits | (bits - 1)) + 1
	return i | ((((i & -i) / (bits & -bits)) >> 1) - 1)
}

// primeProduct returns the prime product of five Cactus-Kev words.
func primeProduct(k0, k1, k2, k3, k4 KevCard) uint32 {
	i := uint32(k0) & 0xff
	i *= uint32(k1) & 0xff
	i *= uint32(k2) & 0xff
	i *= uint32(k3) & 0xff
	i *= uint32(k4) & 0xff
	return i
}

// primeProductBits returns the prime product of a 13-bit rank mask.
func primeProductBits(bits uint32) uint32 {
	i := uint32(1)
	for j := 0; j < 13; j++ {
		if bits&(1<<j) != 0 {
			i *= primes[j]
		}
	}
	return i
}
