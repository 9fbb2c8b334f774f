package handranks

import "gonum.org/v1/gonum/stat/combin"

// subsets6c5 and subsets7c5 are the index combinations the 6- and
// 7-card evaluators walk to find the best 5-card subset, generated at
// init rather than hand-typed, using gonum's combinatorics package
// directly instead of a separate generate-and-embed step.
var (
	subsets6c5 = combin.Combinations(6, 5)
	subsets7c5 = combin.Combinations(7, 5)
)

// Best5Of6 returns the best (lowest) rank code reachable by any 5-card
// subset of six concrete cards.
func Best5Of6(cards [6]Card) EvalRank {
	best := Invalid
	for _, idx := range subsets6c5 {
		if r := Cactus5(cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]); r < best {
			best = r
		}
	}
	return best
}

// Best5Of7 returns the best (lowest) rank code reachable by any 5-card
// subset of seven concrete cards.
func Best5Of7(cards [7]Card) EvalRank {
	best := Invalid
	for _, idx := range subsets7c5 {
		if r := Cactus5(cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]); r < best {
			best = r
		}
	}
	return best
}
