package handranks

import (
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Empirically fixed sizes of the standard (52-card) and joker
// (56-card) registries and transition tables. Both decks have a
// finite, exactly-known number of reachable canonical partial-hand
// ids; these are that count (plus the reserved slot 0) and the
// table's length in uint32 cells (for the standard deck, exactly
// standardIDCount rows of StandardDeckSize+1 columns).
const (
	standardIDCount    = 612978
	standardTableCount = 32487834
	jokerIDCount       = 1019493
	jokerTableCount    = 57541214
)

// categoryNumber maps a [EvalRank.Fixed] category constant to the 1-9
// category number the transition table encodes (9 is best: straight
// flush; 1 is worst: high card).
func categoryNumber(fixed EvalRank) uint32 {
	switch fixed {
	case StraightFlush:
		return 9
	case FourOfAKind:
		return 8
	case FullHouse:
		return 7
	case Flush:
		return 6
	case Straight:
		return 5
	case ThreeOfAKind:
		return 4
	case TwoPair:
		return 3
	case Pair:
		return 2
	default:
		return 1
	}
}

// tableCode converts a Cactus-Kev rank code (1=best, 7462=worst) into
// the table's (category<<12)|ordinal encoding: category ascends with
// hand quality (1 high card .. 9 straight flush), and ordinal is the
// hand's 1-based rank within its category, likewise ascending with
// quality.
func tableCode(r EvalRank) uint32 {
	fixed := r.Fixed()
	ordinal := uint32(fixed) - uint32(r) + 1
	return categoryNumber(fixed)<<12 | ordinal
}

// Builder runs the two-pass offline construction of a [Table]: first
// discovering every reachable canonical partial-hand id over a deck,
// then re-walking the same (now-stable) id sequence to fill in each
// row's card transitions, terminating rows in a rank code once seven
// cards have been folded in.
type Builder struct {
	log      zerolog.Logger
	deckSize int
	rowWidth uint32
	reg      *registry
	tbl      []uint32
	terminal func(id int64, n int) uint32
}

// NewBuilder returns a Builder for a deck of deckSize cards (52 or
// 56), using terminal to convert a finished 7-card (or diagnostic 5-
// or 6-card) hand id to its stored rank code.
func NewBuilder(log zerolog.Logger, deckSize int, terminal func(id int64, n int) uint32) *Builder {
	idCount, tableCount := standardIDCount, standardTableCount
	if deckSize == JokerDeckSize {
		idCount, tableCount = jokerIDCount, jokerTableCount
	}
	return &Builder{
		log:      log,
		deckSize: deckSize,
		rowWidth: uint32(deckSize) + 1,
		reg:      newRegistry(idCount),
		tbl:      make([]uint32, tableCount),
		terminal: terminal,
	}
}

// Build runs both passes and returns the finished table.
func (b *Builder) Build() *Table {
	p := message.NewPrinter(language.English)
	b.log.Info().Int("deck_size", b.deckSize).Msg("discovering canonical hand ids")
	for i := 0; b.reg.ids[i] != 0 || i == 0; i++ {
		for card := 1; card <= b.deckSize; card++ {
			if n, id := extendID(b.reg.ids[i], Card(card)); n < 7 {
				b.reg.insert(id)
			}
		}
		if i%100000 == 0 {
			b.log.Info().Msg(p.Sprintf("discovering: %d ids so far", b.reg.Len()))
		}
	}
	b.log.Info().Msg(p.Sprintf("discovery done: %d canonical ids", b.reg.Len()))

	b.log.Info().Msg("filling transition table")
	var filled uint32
	for i := 0; b.reg.ids[i] != 0 || i == 0; i++ {
		var n int
		var id int64
		for card := 1; card <= b.deckSize; card++ {
			var pos uint32
			if n, id = extendID(b.reg.ids[i], Card(card)); n < 7 {
				pos = b.reg.insert(id)*b.rowWidth + b.rowWidth
			} else {
				pos = b.terminal(id, n)
			}
			row := uint32(i)*b.rowWidth + uint32(card) + b.rowWidth
			b.tbl[row] = pos
			filled = row
		}
		if n == 6 || n == 7 {
			b.tbl[uint32(i)*b.rowWidth+b.rowWidth] = b.terminal(b.reg.ids[i], n)
		}
		if i%100000 == 0 {
			b.log.Info().Msg(p.Sprintf("filling: row %d", i))
		}
	}
	b.log.Info().Msg(p.Sprintf("table build done: %d rows, %d cells filled", b.reg.Len(), filled))

	return &Table{
		deckSize: b.deckSize,
		rowWidth: b.rowWidth,
		rows:     b.tbl,
	}
}
